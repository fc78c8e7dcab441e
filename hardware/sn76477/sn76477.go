// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package sn76477

import (
	"strings"

	"github.com/jetsetilly/test76477/hardware/spec"
)

// SN76477 is the implementation of the sound generator. every sub-generator
// owns its state exclusively; they communicate only through the values
// passed between them in Step()
type SN76477 struct {
	Registers Registers

	// the raw bytes last written to the two latches, for read-back
	ctrl uint8
	rate uint8

	// while the reset line is held the chip does nothing except keep every
	// sub-generator at its initial value. the latches are unaffected, as in
	// the real machine where reset does not clear the host's latch outputs
	ResetLine bool

	div     divider
	Noise   noise
	SLF     slf
	VCO     vco
	OneShot oneshot
	Env     envelope
}

// Create is the preferred method of initialisation for the SN76477 type
func Create() *SN76477 {
	ch := &SN76477{}
	ch.Reset()
	return ch
}

// Reset returns every sub-generator to its initial value. the register
// latches are left alone
func (ch *SN76477) Reset() {
	ch.div.reset()
	ch.Noise.reset()
	ch.SLF.reset()
	ch.VCO.reset()
	ch.OneShot.reset()
	ch.Env.reset()
}

// Snapshot creates a copy of the SN76477 in its current state
func (ch *SN76477) Snapshot() *SN76477 {
	n := *ch
	return &n
}

func (ch *SN76477) Label() string {
	return "SN76477"
}

func (ch *SN76477) Status() string {
	return ch.String()
}

func (ch *SN76477) String() string {
	s := strings.Builder{}
	s.WriteString(ch.Registers.String())
	s.WriteString("\nslf: ")
	s.WriteString(ch.SLF.String())
	s.WriteString("\nvco: ")
	s.WriteString(ch.VCO.String())
	s.WriteString("\nnoise: ")
	s.WriteString(ch.Noise.String())
	s.WriteString("\noneshot: ")
	s.WriteString(ch.OneShot.String())
	s.WriteString("\nenvelope: ")
	s.WriteString(ch.Env.String())
	return s.String()
}

// Step advances the chip by one master tick. returns the 14-bit amplitude
// for the tick and whether the tick carried the 48KHz strobe.
//
// the ordering below matters and mirrors the signal flow through the chip:
// the VCO sees the SLF sawtooth as it stood at the end of the previous tick,
// the envelope selector sees this tick's oscillator outputs, and the mixer
// sees this tick's everything
func (ch *SN76477) Step() (uint16, bool) {
	if ch.ResetLine {
		ch.Reset()
		return 0, false
	}

	strobe := ch.div.step()

	// the pitch seen by the VCO this tick
	var pitch uint16
	if ch.Registers.VCOSelect {
		pitch = ch.SLF.saw
	} else if ch.Registers.VCOPitch {
		pitch = spec.VCOPitchHigh
	} else {
		pitch = spec.VCOPitchLow
	}

	ch.VCO.step(pitch)
	ch.SLF.step(spec.SLFRates[ch.Registers.SLFRate&0x03])

	if strobe {
		ch.Noise.step()
	}

	// the one-shot is stepped every tick for edge detection even though its
	// counter only moves on the strobe
	ch.OneShot.step(strobe, ch.Registers.Inhibit)

	env := selectEnvelope(ch.Registers.Envelope, ch.VCO.out(), ch.VCO.alt(), ch.OneShot.out)

	if strobe {
		ch.Env.step(env,
			spec.AttackRates[ch.Registers.AttackRate&0x03],
			spec.DecayRates[ch.Registers.DecayRate&0x03])
	}

	mixed := mix(ch.Registers.Mixer, ch.VCO.out(), ch.Noise.bit(), ch.SLF.square(), env)

	// the inhibit line mutes the output as well as (elsewhere) triggering
	// the one-shot on its falling edge
	if !ch.Registers.Inhibit && mixed {
		return ch.Env.magnitude(), strobe
	}

	return 0, strobe
}
