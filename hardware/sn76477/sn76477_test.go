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
	"testing"

	"github.com/jetsetilly/test76477/hardware/spec"
	"github.com/jetsetilly/test76477/test"
)

func TestRegistersDecode(t *testing.T) {
	ch := Create()

	_, ok, err := ch.Access(true, CTRL, 0xff)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ch.Registers.Mixer, 0x07)
	test.ExpectEquality(t, ch.Registers.Envelope, 0x03)
	test.ExpectSuccess(t, ch.Registers.VCOSelect)
	test.ExpectSuccess(t, ch.Registers.VCOPitch)
	test.ExpectSuccess(t, ch.Registers.Inhibit)

	_, ok, err = ch.Access(true, RATE, 0xff)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ch.Registers.SLFRate, 0x03)
	test.ExpectEquality(t, ch.Registers.AttackRate, 0x03)
	test.ExpectEquality(t, ch.Registers.DecayRate, 0x03)
	test.ExpectSuccess(t, ch.Registers.NoiseColour)

	// the latches read back exactly what was written, including bits with
	// no decode
	_, _, _ = ch.Access(true, CTRL, 0xaa)
	v, ok, err := ch.Access(false, CTRL, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xaa)

	// the address space is two registers only
	_, ok, _ = ch.Access(true, 0x02, 0x00)
	test.ExpectFailure(t, ok)
	_, ok, _ = ch.Access(false, 0x02, 0x00)
	test.ExpectFailure(t, ok)
}

func TestStrobeCadence(t *testing.T) {
	ch := Create()

	var strobes int
	for range 512 * 100 {
		_, strobe := ch.Step()
		if strobe {
			strobes++
		}
	}

	test.ExpectEquality(t, strobes, 100)
}

func TestDeterminism(t *testing.T) {
	// two chips given the same configuration produce identical output,
	// sample for sample
	a := Create()
	b := Create()

	for _, ch := range []*SN76477{a, b} {
		ch.Access(true, CTRL, 0x25)
		ch.Access(true, RATE, 0x16)
	}

	for range 512 * 1000 {
		sa, ta := a.Step()
		sb, tb := b.Step()
		test.ExpectEquality(t, sa, sb)
		test.ExpectEquality(t, ta, tb)
	}
}

func TestResetLine(t *testing.T) {
	// holding the reset line returns the generators to their initial values
	// but leaves the latches alone. after release the chip behaves exactly
	// like a freshly created chip with the same configuration
	ch := Create()
	ch.Access(true, CTRL, 0x25)
	ch.Access(true, RATE, 0x16)

	for range 12345 {
		ch.Step()
	}

	ch.ResetLine = true
	v, strobe := ch.Step()
	test.ExpectEquality(t, v, 0)
	test.ExpectFailure(t, strobe)
	ch.ResetLine = false

	// latches are unaffected by reset
	c, _, _ := ch.Access(false, CTRL, 0)
	test.ExpectEquality(t, c, 0x25)

	fresh := Create()
	fresh.Access(true, CTRL, 0x25)
	fresh.Access(true, RATE, 0x16)

	for range 512 * 100 {
		sa, ta := ch.Step()
		sb, tb := fresh.Step()
		test.ExpectEquality(t, sa, sb)
		test.ExpectEquality(t, ta, tb)
	}
}

func TestInhibitMutes(t *testing.T) {
	// with the inhibit line high the output is silent whatever the mixer
	// and envelope are doing
	ch := Create()
	ch.Access(true, CTRL, 0x80|MixSLF|EnvelopeOn<<3)
	ch.Access(true, RATE, 0x00)

	for range 512 * 100 {
		v, _ := ch.Step()
		test.ExpectEquality(t, v, 0)
	}
}

func TestMixerGatesEnvelope(t *testing.T) {
	// the audible output is the envelope magnitude gated by the mixed
	// waveform. with the mixer set to the SLF square wave alone, the output
	// follows the magnitude when the square wave is high and is zero when
	// it is low
	ch := Create()
	ch.Access(true, CTRL, MixSLF|EnvelopeOn<<3)
	ch.Access(true, RATE, 0x00)

	for range 512 * 1000 {
		v, _ := ch.Step()
		if ch.SLF.square() {
			test.ExpectEquality(t, v, ch.Env.magnitude())
		} else {
			test.ExpectEquality(t, v, 0)
		}
	}
}

func TestOneShotScenario(t *testing.T) {
	// a complete percussive hit. the chip idles with the inhibit line high,
	// the host drops it, and the envelope attacks through the one-shot
	// window before decaying back to silence
	ch := Create()
	ch.Access(true, CTRL, 0x80|MixEnvelope|EnvelopeOneShot<<3)
	ch.Access(true, RATE, 0x00)

	// idle. no output while inhibited
	for range 1000 {
		v, _ := ch.Step()
		test.ExpectEquality(t, v, 0)
	}

	// trigger
	ch.Access(true, CTRL, MixEnvelope|EnvelopeOneShot<<3)

	// the trigger tick loads the counter but the output is registered so
	// the window is not seen open until the tick after
	ch.Step()
	ch.Step()
	test.ExpectSuccess(t, ch.OneShot.out)

	// the envelope attacks inside the window and must never move downwards
	var prev uint16
	var openStrobes int
	for ch.OneShot.out {
		v, strobe := ch.Step()
		if strobe {
			openStrobes++
		}
		if ch.OneShot.out {
			test.ExpectSuccess(t, v >= prev)
			prev = v
		}
	}
	test.ExpectEquality(t, openStrobes, spec.OneShotDuration)

	// the window is much longer than the fastest attack so the envelope
	// saturated long before it closed
	test.ExpectSuccess(t, prev&spec.EnvelopeSaturation == spec.EnvelopeSaturation)

	// after the window closes the envelope decays to silence
	for range 512 * 2000 {
		ch.Step()
	}
	test.ExpectEquality(t, ch.Env.magnitude(), 0)
}

func TestVCOFixedPitchLow(t *testing.T) {
	// with both VCO selects low the oscillator reloads from the low
	// fixed-pitch preset on every tick, giving a square wave of constant
	// period. one half-period is the preset value plus one ticks
	ch := Create()
	ch.Access(true, CTRL, MixVCO|EnvelopeOn<<3)
	ch.Access(true, RATE, 0x00)

	halfPeriod := int(spec.VCOPitchLow) + 1

	prev := ch.VCO.out()
	var last int
	var intervals []int
	for i := 1; i <= halfPeriod*8; i++ {
		ch.Step()

		// the down-counter never holds anything above the preset
		test.ExpectSuccess(t, ch.VCO.ct <= spec.VCOPitchLow)

		if ch.VCO.out() != prev {
			prev = ch.VCO.out()
			if last != 0 {
				intervals = append(intervals, i-last)
			}
			last = i
		}
	}

	test.ExpectEquality(t, len(intervals), 7)
	for _, d := range intervals {
		test.ExpectEquality(t, d, halfPeriod)
	}
}

func TestVCOModulation(t *testing.T) {
	// in frequency-modulation mode the VCO reloads from the SLF sawtooth,
	// so its reload value is always inside the sawtooth's travel
	ch := Create()
	ch.Access(true, CTRL, 0x20|MixVCO|EnvelopeOn<<3)
	ch.Access(true, RATE, 0x00)

	// let the sawtooth climb into its working band first
	for ch.SLF.saw < spec.VCOMin {
		ch.Step()
	}

	for range 512 * 1000 {
		ch.Step()
		test.ExpectSuccess(t, ch.VCO.ct <= spec.SLFRates[0].Max)
	}
}
