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
	"fmt"

	"github.com/jetsetilly/test76477/hardware/spec"
)

// the envelope select codes, from the original configuration table
const (
	EnvelopeVCO         = 0b00
	EnvelopeOn          = 0b01
	EnvelopeOneShot     = 0b10
	EnvelopeAlternating = 0b11
)

// selectEnvelope is the combinational mux choosing which signal drives the
// envelope shaper. there is no state here; the choice is made fresh every
// tick from the tick's own values. out-of-range codes are masked to the
// register width rather than being treated as an error
func selectEnvelope(sel uint8, vco bool, alt bool, oneshot bool) bool {
	switch sel & 0x03 {
	case EnvelopeVCO:
		return vco
	case EnvelopeOn:
		// "mixer only" mode. the envelope is always open
		return true
	case EnvelopeOneShot:
		return oneshot
	case EnvelopeAlternating:
		return alt
	}

	// unreachable once the code has been masked
	return false
}

// the envelope shaper integrates the selected envelope signal into a 14-bit
// magnitude, approximating the analogue attack/decay ramps of the real chip.
// attack and decay rates come from the rate register via the tables in the
// hardware/spec package
type envelope struct {
	mag uint16

	// countdown for rates that apply less often than every strobe
	ct uint8

	// the previous tick's selected signal. a change of direction restarts
	// the rate countdown
	prev bool
}

func (e *envelope) String() string {
	return fmt.Sprintf("magnitude: %04x", e.mag)
}

func (e *envelope) reset() {
	e.mag = 0
	e.ct = 0
	e.prev = false
}

// step advances the shaper by one strobe. when the selected signal is high
// the magnitude ramps up by the attack step until the top 3 bits are all
// set; when low it ramps down by the decay step to a floor of zero
func (e *envelope) step(sel bool, attack spec.EnvelopeRate, decay spec.EnvelopeRate) {
	if sel != e.prev {
		e.prev = sel
		e.ct = 0
	}

	e.ct++

	if sel {
		if e.ct < attack.Every {
			return
		}
		e.ct = 0
		if e.mag&spec.EnvelopeSaturation != spec.EnvelopeSaturation {
			e.mag += attack.Step
		}
	} else {
		if e.ct < decay.Every {
			return
		}
		e.ct = 0
		if e.mag > decay.Step {
			e.mag -= decay.Step
		} else {
			e.mag = 0
		}
	}
}

// magnitude is the current 14-bit envelope value
func (e *envelope) magnitude() uint16 {
	return e.mag
}
