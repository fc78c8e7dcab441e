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

// the super-low frequency oscillator. a 14-bit sawtooth that ramps between
// spec.VCOMin and the configured upper bound, reversing direction at each.
// the sawtooth value doubles as the VCO pitch in frequency-modulation mode,
// which is why the lower bound is the VCO's minimum pitch and not zero
type slf struct {
	ct  uint16
	saw uint16
	up  bool
}

func (o *slf) String() string {
	dir := "down"
	if o.up {
		dir = "up"
	}
	return fmt.Sprintf("saw: %04x (%s) ct: %d", o.saw, dir, o.ct)
}

func (o *slf) reset() {
	o.ct = 0
	o.saw = 0
	o.up = true
}

// step advances the oscillator by one master tick. the sawtooth moves one
// unit every rate.Cycle ticks
func (o *slf) step(rate spec.SLFRate) {
	if o.ct > 0 {
		o.ct--
	}
	if o.ct != 0 {
		return
	}
	o.ct = rate.Cycle

	// comparisons against the bounds are inclusive of anything beyond them
	// so that a rate change that leaves the sawtooth outside the new band
	// recovers rather than running away
	if o.up {
		o.saw++
		if o.saw >= rate.Max {
			o.up = false
		}
	} else {
		o.saw--
		if o.saw <= spec.VCOMin {
			o.up = true
		}
	}
}

// square is the SLF's square-wave output. it is simply the ramp direction
func (o *slf) square() bool {
	return o.up
}
