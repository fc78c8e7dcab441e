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

// the one-shot provides the attack window of the envelope generator. the
// falling edge of the inhibit line loads an 11-bit counter which then counts
// down at the strobe rate
type oneshot struct {
	// the previous tick's inhibit value. edge detection is a simple
	// comparison each tick, there is no event mechanism
	prev bool

	ct uint16

	// registered output, one tick behind the counter
	out bool
}

func (o *oneshot) String() string {
	return fmt.Sprintf("ct: %d out: %v", o.ct, o.out)
}

func (o *oneshot) reset() {
	o.prev = false
	o.ct = 0
	o.out = false
}

// step advances the one-shot by one master tick. the counter only counts on
// the strobe but edge detection happens every tick
func (o *oneshot) step(strobe bool, inhibit bool) {
	// register the output before updating the counter. consumers of the
	// output therefore see the counter as it stood at the end of the
	// previous tick
	o.out = o.ct != 0

	if o.prev && !inhibit {
		o.ct = spec.OneShotDuration & 0x07ff
	} else if strobe && o.ct > 0 {
		o.ct--
	}

	o.prev = inhibit
}
