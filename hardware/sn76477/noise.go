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

import "fmt"

// the tap mask for the 16-bit shift register. the polynomial is maximal so
// the bitstream repeats only every 65535 strobes, which at the 48KHz strobe
// rate is perceptually white
const noiseTaps = 0x002d

type noise struct {
	lfsr uint16
}

func (n *noise) String() string {
	return fmt.Sprintf("lfsr: %016b", n.lfsr)
}

func (n *noise) reset() {
	n.lfsr = 0xffff
}

// step advances the shift register by one position. called at the strobe
// rate, not the master rate
func (n *noise) step() {
	// the injected bit is normally zero. injecting a one when the register
	// is empty means the register can never lock up in the all-zero state,
	// whatever it is seeded with
	var fb uint16
	if n.lfsr == 0x0000 {
		fb = 0x0001
	}

	out := n.lfsr & 0x8000
	n.lfsr = n.lfsr<<1 | fb
	if out != 0x0000 {
		n.lfsr ^= noiseTaps
	}
}

// bit is the pseudorandom output. the top bit of the register as it stands
// after the most recent step
func (n *noise) bit() bool {
	return n.lfsr&0x8000 == 0x8000
}
