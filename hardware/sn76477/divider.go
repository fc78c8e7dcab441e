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

// the slow side of the chip is paced by the top bit of a 9-bit counter
// running at the master rate. see clocks.Strobe for the resulting rate
type divider struct {
	ct uint16
}

func (d *divider) reset() {
	d.ct = 0
}

// step advances the counter by one master tick. returns true on the tick the
// counter's top bit rises, once every 512 ticks
func (d *divider) step() bool {
	d.ct = (d.ct + 1) & 0x01ff
	return d.ct == 0x0100
}
