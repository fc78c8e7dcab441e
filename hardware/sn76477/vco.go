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

// the pitch-controlled oscillator. the pitch input is the square wave's
// half-period in master ticks. it is supplied by the chip each tick rather
// than stored here because it can change every tick in modulation mode
type vco struct {
	ct    uint16
	phase uint8
}

func (v *vco) String() string {
	return fmt.Sprintf("phase: %02b ct: %04x", v.phase, v.ct)
}

func (v *vco) reset() {
	v.ct = 0
	v.phase = 0
}

// step advances the oscillator by one master tick. the phase counter
// advances every pitch+1 ticks giving a square wave of
// Master / (pitch+1) / 2 Hz
func (v *vco) step(pitch uint16) {
	if v.ct > 0 {
		v.ct--
		return
	}
	v.ct = pitch & 0x3fff
	v.phase = (v.phase + 1) & 0x03
}

// out is the square-wave output, toggling on every phase advance
func (v *vco) out() bool {
	return v.phase&0x01 == 0x01
}

// alt suppresses every other pulse of the square wave. used for the
// alternating-cycles envelope mode
func (v *vco) alt() bool {
	return v.phase&0x03 == 0x03
}
