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

// the chip has no bus of its own in the real machine. the host latches two
// bytes for it and the latch outputs are wired straight to the select pins.
// the comments below indicate how many of the least-significant bits of each
// field are used
type Registers struct {
	// from the CTRL latch
	Mixer     uint8 // 3 bit
	Envelope  uint8 // 2 bit
	VCOSelect bool  // true: pitch follows the SLF sawtooth
	VCOPitch  bool  // true: the high fixed-pitch preset
	Inhibit   bool

	// from the RATE latch. each field indexes the corresponding preset
	// table in the hardware/spec package
	SLFRate    uint8 // 2 bit
	AttackRate uint8 // 2 bit
	DecayRate  uint8 // 2 bit

	// the noise colour bit is latched by the host but the pin is not
	// connected to anything modelled here. white noise is produced
	// regardless. kept so the debugger can show what the host wrote
	NoiseColour bool
}

func (reg Registers) String() string {
	return fmt.Sprintf("mix: %03b env: %02b slf: %02b atk: %02b dcy: %02b vco: %v/%v inhibit: %v",
		reg.Mixer, reg.Envelope, reg.SLFRate, reg.AttackRate, reg.DecayRate,
		reg.VCOSelect, reg.VCOPitch, reg.Inhibit)
}

// the two latch addresses
const (
	CTRL = 0x00
	RATE = 0x01
)

// Access decodes a read or write of one of the two latches. any byte is
// accepted; fields are masked to their width so that an arbitrary write
// always produces a deterministic configuration, as the hardware does.
// returns true if the address was recognised
func (ch *SN76477) Access(write bool, idx uint16, data uint8) (uint8, bool, error) {
	if write {
		switch idx {
		case CTRL:
			ch.ctrl = data
			ch.Registers.Mixer = data & 0x07
			ch.Registers.Envelope = (data >> 3) & 0x03
			ch.Registers.VCOSelect = data&0x20 == 0x20
			ch.Registers.VCOPitch = data&0x40 == 0x40
			ch.Registers.Inhibit = data&0x80 == 0x80
		case RATE:
			ch.rate = data
			ch.Registers.SLFRate = data & 0x03
			ch.Registers.AttackRate = (data >> 2) & 0x03
			ch.Registers.DecayRate = (data >> 4) & 0x03
			ch.Registers.NoiseColour = data&0x40 == 0x40
		default:
			return 0, false, nil
		}
		return 0, true, nil
	}

	// the latches read back whatever the host wrote, including bits that
	// have no decode
	switch idx {
	case CTRL:
		return ch.ctrl, true, nil
	case RATE:
		return ch.rate, true, nil
	}

	return 0, false, nil
}
