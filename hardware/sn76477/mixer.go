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

// the mixer select codes, from the original configuration table
const (
	MixVCO         = 0b000
	MixNoise       = 0b001
	MixSLFNoise    = 0b010
	MixSLFVCO      = 0b011
	MixSLF         = 0b100
	MixVCONoise    = 0b101
	MixSLFVCONoise = 0b110
	MixEnvelope    = 0b111
)

// mix is the combinational mux/AND network selecting the audible waveform.
// the MixEnvelope code passes the envelope-selector's bit straight through,
// which the host machine uses to inject an external signal (tape audio) into
// the speaker path. out-of-range codes are masked to the register width
func mix(sel uint8, vco bool, noise bool, slf bool, envelope bool) bool {
	switch sel & 0x07 {
	case MixVCO:
		return vco
	case MixNoise:
		return noise
	case MixSLFNoise:
		return slf && noise
	case MixSLFVCO:
		return slf && vco
	case MixSLF:
		return slf
	case MixVCONoise:
		return vco && noise
	case MixSLFVCONoise:
		return slf && vco && noise
	case MixEnvelope:
		return envelope
	}

	// unreachable once the code has been masked
	return false
}
