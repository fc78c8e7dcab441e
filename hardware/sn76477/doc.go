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

// Package sn76477 implements the digital behaviour of the SN76477 "complex
// sound generator". It is based on the work for TIA audio and POKEY,
// implemented elsewhere.
//
// The chip is hard-wired into the host machine's audio path. The analogue
// side of the real chip (the RC pairs that set the SLF, one-shot and
// envelope rates) is not modelled; instead the discrete rate choices wired
// onto the board are tabulated in the hardware/spec package and selected by
// the rate register.
//
// The chip is stepped at the master clock rate. The Step() function advances
// every sub-generator exactly once and returns one amplitude sample, meaning
// the emulation is bit-for-bit and tick-for-tick reproducible against
// captured traces of the reference hardware.
//
// Information about the SN76477 is taken from the Texas Instruments
// datasheet, "SN76477 Complex Sound Generator" (1978). This document will be
// referred to as 'TI datasheet' in any code comments in this package.
//
// A general description of the chip can be found at:
//
// https://en.wikipedia.org/wiki/Texas_Instruments_SN76477
package sn76477
