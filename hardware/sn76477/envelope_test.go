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

func TestEnvelopeSelect(t *testing.T) {
	test.ExpectSuccess(t, selectEnvelope(EnvelopeVCO, true, false, false))
	test.ExpectFailure(t, selectEnvelope(EnvelopeVCO, false, true, true))

	// "mixer only" mode. always open
	test.ExpectSuccess(t, selectEnvelope(EnvelopeOn, false, false, false))

	test.ExpectSuccess(t, selectEnvelope(EnvelopeOneShot, false, false, true))
	test.ExpectFailure(t, selectEnvelope(EnvelopeOneShot, true, true, false))

	test.ExpectSuccess(t, selectEnvelope(EnvelopeAlternating, false, true, false))
	test.ExpectFailure(t, selectEnvelope(EnvelopeAlternating, true, false, true))

	// select codes are masked to the register width
	test.ExpectSuccess(t, selectEnvelope(0xfd, false, false, false))
}

func TestEnvelopeAttack(t *testing.T) {
	// with the fastest attack rate the magnitude saturates after 94 strobes
	// and does not change thereafter
	var e envelope
	e.reset()

	attack := spec.AttackRates[0]
	decay := spec.DecayRates[0]

	var ct int
	for e.mag&spec.EnvelopeSaturation != spec.EnvelopeSaturation {
		e.step(true, attack, decay)
		ct++
	}
	test.ExpectEquality(t, ct, 94)

	saturated := e.mag
	for range 1000 {
		e.step(true, attack, decay)
		test.ExpectEquality(t, e.mag, saturated)
	}
}

func TestEnvelopeDecay(t *testing.T) {
	// the magnitude ramps down to a floor of zero and stays there
	var e envelope
	e.reset()

	attack := spec.AttackRates[0]
	decay := spec.DecayRates[0]

	for range 200 {
		e.step(true, attack, decay)
	}

	prev := e.mag
	for e.mag > 0 {
		e.step(false, attack, decay)
		test.ExpectSuccess(t, e.mag < prev)
		prev = e.mag
	}

	for range 1000 {
		e.step(false, attack, decay)
		test.ExpectEquality(t, e.mag, 0)
	}
}

func TestEnvelopeRange(t *testing.T) {
	// whatever the rate and however the select signal moves, the magnitude
	// never leaves the 14-bit range
	for _, attack := range spec.AttackRates {
		for _, decay := range spec.DecayRates {
			var e envelope
			e.reset()

			// a deterministic but uneven select signal
			var lfsr uint16 = 0x0001
			for range 100000 {
				lfsr = lfsr<<1 | (lfsr>>15^lfsr>>13)&0x0001
				e.step(lfsr&0x0100 == 0x0100, attack, decay)
				test.ExpectSuccess(t, e.mag <= spec.EnvelopeMax)
			}
		}
	}
}

func TestEnvelopeSlowRates(t *testing.T) {
	// rates with an Every field greater than one only move the magnitude on
	// every Every-th strobe
	var e envelope
	e.reset()

	attack := spec.AttackRates[2]
	decay := spec.DecayRates[0]
	test.ExpectSuccess(t, attack.Every > 1)

	for range attack.Every - 1 {
		e.step(true, attack, decay)
		test.ExpectEquality(t, e.mag, 0)
	}
	e.step(true, attack, decay)
	test.ExpectEquality(t, e.mag, attack.Step)
}

func TestOneShotTrigger(t *testing.T) {
	// the falling edge of the inhibit line loads the counter. the output
	// appears on the tick after the edge and the window is open for exactly
	// the loaded number of strobes
	var o oneshot
	o.reset()

	// inhibit line high for a while
	for range 1000 {
		o.step(false, true)
		test.ExpectFailure(t, o.out)
	}

	// falling edge. the output is registered so it is not seen until the
	// following tick
	o.step(false, false)
	test.ExpectFailure(t, o.out)
	test.ExpectEquality(t, o.ct, spec.OneShotDuration)

	// count the strobes for which the window is open
	var ct int
	o.step(true, false)
	for o.out {
		ct++
		o.step(true, false)
	}
	test.ExpectEquality(t, uint16(ct), spec.OneShotDuration)
}

func TestOneShotRetrigger(t *testing.T) {
	// a second falling edge while the window is open reloads the counter
	var o oneshot
	o.reset()

	o.step(false, true)
	o.step(false, false)

	// half the window
	for range spec.OneShotDuration / 2 {
		o.step(true, false)
	}
	test.ExpectSuccess(t, o.ct < spec.OneShotDuration)

	// retrigger
	o.step(false, true)
	o.step(false, false)
	test.ExpectEquality(t, o.ct, spec.OneShotDuration)
}

func TestOneShotHeldInhibit(t *testing.T) {
	// holding the inhibit line low does not retrigger. only the edge does
	var o oneshot
	o.reset()

	o.step(false, true)
	o.step(false, false)
	test.ExpectEquality(t, o.ct, spec.OneShotDuration)

	for i := uint16(1); i <= 100; i++ {
		o.step(true, false)
		test.ExpectEquality(t, o.ct, spec.OneShotDuration-i)
	}
}
