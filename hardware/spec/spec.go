package spec

import "fmt"

// The bounds of the pitch/sawtooth path. The SLF's sawtooth shares VCOMin as
// its lower bound so that SLF-driven modulation sweeps the VCO across its
// full controllable pitch range. This shared constant is deliberate and any
// attempt to "fix" it will break the frequency-modulation mode
const (
	VCOMin = 0x0400
	VCOMax = 0x3fff
)

// The fixed VCO half-periods available when the VCO is not slaved to the
// SLF. The values are in master ticks and correspond to the two pitches
// produced by the resistor pair on the board (~10.7KHz and the low preset,
// ~375Hz on the alternating-cycle output)
const (
	VCOPitchLow  = VCOMax
	VCOPitchHigh = 1151
)

// The envelope magnitude is 14 bits. Attack stops when the top 3 bits are
// all set
const (
	EnvelopeMax        = 0x3fff
	EnvelopeSaturation = 0x3800
)

// The number of strobes the one-shot stays open after a trigger. Equivalent
// to ~26ms at the 48KHz strobe rate. The counter is 11 bits wide
const OneShotDuration = 1250

// SLFRate is one entry in the documented SLF configuration table. The
// resulting sawtooth frequency is
//
//	clocks.Master / (2 * Cycle * (Max - VCOMin))
type SLFRate struct {
	ID    string
	Cycle uint16 // master ticks per sawtooth step
	Max   uint16 // upper bound of the sawtooth
}

func (r SLFRate) String() string {
	return fmt.Sprintf("%s (cycle=%d max=%04x)", r.ID, r.Cycle, r.Max)
}

// The four selectable SLF rates. The IDs are the frequencies given in the
// original configuration table, derived from the RC pairs on the board
var SLFRates = [4]SLFRate{
	{ID: "173Hz", Cycle: 5, Max: 15230},
	{ID: "35Hz", Cycle: 23, Max: 16289},
	{ID: "16Hz", Cycle: 50, Max: 16383},
	{ID: "3Hz", Cycle: 267, Max: 16364},
}

// EnvelopeRate describes one attack or decay rate: Step magnitude units are
// applied once every Every strobes. Rates slower than one unit per strobe
// are expressed with Every > 1
type EnvelopeRate struct {
	ID    string
	Step  uint16
	Every uint8
}

func (r EnvelopeRate) String() string {
	return fmt.Sprintf("%s (step=%d every=%d)", r.ID, r.Step, r.Every)
}

// The four selectable attack rates. The IDs give the time for a full ramp
// from zero to saturation according to the original configuration table. The
// discretised values land within a few percent of the documented times
var AttackRates = [4]EnvelopeRate{
	{ID: "1.95ms", Step: 153, Every: 1},
	{ID: "5.85ms", Step: 51, Every: 1},
	{ID: "90ms", Step: 10, Every: 3},
	{ID: "270ms", Step: 1, Every: 1},
}

// The four selectable decay rates, giving the time for a full ramp from
// saturation back to zero
var DecayRates = [4]EnvelopeRate{
	{ID: "21ms", Step: 14, Every: 1},
	{ID: "340ms", Step: 1, Every: 1},
	{ID: "213ms", Step: 7, Every: 5},
	{ID: "1020ms", Step: 7, Every: 24},
}
