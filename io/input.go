package io

type Action int

type Input struct {
	Action  Action
	Release bool
}

const (
	Nothing Action = iota

	// Trigger pulls the inhibit line low for as long as the action is held.
	// the falling edge fires the one-shot
	Trigger

	// cycle through the documented selections for each control field
	MixerSelect
	EnvelopeSelect
	SLFRateSelect
	AttackRateSelect
	DecayRateSelect

	// toggle the pitch source and the fixed pitch preset for the VCO
	VCOSource
	VCOPitchPreset
)
