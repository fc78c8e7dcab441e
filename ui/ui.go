package ui

import (
	"image"
	stdio "io"

	"github.com/jetsetilly/test76477/io"
)

// State describes whether the emulation is running or halted. Used to pause
// the audio player when the debugger has control
type State int

const (
	StatePaused State = iota
	StateRunning
)

type UI struct {
	SetImage      chan *image.RGBA
	RegisterAudio chan stdio.Reader
	UserInput     chan io.Input
	State         chan State

	// whether the gui should create an audio player
	Audio bool
}

func NewUI() *UI {
	return &UI{
		SetImage:      make(chan *image.RGBA, 1),
		RegisterAudio: make(chan stdio.Reader, 1),
		UserInput:     make(chan io.Input, 1),
		State:         make(chan State, 1),
	}
}

func (u *UI) WithAudio() *UI {
	u.Audio = true
	return u
}
