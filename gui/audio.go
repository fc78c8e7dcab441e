package gui

import (
	stdio "io"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/test76477/hardware/clocks"
	"github.com/jetsetilly/test76477/ui"
)

// AudioReader is how the audio player receives samples from the emulation.
// Nudge tells the emulation that the player is running dry
type AudioReader interface {
	stdio.Reader
	Nudge()
}

type audioPlayer struct {
	p *oto.Player
	r AudioReader

	// the state field is accessed by the Read() function via the audio
	// engine, and by the GUI which is in another goroutine. access to the
	// state field therefore, is protected by a mutex
	crit  sync.Mutex
	state ui.State
}

func (a *audioPlayer) setState(state ui.State) {
	a.crit.Lock()
	defer a.crit.Unlock()
	a.state = state
	if a.p != nil {
		if state == ui.StatePaused {
			a.p.Pause()
		} else {
			a.p.Play()
		}
	}
}

func (a *audioPlayer) Read(buf []uint8) (int, error) {
	a.crit.Lock()
	defer a.crit.Unlock()
	if a.state != ui.StateRunning {
		return 0, nil
	}

	const prefetch = 2048

	sz := a.p.BufferedSize()
	if sz < prefetch {
		a.r.Nudge()
	}

	return a.r.Read(buf)
}

func createAudioPlayer(u *ui.UI) *audioPlayer {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   clocks.Strobe,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})

	if err != nil {
		panic(err)
	}

	<-ready

	r := <-u.RegisterAudio

	a := &audioPlayer{}
	if nr, ok := r.(AudioReader); ok {
		a.r = nr
	} else {
		a.r = noNudge{r}
	}
	a.p = ctx.NewPlayer(a)
	a.p.Play()

	return a
}

// noNudge adapts a plain io.Reader to the AudioReader interface
type noNudge struct {
	stdio.Reader
}

func (_ noNudge) Nudge() {
}
