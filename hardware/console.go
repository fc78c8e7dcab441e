package hardware

import (
	"github.com/jetsetilly/test76477/hardware/sn76477"
	"github.com/jetsetilly/test76477/io"
	"github.com/jetsetilly/test76477/ui"
)

// the number of samples generated between limiter waits. 10ms of audio
const samplesPerChunk = 480

type Console struct {
	Chip *sn76477.SN76477

	buffer  *audioBuffer
	limiter *limiter
	scope   *scope

	// number of samples generated since power-on. one sample per strobe
	samples int64

	userInput chan io.Input
	setImage  func(*scope)
}

func Create(u *ui.UI) *Console {
	con := &Console{
		Chip:      sn76477.Create(),
		limiter:   newLimiter(),
		scope:     newScope(),
		userInput: u.UserInput,
	}
	con.buffer = newAudioBuffer(con.limiter.Nudge)

	con.setImage = func(s *scope) {
		select {
		case u.SetImage <- s.render():
		default:
		}
	}

	con.Reset()
	return con
}

// Reset the console. the chip is returned to its power-on state and the
// latches to the values the host machine writes during its own reset: all
// selects zeroed and the inhibit line held high
func (con *Console) Reset() {
	con.Chip.Reset()
	con.Chip.Access(true, sn76477.CTRL, 0x80)
	con.Chip.Access(true, sn76477.RATE, 0x00)
}

// Step advances the console by one strobe period, or one audio sample. the
// chip itself is stepped at the master rate, 512 ticks per sample
func (con *Console) Step() uint16 {
	for {
		sample, strobe := con.Chip.Step()
		if strobe {
			con.buffer.push(sample)
			con.scope.push(sample)
			con.samples++
			return sample
		}
	}
}

// Samples returns the number of samples generated since power-on
func (con *Console) Samples() int64 {
	return con.samples
}

// Run the console at the speed of the real machine until told to stop. the
// hook function is called once per chunk of samples
func (con *Console) Run(stop chan bool, hook func() error) error {
	for {
		select {
		case <-stop:
			return nil
		case inp := <-con.userInput:
			con.input(inp)
		default:
		}

		for range samplesPerChunk {
			con.Step()
		}
		con.setImage(con.scope)
		con.limiter.Wait()

		if hook != nil {
			if err := hook(); err != nil {
				return err
			}
		}
	}
}

// input applies a user action to the register latches. selections cycle
// through their documented values; the trigger action follows the state of
// the key so that the inhibit line falls on press and rises on release
func (con *Console) input(inp io.Input) {
	ctrl, _, _ := con.Chip.Access(false, sn76477.CTRL, 0)
	rate, _, _ := con.Chip.Access(false, sn76477.RATE, 0)

	if inp.Action == io.Trigger {
		if inp.Release {
			ctrl |= 0x80
		} else {
			ctrl &= 0x7f
		}
		con.Chip.Access(true, sn76477.CTRL, ctrl)
		return
	}

	if inp.Release {
		return
	}

	switch inp.Action {
	case io.MixerSelect:
		ctrl = ctrl&0xf8 | (ctrl+1)&0x07
	case io.EnvelopeSelect:
		ctrl = ctrl&0xe7 | (ctrl+0x08)&0x18
	case io.VCOSource:
		ctrl ^= 0x20
	case io.VCOPitchPreset:
		ctrl ^= 0x40
	case io.SLFRateSelect:
		rate = rate&0xfc | (rate+1)&0x03
	case io.AttackRateSelect:
		rate = rate&0xf3 | (rate+0x04)&0x0c
	case io.DecayRateSelect:
		rate = rate&0xcf | (rate+0x10)&0x30
	}

	con.Chip.Access(true, sn76477.CTRL, ctrl)
	con.Chip.Access(true, sn76477.RATE, rate)
}

// Audio returns the io.Reader that yields the console's generated samples.
// the reader also implements a Nudge() function that the audio player can
// use to hurry the emulation along if the buffer is running dry
func (con *Console) Audio() *audioBuffer {
	return con.buffer
}
