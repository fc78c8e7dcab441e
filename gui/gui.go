package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/test76477/io"
	"github.com/jetsetilly/test76477/logger"
	"github.com/jetsetilly/test76477/ui"
	"github.com/jetsetilly/test76477/version"
	input "github.com/quasilyte/ebitengine-input"
)

type gui struct {
	started bool

	endGui chan bool
	u      *ui.UI

	image  *ebiten.Image
	width  int
	height int

	audio *audioPlayer

	inputHandler *input.Handler
	inputSystem  input.System
}

const (
	ActionTrigger        = input.Action(io.Trigger)
	ActionMixerSelect    = input.Action(io.MixerSelect)
	ActionEnvelopeSelect = input.Action(io.EnvelopeSelect)
	ActionSLFRateSelect  = input.Action(io.SLFRateSelect)
	ActionAttackSelect   = input.Action(io.AttackRateSelect)
	ActionDecaySelect    = input.Action(io.DecayRateSelect)
	ActionVCOSource      = input.Action(io.VCOSource)
	ActionVCOPitch       = input.Action(io.VCOPitchPreset)
)

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionTrigger:        {input.KeyGamepadA, input.KeySpace},
		ActionMixerSelect:    {input.KeyM},
		ActionEnvelopeSelect: {input.KeyE},
		ActionSLFRateSelect:  {input.KeyS},
		ActionAttackSelect:   {input.KeyA},
		ActionDecaySelect:    {input.KeyD},
		ActionVCOSource:      {input.KeyV},
		ActionVCOPitch:       {input.KeyP},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)

	if g.u.Audio {
		g.audio = createAudioPlayer(g.u)
	}

	g.started = true
}

func (g *gui) input() {
	g.inputSystem.Update()

	var inp io.Input

	for _, a := range []input.Action{
		ActionTrigger, ActionMixerSelect, ActionEnvelopeSelect,
		ActionSLFRateSelect, ActionAttackSelect, ActionDecaySelect,
		ActionVCOSource, ActionVCOPitch,
	} {
		if g.inputHandler.ActionIsJustPressed(a) {
			inp = io.Input{Action: io.Action(a)}
		}
		if g.inputHandler.ActionIsJustReleased(a) {
			inp = io.Input{Action: io.Action(a), Release: true}
		}
	}

	if inp.Action != io.Nothing {
		select {
		case g.u.UserInput <- inp:
		default:
		}
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	g.input()

	select {
	case <-g.endGui:
		return ebiten.Termination
	case state := <-g.u.State:
		if g.audio != nil {
			g.audio.setState(state)
		}
	case img := <-g.u.SetImage:
		dim := img.Bounds()
		if g.image == nil || g.image.Bounds() != dim {
			g.width = dim.Dx()
			g.height = dim.Dy()
			g.image = ebiten.NewImage(g.width, g.height)
		}
		g.image.WritePixels(img.Pix)
	default:
	}
	return nil
}

const pixelScale = 2

func (g *gui) Draw(screen *ebiten.Image) {
	if g.image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(pixelScale, pixelScale)
		screen.DrawImage(g.image, op)
	}
}

func (g *gui) Layout(width, height int) (int, int) {
	if g.image != nil {
		return g.width * pixelScale, g.height * pixelScale
	}
	return width, height
}

func Launch(endGui chan bool, u *ui.UI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &gui{
		endGui: endGui,
		u:      u,
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	err := ebiten.RunGame(g)
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}
	return err
}
