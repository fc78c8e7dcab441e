package debugger

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sqweek/dialog"

	"github.com/jetsetilly/test76477/hardware"
	"github.com/jetsetilly/test76477/hardware/sn76477"
	"github.com/jetsetilly/test76477/logger"
	"github.com/jetsetilly/test76477/ui"
)

type input struct {
	s   string
	err error
}

type debugger struct {
	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	// this channel is passed to the debugger during creation via the UI type
	state chan ui.State

	console *hardware.Console

	// script of commands
	script []string

	// printing styles
	styles styles
}

func (m *debugger) reset() {
	m.console.Reset()
	fmt.Println(m.styles.debugger.Render("console reset"))
	fmt.Println(m.styles.chip.Render(
		m.console.Chip.String(),
	))
}

// step advances the emulation by the given number of samples
//
// returns true if quit signal has been received
func (m *debugger) step(n int) bool {
	var done bool
	for i := 0; i < n && !done; i++ {
		select {
		case <-m.sig:
			done = true
			continue // for loop
		case <-m.guiQuit:
			return true
		default:
		}

		m.console.Step()
	}

	fmt.Println(m.styles.chip.Render(
		m.console.Chip.String(),
	))

	return false
}

// trace advances the emulation by the given number of samples, printing
// each sample value as it is generated
func (m *debugger) trace(n int) {
	var b strings.Builder
	var column int

	for range n {
		b.WriteString(fmt.Sprintf(" %04x", m.console.Step()))
		column++
		if column > 7 {
			b.WriteString("\n")
			column = 0
		}
	}

	fmt.Println(m.styles.trace.Render(
		strings.TrimRight(b.String(), "\n"),
	))
}

// returns true if quit signal has been received
func (m *debugger) run() bool {
	fmt.Println(m.styles.debugger.Render("emulation running"))

	// we measure the number of samples in the time period of the running emulation
	startCt := m.console.Samples()
	startTime := time.Now()

	// sentinal errors
	var (
		endRunErr = errors.New("end run")
		quitErr   = errors.New("quit")
	)

	// hook is called after every chunk of samples
	hook := func() error {
		select {
		case <-m.sig:
			return endRunErr
		case <-m.guiQuit:
			return quitErr
		default:
		}
		return nil
	}

	m.state <- ui.StateRunning
	err := m.console.Run(nil, hook)
	m.state <- ui.StatePaused

	if errors.Is(err, quitErr) {
		return true
	}

	if errors.Is(err, endRunErr) {
		fmt.Println(m.styles.debugger.Render(
			fmt.Sprintf("%d samples in %.02f seconds",
				m.console.Samples()-startCt, time.Since(startTime).Seconds())),
		)
	} else if err != nil {
		fmt.Println(m.styles.err.Render(err.Error()))
	}

	// it's useful to see the state of the chip at the end of the run
	fmt.Println(m.styles.chip.Render(m.console.Chip.String()))

	return false
}

// parseRegister converts a register name or a hexadecimal index into a
// register index suitable for the chip's Access function
func (m *debugger) parseRegister(s string) (uint16, error) {
	switch strings.ToUpper(s) {
	case "CTRL":
		return sn76477.CTRL, nil
	case "RATE":
		return sn76477.RATE, nil
	}

	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0x")
	idx, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("unrecognised register: %s", s)
	}

	return uint16(idx), nil
}

// playScript reads a file of debugger commands and queues them for execution
func (m *debugger) playScript(filename string) {
	d, err := os.ReadFile(filename)
	if err != nil {
		dialog.Message("Problem with selected file\n\n%v", err).Error()
		fmt.Println(m.styles.err.Render(err.Error()))
		return
	}

	for _, s := range strings.Split(string(d), "\n") {
		s = strings.TrimSpace(s)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		m.script = append(m.script, s)
	}
}

func (m *debugger) loop() {
	for {
		fmt.Printf("%d> ", m.console.Samples())

		var cmd []string

		if len(m.script) > 0 {
			s := m.script[0]
			m.script = m.script[1:]
			fmt.Println(s)
			cmd = strings.Fields(s)
		} else {
			select {
			case input := <-m.input:
				if input.err != nil {
					fmt.Println(m.styles.err.Render(input.err.Error()))
					return
				}
				cmd = strings.Fields(input.s)
				if len(cmd) == 0 {
					cmd = []string{"STEP"}
				}
			case <-m.sig:
				fmt.Print("\r")
				return
			case <-m.guiQuit:
				fmt.Print("\n")
				return
			}
		}

		switch strings.ToUpper(cmd[0]) {
		case "R", "RUN":
			if m.run() {
				return
			}
		case "ST", "STEP":
			n := 1
			if len(cmd) == 2 {
				var err error
				n, err = strconv.Atoi(cmd[1])
				if err != nil {
					fmt.Println(m.styles.err.Render(
						fmt.Sprintf("cannot use STEP %s", cmd[1]),
					))
					break // switch
				}
			}
			if m.step(n) {
				return
			}
		case "TRACE":
			n := 64
			if len(cmd) == 2 {
				var err error
				n, err = strconv.Atoi(cmd[1])
				if err != nil {
					fmt.Println(m.styles.err.Render(
						fmt.Sprintf("cannot use TRACE %s", cmd[1]),
					))
					break // switch
				}
			}
			m.trace(n)
		case "RESET":
			m.reset()
		case "CHIP":
			fmt.Println(m.styles.chip.Render(
				m.console.Chip.String(),
			))
		case "REGS":
			fmt.Println(m.styles.mem.Render(
				m.console.Chip.Registers.String(),
			))
		case "SLF":
			fmt.Println(m.styles.chip.Render(
				m.console.Chip.SLF.String(),
			))
		case "VCO":
			fmt.Println(m.styles.chip.Render(
				m.console.Chip.VCO.String(),
			))
		case "NOISE":
			fmt.Println(m.styles.chip.Render(
				m.console.Chip.Noise.String(),
			))
		case "ONESHOT":
			fmt.Println(m.styles.chip.Render(
				m.console.Chip.OneShot.String(),
			))
		case "ENV", "ENVELOPE":
			fmt.Println(m.styles.chip.Render(
				m.console.Chip.Env.String(),
			))
		case "POKE":
			if len(cmd) < 3 {
				fmt.Println(m.styles.err.Render(
					"POKE requires a register and a value",
				))
				break // switch
			}

			idx, err := m.parseRegister(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke: %s", err.Error()),
				))
				break // switch
			}

			v, err := strconv.ParseUint(strings.TrimPrefix(cmd[2], "0x"), 16, 8)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke: cannot use value %s", cmd[2]),
				))
				break // switch
			}

			_, ok, err := m.console.Chip.Access(true, idx, uint8(v))
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke: %s", err.Error()),
				))
				break // switch
			}
			if !ok {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke register is not writeable: %s", cmd[1]),
				))
				break // switch
			}

			fmt.Println(m.styles.mem.Render(
				m.console.Chip.Registers.String(),
			))
		case "PEEK":
			if len(cmd) < 2 {
				fmt.Println(m.styles.err.Render(
					"PEEK requires a register",
				))
				break // switch
			}

			idx, err := m.parseRegister(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("peek: %s", err.Error()),
				))
				break // switch
			}

			data, ok, err := m.console.Chip.Access(false, idx, 0)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("peek: %s", err.Error()),
				))
				break // switch
			}
			if !ok {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("peek register is not readable: %s", cmd[1]),
				))
				break // switch
			}

			fmt.Println(m.styles.mem.Render(
				fmt.Sprintf("$%02x = %02x", idx, data),
			))
		case "PLAY":
			if len(cmd) < 2 {
				fmt.Println(m.styles.err.Render(
					"PLAY requires a script file",
				))
				break // switch
			}
			m.playScript(cmd[1])
		case "LOG":
			logger.Tail(os.Stdout, -1)
		case "QUIT":
			return
		default:
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")),
			))
		}
	}
}

const programName = "test76477"

func Launch(guiQuit chan bool, ui *ui.UI, args []string) error {
	var script string
	var profile bool

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.BoolVar(&profile, "profile", false, "create CPU profile for emulator")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	args = flgs.Args()

	if len(args) == 1 {
		script = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("too many arguments to debugger")
	}

	m := &debugger{
		guiQuit: guiQuit,
		state:   ui.State,
		sig:     make(chan os.Signal, 1),
		input:   make(chan input, 1),
		styles:  newStyles(),
	}
	m.console = hardware.Create(ui)

	if ui.Audio {
		ui.RegisterAudio <- m.console.Audio()
	}

	signal.Notify(m.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		b := make([]byte, 256)
		for {
			n, err := r.Read(b)
			select {
			case m.input <- input{
				s:   strings.TrimSpace(string(b[:n])),
				err: err,
			}:
			default:
			}
		}
	}()

	m.reset()

	if script != "" {
		m.playScript(script)
	}

	if profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	m.loop()

	return nil
}
