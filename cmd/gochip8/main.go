//go:build !test

package main

import (
	"flag"
	"os"
	"strings"

	"github.com/thelolagemann/gochip8/internal/chip8"
	"github.com/thelolagemann/gochip8/internal/cpu"
	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/pkg/audio"
	"github.com/thelolagemann/gochip8/pkg/display"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	_ "github.com/thelolagemann/gochip8/pkg/display/ebiten"
	_ "github.com/thelolagemann/gochip8/pkg/display/fyne"
	_ "github.com/thelolagemann/gochip8/pkg/display/glfw"
	_ "github.com/thelolagemann/gochip8/pkg/display/sdl"
	_ "github.com/thelolagemann/gochip8/pkg/display/terminal"
	_ "github.com/thelolagemann/gochip8/pkg/display/web"
	"github.com/thelolagemann/gochip8/pkg/emulator"
	"github.com/thelolagemann/gochip8/pkg/log"
	"github.com/thelolagemann/gochip8/pkg/script"
	"github.com/thelolagemann/gochip8/pkg/utils"
)

// logLines is the number of log lines kept for the log view.
const logLines = 200

func main() {
	var logger log.Logger = log.NewRecorder(log.New(), logLines)

	if len(display.InstalledDrivers) == 0 {
		logger.Fatal("No display drivers installed. Please compile with at least one display driver")
	}

	romFile := flag.String("rom", "", "The rom file to load")
	displayDriver := flag.String("driver", "auto", "The display driver to use. Can be auto, sdl, fyne, glfw, web, terminal or ebiten")
	ips := flag.Int("ips", cpu.DefaultSpeed, "The number of instructions to execute per second")
	audioBackend := flag.String("audio", "sdl", "The audio backend to use. Can be sdl, oto or none")
	freq := flag.Int("freq", audio.DefaultFrequency, "The frequency of the beep in Hz")
	sampleRate := flag.Int("sample-rate", audio.DefaultSampleRate, "The audio sample rate in Hz")
	volume := flag.Int("volume", audio.DefaultVolume, "The volume of the beep, up to 32767")
	fg := flag.String("fg", "#FFFFFF", "The colour of lit pixels")
	bg := flag.String("bg", "#000000", "The colour of unlit pixels")
	state := flag.String("state", "", "The state file to load, and save to on exit")
	scriptFile := flag.String("script", "", "A Lua script to run every frame")
	seed := flag.Int64("seed", 0, "Seed the random number generator, for reproducible runs")
	shiftVX := flag.Bool("shift-vx", false, "Shift VX in place for 8XY6 and 8XYE")
	noKeyRelease := flag.Bool("no-key-release", false, "Complete FX0A on key press, rather than release")

	display.RegisterFlags()
	flag.Parse()

	if *romFile == "" && *state == "" {
		wd, _ := os.Getwd()
		path, err := utils.AskForROM(wd)
		if err != nil {
			logger.Fatal("no ROM selected: " + err.Error())
		}
		*romFile = path
	}

	palette, err := display.ParsePalette(*fg, *bg)
	if err != nil {
		logger.Fatal(err.Error())
	}

	quirks := cpu.DefaultQuirks
	quirks.ShiftInPlace = *shiftVX
	quirks.WaitForRelease = !*noKeyRelease

	beeper := newBeeper(*audioBackend, audio.NewSquareWave(*freq, *sampleRate, int16(utils.Clamp(0, *volume, 32767))), logger)
	defer beeper.Close()

	opts := []chip8.Opt{
		chip8.WithLogger(logger),
		chip8.Speed(*ips),
		chip8.WithQuirks(quirks),
		chip8.WithPalette(palette),
		chip8.WithBeeper(beeper),
	}
	if *seed != 0 {
		opts = append(opts, chip8.WithSeed(*seed))
	}

	if *scriptFile != "" {
		engine := script.New(logger)
		defer engine.Close()
		if err := engine.LoadFile(*scriptFile); err != nil {
			logger.Fatal(err.Error())
		}
		opts = append(opts, chip8.WithFrameHook(engine.Hook()))
	}

	savePath := *state
	if savePath == "" {
		savePath = emulator.SavePath(*romFile)
	}
	save := &emulator.Save{Path: savePath}
	if *state != "" {
		if save, err = emulator.LoadSave(*state); err != nil {
			logger.Fatal(err.Error())
		}
		opts = append(opts, chip8.WithState(save.Bytes()))
	}

	m := chip8.New(opts...)
	if !m.LoadedFromState() {
		rom, err := utils.LoadFile(*romFile)
		if err != nil {
			logger.Fatal(err.Error())
		}
		if err := m.LoadROM(rom); err != nil {
			logger.Fatal(err.Error())
		}
		logger.Infof("running %s", utils.ROMName(*romFile))
	}

	driver := display.GetDriver(*displayDriver)

	// check to make sure the driver is valid
	if driver == nil {
		logger.Fatal("invalid display driver " + *displayDriver)
	}

	// attach the machine to the driver
	driver.Initialize(m)

	frames := make(chan []byte, 60)
	events := make(chan event.Event, 60)
	pressed := make(chan keypad.Key, 16)
	released := make(chan keypad.Key, 16)

	go m.Start(frames, events, pressed, released)

	if err := driver.Start(frames, events, pressed, released); err != nil {
		logger.Errorf("display: %v", err)
	}
	if err := driver.Stop(); err != nil {
		logger.Errorf("display: %v", err)
	}

	writeSave(m, save, logger)
}

func newBeeper(backend string, wave *audio.SquareWave, logger log.Logger) audio.Beeper {
	var (
		b   audio.Beeper
		err error
	)
	switch strings.ToLower(backend) {
	case "sdl":
		b, err = audio.NewSDLBeeper(wave)
	case "oto":
		b, err = audio.NewOtoBeeper(wave)
	case "none":
		return audio.NewNullBeeper()
	default:
		logger.Errorf("unknown audio backend %s", backend)
		return audio.NewNullBeeper()
	}
	if err != nil {
		logger.Errorf("unable to open audio device %s", err)
		return audio.NewNullBeeper()
	}
	return b
}

// writeSave writes a save state of the machine. A machine halted by a
// fault is not saved, so that the faulting program is not restored.
func writeSave(m *chip8.Machine, save *emulator.Save, logger log.Logger) {
	m.Lock()
	var b []byte
	if m.Fault() == nil {
		b = m.SaveState()
	}
	m.Unlock()

	if b == nil {
		return
	}
	save.SetBytes(b)
	if err := save.Close(); err != nil {
		logger.Errorf("unable to write %s: %v", save.Path, err)
		return
	}
	logger.Infof("saved state to %s", save.Path)
}
