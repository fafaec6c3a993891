// Package script runs Lua scripts against a running machine. A script
// may define on_frame(n), which is called after every frame with the
// number of frames run, and may use the following functions:
//
//	peek(addr)        read a byte of memory
//	poke(addr, value) write a byte of memory
//	reg(x)            read register Vx
//	set_reg(x, value) write register Vx
//	index()           read the index register
//	pc()              read the program counter
//	press(key)        press a keypad key
//	release(key)      release a keypad key
//	pause()           pause the machine
//	quit()            halt the machine
//	log(msg)          write to the machine's log
package script

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gochip8/internal/chip8"
	"github.com/thelolagemann/gochip8/internal/cpu"
	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/pkg/log"
	lua "github.com/yuin/gopher-lua"
)

// FrameFunction is the global a script defines to be called after
// every frame.
const FrameFunction = "on_frame"

// ErrNoMachine is raised by functions called outside of a frame.
var ErrNoMachine = errors.New("no machine attached")

// Engine holds the Lua state of a script.
type Engine struct {
	L *lua.LState
	log.Logger

	m      *chip8.Machine
	failed bool
}

// New returns an engine with the machine functions registered.
func New(logger log.Logger) *Engine {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	e := &Engine{
		L:      lua.NewState(),
		Logger: logger,
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":    e.peek,
		"poke":    e.poke,
		"reg":     e.reg,
		"set_reg": e.setReg,
		"index":   e.index,
		"pc":      e.pc,
		"press":   e.press,
		"release": e.release,
		"pause":   e.pause,
		"quit":    e.quit,
		"log":     e.log,
	} {
		e.L.SetGlobal(name, e.L.NewFunction(fn))
	}

	return e
}

// LoadFile runs the script at path.
func (e *Engine) LoadFile(path string) error {
	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// LoadString runs the script src.
func (e *Engine) LoadString(src string) error {
	if err := e.L.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// Hook returns the frame hook that calls on_frame. The machine's lock
// is held while the hook runs, so the script works on the machine
// directly. A script error is logged, and on_frame is not called
// again.
func (e *Engine) Hook() chip8.FrameHook {
	return func(m *chip8.Machine, frame uint64) {
		if e.failed {
			return
		}
		fn := e.L.GetGlobal(FrameFunction)
		if fn.Type() != lua.LTFunction {
			return
		}

		e.m = m
		defer func() { e.m = nil }()

		if err := e.L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, lua.LNumber(frame)); err != nil {
			e.failed = true
			e.Errorf("script: %s: %v", FrameFunction, err)
		}
	}
}

// Close closes the Lua state.
func (e *Engine) Close() {
	e.L.Close()
}

func (e *Engine) machine(L *lua.LState) *chip8.Machine {
	if e.m == nil {
		L.RaiseError("%v", ErrNoMachine)
	}
	return e.m
}

func (e *Engine) peek(L *lua.LState) int {
	m := e.machine(L)
	L.Push(lua.LNumber(m.RAM.Read(uint16(L.CheckInt(1)))))
	return 1
}

func (e *Engine) poke(L *lua.LState) int {
	m := e.machine(L)
	m.RAM.Write(uint16(L.CheckInt(1)), uint8(L.CheckInt(2)))
	return 0
}

func (e *Engine) register(L *lua.LState) int {
	x := L.CheckInt(1)
	if x < 0 || x >= cpu.NumRegisters {
		L.ArgError(1, "register out of range")
	}
	return x
}

func (e *Engine) reg(L *lua.LState) int {
	m := e.machine(L)
	L.Push(lua.LNumber(m.CPU.V[e.register(L)]))
	return 1
}

func (e *Engine) setReg(L *lua.LState) int {
	m := e.machine(L)
	m.CPU.V[e.register(L)] = uint8(L.CheckInt(2))
	return 0
}

func (e *Engine) index(L *lua.LState) int {
	L.Push(lua.LNumber(e.machine(L).CPU.I))
	return 1
}

func (e *Engine) pc(L *lua.LState) int {
	L.Push(lua.LNumber(e.machine(L).CPU.PC))
	return 1
}

func (e *Engine) key(L *lua.LState) keypad.Key {
	k := L.CheckInt(1)
	if k < 0 || k >= keypad.NumKeys {
		L.ArgError(1, "key out of range")
	}
	return keypad.Key(k)
}

func (e *Engine) press(L *lua.LState) int {
	e.machine(L).Press(e.key(L))
	return 0
}

func (e *Engine) release(L *lua.LState) int {
	e.machine(L).Release(e.key(L))
	return 0
}

func (e *Engine) pause(L *lua.LState) int {
	m := e.machine(L)
	if m.State() == chip8.Running {
		m.HandleEvent(chip8.EventTogglePause)
	}
	return 0
}

func (e *Engine) quit(L *lua.LState) int {
	e.machine(L).HandleEvent(chip8.EventQuit)
	return 0
}

func (e *Engine) log(L *lua.LState) int {
	e.Infof("script: %s", L.CheckString(1))
	return 0
}
