// Package lua loads a user program written in Lua and exposes its global
// on_init and on_message functions as an extension.Program.
package lua

import (
	"fmt"
	"io"
	"os"
	"strings"

	glua "github.com/yuin/gopher-lua"

	"github.com/bft-labs/yqrt/internal/adapters/framing"
	"github.com/bft-labs/yqrt/internal/domain"
	"github.com/bft-labs/yqrt/pkg/extension"
)

// DefaultPath is the well-known location of the user unit, relative to the
// working directory.
const DefaultPath = "./yqprogram.lua"

// Load executes the unit at path once and binds its hooks. Hooks the unit does
// not define as functions stay no-ops. Output from print and io.write goes to out.
//
// Any failure (missing file, syntax error, error raised while the chunk runs)
// is returned as a *domain.ExtensionLoadError.
func Load(path string, out io.Writer) (*extension.Program, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &domain.ExtensionLoadError{Path: path, Err: err}
	}

	L := glua.NewState()
	redirectOutput(L, out)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, &domain.ExtensionLoadError{Path: path, Err: err}
	}

	opts := []extension.Option{
		extension.WithCloser(func() error {
			L.Close()
			return nil
		}),
	}
	if fn, ok := L.GetGlobal(extension.HookOnInit).(*glua.LFunction); ok {
		opts = append(opts, extension.WithOnInit(func() error {
			return L.CallByParam(glua.P{Fn: fn, NRet: 0, Protect: true})
		}))
	}
	if fn, ok := L.GetGlobal(extension.HookOnMessage).(*glua.LFunction); ok {
		opts = append(opts, extension.WithOnMessage(func(p extension.Payload) error {
			arg, err := payloadValue(L, p)
			if err != nil {
				return err
			}
			return L.CallByParam(glua.P{Fn: fn, NRet: 0, Protect: true}, arg)
		}))
	}
	return extension.New(opts...), nil
}

// maxExactInt is the largest magnitude a Lua number (float64) holds exactly.
const maxExactInt = 1 << 53

// payloadValue converts a message payload into the argument shape of its
// discipline: a string for length-prefixed frames, a table with author,
// timestamp and text for JSON frames. Integers a Lua number cannot represent
// exactly are rejected as a framing error.
func payloadValue(L *glua.LState, p extension.Payload) (glua.LValue, error) {
	switch v := p.(type) {
	case domain.Text:
		return glua.LString(string(v)), nil
	case domain.Message:
		if err := checkExact("author", v.Author); err != nil {
			return nil, err
		}
		if err := checkExact("timestamp", v.Timestamp); err != nil {
			return nil, err
		}
		t := L.NewTable()
		t.RawSetString("author", glua.LNumber(v.Author))
		t.RawSetString("timestamp", glua.LNumber(v.Timestamp))
		t.RawSetString("text", glua.LString(v.Text))
		return t, nil
	default:
		return glua.LNil, nil
	}
}

func checkExact(field string, n int64) error {
	if n > maxExactInt || n < -maxExactInt {
		return &domain.FramingError{
			Discipline: framing.DisciplineJSON,
			Reason:     fmt.Sprintf("%s %d exceeds the exact integer range of a Lua number", field, n),
		}
	}
	return nil
}

// redirectOutput replaces print and io.write so unit output lands on out
// rather than the process's stdout.
func redirectOutput(L *glua.LState, out io.Writer) {
	L.SetGlobal("print", L.NewFunction(func(L *glua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		if _, err := fmt.Fprintln(out, strings.Join(parts, "\t")); err != nil {
			L.RaiseError("print: %v", err)
		}
		return 0
	}))

	if lib, ok := L.GetGlobal("io").(*glua.LTable); ok {
		lib.RawSetString("write", L.NewFunction(func(L *glua.LState) int {
			for i := 1; i <= L.GetTop(); i++ {
				if _, err := fmt.Fprint(out, L.CheckString(i)); err != nil {
					L.RaiseError("io.write: %v", err)
				}
			}
			return 0
		}))
	}
}
