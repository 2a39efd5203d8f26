package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/drpcorg/multiindex/utils"
	"github.com/stretchr/testify/assert"
)

func newTestREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	out := &bytes.Buffer{}
	repl, err := NewREPL(out, utils.NewWriterLogger(io.Discard, slog.LevelError))
	assert.NoError(t, err)
	return repl, out
}

func TestREPL_Commands(t *testing.T) {
	repl, out := newTestREPL(t)

	assert.NoError(t, repl.Execute("add 1 Semen 34 Tver"))
	assert.NoError(t, repl.Execute("add 2 Ivan 27 Omsk"))
	assert.NoError(t, repl.Execute("add 3 Anna 41 Tver"))
	assert.ErrorIs(t, repl.Execute("add 4 Ivan 50 Kazan"), ErrRejected)
	assert.ErrorIs(t, repl.Execute("add 4 Ivan"), HelpAdd)

	out.Reset()
	assert.NoError(t, repl.Execute("remove 2"))
	assert.Equal(t, "removed 2:Ivan:27:Omsk\n", out.String())

	out.Reset()
	assert.NoError(t, repl.Execute("drop 1"))
	assert.Equal(t, "dropped 1:Semen:34:Tver\n", out.String())

	out.Reset()
	assert.NoError(t, repl.Execute("list"))
	assert.Equal(t, "3:Anna:41:Tver\n", out.String())

	out.Reset()
	assert.NoError(t, repl.Execute("find Anna"))
	assert.NoError(t, repl.Execute("get 1"))
	assert.Equal(t, "3:Anna:41:Tver\nno employee 1\n", out.String())

	out.Reset()
	assert.NoError(t, repl.Execute("clear"))
	assert.NoError(t, repl.Execute("size"))
	assert.Equal(t, "list 0, by id 0, by name 0\n", out.String())
}

func TestREPL_Dispatch(t *testing.T) {
	repl, out := newTestREPL(t)

	assert.NoError(t, repl.Execute("   "))
	assert.ErrorIs(t, repl.Execute("frobnicate"), ErrUnknownCommand)
	assert.ErrorIs(t, repl.Execute("get x"), HelpGet)
	assert.ErrorIs(t, repl.Execute("exit"), io.EOF)

	assert.NoError(t, repl.Execute("help"))
	assert.Contains(t, out.String(), HelpAdd.Error())
}
