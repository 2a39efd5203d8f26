package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/drpcorg/multiindex"
	"github.com/drpcorg/multiindex/examples"
	"github.com/drpcorg/multiindex/utils"
	"github.com/ergochat/readline"
)

// REPL per se.
type REPL struct {
	Staff *examples.Staff
	rl    *readline.Instance
	out   io.Writer
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),

	readline.PcItem("add"),
	readline.PcItem("get"),
	readline.PcItem("find"),
	readline.PcItem("remove"),
	readline.PcItem("drop"),
	readline.PcItem("list"),
	readline.PcItem("size"),
	readline.PcItem("clear"),

	readline.PcItem("exit"),
	readline.PcItem("quit"),
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewREPL(out io.Writer, log utils.Logger) (*REPL, error) {
	staff, err := examples.NewStaff(multiindex.Options{Name: "repl", Logger: log})
	if err != nil {
		return nil, err
	}
	return &REPL{Staff: staff, out: out}, nil
}

func (repl *REPL) Open() (err error) {
	repl.rl, err = readline.NewEx(&readline.Config{
		Prompt:          "◌ ",
		HistoryFile:     ".multiindex_cmd_log.txt",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return
	}
	repl.rl.CaptureExitSignal()
	return
}

func (repl *REPL) Close() error {
	if repl.rl != nil {
		_ = repl.rl.Close()
		repl.rl = nil
	}
	return nil
}

func (repl *REPL) REPL() (err error) {
	var line string
	line, err = repl.rl.Readline()
	if err == readline.ErrInterrupt && len(line) != 0 {
		return nil
	}
	if err != nil {
		return err
	}
	return repl.Execute(line)
}

var ErrUnknownCommand = errors.New("command unknown")

// Execute runs one command line.
func (repl *REPL) Execute(line string) (err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		err = repl.CommandHelp(args)
	case "add":
		err = repl.CommandAdd(args)
	case "get":
		err = repl.CommandGet(args)
	case "find":
		err = repl.CommandFind(args)
	case "remove":
		err = repl.CommandRemove(args)
	case "drop":
		err = repl.CommandDrop(args)
	case "ls", "list":
		err = repl.CommandList(args)
	case "size":
		err = repl.CommandSize(args)
	case "clear":
		err = repl.CommandClear(args)
	case "exit", "quit":
		err = io.EOF
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	return
}

func main() {
	repl, err := NewREPL(os.Stdout, utils.NewDefaultLogger(slog.LevelWarn))
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}
	if err = repl.Open(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}
	defer repl.Close()

	for err != io.EOF {
		if err != nil {
			_, _ = fmt.Fprintf(os.Stdout, "%s\n", err.Error())
		}
		err = repl.REPL()
	}
}
