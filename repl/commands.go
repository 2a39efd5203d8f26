package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/drpcorg/multiindex/examples"
)

var (
	HelpAdd    = errors.New("add 1 Semen 34 Tver")
	HelpGet    = errors.New("get 1")
	HelpFind   = errors.New("find Semen")
	HelpRemove = errors.New("remove 1")
	HelpDrop   = errors.New("drop 1")
)

var ErrRejected = errors.New("rejected: id or name already taken")

func (repl *REPL) CommandHelp(args []string) error {
	for _, help := range []error{HelpAdd, HelpGet, HelpFind, HelpRemove, HelpDrop} {
		_, _ = fmt.Fprintln(repl.out, help.Error())
	}
	_, _ = fmt.Fprintln(repl.out, "list\nsize\nclear\nexit")
	return nil
}

func (repl *REPL) CommandAdd(args []string) error {
	e, err := examples.ParseEmployee(args)
	if err != nil {
		return HelpAdd
	}
	if !repl.Staff.List.Add(e) {
		return ErrRejected
	}
	_, _ = fmt.Fprintf(repl.out, "added %s\n", e)
	return nil
}

func parseID(args []string, help error) (int, error) {
	if len(args) != 1 {
		return 0, help
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, help
	}
	return id, nil
}

func (repl *REPL) CommandGet(args []string) error {
	id, err := parseID(args, HelpGet)
	if err != nil {
		return err
	}
	e, ok := repl.Staff.ByID.Get(id)
	if !ok {
		_, _ = fmt.Fprintf(repl.out, "no employee %d\n", id)
		return nil
	}
	_, _ = fmt.Fprintln(repl.out, e.String())
	return nil
}

func (repl *REPL) CommandFind(args []string) error {
	if len(args) != 1 {
		return HelpFind
	}
	e, ok := repl.Staff.ByName.Get(args[0])
	if !ok {
		_, _ = fmt.Fprintf(repl.out, "no employee %s\n", args[0])
		return nil
	}
	_, _ = fmt.Fprintln(repl.out, e.String())
	return nil
}

// CommandRemove removes by key through the unique index.
func (repl *REPL) CommandRemove(args []string) error {
	id, err := parseID(args, HelpRemove)
	if err != nil {
		return err
	}
	e, ok := repl.Staff.ByID.Remove(id)
	if !ok {
		_, _ = fmt.Fprintf(repl.out, "no employee %d\n", id)
		return nil
	}
	_, _ = fmt.Fprintf(repl.out, "removed %s\n", e)
	return nil
}

// CommandDrop removes by value through the sequential index.
func (repl *REPL) CommandDrop(args []string) error {
	id, err := parseID(args, HelpDrop)
	if err != nil {
		return err
	}
	e, ok := repl.Staff.ByID.Get(id)
	if !ok || !repl.Staff.List.Remove(e) {
		_, _ = fmt.Fprintf(repl.out, "no employee %d\n", id)
		return nil
	}
	_, _ = fmt.Fprintf(repl.out, "dropped %s\n", e)
	return nil
}

func (repl *REPL) CommandList(args []string) error {
	for e := range repl.Staff.List.All() {
		_, _ = fmt.Fprintln(repl.out, e.String())
	}
	return nil
}

func (repl *REPL) CommandSize(args []string) error {
	_, _ = fmt.Fprintf(repl.out, "list %d, by id %d, by name %d\n",
		repl.Staff.List.Size(), repl.Staff.ByID.Size(), repl.Staff.ByName.Size())
	return nil
}

func (repl *REPL) CommandClear(args []string) error {
	repl.Staff.List.Clear()
	return nil
}
