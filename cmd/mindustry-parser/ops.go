package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/inventor200/MindustryParser/pkg/settings"
)

// opState is the progress through one operation group. The argument list is
// a flat token stream; each --read group consumes one key token and each
// --write group consumes a key token then a value token.
type opState int

const (
	stateIdle opState = iota
	stateAwaitingKey
	stateAwaitingValue
)

type opKind int

const (
	opRead opKind = iota
	opWrite
)

// options are the modifier flags, honored wherever they appear in the
// argument list.
type options struct {
	showAll bool
	pretend bool
	jsonOut bool
}

// scanOptions pre-scans the tokens for modifiers. Matching is
// case-insensitive, like operation tokens.
func scanOptions(args []string) options {
	var opts options
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "--show-all":
			opts.showAll = true
		case "--pretend":
			opts.pretend = true
		case "--json":
			opts.jsonOut = true
		}
	}
	return opts
}

// runOps walks the tokens as a three-state machine and applies each
// completed operation against the table. Reads print immediately; writes
// mark the table dirty. The first failing operation aborts the walk, and an
// operation left unfinished when the tokens run out is an error rather than
// a silent drop.
func runOps(table *settings.Table, args []string, opts options, out io.Writer) (dirty bool, err error) {
	state := stateIdle
	var op opKind
	var key string

	for _, arg := range args {
		switch state {
		case stateIdle:
			switch strings.ToLower(arg) {
			case "--read", "-r":
				op = opRead
				state = stateAwaitingKey
			case "--write", "-w":
				op = opWrite
				state = stateAwaitingKey
			case "--show-all", "--pretend", "--json":
				// Modifiers, already collected by scanOptions.
			default:
				return dirty, fmt.Errorf("unknown operation: %s", arg)
			}

		case stateAwaitingKey:
			entry, ok := table.Lookup(arg)
			if !ok {
				return dirty, fmt.Errorf("%q: %w", arg, settings.ErrKeyNotFound)
			}
			if op == opRead {
				if err := printRead(out, arg, entry, opts.jsonOut); err != nil {
					return dirty, err
				}
				state = stateIdle
			} else {
				key = arg
				state = stateAwaitingValue
			}

		case stateAwaitingValue:
			if err := table.Update(key, arg); err != nil {
				return dirty, err
			}
			dirty = true
			state = stateIdle
		}
	}

	switch state {
	case stateAwaitingKey:
		return dirty, fmt.Errorf("operation is missing its key")
	case stateAwaitingValue:
		return dirty, fmt.Errorf("write of %q is missing its value", key)
	}
	return dirty, nil
}
