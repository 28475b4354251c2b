package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/minsweeper/minsweeper/internal/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
)

type Op byte

const (
	OpGet    Op = 'g'
	OpReveal Op = 'r'
	OpMark   Op = 'm'
	OpNew    Op = 'n'
	OpHelp   Op = 'h'
	OpQuit   Op = 'q'
)

// Maps known commands to the allowed range of argument counts
var commandNargs = map[Op][2]int{
	OpGet:    {0, 0},
	OpReveal: {2, 2},
	OpMark:   {2, 2},
	OpNew:    {0, 2},
	OpHelp:   {0, 0},
	OpQuit:   {0, 0},
}

// Command is one line of the text protocol shared by the WebSocket and the
// console: "g", "r ROW COL", "m ROW COL", "n [SIZE [MINES]]", "h" or "q".
type Command struct {
	Op       Op
	Row, Col int
	Params   *mines.GameParams // for OpNew; nil means the defaults
}

func parseInts(args []string) ([]int, error) {
	ns := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int, got %q", i+1, arg)
		}
		ns[i] = n
	}
	return ns, nil
}

func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 || len(parts[0]) != 1 {
		return Command{}, ErrUnknownCommand
	}

	op := Op(parts[0][0])
	nargs, ok := commandNargs[op]
	if !ok {
		return Command{}, ErrUnknownCommand
	}
	args := parts[1:]
	if len(args) < nargs[0] || len(args) > nargs[1] {
		return Command{}, fmt.Errorf("%w for %q", ErrArgCount, op)
	}

	ns, err := parseInts(args)
	if err != nil {
		return Command{}, err
	}

	cmd := Command{Op: op}
	switch op {
	case OpReveal, OpMark:
		cmd.Row, cmd.Col = ns[0], ns[1]
	case OpNew:
		switch len(ns) {
		case 1:
			p := mines.DefaultParams(ns[0])
			cmd.Params = &p
		case 2:
			cmd.Params = &mines.GameParams{Size: ns[0], MineCount: ns[1]}
		}
	}
	return cmd, nil
}

// Result is what a command did. Reveal and Mark are set only by the
// commands that produce them.
type Result struct {
	Game   Snapshot
	Reveal *mines.RevealOutcome
	Mark   *mines.MarkOutcome
}

// Execute applies a game command. Help and quit only read the game.
func (m *Manager) Execute(cmd Command) (Result, error) {
	switch cmd.Op {
	case OpReveal:
		outcome, s := m.Reveal(cmd.Row, cmd.Col)
		return Result{Game: s, Reveal: &outcome}, nil
	case OpMark:
		outcome, s := m.ToggleMark(cmd.Row, cmd.Col)
		return Result{Game: s, Mark: &outcome}, nil
	case OpNew:
		s, err := m.NewGame(cmd.Params)
		if err != nil {
			return Result{}, err
		}
		return Result{Game: s}, nil
	default:
		return Result{Game: m.Snapshot()}, nil
	}
}
