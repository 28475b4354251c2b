package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minsweeper/minsweeper/internal/mines"
	"github.com/minsweeper/minsweeper/internal/session"
)

const prompt = "> "

// Console plays the live game of a [session.Manager] over line-oriented text
// streams.
type Console struct {
	logger  *slog.Logger
	manager *session.Manager
	in      io.Reader
	out     io.Writer
}

func New(logger *slog.Logger, manager *session.Manager, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger,
		manager: manager,
		in:      in,
		out:     out,
	}
}

// Run reads commands until "q", end of input or ctx is done. Cancelling ctx
// stops Run even while it waits for input.
func (c *Console) Run(ctx context.Context) error {
	c.render(c.manager.Snapshot())

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, done := c.readLines(readCtx)
	for {
		fmt.Fprint(c.out, prompt)

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				return <-done
			}
			line = l
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := session.ParseCommand(line)
		if err != nil {
			fmt.Fprintf(c.out, "error: %s\n", err)
			continue
		}
		switch cmd.Op {
		case session.OpQuit:
			return nil
		case session.OpHelp:
			fmt.Fprintln(c.out, session.HelpText)
			continue
		}

		res, err := c.manager.Execute(cmd)
		if err != nil {
			fmt.Fprintf(c.out, "error: %s\n", err)
			continue
		}
		c.report(res)
	}
}

// readLines scans c.in on its own goroutine. done receives exactly one value
// once lines is closed.
func (c *Console) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	done := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				done <- ctx.Err()
				return
			}
		}
		if err := scanner.Err(); err != nil {
			done <- fmt.Errorf("unable to read command: %w", err)
			return
		}
		done <- nil
	}()
	return lines, done
}

func (c *Console) report(res session.Result) {
	var skipped error
	switch {
	case res.Reveal != nil:
		skipped = res.Reveal.Skipped
	case res.Mark != nil:
		skipped = res.Mark.Skipped
	}
	if skipped != nil {
		fmt.Fprintf(c.out, "skipped: %s\n", skipped)
		return
	}

	c.render(res.Game)
	if res.Game.Status == mines.InProgress {
		return
	}
	summary, err := c.manager.Summary()
	if err != nil {
		c.logger.Error("unable to summarise finished game", slog.Any("error", err))
		return
	}
	fmt.Fprintf(c.out, "%s %s\n", summary.Title, summary.Message)
}

func (c *Console) render(s session.Snapshot) {
	fmt.Fprint(c.out, c.manager.Render())
	fmt.Fprintf(c.out, "%s  remaining: %d  mines: %d  time: %s\n",
		s.Status, s.Remaining, s.MineCount, s.Elapsed)
}
