// Package racer drives a full maze race: fetch a maze, solve it, submit the
// answer, remember the next maze, repeat until the judge hands out a
// certificate.
package racer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazebot/internal/ctxlog"
	"github.com/katalvlaran/mazebot/internal/mazebot"
	"github.com/katalvlaran/mazebot/search"
	"github.com/katalvlaran/mazebot/solver"
)

var (
	// ErrRejected is returned when the judge answers a submission with
	// anything but success.
	ErrRejected = errors.New("racer: submission rejected")

	// ErrNoNextMaze is returned when a successful reply names no next maze
	// and no certificate.
	ErrNoNextMaze = errors.New("racer: reply has no next maze")
)

// FinishedPrefix marks the checkpoint line written when a race ends. A
// checkpoint ending in such a line starts a fresh race.
const FinishedPrefix = "# finished "

// API is the part of the race service the Racer needs.
type API interface {
	Start(ctx context.Context, login string) (string, error)
	Fetch(ctx context.Context, path string) (*mazebot.Document, error)
	Submit(ctx context.Context, path, directions string) (*mazebot.Outcome, error)
}

// Checkpoint stores the path of the maze to resume from.
type Checkpoint interface {
	Append(line string) error
	Last() (string, bool, error)
}

// Options tunes a race.
type Options struct {
	Login    string
	Mode     search.Mode
	Verify   bool
	MaxMazes int // stop after this many solved mazes; 0 means no limit
}

// Summary reports what a Run achieved.
type Summary struct {
	RunID       string
	Solved      int
	Steps       int // sum of submitted direction lengths
	Finished    bool
	Certificate string
	Elapsed     time.Duration
}

// Racer runs races against an API.
type Racer struct {
	api  API
	cp   Checkpoint
	opts Options
}

// New returns a Racer.
func New(api API, cp Checkpoint, opts Options) *Racer {
	return &Racer{api: api, cp: cp, opts: opts}
}

// Run races until the judge reports the race finished, MaxMazes mazes are
// solved, ctx ends or a step fails. It resumes from the checkpoint when it
// holds an unfinished maze and starts a new race otherwise.
//
// A maze that cannot be solved stops the run before anything is submitted.
// The returned Summary is valid even when err is not nil.
func (r *Racer) Run(ctx context.Context) (*Summary, error) {
	sum := &Summary{RunID: uuid.NewString()}
	log := ctxlog.FromContext(ctx).With("run", sum.RunID)
	ctx = ctxlog.WithLogger(ctx, log)
	began := time.Now()
	defer func() { sum.Elapsed = time.Since(began) }()

	path, err := r.resume(ctx)
	if err != nil {
		return sum, err
	}

	for {
		if r.opts.MaxMazes > 0 && sum.Solved >= r.opts.MaxMazes {
			log.InfoContext(ctx, "maze limit reached", "solved", sum.Solved, "next", path)
			return sum, nil
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		out, steps, err := r.race(ctx, path)
		if err != nil {
			return sum, fmt.Errorf("maze %s: %w", path, err)
		}
		sum.Solved++
		sum.Steps += steps

		if out.Finished() {
			sum.Finished = true
			sum.Certificate = out.Certificate
			if err := r.cp.Append(FinishedPrefix + out.Certificate); err != nil {
				return sum, err
			}
			log.InfoContext(ctx, "race finished",
				"solved", sum.Solved,
				"certificate", out.Certificate,
				"elapsed", time.Since(began),
			)
			return sum, nil
		}
		if out.NextMaze == "" {
			return sum, fmt.Errorf("maze %s: %w", path, ErrNoNextMaze)
		}
		if err := r.cp.Append(out.NextMaze); err != nil {
			return sum, err
		}
		path = out.NextMaze
	}
}

// resume returns the maze to start with, opening a race if needed.
func (r *Racer) resume(ctx context.Context) (string, error) {
	log := ctxlog.FromContext(ctx)

	last, ok, err := r.cp.Last()
	if err != nil {
		return "", err
	}
	if ok && !strings.HasPrefix(last, FinishedPrefix) {
		log.InfoContext(ctx, "resuming race", "maze", last)
		return last, nil
	}

	path, err := r.api.Start(ctx, r.opts.Login)
	if err != nil {
		return "", err
	}
	if err := r.cp.Append(path); err != nil {
		return "", err
	}
	log.InfoContext(ctx, "race started", "login", r.opts.Login, "maze", path)
	return path, nil
}

// race solves and submits one maze.
func (r *Racer) race(ctx context.Context, path string) (*mazebot.Outcome, int, error) {
	log := ctxlog.FromContext(ctx)

	doc, err := r.api.Fetch(ctx, path)
	if err != nil {
		return nil, 0, err
	}
	g, err := doc.Grid()
	if err != nil {
		return nil, 0, solver.Malformed(err)
	}

	sol, err := solver.Solve(ctx, g, solver.WithMode(r.opts.Mode), solver.WithVerify(r.opts.Verify))
	if err != nil {
		log.ErrorContext(ctx, "maze not solved", "maze", doc.Name, "class", solver.Classify(err), "error", err)
		return nil, 0, err
	}

	out, err := r.api.Submit(ctx, path, sol.Directions)
	if err != nil {
		return nil, 0, err
	}
	if out.Result != "" && out.Result != "success" && !out.Finished() {
		return nil, 0, fmt.Errorf("%w: %s: %s", ErrRejected, out.Result, out.Message)
	}

	log.InfoContext(ctx, "maze solved",
		"maze", doc.Name,
		"size", g.Size(),
		"steps", sol.Steps,
		"shortest", out.ShortestSolutionLength,
		"nodes", sol.Nodes,
		"solve_time", sol.Elapsed,
	)
	return out, sol.Steps, nil
}
