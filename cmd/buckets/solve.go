package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/buckets/bfs"
	"github.com/katalvlaran/buckets/config"
	"github.com/katalvlaran/buckets/core"
	"github.com/katalvlaran/buckets/dfs"
)

// ErrUnsolved is returned when at least one strategy found no solution.
var ErrUnsolved = errors.New("one or more strategies found no solution")

// strategy is one named search run by the solve command.
type strategy struct {
	name string
	run  func(ctx context.Context, start core.State, sc config.SearchConfig) (core.Path, error)
}

// strategies lists the searches in output order.
var strategies = []strategy{
	{name: "BFS", run: runBFS},
	{name: "DFS", run: runDFS},
	{name: "IDS", run: runIDS},
}

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Run BFS, DFS and IDS and print their solution paths",
		Args:  cobra.NoArgs,
		RunE:  a.runSolve,
	}
}

// runSolve prints "<NAME> Solution <path>" for every strategy, or
// "<NAME> Solution None" when a strategy fails.
func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	sc := a.cfg.Search
	start, err := sc.Start()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	unsolved := 0
	for _, s := range strategies {
		path, err := s.run(cmd.Context(), start, sc)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			slog.Warn("search failed", "strategy", s.name, "start", start.String(), "error", err)
			fmt.Fprintf(out, "%s Solution None\n", s.name)
			unsolved++
			continue
		}
		slog.Info("search succeeded", "strategy", s.name, "operators", path.Len())
		fmt.Fprintf(out, "%s Solution %s\n", s.name, path)
		if a.flags.Explain {
			if err = explain(out, path); err != nil {
				return err
			}
		}
	}
	if unsolved > 0 {
		return fmt.Errorf("%w: %d of %d strategies failed", ErrUnsolved, unsolved, len(strategies))
	}

	return nil
}

// explain prints the operator behind every step of path.
func explain(w io.Writer, path core.Path) error {
	moves, err := core.Explain(path, core.DefaultOperators())
	if err != nil {
		return err
	}
	for i, m := range moves {
		fmt.Fprintf(w, "  %d. %-11s -> %s\n", i+1, m.Operator.Name, m.State)
	}

	return nil
}

func runBFS(ctx context.Context, start core.State, sc config.SearchConfig) (core.Path, error) {
	res, err := bfs.BFS(start,
		bfs.WithContext(ctx),
		bfs.WithObjective(sc.Objective()),
		bfs.WithMaxExpansions(sc.MaxExpansions),
		bfs.WithOnVisit(func(s core.State, depth int) error {
			slog.Debug("bfs visit", "state", s.String(), "depth", depth)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	slog.Debug("bfs done", "expanded", res.Expanded, "generated", res.Generated)

	return res.Path, nil
}

func runDFS(ctx context.Context, start core.State, sc config.SearchConfig) (core.Path, error) {
	res, err := dfs.DFS(start, sc.DepthLimit,
		dfs.WithContext(ctx),
		dfs.WithObjective(sc.Objective()),
	)
	if err != nil {
		return nil, err
	}
	slog.Debug("dfs done", "bound", res.Bound, "visited", res.Visited)

	return res.Path, nil
}

func runIDS(ctx context.Context, start core.State, sc config.SearchConfig) (core.Path, error) {
	res, err := dfs.IDS(start,
		dfs.WithContext(ctx),
		dfs.WithObjective(sc.Objective()),
		dfs.WithMaxDepth(sc.MaxIDSDepth),
		dfs.WithOnDeepen(func(bound int) {
			slog.Debug("ids deepen", "bound", bound)
		}),
	)
	if err != nil {
		return nil, err
	}
	slog.Debug("ids done", "bound", res.Bound, "attempts", res.Attempts, "visited", res.Visited)

	return res.Path, nil
}
