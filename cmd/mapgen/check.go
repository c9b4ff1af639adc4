package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/level"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

type checkFlags struct {
	runs   int
	seed   int64
	width  int
	height int
	env    string
}

// checkTarget is one environment/algorithm pair exercised by check
type checkTarget struct {
	env entities.Environment
	alg entities.Algorithm
}

func (t checkTarget) String() string {
	if t.alg == "" {
		return string(t.env)
	}
	return string(t.env) + "/" + string(t.alg)
}

func allTargets() []checkTarget {
	var out []checkTarget
	for _, env := range entities.Environments {
		if env != entities.EnvironmentDungeon {
			out = append(out, checkTarget{env: env})
			continue
		}
		for _, alg := range entities.Algorithms {
			out = append(out, checkTarget{env: env, alg: alg})
		}
	}
	return out
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Generate many seeded levels and verify their invariants",
		Long: `Generate --runs seeded levels for every environment and dungeon algorithm and
verify that each is enclosed by walls, fully connected and has its stairs
and player on distinct open cells.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.runs, "runs", 20, "levels per environment/algorithm")
	flags.Int64Var(&f.seed, "seed", 1, "first seed; runs use consecutive seeds")
	flags.IntVar(&f.width, "width", 80, "map width (20-200)")
	flags.IntVar(&f.height, "height", 40, "map height (20-120)")
	flags.StringVar(&f.env, "env", "", "only check this environment")

	return cmd
}

func runCheck(cmd *cobra.Command, f *checkFlags) error {
	if f.runs <= 0 {
		return errors.InvalidArgument("runs must be positive").WithMeta("runs", f.runs)
	}

	targets := allTargets()
	if f.env != "" {
		env, err := entities.ParseEnvironment(f.env)
		if err != nil {
			return err
		}
		var filtered []checkTarget
		for _, t := range targets {
			if t.env == env {
				filtered = append(filtered, t)
			}
		}
		targets = filtered
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, cleanup, err := newLevelService(ctx, serviceOptions{StableIDs: true})
	if err != nil {
		return err
	}
	defer cleanup()

	failures := checkTargets(ctx, svc, targets, f, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if failures > 0 {
		return errors.FailedPreconditionf("%d levels failed verification", failures).
			WithMeta("failures", failures)
	}
	return nil
}

// checkTargets generates f.runs levels per target, prints one summary line per
// target to out and each failure to errOut, and returns the failure count
func checkTargets(
	ctx context.Context, svc level.Service, targets []checkTarget, f *checkFlags, out, errOut io.Writer,
) int {
	failures := 0
	for _, t := range targets {
		passed := 0
		for i := 0; i < f.runs; i++ {
			seed := f.seed + int64(i)
			input := &level.GenerateInput{
				Width:         f.width,
				Height:        f.height,
				PlayerX:       f.width / 2,
				PlayerY:       f.height / 2,
				HasUpstairs:   true,
				HasDownstairs: true,
				CreatePlayer:  true,
				Environment:   string(t.env),
				Algorithm:     string(t.alg),
				Seed:          &seed,
			}

			generated, err := svc.Generate(ctx, input)
			if err == nil {
				err = verifyLevel(generated)
			}
			if err != nil {
				failures++
				fmt.Fprintf(errOut, "%s seed %d: %v\n", t, seed, err)
				continue
			}
			passed++
		}
		fmt.Fprintf(out, "%-20s %d/%d ok\n", t, passed, f.runs)
	}
	return failures
}

// verifyLevel checks a generated level: walls all around, a single open
// region, and every placement on its own open interior cell
func verifyLevel(out *level.GenerateOutput) error {
	if out == nil || out.Grid == nil || out.Level == nil {
		return errors.Internal("empty generation output")
	}
	if err := terrain.CheckEnclosed(out.Grid); err != nil {
		return err
	}
	if err := terrain.CheckConnected(out.Grid); err != nil {
		return err
	}

	lvl := out.Level
	if want := out.Grid.Width() * out.Grid.Height(); lvl.CountTerrain() != want {
		return errors.Internalf("baked %d terrain entities, want %d", lvl.CountTerrain(), want)
	}

	// a single open cell has to hold everything
	shared := len(out.Grid.OpenInteriorCells()) == 1
	seen := make(map[entities.Point]entities.Kind)
	placed := []struct {
		kind entities.Kind
		at   *entities.Point
	}{
		{entities.KindUpstairs, lvl.Upstairs},
		{entities.KindDownstairs, lvl.Downstairs},
		{entities.KindPlayer, lvl.Player},
	}
	for _, p := range placed {
		if p.at == nil {
			continue
		}
		if !out.Grid.InInterior(p.at.X, p.at.Y) || out.Grid.IsBlocked(p.at.X, p.at.Y) {
			return errors.FailedPreconditionf("%s placed on a blocked cell", p.kind).
				WithMeta("x", p.at.X).
				WithMeta("y", p.at.Y)
		}
		if other, ok := seen[*p.at]; ok && !shared {
			return errors.FailedPreconditionf("%s shares a cell with %s", p.kind, other).
				WithMeta("x", p.at.X).
				WithMeta("y", p.at.Y)
		}
		seen[*p.at] = p.kind
	}
	return nil
}
