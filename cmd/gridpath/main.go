// Command gridpath solves directional maze and falling-byte inputs.
//
// Usage:
//
//	gridpath [-mode maze|bytes] [-env file] [-v] file...
//
// In maze mode each file is a text maze ('#', '.', 'S', 'E'); the minimum
// cost and the number of cells on any optimal route are printed. In bytes
// mode each file lists "x,y" coordinates; the step count after
// GRIDPATH_BYTE_LIMIT bytes and the first blocking byte are printed.
// Files are solved concurrently; output follows argument order.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/bytefall"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

var (
	errNoInput = errors.New("no input files")
	errMode    = errors.New("unknown mode")
)

// solver turns one input file into one output line.
type solver func(path string, cfg config.Config, log *logrus.Entry) (string, error)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "maze", "input kind: maze or bytes")
	envFile := fs.String("env", ".env", "optional .env file with GRIDPATH_* settings")
	verbose := fs.Bool("v", false, "log search details")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errNoInput
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(cfg.LogLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var solve solver
	switch *mode {
	case "maze":
		solve = solveMaze
	case "bytes":
		solve = solveBytes
	default:
		return fmt.Errorf("%w: %q", errMode, *mode)
	}

	outputs := make([]string, fs.NArg())
	g, ctx := errgroup.WithContext(context.Background())
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, path := range fs.Args() {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := solve(path, cfg, log.WithField("file", path))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, line := range outputs {
		fmt.Fprintln(stdout, line)
	}
	return nil
}

// solveMaze reports the minimum cost and the optimal cell count of a text maze.
func solveMaze(path string, cfg config.Config, log *logrus.Entry) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{
		"width":   g.Width(),
		"height":  g.Height(),
		"regions": len(g.Components()),
	}).Debug("maze parsed")

	res, err := pathfind.Search(g, append(cfg.SearchOptions(), pathfind.WithLogger(log))...)
	if err != nil {
		return "", err
	}
	if !res.Found {
		log.Warn("end is unreachable")
		return fmt.Sprintf("%s: no path", path), nil
	}
	return fmt.Sprintf("%s: cost=%d cells=%d", path, res.MinCost, res.OptimalCells.Size()), nil
}

// solveBytes reports the step count after cfg.ByteLimit bytes and the first blocking byte.
func solveBytes(path string, cfg config.Config, log *logrus.Entry) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bytes, err := bytefall.Parse(f)
	if err != nil {
		return "", err
	}
	limit := cfg.ByteLimit
	if limit > len(bytes) {
		log.WithFields(logrus.Fields{"limit": limit, "bytes": len(bytes)}).Warn("byte limit exceeds input, using all bytes")
		limit = len(bytes)
	}

	opts := []pathfind.Option{pathfind.WithLogger(log)}
	stepsText := "none"
	steps, err := bytefall.ShortestSteps(cfg.ByteSize, bytes, limit, opts...)
	switch {
	case err == nil:
		stepsText = fmt.Sprint(steps)
	case !errors.Is(err, pathfind.ErrNoPath):
		return "", err
	}

	blockText := "never"
	_, p, err := bytefall.FirstBlocking(cfg.ByteSize, bytes, opts...)
	switch {
	case err == nil:
		blockText = fmt.Sprintf("%d,%d", p.Col, p.Row)
	case !errors.Is(err, bytefall.ErrNeverBlocked):
		return "", err
	}
	return fmt.Sprintf("%s: steps=%s blocking=%s", path, stepsText, blockText), nil
}
