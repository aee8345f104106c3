// Command orbitview-replay runs recorded touch traces through the gesture
// detector and orbit camera and prints the outcome of every event.
//
//	orbitview-replay [-config viewer.toml] [-plots dir] pinch.yaml [drag.yaml ...]
//
// Traces are replayed concurrently, each with its own viewer, and reported in
// the order given.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gekko3d/orbitview"
	"github.com/gekko3d/orbitview/trace"
)

func main() {
	configPath := flag.String("config", "", "viewer config (TOML); defaults are used when empty")
	plotDir := flag.String("plots", "", "also plot each trace to <dir>/<trace>.png")
	debug := flag.Bool("debug", false, "log gesture transitions")
	flag.Parse()

	log := orbitview.NewDefaultLogger("replay", *debug)
	if flag.NArg() == 0 {
		log.Errorf("at least one trace file is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, log, *configPath, flag.Args(), *plotDir); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(out io.Writer, log orbitview.Logger, configPath string, tracePaths []string, plotDir string) error {
	cfg := orbitview.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = orbitview.LoadConfig(configPath); err != nil {
			return err
		}
	}

	names := plotNames(tracePaths)
	reports := make([]bytes.Buffer, len(tracePaths))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range tracePaths {
		g.Go(func() error {
			plotPath := ""
			if plotDir != "" {
				plotPath = filepath.Join(plotDir, names[i]+".png")
			}
			return replayOne(&reports[i], log, cfg, path, plotPath)
		})
	}
	err := g.Wait()

	for i := range reports {
		if _, werr := reports[i].WriteTo(out); werr != nil {
			return werr
		}
	}
	return err
}

// plotNames names each trace's plot after its base name. A base name seen
// before gets a numeric suffix, starting at the trace's 1-based position.
func plotNames(tracePaths []string) []string {
	names := make([]string, len(tracePaths))
	seen := make(map[string]bool, len(tracePaths))
	for i, path := range tracePaths {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name := base
		for n := i + 1; seen[name]; n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

func replayOne(out io.Writer, log orbitview.Logger, cfg orbitview.Config, tracePath, plotPath string) error {
	tr, err := trace.LoadFile(tracePath)
	if err != nil {
		return err
	}
	cfg.Window.Width, cfg.Window.Height = tr.ViewWidth, tr.ViewHeight

	viewer := orbitview.NewViewer(cfg, nil, log)
	steps := trace.Replay(tr, viewer)
	fmt.Fprintf(out, "# %s\n", tracePath)
	for _, s := range steps {
		fmt.Fprintf(out, "%4d %-12s %d ptr  %-5s zoom=%7.2f eye=(%.3f, %.3f, %.3f)\n",
			s.Index, s.Event.Action, s.Event.PointerCount(), s.Gesture, s.ZoomDelta,
			s.Eye.X(), s.Eye.Y(), s.Eye.Z())
	}
	log.Infof("replayed %d events from %s", len(steps), tracePath)

	if plotPath == "" {
		return nil
	}
	f, err := os.Create(plotPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, trace.Plot(steps, tr.ViewWidth, tr.ViewHeight)); err != nil {
		f.Close()
		return fmt.Errorf("plot %s: %w", tracePath, err)
	}
	return f.Close()
}
