// Command orbitview opens a desktop window with an orbit camera driven by
// emulated touch input. Left drag orbits, right drag pinches, the wheel zooms.
// With -config the file is watched and edits apply live.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/orbitview"
	"github.com/gekko3d/orbitview/platform/glfwinput"
)

func main() {
	configPath := flag.String("config", "", "viewer config (TOML)")
	scenePath := flag.String("scene", "", "scene definition (YAML); a sample scene is used when empty")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	log := orbitview.NewDefaultLogger("orbitview", *debug)

	cfg := orbitview.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = orbitview.LoadConfig(*configPath); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	}
	if *debug {
		cfg.Logging.Debug = true
	}

	scene := &sampleScene
	if *scenePath != "" {
		var err error
		if scene, err = loadScene(*scenePath); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	modules := []orbitview.Module{
		orbitview.LoggingModule{Config: cfg.Logging},
		orbitview.TimeModule{},
		glfwinput.WindowModule{Width: cfg.Window.Width, Height: cfg.Window.Height, Title: cfg.Window.Title},
		orbitview.ViewerModule{Config: cfg},
		orbitview.AssetServerModule{},
		orbitview.SceneModule{Def: scene},
		orbitview.RenderModule{},
		quitOnSignal{ctx: ctx},
	}
	if *configPath != "" {
		updates, err := orbitview.WatchConfig(ctx, *configPath, log)
		if err != nil {
			log.Warnf("live config disabled: %v", err)
		} else {
			modules = append(modules, orbitview.ConfigReloadModule{Updates: updates})
		}
	}

	app := orbitview.NewAppBuilder().UseModule(modules...).Build()
	app.Run()

	if win, ok := orbitview.Resource[glfwinput.Window](app); ok {
		win.Close()
	}
}

type quitOnSignal struct {
	ctx context.Context
}

func (q quitOnSignal) Install(app *orbitview.App, cmd *orbitview.Commands) {
	cmd.UseSystem(
		orbitview.System(func(cmd *orbitview.Commands) {
			if q.ctx.Err() != nil {
				cmd.Quit()
			}
		}).InStage(orbitview.Finale),
	)
}

func loadScene(path string) (*orbitview.SceneDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def orbitview.SceneDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return &def, nil
}
