// gazehunt: find the cube by looking at it and pulling the trigger.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"gazehunt/internal/config"
	"gazehunt/internal/game"
	"gazehunt/internal/log"
)

var (
	configPath = flag.String("config", config.DefaultPath, "JSON config file (optional)")
	seed       = flag.Int64("seed", 0, "relocation RNG seed, 0 for the clock")
	logLevel   = flag.String("log-level", "", "debug, info, warn or error")
	dashboard  = flag.String("dashboard", "", "spectator dashboard address, e.g. :8080")
	mono       = flag.Bool("mono", false, "render a single eye instead of side-by-side stereo")
	sweep      = flag.Bool("sweep", false, "move the head automatically instead of following the mouse")
	writeCfg   = flag.String("write-config", "", "write the effective config to this path and exit")
)

func main() {
	flag.Parse()

	// An explicit -config is relative to where the user ran us, not to execDir.
	path, explicit, err := resolveConfigPath(*configPath, flagSet("config"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "gazehunt:", err)
		os.Exit(1)
	}

	// Run from the executable's directory for deployed builds so relative
	// asset paths resolve. "go run" binaries live in a go-build temp dir.
	var chdirErr error
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			chdirErr = os.Chdir(execDir)
		}
	}

	if err := run(path, explicit, chdirErr); err != nil {
		fmt.Fprintln(os.Stderr, "gazehunt:", err)
		os.Exit(1)
	}
}

func run(path string, explicit bool, chdirErr error) error {
	load := config.LoadOptional
	if explicit {
		load = config.Load
	}
	cfg, err := load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Init(cfg.LogLevel)
	if chdirErr != nil {
		log.Warn("staying in the working directory", "error", chdirErr)
	}

	if *writeCfg != "" {
		if err := cfg.Save(*writeCfg); err != nil {
			return err
		}
		log.Info("config written", "path", *writeCfg)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return game.New(cfg).Run(ctx)
}

// resolveConfigPath makes an explicitly given config path absolute. The default
// path stays relative and is looked up in the executable's directory.
func resolveConfigPath(path string, explicit bool) (string, bool, error) {
	if !explicit {
		return path, false, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", true, fmt.Errorf("resolve config %s: %w", path, err)
	}
	return abs, true, nil
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// applyFlags overrides cfg with flags that were set explicitly.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		case "dashboard":
			cfg.DashboardAddr = *dashboard
		case "mono":
			cfg.Render.Stereo = !*mono
		case "sweep":
			cfg.Input.Sweep = *sweep
		}
	})
}
