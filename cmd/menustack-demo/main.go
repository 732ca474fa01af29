package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/jobs"
	"github.com/oxport/menustack/pkg/menustack/locale"
	"github.com/oxport/menustack/pkg/menustack/options"
	"github.com/oxport/menustack/pkg/menustack/platform/desktop"
	"github.com/oxport/menustack/pkg/menustack/platform/handheld"
	"github.com/oxport/menustack/pkg/menustack/screens"
)

// SDL must be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

type config struct {
	optionsPath string
	savePath    string
	lang        string
	logPath     string
	logLevel    string
	fontPath    string
	evdevPath   string
	debug       bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.optionsPath, "config", defaultPath("options.toml"), "options file; created on first save")
	flag.StringVar(&cfg.savePath, "save", defaultPath("save.toml"), "saved game loaded by Load Saved Game")
	flag.StringVar(&cfg.lang, "lang", "", "override the language from the options file (en, de, fr)")
	flag.StringVar(&cfg.logPath, "log", "", "write logs to this file as well as stderr")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "application log level; also configurable via "+constants.LogLevelEnvVar)
	flag.StringVar(&cfg.fontPath, "font", "", "TTF font for menu text; without one text is drawn as bars")
	flag.StringVar(&cfg.evdevPath, "evdev", "", "also read buttons from this input device, e.g. /dev/input/event3 (linux)")
	flag.BoolVar(&cfg.debug, "debug", constants.IsDebug(), "verbose framework logs, panic on controller misuse; also configurable via "+constants.DebugEnvVar)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "menustack-demo:", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	menustack.Init(menustack.Options{
		LogPath:  cfg.logPath,
		LogLevel: cfg.logLevel,
		Debug:    cfg.debug,
	})
	defer menustack.Close()
	logger := menustack.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := options.Load(cfg.optionsPath, nil)
	if err != nil {
		return err
	}
	opts := store.Get()

	lang := opts.Language
	if cfg.lang != "" {
		lang = cfg.lang
	}
	translator, err := locale.New(lang)
	if err != nil {
		return err
	}

	runner := jobs.NewRunner(ctx, nil)
	defer runner.Shutdown()

	window, err := desktop.Open("menustack", opts.Display.Width, opts.Display.Height, desktop.WindowOptionsFor(opts.Display))
	if err != nil {
		return err
	}
	defer window.Close()

	renderer, err := desktop.NewRenderer(window, desktop.DefaultTheme(cfg.fontPath))
	if err != nil {
		return err
	}
	defer renderer.Close()

	sdlSource := desktop.NewSource()
	defer sdlSource.Close()
	sources := input.Sources{sdlSource}

	if cfg.evdevPath != "" {
		queue := input.NewQueue(0)
		device, err := handheld.Open(cfg.evdevPath, queue, true)
		if err != nil {
			logger.Warn("evdev input disabled", "path", cfg.evdevPath, "error", err)
		} else {
			defer device.Close()
			sources = append(sources, queue)
		}
	}

	intro, err := introSlides()
	if err != nil {
		return err
	}

	env := &screens.Env{
		Locale:   translator,
		Options:  store,
		Jobs:     runner,
		LoadGame: loadGame(cfg.savePath),
		NewGame:  newGame(Save{Base: "Nevada", Turn: 1}),
		Intro:    intro,
		Logger:   logger,
	}

	width, height := window.Size()
	controller := menustack.New(menustack.ControllerSettings{
		Root:         screens.NewMainMenu(env),
		Error:        screens.ErrorFactory(env),
		Source:       sources,
		Renderer:     renderer,
		TickInterval: time.Second / time.Duration(opts.Display.FPS),
		Width:        width,
		Height:       height,
		Debug:        cfg.debug,
	})
	env.Size = controller.Size
	if err := controller.Start(screens.NewMainMenu(env)); err != nil {
		return err
	}
	defer controller.Close()

	logger.Info("menu running", "language", translator.Language().String(), "options", store.Path())

	err = controller.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}

func defaultPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "menustack", name)
}
