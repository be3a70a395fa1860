// Package main is the entry point for the magnify simulator.
package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/BrugadaSyndrome/bslogger"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/magnify/internal/config"
	"github.com/joe/magnify/internal/magnifier"
	"github.com/joe/magnify/internal/settings"
	"github.com/joe/magnify/internal/transition"
	"github.com/joe/magnify/internal/tui"
	"github.com/joe/magnify/internal/tui/shared"
	pkgerrors "github.com/joe/magnify/pkg/errors"
	"github.com/joe/magnify/pkg/magnification"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fail(err, cfg)
	}

	err = run(cfg)
	if err != nil {
		fail(err, cfg)
	}
}

func run(cfg *config.Config) error {
	terminal, restoreOutput, err := quietOutput()
	if err != nil {
		return err
	}
	defer restoreOutput()

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	source, err := openSettings(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSettings(source, logger)

	provider := settings.NewScaleProvider(source, cfg.User, logger)
	bridge := shared.NewEventBridge()
	defer bridge.Close()

	if file, ok := source.(*settings.File); ok && cfg.WatchSettings {
		file.OnReload = func() {
			bridge.Send(shared.SettingsReloadedMsg{Scale: provider.Scale()})
		}
		err = file.Watch()
		if err != nil {
			return err
		}
	}

	region := magnification.NewRegion(magnification.Rect{Right: cfg.Width, Bottom: cfg.Height})
	fullScreen := magnifier.NewFullScreen(region)
	window := magnifier.NewWindow(provider)
	applyStartMode(cfg, fullScreen, window)

	controller := transition.NewController(&sync.Mutex{}, fullScreen, window, logger)
	controller.GestureHandlerID = cfg.GestureHandlerID

	model := tui.NewAppModel(tui.Deps{
		Controller: controller,
		FullScreen: fullScreen,
		Window:     window,
		Bridge:     bridge,
		Displays:   cfg.Displays,
	})

	// Only use alt screen if stdout is a TTY
	opts := []tea.ProgramOption{tea.WithOutput(terminal)}
	if term.IsTerminal(int(terminal.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	_, err = tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("simulator stopped: %w", err)
	}

	return nil
}

// quietOutput points os.Stdout and os.Stderr at the null device so log lines, which bslogger
// always prints to them, cannot draw over the TUI. It returns the real stdout for the TUI and a
// func that restores both.
func quietOutput() (*os.File, func(), error) {
	stdout, stderr := os.Stdout, os.Stderr

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}
	os.Stdout, os.Stderr = devNull, devNull

	return stdout, func() {
		os.Stdout, os.Stderr = stdout, stderr
		_ = devNull.Close()
	}, nil
}

// newLogger logs everything to path, or only errors when path is empty.
func newLogger(path string) (bslogger.Logger, func(), error) {
	if path == "" {
		return bslogger.NewLogger("Magnify", bslogger.Minimal, nil), func() {}, nil
	}

	//nolint:gosec // Log path comes from the command line
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		var none bslogger.Logger
		return none, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return bslogger.NewLogger("Magnify", bslogger.All, file), func() { _ = file.Close() }, nil
}

// openSettings opens the configured settings source. Without a path the scale from the command
// line is served from memory.
func openSettings(cfg *config.Config, logger bslogger.Logger) (settings.Source, error) {
	if cfg.SettingsPath == "" {
		memory := settings.NewMemory()
		memory.Put(settings.KeyDisplayMagnificationScale, cfg.User, cfg.Scale)
		return memory, nil
	}

	source, err := settings.Open(cfg.SettingsPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings: %w", err)
	}

	return source, nil
}

// closeSettings closes source if it holds resources.
func closeSettings(source settings.Source, logger bslogger.Logger) {
	closer, ok := source.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warningf("Closing settings: %s", err)
	}
}

// applyStartMode magnifies every display at its center in the configured mode.
func applyStartMode(cfg *config.Config, fullScreen *magnifier.FullScreen, window *magnifier.Window) {
	centerX, centerY := float64(cfg.Width)/2, float64(cfg.Height)/2

	for i := range cfg.Displays {
		display := magnification.DisplayID(i)

		switch cfg.StartMode {
		case config.StartFullscreen:
			fullScreen.SetScaleAndCenter(display, cfg.Scale, centerX, centerY, false, cfg.GestureHandlerID)
		case config.StartWindow:
			window.Enable(display, cfg.Scale, centerX, centerY, nil)
		case config.StartNone:
		}
	}

	fullScreen.ResetCalls()
	window.ResetCalls()
}

func fail(err error, cfg *config.Config) {
	path := ""
	if cfg != nil {
		path = cfg.SettingsPath
	}

	err = pkgerrors.NewEnricher().Enrich(err, path)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	if suggestions := pkgerrors.FormatSuggestions(err); suggestions != "" {
		fmt.Fprintln(os.Stderr, suggestions)
	}

	os.Exit(1)
}
