// Command lrg-inputmon is a diagnostic monitor for the input layer. It
// composes a manager from a terminal keyboard/mouse source and a
// software source, loads an input map, and renders live action state at
// a fixed poll rate. Press Escape to quit.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/copyleft-games/libregnum-input/config"
	"github.com/copyleft-games/libregnum-input/input"
	"github.com/copyleft-games/libregnum-input/input/bind"
	"github.com/copyleft-games/libregnum-input/input/key"
	"github.com/copyleft-games/libregnum-input/input/software"
	"github.com/copyleft-games/libregnum-input/input/terminal"
)

type options struct {
	Config    string `short:"c" long:"config" description:"Settings file (TOML); defaults apply when absent"`
	Map       string `short:"m" long:"map" description:"Input map file (YAML); overrides the settings value"`
	Rate      int    `short:"r" long:"rate" default:"30" description:"Poll rate in frames per second"`
	LogFile   string `short:"l" long:"log-file" description:"Log output file (logs are dropped otherwise)"`
	LogPretty bool   `short:"p" long:"log-pretty" description:"Prettify file logs"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	settings, err := loadSettings(opts.Config)
	if err != nil {
		return err
	}
	setupLogging(opts, settings)

	mapPath := settings.MapPath
	if opts.Map != "" {
		mapPath = opts.Map
	}

	actions := bind.NewMap()
	if err := actions.Load(mapPath); err != nil {
		log.Warn().Err(err).Str("path", mapPath).Msg("starting with an empty action map")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	term := terminal.New("terminal", screen)
	soft := software.New("software")
	manager := input.NewManager(term, soft)

	var watcher *bind.Watcher
	if settings.WatchMap {
		watcher, err = bind.NewWatcher(mapPath)
		if err != nil {
			log.Warn().Err(err).Msg("map watching unavailable")
		} else {
			defer watcher.Close()
		}
	}

	rate := opts.Rate
	if rate <= 0 {
		rate = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		if watcher != nil {
			select {
			case path := <-watcher.Changes():
				if err := actions.Load(path); err != nil {
					log.Warn().Err(err).Msg("map reload failed")
				} else {
					log.Info().Str("path", path).Msg("map reloaded")
				}
			default:
			}
		}

		manager.Poll()
		if manager.IsKeyPressed(key.KeyEscape) {
			return nil
		}
		render(screen, manager, actions)

		<-ticker.C
	}
}

func loadSettings(path string) (config.Settings, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func setupLogging(opts options, settings config.Settings) {
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if opts.LogFile == "" {
		// The screen owns the terminal; drop logs rather than corrupt it.
		log.Logger = zerolog.Nop()
		return
	}
	file, err := os.OpenFile(opts.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return
	}
	if opts.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: file})
	} else {
		log.Logger = log.Output(file)
	}
}

// render draws one frame of action and pointer state.
func render(screen tcell.Screen, m *input.Manager, actions *bind.Map) {
	screen.Clear()
	style := tcell.StyleDefault

	drawText(screen, 0, 0, style.Bold(true), "lrg-inputmon (Escape quits)")

	pos := m.MousePosition()
	delta := m.MouseDelta()
	drawText(screen, 0, 1, style, fmt.Sprintf("pointer (%.0f, %.0f) delta (%+.0f, %+.0f)", pos.X, pos.Y, delta.X, delta.Y))

	row := 3
	for _, name := range actions.Names() {
		action := actions.Get(name)
		state := "up"
		switch {
		case action.IsPressed(m):
			state = "pressed"
		case action.IsDown(m):
			state = "down"
		case action.IsReleased(m):
			state = "released"
		}
		line := fmt.Sprintf("%-20s %-8s value=%.2f", name, state, action.Value(m))
		drawText(screen, 0, row, style, line)
		row++
		for i, b := range action.Bindings() {
			drawText(screen, 2, row, style.Dim(true), fmt.Sprintf("[%d] %s", i, b.Label()))
			row++
		}
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
