package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/toggle-tui/internal/toggle"
)

var (
	errConfigWrite   = errors.New("failed to write config file")
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config")
	errLoggerInit    = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "toggle-tui"
	DefaultConfigName = "toggle-tui"
	DefaultDBName     = "toggle-tui.db"
	DefaultLogName    = "toggle-tui.log"
	EnvPrefix         = "toggletui"
	DefaultFPS        = 30
	// How long status messages stay in the status bar.
	DefaultStatusTimeout = 10 * time.Second
)

type Config struct {
	// Transition is used by any toggle that does not set its own.
	Transition string   `mapstructure:"transition"`
	Debug      bool     `mapstructure:"debug"`
	FPS        int      `mapstructure:"fps"`
	Database   string   `mapstructure:"database"`
	Toggles    []Toggle `mapstructure:"toggles"`
}

type Toggle struct {
	Name       string `mapstructure:"name"`
	Transition string `mapstructure:"transition,omitempty"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Class      string `mapstructure:"class,omitempty"`
	Items      []Item `mapstructure:"items"`
}

type Item struct {
	Text  string `mapstructure:"text"`
	Icon  string `mapstructure:"icon,omitempty"`
	ID    string `mapstructure:"id,omitempty"`
	Class string `mapstructure:"class,omitempty"`
}

// TransitionFor resolves the transition of a toggle, falling back to the global default.
func (c Config) TransitionFor(tgl Toggle) (toggle.Transition, error) {
	if tgl.Transition != "" {
		return toggle.ParseTransition(tgl.Transition)
	}

	return toggle.ParseTransition(c.Transition)
}

// Validate checks every configured toggle against the same rules toggle.New enforces so a
// bad config file is rejected before any widget gets built.
func (c Config) Validate() error {
	if _, err := toggle.ParseTransition(c.Transition); err != nil {
		return errors.Join(err, errConfigInvalid, fmt.Errorf("transition %q", c.Transition))
	}

	names := map[string]bool{}
	for idx, tgl := range c.Toggles {
		if tgl.Name == "" {
			return errors.Join(errConfigInvalid, fmt.Errorf("toggle #%d has no name", idx))
		}

		if names[tgl.Name] {
			return errors.Join(errConfigInvalid, fmt.Errorf("duplicate toggle name %q", tgl.Name))
		}
		names[tgl.Name] = true

		if _, err := c.TransitionFor(tgl); err != nil {
			return errors.Join(err, errConfigInvalid, fmt.Errorf("toggle %q transition %q", tgl.Name, tgl.Transition))
		}

		if len(tgl.Items) < 2 {
			return errors.Join(toggle.ErrTooFewItems, errConfigInvalid, fmt.Errorf("toggle %q", tgl.Name))
		}
	}

	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
