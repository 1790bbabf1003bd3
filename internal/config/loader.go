package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader searches the given directories for the config file. With no directories the
// XDG config dir and the working directory are used.
func NewLoader(changes chan<- Config, searchPaths ...string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("transition", "default")
	loader.SetDefault("debug", false)
	loader.SetDefault("fps", DefaultFPS)
	loader.SetDefault("database", DefaultDBName)
	loader.SetDefault("toggles", defaultToggles())
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)

	if len(searchPaths) == 0 {
		searchPaths = []string{Path(""), "."}
	}
	for _, searchPath := range searchPaths {
		loader.AddConfigPath(searchPath)
	}

	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file in use, sending every successfully parsed change.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

func (cl *Loader) Write(config Config) error {
	cl.Set("transition", config.Transition)
	cl.Set("debug", config.Debug)
	cl.Set("fps", config.FPS)
	cl.Set("database", config.Database)
	cl.Set("toggles", config.Toggles)

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file if one exists. A missing file is not an error, the defaults
// are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}

func defaultToggles() []map[string]any {
	return []map[string]any{
		{
			"name":   "Theme",
			"width":  24,
			"height": 3,
			"items": []map[string]any{
				{"text": "Light", "icon": "☀", "id": "light"},
				{"text": "Dark", "icon": "☾", "id": "dark"},
			},
		},
		{
			"name":       "Layout",
			"transition": "vertical",
			"width":      24,
			"height":     3,
			"items": []map[string]any{
				{"text": "Grid", "icon": "▦", "id": "grid"},
				{"text": "List", "icon": "☰", "id": "list"},
				{"text": "Cards", "icon": "▭", "id": "cards"},
			},
		},
		{
			"name":       "Sound",
			"transition": "cross-fade",
			"width":      24,
			"height":     3,
			"class":      "accent",
			"items": []map[string]any{
				{"text": "On", "icon": "♪", "id": "sound-on"},
				{"text": "Off", "icon": "✕", "id": "sound-off", "class": "muted"},
			},
		},
	}
}
