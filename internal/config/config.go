package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultStateDir       = "state"

	appDirName = "remindpro"
)

// ResolveConfigPath places the config under the user's config directory,
// falling back to the working directory when that cannot be determined.
func ResolveConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, appDirName, DefaultConfigFileName)
}

type Keymap struct {
	Quit      string `toml:"quit"`
	NextTab   string `toml:"next_tab"`
	PrevTab   string `toml:"prev_tab"`
	Add       string `toml:"add"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Left      string `toml:"left"`
	Right     string `toml:"right"`
	Toggle    string `toml:"toggle"`
	Delete    string `toml:"delete"`
	Search    string `toml:"search"`
	Filter    string `toml:"filter"`
	PrevMonth string `toml:"prev_month"`
	NextMonth string `toml:"next_month"`
	DarkMode  string `toml:"dark_mode"`
	Refresh   string `toml:"refresh"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
}

type Insights struct {
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type Config struct {
	StateDir      string   `toml:"state_dir"`
	LogFile       string   `toml:"log_file"`
	DefaultFilter string   `toml:"default_filter"`
	Insights      Insights `toml:"insights"`
	Keys          Keymap   `toml:"keys"`
}

// Env carries settings that stay out of the config file. The API key is a
// secret; the model override is a convenience.
type Env struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"`
}

func ReadEnv() (Env, error) {
	var e Env
	if err := cleanenv.ReadEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.StateDir == "" {
		cfg.StateDir = DefaultStateDir
	}
	if cfg.Insights.TimeoutSeconds <= 0 {
		cfg.Insights.TimeoutSeconds = 30
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		StateDir:      DefaultStateDir,
		LogFile:       "remindpro.log",
		DefaultFilter: "all",
		Insights: Insights{
			Model:          "gemini-3-flash-preview",
			TimeoutSeconds: 30,
		},
		Keys: Keymap{
			Quit:      "q",
			NextTab:   "tab",
			PrevTab:   "shift+tab",
			Add:       "a",
			Up:        "k",
			Down:      "j",
			Left:      "h",
			Right:     "l",
			Toggle:    " ",
			Delete:    "d",
			Search:    "/",
			Filter:    "f",
			PrevMonth: "[",
			NextMonth: "]",
			DarkMode:  "m",
			Refresh:   "r",
			Confirm:   "enter",
			Cancel:    "esc",
		},
	}
}
