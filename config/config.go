package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const appDir = "renju-local"

var (
	cfgFile = filepath.Join(appDir, "config.json")
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	BlackColorAlt     int `json:"black_alt"`
	WhiteColor        int `json:"white"`
	WhiteColorAlt     int `json:"white_alt"`
	LineColor         int `json:"line"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
	WinLineColorBG    int `json:"win_line_bg"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	StarPoint   rune `json:"star"`
	Cursor      rune `json:"cursor"`
	LastPlayed  rune `json:"last_played"`
}

type Theme struct {
	DrawStoneBackground      bool          `json:"draw_stone_bg"`
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	UseGridLines             bool          `json:"use_grid_lines"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// PlayersConfig holds the display names of both sides.
type PlayersConfig struct {
	Black string `json:"black" env:"RENJU_PLAYER_BLACK"`
	White string `json:"white" env:"RENJU_PLAYER_WHITE"`
}

// RecordConfig controls the SGF transcript written while playing.
type RecordConfig struct {
	Enabled bool   `json:"enabled" env:"RENJU_RECORD"`
	Dir     string `json:"dir" env:"RENJU_RECORD_DIR"`
}

// LogConfig controls the debug log. The game owns stdout, so logs go to a file.
type LogConfig struct {
	Level string `json:"level" env:"RENJU_LOG_LEVEL"`
	File  string `json:"file" env:"RENJU_LOG_FILE"`
}

type Config struct {
	Theme   Theme         `json:"theme"`
	Players PlayersConfig `json:"players"`
	Record  RecordConfig  `json:"record"`
	Log     LogConfig     `json:"log"`
}

// InitConfig loads the config file from the XDG config dirs if one exists,
// then applies environment overrides.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return Load(absPath)
}

// Load reads the config at path on top of DefaultConfig. An empty path
// reads only the environment.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}

	if config.Record.Dir == "" {
		config.Record.Dir = filepath.Join(xdg.DataHome, appDir, "records")
	}
	if config.Log.File == "" {
		config.Log.File = filepath.Join(xdg.StateHome, appDir, "renju.log")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone, c.Theme.Symbols.BoardSquare, c.Theme.Symbols.StarPoint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	if strings.TrimSpace(c.Players.Black) == "" || strings.TrimSpace(c.Players.White) == "" {
		return &InvalidConfig{"player names must not be blank"}
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured log level. Validate rejects unknown names.
func (l LogConfig) SlogLevel() slog.Level {
	return logLevels[strings.ToLower(l.Level)]
}

// Save writes the config to the user's XDG config dir and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm os.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}
