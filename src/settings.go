package src

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyRepo        = "repo"
	KeyRemote      = "remote"
	KeyCounterFile = "counterFile"
	KeyConfigFile  = "configFile"
	KeyDateBucket  = "dateBucket"
	KeyHistorySize = "historySize"
	KeyEditor      = "editor"
	KeyLogLevel    = "logLevel"

	// KeyPreferredBranch lives in the JSON config store, not in settings.yaml.
	KeyPreferredBranch = "preferredBranch"
)

const (
	EditorLine   = "line"
	EditorPrompt = "prompt"
	EditorTUI    = "tui"
)

const (
	SettingsName   = "settings"
	EnvPrefix      = "GCA"
	counterFile    = "commit_counters.json"
	configFile     = "gca_config.json"
	defaultHistory = 10
)

var ErrInvalidSetting = errors.New("invalid setting")

// ConfigurableKeys are offered by `gca set`, in menu order.
var ConfigurableKeys = []string{
	KeyEditor, KeyDateBucket, KeyHistorySize, KeyRemote,
	KeyLogLevel, KeyCounterFile, KeyConfigFile, KeyPreferredBranch,
}

type Settings struct {
	Repo        string
	Remote      string
	CounterFile string
	ConfigFile  string
	DateBucket  bool
	HistorySize int
	Editor      string
	LogLevel    string
}

// SetDefaults registers the default of every settings key on v.
func SetDefaults(v *viper.Viper, home string) {
	v.SetDefault(KeyRemote, "origin")
	v.SetDefault(KeyCounterFile, filepath.Join(home, counterFile))
	v.SetDefault(KeyConfigFile, filepath.Join(home, configFile))
	v.SetDefault(KeyDateBucket, true)
	v.SetDefault(KeyHistorySize, defaultHistory)
	v.SetDefault(KeyEditor, EditorLine)
	v.SetDefault(KeyLogLevel, "warn")
}

func LoadSettings(v *viper.Viper) Settings {
	s := Settings{
		Repo:        v.GetString(KeyRepo),
		Remote:      v.GetString(KeyRemote),
		CounterFile: ExpandPath(v.GetString(KeyCounterFile)),
		ConfigFile:  ExpandPath(v.GetString(KeyConfigFile)),
		DateBucket:  v.GetBool(KeyDateBucket),
		HistorySize: v.GetInt(KeyHistorySize),
		Editor:      strings.ToLower(v.GetString(KeyEditor)),
		LogLevel:    v.GetString(KeyLogLevel),
	}
	if s.HistorySize <= 0 {
		s.HistorySize = defaultHistory
	}
	if s.Editor != EditorPrompt && s.Editor != EditorTUI {
		s.Editor = EditorLine
	}
	return s
}

// ParseSetting validates value for key and converts it to the type stored in
// settings.yaml.
func ParseSetting(key, value string) (interface{}, error) {
	value = strings.TrimSpace(value)
	switch key {
	case KeyDateBucket:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", ErrInvalidSetting, key)
		}
		return b, nil
	case KeyHistorySize:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive number", ErrInvalidSetting, key)
		}
		return n, nil
	case KeyEditor:
		v := strings.ToLower(value)
		if v != EditorLine && v != EditorPrompt && v != EditorTUI {
			return nil, fmt.Errorf("%w: %s must be one of line, prompt, tui", ErrInvalidSetting, key)
		}
		return v, nil
	case KeyLogLevel:
		v := strings.ToLower(value)
		switch v {
		case "debug", "info", "warn", "error":
			return v, nil
		}
		return nil, fmt.Errorf("%w: %s must be one of debug, info, warn, error", ErrInvalidSetting, key)
	case KeyRemote, KeyCounterFile, KeyConfigFile, KeyRepo, KeyPreferredBranch:
		if value == "" {
			return nil, fmt.Errorf("%w: %s cannot be empty", ErrInvalidSetting, key)
		}
		return value, nil
	}
	return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidSetting, key)
}
