package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/unitconv/internal/models"
	"github.com/akyairhashvil/unitconv/internal/util"
	"github.com/spf13/viper"
)

// Setting keys, shared by the config file, UNITCONV_* env vars and flags.
const (
	KeyTheme          = "theme"
	KeyCategory       = "category"
	KeyCategoriesFile = "categories_file"
	KeyLogFile        = "log_file"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	Theme          string
	Category       models.Category
	CategoriesFile string
	LogFile        string
}

// DefaultConfigPath is where Load looks when no path is given.
func DefaultConfigPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load resolves settings from defaults, the config file, and the environment.
// Flags bound to v before the call take precedence. A missing file is only an
// error when path was given explicitly.
func Load(v *viper.Viper, path string) (Settings, error) {
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyCategory, string(DefaultCategory))
	v.SetDefault(KeyCategoriesFile, "")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	s := Settings{
		Theme:          strings.TrimSpace(v.GetString(KeyTheme)),
		Category:       models.ParseCategory(v.GetString(KeyCategory)),
		CategoriesFile: strings.TrimSpace(v.GetString(KeyCategoriesFile)),
		LogFile:        strings.TrimSpace(v.GetString(KeyLogFile)),
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.Category == "" {
		s.Category = DefaultCategory
	}
	return s, nil
}
