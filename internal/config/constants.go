package config

import "github.com/akyairhashvil/unitconv/internal/models"

// Application settings.
const (
	AppName        = "unitconv"
	ConfigFileName = "config.yaml"
	EnvPrefix      = "UNITCONV"
)

// Converter defaults applied on startup and on every category switch.
const (
	DefaultInputText   = "1"
	DefaultInputIndex  = 0
	DefaultOutputIndex = 1
	DefaultCategory    = models.CategoryTime
	DefaultTheme       = "default"
)
