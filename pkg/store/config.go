package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells Load where the journal lives.
type Config interface {
	BasePath() string
}

// Settings is the full set of values read from .reignite.yaml, the
// REIGNITE_* environment and bound flags.
type Settings struct {
	Path             string
	LogPath          string
	Debug            bool
	RetentionEntries int
	Particles        int
	FPS              int
	Ephemeral        bool
}

// BasePath implements Config.
func (s *Settings) BasePath() string {
	return s.Path
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("path", "~/.reignite.db")
	v.SetDefault("log.path", "~/.reignite/reignite.log")
	v.SetDefault("log.debug", false)
	v.SetDefault("retention.max-entries", 0)
	v.SetDefault("anim.particles", 120)
	v.SetDefault("anim.fps", 30)
	v.SetDefault("ephemeral", false)
}

// LoadConfig reads the global viper instance. Commands bind their flags to
// it before calling.
func LoadConfig() (*Settings, error) {
	return LoadConfigFrom(viper.GetViper())
}

// LoadConfigFrom reads settings from v, looking for a .reignite file in the
// working directory or in $REIGNITE_CONFIG_PATH.
func LoadConfigFrom(v *viper.Viper) (*Settings, error) {
	setDefaults(v)
	v.SetConfigName(".reignite") // .yaml is implicit
	v.SetEnvPrefix("REIGNITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("REIGNITE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logPath, err := homedir.Expand(v.GetString("log.path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand log path: %w", err)
	}

	return &Settings{
		Path:             path,
		LogPath:          logPath,
		Debug:            v.GetBool("log.debug"),
		RetentionEntries: v.GetInt("retention.max-entries"),
		Particles:        v.GetInt("anim.particles"),
		FPS:              v.GetInt("anim.fps"),
		Ephemeral:        v.GetBool("ephemeral"),
	}, nil
}
