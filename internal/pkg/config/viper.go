package config

import (
	"bytes"
	"errors"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: hash.bcrypt.cost is read from
// SECUREPROP_HASH_BCRYPT_COST.
const EnvPrefix = "SECUREPROP"

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// NewViper loads configuration from the given file path and returns a Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension. The
// file is watched and reloaded on change.
func NewViper(pathFile string) (*Viper, error) {
	v := newViper()

	filename := path.Base(pathFile)
	filePath := path.Dir(pathFile)

	configName := path.Base(filename[:len(filename)-len(path.Ext(filename))])

	v.AddConfigPath(filePath)
	v.SetConfigName(configName)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		if err := v.ReadInConfig(); err != nil {
			slog.Error("config reload failed", "path", pathFile, "err", err)
			return
		}
		slog.Info("config success reloaded", "path", pathFile)
	})
	v.WatchConfig()

	return &Viper{v: v}, nil
}

// NewViperFromBytes loads configuration from memory and returns a Viper-backed Config.
// configType should be a format supported by Viper (e.g. "yaml", "json", "toml").
func NewViperFromBytes(configType string, data []byte) (*Viper, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, errors.New("config type is required")
	}

	v := newViper()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return &Viper{v: v}, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "secureprop")
	v.SetDefault("app.server.http.address", ":8080")
	v.SetDefault("app.server.http.read_timeout_seconds", 10)
	v.SetDefault("app.server.http.read_header_timeout_seconds", 5)
	v.SetDefault("app.server.http.write_timeout_seconds", 15)
	v.SetDefault("app.server.http.idle_timeout_seconds", 60)

	v.SetDefault("hash.driver", "bcrypt")
	v.SetDefault("hash.bcrypt.cost", 10)

	v.SetDefault("secureprop.validations", true)
	v.SetDefault("secureprop.min_cost", false)

	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.pool.max_conns", 10)
	v.SetDefault("database.pool.min_conns", 1)
	v.SetDefault("database.ping_timeout_seconds", 10)

	v.SetDefault("instrument.enabled", false)
	v.SetDefault("instrument.service_name", "secureprop")
	v.SetDefault("instrument.log_level", "info")
	v.SetDefault("instrument.log_mask_fields", "password,password_confirmation,password_digest,current_password,new_password,new_password_confirmation,x-admin-token,authorization")
}

// GetInt returns the value for key as int.
func (vc *Viper) GetInt(key string) int {
	return vc.v.GetInt(key)
}

// GetInt32 returns the value for key as int32.
func (vc *Viper) GetInt32(key string) int32 {
	return vc.v.GetInt32(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetFloat64 returns the value for key as float64.
func (vc *Viper) GetFloat64(key string) float64 {
	return vc.v.GetFloat64(key)
}

// GetSecond returns the value for key as seconds.
func (vc *Viper) GetSecond(key string) time.Duration {
	return time.Duration(vc.v.GetInt64(key)) * time.Second
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetArray returns the value for key as a list. A YAML sequence is used as
// is; a scalar is split by commas. Blank elements are dropped.
func (vc *Viper) GetArray(key string) []string {
	var raw []string
	if _, isList := vc.v.Get(key).([]any); isList {
		raw = vc.v.GetStringSlice(key)
	} else if s := vc.v.GetString(key); s != "" {
		raw = strings.Split(s, ",")
	}

	var out []string
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	return nil
}
