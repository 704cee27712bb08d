package config

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// MustInitConfig initializes configuration from .env file or environment variables.
// If configFile exists, it loads from the file. Otherwise, it automatically binds
// environment variables based on the Config struct's mapstructure tags.
func MustInitConfig(configFile string) Config {
	cfg, err := InitConfig(configFile)
	if err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// InitConfig is MustInitConfig without the panic.
func InitConfig(configFile string) (Config, error) {
	var (
		vpr = viper.New()
		cfg Config
	)

	setDefaults(vpr)

	vpr.AutomaticEnv()

	if configFile != "" {
		vpr.SetConfigFile(configFile)
		vpr.SetConfigType("env")

		if err := vpr.ReadInConfig(); err != nil {
			slog.Warn("config file not found or cannot be read, using environment variables",
				slog.String("file", configFile),
				slog.String("error", err.Error()))
		} else {
			slog.Debug("config file loaded successfully", slog.String("file", configFile))
		}
	}

	bindEnvFromStruct(vpr)

	if err := vpr.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("LOG_LEVEL", "info")

	vpr.SetDefault("TICKETS_START_FIELD", "tickets")
	vpr.SetDefault("TICKETS_DATE_LAYOUT", "02.01.06")
	vpr.SetDefault("TICKETS_TIME_LAYOUT", "15:04")
	vpr.SetDefault("TICKETS_ORIGIN", "VVO")
	vpr.SetDefault("TICKETS_DESTINATION", "TLV")
	vpr.SetDefault("TICKETS_DATA_DIR", ".")

	vpr.SetDefault("ANALYSIS_CACHE_EXPIRATION", "10m")
	vpr.SetDefault("ANALYSIS_LOCK_TIMEOUT", "5s")
	vpr.SetDefault("ANALYSIS_RATE_LIMIT", 10)

	vpr.SetDefault("HTTP_PORT", 8080)
	vpr.SetDefault("HTTP_TIMEOUT", "30s")
}

// bindEnvFromStruct binds environment variables based on mapstructure tags using reflection
func bindEnvFromStruct(vpr *viper.Viper) {
	bindEnvFromType(vpr, reflect.TypeOf(Config{}))
}

func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				bindEnvFromType(vpr, field.Type)
			}
			continue
		}

		parts := strings.Split(tag, ",")
		if len(parts) > 1 && strings.TrimSpace(parts[1]) == "squash" && field.Type.Kind() == reflect.Struct {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if parts[0] != "" {
			_ = vpr.BindEnv(parts[0])
		}
	}
}
