package main

import (
	"strings"

	qcircuit "github.com/Q-lds/quantum-circuit-simulator"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	defaults := qcircuit.NewConfig()

	v.SetDefault("tolerance", defaults.Tolerance)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("shots", defaults.Shots)
	v.SetDefault("readout_mode", defaults.ReadoutMode)
}

// loadConfig layers defaults < config file < QCIRCUIT_* environment.
func loadConfig(path string) (*qcircuit.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("QCIRCUIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg qcircuit.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}
