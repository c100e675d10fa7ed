// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/mitchellh/mapstructure"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"time"
)

// Config holds the daemon settings.  Each field can come from a
// command-line flag, its environment variable, or the YAML file named
// by --config, in that order of precedence.
type Config struct {
	HTTP            string        `mapstructure:"http"`
	LogRequests     bool          `mapstructure:"log_requests"`
	LogLevel        string        `mapstructure:"log_level"`
	MetricsPath     string        `mapstructure:"metrics_path"`
	CacheSize       int           `mapstructure:"cache_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		HTTP:            ":8080",
		LogLevel:        "info",
		MetricsPath:     "/metrics",
		CacheSize:       1024,
		ShutdownTimeout: 10 * time.Second,
	}
}

var flags = []cli.Flag{
	cli.StringFlag{
		Name:   "http",
		Value:  ":8080",
		Usage:  "[ip]:port for the HTTP interface",
		EnvVar: "NISERVICE_HTTP",
	},
	cli.StringFlag{
		Name:   "config",
		Usage:  "global configuration YAML file",
		EnvVar: "NISERVICE_CONFIG",
	},
	cli.BoolFlag{
		Name:   "log-requests",
		Usage:  "log all requests",
		EnvVar: "NISERVICE_LOG_REQUESTS",
	},
	cli.StringFlag{
		Name:   "log-level",
		Value:  "info",
		Usage:  "minimum level of log messages",
		EnvVar: "NISERVICE_LOG_LEVEL",
	},
	cli.StringFlag{
		Name:   "metrics-path",
		Value:  "/metrics",
		Usage:  "URL path for Prometheus metrics; empty disables",
		EnvVar: "NISERVICE_METRICS_PATH",
	},
	cli.IntFlag{
		Name:   "cache-size",
		Value:  1024,
		Usage:  "number of reversals to cache; 0 disables",
		EnvVar: "NISERVICE_CACHE_SIZE",
	},
	cli.DurationFlag{
		Name:   "shutdown-timeout",
		Value:  10 * time.Second,
		Usage:  "how long to wait for requests to finish on shutdown",
		EnvVar: "NISERVICE_SHUTDOWN_TIMEOUT",
	},
}

func loadConfigYaml(filename string) (map[string]interface{}, error) {
	var result map[string]interface{}
	var err error
	var bytes []byte
	bytes, err = ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}

// Merge overwrites the fields of c named in m.  Unknown keys are an
// error.
func (c *Config) Merge(m map[string]interface{}) error {
	config := mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           c,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err != nil {
		return err
	}
	return decoder.Decode(m)
}

// configFromContext builds the complete configuration: defaults, then
// the YAML file if any, then any flags that were explicitly set.
func configFromContext(ctx *cli.Context) (Config, error) {
	c := DefaultConfig()
	if filename := ctx.String("config"); filename != "" {
		m, err := loadConfigYaml(filename)
		if err == nil {
			err = c.Merge(m)
		}
		if err != nil {
			return c, err
		}
	}
	if ctx.IsSet("http") {
		c.HTTP = ctx.String("http")
	}
	if ctx.IsSet("log-requests") {
		c.LogRequests = ctx.Bool("log-requests")
	}
	if ctx.IsSet("log-level") {
		c.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("metrics-path") {
		c.MetricsPath = ctx.String("metrics-path")
	}
	if ctx.IsSet("cache-size") {
		c.CacheSize = ctx.Int("cache-size")
	}
	if ctx.IsSet("shutdown-timeout") {
		c.ShutdownTimeout = ctx.Duration("shutdown-timeout")
	}
	return c, nil
}
