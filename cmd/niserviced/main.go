// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Command niserviced runs the NIAEFEUP demo HTTP service: a greeting
// at /ni/hello and a string reversal at /reverse.
package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"os"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "niserviced"
	app.Usage = "serve the NIAEFEUP demo HTTP API"
	app.Version = "0.1.0"
	app.Flags = flags
	app.Action = serve
	return app
}

func main() {
	// A missing .env file is the normal case
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("Could not load .env file")
	}

	if err := newApp().Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("niserviced failed")
	}
}

func serve(ctx *cli.Context) error {
	config, err := configFromContext(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Error("Could not load configuration")
		return err
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	var reqLogger *logrus.Logger
	if config.LogRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.DebugLevel,
		}
	}

	server, err := NewHTTP(config, reqLogger)
	if err != nil {
		return err
	}
	return server.Serve(interrupted())
}
