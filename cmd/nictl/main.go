// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Command nictl calls the NIAEFEUP demo service from the command line,
// either in process or against a running niserviced.
//
//     nictl --backend rest:http://localhost:8080/ reverse regit
package main

import (
	"fmt"
	"github.com/niaefeup/go-niservice/backend"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"os"
)

func newApp() *cli.App {
	b := &backend.Backend{Implementation: "local"}

	app := cli.NewApp()
	app.Name = "nictl"
	app.Usage = "call the NIAEFEUP demo service"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.GenericFlag{
			Name:   "backend",
			Value:  b,
			Usage:  "impl[:address] of the service",
			EnvVar: "NISERVICE_BACKEND",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "hello",
			Usage:  "print the greeting",
			Action: withService(b, hello),
		},
		{
			Name:      "reverse",
			Usage:     "print a string reversed",
			ArgsUsage: "[data]",
			Action:    withService(b, reverse),
		},
	}
	return app
}

// withService connects to the selected backend before running action.
func withService(b *backend.Backend, action func(*cli.Context, niservice.Service) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		svc, err := b.Service()
		if err != nil {
			return err
		}
		return action(c, svc)
	}
}

func hello(c *cli.Context, svc niservice.Service) error {
	greeting, err := svc.Hello()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, greeting)
	return err
}

// reverse reverses its first argument.  With no argument at all it
// sends no data parameter, which the service rejects.
func reverse(c *cli.Context, svc niservice.Service) error {
	var data *string
	if c.NArg() > 0 {
		arg := c.Args().First()
		data = &arg
	}
	out, err := svc.Reverse(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("nictl failed")
	}
}
