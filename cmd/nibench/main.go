// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Command nibench provides a load-generation tool for the NIAEFEUP demo
// service.
package main

import (
	"github.com/niaefeup/go-niservice/backend"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

type benchWork struct {
	Service     niservice.Service
	Concurrency int
}

// benchResult summarizes one run.
type benchResult struct {
	Calls      int64
	Errors     int64
	Mismatches int64
	Elapsed    time.Duration
}

// Log writes the result summary.
func (r benchResult) Log(name string) {
	rate := 0.0
	if r.Elapsed > 0 {
		rate = float64(r.Calls) / r.Elapsed.Seconds()
	}
	logrus.WithFields(logrus.Fields{
		"benchmark":  name,
		"calls":      r.Calls,
		"errors":     r.Errors,
		"mismatches": r.Mismatches,
		"elapsed":    r.Elapsed,
		"rate":       rate,
	}).Info("Benchmark complete")
}

// Run calls runner count times, spread across bench.Concurrency
// goroutines.  runner reports whether its call succeeded and whether
// its result was correct.
func (bench *benchWork) Run(count int, runner func() (ok, correct bool)) benchResult {
	var result benchResult
	numbers := make(chan int)
	go func() {
		for i := 1; i <= count; i++ {
			numbers <- i
		}
		close(numbers)
	}()

	concurrency := bench.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	start := time.Now()
	wg := sync.WaitGroup{}
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			for range numbers {
				ok, correct := runner()
				atomic.AddInt64(&result.Calls, 1)
				if !ok {
					atomic.AddInt64(&result.Errors, 1)
				} else if !correct {
					atomic.AddInt64(&result.Mismatches, 1)
				}
			}
		}()
	}
	wg.Wait()
	result.Elapsed = time.Since(start)
	return result
}

// Reverse sends count random strings through the service twice each,
// and checks that they come back unchanged.
func (bench *benchWork) Reverse(count int) benchResult {
	return bench.Run(count, func() (bool, bool) {
		in := uuid.NewV4().String()
		once, err := bench.Service.Reverse(&in)
		if err != nil {
			return false, false
		}
		twice, err := bench.Service.Reverse(&once)
		if err != nil {
			return false, false
		}
		return true, once == niservice.Reverse(in) && twice == in
	})
}

// Hello fetches the greeting count times.
func (bench *benchWork) Hello(count int) benchResult {
	return bench.Run(count, func() (bool, bool) {
		greeting, err := bench.Service.Hello()
		return err == nil, greeting == niservice.Greeting
	})
}

var bench benchWork

var countFlag = cli.IntFlag{
	Name:  "count",
	Value: 1000,
	Usage: "number of calls to make",
}

var doReverse = cli.Command{
	Name:  "reverse",
	Usage: "reverse many random strings, twice each",
	Flags: []cli.Flag{countFlag},
	Action: func(c *cli.Context) {
		bench.Reverse(c.Int("count")).Log("reverse")
	},
}

var doHello = cli.Command{
	Name:  "hello",
	Usage: "fetch the greeting many times",
	Flags: []cli.Flag{countFlag},
	Action: func(c *cli.Context) {
		bench.Hello(c.Int("count")).Log("hello")
	},
}

func main() {
	backend := backend.Backend{Implementation: "local"}
	app := cli.NewApp()
	app.Usage = "benchmark the NIAEFEUP demo service"
	app.Flags = []cli.Flag{
		cli.GenericFlag{
			Name:  "backend",
			Value: &backend,
			Usage: "impl:[address] of the service",
		},
		cli.IntFlag{
			Name:  "concurrency",
			Value: runtime.NumCPU(),
			Usage: "run this many callers in parallel",
		},
	}
	app.Commands = []cli.Command{
		doReverse,
		doHello,
	}
	app.Before = func(c *cli.Context) (err error) {
		bench.Service, err = backend.Service()
		if err != nil {
			return
		}
		bench.Concurrency = c.Int("concurrency")
		return
	}
	app.RunAndExitOnError()
}
