package main

import (
	"fmt"
	"os"
	"time"

	"github.com/juju/gnuflag"
	"github.com/pkg/errors"

	"godis-dequeue/config"
	"godis-dequeue/driver"
	"godis-dequeue/logger"
)

const (
	runScenario = "scenario"
	runSuite    = "suite"
	runAll      = "all"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		cfPath string
		seed   int64
		which  string
	)
	f := gnuflag.NewFlagSet("godis-dequeue", gnuflag.ContinueOnError)
	f.StringVar(&cfPath, "c", "", "driver properties file")
	f.Int64Var(&seed, "seed", 0, "seed for the suite, overrides the properties file")
	f.StringVar(&which, "run", runAll, "what to run: scenario, suite or all")
	if err := f.Parse(true, args); err != nil {
		return err
	}

	if cfPath != "" {
		if err := config.SetUpConfig(cfPath); err != nil {
			return err
		}
	}
	props := config.Properties

	level, err := logger.ParseLevel(props.LogLevel)
	if err != nil {
		return err
	}
	if err := logger.Configure(&logger.Configuration{
		Level:         level,
		LogPath:       props.LogPath,
		EnableFileLog: props.FileLog,
	}); err != nil {
		return err
	}

	if seed == 0 {
		seed = int64(props.Seed)
	}
	if seed == 0 {
		seed = time.Now().Unix()
		logger.WarnF("no seed configured, using %d", seed)
	}

	switch which {
	case runScenario, runSuite, runAll:
	default:
		return errors.Errorf("unknown run target %q", which)
	}

	for _, b := range driver.Backends(props) {
		if which != runSuite {
			logger.InfoF("running scenario on %s", b.Name)
			if err := driver.RunScenario(b); err != nil {
				logger.ErrorF("scenario on %s failed: %v", b.Name, err)
				return errors.Wrapf(err, "scenario on %s", b.Name)
			}
		}
		if which != runScenario {
			s := &driver.Suite{
				Backend:       b,
				Seed:          seed,
				Capacity:      props.Capacity,
				MaxNameLength: props.MaxNameLength,
			}
			if err := s.Run(); err != nil {
				logger.ErrorF("suite on %s failed: %v", b.Name, err)
				return errors.Wrapf(err, "suite on %s", b.Name)
			}
		}
	}
	return nil
}
