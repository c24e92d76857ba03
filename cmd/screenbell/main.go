package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/example/screenbell/internal/config"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs       *flag.FlagSet
	program  string
	store    *config.Store
	log      zerolog.Logger
	logLevel string
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	r := &root{
		fs:      flag.NewFlagSet("screenbell", flag.ExitOnError),
		program: "screenbell",
	}
	r.fs.StringVar(&r.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}

	level, err := zerolog.ParseLevel(r.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: unknown log level %q, using info\n", r.logLevel)
		level = zerolog.InfoLevel
	}
	r.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	loader := config.NewLoader(version, configPathOverride)
	r.store = config.NewStore(loader, r.log)
	if watchErr := r.store.Watch(); watchErr != nil {
		r.log.Warn().Err(watchErr).Msg("config watch unavailable")
	}
	defer r.store.Close()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "send":
		cmd, err = parseSendCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd, err = &versionCmd{r: r}, nil
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
