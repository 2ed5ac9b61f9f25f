package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Nydauron/teamscore/config"
	"github.com/Nydauron/teamscore/logging"
	"github.com/Nydauron/teamscore/prompts"
	"github.com/Nydauron/teamscore/session"
	"github.com/Nydauron/teamscore/store"
	"github.com/Nydauron/teamscore/tournament"
)

const (
	configFlag    = "config"
	dataFileFlag  = "data-file"
	storeFlag     = "store"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
	yesFlag       = "yes"
	stdoutCLIName = "-"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

// application is the state shared by every command of one run.
type application struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg      *config.Config
	logger   *zap.Logger
	store    store.Store
	sess     *session.Session
	prompter *prompts.Prompter
}

func (a *application) before(c *cli.Context) error {
	cfg, err := config.Load(c.String(configFlag))
	if err != nil {
		return err
	}
	if c.IsSet(dataFileFlag) {
		cfg.Store.Path = c.String(dataFileFlag)
	}
	if c.IsSet(storeFlag) {
		cfg.Store.Driver = c.String(storeFlag)
	}
	if c.IsSet(logLevelFlag) {
		cfg.Log.Level = c.String(logLevelFlag)
	}
	if c.IsSet(logFormatFlag) {
		cfg.Log.Format = c.String(logFormatFlag)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.store, err = store.Open(store.Options{Driver: cfg.Store.Driver, Path: cfg.Store.Path, Logger: a.logger})
	if err != nil {
		return err
	}
	a.prompter = prompts.New(a.in, a.errOut)
	return nil
}

func (a *application) after(c *cli.Context) error {
	var err error
	if a.store != nil {
		err = a.store.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return err
}

// session loads saved data on first use. Data that cannot be loaded is
// reported and the command continues with an empty tournament.
func (a *application) session(c *cli.Context) *session.Session {
	if a.sess != nil {
		return a.sess
	}
	s, err := session.Open(c.Context, a.store, a.logger, tournament.WithCapacity(a.cfg.Teams.Capacity))
	if err != nil {
		fmt.Fprintf(a.errOut, "Could not load saved data from %s: %v\nStarting with an empty tournament.\n", a.store.Location(), err)
	}
	a.sess = s
	return s
}

func (a *application) confirm(c *cli.Context, question string) bool {
	if c.Bool(yesFlag) {
		return true
	}
	return a.prompter.Confirm(question)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

func yesFlagDef() cli.Flag {
	return &cli.BoolFlag{
		Name:    yesFlag,
		Aliases: []string{"y"},
		Usage:   "Skip confirmation prompts",
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	a := &application{in: in, out: out, errOut: errOut}
	return &cli.App{
		Name:      "teamscore",
		Usage:     "Keep teams, members and event scores for a multi-team tournament",
		Version:   semanticVersion,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
				Value:   config.DefaultFile,
				EnvVars: []string{"TEAMSCORE_CONFIG"},
			},
			&cli.StringFlag{
				Name:  dataFileFlag,
				Usage: "Where tournament data is saved",
			},
			&cli.StringFlag{
				Name:  storeFlag,
				Usage: "Storage backend: json or sqlite",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  logFormatFlag,
				Usage: "Log format: console or json",
			},
		},
		Before: a.before,
		After:  a.after,
		Commands: []*cli.Command{
			a.teamsCommand(),
			a.membersCommand(),
			a.eventsCommand(),
			a.scoreCommand(),
			a.leaderboardCommand(),
			a.statusCommand(),
			a.serveCommand(),
		},
	}
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

const (
	exitFailure       = 1
	exitValidation    = 2
	exitNotFound      = 3
	exitNoActiveEvent = 4
	exitPersistence   = 5
)

func exitCode(err error) int {
	switch {
	case errors.Is(err, tournament.ErrValidation):
		return exitValidation
	case errors.Is(err, tournament.ErrNotFound):
		return exitNotFound
	case errors.Is(err, tournament.ErrNoActiveEvent):
		return exitNoActiveEvent
	case errors.Is(err, tournament.ErrPersistence):
		return exitPersistence
	default:
		return exitFailure
	}
}
