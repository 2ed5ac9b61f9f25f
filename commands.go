package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Nydauron/teamscore/leaderboard"
	"github.com/Nydauron/teamscore/parsers"
	"github.com/Nydauron/teamscore/sciolyff"
	"github.com/Nydauron/teamscore/server"
	"github.com/Nydauron/teamscore/tournament"
	"github.com/Nydauron/teamscore/ui"
	"github.com/Nydauron/teamscore/writers"
)

const formatSciolyFF = "sciolyff"

func (a *application) teamsCommand() *cli.Command {
	return &cli.Command{
		Name:  "teams",
		Usage: "Create and list teams",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Replace all teams with empty teams named Team 1..N",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "Number of teams (default from config)"},
					&cli.IntFlag{Name: "capacity", Usage: "Members per team (default from config)"},
					yesFlagDef(),
				},
				Action: func(c *cli.Context) error {
					count, capacity := a.cfg.Teams.Count, a.cfg.Teams.Capacity
					if c.IsSet("count") {
						count = c.Int("count")
					}
					if c.IsSet("capacity") {
						capacity = c.Int("capacity")
					}
					sess := a.session(c)
					if sess.State().WouldDiscardTeams() && !a.confirm(c, tournament.InitializePrompt(count)) {
						fmt.Fprintln(a.out, "Initialisation cancelled.")
						return nil
					}
					if err := sess.InitializeTeams(c.Context, count, capacity); err != nil {
						return err
					}
					fmt.Fprintln(a.out, tournament.InitializedMessage(count))
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "Show every team with its members and score",
				Action: func(c *cli.Context) error {
					sum := a.session(c).State().Summary()
					if len(sum.Teams) == 0 {
						fmt.Fprintln(a.out, "No teams. Run 'teams init' first.")
						return nil
					}
					for _, t := range sum.Teams {
						fmt.Fprintln(a.out, t.Name)
						fmt.Fprintf(a.out, "  %s\n", tournament.MembersLabel(t))
						if sum.ActiveEvent != "" {
							fmt.Fprintf(a.out, "  Score: %d\n", t.Score)
						}
					}
					return nil
				},
			},
		},
	}
}

func (a *application) membersCommand() *cli.Command {
	return &cli.Command{
		Name:  "members",
		Usage: "Add, remove or import team members",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a member to a team",
				ArgsUsage: "TEAM NAME",
				Action: func(c *cli.Context) error {
					team, member, err := teamAndMember(c)
					if err != nil {
						return err
					}
					if err := a.session(c).AddMember(c.Context, team, member); err != nil {
						return err
					}
					fmt.Fprintln(a.out, tournament.MemberAddedMessage(strings.TrimSpace(member), team))
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a member from a team",
				ArgsUsage: "TEAM NAME",
				Action: func(c *cli.Context) error {
					team, member, err := teamAndMember(c)
					if err != nil {
						return err
					}
					if err := a.session(c).RemoveMember(c.Context, team, member); err != nil {
						return err
					}
					fmt.Fprintln(a.out, tournament.MemberRemovedMessage(strings.TrimSpace(member), team))
					return nil
				},
			},
			{
				Name:      "import",
				Usage:     "Add members from a CSV (team,member) or HTML table file; nothing is added if any row fails",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected a roster file, got %d arguments", c.NArg())
					}
					path := c.Args().First()
					f, err := os.Open(path)
					if err != nil {
						return err
					}
					defer f.Close()
					rows, err := parsers.ParseRoster(path, f)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					n, err := a.session(c).ImportRoster(c.Context, rows)
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "Imported %d members from %s.\n", n, path)
					return nil
				},
			},
		},
	}
}

func teamAndMember(c *cli.Context) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", fmt.Errorf("expected TEAM and NAME, got %d arguments", c.NArg())
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

func (a *application) eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "List events and choose the active one",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show the event catalog",
				Action: func(c *cli.Context) error {
					st := a.session(c).State()
					active, _ := st.ActiveEvent()
					for i, e := range st.Events() {
						marker := " "
						if e.Name == active.Name {
							marker = "*"
						}
						fmt.Fprintf(a.out, "%s %d. %s (%s)\n", marker, i+1, e.Name, e.Kind)
						if e.Description != "" {
							fmt.Fprintf(a.out, "     %s\n", e.Description)
						}
					}
					return nil
				},
			},
			{
				Name:      "select",
				Usage:     "Make an event active; this clears every recorded score",
				ArgsUsage: "[NAME|NUMBER]",
				Flags:     []cli.Flag{yesFlagDef()},
				Action: func(c *cli.Context) error {
					sess := a.session(c)
					st := sess.State()
					events := st.Events()

					var name string
					if c.NArg() > 0 {
						name = strings.Join(c.Args().Slice(), " ")
						if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= len(events) {
							name = events[n-1].Name
						}
					} else {
						chosen, ok, err := a.pickEvent(st)
						if err != nil {
							return err
						}
						if !ok {
							fmt.Fprintln(a.out, tournament.SelectionCancelledMessage)
							return nil
						}
						name = chosen
					}

					if _, ok := st.Event(name); !ok {
						return &tournament.NotFoundError{Kind: "event", Name: name}
					}
					if st.WouldResetScores() && !a.confirm(c, tournament.SelectEventPrompt(name)) {
						fmt.Fprintln(a.out, tournament.SelectionCancelledMessage)
						return nil
					}
					if err := sess.SelectEvent(c.Context, name); err != nil {
						return err
					}
					fmt.Fprintln(a.out, tournament.EventSelectedMessage(name))
					return nil
				},
			},
		},
	}
}

// pickEvent asks for an event with the full-screen picker on a terminal and
// with a numbered list otherwise.
func (a *application) pickEvent(st *tournament.State) (string, bool, error) {
	events := st.Events()
	active, _ := st.ActiveEvent()
	if isTerminal(a.in) {
		return ui.RunEventPicker(events, active.Name, a.in, a.errOut)
	}
	options := make([]string, len(events))
	for i, e := range events {
		options[i] = fmt.Sprintf("%s (%s)", e.Name, e.Kind)
		if e.Name == active.Name {
			options[i] += " - current"
		}
	}
	idx, ok := a.prompter.Choose(fmt.Sprintf("Select an event (1-%d): ", len(options)), options)
	if !ok {
		return "", false, nil
	}
	return events[idx].Name, true, nil
}

func (a *application) scoreCommand() *cli.Command {
	return &cli.Command{
		Name:  "score",
		Usage: "Record and show results for the active event",
		Subcommands: []*cli.Command{
			{
				Name:      "record",
				Usage:     "Record a team's result; prompts for values not given as flags",
				ArgsUsage: "TEAM",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "wins", Aliases: []string{"w"}, Usage: "Matches won (Tournament events)"},
					&cli.StringFlag{Name: "losses", Aliases: []string{"l"}, Usage: "Matches lost (Tournament events)"},
					&cli.StringFlag{Name: "points", Aliases: []string{"p"}, Usage: "Final points (Elimination events)"},
					yesFlagDef(),
				},
				Action: a.recordScore,
			},
			{
				Name:  "show",
				Usage: "Show every team's result for the active event",
				Action: func(c *cli.Context) error {
					st := a.session(c).State()
					event, ok := st.ActiveEvent()
					if !ok {
						return tournament.ErrNoActiveEvent
					}
					fmt.Fprintln(a.out, tournament.CurrentEventLabel(event.Name))
					for _, t := range st.Teams() {
						switch rec := t.EventScores[event.Name].(type) {
						case tournament.MatchRecord:
							fmt.Fprintf(a.out, "%s: Wins %d, Losses %d, Points %d\n", t.Name, rec.Wins, rec.Losses, rec.Points())
						case tournament.PlacementRecord:
							fmt.Fprintf(a.out, "%s: Points %d\n", t.Name, rec.Points())
						default:
							fmt.Fprintf(a.out, "%s: not scored\n", t.Name)
						}
					}
					return nil
				},
			},
		},
	}
}

func (a *application) recordScore(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected TEAM, got %d arguments", c.NArg())
	}
	team := c.Args().First()
	sess := a.session(c)
	st := sess.State()

	event, ok := st.ActiveEvent()
	if !ok {
		return tournament.ErrNoActiveEvent
	}
	current, ok := st.Team(team)
	if !ok {
		return &tournament.NotFoundError{Kind: "team", Name: team}
	}

	var in tournament.ScoreInput
	if c.IsSet("wins") || c.IsSet("losses") || c.IsSet("points") {
		in = tournament.ScoreInput{Wins: c.String("wins"), Losses: c.String("losses"), Points: c.String("points")}
	} else {
		var err error
		in, err = ui.RunScoreForm(team, event, current.EventScores[event.Name], a.in, a.errOut)
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintln(a.out, "Score entry cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	}
	if _, err := tournament.ParseScore(event.Kind, in); err != nil {
		return err
	}

	if st.WouldOverwrite(team) && !a.confirm(c, tournament.OverwritePrompt(team, event.Name)) {
		fmt.Fprintln(a.out, tournament.OverwriteCancelledMessage)
		return nil
	}
	rec, err := sess.RecordScore(c.Context, team, in)
	if rec != nil {
		fmt.Fprintln(a.out, tournament.ScoreSavedMessage(team, event.Name, rec))
	}
	return err
}

func (a *application) leaderboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "leaderboard",
		Usage: "Show or export the ranked standings",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the leaderboard",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "table", Usage: "table, bars or json"},
				},
				Action: func(c *cli.Context) error {
					board := leaderboard.Rank(a.session(c).State())
					switch c.String("format") {
					case "table":
						return a.printTable(board)
					case "bars":
						fmt.Fprint(a.out, ui.StandingsBars(board, 0))
						return nil
					case "json":
						enc := json.NewEncoder(a.out)
						enc.SetIndent("", "  ")
						return enc.Encode(board)
					default:
						return fmt.Errorf("unknown format %q", c.String("format"))
					}
				},
			},
			{
				Name:      "export",
				Usage:     "Write the leaderboard to a file (csv, yaml, html, xlsx, png or sciolyff); \"-\" writes to stdout",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format; defaults to the file extension"},
					&cli.StringFlag{Name: "name", Usage: "Tournament name (sciolyff)"},
					&cli.StringFlag{Name: "location", Usage: "Tournament location (sciolyff)"},
					&cli.StringFlag{Name: "date", Usage: "Tournament date as YYYY-MM-DD (sciolyff, default today)"},
				},
				Action: a.exportLeaderboard,
			},
		},
	}
}

func (a *application) printTable(board leaderboard.Board) error {
	if len(board.Entries) == 0 {
		fmt.Fprintln(a.out, "No teams or scores to display.")
		return nil
	}
	if board.Event != "" {
		fmt.Fprintf(a.out, "For Event: %s\n", board.Event)
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, row := range board.Table() {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func (a *application) exportLeaderboard(c *cli.Context) error {
	path := a.cfg.Export.File
	if c.NArg() > 0 {
		path = c.Args().First()
	}
	st := a.session(c).State()

	formatName := strings.ToLower(c.String("format"))
	if formatName == "" && path == stdoutCLIName {
		formatName = string(leaderboard.FormatCSV)
	}

	if path == stdoutCLIName {
		return a.renderExport(c, st, a.out, path, formatName)
	}
	w := writers.CreateDelayed(path)
	defer w.Close()
	if err := a.renderExport(c, st, w, path, formatName); err != nil {
		if w.Opened() {
			a.logger.Warn("export failed after writing started", zap.String("path", path), zap.Error(err))
		}
		return err
	}
	if !w.Opened() {
		return fmt.Errorf("nothing was written to %s", path)
	}
	if err := w.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.errOut, "Leaderboard exported to %s\n", w.Path())
	return nil
}

func (a *application) renderExport(c *cli.Context, st *tournament.State, out io.Writer, path, formatName string) error {
	if formatName == formatSciolyFF {
		doc, err := sciolyff.Generate(st, sciolyff.Metadata{
			Name:     c.String("name"),
			Location: c.String("location"),
			Date:     c.String("date"),
		}, time.Now())
		if err != nil {
			return err
		}
		if err := sciolyff.Write(out, doc); err != nil {
			return err
		}
	} else {
		var format leaderboard.Format
		var err error
		if formatName != "" {
			format, err = leaderboard.ParseFormat(formatName)
		} else {
			format, err = leaderboard.FormatFromPath(path)
		}
		if err != nil {
			return err
		}
		if err := leaderboard.Export(out, leaderboard.Rank(st), format); err != nil {
			return err
		}
	}
	return nil
}

func (a *application) statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the current event, team rosters and where data is saved",
		Action: func(c *cli.Context) error {
			sess := a.session(c)
			sum := sess.State().Summary()
			fmt.Fprintln(a.out, tournament.CurrentEventLabel(sum.ActiveEvent))
			for _, t := range sum.Teams {
				fmt.Fprintf(a.out, "%s - %s\n", t.Name, tournament.MembersLabel(t))
			}
			fmt.Fprintf(a.out, "Data: %s\n", sess.Location())
			return nil
		},
	}
}

func (a *application) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a read-only view of the saved tournament over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "Listen address (default from config)"},
		},
		Action: func(c *cli.Context) error {
			addr := a.cfg.Server.Addr
			if c.IsSet("addr") {
				addr = c.String("addr")
			}
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(a.store, a.cfg.Teams.Capacity, a.logger).ListenAndServe(ctx, addr)
		},
	}
}
