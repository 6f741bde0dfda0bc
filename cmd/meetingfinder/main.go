package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TudorHulban/meetings"
	"github.com/TudorHulban/meetings/internal/calendarfile"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// missing .env is fine
	_ = godotenv.Load()

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "meetingfinder",
		Usage:  "Find the times of day when every attendee is free.",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"MEETINGS_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "env",
				Value:   "development",
				Usage:   "production switches logging to JSON",
				EnvVars: []string{"MEETINGS_ENV"},
			},
		},
		Commands: []*cli.Command{
			findCommand(),
			busyCommand(),
			scheduleCommand(),
		},
	}
}

func calendarFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "calendar",
		Aliases:  []string{"c"},
		Usage:    "YAML calendar file",
		Required: true,
		EnvVars:  []string{"MEETINGS_CALENDAR"},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   _OutputText,
		Usage:   "text or yaml",
		EnvVars: []string{"MEETINGS_OUTPUT"},
	}
}

func loadCalendar(c *cli.Context) (*meetings.Calendar, *zap.Logger, error) {
	logger, errLogger := newLogger(c.String("env"), c.String("log-level"))
	if errLogger != nil {
		return nil, nil,
			fmt.Errorf("failed to set up logger: %w", errLogger)
	}

	cal, errLoad := calendarfile.Load(c.Context, c.String("calendar"), logger)
	if errLoad != nil {
		return nil, nil,
			fmt.Errorf("failed to load calendar: %w", errLoad)
	}

	return cal, logger, nil
}

func findCommand() *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "Print the free windows long enough for the meeting.",
		Flags: []cli.Flag{
			calendarFlag(),
			outputFlag(),
			&cli.StringSliceFlag{
				Name:    "attendee",
				Aliases: []string{"a"},
				Usage:   "required attendee, repeatable",
				EnvVars: []string{"MEETINGS_ATTENDEES"},
			},
			&cli.IntFlag{
				Name:    "duration",
				Aliases: []string{"d"},
				Value:   30,
				Usage:   "meeting length in minutes",
				EnvVars: []string{"MEETINGS_DURATION"},
			},
		},
		Action: func(c *cli.Context) error {
			cal, logger, errLoad := loadCalendar(c)
			if errLoad != nil {
				return errLoad
			}
			defer logger.Sync() //nolint:errcheck

			request, errRequest := meetings.NewMeetingRequest(
				&meetings.ParamsNewMeetingRequest{
					Attendees:       c.StringSlice("attendee"),
					DurationMinutes: c.Int("duration"),
				},
			)
			if errRequest != nil {
				return fmt.Errorf("invalid meeting request: %w", errRequest)
			}

			free := cal.FindMeetingTimes(c.Context, request)

			logger.Info(
				"free windows found",
				zap.Strings("attendees", request.Attendees()),
				zap.Int("duration", request.Duration()),
				zap.Int("windows", len(free)),
			)

			return writeRanges(c.App.Writer, c.String("output"), free)
		},
	}
}

func busyCommand() *cli.Command {
	return &cli.Command{
		Name:  "busy",
		Usage: "Print the merged busy ranges of one attendee.",
		Flags: []cli.Flag{
			calendarFlag(),
			outputFlag(),
			&cli.StringFlag{
				Name:     "attendee",
				Aliases:  []string{"a"},
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			cal, logger, errLoad := loadCalendar(c)
			if errLoad != nil {
				return errLoad
			}
			defer logger.Sync() //nolint:errcheck

			return writeRanges(
				c.App.Writer,
				c.String("output"),
				cal.GetBusy(c.String("attendee")),
			)
		},
	}
}

func scheduleCommand() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Print every event of the calendar in chronological order.",
		Flags: []cli.Flag{
			calendarFlag(),
		},
		Action: func(c *cli.Context) error {
			cal, logger, errLoad := loadCalendar(c)
			if errLoad != nil {
				return errLoad
			}
			defer logger.Sync() //nolint:errcheck

			_, errWrite := fmt.Fprintln(c.App.Writer, cal.GetSchedule())

			return errWrite
		},
	}
}
