// Package calendarfile loads a day of calendar events from a YAML document.
package calendarfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/TudorHulban/meetings"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type File struct {
	Name   string      `yaml:"name"`
	Events []FileEvent `yaml:"events"`
}

// FileEvent bounds are 24-hour "HH:MM" strings, "24:00" marking the end of the day.
type FileEvent struct {
	Name      string   `yaml:"name"`
	Start     string   `yaml:"start"`
	End       string   `yaml:"end"`
	Attendees []string `yaml:"attendees"`
}

func Load(ctx context.Context, path string, logger *zap.Logger) (*meetings.Calendar, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil,
			fmt.Errorf("open calendar file: %w", errOpen)
	}
	defer f.Close()

	return Decode(ctx, f, logger)
}

func Decode(ctx context.Context, r io.Reader, logger *zap.Logger) (*meetings.Calendar, error) {
	var file File

	if errDecode := yaml.NewDecoder(r).Decode(&file); errDecode != nil {
		return nil,
			fmt.Errorf("decode calendar file: %w", errDecode)
	}

	cal, errCr := meetings.NewCalendar(
		&meetings.ParamsNewCalendar{
			Name: file.Name,
		},
	)
	if errCr != nil {
		return nil,
			fmt.Errorf("calendar file: %w", errCr)
	}

	for ix, event := range file.Events {
		when, errWhen := event.timeRange()
		if errWhen != nil {
			return nil,
				fmt.Errorf("event %d (%q): %w", ix, event.Name, errWhen)
		}

		id, errAdd := cal.AddEvent(
			ctx,
			&meetings.ParamsNewEvent{
				Name:      event.Name,
				When:      when,
				Attendees: event.Attendees,
			},
		)
		if errAdd != nil {
			return nil,
				fmt.Errorf("event %d (%q): %w", ix, event.Name, errAdd)
		}

		logger.Debug(
			"event loaded",
			zap.String("calendar", cal.Name),
			zap.String("id", string(id)),
			zap.String("name", event.Name),
			zap.Stringer("when", when),
			zap.Strings("attendees", event.Attendees),
		)
	}

	logger.Info(
		"calendar loaded",
		zap.String("calendar", cal.Name),
		zap.Int("events", len(file.Events)),
	)

	return cal, nil
}

func (e FileEvent) timeRange() (meetings.TimeRange, error) {
	start, errStart := meetings.ParseTimeOfDay(e.Start)
	if errStart != nil {
		return meetings.TimeRange{},
			fmt.Errorf("start: %w", errStart)
	}

	end, errEnd := meetings.ParseTimeOfDay(e.End)
	if errEnd != nil {
		return meetings.TimeRange{},
			fmt.Errorf("end: %w", errEnd)
	}

	return meetings.NewTimeRange(start, end, end == meetings.EndOfDay)
}
