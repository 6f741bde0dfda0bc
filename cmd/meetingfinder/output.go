package main

import (
	"fmt"
	"io"

	"github.com/TudorHulban/meetings"
	"gopkg.in/yaml.v3"
)

const (
	_OutputText = "text"
	_OutputYAML = "yaml"
)

type windowOutput struct {
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Minutes int    `yaml:"minutes"`
}

func writeRanges(w io.Writer, format string, ranges []meetings.TimeRange) error {
	switch format {
	case _OutputText:
		for _, timeRange := range ranges {
			if _, errWrite := fmt.Fprintf(
				w,
				"%s-%s\n",

				meetings.FormatTimeOfDay(timeRange.Start()),
				meetings.FormatTimeOfDay(timeRange.End()),
			); errWrite != nil {
				return errWrite
			}
		}

		return nil

	case _OutputYAML:
		result := make([]windowOutput, 0, len(ranges))

		for _, timeRange := range ranges {
			result = append(
				result,
				windowOutput{
					Start:   meetings.FormatTimeOfDay(timeRange.Start()),
					End:     meetings.FormatTimeOfDay(timeRange.End()),
					Minutes: timeRange.Duration(),
				},
			)
		}

		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()

		return encoder.Encode(result)
	}

	return fmt.Errorf("unknown output format %q", format)
}
