package meetings

import (
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

const _EndOfDayLiteral = "24:00"

// ParseTimeOfDay converts a 24-hour "HH:MM" string into minutes since midnight.
// "24:00" is accepted as the end of the day.
func ParseTimeOfDay(value string) (int, error) {
	if value == _EndOfDayLiteral {
		return EndOfDay, nil
	}

	parsed, errParse := time.Parse("15:04", value)
	if errParse != nil {
		return 0,
			goerrors.ErrInvalidInput{
				Caller:     "ParseTimeOfDay",
				InputName:  "value",
				InputValue: value,
				Issue:      errParse,
			}
	}

	return parsed.Hour()*60 + parsed.Minute(),
		nil
}

func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf(
		"%02d:%02d",

		minutes/60,
		minutes%60,
	)
}
