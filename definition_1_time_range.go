package meetings

import (
	"cmp"
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
)

// Minutes since midnight.
const (
	StartOfDay = 0
	EndOfDay   = 24 * 60
)

// WholeDay spans the full day, [00:00, 24:00].
var WholeDay = TimeRange{
	start: StartOfDay,
	end:   EndOfDay,
}

var ErrInvalidRange = errors.New("invalid time range")

// TimeRange is an immutable interval over minutes of a single day.
// Two ranges with the same bounds are the same value and can be used as map keys.
type TimeRange struct {
	start int
	end   int
}

// NewTimeRange builds the range [start, end).
// With inclusiveOfEnd the end minute is a valid meeting end instant, as for the
// last free block of the day. The stored bounds are the same in both cases.
func NewTimeRange(start, end int, inclusiveOfEnd bool) (TimeRange, error) {
	if start < StartOfDay || start > EndOfDay {
		return TimeRange{},
			goerrors.ErrInvalidInput{
				Caller:     "NewTimeRange",
				InputName:  "start",
				InputValue: start,
				Issue: fmt.Errorf(
					"%w: start outside of day",
					ErrInvalidRange,
				),
			}
	}

	if end < StartOfDay || end > EndOfDay {
		return TimeRange{},
			goerrors.ErrInvalidInput{
				Caller:     "NewTimeRange",
				InputName:  "end",
				InputValue: end,
				Issue: fmt.Errorf(
					"%w: end outside of day",
					ErrInvalidRange,
				),
			}
	}

	if start > end {
		return TimeRange{},
			goerrors.ErrInvalidInput{
				Caller:     "NewTimeRange",
				InputName:  "end",
				InputValue: end,
				Issue: fmt.Errorf(
					"%w: start %d after end %d",
					ErrInvalidRange,
					start,
					end,
				),
			}
	}

	return TimeRange{
			start: start,
			end:   end,
		},
		nil
}

// mustTimeRange is for bounds already known to lie within the day.
func mustTimeRange(start, end int, inclusiveOfEnd bool) TimeRange {
	result, errCr := NewTimeRange(start, end, inclusiveOfEnd)
	if errCr != nil {
		panic(errCr)
	}

	return result
}

func (r TimeRange) Start() int {
	return r.start
}

func (r TimeRange) End() int {
	return r.end
}

func (r TimeRange) Duration() int {
	return r.end - r.start
}

// Contains reports whether minute falls in [start, end).
func (r TimeRange) Contains(minute int) bool {
	return minute >= r.start && minute < r.end
}

func (r TimeRange) ContainsRange(other TimeRange) bool {
	return other.start >= r.start && other.end <= r.end
}

// Overlaps reports whether the two ranges share an instant.
// A zero-length range sitting inside another range overlaps it.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Contains(other.start) || other.Contains(r.start)
}

func (r TimeRange) String() string {
	return fmt.Sprintf(
		"[%s, %s)",

		FormatTimeOfDay(r.start),
		FormatTimeOfDay(r.end),
	)
}

// CompareTimeRanges orders by start, then by end.
func CompareTimeRanges(a, b TimeRange) int {
	if c := cmp.Compare(a.start, b.start); c != 0 {
		return c
	}

	return cmp.Compare(a.end, b.end)
}
