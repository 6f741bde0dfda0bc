package meetings

import (
	"slices"
)

// Query returns, in chronological order, the windows of the day in which none of
// the request attendees is busy and which last at least the requested duration.
// The inputs are not modified.
func Query(events []*Event, request *MeetingRequest) []TimeRange {
	if request.duration > WholeDay.Duration() {
		return []TimeRange{}
	}

	busy := collectBusy(events, request.attendees)
	if len(busy) == 0 {
		return []TimeRange{WholeDay}
	}

	return filterByDuration(
		complementOf(
			mergeBusy(busy),
		),
		request.duration,
	)
}

// collectBusy returns the distinct windows of events attended by at least one
// of the attendees, sorted by start and then end.
// Identical windows from different events collapse into one entry.
func collectBusy(events []*Event, attendees attendeeSet) []TimeRange {
	unique := make(map[TimeRange]struct{})

	for _, event := range events {
		if event.attendees.intersects(attendees) {
			unique[event.when] = struct{}{}
		}
	}

	result := make([]TimeRange, 0, len(unique))

	for when := range unique {
		result = append(result, when)
	}

	slices.SortFunc(result, CompareTimeRanges)

	return result
}

// mergeBusy folds sorted ranges that touch or overlap into disjoint ranges.
// Each range is compared to its predecessor; when they meet, the predecessor is
// absorbed into the current position.
func mergeBusy(sorted []TimeRange) []TimeRange {
	if len(sorted) == 0 {
		return nil
	}

	merged := slices.Clone(sorted)
	absorbed := make([]bool, len(merged))

	for i := 1; i < len(merged); i++ {
		previous, current := merged[i-1], merged[i]

		if previous.end >= current.start {
			merged[i] = mustTimeRange(
				previous.start,
				max(previous.end, current.end),
				false,
			)

			absorbed[i-1] = true
		}
	}

	result := make([]TimeRange, 0, len(merged))

	for ix, busy := range merged {
		if !absorbed[ix] {
			result = append(result, busy)
		}
	}

	return result
}

// complementOf returns the gaps around disjoint chronological busy ranges,
// zero-length gaps included.
// The last gap always ends at EndOfDay.
func complementOf(busy []TimeRange) []TimeRange {
	result := make([]TimeRange, 0, len(busy)+1)
	lastTime := StartOfDay

	for _, current := range busy {
		result = append(
			result,
			mustTimeRange(lastTime, current.start, false),
		)

		lastTime = current.end
	}

	return append(
		result,
		mustTimeRange(lastTime, EndOfDay, true),
	)
}

func filterByDuration(candidates []TimeRange, minutes int) []TimeRange {
	result := make([]TimeRange, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.Duration() >= minutes {
			result = append(result, candidate)
		}
	}

	return result
}
