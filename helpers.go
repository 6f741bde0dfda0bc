package meetings

import (
	"slices"
)

type attendeeSet map[string]struct{}

func newAttendeeSet(attendees []string) attendeeSet {
	result := make(attendeeSet, len(attendees))

	for _, attendee := range attendees {
		result[attendee] = struct{}{}
	}

	return result
}

func (set attendeeSet) sorted() []string {
	result := make([]string, 0, len(set))

	for attendee := range set {
		result = append(result, attendee)
	}

	slices.Sort(result)

	return result
}

// intersects ranges over the smaller set.
func (set attendeeSet) intersects(other attendeeSet) bool {
	small, large := set, other
	if len(small) > len(large) {
		small, large = large, small
	}

	for attendee := range small {
		if _, exists := large[attendee]; exists {
			return true
		}
	}

	return false
}
