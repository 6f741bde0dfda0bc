package meetings

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

type EventID string

// Calendar holds the events of one day and answers meeting queries over them.
// It is safe for concurrent use.
type Calendar struct {
	Name string

	events map[EventID]*Event
	mu     sync.RWMutex
}

type ParamsNewCalendar struct {
	Name string `valid:"required"`
}

func NewCalendar(params *ParamsNewCalendar) (*Calendar, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Calendar",
				Caller:      "NewCalendar",
				Issue:       errValidation,
			}
	}

	return &Calendar{
			Name: params.Name,

			events: make(map[EventID]*Event),
		},
		nil
}

func (cal *Calendar) AddEvent(_ context.Context, params *ParamsNewEvent) (EventID, error) {
	event, errCr := NewEvent(params)
	if errCr != nil {
		return "",
			errCr
	}

	id := EventID(uuid.New().String())

	cal.mu.Lock()
	cal.events[id] = event
	cal.mu.Unlock()

	return id,
		nil
}

func (cal *Calendar) RemoveEvent(id EventID) error {
	cal.mu.Lock()
	defer cal.mu.Unlock()

	if _, exists := cal.events[id]; !exists {
		return goerrors.ErrInvalidInput{
			Caller:     "RemoveEvent",
			InputName:  "id",
			InputValue: id,
			Issue: fmt.Errorf(
				"event %s not found in calendar %s",
				id,
				cal.Name,
			),
		}
	}

	delete(cal.events, id)

	return nil
}

// GetEvents returns a snapshot ordered by time range, then by name.
func (cal *Calendar) GetEvents() []*Event {
	cal.mu.RLock()

	result := make([]*Event, 0, len(cal.events))
	for _, event := range cal.events {
		result = append(result, event)
	}

	cal.mu.RUnlock()

	slices.SortFunc(
		result,
		func(a, b *Event) int {
			if c := CompareTimeRanges(a.when, b.when); c != 0 {
				return c
			}

			return strings.Compare(a.name, b.name)
		},
	)

	return result
}

// GetBusy returns the merged, chronological busy ranges of the attendee.
func (cal *Calendar) GetBusy(attendee string) []TimeRange {
	return mergeBusy(
		collectBusy(
			cal.GetEvents(),
			newAttendeeSet([]string{attendee}),
		),
	)
}

func (cal *Calendar) FindMeetingTimes(_ context.Context, request *MeetingRequest) []TimeRange {
	return Query(cal.GetEvents(), request)
}

func (cal *Calendar) GetSchedule() string {
	events := cal.GetEvents()

	if len(events) == 0 {
		return fmt.Sprintf("Calendar %s: (empty)", cal.Name)
	}

	var sb strings.Builder
	sb.WriteString(
		fmt.Sprintf("Calendar %s:\n", cal.Name),
	)

	for _, event := range events {
		sb.WriteString(
			fmt.Sprintf(
				"- %s-%s %s → %s\n",

				FormatTimeOfDay(event.when.start),
				FormatTimeOfDay(event.when.end),
				event.name,
				strings.Join(event.Attendees(), ", "),
			),
		)
	}

	return sb.String()
}
