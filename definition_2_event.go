package meetings

import (
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Event is a named calendar entry occupying its attendees during When.
type Event struct {
	name      string
	when      TimeRange
	attendees attendeeSet
}

type ParamsNewEvent struct {
	Name      string `valid:"required"`
	When      TimeRange
	Attendees []string
}

func NewEvent(params *ParamsNewEvent) (*Event, error) {
	if params == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue: goerrors.ErrNilInput{
					InputName: "params",
				},
			}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue:  errValidation,
			}
	}

	return &Event{
			name:      params.Name,
			when:      params.When,
			attendees: newAttendeeSet(params.Attendees),
		},
		nil
}

func (e *Event) Name() string {
	return e.name
}

func (e *Event) When() TimeRange {
	return e.when
}

// Attendees returns a sorted copy.
func (e *Event) Attendees() []string {
	return e.attendees.sorted()
}

func (e *Event) HasAttendee(attendee string) bool {
	_, exists := e.attendees[attendee]

	return exists
}

func (e *Event) HasAnyAttendee(attendees []string) bool {
	return e.attendees.intersects(newAttendeeSet(attendees))
}

func (e *Event) String() string {
	return fmt.Sprintf(
		"%s %s %v",

		e.when,
		e.name,
		e.Attendees(),
	)
}
