package meetings

import (
	goerrors "github.com/TudorHulban/go-errors"
)

// MeetingRequest asks for a window of DurationMinutes in which every attendee is free.
// The duration may exceed a day, in which case no window fits.
type MeetingRequest struct {
	attendees attendeeSet
	duration  int
}

type ParamsNewMeetingRequest struct {
	Attendees       []string
	DurationMinutes int
}

func NewMeetingRequest(params *ParamsNewMeetingRequest) (*MeetingRequest, error) {
	if params == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewMeetingRequest",
				Issue: goerrors.ErrNilInput{
					InputName: "params",
				},
			}
	}

	if params.DurationMinutes < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewMeetingRequest",
				Issue: goerrors.ErrNegativeInput{
					InputName: "DurationMinutes",
				},
			}
	}

	return &MeetingRequest{
			attendees: newAttendeeSet(params.Attendees),
			duration:  params.DurationMinutes,
		},
		nil
}

func (r *MeetingRequest) Attendees() []string {
	return r.attendees.sorted()
}

func (r *MeetingRequest) Duration() int {
	return r.duration
}
