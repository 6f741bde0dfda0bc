package meetings

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsCalendar(t *testing.T) {
	t.Run(
		"1. empty params",
		func(t *testing.T) {
			cal, errCr := NewCalendar(
				&ParamsNewCalendar{},
			)
			require.Error(t, errCr)
			require.Nil(t, cal)
		},
	)

	t.Run(
		"2. invalid event",
		func(t *testing.T) {
			cal, errCr := NewCalendar(
				&ParamsNewCalendar{
					Name: "team",
				},
			)
			require.NoError(t, errCr)

			id, errAdd := cal.AddEvent(
				context.Background(),
				&ParamsNewEvent{
					When: mustTimeRange(60, 120, false),
				},
			)
			require.Error(t, errAdd)
			require.Empty(t, id)
			require.Empty(t, cal.GetEvents())
		},
	)

	t.Run(
		"3. remove unknown event",
		func(t *testing.T) {
			cal, errCr := NewCalendar(
				&ParamsNewCalendar{
					Name: "team",
				},
			)
			require.NoError(t, errCr)

			require.Error(t,
				cal.RemoveEvent("missing"),
			)
		},
	)
}

func TestLifeCycleCalendar(t *testing.T) {
	cal, errCr := NewCalendar(
		&ParamsNewCalendar{
			Name: "team",
		},
	)
	require.NoError(t, errCr)
	require.NotNil(t, cal)

	ctx := context.Background()

	require.Equal(t, "Calendar team: (empty)", cal.GetSchedule())

	idReview, errAddReview := cal.AddEvent(
		ctx,
		&ParamsNewEvent{
			Name:      "review",
			When:      mustTimeRange(_0900, _1000, false),
			Attendees: []string{"bob", "alice"},
		},
	)
	require.NoError(t, errAddReview)
	require.NotEmpty(t, idReview)

	idStandup, errAddStandup := cal.AddEvent(
		ctx,
		&ParamsNewEvent{
			Name:      "standup",
			When:      mustTimeRange(_0800, _0830, false),
			Attendees: []string{"alice"},
		},
	)
	require.NoError(t, errAddStandup)
	require.NotEqual(t, idReview, idStandup)

	_, errAddLunch := cal.AddEvent(
		ctx,
		&ParamsNewEvent{
			Name:      "lunch",
			When:      mustTimeRange(_0830, _0900, false),
			Attendees: []string{"carol"},
		},
	)
	require.NoError(t, errAddLunch)

	events := cal.GetEvents()
	require.Len(t, events, 3)
	require.Equal(t, "standup", events[0].Name())
	require.Equal(t, "lunch", events[1].Name())
	require.Equal(t, "review", events[2].Name())

	require.Equal(t,
		"Calendar team:\n"+
			"- 08:00-08:30 standup → alice\n"+
			"- 08:30-09:00 lunch → carol\n"+
			"- 09:00-10:00 review → alice, bob\n",
		cal.GetSchedule(),
	)

	require.Equal(t,
		[]TimeRange{
			mustTimeRange(_0800, _0830, false),
			mustTimeRange(_0900, _1000, false),
		},
		cal.GetBusy("alice"),
	)

	require.Empty(t, cal.GetBusy("dave"))

	request := testRequest(t, 30, "alice", "carol")

	require.Equal(t,
		[]TimeRange{
			mustTimeRange(StartOfDay, _0800, false),
			mustTimeRange(_1000, EndOfDay, true),
		},
		cal.FindMeetingTimes(ctx, request),
	)

	require.NoError(t,
		cal.RemoveEvent(idReview),
	)
	require.Error(t,
		cal.RemoveEvent(idReview),
	)

	require.Equal(t,
		[]TimeRange{
			mustTimeRange(StartOfDay, _0800, false),
			mustTimeRange(_0900, EndOfDay, true),
		},
		cal.FindMeetingTimes(ctx, request),
	)
}

func TestCalendarConcurrentUse(t *testing.T) {
	cal, errCr := NewCalendar(
		&ParamsNewCalendar{
			Name: "concurrent",
		},
	)
	require.NoError(t, errCr)

	ctx := context.Background()
	request := testRequest(t, 15, "A")

	var wg sync.WaitGroup

	for ix := range 24 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			_, errAdd := cal.AddEvent(
				ctx,
				&ParamsNewEvent{
					Name:      fmt.Sprintf("event %d", ix),
					When:      mustTimeRange(ix*60, ix*60+30, false),
					Attendees: []string{"A"},
				},
			)
			require.NoError(t, errAdd)
		}()

		go func() {
			defer wg.Done()

			cal.FindMeetingTimes(ctx, request)
		}()
	}

	wg.Wait()

	require.Len(t, cal.GetEvents(), 24)

	free := cal.FindMeetingTimes(ctx, request)
	require.Len(t, free, 24)

	for ix, window := range free {
		require.Equal(t, ix*60+30, window.Start())
		require.Equal(t, (ix+1)*60, window.End())
	}
}
