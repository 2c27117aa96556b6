package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/glyph"
)

// Event is a calendar projection of a ledger record: a completed task
// on its completion day, or an hours entry on its recorded day.
type Event struct {
	Day    time.Time
	Bullet glyph.Bullet
	Text   string
}

// CalendarMonth resolves the month the calendar renders. A nil
// override means the current month; months before tracking began clamp
// to the first tracked month.
func (s *Service) CalendarMonth(on *time.Time) time.Time {
	month := s.Clock.Now()
	if on != nil {
		month = *on
	}
	if month.Before(s.Cfg.TrackStart) && !dates.SameMonth(month, s.Cfg.TrackStart) {
		return s.Cfg.TrackStart
	}
	return month
}

// CalendarEvents projects both ledgers onto the given month's days,
// ordered by day.
func (s *Service) CalendarEvents(ctx context.Context, month time.Time) ([]Event, error) {
	events := make([]Event, 0)

	tasks, err := s.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if !t.Completed || t.DateCompleted == nil {
			continue
		}
		if !t.DateCompleted.SameMonth(month) {
			continue
		}
		events = append(events, Event{
			Day:    dates.Midnight(t.DateCompleted.Time),
			Bullet: glyph.Completed,
			Text:   t.Description,
		})
	}

	studyHours, err := s.Hours.All(ctx)
	if err != nil {
		return nil, err
	}
	for day, v := range studyHours {
		d, err := dates.ParseDay(day)
		if err != nil {
			continue
		}
		if !dates.SameMonth(d, month) {
			continue
		}
		events = append(events, Event{
			Day:    d,
			Bullet: glyph.Hours,
			Text:   fmt.Sprintf("%gh studied", v),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Day.Before(events[j].Day)
	})
	return events, nil
}
