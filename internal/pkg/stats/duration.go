package stats

import (
	"fmt"
	"time"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
)

// Engine computes the time based statistics. It only needs the date/time layouts
// from the settings.
type Engine struct {
	dateTimeLayout string
}

func NewEngine(settings ticket.Settings) *Engine {
	return &Engine{
		dateTimeLayout: settings.DateTimeLayout(),
	}
}

// ParseDateTime joins a date and a time string and parses them as one instant.
func (e *Engine) ParseDateTime(date, clock string) (time.Time, error) {
	return ticket.ParseLayout(e.dateTimeLayout, date+" "+clock)
}

// FlightDuration is arrival minus departure. Arrival before departure yields a
// negative duration, which is returned as is.
func (e *Engine) FlightDuration(t ticket.Ticket) (time.Duration, error) {
	departure, err := e.ParseDateTime(t.DepartureDate, t.DepartureTime)
	if err != nil {
		return 0, fmt.Errorf("parse departure: %w", err)
	}

	arrival, err := e.ParseDateTime(t.ArrivalDate, t.ArrivalTime)
	if err != nil {
		return 0, fmt.Errorf("parse arrival: %w", err)
	}

	return arrival.Sub(departure), nil
}

// MinDurations maps each carrier to its shortest flight. On equal durations the
// first seen ticket wins. Carriers without tickets are absent.
func (e *Engine) MinDurations(tickets []ticket.Ticket) (map[string]time.Duration, error) {
	result := make(map[string]time.Duration)

	for _, t := range tickets {
		duration, err := e.FlightDuration(t)
		if err != nil {
			return nil, fmt.Errorf("carrier %s: %w", t.Carrier, err)
		}

		if current, ok := result[t.Carrier]; ok && current <= duration {
			continue
		}
		result[t.Carrier] = duration
	}

	return result, nil
}
