// Package ticket holds the ticket offer record together with its validation
// policy and the route filter.
package ticket

import (
	"github.com/shopspring/decimal"
)

// Ticket is one airline ticket offer as it appears in the input document.
// Date and time fields stay strings in the configured layouts.
type Ticket struct {
	Origin          string          `json:"origin" validate:"notblank"`
	OriginName      string          `json:"origin_name,omitempty"`
	Destination     string          `json:"destination" validate:"notblank"`
	DestinationName string          `json:"destination_name,omitempty"`
	DepartureDate   string          `json:"departure_date" validate:"required,date_layout"`
	DepartureTime   string          `json:"departure_time" validate:"required,time_layout"`
	ArrivalDate     string          `json:"arrival_date" validate:"required,date_layout"`
	ArrivalTime     string          `json:"arrival_time" validate:"required,time_layout"`
	Carrier         string          `json:"carrier"`
	Stops           int             `json:"stops"`
	Price           decimal.Decimal `json:"price" validate:"gt=0"`
}

// Settings is the configuration shared by the reader and the statistics engine.
// It is resolved once at startup and never mutated.
type Settings struct {
	StartField  string
	DateLayout  string
	TimeLayout  string
	Origin      string
	Destination string
}

// DateTimeLayout is the layout used to parse "<date> <time>".
func (s Settings) DateTimeLayout() string {
	return s.DateLayout + " " + s.TimeLayout
}
