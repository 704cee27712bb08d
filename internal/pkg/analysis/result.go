package analysis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Result is the outcome of one analysis run. It is built once by NewResult and
// only exposes copies of its contents.
type Result struct {
	origin          string
	destination     string
	priceDifference decimal.Decimal
	minDurations    map[string]time.Duration
}

// CarrierDuration is one entry of the per-carrier minimum flight time.
type CarrierDuration struct {
	Carrier  string
	Duration time.Duration
}

func NewResult(origin, destination string, priceDifference decimal.Decimal,
	minDurations map[string]time.Duration) Result {
	durations := make(map[string]time.Duration, len(minDurations))
	for carrier, d := range minDurations {
		durations[carrier] = d
	}

	return Result{
		origin:          origin,
		destination:     destination,
		priceDifference: priceDifference,
		minDurations:    durations,
	}
}

func (r Result) Origin() string { return r.origin }

func (r Result) Destination() string { return r.destination }

// PriceDifference is mean minus median of the route prices.
func (r Result) PriceDifference() decimal.Decimal { return r.priceDifference }

// MinDurations returns a copy of the carrier to minimum duration mapping.
func (r Result) MinDurations() map[string]time.Duration {
	durations := make(map[string]time.Duration, len(r.minDurations))
	for carrier, d := range r.minDurations {
		durations[carrier] = d
	}
	return durations
}

func (r Result) MinDuration(carrier string) (time.Duration, bool) {
	d, ok := r.minDurations[carrier]
	return d, ok
}

// Carriers lists the per-carrier minimums ordered by sortField.
func (r Result) Carriers(sortField string) []CarrierDuration {
	carriers := make([]CarrierDuration, 0, len(r.minDurations))
	for carrier, d := range r.minDurations {
		carriers = append(carriers, CarrierDuration{Carrier: carrier, Duration: d})
	}
	return SortCarriers(carriers, sortField)
}

type resultJSON struct {
	Origin          string                   `json:"origin"`
	Destination     string                   `json:"destination"`
	PriceDifference decimal.Decimal          `json:"price_difference"`
	MinDurations    map[string]time.Duration `json:"min_durations"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Origin:          r.origin,
		Destination:     r.destination,
		PriceDifference: r.priceDifference,
		MinDurations:    r.minDurations,
	})
}

// DecodeResult rebuilds a Result from its MarshalJSON form.
func DecodeResult(data []byte) (Result, error) {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return Result{}, fmt.Errorf("decode result: %w", err)
	}

	return NewResult(raw.Origin, raw.Destination, raw.PriceDifference, raw.MinDurations), nil
}
