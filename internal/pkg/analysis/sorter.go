package analysis

import (
	"sort"
)

const (
	SortByCarrier  = "carrier"
	SortByDuration = "duration"
)

// SortCarriers orders by carrier code (default) or by duration with carrier code
// as the tie breaker, so output is stable across runs.
func SortCarriers(carriers []CarrierDuration, sortField string) []CarrierDuration {
	switch sortField {
	case SortByDuration:
		sort.Slice(carriers, func(i, j int) bool {
			if carriers[i].Duration != carriers[j].Duration {
				return carriers[i].Duration < carriers[j].Duration
			}
			return carriers[i].Carrier < carriers[j].Carrier
		})
	default:
		sort.Slice(carriers, func(i, j int) bool {
			return carriers[i].Carrier < carriers[j].Carrier
		})
	}

	return carriers
}
