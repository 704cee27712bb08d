package ticket

import (
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/parallel"
)

// FilterRoute keeps tickets whose origin and destination equal the given codes
// exactly. Large inputs are filtered in parallel chunks; input order is kept.
func FilterRoute(tickets []Ticket, origin, destination string) []Ticket {
	return parallel.Filter(tickets, func(t Ticket) bool {
		return t.Origin == origin && t.Destination == destination
	})
}
