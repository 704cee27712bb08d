package ticketreader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
)

// documentTicket shadows Price so it is written as a JSON number.
type documentTicket struct {
	ticket.Ticket
	Price json.Number `json:"price"`
}

// WriteDocument serializes tickets under startField in the layout Reader consumes.
func WriteDocument(w io.Writer, startField string, tickets []ticket.Ticket) error {
	elements := make([]documentTicket, len(tickets))
	for i, t := range tickets {
		elements[i] = documentTicket{
			Ticket: t,
			Price:  json.Number(t.Price.String()),
		}
	}

	doc := map[string][]documentTicket{startField: elements}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode ticket document: %w", err)
	}

	return nil
}
