// Package ticketreader streams a ticket document token by token, decoding and
// validating one array element at a time.
package ticketreader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/metrics"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
)

var (
	errRootNotObject       = errors.New("document root must be an object")
	errStartFieldNotArray  = errors.New("start field must hold an array")
	errUnexpectedFieldName = errors.New("unexpected token in place of a field name")
)

type TicketValidator interface {
	Validate(t ticket.Ticket) error
}

// Stats counts the array elements seen during one read.
type Stats struct {
	Total    int
	Accepted int
	Rejected int
}

type Reader struct {
	startField string
	validator  TicketValidator
	sources    *SourceFactory
}

func NewReader(settings ticket.Settings, validator TicketValidator, sources *SourceFactory) *Reader {
	if sources == nil {
		sources = DefaultSourceFactory()
	}

	return &Reader{
		startField: settings.StartField,
		validator:  validator,
		sources:    sources,
	}
}

// ReadFile returns the valid tickets found in the document at path.
// It never fails: input problems are logged and yield fewer (or no) tickets.
func (r *Reader) ReadFile(ctx context.Context, path string) []ticket.Ticket {
	tickets, _ := r.ReadFileWithStats(ctx, path)
	return tickets
}

func (r *Reader) ReadFileWithStats(ctx context.Context, path string) ([]ticket.Ticket, Stats) {
	if strings.TrimSpace(path) == "" {
		slog.ErrorContext(ctx, "ticket file path is empty")
		return []ticket.Ticket{}, Stats{}
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		slog.ErrorContext(ctx, "ticket file not found", slog.String("path", path))
		return []ticket.Ticket{}, Stats{}
	}

	src, err := r.sources.Open(path)
	if err != nil {
		slog.ErrorContext(ctx, "failed to open ticket file",
			slog.String("path", path), slog.String("error", err.Error()))
		return []ticket.Ticket{}, Stats{}
	}
	defer src.Close()

	return r.Read(ctx, src)
}

// Read consumes src as a ticket document. Whatever was collected before an
// input-level failure is returned.
func (r *Reader) Read(ctx context.Context, src io.Reader) ([]ticket.Ticket, Stats) {
	var (
		tickets = []ticket.Ticket{}
		stats   Stats
	)

	dec := json.NewDecoder(src)

	if err := r.readDocument(ctx, dec, &tickets, &stats); err != nil {
		slog.ErrorContext(ctx, "failed to read ticket document",
			slog.String("start_field", r.startField),
			slog.String("error", err.Error()))
	}

	slog.DebugContext(ctx, "ticket document read",
		slog.Int("total", stats.Total),
		slog.Int("accepted", stats.Accepted),
		slog.Int("rejected", stats.Rejected))

	return tickets, stats
}

func (r *Reader) readDocument(ctx context.Context, dec *json.Decoder, tickets *[]ticket.Ticket, stats *Stats) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return errRootNotObject
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		name, ok := tok.(string)
		if !ok {
			return errUnexpectedFieldName
		}

		if name != r.startField {
			slog.WarnContext(ctx, "skipping unknown top-level field", slog.String("field", name))
			if err := skipValue(dec); err != nil {
				return fmt.Errorf("skip field %q: %w", name, err)
			}
			continue
		}

		if err := r.readArray(ctx, dec, tickets, stats); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reader) readArray(ctx context.Context, dec *json.Decoder, tickets *[]ticket.Ticket, stats *Stats) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('[') {
		return fmt.Errorf("%w: %q", errStartFieldNotArray, r.startField)
	}

	for index := 0; dec.More(); index++ {
		// a raw element failing here means the stream itself is broken
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("read ticket %d: %w", index, err)
		}

		stats.Total++
		metrics.TicketsRead.Inc()

		t, err := r.decodeTicket(raw)
		if err != nil {
			stats.Rejected++
			metrics.TicketsRejected.WithLabelValues(metrics.ReasonDecode).Inc()
			slog.WarnContext(ctx, "failed to decode ticket",
				slog.Int("index", index), slog.String("error", err.Error()))
			continue
		}

		if err := r.validator.Validate(t); err != nil {
			stats.Rejected++
			metrics.TicketsRejected.WithLabelValues(metrics.ReasonValidation).Inc()
			slog.WarnContext(ctx, "invalid ticket dropped",
				slog.Int("index", index),
				slog.String("reason", err.Error()),
				slog.Any("ticket", t))
			continue
		}

		stats.Accepted++
		*tickets = append(*tickets, t)
	}

	// closing bracket
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// decodeTicket maps one element onto a Ticket. Properties Ticket does not declare
// fail the element.
func (r *Reader) decodeTicket(raw json.RawMessage) (ticket.Ticket, error) {
	var t ticket.Ticket

	if len(raw) == 0 || raw[0] != '{' {
		return t, errors.New("ticket element is not an object")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&t); err != nil {
		return ticket.Ticket{}, err
	}

	return t, nil
}

// skipValue discards the next value, descending through nested objects and arrays.
func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		switch tok {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}

		if depth == 0 {
			return nil
		}
	}
}
