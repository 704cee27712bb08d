//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/analysis"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSettings = ticket.Settings{
	StartField:  "tickets",
	DateLayout:  "02.01.06",
	TimeLayout:  "15:04",
	Origin:      "VVO",
	Destination: "TLV",
}

func newTicket(origin, destination, carrier, price, depTime, arrTime string) ticket.Ticket {
	return ticket.Ticket{
		Origin:        origin,
		Destination:   destination,
		Carrier:       carrier,
		Price:         decimal.RequireFromString(price),
		DepartureDate: "12.05.18",
		DepartureTime: depTime,
		ArrivalDate:   "12.05.18",
		ArrivalTime:   arrTime,
	}
}

func TestAnalysisService_Analyze(t *testing.T) {
	type mockField struct {
		cache  *MockResultCacher
		reader *MockTicketReader
	}

	tickets := []ticket.Ticket{
		newTicket("VVO", "TLV", "SU", "10000", "10:00", "18:00"),
		newTicket("VVO", "TLV", "SU", "15000", "11:00", "17:00"),
		newTicket("VVO", "TLV", "TK", "20000", "09:00", "21:00"),
		newTicket("VVO", "UFA", "TK", "99999", "09:00", "10:00"),
		newTicket("LED", "TLV", "S7", "1", "08:00", "09:00"),
	}

	computed := analysis.NewResult("VVO", "TLV", decimal.RequireFromString("0.00"), map[string]time.Duration{
		"SU": 6 * time.Hour,
		"TK": 12 * time.Hour,
	})

	analyzeRequest := func(
		withCache bool,
		setupMock func(m mockField),
		want analysis.Result,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := mockField{
				cache:  NewMockResultCacher(t),
				reader: NewMockTicketReader(t),
			}
			setupMock(m)

			var cache ResultCacher
			if withCache {
				cache = m.cache
			}
			s := NewAnalysisService(testSettings, m.reader, cache, 10*time.Minute, 5*time.Second)

			got, err := s.Analyze(context.Background(), "tickets.json")

			if wantErr != nil {
				assert.Error(t, err)
				if !errors.Is(err, wantErr) {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, want.Origin(), got.Origin())
			assert.Equal(t, want.Destination(), got.Destination())
			assert.True(t, want.PriceDifference().Equal(got.PriceDifference()),
				"price difference want %s got %s", want.PriceDifference(), got.PriceDifference())
			if diff := cmp.Diff(want.MinDurations(), got.MinDurations()); diff != "" {
				t.Fatalf("Analyze() durations mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("without_cache", analyzeRequest(false, func(m mockField) {
		m.reader.On("ReadFile", mock.Anything, "tickets.json").Return(tickets)
	}, computed, nil))

	t.Run("cache_hit", analyzeRequest(true, func(m mockField) {
		m.cache.On("GetCacheKey", "tickets.json", testSettings).Return("cache-key", nil)
		m.cache.On("GetResult", mock.Anything, "cache-key").Return(computed, nil)
	}, computed, nil))

	t.Run("cache_miss_stores_result", analyzeRequest(true, func(m mockField) {
		m.cache.On("GetCacheKey", "tickets.json", testSettings).Return("cache-key", nil)
		m.cache.On("GetResult", mock.Anything, "cache-key").Return(analysis.Result{}, errors.New("miss"))
		m.reader.On("ReadFile", mock.Anything, "tickets.json").Return(tickets)
		m.cache.On("GetLockKey", "cache-key").Return("lock-key")
		m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(true, nil)
		m.cache.On("SetResult", mock.Anything, "cache-key", mock.Anything, 10*time.Minute).Return(nil)
		m.cache.On("ReleaseLock", mock.Anything, "lock-key").Return(nil)
	}, computed, nil))

	t.Run("lock_held_elsewhere_skips_store", analyzeRequest(true, func(m mockField) {
		m.cache.On("GetCacheKey", "tickets.json", testSettings).Return("cache-key", nil)
		m.cache.On("GetResult", mock.Anything, "cache-key").Return(analysis.Result{}, errors.New("miss"))
		m.reader.On("ReadFile", mock.Anything, "tickets.json").Return(tickets)
		m.cache.On("GetLockKey", "cache-key").Return("lock-key")
		m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(false, nil)
	}, computed, nil))

	t.Run("cache_errors_are_not_fatal", analyzeRequest(true, func(m mockField) {
		m.cache.On("GetCacheKey", "tickets.json", testSettings).Return("cache-key", nil)
		m.cache.On("GetResult", mock.Anything, "cache-key").Return(analysis.Result{}, errors.New("connection refused"))
		m.reader.On("ReadFile", mock.Anything, "tickets.json").Return(tickets)
		m.cache.On("GetLockKey", "cache-key").Return("lock-key")
		m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(false, errors.New("connection refused"))
	}, computed, nil))

	t.Run("unreadable_file_skips_cache", analyzeRequest(true, func(m mockField) {
		m.cache.On("GetCacheKey", "tickets.json", testSettings).Return("", errors.New("stat: no such file"))
		m.reader.On("ReadFile", mock.Anything, "tickets.json").Return([]ticket.Ticket{})
	}, analysis.Result{}, ErrNoTicketsFound))

	t.Run("no_ticket_for_route", analyzeRequest(false, func(m mockField) {
		m.reader.On("ReadFile", mock.Anything, "tickets.json").Return(tickets[3:])
	}, analysis.Result{}, ErrNoTicketsFound))
}
