//go:build unit

package ticket

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSettings = Settings{
	StartField:  "tickets",
	DateLayout:  "02.01.06",
	TimeLayout:  "15:04",
	Origin:      "VVO",
	Destination: "TLV",
}

func validTicket() Ticket {
	return Ticket{
		Origin:          "VVO",
		OriginName:      "Владивосток",
		Destination:     "TLV",
		DestinationName: "Тель-Авив",
		DepartureDate:   "12.05.18",
		DepartureTime:   "16:20",
		ArrivalDate:     "12.05.18",
		ArrivalTime:     "22:10",
		Carrier:         "TK",
		Stops:           3,
		Price:           decimal.RequireFromString("12400"),
	}
}

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator(testSettings)
	require.NoError(t, err)

	validateRequest := func(mutate func(t *Ticket), wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			tk := validTicket()
			mutate(&tk)

			err := v.Validate(tk)
			if wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
				t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("valid_ticket", validateRequest(func(*Ticket) {}, ""))
	t.Run("fractional_price", validateRequest(func(tk *Ticket) {
		tk.Price = decimal.RequireFromString("0.01")
	}, ""))
	t.Run("missing_origin", validateRequest(func(tk *Ticket) {
		tk.Origin = ""
	}, "origin must not be blank"))
	t.Run("blank_destination", validateRequest(func(tk *Ticket) {
		tk.Destination = "   "
	}, "destination must not be blank"))
	t.Run("missing_departure_date", validateRequest(func(tk *Ticket) {
		tk.DepartureDate = ""
	}, "departure_date is a required field"))
	t.Run("invalid_departure_date", validateRequest(func(tk *Ticket) {
		tk.DepartureDate = "2018-05-12"
	}, `departure_date does not match date layout "02.01.06"`))
	t.Run("invalid_arrival_date", validateRequest(func(tk *Ticket) {
		tk.ArrivalDate = "32.05.18"
	}, `arrival_date does not match date layout "02.01.06"`))
	t.Run("invalid_departure_time", validateRequest(func(tk *Ticket) {
		tk.DepartureTime = "25:00"
	}, `departure_time does not match time layout "15:04"`))
	t.Run("one_digit_hour", validateRequest(func(tk *Ticket) {
		tk.DepartureTime = "9:40"
	}, `departure_time does not match time layout "15:04"`))
	t.Run("date_after_short_year_pivot", validateRequest(func(tk *Ticket) {
		tk.ArrivalDate = "01.01.69"
	}, ""))
	t.Run("invalid_arrival_time", validateRequest(func(tk *Ticket) {
		tk.ArrivalTime = "noon"
	}, `arrival_time does not match time layout "15:04"`))
	t.Run("zero_price", validateRequest(func(tk *Ticket) {
		tk.Price = decimal.Zero
	}, "price must be greater than 0"))
	t.Run("negative_price", validateRequest(func(tk *Ticket) {
		tk.Price = decimal.RequireFromString("-100")
	}, "price must be greater than 0"))
}

func TestTicket_RoundTrip(t *testing.T) {
	want := validTicket()
	want.Price = decimal.RequireFromString("12400.50")

	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got Ticket
	require.NoError(t, json.Unmarshal(data, &got))

	assert.True(t, want.Price.Equal(got.Price), "price %s != %s", want.Price, got.Price)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSettings_DateTimeLayout(t *testing.T) {
	assert.Equal(t, "02.01.06 15:04", testSettings.DateTimeLayout())
}
