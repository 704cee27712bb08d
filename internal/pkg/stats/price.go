package stats

import (
	"sort"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/parallel"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits kept by averaging operations.
const PriceScale = 2

var two = decimal.NewFromInt(2)

// Prices extracts the ticket prices in input order.
func Prices(tickets []ticket.Ticket) []decimal.Decimal {
	prices := make([]decimal.Decimal, len(tickets))
	for i, t := range tickets {
		prices[i] = t.Price
	}
	return prices
}

// Mean is the exact sum divided by the count, rounded half-up to PriceScale digits.
func Mean(prices []decimal.Decimal) (decimal.Decimal, error) {
	if len(prices) == 0 {
		return decimal.Decimal{}, ErrNoTickets
	}

	sum := parallel.Reduce(prices,
		func() decimal.Decimal { return decimal.Zero },
		decimal.Decimal.Add,
		decimal.Decimal.Add,
	)

	return sum.DivRound(decimal.NewFromInt(int64(len(prices))), PriceScale), nil
}

// Median is the middle price for an odd count and the half-up rounded average of
// the two middle prices for an even count.
func Median(prices []decimal.Decimal) (decimal.Decimal, error) {
	if len(prices) == 0 {
		return decimal.Decimal{}, ErrNoTickets
	}

	sorted := make([]decimal.Decimal, len(prices))
	copy(sorted, prices)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})

	size := len(sorted)
	if size%2 == 1 {
		return sorted[size/2], nil
	}

	return sorted[size/2-1].Add(sorted[size/2]).DivRound(two, PriceScale), nil
}

// PriceDifference returns mean minus median of the ticket prices.
func PriceDifference(tickets []ticket.Ticket) (decimal.Decimal, error) {
	prices := Prices(tickets)

	mean, err := Mean(prices)
	if err != nil {
		return decimal.Decimal{}, err
	}

	median, err := Median(prices)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return mean.Sub(median), nil
}
