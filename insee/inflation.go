package insee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// AverageInflation returns the compound annual growth rate of the series, in
// percent, between its last observation and the observation closest to
// `years` earlier.
func (s *Series) AverageInflation(years int) (float64, error) {
	if years < 1 {
		return 0, fmt.Errorf("the period must be at least one year, got %d", years)
	}
	if len(s.Values) < 2 {
		return 0, errors.New("not enough observations to compute an inflation rate")
	}
	last := s.Values[len(s.Values)-1]
	target := last.Date.AddDate(-years, 0, 0)

	first := s.Values[0]
	if first.Date.After(target) {
		return 0, fmt.Errorf("series %s starts on %s, less than %d years before %s", s.IDBank, first.Date.Format(time.DateOnly), years, last.Date.Format(time.DateOnly))
	}
	for _, o := range s.Values {
		if o.Date.After(target) {
			break
		}
		first = o
	}
	if first.Value <= 0 {
		return 0, fmt.Errorf("invalid index value %v on %s", first.Value, first.Date.Format(time.DateOnly))
	}

	months := (last.Date.Year()-first.Date.Year())*12 + int(last.Date.Month()) - int(first.Date.Month())
	if months <= 0 {
		return 0, fmt.Errorf("observations on %s and %s are in the same month", first.Date.Format(time.DateOnly), last.Date.Format(time.DateOnly))
	}
	elapsed := float64(months) / 12
	return (math.Pow(last.Value/first.Value, 1/elapsed) - 1) * 100, nil
}

// Inflation downloads the consumer price index and returns the average annual
// inflation, in percent, over the last `years` years.
func (c *Client) Inflation(ctx context.Context, years int, now time.Time) (float64, error) {
	// one extra year of history since INSEE publishes with a delay.
	from := now.AddDate(-years-1, 0, 0)
	s, err := c.Series(ctx, CPI, from, now)
	if err != nil {
		return 0, err
	}
	return s.AverageInflation(years)
}
