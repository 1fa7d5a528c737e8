package weather

import (
	"time"

	"github.com/i474232898/weather-lookup/internal/common"
)

const (
	// HourlySteps is how many 3-hour steps make up the hourly view (~24h).
	HourlySteps = 8
	// MaxForecastDays caps the number of daily summaries.
	MaxForecastDays = 5
)

// dayBucket accumulates one calendar day. high/low stay unrounded until the
// bucket is emitted.
type dayBucket struct {
	first ForecastEntry
	high  float64
	low   float64
}

// NormalizeForecast builds the hourly and daily views from a forecast payload.
//
// Entries are grouped into days by their timestamp's calendar date in loc.
// Days are emitted in the order their first entry appears in the payload, not
// sorted by date. For each day, high/low are the extremes of temp_max/temp_min
// over all its entries; categorical fields and precipitation come from the
// first entry. A nil loc means time.Local.
func NormalizeForecast(p ForecastPayload, loc *time.Location) Forecast {
	if loc == nil {
		loc = time.Local
	}

	n := min(len(p.List), HourlySteps)
	hourly := make([]HourlyForecastItem, 0, n)
	for _, e := range p.List[:n] {
		cond := firstCondition(e.Weather)
		hourly = append(hourly, HourlyForecastItem{
			Time:          e.Dt,
			Temperature:   common.Round(e.Main.Temp),
			Condition:     cond.Main,
			Icon:          cond.Icon,
			Precipitation: precipitationPercent(e.Pop),
		})
	}

	type dayKey struct {
		year  int
		month time.Month
		day   int
	}

	var order []dayKey
	buckets := make(map[dayKey]*dayBucket)

	for _, e := range p.List {
		y, m, d := time.Unix(e.Dt, 0).In(loc).Date()
		k := dayKey{y, m, d}

		b, ok := buckets[k]
		if !ok {
			buckets[k] = &dayBucket{first: e, high: e.Main.TempMax, low: e.Main.TempMin}
			order = append(order, k)
			continue
		}
		b.high = max(b.high, e.Main.TempMax)
		b.low = min(b.low, e.Main.TempMin)
	}

	if len(order) > MaxForecastDays {
		order = order[:MaxForecastDays]
	}

	daily := make([]DailyForecastItem, 0, len(order))
	for _, k := range order {
		b := buckets[k]
		cond := firstCondition(b.first.Weather)
		daily = append(daily, DailyForecastItem{
			Date:          b.first.Dt,
			Day:           time.Unix(b.first.Dt, 0).In(loc).Format("Mon"),
			High:          common.Round(b.high),
			Low:           common.Round(b.low),
			Condition:     cond.Main,
			Description:   cond.Description,
			Icon:          cond.Icon,
			Precipitation: precipitationPercent(b.first.Pop),
		})
	}

	return Forecast{Hourly: hourly, Daily: daily}
}

// precipitationPercent turns the provider's 0..1 probability into a percentage.
func precipitationPercent(pop float64) int {
	return common.Round(pop * 100)
}
