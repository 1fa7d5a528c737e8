package weather

import (
	"time"

	"github.com/i474232898/weather-lookup/internal/common"
)

// NormalizeCurrentConditions folds a current-weather payload into a
// CurrentConditions. lat/lon are echoed into the Location as requested and now
// becomes LastUpdated. Missing blocks default to zero values.
func NormalizeCurrentConditions(p CurrentPayload, lat, lon float64, now time.Time) CurrentConditions {
	cond := firstCondition(p.Weather)

	var windSpeed, windDeg float64
	if p.Wind != nil {
		windSpeed = p.Wind.Speed
		windDeg = p.Wind.Deg
	}

	return CurrentConditions{
		Location: Location{
			Lat:     lat,
			Lon:     lon,
			Name:    p.Name,
			Country: p.Sys.Country,
			State:   p.State,
		},
		Temperature:       common.Round(p.Main.Temp),
		FeelsLike:         common.Round(p.Main.FeelsLike),
		Condition:         cond.Main,
		Description:       cond.Description,
		Icon:              cond.Icon,
		Humidity:          common.Round(p.Main.Humidity),
		Pressure:          common.Round(p.Main.Pressure),
		Visibility:        common.Round(p.Visibility / 1000),
		WindSpeed:         MetersPerSecondToKmh(windSpeed),
		WindDirection:     windDeg,
		WindDirectionText: WindDirectionText(windDeg),
		UVIndex:           0,
		DewPoint:          DewPoint(p.Main.Temp, p.Main.Humidity),
		Sunrise:           p.Sys.Sunrise,
		Sunset:            p.Sys.Sunset,
		High:              common.Round(p.Main.TempMax),
		Low:               common.Round(p.Main.TempMin),
		LastUpdated:       now.UnixMilli(),
	}
}

// DewPoint uses the rule of thumb Td ≈ T - (100 - RH)/5. It is only close
// above ~50% relative humidity; keep it, clients compare against it.
func DewPoint(tempC, humidity float64) int {
	return common.Round(tempC - (100-humidity)/5)
}
