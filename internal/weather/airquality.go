package weather

import "github.com/i474232898/weather-lookup/internal/common"

// aqiScale stretches the provider's 1..5 index onto 20..100. This is a linear
// rescale, not the EPA AQI formula.
const aqiScale = 20

// NormalizeAirQuality converts the first air-pollution reading. An empty list
// yields zero AQI and concentrations.
func NormalizeAirQuality(p AirPollutionPayload) AirQuality {
	if len(p.List) == 0 {
		return AirQuality{Status: AQIStatus(0)}
	}

	r := p.List[0]
	aqi := r.Main.AQI * aqiScale
	c := r.Components

	return AirQuality{
		AQI:    aqi,
		Status: AQIStatus(aqi),
		PM25:   concentration(c.PM25),
		PM10:   concentration(c.PM10),
		O3:     concentration(c.O3),
		NO2:    concentration(c.NO2),
		SO2:    concentration(c.SO2),
		CO:     concentration(c.CO),
	}
}

// AQIStatus labels a scaled AQI. Each upper bound is inclusive.
func AQIStatus(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}

func concentration(v float64) int {
	if v < 0 {
		return 0
	}
	return common.Round(v)
}
