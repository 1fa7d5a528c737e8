package weather

// The types in this file mirror the OpenWeatherMap JSON responses. Only the
// fields the normalizers read are declared; everything is optional on the wire.

// ConditionPayload is one entry of the provider's "weather" array.
type ConditionPayload struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentPayload is the /data/2.5/weather response.
type CurrentPayload struct {
	Name  string `json:"name"`
	State string `json:"state"`
	Sys   struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Visibility float64            `json:"visibility"`
	Wind       *WindPayload       `json:"wind"`
	Weather    []ConditionPayload `json:"weather"`
}

// WindPayload is the provider's wind block, in m/s and degrees.
type WindPayload struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// ForecastEntry is one element of the /data/2.5/forecast "list".
type ForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp    float64 `json:"temp"`
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []ConditionPayload `json:"weather"`
	Pop     float64            `json:"pop"`
}

// ForecastPayload is the /data/2.5/forecast response.
type ForecastPayload struct {
	List []ForecastEntry `json:"list"`
}

// AirPollutionPayload is the /data/2.5/air_pollution response.
type AirPollutionPayload struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
			O3   float64 `json:"o3"`
			NO2  float64 `json:"no2"`
			SO2  float64 `json:"so2"`
			CO   float64 `json:"co"`
		} `json:"components"`
	} `json:"list"`
}

// GeocodingPayload is one element of the /geo/1.0/direct response array.
type GeocodingPayload struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// firstCondition returns the leading "weather" entry, or a zero value when
// the provider sent none.
func firstCondition(items []ConditionPayload) ConditionPayload {
	if len(items) == 0 {
		return ConditionPayload{}
	}
	return items[0]
}
