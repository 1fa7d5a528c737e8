package weather

// Location identifies the place a CurrentConditions snapshot was taken for.
// Lat/Lon are the coordinates the caller asked for, not the provider's
// station coordinates.
type Location struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

// CurrentConditions is the normalized current weather view for a location.
//
// Temperatures are whole degrees Celsius unless converted by the caller,
// visibility is km, wind speed km/h, pressure hPa. Sunrise/Sunset are unix
// seconds; LastUpdated is unix milliseconds taken when the snapshot was built.
type CurrentConditions struct {
	Location          Location `json:"location"`
	Temperature       int      `json:"temperature"`
	FeelsLike         int      `json:"feelsLike"`
	Condition         string   `json:"condition"`
	Description       string   `json:"description"`
	Icon              string   `json:"icon"`
	Humidity          int      `json:"humidity"`
	Pressure          int      `json:"pressure"`
	Visibility        int      `json:"visibility"`
	WindSpeed         int      `json:"windSpeed"`
	WindDirection     float64  `json:"windDirection"`
	WindDirectionText string   `json:"windDirectionText"`
	// UVIndex is not fetched from the provider and is always 0.
	UVIndex     int   `json:"uvIndex"`
	DewPoint    int   `json:"dewPoint"`
	Sunrise     int64 `json:"sunrise"`
	Sunset      int64 `json:"sunset"`
	High        int   `json:"high"`
	Low         int   `json:"low"`
	LastUpdated int64 `json:"lastUpdated"`
}

// HourlyForecastItem is one 3-hour forecast step.
type HourlyForecastItem struct {
	Time          int64  `json:"time"`
	Temperature   int    `json:"temperature"`
	Condition     string `json:"condition"`
	Icon          string `json:"icon"`
	Precipitation int    `json:"precipitation"`
}

// DailyForecastItem summarizes all forecast steps that fall on one calendar day.
type DailyForecastItem struct {
	Date          int64  `json:"date"`
	Day           string `json:"day"`
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Condition     string `json:"condition"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Precipitation int    `json:"precipitation"`
}

// Forecast holds the next ~24h of steps and up to five daily summaries.
type Forecast struct {
	Hourly []HourlyForecastItem `json:"hourly"`
	Daily  []DailyForecastItem  `json:"daily"`
}

// AirQuality is the scaled AQI plus raw pollutant concentrations (μg/m³).
type AirQuality struct {
	AQI    int    `json:"aqi"`
	Status string `json:"status"`
	PM25   int    `json:"pm25"`
	PM10   int    `json:"pm10"`
	O3     int    `json:"o3"`
	NO2    int    `json:"no2"`
	SO2    int    `json:"so2"`
	CO     int    `json:"co"`
}

// GeocodingResult is one candidate returned by a location search.
type GeocodingResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}
