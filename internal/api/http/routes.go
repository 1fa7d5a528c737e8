package httpapi

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/units"
	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = validator.New()

const msgNotConfigured = "OpenWeatherMap API key not configured"

// RegisterRoutes wires the weather handlers into the Fiber app. Routes are
// served under both /weather and /api/weather.
//
// Path parameters are validated before the provider is touched: malformed or
// out-of-range input is a 400 even when the credential is missing or the
// provider is down. Only requests that pass validation can produce the 500s.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	for _, prefix := range []string{"/weather", "/api/weather"} {
		g := app.Group(prefix)

		g.Get("/current/:lat/:lon", func(c *fiber.Ctx) error {
			coords, unit, err := parseCoordinatesAndUnit(c)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			current, err := service.Current(c.UserContext(), coords.Lat, coords.Lon)
			if err != nil {
				return failure(err, "Failed to fetch current weather data")
			}
			return c.JSON(convertCurrent(current, unit))
		})

		g.Get("/forecast/:lat/:lon", func(c *fiber.Ctx) error {
			coords, unit, err := parseCoordinatesAndUnit(c)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			forecast, err := service.Forecast(c.UserContext(), coords.Lat, coords.Lon)
			if err != nil {
				return failure(err, "Failed to fetch forecast data")
			}
			return c.JSON(convertForecast(forecast, unit))
		})

		g.Get("/air-quality/:lat/:lon", func(c *fiber.Ctx) error {
			coords, err := parseCoordinates(c)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			aq, err := service.AirQuality(c.UserContext(), coords.Lat, coords.Lon)
			if err != nil {
				return failure(err, "Failed to fetch air quality data")
			}
			return c.JSON(aq)
		})

		g.Get("/search/:query", func(c *fiber.Ctx) error {
			q, err := parseSearch(c)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			results, err := service.Search(c.UserContext(), q.Query)
			if err != nil {
				return failure(err, "Failed to search locations")
			}
			return c.JSON(results)
		})
	}
}

// RegisterOpsRoutes adds the health and Prometheus endpoints.
func RegisterOpsRoutes(app *fiber.App, serviceName string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": serviceName,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}

// ErrorHandler renders every error as {"message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// failure collapses every service error into a 500; callers are not told
// which of credential, transport or upstream status went wrong.
func failure(err error, msg string) error {
	if weather.IsConfigurationError(err) {
		return fiber.NewError(fiber.StatusInternalServerError, msgNotConfigured)
	}
	return fiber.NewError(fiber.StatusInternalServerError, msg)
}

// coordinatesParams holds the lat/lon path segments.
type coordinatesParams struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func parseCoordinates(c *fiber.Ctx) (coordinatesParams, error) {
	var p coordinatesParams

	lat, err := strconv.ParseFloat(c.Params("lat"), 64)
	if err != nil {
		return p, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(c.Params("lon"), 64)
	if err != nil {
		return p, errors.New("lon must be a number")
	}
	p.Lat, p.Lon = lat, lon

	if err := validate.Struct(p); err != nil {
		return p, errors.New("lat must be within [-90, 90] and lon within [-180, 180]")
	}
	return p, nil
}

func parseCoordinatesAndUnit(c *fiber.Ctx) (coordinatesParams, units.Unit, error) {
	coords, err := parseCoordinates(c)
	if err != nil {
		return coords, "", err
	}
	unit, err := units.Parse(c.Query("unit"))
	if err != nil {
		return coords, "", err
	}
	return coords, unit, nil
}

// searchParams holds the free-text place name. The 200-character cap is a
// local limit; the provider documents none.
type searchParams struct {
	Query string `validate:"required,max=200"`
}

func parseSearch(c *fiber.Ctx) (searchParams, error) {
	var p searchParams

	raw, err := url.PathUnescape(c.Params("query"))
	if err != nil {
		return p, errors.New("query is not valid percent-encoding")
	}
	p.Query = strings.TrimSpace(raw)

	if err := validate.Struct(p); err != nil {
		return p, errors.New("query must be between 1 and 200 characters")
	}
	return p, nil
}

func convertCurrent(cur weather.CurrentConditions, u units.Unit) weather.CurrentConditions {
	cur.Temperature = units.ConvertTemperature(cur.Temperature, u)
	cur.FeelsLike = units.ConvertTemperature(cur.FeelsLike, u)
	cur.DewPoint = units.ConvertTemperature(cur.DewPoint, u)
	cur.High = units.ConvertTemperature(cur.High, u)
	cur.Low = units.ConvertTemperature(cur.Low, u)
	return cur
}

func convertForecast(f weather.Forecast, u units.Unit) weather.Forecast {
	if u == units.Celsius {
		return f
	}
	out := weather.Forecast{
		Hourly: make([]weather.HourlyForecastItem, len(f.Hourly)),
		Daily:  make([]weather.DailyForecastItem, len(f.Daily)),
	}
	for i, h := range f.Hourly {
		h.Temperature = units.ConvertTemperature(h.Temperature, u)
		out.Hourly[i] = h
	}
	for i, d := range f.Daily {
		d.High = units.ConvertTemperature(d.High, u)
		d.Low = units.ConvertTemperature(d.Low, u)
		out.Daily[i] = d
	}
	return out
}
