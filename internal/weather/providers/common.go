package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/weather"
)

var errNoHTTPClient = errors.New("http client not configured")

// maxErrorBody bounds how much of a failed response is kept for logs.
const maxErrorBody = 512

// doJSON executes a single GET and decodes a 2xx body into target. There are
// no retries; every failure comes back as a *weather.UpstreamError.
func doJSON(
	ctx context.Context,
	client *http.Client,
	endpoint string,
	buildRequest func() (*http.Request, error),
	target any,
) error {
	if client == nil {
		return &weather.UpstreamError{Endpoint: endpoint, Err: errNoHTTPClient}
	}

	req, err := buildRequest()
	if err != nil {
		return &weather.UpstreamError{Endpoint: endpoint, Err: err}
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(endpoint, 0, time.Since(start).Seconds())
		return &weather.UpstreamError{Endpoint: endpoint, Err: redactTransportError(err)}
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(endpoint, resp.StatusCode, time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &weather.UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status code: %s", string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &weather.UpstreamError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

// redactTransportError masks the credential in the request URL that
// *url.Error carries, since that text reaches the logs.
func redactTransportError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL), Err: urlErr.Err}
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable url]"
	}
	q := u.Query()
	if q.Has("appid") {
		q.Set("appid", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
