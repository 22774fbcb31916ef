// Package prayerapi reads daily schedules from a running prayer-times API.
package prayerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient targets baseURL, the prayer-times collection such as
// http://localhost:8080/api/v1/prayer-times.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// ForDate fetches the schedule of date's civil day.
func (c *Client) ForDate(ctx context.Context, date time.Time) (*entity.DailySchedule, error) {
	return c.get(ctx, date.Format(time.DateOnly))
}

func (c *Client) get(ctx context.Context, path string) (*entity.DailySchedule, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("fetching %s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var apiResp ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", path, err)
	}

	return apiResp.toEntity()
}
