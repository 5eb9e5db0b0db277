package api

import (
	"context"
	"encoding/json"
	"github.com/pkg/errors"
	"net/http"
)

// QuickCheckResult is the backend's answer to an ad-hoc scrape of an
// arbitrary URL, without saving anything.
type QuickCheckResult struct {
	URL     string   `json:"url"`
	Price   *float64 `json:"price"`
	Success bool     `json:"success"`
	Error   string   `json:"error"`
}

// TriggerCheckAll asks the backend to scrape every tracked product.
// Fire-and-forget, same as TriggerPriceCheck.
func (c Client) TriggerCheckAll(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/scraping/check-all", nil, nil)
}

// CheckURL scrapes url once and reports the price found. A scrape the
// backend could not complete comes back as Success=false with the backend's
// reason in Error, not as a Go error; those are reserved for transport and
// protocol failures.
func (c Client) CheckURL(ctx context.Context, url string) (QuickCheckResult, error) {
	type request struct {
		URL string `json:"url"`
	}
	var r QuickCheckResult
	err := c.do(ctx, http.MethodPost, "/scraping/check-price", request{URL: url}, &r)
	if err != nil {
		// The backend reports an unscrapeable URL as a 400 whose body is
		// still the result JSON.
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusBadRequest {
			if jsonErr := json.Unmarshal([]byte(statusErr.Body), &r); jsonErr == nil && r.Error != "" {
				return r, nil
			}
		}
		return r, err
	}
	return r, nil
}
