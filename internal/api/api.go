package api

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/pkg/errors"
	"io"
	"net/http"
	"pricewatch/internal/misc"
	"strings"
)

// ErrUnreachable marks transport-level failures: the request never produced
// an HTTP response. Distinct from StatusError so callers can tell "server
// said no" apart from "server never answered".
var ErrUnreachable = errors.New("price tracker API unreachable")

// Client issues requests against the price tracker backend REST API.
// BaseURL includes the /api prefix. Timeouts come from the embedded
// http.Client; there are no retries.
type Client struct {
	*http.Client
	BaseURL string
	Logger  logger
}

type logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// StatusError is a non-2xx response. Error surfaces the response body
// verbatim when the backend sent one, else a generic line with the status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return "request failed with status " + e.Status
}

// Message extracts a user-facing message from err: the backend's own words
// for a StatusError with a body, the fallback for everything else.
func Message(err error, fallback string) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Body != "" {
		return statusErr.Body
	}
	return fallback
}

func newRequest(ctx context.Context, method string, url string, body io.Reader) (*http.Request, error) {
	r, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Accept", "application/json")
	return r, nil
}

// do runs one request against the backend and decodes a JSON response into
// out when out is non-nil. reqBody is JSON-marshalled when non-nil.
func (c Client) do(ctx context.Context, method string, path string, reqBody any, out any) error {
	var bodyRdr io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return errors.Wrapf(err, "error marshalling request body for %s %s", method, path)
		}
		bodyRdr = bytes.NewReader(b)
	}

	req, err := newRequest(ctx, method, c.BaseURL+path, bodyRdr)
	if err != nil {
		return errors.Wrapf(err, "error creating request for %s %s", method, path)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return errors.Wrapf(ErrUnreachable, "error doing request %s %s, err: %v", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.Logger.Errorf("do: Error closing response body, req: %s %s, err: %v", method, path, err)
		}
	}()

	respBody, err := io.ReadAll(http.MaxBytesReader(nil, resp.Body, 1024*1024))
	if err != nil {
		return errors.Wrapf(err, "error reading response body, status: %s, req: %s %s", resp.Status, method, path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body := strings.TrimSpace(string(respBody))
		c.Logger.Debugf("do: Backend returned error status for %s %s, status: %s, body:\n%s",
			method, path, resp.Status, misc.StringLimit(body, 500))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	if out != nil {
		if err = json.Unmarshal(respBody, out); err != nil {
			return errors.Wrapf(err, "error unmarshalling response body, status: %s, req: %s %s, body:\n%s",
				resp.Status, method, path, misc.BytesLimit(respBody, 500))
		}
	}
	return nil
}
