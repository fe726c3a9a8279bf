package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Message prefixes for normalized failures
const (
	NetworkErrorPrefix = "Network error: "
	InvalidJSONPrefix  = "Invalid JSON response: "
)

// HTTPDoer is the subset of *http.Client used by FetchJSON
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetchJSON performs req and decodes a 2xx JSON body into T.
//
// Non-2xx responses fail with the body text (or "HTTP <status>" when the body
// is unreadable or empty). A 2xx body that is not JSON fails with the raw text
// prefixed by InvalidJSONPrefix. Transport failures are prefixed by
// NetworkErrorPrefix. Every failure is an *Error.
func FetchJSON[T any](client HTTPDoer, req *http.Request) (T, error) {
	var out T

	resp, err := client.Do(req)
	if err != nil {
		return out, &Error{
			Kind:    KindTransport,
			Message: NetworkErrorPrefix + err.Error(),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text := string(body)
		if readErr != nil || strings.TrimSpace(text) == "" {
			text = statusLine(resp)
		}
		return out, &Error{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Message:    text,
			Err:        readErr,
		}
	}

	if readErr != nil {
		return out, &Error{
			Kind:       KindTransport,
			StatusCode: resp.StatusCode,
			Message:    NetworkErrorPrefix + readErr.Error(),
			Err:        readErr,
		}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, &Error{
			Kind:       KindInvalidJSON,
			StatusCode: resp.StatusCode,
			Message:    InvalidJSONPrefix + string(body),
			Err:        err,
		}
	}

	return out, nil
}

// statusLine formats "HTTP 502 Bad Gateway"
func statusLine(resp *http.Response) string {
	if resp.Status != "" {
		return fmt.Sprintf("HTTP %s", resp.Status)
	}
	return fmt.Sprintf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
