package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/cipher-chat/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for a 2xx response. Otherwise it wraps the
// sentinel matching the status with the server's error text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	text := errorText(resp.Body())
	if text == "" {
		text = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, text)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, text)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, text)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, text)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, text)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), text)
	}
}

// errorText reads a JSON models.ErrorResponse, falling back to the raw
// body for anything else.
func errorText(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(body))
}
