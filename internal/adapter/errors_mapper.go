package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError classifies a provider answer. The body is not included in
// the error because it may echo the query.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: rate limited", ErrBreachCheckUnavailable)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: provider rejected credentials (http %d)", ErrBreachCheckUnavailable, code)
	default:
		return fmt.Errorf("%w: http %d", ErrBreachCheckUnavailable, code)
	}
}
