package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	gh "github.com/google/go-github/v80/github"
)

func mapStatus(code int, body string) error {
	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden, http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	default:
		return &RemoteError{StatusCode: code, Body: body}
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return mapStatus(resp.StatusCode(), body)
}

// mapGitHubError translates go-github failures. A nil response means the
// request never reached the server.
func mapGitHubError(op string, resp *gh.Response, err error) error {
	if err == nil {
		return nil
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: %s", ErrForbidden, rateErr.Message)
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %s", ErrForbidden, abuseErr.Message)
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return mapStatus(ghErr.Response.StatusCode, ghErr.Message)
	}

	if resp == nil || resp.Response == nil {
		return &NetworkError{Op: op, Err: err}
	}

	return mapStatus(resp.StatusCode, err.Error())
}
