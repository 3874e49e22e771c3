// Package supabase holds what the storage and identity-admin REST clients
// share: a configured resty client and the mapping of error responses to
// domain errors.
package supabase

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/medvault/medvault-backend/internal/config"
	"github.com/medvault/medvault-backend/internal/domain"
)

// NewRESTClient returns a resty client authenticated with the service-role key.
func NewRESTClient(cfg config.SupabaseConfig) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(cfg.RetryCount).
		SetAuthToken(cfg.ServiceRoleKey).
		SetHeader("apikey", cfg.ServiceRoleKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

// APIError is a non-2xx response from the REST API.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

// Unwrap maps the status to a domain sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	}
	return nil
}

// errorBody covers the shapes the storage and auth APIs use for errors.
type errorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (b errorBody) text() string {
	for _, s := range []string{b.Message, b.Msg, b.ErrorDescription, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Check converts a transport error or a non-2xx response into an error.
func Check(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	apiErr := &APIError{Op: op, Status: resp.StatusCode()}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		apiErr.Message = body.text()
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(truncate(resp.String(), 200))
	}
	return apiErr
}

// R starts a request that decodes error bodies for Check.
func R(c *resty.Client) *resty.Request {
	return c.R().SetError(&errorBody{})
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
