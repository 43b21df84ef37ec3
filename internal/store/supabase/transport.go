package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/templui/folio/internal/store"
)

// transport binds one call's context to the SDK requests and keeps the
// backend's error body, which the SDKs only report reformatted.
type transport struct {
	ctx     context.Context
	base    http.RoundTripper
	failure *store.Error
}

func newTransport(ctx context.Context) *transport {
	return &transport{ctx: ctx, base: http.DefaultTransport}
}

func (t *transport) httpClient(timeout time.Duration) http.Client {
	return http.Client{Transport: t, Timeout: timeout}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req.WithContext(t.ctx))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 300 {
		return resp, nil
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	t.failure = decodeError(resp.StatusCode, data)
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return resp, nil
}

// failed prefers the backend's own message over the SDK's wrapping of it.
func (t *transport) failed(err error) error {
	if t.failure != nil {
		return t.failure
	}
	return fmt.Errorf("request to supabase failed: %w", err)
}

// errorBody covers both PostgREST ({message, code}) and GoTrue
// ({error, error_description} or {msg, error_code}) error shapes.
type errorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	Code             any    `json:"code"`
	ErrorCode        string `json:"error_code"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func decodeError(status int, data []byte) *store.Error {
	e := &store.Error{Status: status}

	var body errorBody
	if json.Unmarshal(data, &body) != nil {
		e.Message = strings.TrimSpace(string(data))
		return e
	}

	for _, m := range []string{body.ErrorDescription, body.Msg, body.Message, body.Error} {
		if m != "" {
			e.Message = m
			break
		}
	}

	switch code := body.Code.(type) {
	case string:
		e.Code = code
	case float64:
		e.Code = fmt.Sprintf("%d", int(code))
	}
	if body.ErrorCode != "" {
		e.Code = body.ErrorCode
	}
	if e.Code == "" && body.Error != "" && body.Error != e.Message {
		e.Code = body.Error
	}

	return e
}
