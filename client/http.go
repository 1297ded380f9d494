package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/taskmaster/taskmaster/api/transport"
	"github.com/taskmaster/taskmaster/domain"
)

// call performs one request/response round trip against the remote store and
// decodes the envelope into out (when non-nil). authed requests carry the
// current access token and fail fast without a session. A ctx deadline
// shorter than the configured request timeout wins.
func (c *Client) call(ctx context.Context, method, path string, payload interface{}, out interface{}, authed bool) error {
	timeout, err := callTimeout(ctx, c.cfg.RequestTimeout)
	if err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.cfg.BaseURL + path)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("X-API-Key", c.cfg.APIKey)
	}

	if authed {
		session := c.CurrentSession()
		if session == nil {
			return domain.ErrNoSession
		}
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		req.SetBody(body)
	}

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	return decodeEnvelope(resp.StatusCode(), resp.Body(), out)
}

// callTimeout resolves the per-request timeout from the context deadline and
// the configured fallback. Mid-flight cancellation is not propagated; the
// deadline only bounds how long the transport may block.
func callTimeout(ctx context.Context, fallback time.Duration) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	timeout := fallback
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return 0, context.DeadlineExceeded
	}
	return timeout, nil
}

func decodeEnvelope(statusCode int, body []byte, out interface{}) error {
	var env transport.Envelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil {
			return statusError(statusCode)
		}
	}

	if env.IsError() {
		return remoteError(env)
	}
	if statusCode >= http.StatusBadRequest {
		return statusError(statusCode)
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// remoteError converts the envelope's code back into the domain taxonomy so
// callers can branch the same way on local and remote failures.
func remoteError(env transport.Envelope) error {
	code := domain.ErrorCode(env.Code)
	switch code {
	case domain.ErrCodeAuth, domain.ErrCodeValidation, domain.ErrCodeNotFound,
		domain.ErrCodeUnauthorized, domain.ErrCodeInvalid:
		return domain.NewError(code, env.Error)
	default:
		return domain.NewError(domain.ErrCodeInternal, env.Error)
	}
}

func statusError(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrTaskNotFound
	default:
		return domain.NewError(domain.ErrCodeInternal, fmt.Sprintf("unexpected status %d", statusCode))
	}
}

// classify keeps recognizable domain errors intact and files everything else
// under the given fallback code.
func classify(err error, fallback domain.ErrorCode) error {
	if err == nil {
		return nil
	}
	for _, code := range []domain.ErrorCode{
		domain.ErrCodeValidation,
		domain.ErrCodeAuth,
		domain.ErrCodeNotFound,
		domain.ErrCodeUnauthorized,
		domain.ErrCodeInvalid,
	} {
		if domain.IsDomainError(err, code) {
			return err
		}
	}
	return domain.WrapError(fallback, "remote store call failed", err)
}
