package client

import (
	"context"
	"errors"
	"io"
	"iter"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const streamBufferSize = 4 << 10

// Stream POSTs body to endpoint and yields the response text as it arrives.
//
// Nothing happens until the first pull. Opening the connection is retried
// under the client policy; once the body is open nothing is. A failure is
// yielded once as ("", err) and ends the sequence. The sequence can only be
// ranged over once.
func (c *Client) Stream(ctx context.Context, endpoint string, body any, operation string) iter.Seq2[string, error] {
	if operation == "" {
		operation = "stream"
	}

	var used atomic.Bool
	return func(yield func(string, error) bool) {
		if !used.CompareAndSwap(false, true) {
			yield("", apierr.New(apierr.KindUnexpected, "stream already consumed"))
			return
		}

		ctx, cancel := context.WithTimeout(ctx, c.streamTimeout)
		defer cancel()

		opts := RequestOptions{Method: http.MethodPost, Operation: operation}
		start := time.Now()
		requestID := uuid.NewString()

		resp, err := WithRetry(ctx, c.retryPolicy(operation), func(ctx context.Context) (*http.Response, error) {
			return c.openStream(ctx, endpoint, body, requestID)
		})
		if err != nil {
			c.observe(ctx, opts, endpoint, requestID, apierrStatus(err), time.Since(start), err)
			yield("", err)
			return
		}
		c.observe(ctx, opts, endpoint, requestID, resp.StatusCode, time.Since(start), nil)

		var total int
		for chunk, err := range decodeStream(resp.Body, streamBufferSize) {
			if err != nil {
				domain.LoggerFromContext(ctx).WarnContext(ctx, "promptly stream interrupted",
					"operation", operation,
					"request_id", requestID,
					"bytes", total,
					"error", err,
				)
				yield("", err)
				return
			}
			total += len(chunk)
			if !yield(chunk, nil) {
				return
			}
		}

		domain.LoggerFromContext(ctx).DebugContext(ctx, "promptly stream finished",
			"operation", operation,
			"request_id", requestID,
			"bytes", total,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (c *Client) openStream(ctx context.Context, endpoint string, body any, requestID string) (*http.Response, error) {
	if err := c.waitForLimiter(ctx); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, body, map[string]string{
		"Accept": "text/plain, application/json",
	}, requestID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer func() { _ = resp.Body.Close() }()
		return nil, c.errorFromResponse(resp)
	}

	return resp, nil
}

// decodeStream yields body in reads of at most size bytes. The UTF-8 decoder
// holds back a rune split across reads until the rest arrives. body is closed
// exactly once, however the sequence ends.
func decodeStream(body io.ReadCloser, size int) iter.Seq2[string, error] {
	var used atomic.Bool
	return func(yield func(string, error) bool) {
		if !used.CompareAndSwap(false, true) {
			yield("", apierr.New(apierr.KindUnexpected, "stream already consumed"))
			return
		}
		defer func() { _ = body.Close() }()

		dec := unicode.UTF8.NewDecoder()
		buf := make([]byte, size)
		var pending []byte
		for {
			n, err := body.Read(buf)
			pending = append(pending, buf[:n]...)
			eof := errors.Is(err, io.EOF)

			if len(pending) > 0 {
				// Invalid bytes expand to U+FFFD.
				out := make([]byte, 3*len(pending))
				nDst, nSrc, terr := dec.Transform(out, pending, eof)
				if terr != nil && !errors.Is(terr, transform.ErrShortSrc) {
					yield("", apierr.Wrap(apierr.KindUnexpected, "decoding stream", terr))
					return
				}
				pending = append(pending[:0], pending[nSrc:]...)
				if nDst > 0 && !yield(string(out[:nDst]), nil) {
					return
				}
			}

			if eof {
				return
			}
			if err != nil {
				yield("", classifyTransportError(err))
				return
			}
		}
	}
}

func apierrStatus(err error) int {
	if e, ok := apierr.As(err); ok {
		return e.Status
	}
	return 0
}
