package transport

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"
)

// Query values that must never reach log output.
var redactPattern = regexp.MustCompile(`(access_token|client_secret)=[^&]*`)

// RedactURL replaces credential-bearing query values in a URL with a
// placeholder so the result is safe to log.
func RedactURL(fullURL string) string {
	return redactPattern.ReplaceAllString(fullURL, "$1=REDACTED")
}

// LoggingClient decorates an HTTPClient with structured request logging.
// The wrapped client is untouched; URLs are redacted before logging.
type LoggingClient struct {
	inner HTTPClient
	log   *zap.Logger
}

// NewLoggingClient wraps client so that every request is logged to logger.
func NewLoggingClient(client HTTPClient, logger *zap.Logger) *LoggingClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingClient{inner: client, log: logger}
}

// Do executes the request on the wrapped client and logs the outcome.
func (l *LoggingClient) Do(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Do(ctx, req)
	if err != nil {
		l.log.Error("request failed",
			zap.String("method", req.Method),
			zap.String("url", RedactURL(req.FullURL)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}
	l.log.Debug("request complete",
		zap.String("method", req.Method),
		zap.String("url", RedactURL(req.FullURL)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
