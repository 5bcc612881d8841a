package dnsimple

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"net/http"
	"time"
)

// limiter spaces requests evenly over Per. It returns nil if t doesn't limit anything.
func (t Throttle) limiter() *rate.Limiter {
	if t.Requests < 1 || t.Per <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Every(t.Per/time.Duration(t.Requests)), 1)
}

// throttledTransport holds every request until all limiters allow it.
type throttledTransport struct {
	limiters []*rate.Limiter
	next     http.RoundTripper
}

var _ http.RoundTripper = (*throttledTransport)(nil)

func throttle(throttles []Throttle, next http.RoundTripper) http.RoundTripper {
	var limiters []*rate.Limiter
	for _, t := range throttles {
		if l := t.limiter(); l != nil {
			limiters = append(limiters, l)
		}
	}

	if len(limiters) == 0 {
		return next
	}

	return &throttledTransport{limiters, next}
}

func (tt *throttledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for _, l := range tt.limiters {
		if err := l.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	return tt.next.RoundTrip(req)
}

// loggingTransport logs every exchange at debug level, retries included.
type loggingTransport struct {
	logger *log.Entry
	next   http.RoundTripper
}

var _ http.RoundTripper = (*loggingTransport)(nil)

func (lt *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := lt.next.RoundTrip(req)

	fields := log.Fields{"method": req.Method, "url": req.URL.String(), "took": time.Since(start)}
	if err != nil {
		lt.logger.WithFields(fields).WithError(err).Debug("HTTP request failed")
		return resp, err
	}

	fields["status"] = resp.StatusCode
	if remaining := resp.Header.Get(headerRateLimitRemaining); remaining != "" {
		fields["ratelimit_remaining"] = remaining
	}

	lt.logger.WithFields(fields).Debug("performed HTTP request")
	return resp, nil
}
