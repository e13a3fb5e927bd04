/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package oauth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ortuman/xoauth2/log"
	"github.com/ortuman/xoauth2/transport"
	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
)

const (
	defaultBreakerMaxFailures = 5
	defaultBreakerOpenTimeout = time.Minute
)

// CoordinatorOption configures a retry coordinator.
type CoordinatorOption func(*Coordinator)

// WithBreaker sets the number of consecutive failures after which a
// transport is skipped, and for how long.
func WithBreaker(maxFailures uint32, openTimeout time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		if maxFailures > 0 {
			c.maxFailures = maxFailures
		}
		if openTimeout > 0 {
			c.openTimeout = openTimeout
		}
	}
}

// Coordinator refreshes access tokens trying each transport in order until
// one succeeds.
type Coordinator struct {
	refresher   Refresher
	maxFailures uint32
	openTimeout time.Duration

	mu       sync.Mutex
	breakers map[transport.Kind]*gobreaker.CircuitBreaker
}

// NewCoordinator returns a new retry coordinator backed by refresher.
func NewCoordinator(refresher Refresher, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		refresher:   refresher,
		maxFailures: defaultBreakerMaxFailures,
		openTimeout: defaultBreakerOpenTimeout,
		breakers:    make(map[transport.Kind]*gobreaker.CircuitBreaker),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh obtains a new access token and stores it into creds.
//
// TransportError and EmptyTokenError move on to the next transport; once all
// of them failed the last error is returned. Any other failure, including a
// TokenRejectedError or a done context, aborts immediately.
func (c *Coordinator) Refresh(ctx context.Context, transports []*transport.Transport, creds *Credentials) (*oauth2.Token, error) {
	if len(transports) == 0 {
		return nil, ErrNoTransports
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	attemptID := uuid.New().String()

	var lastErr error
	for i, tr := range transports {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, err
		}
		tok, err := c.refreshWith(ctx, tr, creds)
		if err == nil {
			creds.SetAccessToken(tok.AccessToken)
			log.Infow("access token refreshed", "attempt_id", attemptID, "transport", tr.String())
			return tok, nil
		}
		if !isRetryable(err) || ctx.Err() != nil {
			log.Warnw("token refresh aborted", "attempt_id", attemptID, "transport", tr.String(), "err", err)
			return nil, err
		}
		lastErr = err
		if i < len(transports)-1 {
			log.Warnw("token refresh failed, trying next transport", "attempt_id", attemptID, "transport", tr.String(), "err", err)
		}
	}
	log.Errorw("token refresh failed on every transport", "attempt_id", attemptID, "err", lastErr)
	return nil, lastErr
}

func (c *Coordinator) refreshWith(ctx context.Context, tr *transport.Transport, creds *Credentials) (*oauth2.Token, error) {
	var aborted error

	res, err := c.breaker(tr.Kind()).Execute(func() (interface{}, error) {
		tok, err := c.refresher.Refresh(ctx, tr, creds)
		if err == nil && (tok == nil || len(tok.AccessToken) == 0) {
			err = &EmptyTokenError{Transport: tr.Kind()}
		}
		if err == nil {
			return tok, nil
		}
		// only failures of the network path count against transport health
		if !isRetryable(err) || ctx.Err() != nil {
			aborted = err
			return nil, nil
		}
		return nil, err
	})
	switch {
	case aborted != nil:
		return nil, aborted

	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, &TransportError{Transport: tr.Kind(), Err: err}

	case err != nil:
		return nil, err
	}
	return res.(*oauth2.Token), nil
}

func isRetryable(err error) bool {
	var te *TransportError
	var ete *EmptyTokenError
	return errors.As(err, &te) || errors.As(err, &ete)
}

func (c *Coordinator) breaker(kind transport.Kind) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()

	cb := c.breakers[kind]
	if cb != nil {
		return cb
	}
	maxFailures := c.maxFailures
	cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    kind.String(),
		Timeout: c.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Infof("%s transport breaker: %s -> %s", name, from, to)
		},
	})
	c.breakers[kind] = cb
	return cb
}
