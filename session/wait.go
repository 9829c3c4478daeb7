package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/networkteam/bakery-e2e/bakery"
)

// ErrTimeout is matched by every *TimeoutError.
var ErrTimeout = errors.New("timeout")

// TimeoutError reports a wait that did not reach its condition in time.
type TimeoutError struct {
	// Op names the wait, e.g. "find clickable" or "wait for page".
	Op string
	// ID is the element identifier or page waited for.
	ID      string
	Timeout time.Duration
	// Err is the last error seen while polling, if any.
	Err error
}

func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("%s %q: timed out after %s", e.Op, e.ID, e.Timeout)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Condition is checked by Poll. A non-nil error aborts polling.
type Condition func() (bool, error)

// Poll checks cond immediately and then every interval until it holds, the
// timeout elapses or ctx is done. On timeout it returns ErrTimeout wrapped
// with the deadline.
func Poll(ctx context.Context, timeout, interval time.Duration, cond Condition) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ok, err := cond()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			// One last look, the condition may have been met while waiting.
			ok, err := cond()
			if err != nil {
				return err
			}
			if ok {
				return nil
			}
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w after %s", ErrTimeout, timeout)
			}
			return ctx.Err()
		}
	}
}

// ErrNotHeld is returned by Hold when the condition failed before the
// duration elapsed.
var ErrNotHeld = errors.New("condition did not hold")

// Hold checks cond immediately and then every interval until duration
// elapses. It returns ErrNotHeld as soon as cond reports false.
func Hold(ctx context.Context, duration, interval time.Duration, cond Condition) error {
	err := Poll(ctx, duration, interval, func() (bool, error) {
		ok, err := cond()
		if err != nil {
			return false, err
		}
		return !ok, nil
	})
	switch {
	case err == nil:
		return ErrNotHeld
	case errors.Is(err, ErrTimeout):
		return nil
	default:
		return err
	}
}

// StayOnPage checks for duration that the browser remains on page.
func (s *Session) StayOnPage(page bakery.Page, duration time.Duration) error {
	err := Hold(context.Background(), duration, s.cfg.PollInterval, func() (bool, error) {
		return s.OnPage(page), nil
	})
	if err != nil {
		return fmt.Errorf("stay on %s: %w (current URL %s)", page, err, s.page.URL())
	}
	return nil
}

// timedOut logs a wait that ran out of time so it shows up in failure reports.
func (s *Session) timedOut(err *TimeoutError) error {
	s.logger.Warn("Wait timed out",
		slog.String("op", err.Op),
		slog.String("id", err.ID),
		slog.Group("wait", slog.Duration("timeout", err.Timeout)),
		slog.Any("error", err.Err),
	)
	return err
}
