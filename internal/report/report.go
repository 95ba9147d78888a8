// Package report provides implementations of domain.Reporter, the channel
// through which API and network failures reach the user.
package report

import (
	"context"

	"go.uber.org/zap"

	"holidaze/internal/domain"
)

// Nop drops every report. It is the default when nothing is wired.
type Nop struct{}

func (Nop) Report(context.Context, error) {}

// Func adapts a message callback, e.g. a toast or a stderr printer.
type Func func(message string)

// Report passes err's message to f. Nil errors are ignored.
func (f Func) Report(_ context.Context, err error) {
	if err == nil || f == nil {
		return
	}
	f(err.Error())
}

// Log writes reports to a zap logger at error level.
type Log struct {
	log *zap.Logger
}

// NewLog returns a Reporter logging to l.
func NewLog(l *zap.Logger) *Log { return &Log{log: l} }

func (r *Log) Report(_ context.Context, err error) {
	if err == nil {
		return
	}
	r.log.Error("reported error", zap.Error(err))
}

// Multi fans a report out to every reporter in order.
type Multi []domain.Reporter

func (m Multi) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	for _, r := range m {
		if r != nil {
			r.Report(ctx, err)
		}
	}
}

// OrNop returns r, or Nop when r is nil.
func OrNop(r domain.Reporter) domain.Reporter {
	if r == nil {
		return Nop{}
	}
	return r
}

var (
	_ domain.Reporter = Nop{}
	_ domain.Reporter = Func(nil)
	_ domain.Reporter = (*Log)(nil)
	_ domain.Reporter = Multi(nil)
)
