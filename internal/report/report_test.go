package report_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"holidaze/internal/report"
)

func TestFunc_ReceivesMessage(t *testing.T) {
	var got []string
	r := report.Func(func(msg string) { got = append(got, msg) })

	r.Report(context.Background(), errors.New("404: Not Found"))
	r.Report(context.Background(), nil)

	assert.Equal(t, []string{"404: Not Found"}, got)
}

func TestMulti_FansOut(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	var got string
	r := report.Multi{
		report.Func(func(msg string) { got = msg }),
		report.NewLog(zap.New(core)),
		nil,
	}

	r.Report(context.Background(), errors.New("boom"))

	assert.Equal(t, "boom", got)
	assert.Equal(t, 1, logs.Len())
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, report.Nop{}, report.OrNop(nil))
	assert.NotPanics(t, func() { report.OrNop(nil).Report(context.Background(), errors.New("x")) })
}

func TestFallback(t *testing.T) {
	cause := errors.New("409: Booking overlaps")
	err := report.Fallback("Failed to create booking. Please try again.", cause)

	assert.EqualError(t, err, "Failed to create booking. Please try again.")
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, report.Fallback("ignored", nil))
}

func TestMessage_MatchesThroughWrapping(t *testing.T) {
	const signIn = report.Message("You must sign in to book venue.")
	err := fmt.Errorf("book: %w", signIn)

	assert.ErrorIs(t, err, signIn)
	assert.NotErrorIs(t, err, report.Message("Nothing to update."))
	assert.EqualError(t, signIn, "You must sign in to book venue.")
}
