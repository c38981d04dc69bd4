package audit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Trail is the best-effort write surface handed to the other domains.
// Append never returns an error: persistence failures increment an
// internal counter and log, so audit can never abort or roll back the
// operation it accompanies.
type Trail struct {
	sys      System
	logger   *slog.Logger
	failures atomic.Uint64
}

// NewTrail wraps an audit System in the best-effort append contract.
func NewTrail(sys System, logger *slog.Logger) *Trail {
	return &Trail{
		sys:    sys,
		logger: logger.With("system", "audit"),
	}
}

// Append records an audit entry, swallowing any persistence failure.
func (t *Trail) Append(ctx context.Context, e Entry) {
	if _, err := t.sys.Record(ctx, e); err != nil {
		t.failures.Add(1)
		t.logger.Error(
			"audit append failed",
			"action", e.Action,
			"actor", e.ActorID,
			"error", err,
		)
	}
}

// Failures returns the number of swallowed append failures since startup.
func (t *Trail) Failures() uint64 {
	return t.failures.Load()
}
