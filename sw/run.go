package sw

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used by Run. A nil logger restores
// slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Run aligns query against target with e and records the call: one span
// named "swalign.Align", the swalign_* Prometheus metrics and a log line.
// ctx only carries the trace; the alignment itself cannot be cancelled.
func Run(ctx context.Context, e Engine, query, target []byte, scores Scores) (Result, error) {
	name := e.Name()
	ctx, span := otel.Tracer("github.com/mhr3/swalign/sw").Start(ctx, "swalign.Align",
		trace.WithAttributes(
			attribute.String("swalign.engine", name),
			attribute.Int("swalign.query_len", len(query)),
			attribute.Int("swalign.target_len", len(target)),
		))
	defer span.End()

	start := time.Now()
	res, err := e.Align(query, target, scores)
	elapsed := time.Since(start)
	observe(name, len(query), len(target), elapsed, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, kindLabel(err))
		logger().WarnContext(ctx, "alignment failed",
			"engine", name,
			"query_len", len(query),
			"target_len", len(target),
			"err", err)
		return Result{}, err
	}

	span.SetAttributes(attribute.Int("swalign.score", res.Score))
	span.SetStatus(codes.Ok, "")
	logger().DebugContext(ctx, "alignment done",
		"engine", name,
		"query_len", len(query),
		"target_len", len(target),
		"score", res.Score,
		"elapsed", elapsed)
	return res, nil
}
