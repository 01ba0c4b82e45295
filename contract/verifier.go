package contract

import (
	"context"
	"errors"
	"time"
)

const (
	logMsgTransactionAccepted = "transaction accepted"
	logMsgTransactionRejected = "transaction rejected"
	logAttrCommand            = "command"
	logAttrReason             = "reason"
	logAttrDurationMS         = "duration_ms"

	metricVerifyDuration = "commercialpaper.verify.duration"
	metricVerifyTotal    = "commercialpaper.verify.total"
	labelCommand         = "command"
	labelVerdict         = "verdict"
	verdictAccepted      = "accepted"
	verdictRejected      = "rejected"

	spanNameVerify    = "commercialpaper.verify"
	spanStatusOk      = "ok"
	spanStatusError   = "error"
	spanAttrCommand   = "command"
	spanAttrReason    = "reason"
	labelCommandUnset = "none"
)

// ErrNilCashLookup is returned when a nil cash lookup is supplied.
var ErrNilCashLookup = errors.New("nil cash lookup supplied")

// Verifier wraps the pure verification function with optional observability:
// logging, metrics and tracing around each run. The verdict itself is
// produced by the same deterministic core as VerifyTransaction and is never
// influenced by the instrumentation.
type Verifier struct {
	sumCash          CashLookup
	logger           Logger
	contextualLogger ContextualLogger
	metrics          MetricsCollector
	tracing          TracingCollector
}

// VerifierOption defines a functional option for configuring a Verifier.
type VerifierOption func(*Verifier) error

// WithCashLookup replaces the default SumCashReceived collaborator used to
// compute cash received during redemptions.
func WithCashLookup(lookup CashLookup) VerifierOption {
	return func(v *Verifier) error {
		if lookup == nil {
			return ErrNilCashLookup
		}

		v.sumCash = lookup

		return nil
	}
}

// WithLogger sets the logger receiving verdicts (info) and rejections (debug).
func WithLogger(logger Logger) VerifierOption {
	return func(v *Verifier) error {
		v.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger, preferred over the plain
// logger when both are configured.
func WithContextualLogger(logger ContextualLogger) VerifierOption {
	return func(v *Verifier) error {
		v.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for verification counts and durations.
func WithMetrics(collector MetricsCollector) VerifierOption {
	return func(v *Verifier) error {
		v.metrics = collector
		return nil
	}
}

// WithTracing sets the tracing collector; each Verify call becomes one span.
func WithTracing(collector TracingCollector) VerifierOption {
	return func(v *Verifier) error {
		v.tracing = collector
		return nil
	}
}

// NewVerifier creates a Verifier with optional configuration.
func NewVerifier(options ...VerifierOption) (Verifier, error) {
	v := Verifier{
		sumCash: SumCashReceived,
	}

	for _, option := range options {
		if err := option(&v); err != nil {
			return Verifier{}, err
		}
	}

	return v, nil
}

// Verify runs transition validation for the transaction and reports the
// verdict through the configured observability hooks. The context is used
// only for trace correlation; validation itself neither blocks nor cancels.
func (v Verifier) Verify(ctx context.Context, tx LedgerTransaction) error {
	commandLabel := commandLabelFor(tx)

	var span SpanContext
	if v.tracing != nil {
		ctx, span = v.tracing.StartSpan(ctx, spanNameVerify, map[string]string{spanAttrCommand: commandLabel})
	}

	start := time.Now()
	verdictErr := verifyTransaction(tx, v.sumCash)
	duration := time.Since(start)

	v.recordMetrics(ctx, commandLabel, verdictErr, duration)
	v.logVerdict(ctx, commandLabel, verdictErr, duration)
	v.finishSpan(span, verdictErr)

	return verdictErr
}

// commandLabelFor derives the metric/span label without affecting the verdict.
func commandLabelFor(tx LedgerTransaction) string {
	command, err := ExtractSingleCommand(tx.Commands)
	if err != nil {
		return labelCommandUnset
	}

	return command.Kind.String()
}

func (v Verifier) recordMetrics(ctx context.Context, commandLabel string, verdictErr error, duration time.Duration) {
	if v.metrics == nil {
		return
	}

	verdict := verdictAccepted
	if verdictErr != nil {
		verdict = verdictRejected
	}

	labels := map[string]string{labelCommand: commandLabel, labelVerdict: verdict}

	if contextual, ok := v.metrics.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metricVerifyDuration, duration, labels)
		contextual.IncrementCounterContext(ctx, metricVerifyTotal, labels)

		return
	}

	v.metrics.RecordDuration(metricVerifyDuration, duration, labels)
	v.metrics.IncrementCounter(metricVerifyTotal, labels)
}

func (v Verifier) logVerdict(ctx context.Context, commandLabel string, verdictErr error, duration time.Duration) {
	durationMS := float64(duration.Microseconds()) / 1000.0

	if verdictErr != nil {
		if v.contextualLogger != nil {
			v.contextualLogger.InfoContext(ctx, logMsgTransactionRejected,
				logAttrCommand, commandLabel, logAttrReason, verdictErr.Error(), logAttrDurationMS, durationMS)
			return
		}

		if v.logger != nil {
			v.logger.Info(logMsgTransactionRejected,
				logAttrCommand, commandLabel, logAttrReason, verdictErr.Error(), logAttrDurationMS, durationMS)
		}

		return
	}

	if v.contextualLogger != nil {
		v.contextualLogger.DebugContext(ctx, logMsgTransactionAccepted,
			logAttrCommand, commandLabel, logAttrDurationMS, durationMS)
		return
	}

	if v.logger != nil {
		v.logger.Debug(logMsgTransactionAccepted, logAttrCommand, commandLabel, logAttrDurationMS, durationMS)
	}
}

func (v Verifier) finishSpan(span SpanContext, verdictErr error) {
	if v.tracing == nil || span == nil {
		return
	}

	if verdictErr != nil {
		v.tracing.FinishSpan(span, spanStatusError, map[string]string{spanAttrReason: verdictErr.Error()})
		return
	}

	v.tracing.FinishSpan(span, spanStatusOk, nil)
}
