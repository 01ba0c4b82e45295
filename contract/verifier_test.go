package contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type spyLogger struct {
	debugMsgs []string
	infoMsgs  []string
}

func (l *spyLogger) Debug(msg string, _ ...any) { l.debugMsgs = append(l.debugMsgs, msg) }

func (l *spyLogger) Info(msg string, _ ...any) { l.infoMsgs = append(l.infoMsgs, msg) }

func (l *spyLogger) Warn(string, ...any) {}

func (l *spyLogger) Error(string, ...any) {}

var _ Logger = (*spyLogger)(nil)

type spyMetrics struct {
	durations map[string]int
	counters  map[string]int
	labels    map[string]string
}

func newSpyMetrics() *spyMetrics {
	return &spyMetrics{durations: map[string]int{}, counters: map[string]int{}, labels: map[string]string{}}
}

func (m *spyMetrics) RecordDuration(metric string, _ time.Duration, labels map[string]string) {
	m.durations[metric]++
	for k, v := range labels {
		m.labels[k] = v
	}
}

func (m *spyMetrics) IncrementCounter(metric string, labels map[string]string) {
	m.counters[metric]++
	for k, v := range labels {
		m.labels[k] = v
	}
}

func (m *spyMetrics) RecordValue(string, float64, map[string]string) {}

type spySpan struct{}

func (spySpan) SetStatus(string) {}

func (spySpan) AddAttribute(_, _ string) {}

type spyTracing struct {
	started  int
	finished []string
}

func (t *spyTracing) StartSpan(ctx context.Context, _ string, _ map[string]string) (context.Context, SpanContext) {
	t.started++
	return ctx, spySpan{}
}

func (t *spyTracing) FinishSpan(_ SpanContext, status string, _ map[string]string) {
	t.finished = append(t.finished, status)
}

func validIssueTransaction() LedgerTransaction {
	maturity := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	paper := fixturePaper(fixtureParty("issuer"), fixtureParty("issuer"), 100, maturity)

	return LedgerTransaction{
		Outputs: []ContractState{paper},
		Commands: []CommandData{
			{Kind: CommandIssue, Signers: []PublicKey{paper.Issuance.Party.OwningKey}},
		},
		TimeWindow: TimeWindowUntil(maturity.AddDate(0, 0, -1)),
	}
}

func Test_NewVerifier_RejectsNilCashLookup(t *testing.T) {
	_, err := NewVerifier(WithCashLookup(nil))
	assert.ErrorIs(t, err, ErrNilCashLookup)
}

func Test_Verifier_MatchesPureVerdict(t *testing.T) {
	verifier, err := NewVerifier()
	assert.NoError(t, err)

	accepted := validIssueTransaction()
	rejected := validIssueTransaction()
	rejected.TimeWindow = TimeWindow{}

	assert.NoError(t, verifier.Verify(context.Background(), accepted))
	assert.NoError(t, VerifyTransaction(accepted))

	instrumentedErr := verifier.Verify(context.Background(), rejected)
	pureErr := VerifyTransaction(rejected)

	assert.Error(t, instrumentedErr)
	assert.Error(t, pureErr)
	assert.Equal(t, pureErr.Error(), instrumentedErr.Error())
}

func Test_Verifier_RecordsObservability(t *testing.T) {
	logger := &spyLogger{}
	metrics := newSpyMetrics()
	tracing := &spyTracing{}

	verifier, err := NewVerifier(WithLogger(logger), WithMetrics(metrics), WithTracing(tracing))
	assert.NoError(t, err)

	assert.NoError(t, verifier.Verify(context.Background(), validIssueTransaction()))

	rejected := validIssueTransaction()
	rejected.TimeWindow = TimeWindow{}
	assert.Error(t, verifier.Verify(context.Background(), rejected))

	assert.Equal(t, []string{logMsgTransactionAccepted}, logger.debugMsgs)
	assert.Equal(t, []string{logMsgTransactionRejected}, logger.infoMsgs)
	assert.Equal(t, 2, metrics.durations[metricVerifyDuration])
	assert.Equal(t, 2, metrics.counters[metricVerifyTotal])
	assert.Equal(t, "Issue", metrics.labels[labelCommand])
	assert.Equal(t, 2, tracing.started)
	assert.Equal(t, []string{spanStatusOk, spanStatusError}, tracing.finished)
}

func Test_Verifier_CustomCashLookupIsUsed(t *testing.T) {
	maturity := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	paper := fixturePaper(fixtureParty("issuer"), fixtureParty("alice"), 100, maturity)

	redemption := LedgerTransaction{
		Inputs: []ContractState{paper},
		Commands: []CommandData{
			{Kind: CommandRedeem, Signers: []PublicKey{paper.Owner.OwningKey}},
		},
		TimeWindow: TimeWindowFrom(maturity),
	}

	// The transaction pays no cash, but the injected lookup claims full payment.
	fullPayment := func(_ []ContractState, _ Party) (Amount, error) {
		return paper.FaceValue, nil
	}

	verifier, err := NewVerifier(WithCashLookup(fullPayment))
	assert.NoError(t, err)

	assert.NoError(t, verifier.Verify(context.Background(), redemption))
	assert.ErrorIs(t, VerifyTransaction(redemption), ErrRedeemedAmountMismatch)
}
