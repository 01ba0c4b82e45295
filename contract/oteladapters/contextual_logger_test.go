package oteladapters_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paperledger/commercial-paper-go/contract/oteladapters"
)

// recordingHandler captures slog records for assertions.
type recordingHandler struct {
	records *[]slog.Record
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h recordingHandler) Handle(_ context.Context, record slog.Record) error {
	*h.records = append(*h.records, record)
	return nil
}

func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h recordingHandler) WithGroup(string) slog.Handler { return h }

func Test_SlogBridgeLogger_WithHandler_LogsAllLevels(t *testing.T) {
	var records []slog.Record
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(recordingHandler{records: &records})
	ctx := context.Background()

	logger.DebugContext(ctx, "transaction accepted", "command", "Issue")
	logger.InfoContext(ctx, "transaction rejected", "command", "Move")
	logger.WarnContext(ctx, "slow verification")
	logger.ErrorContext(ctx, "lookup failed")

	assert.Len(t, records, 4)
	assert.Equal(t, "transaction accepted", records[0].Message)
	assert.Equal(t, slog.LevelDebug, records[0].Level)
	assert.Equal(t, "transaction rejected", records[1].Message)
	assert.Equal(t, slog.LevelInfo, records[1].Level)
	assert.Equal(t, slog.LevelWarn, records[2].Level)
	assert.Equal(t, slog.LevelError, records[3].Level)
}
