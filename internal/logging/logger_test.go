package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/pix-donation-gateway/internal/logging"
)

func TestJSONLogger_WritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONLogger(&buf)

	logger.Info("transaction created", map[string]any{"transaction_id": "tx_1"})
	logger.Error("provider rejected transaction", map[string]any{"status": 502})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	first := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "INFO", first["level"])
	require.Equal(t, "transaction created", first["msg"])
	require.Equal(t, "tx_1", first["transaction_id"])
	require.NotEmpty(t, first["time"])

	second := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, "ERROR", second["level"])
	require.EqualValues(t, 502, second["status"])
}

func TestJSONLogger_FieldsDoNotLeakBetweenCalls(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONLogger(&buf)

	fields := map[string]any{"request_id": "abc"}
	logger.Info("first", fields)
	logger.Info("second", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.NotContains(t, lines[1], "request_id")
	require.Len(t, fields, 1)
}

func TestFields_AddsRequestIDFromContext(t *testing.T) {
	ctx := logging.WithRequestID(context.Background(), "req-42")

	f := logging.Fields(ctx, map[string]any{"status": 200})
	require.Equal(t, "req-42", f["request_id"])
	require.Equal(t, 200, f["status"])

	require.NotContains(t, logging.Fields(context.Background(), nil), "request_id")
}
