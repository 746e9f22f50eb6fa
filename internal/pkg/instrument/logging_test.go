package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	buf.Reset()
	return line
}

func TestNewLogger_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		ServiceName: "secureprop",
		MaskFields:  []string{"Password", " password_digest ", ""},
		Writer:      &buf,
	})

	logger.Info("account registered",
		"password", "mUc3m00RsqyRe",
		"email", "david@example.com",
		slog.Group("account", slog.String("password_digest", "$2a$10$abc")),
		"body", `{"email":"x","password":"secret"}`,
		"fields", map[string]string{"password": "p", "other": "o"},
	)

	line := decodeLine(t, &buf)
	assert.Equal(t, "***", line["password"])
	assert.Equal(t, "david@example.com", line["email"])
	assert.Equal(t, map[string]any{"password_digest": "***"}, line["account"])
	assert.JSONEq(t, `{"email":"x","password":"***"}`, line["body"].(string))
	assert.Equal(t, map[string]any{"password": "***", "other": "o"}, line["fields"])
	assert.Equal(t, "secureprop", line["service"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Contains(t, line, "ts")
}

func TestNewLogger_WithAttrsMasked(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{MaskFields: []string{"password"}, Writer: &buf})

	logger.With("password", "leak").Info("hello")

	line := decodeLine(t, &buf)
	assert.Equal(t, "***", line["password"])
	assert.NotContains(t, line, "service")
}

func TestNewLogger_CorrelationIDAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn", Writer: &buf})

	ctx := SetCorrelationID(context.Background(), "cid-1")
	logger.InfoContext(ctx, "dropped")
	assert.Zero(t, buf.Len())

	logger.WarnContext(ctx, "kept")
	line := decodeLine(t, &buf)
	assert.Equal(t, "cid-1", line["_cID"])
	assert.Equal(t, "WARN", line["severity"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLevel("nope"))
}

func TestCorrelationID(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
	//nolint:staticcheck // nil context is handled on purpose
	assert.Equal(t, "", GetCorrelationID(nil))
	assert.Equal(t, "x", GetCorrelationID(SetCorrelationID(context.Background(), "x")))
}

func TestNew_Disabled(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	ins, err := New(context.Background(), &Config{ServiceName: "test"})
	require.NoError(t, err)

	assert.NotNil(t, ins.Tracer("t"))
	assert.NotNil(t, ins.Meter("m"))
	assert.NoError(t, ins.Shutdown(context.Background()))
}
