package xlog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/kv"
	"github.com/benz9527/xcontainer/lib/list"
	"github.com/benz9527/xcontainer/lib/set"
)

type syncBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) lines(t *testing.T) []map[string]any {
	t.Helper()
	res := make([]map[string]any, 0, 8)
	scanner := bufio.NewScanner(strings.NewReader(b.String()))
	for scanner.Scan() {
		line := map[string]any{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		res = append(res, line)
	}
	return res
}

func findByMsg(lines []map[string]any, msg string) map[string]any {
	for _, line := range lines {
		if line["msg"] == msg {
			return line
		}
	}
	return nil
}

func newTestXLogger(t *testing.T, opts ...XLoggerOption) (XLogger, *syncBuffer) {
	t.Helper()
	buf := &syncBuffer{}
	setTestMemWriter(buf)
	opts = append([]XLoggerOption{
		WithXLoggerWriter(testMemAsOut),
		WithXLoggerEncoder(JSON),
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerTimeEncoder(zapcore.ISO8601TimeEncoder),
		WithXLoggerLevelEncoder(zapcore.CapitalLevelEncoder),
	}, opts...)
	return NewXLogger(opts...), buf
}

func TestXLogger_ContainerComponents(t *testing.T) {
	xl, buf := newTestXLogger(t)

	m := kv.NewMap[int, string](kv.WithMapLogger[int, string](xl.Component("map")))
	m.InsertKV(1, "a")
	m.InsertKV(2, "b")
	_, err := m.At(3)
	require.ErrorIs(t, err, kv.ErrMapKeyNotFound)
	xl.ErrorStack(err, "map lookup failed")
	m.Clear()

	s := set.New[string](set.WithSetLogger[string](xl.Component("set")))
	s.InsertMany("x", "y")
	s.Clear()

	l := list.NewOrdered[int](list.WithListLogger[int](xl.Component("list")))
	l.InsertManyBack(3, 1, 2)
	l.Sort()
	l.Clear()
	require.NoError(t, xl.Sync())

	lines := buf.lines(t)
	missing := findByMsg(lines, "[map] access a missing key")
	require.NotNil(t, missing)
	require.Equal(t, "map", missing["component"])
	require.Equal(t, "DEBUG", missing["lvl"])
	require.EqualValues(t, 3, missing["key"])
	require.NotContains(t, missing, "callAt")

	failed := findByMsg(lines, "map lookup failed")
	require.NotNil(t, failed)
	require.Equal(t, "[map] key not found", failed["error"])
	require.NotEmpty(t, failed["errorStack"])
	require.Contains(t, failed, "callAt")

	cleared := make([]string, 0, 2)
	for _, line := range lines {
		if line["msg"] == "[bst] cleared" {
			cleared = append(cleared, line["component"].(string))
		}
	}
	require.Equal(t, []string{"map", "set"}, cleared)
	require.NotNil(t, findByMsg(lines, "[list] cleared"))
}

func TestXLogger_LevelChange(t *testing.T) {
	xl, buf := newTestXLogger(t)
	component := xl.Component("tree")
	require.Equal(t, "debug", xl.Level())

	xl.IncreaseLogLevel(zapcore.WarnLevel)
	require.Equal(t, "warn", xl.Level())
	xl.Debug("hidden")
	xl.Info("hidden")
	component.Debug("hidden")
	xl.Warn("shown")

	xl.IncreaseLogLevel(zapcore.DebugLevel)
	component.Debug("shown")
	require.NoError(t, xl.Sync())

	lines := buf.lines(t)
	require.Len(t, lines, 2)
	require.Nil(t, findByMsg(lines, "hidden"))
}

func TestXLogger_LevelFromEnv(t *testing.T) {
	t.Setenv("XLOG_LVL", "error")
	buf := &syncBuffer{}
	setTestMemWriter(buf)
	xl := NewXLogger(WithXLoggerWriter(testMemAsOut))
	require.Equal(t, "error", xl.Level())

	require.Equal(t, zapcore.DebugLevel, getLogLevelOrDefault(" "))
	require.Equal(t, zapcore.InfoLevel, getLogLevelOrDefault("info"))
	require.Equal(t, zapcore.WarnLevel, getLogLevelOrDefault("WARN"))
	require.Equal(t, zapcore.DebugLevel, getLogLevelOrDefault("verbose"))
}

func TestXLogger_ContextFields(t *testing.T) {
	xl, buf := newTestXLogger(t,
		WithXLoggerContextFieldExtract("traceId"),
		WithXLoggerContextFieldExtract("container", "ctr"),
		WithXLoggerContextFieldExtract("optional", ContextKeyMapToOmitempty),
		WithXLoggerContextFieldExtract(""),
	)

	ctx := context.WithValue(context.Background(), ContextKey("traceId"), "abc")
	xl.InfoContext(ctx, "with context")
	ctx = context.WithValue(ctx, ContextKey("optional"), 7)
	xl.WarnContext(ctx, "with optional", zap.Int("n", 1))
	xl.ErrorStackContext(ctx, infra.NewErrorStack("boom"), "with stack")
	xl.ErrorContext(ctx, errors.New("plain"), "with error")
	xl.DebugContext(nil, "nil context") //nolint:staticcheck
	require.NoError(t, xl.Sync())

	lines := buf.lines(t)
	first := findByMsg(lines, "with context")
	require.Equal(t, "abc", first["traceId"])
	require.Equal(t, "nil", first["ctr"])
	require.NotContains(t, first, "optional")

	second := findByMsg(lines, "with optional")
	require.EqualValues(t, 7, second["optional"])
	require.EqualValues(t, 1, second["n"])

	stack := findByMsg(lines, "with stack")
	require.Equal(t, "boom", stack["error"])
	require.NotEmpty(t, stack["errorStack"])
	require.Equal(t, "plain", findByMsg(lines, "with error")["error"])
	require.NotContains(t, findByMsg(lines, "nil context"), "traceId")
}

func TestXLogger_FormatAndErrors(t *testing.T) {
	xl, buf := newTestXLogger(t)
	xl.Logf(zapcore.InfoLevel, "inserted %d keys", 3)
	xl.ErrorStackf(infra.WrapErrorStack(errors.New("wrapped")), "failed after %d tries", 2)
	xl.ErrorStackf(errors.New("no stack"), "plain failure")
	xl.Error(errors.New("bad"), "error")
	require.NoError(t, xl.Sync())

	lines := buf.lines(t)
	require.NotNil(t, findByMsg(lines, "inserted 3 keys"))
	require.NotEmpty(t, findByMsg(lines, "failed after 2 tries")["errorStack"])
	plain := findByMsg(lines, "plain failure")
	require.Equal(t, "no stack", plain["error"])
	require.NotContains(t, plain, "errorStack")
	require.Equal(t, "bad", findByMsg(lines, "error")["error"])

	require.Panics(t, func() { NewXLogger(WithXLoggerEncoder(_encMax)) })
	require.Panics(t, func() { NewXLogger(WithXLoggerWriter(_writerMax)) })
}
