package infra

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC + 1)
}

func TestFrameFormat(t *testing.T) {
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{initPC, "%s", "err_stack_test.go"},
		{initPC, "%n", "init"},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.want, fmt.Sprintf(tc.format, tc.Frame))
	}

	require.True(t, strings.HasPrefix(fmt.Sprintf("%v", initPC), "err_stack_test.go:"))
	require.True(t, strings.HasPrefix(fmt.Sprintf("%+s", initPC), "github.com/benz9527/xcontainer/lib/infra.init\n\t"))
}

func TestFrameMarshalText(t *testing.T) {
	text, err := Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, []byte("unknownFrame"), text)

	text, err = initPC.MarshalText()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(text), "github.com/benz9527/xcontainer/lib/infra.init "))
	require.Contains(t, string(text), "err_stack_test.go:")
}

var errTestSentinel = errors.New("[infra] sentinel")

func TestWrapErrorStack(t *testing.T) {
	require.Nil(t, WrapErrorStack(nil))

	err := WrapErrorStack(errTestSentinel)
	require.ErrorIs(t, err, errTestSentinel)
	require.Equal(t, errTestSentinel.Error(), err.Error())

	var es ErrorStack
	require.True(t, errors.As(err, &es))
	require.NotEmpty(t, es.Frames())
	require.Equal(t, "TestWrapErrorStack", fmt.Sprintf("%n", es.Frames()[0]))

	// Wrapping twice keeps the first capture.
	require.Same(t, es, WrapErrorStack(err))

	verbose := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(verbose, errTestSentinel.Error()+"\n"))
	require.Contains(t, verbose, "err_stack_test.go")
	require.Equal(t, errTestSentinel.Error(), fmt.Sprintf("%s", err))
	require.Equal(t, `"[infra] sentinel"`, fmt.Sprintf("%q", err))
}

func TestErrorStackMarshalLogObject(t *testing.T) {
	err := NewErrorStack("[infra] broken")
	var es ErrorStack
	require.True(t, errors.As(err, &es))

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, es.MarshalLogObject(enc))
	require.Equal(t, "[infra] broken", enc.Fields["error"])
	frames, ok := enc.Fields["errorStack"].([]any)
	require.True(t, ok)
	require.Len(t, frames, len(es.Frames()))
}
