package errors

import (
	stderrors "errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeEquals(t *testing.T) {
	redisErr := NewErrorDetailsWithCause("Failed to read list from Redis", string(RedisLRangeError), "lrange", stderrors.New("connection refused"))

	testCases := []struct {
		name   string
		err    error
		code   ErrorCode
		expect bool
	}{
		{
			name:   "nil error",
			err:    nil,
			code:   MalformedRecordError,
			expect: false,
		},
		{
			name:   "plain error",
			err:    stderrors.New("boom"),
			code:   MalformedRecordError,
			expect: false,
		},
		{
			name:   "direct match",
			err:    NewErrorDetails("bad record", string(MalformedRecordError), "tick"),
			code:   MalformedRecordError,
			expect: true,
		},
		{
			name:   "match through cause chain",
			err:    NewErrorDetailsWithCause("Bucket read failed", string(BackendUnavailableError), "SOL-2021-6-1", redisErr),
			code:   RedisLRangeError,
			expect: true,
		},
		{
			name:   "match through tracer",
			err:    TracerFromError(redisErr),
			code:   RedisLRangeError,
			expect: true,
		},
		{
			name:   "match inside base error",
			err:    TracerFromError(NewBaseError(NewErrorDetails("symbols are empty", string(InvalidConfigError), "symbols"))),
			code:   InvalidConfigError,
			expect: true,
		},
		{
			name:   "no match",
			err:    redisErr,
			code:   RedisRPushError,
			expect: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ErrorCodeEquals(tc.err, tc.code))
		})
	}
}

func TestErrorDetails_Error(t *testing.T) {
	assert.Equal(t, "bad record", NewErrorDetails("bad record", string(MalformedRecordError), "tick").Error())

	wrapped := NewErrorDetailsWithCause("Failed to get value from Redis", string(RedisGetError), "get", stderrors.New("i/o timeout"))
	assert.Equal(t, "Failed to get value from Redis: i/o timeout", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "i/o timeout")
}

func TestBaseError(t *testing.T) {
	baseErr := NewBaseError()
	assert.False(t, baseErr.HasDetails())
	assert.False(t, baseErr.IsAllCodeEqual(string(InvalidConfigError)))

	baseErr.AddErrorDetails(
		NewErrorDetails("symbols are empty", string(InvalidConfigError), "symbols"),
		NewErrorDetailsWithObject("unknown policy", string(InvalidConfigError), "on_decode_error", "explode"),
	)

	require.True(t, baseErr.HasDetails())
	assert.Len(t, baseErr.GetDetails(), 2)
	assert.True(t, baseErr.IsAllCodeEqual(string(InvalidConfigError)))
	assert.True(t, baseErr.IsAnyCodeEqual(string(InvalidConfigError)))
	assert.False(t, baseErr.IsAnyCodeEqual(string(RedisConfigError)))
	assert.Equal(t, []string{"symbols", "on_decode_error"}, baseErr.Fields())
	assert.Contains(t, baseErr.Error(), "field: on_decode_error; object: string")
}

func TestTracerFromError(t *testing.T) {
	cause := NewErrorDetails("bad record", string(MalformedRecordError), "tick")

	tracer := TracerFromError(cause)
	assert.Equal(t, "bad record", tracer.Error())
	assert.NotNil(t, tracer.StackTrace())
	assert.Same(t, tracer, TracerFromError(tracer))

	var details *ErrorDetails
	require.True(t, stderrors.As(tracer, &details))
	assert.Equal(t, string(MalformedRecordError), details.Code)
}

func TestTracerFromError_KeepsExistingStack(t *testing.T) {
	cause := pkgerrors.New("lrange failed")

	tracer := TracerFromError(cause)
	assert.Equal(t, "lrange failed", tracer.Error())
	assert.Same(t, cause, tracer.Unwrap())
	assert.Equal(t, cause.(StackTracer).StackTrace(), tracer.StackTrace())
}
