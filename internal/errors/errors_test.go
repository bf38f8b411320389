package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/nightcaste/internal/errors"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := errors.NotFoundf("entity %d", 7).WithMeta("entity", int64(7))

	wrapped := errors.Wrap(base, "loading position")

	require.NotNil(t, wrapped)
	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.Equal(t, int64(7), wrapped.Meta["entity"])
	assert.Equal(t, "loading position: entity 7", wrapped.Error())
	assert.True(t, errors.IsNotFound(wrapped))

	// Meta is copied, not shared
	wrapped.WithMeta("extra", true)
	_, shared := base.Meta["extra"]
	assert.False(t, shared)
}

func TestWrap_PlainErrorIsUnknown(t *testing.T) {
	wrapped := errors.Wrap(stderrors.New("boom"), "round 3")

	assert.Equal(t, errors.CodeUnknown, errors.GetCode(wrapped))
	assert.Nil(t, errors.Wrap(nil, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, "nothing %d", 1))
}

func TestWrapWithCode(t *testing.T) {
	cause := stderrors.New("listener exploded")
	err := errors.WrapWithCode(cause, errors.CodeHandlerFault, "handling MoveAction")

	assert.True(t, errors.IsHandlerFault(err))
	assert.False(t, errors.IsConfiguration(err))
	assert.ErrorIs(t, err, cause)
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errors.Code
		want bool
	}{
		{name: "configuration", err: errors.Configurationf("unknown behaviour %q", "Nope"), code: errors.CodeConfiguration, want: true},
		{name: "invalid argument", err: errors.InvalidArgument("nil component"), code: errors.CodeInvalidArgument, want: true},
		{name: "internal", err: errors.Internalf("redis: %s", "down"), code: errors.CodeInternal, want: true},
		{name: "mismatch", err: errors.InvalidArgument("x"), code: errors.CodeNotFound, want: false},
		{name: "plain error", err: stderrors.New("plain"), code: errors.CodeUnknown, want: false},
		{name: "nil", err: nil, code: errors.CodeUnknown, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.code))
		})
	}
}

func TestGetMeta(t *testing.T) {
	assert.Nil(t, errors.GetMeta(stderrors.New("plain")))

	err := errors.New(errors.CodeHandlerFault, "fault").WithMeta("round", int64(2))
	assert.Equal(t, map[string]any{"round": int64(2)}, errors.GetMeta(err))
}
