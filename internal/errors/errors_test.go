package errors_test

import (
	"errors"
	"testing"

	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := simerr.NotFound("fight not found").WithMeta("fight_id", "fight-1")

	wrapped := simerr.Wrap(base, "failed to validate request")

	assert.Equal(t, simerr.CodeNotFound, wrapped.Code)
	assert.True(t, simerr.IsNotFound(wrapped))
	assert.Equal(t, "fight-1", simerr.GetMeta(wrapped)["fight_id"])
	assert.Equal(t, "failed to validate request: fight not found", wrapped.Error())

	// meta is copied, not shared
	wrapped.WithMeta("extra", true)
	_, leaked := base.Meta["extra"]
	assert.False(t, leaked)
}

func TestWrap_ForeignError(t *testing.T) {
	cause := errors.New("boom")

	wrapped := simerr.Wrap(cause, "redis")

	assert.Equal(t, simerr.CodeUnknown, simerr.GetCode(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, simerr.Wrap(nil, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := simerr.WrapWithCode(errors.New("bad state"), simerr.CodeInternal, "tick")

	assert.True(t, simerr.Is(wrapped, simerr.CodeInternal))
	assert.False(t, simerr.IsFailedPrecondition(wrapped))
}
