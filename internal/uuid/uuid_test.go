package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/skirmish/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSequentialGenerator(t *testing.T) {
	gen := uuid.NewSequentialGenerator("actor")

	assert.Equal(t, "actor-1", gen.New())
	assert.Equal(t, "actor-2", gen.New())
	assert.Equal(t, "actor-3", gen.New())
}

func TestGoogleUUIDGenerator_Unique(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	a, b := gen.New(), gen.New()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
