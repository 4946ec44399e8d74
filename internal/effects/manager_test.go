package effects_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/skirmish/internal/effects"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pausedTargets map[string]bool

func (p pausedTargets) IsActorPaused(actorID string) bool { return p[actorID] }

type tickCall struct {
	kind   effects.Kind
	target string
	fresh  uint32
}

type fixture struct {
	manager *effects.Manager
	paused  pausedTargets
	calls   []tickCall
	expired []*events.EffectEvent
	applied []*events.EffectEvent
}

func setup(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{paused: pausedTargets{}}
	bus := events.NewBus()
	bus.Subscribe(events.EventTypeEffectExpired, events.NewListenerFunc("expired", 0, func(e events.Event) error {
		f.expired = append(f.expired, e.(*events.EffectEvent))
		return nil
	}))
	bus.Subscribe(events.EventTypeEffectApplied, events.NewListenerFunc("applied", 0, func(e events.Event) error {
		f.applied = append(f.applied, e.(*events.EffectEvent))
		return nil
	}))

	f.manager = effects.NewManager(&effects.ManagerConfig{
		PauseResolver: f.paused,
		Bus:           bus,
		UUIDGenerator: uuid.NewSequentialGenerator("fx"),
	})
	f.manager.RegisterBehavior(effects.KindNeedlingHex, effects.BehaviorFunc(
		func(inst *effects.Instance, targetID string, fresh uint32) {
			f.calls = append(f.calls, tickCall{kind: inst.Kind, target: targetID, fresh: fresh})
		}))

	return f
}

func hex() *effects.Instance {
	return effects.NewBuilder(effects.KindNeedlingHex).
		WithSource("caster").
		WithTicks(500*time.Millisecond, 5).
		WithMagnitude(5).
		Build()
}

func TestManager_SpawnOrReplaceNeverStacks(t *testing.T) {
	f := setup(t)

	first, err := f.manager.SpawnOrReplace("target", hex())
	require.NoError(t, err)
	f.manager.Tick(1200 * time.Millisecond)
	assert.Equal(t, uint32(3), first.Timer.RemainingTicks())

	second, err := f.manager.SpawnOrReplace("target", hex())
	require.NoError(t, err)

	holder, ok := f.manager.HolderOf("target")
	require.True(t, ok)
	assert.Equal(t, 1, holder.Len())

	current, ok := f.manager.Get("target", effects.KindNeedlingHex)
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, uint32(5), current.Timer.RemainingTicks())
	assert.Equal(t, 2500*time.Millisecond, current.RemainingTime())

	_, ok = f.manager.TargetOf(first.ID)
	assert.False(t, ok)

	require.Len(t, f.applied, 2)
	assert.False(t, f.applied[0].Replaced)
	assert.True(t, f.applied[1].Replaced)
}

func TestManager_CatchUpTicksAndExpires(t *testing.T) {
	f := setup(t)
	inst, err := f.manager.SpawnOrReplace("target", hex())
	require.NoError(t, err)

	expired := f.manager.Tick(2600 * time.Millisecond)

	assert.Equal(t, []tickCall{{kind: effects.KindNeedlingHex, target: "target", fresh: 5}}, f.calls)
	require.Len(t, expired, 1)
	assert.Equal(t, inst.ID, expired[0].ID)
	_, ok := f.manager.Get("target", effects.KindNeedlingHex)
	assert.False(t, ok)

	require.Len(t, f.expired, 1)
	assert.Equal(t, "target", f.expired[0].TargetID)

	// the empty holder goes away on cleanup
	assert.Equal(t, 1, f.manager.Cleanup())
	_, ok = f.manager.HolderOf("target")
	assert.False(t, ok)
}

func TestManager_PausedTargetDoesNotTick(t *testing.T) {
	f := setup(t)
	f.paused["target"] = true
	inst, err := f.manager.SpawnOrReplace("target", hex())
	require.NoError(t, err)

	f.manager.Tick(10 * time.Second)

	assert.Empty(t, f.calls)
	assert.Equal(t, uint32(5), inst.Timer.RemainingTicks())

	f.paused["target"] = false
	f.manager.Tick(500 * time.Millisecond)
	assert.Len(t, f.calls, 1)
}

func TestManager_TargetOf(t *testing.T) {
	f := setup(t)
	inst, err := f.manager.SpawnOrReplace("target", hex())
	require.NoError(t, err)

	target, ok := f.manager.TargetOf(inst.ID)
	require.True(t, ok)
	assert.Equal(t, "target", target)
}

func TestManager_Remove(t *testing.T) {
	f := setup(t)

	assert.False(t, f.manager.Remove("target", effects.KindNeedlingHex))

	_, err := f.manager.SpawnOrReplace("target", hex())
	require.NoError(t, err)

	assert.False(t, f.manager.Remove("target", effects.KindPreparedBlock))
	assert.True(t, f.manager.Remove("target", effects.KindNeedlingHex))
	assert.False(t, f.manager.Remove("target", effects.KindNeedlingHex))
}

func TestManager_KindsAreIndependent(t *testing.T) {
	f := setup(t)

	_, err := f.manager.SpawnOrReplace("target", hex())
	require.NoError(t, err)
	_, err = f.manager.SpawnOrReplace("target", effects.NewBuilder(effects.KindPreparedBlock).
		WithTicks(500*time.Millisecond, 5).WithMagnitude(20).Build())
	require.NoError(t, err)

	holder, _ := f.manager.HolderOf("target")
	assert.Equal(t, 2, holder.Len())

	assert.Equal(t, 2, f.manager.RemoveTarget("target"))
	_, ok := f.manager.HolderOf("target")
	assert.False(t, ok)
}

func TestManager_SpawnValidation(t *testing.T) {
	f := setup(t)

	_, err := f.manager.SpawnOrReplace("", hex())
	assert.True(t, simerr.IsInvalidArgument(err))

	_, err = f.manager.SpawnOrReplace("target", &effects.Instance{Kind: effects.KindNeedlingHex})
	assert.True(t, simerr.IsInvalidArgument(err))
}

func TestBuilder_EveryBuildHasItsOwnTimer(t *testing.T) {
	b := effects.NewBuilder(effects.KindNeedlingHex).WithTicks(time.Second, 2)

	a, c := b.Build(), b.Build()
	a.Timer.TickFreshTicks(time.Second)

	assert.Equal(t, uint32(1), a.Timer.RemainingTicks())
	assert.Equal(t, uint32(2), c.Timer.RemainingTicks())
}
