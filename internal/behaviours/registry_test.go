package behaviours_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/nightcaste/internal/behaviours"
	mockbehaviours "github.com/KirkDiggler/nightcaste/internal/behaviours/mock"
	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/events"
	"github.com/KirkDiggler/nightcaste/internal/input"
)

func TestRegistry_LastBindWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mockbehaviours.NewMockBehaviour(ctrl)
	second := mockbehaviours.NewMockBehaviour(ctrl)
	registry := behaviours.NewRegistry(nil, behaviours.Deps{})

	registry.Bind(components.TypeInput, first)
	registry.Bind(components.TypeInput, second)

	got, ok := registry.BehaviourFor(components.TypeInput)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, []components.Type{components.TypeInput}, registry.Bindings())
}

func TestRegistry_BehaviourForUnbound(t *testing.T) {
	registry := behaviours.NewRegistry(nil, behaviours.Deps{})

	got, ok := registry.BehaviourFor(components.TypeSprite)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRegistry_BindFromName(t *testing.T) {
	deps := behaviours.Deps{
		Publisher: events.NewDispatcher(),
		Input:     input.NewState(),
	}
	registry := behaviours.NewRegistry(behaviours.DefaultFactories(), deps)

	require.NoError(t, registry.BindFromName(components.TypeInput, behaviours.InputBehaviourName))

	got, ok := registry.BehaviourFor(components.TypeInput)
	require.True(t, ok)
	assert.IsType(t, &behaviours.InputBehaviour{}, got)
}

func TestRegistry_BindFromNameUnknown(t *testing.T) {
	registry := behaviours.NewRegistry(behaviours.DefaultFactories(), behaviours.Deps{})

	err := registry.BindFromName(components.TypeInput, "FlyingBehaviour")
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "FlyingBehaviour")
	assert.Equal(t, "FlyingBehaviour", errors.GetMeta(err)["behaviour"])

	_, ok := registry.BehaviourFor(components.TypeInput)
	assert.False(t, ok)
}

func TestRegistry_FactoryReceivesDeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	built := mockbehaviours.NewMockBehaviour(ctrl)
	publisher := events.NewDispatcher()

	var received behaviours.Deps
	factories := behaviours.NewFactories()
	factories.Register("Custom", func(deps behaviours.Deps) behaviours.Behaviour {
		received = deps
		return built
	})

	registry := behaviours.NewRegistry(factories, behaviours.Deps{Publisher: publisher})
	require.NoError(t, registry.BindFromName(components.TypeSprite, "Custom"))

	assert.Same(t, publisher, received.Publisher)
	got, _ := registry.BehaviourFor(components.TypeSprite)
	assert.Same(t, built, got)
}

func TestRegistry_ConfigureFailsFast(t *testing.T) {
	registry := behaviours.NewRegistry(behaviours.DefaultFactories(), behaviours.Deps{})

	err := registry.Configure([]behaviours.Binding{
		{ComponentType: components.TypeInput, Name: behaviours.InputBehaviourName},
		{ComponentType: components.TypeSprite, Name: "Missing"},
		{ComponentType: components.TypeWander, Name: behaviours.WanderBehaviourName},
	})

	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Equal(t, []components.Type{components.TypeInput}, registry.Bindings())
}

func TestRegistry_ConfigureEmpty(t *testing.T) {
	registry := behaviours.NewRegistry(behaviours.DefaultFactories(), behaviours.Deps{})

	assert.NoError(t, registry.Configure(nil))
	assert.Empty(t, registry.Bindings())
}

func TestDefaultFactories_Names(t *testing.T) {
	assert.Equal(t,
		[]string{behaviours.InputBehaviourName, behaviours.WanderBehaviourName},
		behaviours.DefaultFactories().Names())
}
