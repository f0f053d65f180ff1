package calculator

import (
	"context"
	"testing"
	"time"

	"github.com/example/calculator-service/domain/calculation"
	"github.com/go-monolith/mono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_Lifecycle(t *testing.T) {
	m := NewModule(&mockLogger{})
	ctx := context.Background()

	assert.Equal(t, "calculator", m.Name())
	assert.False(t, m.Health(ctx).Healthy)

	require.NoError(t, m.Start(ctx))
	health := m.Health(ctx)
	assert.True(t, health.Healthy)
	assert.Equal(t, "operational", health.Message)
	assert.Len(t, health.Details["operations"], 10)

	require.NoError(t, m.Stop(ctx))
	assert.False(t, m.Health(ctx).Healthy)
}

// consumerModule captures the calculator's service container the way the
// API module does.
type consumerModule struct {
	port CalculatorPort
}

var _ mono.DependentModule = (*consumerModule)(nil)

func (c *consumerModule) Name() string                  { return "consumer" }
func (c *consumerModule) Start(_ context.Context) error { return nil }
func (c *consumerModule) Stop(_ context.Context) error  { return nil }
func (c *consumerModule) Dependencies() []string        { return []string{ModuleName} }
func (c *consumerModule) SetDependencyServiceContainer(dep string, container mono.ServiceContainer) {
	if dep == ModuleName {
		c.port = NewCalculatorAdapter(container)
	}
}

func startTestApp(t *testing.T) CalculatorPort {
	t.Helper()

	app, err := mono.NewMonoApplication(
		mono.WithLogLevel(mono.LogLevelError), // Suppress logs in tests
	)
	require.NoError(t, err)

	consumer := &consumerModule{}
	app.Register(NewModule(&mockLogger{}))
	app.Register(consumer)

	require.NoError(t, app.Start(context.Background()))
	t.Cleanup(func() {
		_ = app.Stop(context.Background())
	})

	require.NotNil(t, consumer.port)
	return consumer.port
}

func TestAdapter_RoundTrip(t *testing.T) {
	port := startTestApp(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b := 3.0
	got, err := port.Calculate(ctx, "+", 5, &b)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)

	got, err = port.Calculate(ctx, "sqrt", 16, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	zero := 0.0
	_, err = port.Calculate(ctx, "/", 1, &zero)
	assert.ErrorIs(t, err, calculation.ErrDivisionByZero)

	got, err = port.Evaluate(ctx, "6 * 7")
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	_, err = port.Evaluate(ctx, "6 / 0")
	assert.ErrorIs(t, err, calculation.ErrInvalidExpression)
	assert.ErrorIs(t, err, calculation.ErrDivisionByZero)
}

func TestNewCalculatorAdapter_NilContainer(t *testing.T) {
	assert.Panics(t, func() {
		NewCalculatorAdapter(nil)
	})
}
