package telemetry

import (
	"context"
	"ctchen222/tictactoe-solo/internal/bot"
	"ctchen222/tictactoe-solo/internal/config"
	"ctchen222/tictactoe-solo/internal/game"
	"ctchen222/tictactoe-solo/internal/session"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestInitOtel_Disabled(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Telemetry{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))
}

func newTestMetrics(t *testing.T) (*GameMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewGameMetrics(mp.Meter(meterName))
	require.NoError(t, err)
	return m, reader
}

// counterValue sums the data points of counter name whose attributes include every kv.
func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string, kv ...attribute.KeyValue) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				if matches(dp.Attributes, kv) {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func matches(set attribute.Set, kv []attribute.KeyValue) bool {
	for _, want := range kv {
		got, ok := set.Value(want.Key)
		if !ok || got.Emit() != want.Value.Emit() {
			return false
		}
	}
	return true
}

func TestGameMetrics_Record(t *testing.T) {
	// Given
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	// When
	m.Record(ctx, session.Exchange{Accepted: false, Status: game.InProgress})
	m.Record(ctx, session.Exchange{
		Accepted: true,
		Player:   game.Position{Row: 0, Col: 0},
		Opponent: &bot.Decision{Position: game.Position{Row: 1, Col: 1}, Rule: bot.RuleOpening},
		Status:   game.InProgress,
	})
	m.Record(ctx, session.Exchange{
		Accepted: true,
		Player:   game.Position{Row: 2, Col: 2},
		Opponent: &bot.Decision{Position: game.Position{Row: 0, Col: 2}, Rule: bot.RuleWin},
		Status:   game.OpponentWon,
	})
	m.Record(ctx, session.Exchange{Accepted: true, Status: game.PlayerWon})

	// Then
	assert.Equal(t, int64(1), counterValue(t, reader, "game.moves.rejected"))
	assert.Equal(t, int64(5), counterValue(t, reader, "game.moves"))
	assert.Equal(t, int64(3), counterValue(t, reader, "game.moves", attribute.String("game.side", "player")))
	assert.Equal(t, int64(1), counterValue(t, reader, "game.moves", attribute.String("game.rule", "opening")))
	assert.Equal(t, int64(1), counterValue(t, reader, "game.moves", attribute.String("game.rule", "win")))
	assert.Equal(t, int64(2), counterValue(t, reader, "game.finished"))
	assert.Equal(t, int64(1), counterValue(t, reader, "game.finished", attribute.String("game.status", "player_won")))
	assert.Equal(t, int64(1), counterValue(t, reader, "game.finished", attribute.String("game.status", "opponent_won")))
}

func TestGameMetrics_NilIsNoop(t *testing.T) {
	var m *GameMetrics
	assert.NotPanics(t, func() {
		m.Record(context.Background(), session.Exchange{Accepted: true, Status: game.Draw})
	})
}
