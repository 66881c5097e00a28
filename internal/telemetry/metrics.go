package telemetry

import (
	"context"
	"ctchen222/tictactoe-solo/internal/session"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "ctchen222/tictactoe-solo"

// GameMetrics counts what happens in sessions. A nil *GameMetrics records nothing.
type GameMetrics struct {
	moves    metric.Int64Counter
	rejected metric.Int64Counter
	finished metric.Int64Counter
}

// NewGameMetrics registers the game counters on meter.
func NewGameMetrics(meter metric.Meter) (*GameMetrics, error) {
	moves, err := meter.Int64Counter("game.moves",
		metric.WithDescription("Accepted moves, labelled by who moved and the opponent rule"),
		metric.WithUnit("{move}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create game.moves counter: %w", err)
	}

	rejected, err := meter.Int64Counter("game.moves.rejected",
		metric.WithDescription("Player moves ignored by the session"),
		metric.WithUnit("{move}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create game.moves.rejected counter: %w", err)
	}

	finished, err := meter.Int64Counter("game.finished",
		metric.WithDescription("Games that reached a terminal status"),
		metric.WithUnit("{game}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create game.finished counter: %w", err)
	}

	return &GameMetrics{moves: moves, rejected: rejected, finished: finished}, nil
}

// Record counts one exchange.
func (m *GameMetrics) Record(ctx context.Context, ex session.Exchange) {
	if m == nil {
		return
	}
	if !ex.Accepted {
		m.rejected.Add(ctx, 1)
		return
	}

	m.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("game.side", "player")))
	if ex.Opponent != nil {
		m.moves.Add(ctx, 1, metric.WithAttributes(
			attribute.String("game.side", "opponent"),
			attribute.String("game.rule", ex.Opponent.Rule.String()),
		))
	}

	if ex.Status.Terminal() {
		m.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("game.status", string(ex.Status))))
	}
}
