package server

import (
	"context"
	"ctchen222/tictactoe-solo/internal/player"
	"ctchen222/tictactoe-solo/internal/session"
	"ctchen222/tictactoe-solo/internal/validator"
	"ctchen222/tictactoe-solo/pkg/proto"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrInvalidPosition  = errors.New("move needs a position of [row, col]")
	ErrMissingDirection = errors.New("cursor needs a direction")
)

// ReadPump sends the initial state, then answers every client message with exactly
// one reply until the connection fails.
func (s *Server) ReadPump(ctx context.Context, p *player.Player) {
	ctx, span := tracer.Start(ctx, "server.ReadPump", trace.WithAttributes(
		attribute.String("session.id", p.ID),
	))
	defer span.End()

	defer func() {
		p.Conn.Close()
		slog.InfoContext(ctx, "Session ended", "session.id", p.ID)
	}()

	if err := s.send(ctx, p, stateMessage(p, session.Exchange{Status: p.Session.Status()})); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send initial state")
		return
	}

	for {
		_, msg, err := p.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "Player connection error", "session.id", p.ID, "error", err)
				span.RecordError(err)
				span.SetStatus(codes.Error, "Player connection error")
			}
			return
		}

		if err := s.send(ctx, p, s.HandleMessage(ctx, p, msg)); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to send reply")
			return
		}
	}
}

// HandleMessage decodes one client message, applies it to the player's session and
// builds the reply. Malformed messages get an error reply and leave the session alone.
func (s *Server) HandleMessage(ctx context.Context, p *player.Player, rawMessage []byte) *proto.ServerToClientMessage {
	ctx, span := tracer.Start(ctx, "server.handleMessage", trace.WithAttributes(
		attribute.String("session.id", p.ID),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.WarnContext(ctx, "error unmarshalling message", "session.id", p.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		return errorMessage(fmt.Errorf("invalid message: %w", err))
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "session.id", p.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		return errorMessage(fmt.Errorf("invalid message: %w", err))
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	var (
		ex  session.Exchange
		err error
	)
	switch message.Type {
	case proto.TypeMove:
		ex, err = s.handleMove(ctx, p, &message)
	case proto.TypeSubmit:
		ex = p.Session.Submit()
		s.metrics.Record(ctx, ex)
	case proto.TypeCursor:
		ex, err = handleCursor(p, &message)
	case proto.TypeReset:
		p.Session.Reset()
		ex = session.Exchange{Status: p.Session.Status()}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errorMessage(err)
	}

	span.SetAttributes(
		attribute.Bool("move.accepted", ex.Accepted),
		attribute.String("game.status", string(ex.Status)),
	)
	return stateMessage(p, ex)
}

func (s *Server) handleMove(ctx context.Context, p *player.Player, message *proto.ClientToServerMessage) (session.Exchange, error) {
	if len(message.Position) != 2 {
		return session.Exchange{}, ErrInvalidPosition
	}

	row, col := message.Position[0], message.Position[1]
	_, moveSpan := tracer.Start(ctx, "server.handleMove", trace.WithAttributes(
		attribute.String("session.id", p.ID),
		attribute.Int("move.row", row),
		attribute.Int("move.col", col),
	))
	defer moveSpan.End()

	ex := p.Session.ApplyPlayerMove(row, col)
	moveSpan.SetAttributes(attribute.Bool("move.valid", ex.Accepted))
	if ex.Opponent != nil {
		moveSpan.SetAttributes(attribute.String("opponent.rule", ex.Opponent.Rule.String()))
	}
	s.metrics.Record(ctx, ex)
	return ex, nil
}

func handleCursor(p *player.Player, message *proto.ClientToServerMessage) (session.Exchange, error) {
	if message.Direction == "" {
		return session.Exchange{}, ErrMissingDirection
	}
	d, err := session.ParseDirection(message.Direction)
	if err != nil {
		return session.Exchange{}, err
	}
	p.Session.MoveCursor(d)
	return session.Exchange{Status: p.Session.Status()}, nil
}

func (s *Server) send(ctx context.Context, p *player.Player, message *proto.ServerToClientMessage) error {
	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		return fmt.Errorf("marshal %s message: %w", message.Type, err)
	}
	if err := p.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.ErrorContext(ctx, "error writing message to player", "session.id", p.ID, "error", err)
		return fmt.Errorf("write %s message: %w", message.Type, err)
	}
	return nil
}

func stateMessage(p *player.Player, ex session.Exchange) *proto.ServerToClientMessage {
	board := p.Session.Board()
	cursor := p.Session.Cursor()

	msg := &proto.ServerToClientMessage{
		Type:      proto.TypeState,
		SessionID: p.ID,
		Board:     board.Rows(),
		Status:    p.Session.Status(),
		Cursor:    &cursor,
		Accepted:  ex.Accepted,
	}
	if ex.Opponent != nil {
		msg.Opponent = &proto.OpponentMove{
			Position: ex.Opponent.Position,
			Rule:     ex.Opponent.Rule.String(),
		}
	}
	return msg
}

func errorMessage(err error) *proto.ServerToClientMessage {
	return &proto.ServerToClientMessage{
		Type:   proto.TypeError,
		Reason: err.Error(),
	}
}
