package server

import (
	"ctchen222/tictactoe-solo/internal/api/response"
	"ctchen222/tictactoe-solo/internal/hub"
	"ctchen222/tictactoe-solo/internal/player"
	"ctchen222/tictactoe-solo/internal/session"
	"ctchen222/tictactoe-solo/internal/telemetry"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	hub         *hub.Hub
	engine      *gin.Engine
	upgrader    websocket.Upgrader
	metrics     *telemetry.GameMetrics
	sessionOpts []session.Option
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics reports every exchange to m.
func WithMetrics(m *telemetry.GameMetrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithSessionOptions is applied to every session the server creates.
func WithSessionOptions(opts ...session.Option) Option {
	return func(s *Server) {
		s.sessionOpts = append(s.sessionOpts, opts...)
	}
}

// NewServer builds the routes. h must be running for websocket sessions to be served.
func NewServer(h *hub.Hub, opts ...Option) *Server {
	s := &Server{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = s.routes()
	return s
}

// Engine returns the HTTP handler serving every route.
func (s *Server) Engine() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.handleHealth)
	r.GET("/ws", s.handleWebSocket)
	r.NoRoute(func(c *gin.Context) {
		response.ErrorResponse(c, http.StatusNotFound, "route not found")
	})
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	response.SuccessResponse(c, gin.H{"status": "ok", "sessions": s.hub.Count()})
}

// handleWebSocket upgrades the connection, starts a fresh session for it and serves
// the session until the client goes away.
func (s *Server) handleWebSocket(c *gin.Context) {
	r := c.Request
	ctx, span := tracer.Start(r.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", r.URL.String()),
		attribute.String("http.method", r.Method),
	))

	conn, err := s.upgrader.Upgrade(c.Writer, r, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		span.End()
		return
	}

	sessionID := uuid.New().String()
	span.SetAttributes(attribute.String("session.id", sessionID))

	logger := slog.Default().With("session.id", sessionID)
	opts := append([]session.Option{session.WithLogger(logger)}, s.sessionOpts...)
	p := player.NewPlayer(sessionID, conn, session.New(opts...))

	slog.InfoContext(ctx, "Session started", "session.id", sessionID)
	span.End()

	s.hub.Register(p)
	defer s.hub.Unregister(p)
	s.ReadPump(ctx, p)
}
