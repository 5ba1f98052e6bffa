package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Lah112/Hospital-Management-System-Final/internal/appointments"
	"github.com/Lah112/Hospital-Management-System-Final/internal/directory"
	"github.com/Lah112/Hospital-Management-System-Final/internal/medhistory"
	"github.com/Lah112/Hospital-Management-System-Final/internal/messages"
	"github.com/Lah112/Hospital-Management-System-Final/internal/payments"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/auth"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/config"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/database"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/monitoring"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/response"
)

// Server wires the hospital API together: storage, auth, domain services
// and the HTTP surface under /api/v1.
type Server struct {
	config     *config.Config
	logger     *logger.Logger
	db         *database.DB
	httpServer *http.Server
}

// New connects to the database, ensures the schema and assembles the router
func New(cfg *config.Config, log *logger.Logger) (*Server, error) {
	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.CreateSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	s := &Server{
		config: cfg,
		logger: log,
		db:     db,
	}

	router := s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	return s, nil
}

// buildRouter registers every endpoint group on a shared /api/v1 subrouter
func (s *Server) buildRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(monitoring.HTTPMiddleware)

	router.Handle("/metrics", monitoring.Handler()).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", s.healthHandler).Methods("GET")

	tokens := auth.NewTokenManager(&s.config.JWT)
	mw := auth.NewMiddleware(tokens, s.logger)

	directoryRepo := directory.NewRepository(s.db, s.logger)
	directoryService := directory.NewService(directoryRepo, tokens, s.logger)
	directory.NewHandlers(directoryService, s.logger).RegisterRoutes(api, mw)

	appointmentRepo := appointments.NewRepository(s.db, s.logger)
	appointmentService := appointments.NewService(appointmentRepo, directoryService,
		s.config.Payment.Amount, s.logger)
	appointments.NewHandlers(appointmentService, s.logger).RegisterRoutes(api, mw)

	decider := payments.NewRandomOutcomeDecider(s.config.Payment.SuccessRate)
	paymentService := payments.NewService(appointmentRepo, decider, s.logger)
	payments.NewHandlers(paymentService, s.config.Payment.WebhookSecret, s.logger).
		RegisterRoutes(api, mw)

	historyRepo := medhistory.NewRepository(s.db, s.logger)
	historyService := medhistory.NewService(historyRepo, directoryService, s.logger)
	medhistory.NewHandlers(historyService, s.logger).RegisterRoutes(api, mw)

	messageRepo := messages.NewRepository(s.db, s.logger)
	messageService := messages.NewService(messageRepo, s.logger)
	messages.NewHandlers(messageService, s.logger).RegisterRoutes(api, mw)

	return router
}

// Start begins serving HTTP requests. Blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Infof("Hospital API listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and closes the database connection
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// healthHandler reports service and database health
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Health(); err != nil {
		s.logger.WithError(err).Error("Health check failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"success":false,"status":"unhealthy"}`)
		return
	}

	response.WriteJSON(w, s.logger, http.StatusOK, response.Envelope{
		"status": "healthy",
	})
}
