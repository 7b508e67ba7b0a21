package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xenopets/XenoPets_Go/internal/exploration"
	"github.com/xenopets/XenoPets_Go/internal/fishing"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/gamedata"
	"github.com/xenopets/XenoPets_Go/internal/handler"
	"github.com/xenopets/XenoPets_Go/internal/logger"
	"github.com/xenopets/XenoPets_Go/internal/metrics"
	"github.com/xenopets/XenoPets_Go/internal/persist"
)

type Server struct {
	httpServer         *http.Server
	store              persist.Store
	gameService        game.Service
	fishingService     fishing.Service
	explorationService exploration.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, store persist.Store, gameService game.Service, fishingService fishing.Service, explorationService exploration.Service, catalog *gamedata.Catalog) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Session routes
		r.Route("/session", func(r chi.Router) {
			r.Post("/login", handler.HandleLogin(gameService))
			r.Post("/logout", handler.HandleLogout(gameService))
			r.Get("/me", handler.HandleGetCurrentUser(gameService))
			r.Post("/save", handler.HandleSaveSession(gameService))
			r.Post("/reload", handler.HandleReloadUserData(gameService))
		})

		// Wallet routes
		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", handler.HandleGetWallet(gameService))
			r.Post("/update", handler.HandleUpdateCurrency(gameService))
		})

		// Store routes
		r.Route("/stores", func(r chi.Router) {
			r.Get("/", handler.HandleListStores(gameService))
			r.Post("/purchase", handler.HandlePurchase(gameService))
			r.Post("/restock", handler.HandleRestockStores(gameService))
			r.Get("/{storeID}", handler.HandleGetStore(gameService))
		})

		// Inventory routes
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(gameService))
			r.Post("/add", handler.HandleAddItem(gameService, catalog))
			r.Post("/remove", handler.HandleRemoveItem(gameService))
			r.Post("/use", handler.HandleUseItem(gameService))
		})

		// Redeem code routes
		r.Route("/codes", func(r chi.Router) {
			r.Get("/", handler.HandleListRedeemCodes(gameService))
			r.Post("/", handler.HandleCreateRedeemCode(gameService))
			r.Post("/redeem", handler.HandleRedeemCode(gameService))
			r.Post("/deactivate", handler.HandleDeactivateRedeemCode(gameService))
		})

		// Ship routes
		r.Route("/ships", func(r chi.Router) {
			r.Get("/", handler.HandleGetShips(gameService))
			r.Post("/purchase", handler.HandlePurchaseShip(gameService))
			r.Post("/switch", handler.HandleSwitchShip(gameService))
		})

		// Notification routes
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", handler.HandleGetNotifications(gameService))
			r.Post("/read-all", handler.HandleMarkAllNotificationsRead(gameService))
			r.Delete("/clear", handler.HandleClearNotifications(gameService))
			r.Post("/{notificationID}/read", handler.HandleMarkNotificationRead(gameService))
			r.Delete("/{notificationID}", handler.HandleDeleteNotification(gameService))
		})

		// Pet routes
		r.Route("/pets", func(r chi.Router) {
			r.Get("/", handler.HandleGetPets(gameService))
			r.Post("/", handler.HandleCreatePet(gameService))
			r.Post("/stats", handler.HandleUpdatePetStats(gameService))
			r.Post("/activate", handler.HandleSetActivePet(gameService))
		})

		// Hatching routes
		r.Route("/hatching", func(r chi.Router) {
			r.Get("/", handler.HandleGetHatching(gameService))
			r.Post("/start", handler.HandleStartHatching(gameService))
			r.Delete("/", handler.HandleClearHatching(gameService))
		})

		// Daily check-in
		r.Post("/checkin", handler.HandleDailyCheckin(gameService))

		// Player directory routes
		r.Route("/players", func(r chi.Router) {
			r.Get("/search", handler.HandleSearchPlayers(gameService))
			r.Get("/{playerID}", handler.HandleGetPlayerProfile(gameService))
		})

		// Collection routes
		r.Route("/collection", func(r chi.Router) {
			r.Get("/", handler.HandleGetCollection(gameService))
			r.Post("/collect", handler.HandleCollectCollectible(gameService))
		})

		// Exploration routes
		r.Route("/exploration/{planetID}", func(r chi.Router) {
			r.Get("/points", handler.HandleGetExplorationPoints(explorationService))
			r.Post("/points", handler.HandleAddExplorationPoint(explorationService))
			r.Route("/points/{pointID}", func(r chi.Router) {
				r.Get("/area", handler.HandleGetExplorationArea(explorationService))
				r.Patch("/", handler.HandleUpdateExplorationPoint(explorationService))
				r.Post("/toggle", handler.HandleToggleExplorationPoint(explorationService))
				r.Delete("/", handler.HandleRemoveExplorationPoint(explorationService))
			})
		})

		// Fishing routes
		r.Route("/fishing", func(r chi.Router) {
			r.Get("/active", handler.HandleGetActiveFish(fishingService))
			r.Post("/catch", handler.HandleCatchFish(fishingService, gameService))
			r.Get("/stats", handler.HandleGetFishingStats(fishingService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:              store,
		gameService:        gameService,
		fishingService:     fishingService,
		explorationService: explorationService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
