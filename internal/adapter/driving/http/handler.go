// Package httphandler is the HTTP driving adapter serving the JSON API.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ericfisherdev/smartbrain/internal/application"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	registration *application.RegistrationService
	auth         *application.AuthService
	engagement   *application.EngagementService
	detection    *application.DetectionService
	accounts     driven.AccountStore
	logger       *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	registration *application.RegistrationService,
	auth *application.AuthService,
	engagement *application.EngagementService,
	detection *application.DetectionService,
	accounts driven.AccountStore,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		registration: registration,
		auth:         auth,
		engagement:   engagement,
		detection:    detection,
		accounts:     accounts,
		logger:       logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with CORS, logging, and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("POST /signin", h.Signin)
	mux.HandleFunc("GET /profile/{id}", h.Profile)
	mux.HandleFunc("PUT /image", h.Image)
	mux.HandleFunc("POST /detect", h.Detect)
	mux.HandleFunc("GET /health", h.Health)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = corsMiddleware(wrapped)

	return wrapped
}

// Register creates a new account from display name, identity, and secret.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.DisplayName == "" || req.Identity == "" || req.Secret == "" {
		writeError(w, http.StatusBadRequest, "display_name, identity, and secret are required")
		return
	}

	user, err := h.registration.Register(r.Context(), req.DisplayName, req.Identity, req.Secret)
	switch {
	case errors.Is(err, application.ErrValidation):
		writeError(w, http.StatusBadRequest, "display_name, identity, and secret are required")
		return
	case errors.Is(err, application.ErrRegistrationFailed):
		// One generic message for every cause, including duplicate identity.
		h.logger.Info("registration rejected", "error", err)
		writeError(w, http.StatusBadRequest, "unable to register")
		return
	case err != nil:
		h.logger.Error("registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(*user))
}

// Signin verifies credentials and returns the matching account.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.auth.Authenticate(r.Context(), req.Identity, req.Secret)
	if errors.Is(err, application.ErrAuthFailed) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("signin failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

// Profile returns an account by its numeric id.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	user, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get profile", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if user == nil {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

// Image increments the engagement counter for an account and returns the new count.
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	var req ImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count, err := h.engagement.Increment(r.Context(), req.ID)
	if errors.Is(err, driven.ErrAccountNotFound) {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to increment engagement", "id", req.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, EngagementResponse{EngagementCount: count})
}

// Detect forwards an image URL to the vision service and returns the detected
// face regions.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	regions, err := h.detection.DetectFaces(r.Context(), req.ImageURL)
	var upstreamErr *driven.UpstreamError
	switch {
	case errors.Is(err, application.ErrValidation):
		writeError(w, http.StatusBadRequest, "image_url is required")
		return
	case errors.Is(err, application.ErrVisionNotConfigured):
		h.logger.Error("detection requested but vision service is not configured")
		writeError(w, http.StatusServiceUnavailable, "face detection is not configured")
		return
	case errors.As(err, &upstreamErr):
		h.logger.Error("vision service rejected detection",
			"upstream_code", upstreamErr.Code,
			"upstream_description", upstreamErr.Description,
		)
		writeError(w, http.StatusBadGateway, "face detection failed")
		return
	case errors.Is(err, driven.ErrUpstreamUnreachable):
		h.logger.Error("vision service unreachable", "error", err)
		writeError(w, http.StatusBadGateway, "face detection unavailable")
		return
	case err != nil:
		h.logger.Error("detection failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toDetectResponse(regions))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   nowRFC3339(),
	})
}
