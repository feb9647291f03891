package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adamanr/leave_service/internal/controllers"
	"github.com/adamanr/leave_service/internal/entity"
	"github.com/adamanr/leave_service/internal/store"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	deps        *controllers.Dependens
	Controllers *controllers.Controllers
}

func NewServer(deps *controllers.Dependens) *Server {
	return &Server{
		deps: deps,
		Controllers: &controllers.Controllers{
			AuthController:  controllers.NewAuthController(deps),
			LeaveController: controllers.NewLeaveController(deps),
		},
	}
}

// Routes registers the versioned API. The paths and JSON shapes are the
// compatibility contract with the existing frontend.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.AuthLogin)
		r.Post("/auth/logout", s.AuthLogout)
		r.Get("/users/me", s.GetCurrentUser)
		r.Get("/requests", s.ListRequests)
		r.Post("/requests", s.CreateRequest)
		r.Put("/requests/{id}/{action}", s.DecideRequest)
		r.Get("/balance", s.GetBalance)
		r.Get("/reports/summary", s.GetSummary)
	})
}

// getUserFromToken extracts user information from the token.
func (s *Server) getUserFromToken(r *http.Request) (*entity.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("No token")
	}

	claims, err := s.Controllers.AuthController.CheckUserToken(r.Context(), authHeader)
	if err != nil {
		return nil, errors.New("Invalid token")
	}

	return claims, nil
}

// AuthLogin authenticates a user and returns the profile plus a session token.
func (s *Server) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.httpError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.Controllers.AuthController.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, controllers.ErrInvalidCredentials) {
			s.httpError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		s.httpError(w, http.StatusInternalServerError, "Failed to authenticate")
		return
	}

	s.httpResponse(w, http.StatusOK, entity.LoginResponse{
		User:   user,
		Tokens: entity.Tokens{AccessToken: token},
	})
}

// AuthLogout revokes the caller's session token.
func (s *Server) AuthLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.Controllers.AuthController.Logout(r.Context(), r.Header.Get("Authorization")); err != nil {
		s.httpError(w, http.StatusInternalServerError, "Failed to logout")
		return
	}

	s.httpResponse(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// GetCurrentUser returns the caller's profile.
func (s *Server) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, err := s.getUserFromToken(r)
	if err != nil {
		s.httpError(w, http.StatusUnauthorized, err.Error())
		return
	}

	user, err := s.deps.Store.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.httpError(w, http.StatusNotFound, "User not found")
			return
		}

		s.deps.Logger.Error("Error querying user", slog.String("error", err.Error()))
		s.httpError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	s.httpResponse(w, http.StatusOK, user)
}

// ListRequests returns the requests visible to the caller's role.
func (s *Server) ListRequests(w http.ResponseWriter, r *http.Request) {
	claims, err := s.getUserFromToken(r)
	if err != nil {
		s.httpError(w, http.StatusUnauthorized, err.Error())
		return
	}

	requests, err := s.Controllers.LeaveController.ListRequests(r.Context(), claims)
	if err != nil {
		s.deps.Logger.Error("Error listing requests", slog.String("error", err.Error()))
		s.httpError(w, http.StatusInternalServerError, "Failed to get requests")
		return
	}

	s.httpResponse(w, http.StatusOK, map[string]any{"requests": requests})
}

// CreateRequest files a new leave request for the caller.
func (s *Server) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, err := s.getUserFromToken(r)
	if err != nil {
		s.httpError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req entity.CreateLeaveRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.httpError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := s.Controllers.LeaveController.CreateRequest(r.Context(), claims, &req)
	if err != nil {
		if errors.Is(err, controllers.ErrInvalidInput) {
			s.httpError(w, http.StatusBadRequest, err.Error())
			return
		}

		s.httpError(w, http.StatusInternalServerError, "Failed to create request")
		return
	}

	s.httpResponse(w, http.StatusCreated, map[string]any{"request": request})
}

// DecideRequest approves or rejects a request.
func (s *Server) DecideRequest(w http.ResponseWriter, r *http.Request) {
	claims, err := s.getUserFromToken(r)
	if err != nil {
		s.httpError(w, http.StatusUnauthorized, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	action := chi.URLParam(r, "action")

	request, err := s.Controllers.LeaveController.DecideRequest(r.Context(), claims, id, action)
	if err != nil {
		switch {
		case errors.Is(err, controllers.ErrForbidden):
			s.httpError(w, http.StatusForbidden, "Forbidden")
		case errors.Is(err, controllers.ErrNotFound):
			s.httpError(w, http.StatusNotFound, "Not found")
		case errors.Is(err, controllers.ErrInvalidInput):
			s.httpError(w, http.StatusBadRequest, err.Error())
		default:
			s.httpError(w, http.StatusInternalServerError, "Failed to update request")
		}

		return
	}

	s.httpResponse(w, http.StatusOK, map[string]any{"request": request})
}

// GetBalance returns the caller's entitlement for the current plan year.
func (s *Server) GetBalance(w http.ResponseWriter, r *http.Request) {
	claims, err := s.getUserFromToken(r)
	if err != nil {
		s.httpError(w, http.StatusUnauthorized, err.Error())
		return
	}

	balance, err := s.Controllers.LeaveController.GetBalance(r.Context(), claims)
	if err != nil {
		s.httpError(w, http.StatusInternalServerError, "Failed to get balance")
		return
	}

	s.httpResponse(w, http.StatusOK, balance)
}

// GetSummary returns HR aggregate counts.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	claims, err := s.getUserFromToken(r)
	if err != nil {
		s.httpError(w, http.StatusUnauthorized, err.Error())
		return
	}

	summary, err := s.Controllers.LeaveController.GetSummary(r.Context(), claims)
	if err != nil {
		if errors.Is(err, controllers.ErrForbidden) {
			s.httpError(w, http.StatusForbidden, "Forbidden")
			return
		}

		s.httpError(w, http.StatusInternalServerError, "Failed to get summary")
		return
	}

	s.httpResponse(w, http.StatusOK, summary)
}

func (s *Server) httpResponse(w http.ResponseWriter, status int, data any) {
	respData, marshalErr := json.Marshal(data)
	if marshalErr != nil {
		s.deps.Logger.Error("Error marshaling response", slog.String("error", marshalErr.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(respData); err != nil {
		s.deps.Logger.Error("Error writing response", slog.String("error", err.Error()))
	}
}

func (s *Server) httpError(w http.ResponseWriter, status int, message string) {
	s.httpResponse(w, status, map[string]string{"error": message})
}
