package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gmhollar5/PersonalFinanceApp/internal/database"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

type createUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (h *Handler) UsersCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "first_name, last_name and email are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	if _, err := h.db.GetUserByEmail(req.Email); err == nil {
		respondError(w, http.StatusConflict, "a user with this email already exists")
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	id, err := h.db.CreateUser(user)
	if err != nil {
		h.logger.WithError(err).Error("failed to create user")
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	created, err := h.db.GetUser(id)
	if err != nil {
		h.logger.WithError(err).Error("failed to load created user")
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	h.logger.WithField(logging.FieldUser, id).Info("User created")
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := h.db.GetUsers()
	if err != nil {
		h.logger.WithError(err).Error("failed to list users")
		respondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *Handler) UsersShow(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := h.db.GetUser(id)
	if err == database.ErrNotFound {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("failed to load user")
		respondError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// pathUserID parses the {id} path segment and verifies the user exists.
func (h *Handler) pathUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	if _, err := h.db.GetUser(id); err != nil {
		if err == database.ErrNotFound {
			respondError(w, http.StatusNotFound, "user not found")
		} else {
			h.logger.WithError(err).Error("failed to load user")
			respondError(w, http.StatusInternalServerError, "failed to load user")
		}
		return 0, false
	}
	return id, true
}
