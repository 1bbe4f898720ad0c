// Package api exposes the HTTP JSON interface: user management, transaction
// entry, statement upload and account balances.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gmhollar5/PersonalFinanceApp/internal/categorizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/database"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/parser"
	"github.com/gmhollar5/PersonalFinanceApp/internal/tagger"
)

type Handler struct {
	db      *database.DB
	parsers *parser.Factory
	cat     *categorizer.Categorizer
	tags    *tagger.Tagger
	logger  logging.Logger
}

func New(db *database.DB, parsers *parser.Factory, cat *categorizer.Categorizer, tags *tagger.Tagger, logger logging.Logger) *Handler {
	return &Handler{
		db:      db,
		parsers: parsers,
		cat:     cat,
		tags:    tags,
		logger:  logger,
	}
}

// Routes builds the full route table.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Health)

	mux.HandleFunc("POST /users", h.UsersCreate)
	mux.HandleFunc("GET /users", h.UsersList)
	mux.HandleFunc("GET /users/{id}", h.UsersShow)

	mux.HandleFunc("POST /transactions", h.TransactionsCreate)
	mux.HandleFunc("POST /transactions/upload", h.TransactionsUpload)
	mux.HandleFunc("POST /transactions/bulk", h.TransactionsBulk)
	mux.HandleFunc("GET /transactions/user/{id}", h.TransactionsList)
	mux.HandleFunc("GET /transactions/summary/{id}", h.TransactionsSummary)
	mux.HandleFunc("DELETE /transactions/{id}", h.TransactionsDelete)

	mux.HandleFunc("POST /accounts", h.AccountsCreate)
	mux.HandleFunc("GET /accounts/user/{id}", h.AccountsList)
	mux.HandleFunc("GET /accounts/user/{id}/latest", h.AccountsLatest)

	mux.HandleFunc("GET /categories", h.Categories)

	return mux
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
