package api

import (
	"net/http"
	"time"

	"github.com/gmhollar5/PersonalFinanceApp/internal/dateutils"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

type accountRequest struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
	Balance     string `json:"balance"`
	Date        string `json:"date"`
}

func (h *Handler) AccountsCreate(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := h.db.GetUser(req.UserID); err != nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	if req.Name == "" || req.AccountType == "" {
		respondError(w, http.StatusBadRequest, "name and account_type are required")
		return
	}

	balance, err := models.ParseAmount(req.Balance)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid balance: "+req.Balance)
		return
	}

	date := dateutils.DateOnly(time.Now().UTC())
	if req.Date != "" {
		date, err = dateutils.ParseDate(req.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid date: "+req.Date)
			return
		}
	}

	account := &models.Account{
		UserID:       req.UserID,
		Name:         req.Name,
		AccountType:  req.AccountType,
		Balance:      balance,
		DateRecorded: date,
	}
	id, err := h.db.CreateAccount(account)
	if err != nil {
		h.logger.WithError(err).Error("failed to record account balance")
		respondError(w, http.StatusInternalServerError, "failed to record account balance")
		return
	}
	account.ID = id
	respondJSON(w, http.StatusCreated, account)
}

func (h *Handler) AccountsList(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}
	accounts, err := h.db.GetAccounts(userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list accounts")
		respondError(w, http.StatusInternalServerError, "failed to list accounts")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	respondJSON(w, http.StatusOK, accounts)
}

func (h *Handler) AccountsLatest(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}
	accounts, err := h.db.GetLatestAccounts(userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list latest accounts")
		respondError(w, http.StatusInternalServerError, "failed to list latest accounts")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	respondJSON(w, http.StatusOK, accounts)
}
