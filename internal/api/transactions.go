package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gmhollar5/PersonalFinanceApp/internal/dateutils"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/parsererror"
)

// maxUploadBytes bounds statement uploads. Bank CSV exports are small; a
// megabyte is a year of activity.
const maxUploadBytes = 8 << 20

type transactionRequest struct {
	UserID      int64  `json:"user_id"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Store       string `json:"store"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
	Date        string `json:"date"`
}

// toModel validates the request and converts it into a Transaction. The
// returned message is empty on success.
func (h *Handler) toModel(req *transactionRequest) (*models.Transaction, string) {
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		return nil, "type must be 'income' or 'expense'"
	}
	category := h.cat.NormalizeCategory(req.Category)
	if !h.cat.IsValidCategory(category) {
		return nil, "unknown category: " + req.Category
	}
	if req.Store == "" {
		return nil, "store is required"
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return nil, "invalid amount: " + req.Amount
	}
	if !amount.IsPositive() {
		return nil, "amount must be positive"
	}

	date := dateutils.DateOnly(time.Now().UTC())
	if req.Date != "" {
		date, err = dateutils.ParseDate(req.Date)
		if err != nil {
			return nil, "invalid date: " + req.Date
		}
	}

	return &models.Transaction{
		UserID:      req.UserID,
		Type:        req.Type,
		Category:    category,
		Store:       req.Store,
		Amount:      amount,
		Description: req.Description,
		Tag:         req.Tag,
		Date:        date,
	}, ""
}

func (h *Handler) TransactionsCreate(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := h.db.GetUser(req.UserID); err != nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	txn, msg := h.toModel(&req)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := h.db.CreateTransaction(txn)
	if err != nil {
		h.logger.WithError(err).Error("failed to create transaction")
		respondError(w, http.StatusInternalServerError, "failed to create transaction")
		return
	}
	created, err := h.db.GetTransaction(id)
	if err != nil {
		h.logger.WithError(err).Error("failed to load created transaction")
		respondError(w, http.StatusInternalServerError, "failed to create transaction")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) TransactionsList(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}
	txns, err := h.db.GetTransactions(userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list transactions")
		respondError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	respondJSON(w, http.StatusOK, txns)
}

func (h *Handler) TransactionsSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}
	summary, err := h.db.GetSummary(userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to compute summary")
		respondError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) TransactionsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	if err := h.db.DeleteTransaction(id); err != nil {
		respondError(w, http.StatusNotFound, "transaction not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type uploadResponse struct {
	BankType         string                     `json:"bank_type"`
	TransactionCount int                        `json:"transaction_count"`
	Transactions     []models.ParsedTransaction `json:"transactions"`
	Skipped          []models.SkippedRow        `json:"skipped"`
}

// TransactionsUpload parses an uploaded statement and returns the proposed
// transactions without persisting anything. The client reviews and submits
// them through the bulk endpoint.
func (h *Handler) TransactionsUpload(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = models.FormatAuto
	}

	content, err := readUpload(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if content == "" {
		respondError(w, http.StatusBadRequest, "empty statement upload")
		return
	}

	result, err := h.parsers.ParseStatement(content, format)
	if err != nil {
		var unrecognized *parsererror.UnrecognizedFormatError
		if errors.As(err, &unrecognized) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		var parseErr *parsererror.ParseError
		if errors.As(err, &parseErr) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.WithError(err).Error("statement parse failed")
		respondError(w, http.StatusInternalServerError, "failed to parse statement")
		return
	}

	h.logger.WithFields(
		logging.Field{Key: logging.FieldFormat, Value: result.Format},
		logging.Field{Key: logging.FieldCount, Value: len(result.Transactions)},
	).Info("Statement parsed")

	resp := uploadResponse{
		BankType:         result.Format,
		TransactionCount: len(result.Transactions),
		Transactions:     result.Transactions,
		Skipped:          result.Skipped,
	}
	if resp.Transactions == nil {
		resp.Transactions = []models.ParsedTransaction{}
	}
	if resp.Skipped == nil {
		resp.Skipped = []models.SkippedRow{}
	}
	respondJSON(w, http.StatusOK, resp)
}

// readUpload accepts either a multipart form with a "file" part or a raw CSV
// request body.
func readUpload(r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", errors.New("missing 'file' form field")
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", errors.New("failed to read uploaded file")
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", errors.New("failed to read request body")
	}
	return string(data), nil
}

type bulkRequest struct {
	UserID       int64                `json:"user_id"`
	Transactions []transactionRequest `json:"transactions"`
}

type bulkResponse struct {
	SessionID        string `json:"session_id"`
	TransactionCount int    `json:"transaction_count"`
}

// TransactionsBulk persists a reviewed batch of transactions atomically under
// a new upload session.
func (h *Handler) TransactionsBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := h.db.GetUser(req.UserID); err != nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	if len(req.Transactions) == 0 {
		respondError(w, http.StatusBadRequest, "no transactions to save")
		return
	}

	txns := make([]models.Transaction, 0, len(req.Transactions))
	for i := range req.Transactions {
		req.Transactions[i].UserID = req.UserID
		txn, msg := h.toModel(&req.Transactions[i])
		if msg != "" {
			respondError(w, http.StatusBadRequest, "transaction "+strconv.Itoa(i+1)+": "+msg)
			return
		}
		txns = append(txns, *txn)
	}

	session, err := h.db.CreateTransactions(req.UserID, models.UploadTypeBulk, txns)
	if err != nil {
		h.logger.WithError(err).Error("failed to save bulk transactions")
		respondError(w, http.StatusInternalServerError, "failed to save transactions")
		return
	}

	h.logger.WithFields(
		logging.Field{Key: logging.FieldUser, Value: req.UserID},
		logging.Field{Key: logging.FieldSession, Value: session.PublicID},
		logging.Field{Key: logging.FieldCount, Value: session.TransactionCount},
	).Info("Bulk transactions saved")

	respondJSON(w, http.StatusCreated, bulkResponse{
		SessionID:        session.PublicID,
		TransactionCount: session.TransactionCount,
	})
}
