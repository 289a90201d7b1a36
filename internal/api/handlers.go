/**
 * @description
 * This file contains the HTTP handlers for the accounts-service's API
 * endpoints. Handlers are responsible for parsing incoming requests, calling
 * the appropriate methods on the application service, and writing the HTTP
 * response. They act as the bridge between the web layer and the business
 * logic layer.
 *
 * @dependencies
 * - encoding/json, errors, log, net/http, strings: Standard Go libraries.
 * - github.com/go-chi/chi/v5: URL parameter extraction.
 * - internal/app, internal/domain, internal/store: For service logic, models, and custom errors.
 */

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpay/accounts-service/internal/app"
	"github.com/vaultpay/accounts-service/internal/domain"
	"github.com/vaultpay/accounts-service/internal/store"
)

// AccountHandlers holds the application service that handlers will use.
type AccountHandlers struct {
	service *app.Service
}

// NewAccountHandlers creates a new instance of AccountHandlers.
func NewAccountHandlers(service *app.Service) *AccountHandlers {
	return &AccountHandlers{service: service}
}

// transferResponse is sent back to the client after a successful transfer.
type transferResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CreateAccountHandler handles requests to register a new account.
func (h *AccountHandlers) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("level=warn component=api endpoint=create_account outcome=reject reason=invalid_json err=%v", err)
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Edge validation: non-empty ID and non-negative initial balance.
	if strings.TrimSpace(req.AccountID) == "" {
		h.writeError(w, http.StatusBadRequest, "account_id must not be empty")
		return
	}
	if req.InitialBalance.Sign() < 0 {
		h.writeError(w, http.StatusBadRequest, "initial_balance must not be negative")
		return
	}

	account := domain.Account{ID: req.AccountID, Balance: req.InitialBalance}
	if err := h.service.CreateAccount(r.Context(), account); err != nil {
		log.Printf("level=warn component=api endpoint=create_account outcome=failed account_id=%s err=%v", req.AccountID, err)
		if errors.Is(err, store.ErrDuplicateAccountID) {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Account id %s already exists!", req.AccountID))
			return
		}
		if errors.Is(err, store.ErrNegativeBalance) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("level=info component=api endpoint=create_account outcome=created account_id=%s", req.AccountID)
	h.writeJSON(w, http.StatusCreated, account)
}

// GetAccountHandler handles requests to look up one account by ID.
func (h *AccountHandlers) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	account, err := h.service.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("Account %s not found", accountID))
			return
		}
		log.Printf("level=error component=api endpoint=get_account account_id=%s err=%v", accountID, err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, account)
}

// TransferHandler handles requests to move money between two accounts.
func (h *AccountHandlers) TransferHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("level=warn component=api endpoint=transfer outcome=reject reason=invalid_json err=%v", err)
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(req.FromAccountID) == "" || strings.TrimSpace(req.ToAccountID) == "" {
		h.writeError(w, http.StatusBadRequest, "from_account_id and to_account_id must not be empty")
		return
	}

	err := h.service.Transfer(r.Context(), req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		log.Printf("level=warn component=api endpoint=transfer outcome=failed from=%s to=%s amount=%s err=%v", req.FromAccountID, req.ToAccountID, req.Amount, err)
		// Every domain failure surfaces as a bad request.
		if errors.Is(err, app.ErrInvalidAmount) ||
			errors.Is(err, store.ErrAccountNotFound) ||
			errors.Is(err, store.ErrInsufficientFunds) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("level=info component=api endpoint=transfer outcome=completed from=%s to=%s amount=%s", req.FromAccountID, req.ToAccountID, req.Amount)
	h.writeJSON(w, http.StatusOK, transferResponse{
		Status:  "completed",
		Message: fmt.Sprintf("Transferred %s from %s to %s", req.Amount, req.FromAccountID, req.ToAccountID),
	})
}

func (h *AccountHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (h *AccountHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
