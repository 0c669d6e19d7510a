package api

import (
	"log/slog"
	"net/http"

	"github.com/eazybank/accounts/internal/api/shared"
	"github.com/eazybank/accounts/internal/domain"
	"github.com/eazybank/accounts/internal/service"
)

// mobileNumberQueryTag validates the mobileNumber query parameter: empty
// or exactly 10 digits, mirroring the request-body constraint. The number
// tag rejects signs and decimal points that numeric would let through.
const mobileNumberQueryTag = "omitempty,len=10,number"

// AccountsHandler handles the customer+account CRUD HTTP requests.
type AccountsHandler struct {
	accountsService service.AccountsService
	logger          *slog.Logger
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(accountsService service.AccountsService, logger *slog.Logger) *AccountsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountsHandler{
		accountsService: accountsService,
		logger:          logger.With(slog.String("component", "accounts_handler")),
	}
}

// CreateAccount handles POST /api/create requests.
// Success answers 201 with a generic acknowledgement; the generated
// identifiers are deliberately not returned.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, BuildValidationErrors(err))
		return
	}

	err := h.accountsService.CreateAccount(r.Context(), service.CreateCustomerInput{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AckResponse{
		StatusCode: StatusCreated,
		StatusMsg:  MessageCreated,
	})
}

// FetchAccount handles GET /api/fetch?mobileNumber= requests.
func (h *AccountsHandler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := shared.ValidateVar(mobileNumber, mobileNumberQueryTag); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, map[string]string{
			"mobileNumber": "Mobile number must be 10 digits",
		})
		return
	}

	details, err := h.accountsService.FetchAccount(r.Context(), mobileNumber)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, customerDetailsToResponse(details))
}

// UpdateAccount handles PUT /api/update requests.
// A missing account is a soft failure answered with 417 and a fixed
// "update failed" message rather than a 4xx error payload.
func (h *AccountsHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req UpdateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, BuildValidationErrors(err))
		return
	}

	updated, err := h.accountsService.UpdateAccount(r.Context(), service.UpdateAccountInput{
		Name:          req.Name,
		Email:         req.Email,
		MobileNumber:  req.MobileNumber,
		AccountNumber: req.Account.AccountNumber,
		AccountType:   domain.AccountType(req.Account.AccountType),
		BranchAddress: req.Account.BranchAddress,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if !updated {
		shared.RespondWithJSON(w, r, http.StatusExpectationFailed, AckResponse{
			StatusCode: StatusExpectationFailed,
			StatusMsg:  MessageUpdateFailed,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AckResponse{
		StatusCode: StatusOK,
		StatusMsg:  MessageOK,
	})
}

// DeleteAccount handles DELETE /api/delete?mobileNumber= requests.
// A missing customer is a soft failure answered with 417 and a fixed
// "delete failed" message.
func (h *AccountsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := shared.ValidateVar(mobileNumber, mobileNumberQueryTag); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, map[string]string{
			"mobileNumber": "Mobile number must be 10 digits",
		})
		return
	}

	deleted, err := h.accountsService.DeleteAccount(r.Context(), mobileNumber)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if !deleted {
		shared.RespondWithJSON(w, r, http.StatusExpectationFailed, AckResponse{
			StatusCode: StatusExpectationFailed,
			StatusMsg:  MessageDeleteFailed,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AckResponse{
		StatusCode: StatusOK,
		StatusMsg:  MessageOK,
	})
}
