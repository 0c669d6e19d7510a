package api

import "github.com/eazybank/accounts/internal/service"

// Response status constants shared by the acknowledgement payloads.
const (
	StatusCreated  = "201"
	MessageCreated = "Account created successfully"

	StatusOK  = "200"
	MessageOK = "Request processed successfully"

	StatusExpectationFailed = "417"
	MessageUpdateFailed     = "Update operation failed. Please try again or contact Dev team"
	MessageDeleteFailed     = "Delete operation failed. Please try again or contact Dev team"
)

// CreateAccountRequest is the request body for creating a new customer
// and account.
type CreateAccountRequest struct {
	Name         string `json:"name" validate:"required,min=5,max=30"`
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobileNumber" validate:"required,len=10,number"`
}

// AccountRequest is the account half of the composite update payload.
type AccountRequest struct {
	AccountNumber int64  `json:"accountNumber" validate:"required,min=1000000000,max=1999999999"`
	AccountType   string `json:"accountType" validate:"required,oneof=Savings Checking"`
	BranchAddress string `json:"branchAddress" validate:"required"`
}

// UpdateAccountRequest is the full composite customer+account payload for
// update. The account number identifies the account side.
type UpdateAccountRequest struct {
	Name         string         `json:"name" validate:"required,min=5,max=30"`
	Email        string         `json:"email" validate:"required,email"`
	MobileNumber string         `json:"mobileNumber" validate:"required,len=10,number"`
	Account      AccountRequest `json:"account" validate:"required"`
}

// AccountResponse is the account half of the composite fetch view.
type AccountResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	BranchAddress string `json:"branchAddress"`
}

// CustomerResponse is the composite customer+account view returned by
// fetch. Audit fields are never exposed.
type CustomerResponse struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	MobileNumber string          `json:"mobileNumber"`
	Account      AccountResponse `json:"account"`
}

// AckResponse is the generic acknowledgement payload for mutations.
type AckResponse struct {
	StatusCode string `json:"statusCode"`
	StatusMsg  string `json:"statusMsg"`
}

// customerDetailsToResponse converts the service projection to the
// response DTO.
func customerDetailsToResponse(details *service.CustomerDetails) CustomerResponse {
	return CustomerResponse{
		Name:         details.Name,
		Email:        details.Email,
		MobileNumber: details.MobileNumber,
		Account: AccountResponse{
			AccountNumber: details.Account.AccountNumber,
			AccountType:   string(details.Account.AccountType),
			BranchAddress: details.Account.BranchAddress,
		},
	}
}
