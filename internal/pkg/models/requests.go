package models

// HTTP request bodies for the mutating operations. The private key is
// request-scoped only: it is never persisted and never logged.

type RegisterOfficerRequest struct {
	Caller     string `json:"caller" binding:"required"`
	PrivateKey string `json:"private_key" binding:"required"`
	NewOfficer string `json:"new_officer" binding:"required"`
}

type RegisterBorrowerRequest struct {
	Caller      string `json:"caller" binding:"required"`
	PrivateKey  string `json:"private_key" binding:"required"`
	NewBorrower string `json:"new_borrower" binding:"required"`
}

type DepositCollateralRequest struct {
	Caller     string `json:"caller" binding:"required"`
	PrivateKey string `json:"private_key" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

type RequestLoanRequest struct {
	Caller      string `json:"caller" binding:"required"`
	PrivateKey  string `json:"private_key" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	TermSeconds uint64 `json:"term_seconds" binding:"required"`
}

type ApproveLoanRequest struct {
	Caller     string `json:"caller" binding:"required"`
	PrivateKey string `json:"private_key" binding:"required"`
	Borrower   string `json:"borrower" binding:"required"`
	LoanID     uint64 `json:"loan_id"`
}

type RepayLoanRequest struct {
	Caller     string `json:"caller" binding:"required"`
	PrivateKey string `json:"private_key" binding:"required"`
	LoanID     uint64 `json:"loan_id"`
	Amount     string `json:"amount" binding:"required"`
}

type LiquidateCollateralRequest struct {
	Caller     string `json:"caller" binding:"required"`
	PrivateKey string `json:"private_key" binding:"required"`
	Borrower   string `json:"borrower" binding:"required"`
	LoanID     uint64 `json:"loan_id"`
}
