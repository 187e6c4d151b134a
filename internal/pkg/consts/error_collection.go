package consts

import "github.com/ElWaje/PrestamoDefi/internal/pkg/models"

var (
	ErrorInvalidAddress = &models.CustomError{
		Code:    "PRESTAMODEFI_VALIDATION_ADDRESS_INVALID",
		Message: "Address is not a valid ledger address",
	}
	ErrorInvalidAmount = &models.CustomError{
		Code:    "PRESTAMODEFI_VALIDATION_AMOUNT_INVALID",
		Message: "Amount is not a valid non-negative decimal",
	}
	ErrorInvalidAccount = &models.CustomError{
		Code:    "PRESTAMODEFI_VALIDATION_ACCOUNT_INVALID",
		Message: "Acting account address is malformed",
	}
	ErrorInvalidPrivateKey = &models.CustomError{
		Code:    "PRESTAMODEFI_VALIDATION_PRIVATE_KEY_INVALID",
		Message: "Private key is structurally invalid",
	}
	ErrorNotAuthorized = &models.CustomError{
		Code:    "PRESTAMODEFI_AUTH_NOT_AUTHORIZED",
		Message: "Caller has no permission for this action",
	}
	ErrorNotActivated = &models.CustomError{
		Code:    "PRESTAMODEFI_AUTH_ACCOUNT_NOT_ACTIVATED",
		Message: "Account is not an activated client",
	}
	ErrorInsufficientFunds = &models.CustomError{
		Code:    "PRESTAMODEFI_VALIDATION_INSUFFICIENT_FUNDS",
		Message: "Account balance cannot cover the attached value",
	}
	ErrorLedgerUnreachable = &models.CustomError{
		Code:    "PRESTAMODEFI_LEDGER_UNREACHABLE",
		Message: "Ledger node did not respond",
	}
	ErrorConfirmationTimeout = &models.CustomError{
		Code:    "PRESTAMODEFI_LEDGER_CONFIRMATION_TIMEOUT",
		Message: "Transaction not confirmed within the timeout",
	}
	ErrorEstimationFailed = &models.CustomError{
		Code:    "PRESTAMODEFI_LEDGER_ESTIMATION_FAILED",
		Message: "Ledger rejected the transaction dry-run",
	}
	ErrorTransactionReverted = &models.CustomError{
		Code:    "PRESTAMODEFI_LEDGER_TRANSACTION_REVERTED",
		Message: "Contract logic rejected the transaction",
	}
	ErrorTransactionNotFound = &models.CustomError{
		Code:    "PRESTAMODEFI_LEDGER_TRANSACTION_NOT_FOUND",
		Message: "Transaction not found after submission",
	}
	ErrorRetriesExhausted = &models.CustomError{
		Code:    "PRESTAMODEFI_LEDGER_RETRIES_EXHAUSTED",
		Message: "Transaction failed after all retry attempts",
	}
)
