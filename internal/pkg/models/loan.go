package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// CallDescriptor is a fully prepared contract invocation: method, arguments,
// attached value in wei and the acting account. Built fresh per operation.
type CallDescriptor struct {
	Method string
	Args   []interface{}
	Value  *big.Int
	From   common.Address
}

type TransactionReceipt struct {
	Success     bool   `json:"success"`
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
}

type Loan struct {
	ID          uint64 `json:"id"`
	Amount      string `json:"amount"`
	Term        uint64 `json:"term_seconds"`
	RequestedAt string `json:"requested_at"`
	Status      string `json:"status"`
}

// LoanDetail extends the list row with the borrower and the due date, which
// the contract only returns on the detail query.
type LoanDetail struct {
	Loan
	Borrower string `json:"borrower"`
	DueAt    string `json:"due_at"`
}

type CollateralAccount struct {
	Address   string `json:"address"`
	Activated bool   `json:"activated"`
	Balance   string `json:"balance"`
}
