package services

import (
	"context"
	"math/big"
	"time"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// LedgerGateway is the network boundary toward the ledger node and the
// deployed contract. Implemented by ledger.Gateway, mocked in tests.
type LedgerGateway interface {
	ReadCall(ctx context.Context, method string, args ...interface{}) ([]interface{}, error)
	CurrentNonce(ctx context.Context, account common.Address) (uint64, error)
	CurrentGasPrice(ctx context.Context) (*big.Int, error)
	EstimateFee(ctx context.Context, descriptor models.CallDescriptor) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	EncodeCall(method string, args ...interface{}) ([]byte, error)
	ContractAddress() common.Address
	ChainID() *big.Int
	SubmitSigned(ctx context.Context, tx *types.Transaction) (common.Hash, error)
	AwaitConfirmation(ctx context.Context, txHash common.Hash, timeout time.Duration) (*models.TransactionReceipt, error)
}

// TransactionExecutor signs, submits and confirms a prepared call
// descriptor. Implemented by TxOrchestrator.
type TransactionExecutor interface {
	Execute(ctx context.Context, descriptor models.CallDescriptor, privateKeyHex string) (*models.TransactionReceipt, error)
}

type LoanServiceInterface interface {
	RegisterOfficer(ctx context.Context, caller, privateKey, newOfficer string) (*models.TransactionReceipt, error)
	RegisterBorrower(ctx context.Context, caller, privateKey, newBorrower string) (*models.TransactionReceipt, error)
	DepositCollateral(ctx context.Context, caller, privateKey, amount string) (*models.TransactionReceipt, error)
	RequestLoan(ctx context.Context, caller, privateKey, amount string, termSeconds uint64) (*models.TransactionReceipt, error)
	ApproveLoan(ctx context.Context, caller, privateKey, borrower string, loanID uint64) (*models.TransactionReceipt, error)
	RepayLoan(ctx context.Context, caller, privateKey string, loanID uint64, amount string) (*models.TransactionReceipt, error)
	LiquidateCollateral(ctx context.Context, caller, privateKey, borrower string, loanID uint64) (*models.TransactionReceipt, error)
	LoansByBorrower(ctx context.Context, borrower string) ([]models.Loan, error)
	LoanDetail(ctx context.Context, borrower string, loanID uint64) (*models.LoanDetail, error)
	CollateralAccount(ctx context.Context, account string) (*models.CollateralAccount, error)
}
