package services

import (
	"context"
	"math/big"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/consts"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/ledger"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/logger"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/models"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/utils"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// LoanService exposes the nine domain operations over the lending contract.
// Every operation validates its inputs and runs its authorization pre-check
// against current ledger state before any fee can be spent. Role reads are
// never cached across operations.
type LoanService struct {
	gateway  LedgerGateway
	executor TransactionExecutor
}

func NewLoanService(gateway LedgerGateway, executor TransactionExecutor) *LoanService {
	return &LoanService{gateway: gateway, executor: executor}
}

// RegisterOfficer authorizes a new loan officer. Only the principal issuer
// or an existing officer may call it.
func (s *LoanService) RegisterOfficer(ctx context.Context, caller, privateKey, newOfficer string) (*models.TransactionReceipt, error) {
	from, err := callerAddress(caller)
	if err != nil {
		return nil, err
	}
	officer, err := utils.ValidateAddress(newOfficer)
	if err != nil {
		return nil, err
	}

	isIssuer, err := s.isPrincipalIssuer(ctx, from)
	if err != nil {
		return nil, err
	}
	if !isIssuer {
		isOfficer, err := s.isOfficer(ctx, from)
		if err != nil {
			return nil, err
		}
		if !isOfficer {
			logger.Warn(ctx, "register officer rejected, caller %s not authorized", from.Hex())
			return nil, consts.ErrorNotAuthorized
		}
	}

	logger.Info(ctx, "registering officer %s", officer.Hex())
	return s.executor.Execute(ctx, models.CallDescriptor{
		Method: consts.MethodRegisterOfficer,
		Args:   []interface{}{officer},
		From:   from,
	}, privateKey)
}

// RegisterBorrower activates a new borrower account. Officer-only.
func (s *LoanService) RegisterBorrower(ctx context.Context, caller, privateKey, newBorrower string) (*models.TransactionReceipt, error) {
	from, err := callerAddress(caller)
	if err != nil {
		return nil, err
	}
	borrower, err := utils.ValidateAddress(newBorrower)
	if err != nil {
		return nil, err
	}

	if err := s.requireOfficer(ctx, from); err != nil {
		return nil, err
	}

	logger.Info(ctx, "registering borrower %s", borrower.Hex())
	return s.executor.Execute(ctx, models.CallDescriptor{
		Method: consts.MethodRegisterBorrower,
		Args:   []interface{}{borrower},
		From:   from,
	}, privateKey)
}

// DepositCollateral attaches the given display-unit amount as collateral.
// The caller must be activated and hold enough balance to cover the value.
func (s *LoanService) DepositCollateral(ctx context.Context, caller, privateKey, amount string) (*models.TransactionReceipt, error) {
	from, err := callerAddress(caller)
	if err != nil {
		return nil, err
	}
	value, err := positiveBaseUnits(amount)
	if err != nil {
		return nil, err
	}

	if err := s.requireActivated(ctx, from); err != nil {
		return nil, err
	}

	balance, err := s.gateway.BalanceAt(ctx, from)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(value) < 0 {
		logger.Warn(ctx, "deposit rejected, balance of %s below attached value", from.Hex())
		return nil, consts.ErrorInsufficientFunds
	}

	logger.Info(ctx, "depositing collateral of %s from %s", amount, from.Hex())
	return s.executor.Execute(ctx, models.CallDescriptor{
		Method: consts.MethodDepositCollateral,
		Value:  value,
		From:   from,
	}, privateKey)
}

// RequestLoan opens a Pending loan for the calling borrower. Term is
// denominated in seconds.
func (s *LoanService) RequestLoan(ctx context.Context, caller, privateKey, amount string, termSeconds uint64) (*models.TransactionReceipt, error) {
	from, err := callerAddress(caller)
	if err != nil {
		return nil, err
	}
	amountWei, err := positiveBaseUnits(amount)
	if err != nil {
		return nil, err
	}
	if termSeconds == 0 {
		return nil, consts.ErrorInvalidAmount
	}

	if err := s.requireActivated(ctx, from); err != nil {
		return nil, err
	}

	logger.Info(ctx, "requesting loan of %s for %d seconds from %s", amount, termSeconds, from.Hex())
	return s.executor.Execute(ctx, models.CallDescriptor{
		Method: consts.MethodRequestLoan,
		Args:   []interface{}{amountWei, new(big.Int).SetUint64(termSeconds)},
		From:   from,
	}, privateKey)
}

// ApproveLoan moves a borrower's Pending loan to Approved. Officer-only.
func (s *LoanService) ApproveLoan(ctx context.Context, caller, privateKey, borrower string, loanID uint64) (*models.TransactionReceipt, error) {
	from, err := callerAddress(caller)
	if err != nil {
		return nil, err
	}
	borrowerAddr, err := utils.ValidateAddress(borrower)
	if err != nil {
		return nil, err
	}

	if err := s.requireOfficer(ctx, from); err != nil {
		return nil, err
	}

	logger.Info(ctx, "approving loan %d for borrower %s", loanID, borrowerAddr.Hex())
	return s.executor.Execute(ctx, models.CallDescriptor{
		Method: consts.MethodApproveLoan,
		Args:   []interface{}{borrowerAddr, new(big.Int).SetUint64(loanID)},
		From:   from,
	}, privateKey)
}

// RepayLoan repays the caller's loan, attaching the repayment as value.
func (s *LoanService) RepayLoan(ctx context.Context, caller, privateKey string, loanID uint64, amount string) (*models.TransactionReceipt, error) {
	from, err := callerAddress(caller)
	if err != nil {
		return nil, err
	}
	value, err := positiveBaseUnits(amount)
	if err != nil {
		return nil, err
	}

	if err := s.requireActivated(ctx, from); err != nil {
		return nil, err
	}

	logger.Info(ctx, "repaying loan %d from %s", loanID, from.Hex())
	return s.executor.Execute(ctx, models.CallDescriptor{
		Method: consts.MethodRepayLoan,
		Args:   []interface{}{new(big.Int).SetUint64(loanID)},
		Value:  value,
		From:   from,
	}, privateKey)
}

// LiquidateCollateral seizes collateral for a defaulted loan. Officer-only.
func (s *LoanService) LiquidateCollateral(ctx context.Context, caller, privateKey, borrower string, loanID uint64) (*models.TransactionReceipt, error) {
	from, err := callerAddress(caller)
	if err != nil {
		return nil, err
	}
	borrowerAddr, err := utils.ValidateAddress(borrower)
	if err != nil {
		return nil, err
	}

	if err := s.requireOfficer(ctx, from); err != nil {
		return nil, err
	}

	logger.Info(ctx, "liquidating collateral of loan %d for borrower %s", loanID, borrowerAddr.Hex())
	return s.executor.Execute(ctx, models.CallDescriptor{
		Method: consts.MethodLiquidateCollateral,
		Args:   []interface{}{borrowerAddr, new(big.Int).SetUint64(loanID)},
		From:   from,
	}, privateKey)
}

// LoansByBorrower lists a borrower's loans with display-unit amounts and
// readable timestamps.
func (s *LoanService) LoansByBorrower(ctx context.Context, borrower string) ([]models.Loan, error) {
	borrowerAddr, err := utils.ValidateAddress(borrower)
	if err != nil {
		return nil, err
	}

	outs, err := s.gateway.ReadCall(ctx, consts.MethodLoansByBorrower, borrowerAddr)
	if err != nil {
		return nil, err
	}

	records := *abi.ConvertType(outs[0], new([]ledger.LoanRecord)).(*[]ledger.LoanRecord)
	loans := make([]models.Loan, 0, len(records))
	for _, rec := range records {
		loans = append(loans, models.Loan{
			ID:          rec.Id.Uint64(),
			Amount:      utils.ToDisplayUnits(rec.Amount),
			Term:        rec.Term.Uint64(),
			RequestedAt: utils.FormatTimestamp(rec.RequestedAt.Uint64()),
			Status:      utils.MapLoanStatus(rec.Status),
		})
	}
	return loans, nil
}

// LoanDetail fetches one loan including its due date. A record the contract
// has never written comes back with status Unknown rather than a fabricated
// Pending loan.
func (s *LoanService) LoanDetail(ctx context.Context, borrower string, loanID uint64) (*models.LoanDetail, error) {
	borrowerAddr, err := utils.ValidateAddress(borrower)
	if err != nil {
		return nil, err
	}

	outs, err := s.gateway.ReadCall(ctx, consts.MethodLoanDetail, borrowerAddr, new(big.Int).SetUint64(loanID))
	if err != nil {
		return nil, err
	}

	id := outs[0].(*big.Int)
	loanBorrower := outs[1].(common.Address)
	amount := outs[2].(*big.Int)
	term := outs[3].(*big.Int)
	requestedAt := outs[4].(*big.Int)
	dueAt := outs[5].(*big.Int)
	status := outs[6].(uint8)

	detail := &models.LoanDetail{
		Loan: models.Loan{
			ID:          id.Uint64(),
			Amount:      utils.ToDisplayUnits(amount),
			Term:        term.Uint64(),
			RequestedAt: utils.FormatTimestamp(requestedAt.Uint64()),
			Status:      utils.MapLoanStatus(status),
		},
		Borrower: loanBorrower.Hex(),
		DueAt:    utils.FormatTimestamp(dueAt.Uint64()),
	}
	if amount.Sign() == 0 && requestedAt.Sign() == 0 {
		detail.Status = consts.LoanStatusUnknown
	}
	return detail, nil
}

func (s *LoanService) isPrincipalIssuer(ctx context.Context, account common.Address) (bool, error) {
	outs, err := s.gateway.ReadCall(ctx, consts.MethodPrincipalIssuer)
	if err != nil {
		return false, err
	}
	return outs[0].(common.Address) == account, nil
}

func (s *LoanService) isOfficer(ctx context.Context, account common.Address) (bool, error) {
	outs, err := s.gateway.ReadCall(ctx, consts.MethodOfficers, account)
	if err != nil {
		return false, err
	}
	return outs[0].(bool), nil
}

func (s *LoanService) requireOfficer(ctx context.Context, account common.Address) error {
	isOfficer, err := s.isOfficer(ctx, account)
	if err != nil {
		return err
	}
	if !isOfficer {
		logger.Warn(ctx, "caller %s is not an authorized officer", account.Hex())
		return consts.ErrorNotAuthorized
	}
	return nil
}

func (s *LoanService) requireActivated(ctx context.Context, account common.Address) error {
	outs, err := s.gateway.ReadCall(ctx, consts.MethodAccounts, account)
	if err != nil {
		return err
	}
	if !outs[0].(bool) {
		logger.Warn(ctx, "account %s is not activated", account.Hex())
		return consts.ErrorNotActivated
	}
	return nil
}

// CollateralAccount reads the activation flag and collateral balance for an
// address.
func (s *LoanService) CollateralAccount(ctx context.Context, account string) (*models.CollateralAccount, error) {
	addr, err := utils.ValidateAddress(account)
	if err != nil {
		return nil, err
	}
	outs, err := s.gateway.ReadCall(ctx, consts.MethodAccounts, addr)
	if err != nil {
		return nil, err
	}
	return &models.CollateralAccount{
		Address:   addr.Hex(),
		Activated: outs[0].(bool),
		Balance:   utils.ToDisplayUnits(outs[1].(*big.Int)),
	}, nil
}

func callerAddress(caller string) (common.Address, error) {
	addr, err := utils.ValidateAddress(caller)
	if err != nil {
		return common.Address{}, consts.ErrorInvalidAccount
	}
	return addr, nil
}

// positiveBaseUnits converts and enforces the strictly-positive rule shared
// by the deposit, request and repayment operations.
func positiveBaseUnits(amount string) (*big.Int, error) {
	value, err := utils.ToBaseUnits(amount)
	if err != nil {
		return nil, err
	}
	if value.Sign() <= 0 {
		return nil, consts.ErrorInvalidAmount
	}
	return value, nil
}
