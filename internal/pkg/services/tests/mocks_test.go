package tests

import (
	"context"
	"math/big"
	"time"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
)

type MockLedgerGateway struct {
	mock.Mock
}

func (m *MockLedgerGateway) ReadCall(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	callArgs := m.Called(ctx, method, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).([]interface{}), callArgs.Error(1)
}

func (m *MockLedgerGateway) CurrentNonce(ctx context.Context, account common.Address) (uint64, error) {
	callArgs := m.Called(ctx, account)
	return callArgs.Get(0).(uint64), callArgs.Error(1)
}

func (m *MockLedgerGateway) CurrentGasPrice(ctx context.Context) (*big.Int, error) {
	callArgs := m.Called(ctx)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*big.Int), callArgs.Error(1)
}

func (m *MockLedgerGateway) EstimateFee(ctx context.Context, descriptor models.CallDescriptor) (uint64, error) {
	callArgs := m.Called(ctx, descriptor)
	return callArgs.Get(0).(uint64), callArgs.Error(1)
}

func (m *MockLedgerGateway) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	callArgs := m.Called(ctx, account)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*big.Int), callArgs.Error(1)
}

func (m *MockLedgerGateway) EncodeCall(method string, args ...interface{}) ([]byte, error) {
	callArgs := m.Called(method, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).([]byte), callArgs.Error(1)
}

func (m *MockLedgerGateway) ContractAddress() common.Address {
	callArgs := m.Called()
	return callArgs.Get(0).(common.Address)
}

func (m *MockLedgerGateway) ChainID() *big.Int {
	callArgs := m.Called()
	return callArgs.Get(0).(*big.Int)
}

func (m *MockLedgerGateway) SubmitSigned(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	callArgs := m.Called(ctx, tx)
	return callArgs.Get(0).(common.Hash), callArgs.Error(1)
}

func (m *MockLedgerGateway) AwaitConfirmation(ctx context.Context, txHash common.Hash, timeout time.Duration) (*models.TransactionReceipt, error) {
	callArgs := m.Called(ctx, txHash, timeout)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*models.TransactionReceipt), callArgs.Error(1)
}

type MockTransactionExecutor struct {
	mock.Mock
}

func (m *MockTransactionExecutor) Execute(ctx context.Context, descriptor models.CallDescriptor, privateKeyHex string) (*models.TransactionReceipt, error) {
	callArgs := m.Called(ctx, descriptor, privateKeyHex)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*models.TransactionReceipt), callArgs.Error(1)
}
