package tests

import (
	"context"
	"math/big"
	"testing"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/consts"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/models"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/services"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Well-known throwaway development key; never funded anywhere real.
const testPrivateKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

var (
	testAccount  = common.HexToAddress("0x25238d7855c60436DA77483CDEDB037291958023")
	testContract = common.HexToAddress("0xC55B44fa88A5389039cECaebcC2D164433908F04")
	testTxHash   = common.HexToHash("0x8f4e9b2d1c6a7e5f3b0d9c8a7b6e5d4c3f2a1b0e9d8c7b6a5f4e3d2c1b0a9f8e")
)

func testDescriptor() models.CallDescriptor {
	return models.CallDescriptor{
		Method: consts.MethodRegisterBorrower,
		Args:   []interface{}{testAccount},
		From:   testAccount,
	}
}

func newOrchestrator(gateway *MockLedgerGateway, maxRetries int) *services.TxOrchestrator {
	// Zero backoff keeps retry tests fast; zero confirmation timeout is fine
	// because AwaitConfirmation is mocked.
	return services.NewTxOrchestrator(gateway, maxRetries, 0, 1, 100000)
}

func expectPricing(gateway *MockLedgerGateway) {
	gateway.On("CurrentGasPrice", mock.Anything).Return(big.NewInt(2000000000), nil)
	gateway.On("EstimateFee", mock.Anything, mock.Anything).Return(uint64(21000), nil)
	gateway.On("EncodeCall", mock.Anything, mock.Anything).Return([]byte{0x01, 0x02}, nil)
	gateway.On("ContractAddress").Return(testContract)
	gateway.On("ChainID").Return(big.NewInt(1337))
}

func expectSubmitPipeline(gateway *MockLedgerGateway) {
	expectPricing(gateway)
	gateway.On("SubmitSigned", mock.Anything, mock.Anything).Return(testTxHash, nil)
}

func TestExecuteSuccess(t *testing.T) {
	gateway := new(MockLedgerGateway)
	gateway.On("CurrentNonce", mock.Anything, testAccount).Return(uint64(7), nil)
	expectSubmitPipeline(gateway)
	gateway.On("AwaitConfirmation", mock.Anything, testTxHash, mock.Anything).
		Return(&models.TransactionReceipt{Success: true, TxHash: testTxHash.Hex(), BlockNumber: 42}, nil)

	receipt, err := newOrchestrator(gateway, 3).Execute(context.Background(), testDescriptor(), testPrivateKey)

	require.NoError(t, err)
	assert.True(t, receipt.Success)
	assert.Equal(t, testTxHash.Hex(), receipt.TxHash)
	gateway.AssertNumberOfCalls(t, "CurrentNonce", 1)
}

func TestExecuteRetriesExhausted(t *testing.T) {
	gateway := new(MockLedgerGateway)
	gateway.On("CurrentNonce", mock.Anything, testAccount).
		Return(uint64(0), consts.ErrorLedgerUnreachable)

	_, err := newOrchestrator(gateway, 3).Execute(context.Background(), testDescriptor(), testPrivateKey)

	require.Error(t, err)
	assert.ErrorIs(t, err, consts.ErrorRetriesExhausted)
	assert.ErrorIs(t, err, consts.ErrorLedgerUnreachable)
	// One initial attempt plus exactly maxRetries retries, never more.
	gateway.AssertNumberOfCalls(t, "CurrentNonce", 4)
}

func TestExecuteFreshNonceEachRetry(t *testing.T) {
	gateway := new(MockLedgerGateway)
	gateway.On("CurrentNonce", mock.Anything, testAccount).Return(uint64(10), nil).Once()
	gateway.On("CurrentNonce", mock.Anything, testAccount).Return(uint64(11), nil).Once()
	expectPricing(gateway)

	var submittedNonces []uint64
	gateway.On("SubmitSigned", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			tx := args.Get(1).(*types.Transaction)
			submittedNonces = append(submittedNonces, tx.Nonce())
		}).
		Return(testTxHash, nil)

	gateway.On("AwaitConfirmation", mock.Anything, testTxHash, mock.Anything).
		Return(nil, consts.ErrorConfirmationTimeout).Once()
	gateway.On("AwaitConfirmation", mock.Anything, testTxHash, mock.Anything).
		Return(&models.TransactionReceipt{Success: true, TxHash: testTxHash.Hex(), BlockNumber: 43}, nil).Once()

	receipt, err := newOrchestrator(gateway, 3).Execute(context.Background(), testDescriptor(), testPrivateKey)

	require.NoError(t, err)
	assert.True(t, receipt.Success)
	assert.Equal(t, []uint64{10, 11}, submittedNonces)
}

func TestExecuteRevertedReceiptNotRetried(t *testing.T) {
	gateway := new(MockLedgerGateway)
	gateway.On("CurrentNonce", mock.Anything, testAccount).Return(uint64(3), nil)
	expectSubmitPipeline(gateway)
	gateway.On("AwaitConfirmation", mock.Anything, testTxHash, mock.Anything).
		Return(&models.TransactionReceipt{Success: false, TxHash: testTxHash.Hex(), BlockNumber: 44}, nil)

	_, err := newOrchestrator(gateway, 3).Execute(context.Background(), testDescriptor(), testPrivateKey)

	require.Error(t, err)
	assert.ErrorIs(t, err, consts.ErrorTransactionReverted)
	gateway.AssertNumberOfCalls(t, "CurrentNonce", 1)
	gateway.AssertNumberOfCalls(t, "SubmitSigned", 1)
}

func TestExecuteEstimationFailureNotRetried(t *testing.T) {
	gateway := new(MockLedgerGateway)
	gateway.On("CurrentNonce", mock.Anything, testAccount).Return(uint64(3), nil)
	gateway.On("CurrentGasPrice", mock.Anything).Return(big.NewInt(2000000000), nil)
	gateway.On("EstimateFee", mock.Anything, mock.Anything).
		Return(uint64(0), consts.ErrorEstimationFailed)

	_, err := newOrchestrator(gateway, 3).Execute(context.Background(), testDescriptor(), testPrivateKey)

	require.Error(t, err)
	assert.ErrorIs(t, err, consts.ErrorEstimationFailed)
	gateway.AssertNumberOfCalls(t, "EstimateFee", 1)
	gateway.AssertNotCalled(t, "SubmitSigned", mock.Anything, mock.Anything)
}

func TestExecuteInvalidPrivateKey(t *testing.T) {
	gateway := new(MockLedgerGateway)
	gateway.On("CurrentNonce", mock.Anything, testAccount).Return(uint64(3), nil)
	expectSubmitPipeline(gateway)

	_, err := newOrchestrator(gateway, 3).Execute(context.Background(), testDescriptor(), "not-a-key")

	require.Error(t, err)
	assert.ErrorIs(t, err, consts.ErrorInvalidPrivateKey)
	gateway.AssertNotCalled(t, "SubmitSigned", mock.Anything, mock.Anything)
}

func TestExecuteRejectsZeroAccount(t *testing.T) {
	gateway := new(MockLedgerGateway)

	descriptor := testDescriptor()
	descriptor.From = common.Address{}
	_, err := newOrchestrator(gateway, 3).Execute(context.Background(), descriptor, testPrivateKey)

	require.Error(t, err)
	assert.ErrorIs(t, err, consts.ErrorInvalidAccount)
	gateway.AssertNotCalled(t, "CurrentNonce", mock.Anything, mock.Anything)
}

func TestExecuteHonorsCancellation(t *testing.T) {
	gateway := new(MockLedgerGateway)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newOrchestrator(gateway, 3).Execute(ctx, testDescriptor(), testPrivateKey)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	gateway.AssertNotCalled(t, "CurrentNonce", mock.Anything, mock.Anything)
}
