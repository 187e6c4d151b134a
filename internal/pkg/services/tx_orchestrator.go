package services

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/consts"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/logger"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// TxOrchestrator turns a call descriptor into a signed, priced, confirmed
// ledger transaction. Transient failures are retried a bounded number of
// times with a fresh nonce per attempt; contract-logic failures are never
// retried.
type TxOrchestrator struct {
	gateway        LedgerGateway
	maxRetries     int
	backoff        time.Duration
	confirmTimeout time.Duration
	gasHeadroom    uint64

	mu           sync.Mutex
	accountLocks map[common.Address]*sync.Mutex
}

func NewTxOrchestrator(gateway LedgerGateway, maxRetries, backoffSeconds, confirmationTimeoutSeconds int, gasHeadroom uint64) *TxOrchestrator {
	return &TxOrchestrator{
		gateway:        gateway,
		maxRetries:     maxRetries,
		backoff:        time.Duration(backoffSeconds) * time.Second,
		confirmTimeout: time.Duration(confirmationTimeoutSeconds) * time.Second,
		gasHeadroom:    gasHeadroom,
		accountLocks:   make(map[common.Address]*sync.Mutex),
	}
}

// Execute runs the full pipeline: estimate, sign, submit, confirm. On a
// transient failure it restarts from the top so the next attempt gets a
// fresh nonce; a stale nonce is never reused.
func (o *TxOrchestrator) Execute(ctx context.Context, descriptor models.CallDescriptor, privateKeyHex string) (*models.TransactionReceipt, error) {
	if descriptor.From == (common.Address{}) {
		return nil, consts.ErrorInvalidAccount
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		receipt, err := o.attempt(ctx, descriptor, privateKeyHex)
		if err == nil {
			if !receipt.Success {
				// The ledger included the transaction but contract logic
				// reverted it; resubmitting cannot end differently.
				logger.Error(ctx, "transaction %s reverted on chain", receipt.TxHash)
				return nil, consts.ErrorTransactionReverted
			}
			return receipt, nil
		}

		if !isTransient(err) {
			return nil, err
		}

		lastErr = err
		if attempt >= o.maxRetries {
			logger.Error(ctx, "transaction failed after %d attempts: %v", attempt+1, lastErr)
			return nil, consts.ErrorRetriesExhausted.WithCause(lastErr)
		}

		logger.Warn(ctx, "transient ledger failure, retrying in %s: %v", o.backoff, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(o.backoff):
		}
	}
}

func (o *TxOrchestrator) attempt(ctx context.Context, descriptor models.CallDescriptor, privateKeyHex string) (*models.TransactionReceipt, error) {
	txHash, err := o.submit(ctx, descriptor, privateKeyHex)
	if err != nil {
		return nil, err
	}
	return o.gateway.AwaitConfirmation(ctx, txHash, o.confirmTimeout)
}

// submit holds the per-account lock from nonce acquisition through
// broadcast so concurrent submissions from one account cannot collide on a
// nonce.
func (o *TxOrchestrator) submit(ctx context.Context, descriptor models.CallDescriptor, privateKeyHex string) (common.Hash, error) {
	lock := o.lockFor(descriptor.From)
	lock.Lock()
	defer lock.Unlock()

	nonce, err := o.gateway.CurrentNonce(ctx, descriptor.From)
	if err != nil {
		return common.Hash{}, err
	}

	gasPrice, err := o.gateway.CurrentGasPrice(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	gas, err := o.gateway.EstimateFee(ctx, descriptor)
	if err != nil {
		return common.Hash{}, err
	}

	data, err := o.gateway.EncodeCall(descriptor.Method, descriptor.Args...)
	if err != nil {
		return common.Hash{}, err
	}

	value := descriptor.Value
	if value == nil {
		value = new(big.Int)
	}

	contract := o.gateway.ContractAddress()
	unsigned := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas + o.gasHeadroom,
		To:       &contract,
		Value:    value,
		Data:     data,
	})

	signed, err := o.sign(unsigned, privateKeyHex)
	if err != nil {
		return common.Hash{}, err
	}

	return o.gateway.SubmitSigned(ctx, signed)
}

// sign parses the key, signs, and wipes the parsed key material before
// returning; the key never outlives the signing step.
func (o *TxOrchestrator) sign(unsigned *types.Transaction, privateKeyHex string) (*types.Transaction, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, consts.ErrorInvalidPrivateKey.WithCause(err)
	}
	defer key.D.SetInt64(0)

	signed, err := types.SignTx(unsigned, types.NewEIP155Signer(o.gateway.ChainID()), key)
	if err != nil {
		return nil, consts.ErrorInvalidPrivateKey.WithCause(err)
	}
	return signed, nil
}

func (o *TxOrchestrator) lockFor(account common.Address) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	lock, ok := o.accountLocks[account]
	if !ok {
		lock = &sync.Mutex{}
		o.accountLocks[account] = lock
	}
	return lock
}

func isTransient(err error) bool {
	return errors.Is(err, consts.ErrorLedgerUnreachable) || errors.Is(err, consts.ErrorConfirmationTimeout)
}
