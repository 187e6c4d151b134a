package ledger

import (
	"context"
	"errors"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/consts"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/logger"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/models"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/utils"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

const receiptPollInterval = time.Second

// Gateway is the single connection to the ledger node plus the handle to
// the deployed lending contract. Safe for concurrent use; submission
// ordering per account is the orchestrator's concern.
type Gateway struct {
	client   *ethclient.Client
	contract common.Address
	abi      abi.ABI
	chainID  *big.Int
}

func NewGateway(ctx context.Context, nodeURL, contractAddress, abiPath string) (*Gateway, error) {
	contract, err := utils.ValidateAddress(contractAddress)
	if err != nil {
		return nil, err
	}

	abiJSON := defaultContractABI
	if abiPath != "" {
		raw, err := os.ReadFile(abiPath)
		if err != nil {
			return nil, err
		}
		abiJSON = string(raw)
	}
	parsedABI, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, err
	}

	client, err := ethclient.DialContext(ctx, nodeURL)
	if err != nil {
		return nil, consts.ErrorLedgerUnreachable.WithCause(err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, consts.ErrorLedgerUnreachable.WithCause(err)
	}
	logger.Info(ctx, "connected to ledger node %s, chain id %s, contract %s", nodeURL, chainID, contract.Hex())

	return &Gateway{
		client:   client,
		contract: contract,
		abi:      parsedABI,
		chainID:  chainID,
	}, nil
}

func (g *Gateway) ContractAddress() common.Address {
	return g.contract
}

func (g *Gateway) ChainID() *big.Int {
	return new(big.Int).Set(g.chainID)
}

// EncodeCall packs a contract method invocation into calldata.
func (g *Gateway) EncodeCall(method string, args ...interface{}) ([]byte, error) {
	return g.abi.Pack(method, args...)
}

// ReadCall executes a read-only query against the current ledger state. No
// fee, no signing, no confirmation wait.
func (g *Gateway) ReadCall(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := g.abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	raw, err := g.client.CallContract(ctx, ethereum.CallMsg{To: &g.contract, Data: data}, nil)
	if err != nil {
		if isRevert(err) {
			return nil, consts.ErrorTransactionReverted.WithCause(err)
		}
		return nil, consts.ErrorLedgerUnreachable.WithCause(err)
	}

	return g.abi.Unpack(method, raw)
}

func (g *Gateway) CurrentNonce(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := g.client.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, consts.ErrorLedgerUnreachable.WithCause(err)
	}
	return nonce, nil
}

func (g *Gateway) CurrentGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, consts.ErrorLedgerUnreachable.WithCause(err)
	}
	return price, nil
}

// EstimateFee dry-runs the descriptor against the node. A revert here means
// contract logic would reject the transaction, surfaced before any fee is
// spent.
func (g *Gateway) EstimateFee(ctx context.Context, descriptor models.CallDescriptor) (uint64, error) {
	data, err := g.abi.Pack(descriptor.Method, descriptor.Args...)
	if err != nil {
		return 0, err
	}

	msg := ethereum.CallMsg{
		From:  descriptor.From,
		To:    &g.contract,
		Value: descriptor.Value,
		Data:  data,
	}
	gas, err := g.client.EstimateGas(ctx, msg)
	if err != nil {
		if isRevert(err) {
			return 0, consts.ErrorEstimationFailed.WithCause(err)
		}
		return 0, consts.ErrorLedgerUnreachable.WithCause(err)
	}
	return gas, nil
}

func (g *Gateway) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := g.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, consts.ErrorLedgerUnreachable.WithCause(err)
	}
	return balance, nil
}

// SubmitSigned broadcasts a fully signed transaction and returns its hash
// without waiting for inclusion.
func (g *Gateway) SubmitSigned(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	if err := g.client.SendTransaction(ctx, tx); err != nil {
		return common.Hash{}, consts.ErrorLedgerUnreachable.WithCause(err)
	}
	return tx.Hash(), nil
}

// AwaitConfirmation polls for the transaction receipt until it is included
// or the timeout elapses.
func (g *Gateway) AwaitConfirmation(ctx context.Context, txHash common.Hash, timeout time.Duration) (*models.TransactionReceipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := g.client.TransactionReceipt(waitCtx, txHash)
		if err == nil {
			return &models.TransactionReceipt{
				Success:     receipt.Status == types.ReceiptStatusSuccessful,
				TxHash:      txHash.Hex(),
				BlockNumber: receipt.BlockNumber.Uint64(),
			}, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, consts.ErrorLedgerUnreachable.WithCause(err)
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Distinguish a transaction still sitting in the pool from one
			// the node never saw at all.
			if _, _, err := g.client.TransactionByHash(ctx, txHash); errors.Is(err, ethereum.NotFound) {
				return nil, consts.ErrorTransactionNotFound
			}
			return nil, consts.ErrorConfirmationTimeout
		case <-ticker.C:
		}
	}
}

func (g *Gateway) Close() {
	g.client.Close()
}

// Node implementations disagree on revert message wording; match the
// common variants.
func isRevert(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "execution reverted") ||
		strings.Contains(msg, "revert") ||
		strings.Contains(msg, "always failing transaction")
}
