// Package ethereum implements the pool's chain access on top of go-ethereum.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/chain"
	"github.com/goodnatureofminers/tokenpool-backend/pkg/safe"
)

// Config holds node and contract settings.
type Config struct {
	RPCURL          string `long:"eth-rpc-url" env:"ETH_RPC_URL" description:"Ethereum JSON-RPC endpoint" required:"true"`
	Network         string `long:"eth-network" env:"ETH_NETWORK" description:"network label for metrics" default:"mainnet"`
	ChainID         int64  `long:"eth-chain-id" env:"ETH_CHAIN_ID" description:"chain id used for signing" default:"1"`
	TokenAddress    string `long:"token-address" env:"TOKEN_ADDRESS" description:"ERC918 token contract" required:"true"`
	PaymentsAddress string `long:"payments-address" env:"PAYMENTS_ADDRESS" description:"batched payments contract holding pool funds" required:"true"`
	PrivateKey      string `long:"pool-private-key" env:"POOL_PRIVATE_KEY" description:"hex private key of the pool account"`
}

// Client reads the token contract and sends pool transactions.
type Client struct {
	backend     Backend
	metrics     RPCMetrics
	token       common.Address
	payments    common.Address
	key         *ecdsa.PrivateKey
	from        common.Address
	chainID     *big.Int
	tokenABI    abi.ABI
	paymentsABI abi.ABI
}

// Dial connects to the configured node.
func Dial(ctx context.Context, cfg Config, metrics RPCMetrics) (*Client, error) {
	backend, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum node: %w", err)
	}
	return NewClient(backend, cfg, metrics)
}

// NewClient builds a Client over backend.
func NewClient(backend Backend, cfg Config, metrics RPCMetrics) (*Client, error) {
	if !common.IsHexAddress(cfg.TokenAddress) {
		return nil, fmt.Errorf("invalid token address %q", cfg.TokenAddress)
	}
	if !common.IsHexAddress(cfg.PaymentsAddress) {
		return nil, fmt.Errorf("invalid payments address %q", cfg.PaymentsAddress)
	}

	tokenABI, err := abi.JSON(strings.NewReader(tokenABI))
	if err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}
	paymentsABI, err := abi.JSON(strings.NewReader(paymentsABI))
	if err != nil {
		return nil, fmt.Errorf("parse payments abi: %w", err)
	}

	c := &Client{
		backend:     backend,
		metrics:     metrics,
		token:       common.HexToAddress(cfg.TokenAddress),
		payments:    common.HexToAddress(cfg.PaymentsAddress),
		chainID:     big.NewInt(cfg.ChainID),
		tokenABI:    tokenABI,
		paymentsABI: paymentsABI,
	}
	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("parse pool private key: %w", err)
		}
		c.key = key
		c.from = crypto.PubkeyToAddress(key.PublicKey)
	}
	return c, nil
}

// Address returns the pool account, or the zero address when no key is configured.
func (c *Client) Address() string {
	return strings.ToLower(c.from.Hex())
}

// BlockNumber returns the chain head.
func (c *Client) BlockNumber(ctx context.Context) (head uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("block_number", err, started)
	}()
	return c.backend.BlockNumber(ctx)
}

// CurrentEpoch reads the mining state of the token contract.
func (c *Client) CurrentEpoch(ctx context.Context) (epoch chain.Epoch, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("current_epoch", err, started)
	}()

	challenge, err := c.callBytes32(ctx, "getChallengeNumber")
	if err != nil {
		return chain.Epoch{}, err
	}
	target, err := c.callUint(ctx, "getMiningTarget")
	if err != nil {
		return chain.Epoch{}, err
	}
	difficulty, err := c.callUint(ctx, "getMiningDifficulty")
	if err != nil {
		return chain.Epoch{}, err
	}
	reward, err := c.callUint(ctx, "getMiningReward")
	if err != nil {
		return chain.Epoch{}, err
	}
	count, err := c.callUint(ctx, "epochCount")
	if err != nil {
		return chain.Epoch{}, err
	}

	epoch = chain.Epoch{
		ChallengeNumber: challenge.Hex(),
		MiningTarget:    target,
	}
	if epoch.MiningDifficulty, err = safe.BigUint64(difficulty); err != nil {
		return chain.Epoch{}, fmt.Errorf("mining difficulty: %w", err)
	}
	if epoch.MiningReward, err = safe.BigUint64(reward); err != nil {
		return chain.Epoch{}, fmt.Errorf("mining reward: %w", err)
	}
	if epoch.EpochCount, err = safe.BigUint64(count); err != nil {
		return chain.Epoch{}, fmt.Errorf("epoch count: %w", err)
	}
	return epoch, nil
}

// PoolTokenBalance returns the token balance of the payments contract.
func (c *Client) PoolTokenBalance(ctx context.Context) (balance uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("pool_token_balance", err, started)
	}()

	out, err := c.callToken(ctx, "balanceOf", c.payments)
	if err != nil {
		return 0, err
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("balanceOf: unexpected output %T", out[0])
	}
	return safe.BigUint64(value)
}

// SolutionCall encodes mint(nonce, digest) on the token contract.
func (c *Client) SolutionCall(nonce, digest string) (chain.Call, error) {
	nonceBytes, err := decodeHex(nonce, 32)
	if err != nil {
		return chain.Call{}, fmt.Errorf("solution nonce: %w", err)
	}
	digestBytes, err := decodeHex(digest, 32)
	if err != nil {
		return chain.Call{}, fmt.Errorf("solution digest: %w", err)
	}

	data, err := c.tokenABI.Pack("mint", new(big.Int).SetBytes(nonceBytes), common.BytesToHash(digestBytes))
	if err != nil {
		return chain.Call{}, fmt.Errorf("pack mint: %w", err)
	}
	return chain.Call{To: c.token.Hex(), Data: data}, nil
}

// PaymentCall encodes multisend on the payments contract. The payment id is the batch
// UUID right-aligned in 32 bytes.
func (c *Client) PaymentCall(paymentID [16]byte, recipients []string, amounts []uint64) (chain.Call, error) {
	if len(recipients) != len(amounts) {
		return chain.Call{}, fmt.Errorf("payment call: %d recipients for %d amounts", len(recipients), len(amounts))
	}

	dests := make([]common.Address, 0, len(recipients))
	values := make([]*big.Int, 0, len(amounts))
	for i, recipient := range recipients {
		if !common.IsHexAddress(recipient) {
			return chain.Call{}, fmt.Errorf("payment call: invalid recipient %q", recipient)
		}
		dests = append(dests, common.HexToAddress(recipient))
		values = append(values, new(big.Int).SetUint64(amounts[i]))
	}

	var id [32]byte
	copy(id[16:], paymentID[:])
	data, err := c.paymentsABI.Pack("multisend", c.token, id, dests, values)
	if err != nil {
		return chain.Call{}, fmt.Errorf("pack multisend: %w", err)
	}
	return chain.Call{To: c.payments.Hex(), Data: data}, nil
}

// EstimateGas estimates the gas of call sent from the pool account. Reverting calls yield
// chain.ErrExecutionReverted.
func (c *Client) EstimateGas(ctx context.Context, call chain.Call) (gas uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("estimate_gas", err, started)
	}()

	to := common.HexToAddress(call.To)
	gas, err = c.backend.EstimateGas(ctx, geth.CallMsg{From: c.from, To: &to, Data: call.Data})
	if err != nil {
		if isRevert(err) {
			return 0, fmt.Errorf("%w: %v", chain.ErrExecutionReverted, err)
		}
		return 0, fmt.Errorf("estimate gas: %w", err)
	}
	return gas, nil
}

// SuggestGasPrice returns the node's gas price suggestion in wei.
func (c *Client) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("suggest_gas_price", err, started)
	}()
	return c.backend.SuggestGasPrice(ctx)
}

// SendTransaction signs call with the pool key and broadcasts it. It returns the tx hash.
func (c *Client) SendTransaction(ctx context.Context, call chain.Call, gasLimit uint64, gasPrice *big.Int) (hash string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("send_transaction", err, started)
	}()

	if c.key == nil {
		return "", errors.New("send transaction: pool private key is not configured")
	}

	nonce, err := c.backend.PendingNonceAt(ctx, c.from)
	if err != nil {
		return "", fmt.Errorf("get pending nonce: %w", err)
	}

	to := common.HexToAddress(call.To)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     call.Data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}
	if err = c.backend.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	return signed.Hash().Hex(), nil
}

// TransactionReceipt returns the receipt of hash, or chain.ErrReceiptNotFound while the
// transaction is not mined.
func (c *Client) TransactionReceipt(ctx context.Context, hash string) (receipt chain.Receipt, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("transaction_receipt", err, started)
	}()

	raw, err := c.backend.TransactionReceipt(ctx, common.HexToHash(hash))
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			return chain.Receipt{}, chain.ErrReceiptNotFound
		}
		return chain.Receipt{}, fmt.Errorf("get receipt %s: %w", hash, err)
	}

	receipt = chain.Receipt{
		TxHash:  raw.TxHash.Hex(),
		Success: raw.Status == types.ReceiptStatusSuccessful,
		GasUsed: raw.GasUsed,
	}
	if raw.BlockNumber != nil {
		receipt.BlockNumber = raw.BlockNumber.Uint64()
	}
	if receipt.Mint, err = c.decodeMint(raw.Logs); err != nil {
		return chain.Receipt{}, err
	}
	return receipt, nil
}

func (c *Client) decodeMint(logs []*types.Log) (*chain.MintEvent, error) {
	event, ok := c.tokenABI.Events["Mint"]
	if !ok {
		return nil, errors.New("token abi has no Mint event")
	}

	for _, lg := range logs {
		if lg == nil || lg.Address != c.token || len(lg.Topics) < 2 || lg.Topics[0] != event.ID {
			continue
		}
		values, err := c.tokenABI.Unpack("Mint", lg.Data)
		if err != nil {
			return nil, fmt.Errorf("unpack Mint log: %w", err)
		}
		if len(values) != 3 {
			return nil, fmt.Errorf("unpack Mint log: got %d values", len(values))
		}
		reward, okReward := values[0].(*big.Int)
		epochCount, okEpoch := values[1].(*big.Int)
		challenge, okChallenge := values[2].([32]byte)
		if !okReward || !okEpoch || !okChallenge {
			return nil, errors.New("unpack Mint log: unexpected value types")
		}

		mint := &chain.MintEvent{
			From:               strings.ToLower(common.BytesToAddress(lg.Topics[1].Bytes()).Hex()),
			NewChallengeNumber: common.Hash(challenge).Hex(),
		}
		if mint.Reward, err = safe.BigUint64(reward); err != nil {
			return nil, fmt.Errorf("mint reward: %w", err)
		}
		if mint.EpochCount, err = safe.BigUint64(epochCount); err != nil {
			return nil, fmt.Errorf("mint epoch count: %w", err)
		}
		return mint, nil
	}
	return nil, nil
}

func (c *Client) callToken(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := c.tokenABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	out, err := c.backend.CallContract(ctx, geth.CallMsg{To: &c.token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	values, err := c.tokenABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("unpack %s: empty output", method)
	}
	return values, nil
}

func (c *Client) callUint(ctx context.Context, method string) (*big.Int, error) {
	out, err := c.callToken(ctx, method)
	if err != nil {
		return nil, err
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output %T", method, out[0])
	}
	return value, nil
}

func (c *Client) callBytes32(ctx context.Context, method string) (common.Hash, error) {
	out, err := c.callToken(ctx, method)
	if err != nil {
		return common.Hash{}, err
	}
	value, ok := out[0].([32]byte)
	if !ok {
		return common.Hash{}, fmt.Errorf("%s: unexpected output %T", method, out[0])
	}
	return common.Hash(value), nil
}

func decodeHex(s string, size int) ([]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", s, err)
	}
	if len(b) != size {
		return nil, fmt.Errorf("%q is %d bytes, want %d", s, len(b), size)
	}
	return b, nil
}

func isRevert(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}
