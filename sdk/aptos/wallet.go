package aptos

import (
	"context"
	"fmt"
	"sync"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/api"
	"github.com/ethereum/go-ethereum/event"

	"github.com/smartcontractkit/walletconn/sdk"
	sdkerrors "github.com/smartcontractkit/walletconn/sdk/errors"
	"github.com/smartcontractkit/walletconn/types"
)

var (
	_ sdk.NamedNetworkWallet = (*Wallet)(nil)
	_ sdk.EventSource        = (*Wallet)(nil)
)

// Client is the part of the aptos node client the wallet uses.
// *aptos.Client satisfies it.
type Client interface {
	Info() (aptos.NodeInfo, error)
	AccountAPTBalance(address aptos.AccountAddress, ledgerVersion ...uint64) (uint64, error)
	BuildSignAndSubmitTransaction(
		sender aptos.TransactionSigner, payload aptos.TransactionPayload, options ...any,
	) (*api.SubmitTransactionResponse, error)
}

// Wallet is an Aptos wallet backed by a local account.
type Wallet struct {
	name        string
	account     *aptos.Account
	client      Client
	network     aptos.NetworkConfig
	networkName string

	mu        sync.RWMutex
	connected bool

	feed  event.Feed
	scope event.SubscriptionScope
}

// Option configures a Wallet.
type Option func(*Wallet)

// WithNetworkName overrides the reported network name. Browser wallets do not
// agree on naming ("Testnet", "Aptos testnet", ...), this reproduces them.
func WithNetworkName(name string) Option {
	return func(w *Wallet) {
		w.networkName = name
	}
}

// NewWallet creates an Aptos wallet for account on network.
func NewWallet(name string, account *aptos.Account, client Client, network aptos.NetworkConfig, opts ...Option) *Wallet {
	w := &Wallet{
		name:    name,
		account: account,
		client:  client,
		network: network,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// NewPrivateKeyWallet creates an Aptos wallet from an ed25519 private key.
func NewPrivateKeyWallet(
	name, privateKey string, client Client, network aptos.NetworkConfig, opts ...Option,
) (*Wallet, error) {
	account, err := accountFromPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	return NewWallet(name, account, client, network, opts...), nil
}

func (w *Wallet) Name() string {
	return w.name
}

func (w *Wallet) Chain() types.ChainID {
	return types.ChainIDAptos
}

// Address returns the long form account address while connected.
func (w *Wallet) Address() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.connected {
		return ""
	}

	addr := w.account.AccountAddress()

	return addr.StringLong()
}

// NetworkName returns the network the wallet reports being on.
func (w *Wallet) NetworkName() string {
	if w.networkName != "" {
		return w.networkName
	}

	return w.network.Name
}

func (w *Wallet) Subscribe(ch chan<- types.WalletEvent) event.Subscription {
	return w.scope.Track(w.feed.Subscribe(ch))
}

// Connect queries the node and, when the network config pins a chain id,
// checks that the node serves it.
func (w *Wallet) Connect(ctx context.Context) error {
	info, err := w.client.Info()
	if err != nil {
		return sdkerrors.NewConnectionError(types.ChainIDAptos, w.name, "connect", err)
	}
	if w.network.ChainId != 0 && info.ChainId != w.network.ChainId {
		return sdkerrors.NewConnectionError(types.ChainIDAptos, w.name, "connect",
			fmt.Errorf("node serves chain id %d, %s expects %d", info.ChainId, w.network.Name, w.network.ChainId))
	}

	w.mu.Lock()
	w.connected = true
	w.mu.Unlock()

	addr := w.account.AccountAddress()
	sdk.LoggerFrom(ctx).Infof("wallet %s connected on aptos %s as %s", w.name, w.NetworkName(), addr.StringLong())

	return nil
}

func (w *Wallet) Disconnect(ctx context.Context) error {
	w.mu.Lock()
	if !w.connected {
		w.mu.Unlock()
		return nil
	}
	w.connected = false
	w.mu.Unlock()

	sdk.LoggerFrom(ctx).Infof("wallet %s disconnected from aptos", w.name)
	w.feed.Send(types.WalletEvent{Kind: types.Disconnected, Wallet: w.name})

	return nil
}

// SignAndSubmitTransaction builds, signs and submits the payload, returning
// the pending transaction hash.
func (w *Wallet) SignAndSubmitTransaction(_ context.Context, payload aptos.TransactionPayload) (string, error) {
	if w.Address() == "" {
		return "", sdkerrors.NewNotConnectedError(w.name)
	}

	res, err := w.client.BuildSignAndSubmitTransaction(w.account, payload)
	if err != nil {
		return "", fmt.Errorf("failed to submit transaction: %w", err)
	}

	return res.Hash, nil
}

// Balance returns the APT balance of the account in octas.
func (w *Wallet) Balance(_ context.Context) (uint64, error) {
	balance, err := w.client.AccountAPTBalance(w.account.AccountAddress())
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}
