package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/usbwallet"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/smartcontractkit/walletconn/sdk"
	sdkerrors "github.com/smartcontractkit/walletconn/sdk/errors"
	"github.com/smartcontractkit/walletconn/types"
)

var (
	_ sdk.NetworkWallet = (*AccountWallet)(nil)
	_ sdk.EventSource   = (*AccountWallet)(nil)
)

// ChainIDReader reads the chain id of the node a wallet sends through.
// *ethclient.Client satisfies it.
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// AccountWallet adapts a go-ethereum accounts.Wallet, such as a Ledger or a
// keystore, to the wallet capability set. The network is fixed by the node
// client, so it cannot be switched from the wallet.
type AccountWallet struct {
	name   string
	chain  types.ChainID
	wallet accounts.Wallet
	client ChainIDReader

	derivationPath accounts.DerivationPath
	backend        accounts.Backend

	mu        sync.RWMutex
	connected bool
	account   accounts.Account
	networkID uint64
	dropSub   event.Subscription

	feed  event.Feed
	scope event.SubscriptionScope
}

// AccountWalletOption configures an AccountWallet.
type AccountWalletOption func(*AccountWallet)

// WithDerivationPath derives the account at path on connect instead of using
// the first account the wallet already tracks.
func WithDerivationPath(path accounts.DerivationPath) AccountWalletOption {
	return func(w *AccountWallet) {
		w.derivationPath = path
	}
}

// WithAccountsBackend watches the backend for the wallet being unplugged or
// closed, which is reported as a Disconnected event.
func WithAccountsBackend(backend accounts.Backend) AccountWalletOption {
	return func(w *AccountWallet) {
		w.backend = backend
	}
}

// NewAccountWallet wraps wallet for chain.
func NewAccountWallet(
	name string, chain types.ChainID, wallet accounts.Wallet, client ChainIDReader, opts ...AccountWalletOption,
) *AccountWallet {
	w := &AccountWallet{
		name:   name,
		chain:  chain,
		wallet: wallet,
		client: client,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// NewLedgerWallets returns one AccountWallet per Ledger device currently
// plugged in. The hub keeps tracking devices until the wallets are closed.
func NewLedgerWallets(
	chain types.ChainID, client ChainIDReader, path accounts.DerivationPath,
) ([]*AccountWallet, error) {
	hub, err := usbwallet.NewLedgerHub()
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger hub: %w", err)
	}

	devices := hub.Wallets()
	wallets := make([]*AccountWallet, 0, len(devices))
	for i, device := range devices {
		name := "Ledger"
		if len(devices) > 1 {
			name = fmt.Sprintf("Ledger #%d", i+1)
		}
		wallets = append(wallets, NewAccountWallet(name, chain, device, client,
			WithDerivationPath(path),
			WithAccountsBackend(hub),
		))
	}

	return wallets, nil
}

func (w *AccountWallet) Name() string {
	return w.name
}

func (w *AccountWallet) Chain() types.ChainID {
	return w.chain
}

func (w *AccountWallet) Address() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.connected {
		return ""
	}

	return w.account.Address.Hex()
}

func (w *AccountWallet) NetworkID() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.networkID
}

func (w *AccountWallet) Subscribe(ch chan<- types.WalletEvent) event.Subscription {
	return w.scope.Track(w.feed.Subscribe(ch))
}

// Connect opens the wallet, resolves the account and reads the network id from
// the node client.
func (w *AccountWallet) Connect(ctx context.Context) error {
	w.mu.RLock()
	connected := w.connected
	w.mu.RUnlock()
	if connected {
		return nil
	}

	if err := w.wallet.Open(""); err != nil && !errors.Is(err, accounts.ErrWalletAlreadyOpen) {
		return sdkerrors.NewConnectionError(w.chain, w.name, "connect", err)
	}

	account, err := w.resolveAccount()
	if err != nil {
		w.wallet.Close() // Only close on error since the caller won't be able to
		return sdkerrors.NewConnectionError(w.chain, w.name, "connect", err)
	}

	chainID, err := w.client.ChainID(ctx)
	if err != nil {
		w.wallet.Close()
		return sdkerrors.NewConnectionError(w.chain, w.name, "connect", fmt.Errorf("read chain id: %w", err))
	}

	var dropSub event.Subscription
	if w.backend != nil {
		events := make(chan accounts.WalletEvent, 4)
		dropSub = w.backend.Subscribe(events)
		go w.watchBackend(sdk.LoggerFrom(ctx), events, dropSub)
	}

	w.mu.Lock()
	w.connected = true
	w.account = account
	w.networkID = chainID.Uint64()
	w.dropSub = dropSub
	w.mu.Unlock()

	sdk.LoggerFrom(ctx).Infof("wallet %s connected on %s as %s", w.name, w.chain, account.Address.Hex())

	return nil
}

func (w *AccountWallet) resolveAccount() (accounts.Account, error) {
	if len(w.derivationPath) > 0 {
		account, err := w.wallet.Derive(w.derivationPath, true)
		if err != nil {
			return accounts.Account{}, fmt.Errorf("failed to derive account at %s: %w", w.derivationPath, err)
		}

		return account, nil
	}

	accts := w.wallet.Accounts()
	if len(accts) == 0 {
		return accounts.Account{}, errNoAccounts
	}

	return accts[0], nil
}

// Disconnect closes the underlying wallet.
func (w *AccountWallet) Disconnect(ctx context.Context) error {
	w.mu.RLock()
	connected := w.connected
	w.mu.RUnlock()
	if !connected {
		return nil
	}

	if err := w.wallet.Close(); err != nil && !errors.Is(err, accounts.ErrWalletClosed) {
		return sdkerrors.NewConnectionError(w.chain, w.name, "disconnect", err)
	}

	if w.reset() {
		sdk.LoggerFrom(ctx).Infof("wallet %s disconnected from %s", w.name, w.chain)
		w.feed.Send(types.WalletEvent{Kind: types.Disconnected, Wallet: w.name})
	}

	return nil
}

// SwitchNetwork always fails: the network is the one of the node client.
func (w *AccountWallet) SwitchNetwork(_ context.Context, networkID uint64) error {
	return sdkerrors.NewUnsupportedNetworkError(w.name, networkID)
}

// SignTx signs tx for the network the wallet is connected to.
func (w *AccountWallet) SignTx(tx *gethtypes.Transaction) (*gethtypes.Transaction, error) {
	w.mu.RLock()
	connected, account, networkID := w.connected, w.account, w.networkID
	w.mu.RUnlock()
	if !connected {
		return nil, sdkerrors.NewNotConnectedError(w.name)
	}

	return w.wallet.SignTx(account, tx, new(big.Int).SetUint64(networkID))
}

// SignText signs text with the EIP-191 personal message prefix.
func (w *AccountWallet) SignText(text []byte) ([]byte, error) {
	w.mu.RLock()
	connected, account := w.connected, w.account
	w.mu.RUnlock()
	if !connected {
		return nil, sdkerrors.NewNotConnectedError(w.name)
	}

	return w.wallet.SignText(account, text)
}

func (w *AccountWallet) watchBackend(lggr sdk.Logger, events <-chan accounts.WalletEvent, sub event.Subscription) {
	for {
		select {
		case ev := <-events:
			if ev.Kind != accounts.WalletDropped || ev.Wallet.URL() != w.wallet.URL() {
				continue
			}
			lggr.Infof("wallet %s was dropped by the device", w.name)
			if w.reset() {
				w.feed.Send(types.WalletEvent{Kind: types.Disconnected, Wallet: w.name})
			}

			return
		case <-sub.Err():
			return
		}
	}
}

func (w *AccountWallet) reset() bool {
	w.mu.Lock()
	if !w.connected {
		w.mu.Unlock()
		return false
	}
	sub := w.dropSub
	w.connected = false
	w.account = accounts.Account{}
	w.networkID = 0
	w.dropSub = nil
	w.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}

	return true
}
