package evm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/event"

	"github.com/smartcontractkit/walletconn/sdk"
	sdkerrors "github.com/smartcontractkit/walletconn/sdk/errors"
	"github.com/smartcontractkit/walletconn/types"
)

var (
	_ sdk.NetworkWallet = (*Wallet)(nil)
	_ sdk.EventSource   = (*Wallet)(nil)
)

var errNoAccounts = errors.New("wallet returned no accounts")

// Wallet is an EVM wallet reached through an EIP-1193 style provider.
type Wallet struct {
	name    string
	chain   types.ChainID
	backend Backend

	mu          sync.RWMutex
	connected   bool
	address     common.Address
	networkID   uint64
	accountsSub ethereum.Subscription
	chainSub    ethereum.Subscription
	quit        chan struct{}
	done        chan struct{}

	feed  event.Feed
	scope event.SubscriptionScope
}

// NewWallet creates a wallet for chain backed by the given provider. The same
// backend may be shared by the wallets of several EVM chains.
func NewWallet(name string, chain types.ChainID, backend Backend) *Wallet {
	return &Wallet{
		name:    name,
		chain:   chain,
		backend: backend,
	}
}

func (w *Wallet) Name() string {
	return w.name
}

func (w *Wallet) Chain() types.ChainID {
	return w.chain
}

// Address returns the checksummed address of the selected account.
func (w *Wallet) Address() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.connected {
		return ""
	}

	return w.address.Hex()
}

// NetworkID returns the EVM chain id the provider is currently on.
func (w *Wallet) NetworkID() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.networkID
}

func (w *Wallet) Subscribe(ch chan<- types.WalletEvent) event.Subscription {
	return w.scope.Track(w.feed.Subscribe(ch))
}

// Connect requests the accounts of the provider and starts listening for
// accountsChanged and chainChanged notifications when the provider supports
// subscriptions.
func (w *Wallet) Connect(ctx context.Context) error {
	lggr := sdk.LoggerFrom(ctx)

	w.mu.RLock()
	connected := w.connected
	w.mu.RUnlock()
	if connected {
		return nil
	}

	var accts []common.Address
	if err := w.backend.CallContext(ctx, &accts, "eth_requestAccounts"); err != nil {
		return w.connectionError("connect", err)
	}
	if len(accts) == 0 {
		return w.connectionError("connect", errNoAccounts)
	}

	var chainID hexutil.Uint64
	if err := w.backend.CallContext(ctx, &chainID, "eth_chainId"); err != nil {
		return w.connectionError("connect", err)
	}

	accountsCh := make(chan []common.Address, 4)
	accountsSub, err := w.backend.Subscribe(ctx, "eth", accountsCh, "accountsChanged")
	if err != nil {
		lggr.Debugf("wallet %s: accountsChanged subscription unavailable: %v", w.name, err)
		accountsSub = nil
	}
	chainCh := make(chan hexutil.Uint64, 4)
	chainSub, err := w.backend.Subscribe(ctx, "eth", chainCh, "chainChanged")
	if err != nil {
		lggr.Debugf("wallet %s: chainChanged subscription unavailable: %v", w.name, err)
		chainSub = nil
	}

	w.mu.Lock()
	w.connected = true
	w.address = accts[0]
	w.networkID = uint64(chainID)
	w.accountsSub = accountsSub
	w.chainSub = chainSub
	w.quit = make(chan struct{})
	w.done = make(chan struct{})
	quit, done := w.quit, w.done
	w.mu.Unlock()

	go w.listen(lggr, quit, done, accountsCh, chainCh, accountsSub, chainSub)

	lggr.Infof("wallet %s connected on %s as %s (network %d)", w.name, w.chain, accts[0].Hex(), uint64(chainID))

	return nil
}

// Disconnect revokes the account permission where the provider supports it
// and releases the provider subscriptions.
func (w *Wallet) Disconnect(ctx context.Context) error {
	w.mu.RLock()
	connected := w.connected
	w.mu.RUnlock()
	if !connected {
		return nil
	}

	err := w.backend.CallContext(ctx, nil, "wallet_revokePermissions", map[string]any{"eth_accounts": struct{}{}})
	if err != nil && !isMethodNotFound(err) {
		return w.connectionError("disconnect", err)
	}

	if w.teardown() {
		sdk.LoggerFrom(ctx).Infof("wallet %s disconnected from %s", w.name, w.chain)
		w.feed.Send(types.WalletEvent{Kind: types.Disconnected, Wallet: w.name})
	}

	return nil
}

// SwitchNetwork asks the provider to move to networkID.
func (w *Wallet) SwitchNetwork(ctx context.Context, networkID uint64) error {
	if w.Address() == "" {
		return sdkerrors.NewNotConnectedError(w.name)
	}

	params := map[string]string{"chainId": hexutil.EncodeUint64(networkID)}
	if err := w.backend.CallContext(ctx, nil, "wallet_switchEthereumChain", params); err != nil {
		if code, ok := rpcErrorCode(err); ok && (code == codeUnrecognizedChain || code == codeMethodNotFound) {
			return sdkerrors.NewUnsupportedNetworkError(w.name, networkID)
		}
		if isUserRejected(err) {
			return fmt.Errorf("switch %s to network %d: %w", w.name, networkID, sdkerrors.ErrUserRejected)
		}

		return fmt.Errorf("switch %s to network %d: %w", w.name, networkID, err)
	}

	var chainID hexutil.Uint64
	if err := w.backend.CallContext(ctx, &chainID, "eth_chainId"); err != nil {
		return fmt.Errorf("read network after switch: %w", err)
	}
	w.setNetwork(uint64(chainID))

	return nil
}

// SignMessage signs msg with the EIP-191 personal message prefix.
func (w *Wallet) SignMessage(ctx context.Context, msg []byte) ([]byte, error) {
	w.mu.RLock()
	connected, from := w.connected, w.address
	w.mu.RUnlock()
	if !connected {
		return nil, sdkerrors.NewNotConnectedError(w.name)
	}

	var sig hexutil.Bytes
	if err := w.backend.CallContext(ctx, &sig, "personal_sign", hexutil.Bytes(msg), from); err != nil {
		return nil, fmt.Errorf("personal_sign: %w", err)
	}

	return sig, nil
}

// TransactionArgs are the eth_sendTransaction parameters. From is filled in
// with the selected account.
type TransactionArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to,omitempty"`
	Value *hexutil.Big    `json:"value,omitempty"`
	Gas   *hexutil.Uint64 `json:"gas,omitempty"`
	Data  hexutil.Bytes   `json:"data,omitempty"`
}

// SendTransaction lets the wallet sign and broadcast the transaction.
func (w *Wallet) SendTransaction(ctx context.Context, args TransactionArgs) (common.Hash, error) {
	w.mu.RLock()
	connected, from := w.connected, w.address
	w.mu.RUnlock()
	if !connected {
		return common.Hash{}, sdkerrors.NewNotConnectedError(w.name)
	}
	args.From = from

	var hash common.Hash
	if err := w.backend.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, fmt.Errorf("eth_sendTransaction: %w", err)
	}

	return hash, nil
}

func (w *Wallet) listen(
	lggr sdk.Logger,
	quit, done chan struct{},
	accountsCh <-chan []common.Address,
	chainCh <-chan hexutil.Uint64,
	accountsSub, chainSub ethereum.Subscription,
) {
	defer close(done)

	accountsErr, chainErr := subErr(accountsSub), subErr(chainSub)
	for {
		select {
		case <-quit:
			return
		case accts := <-accountsCh:
			if len(accts) == 0 {
				lggr.Infof("wallet %s: no accounts left, dropping connection", w.name)
				w.drop()

				return
			}
			w.setAddress(accts[0])
		case id := <-chainCh:
			w.setNetwork(uint64(id))
		case err, ok := <-accountsErr:
			if !ok {
				accountsErr = nil
				continue
			}
			lggr.Warnf("wallet %s: provider subscription failed: %v", w.name, err)
			w.drop()

			return
		case err, ok := <-chainErr:
			if !ok {
				chainErr = nil
				continue
			}
			lggr.Warnf("wallet %s: provider subscription failed: %v", w.name, err)
			w.drop()

			return
		}
	}
}

// drop handles a disconnect initiated by the provider.
func (w *Wallet) drop() {
	if w.teardownFromListener() {
		w.feed.Send(types.WalletEvent{Kind: types.Disconnected, Wallet: w.name})
	}
}

// teardown resets the connection state and stops the listener. It reports
// whether the wallet was connected.
func (w *Wallet) teardown() bool {
	w.mu.Lock()
	if !w.connected {
		w.mu.Unlock()
		return false
	}
	quit, done := w.quit, w.done
	subs := w.resetLocked()
	w.mu.Unlock()

	close(quit)
	<-done
	for _, sub := range subs {
		sub.Unsubscribe()
	}

	return true
}

func (w *Wallet) teardownFromListener() bool {
	w.mu.Lock()
	if !w.connected {
		w.mu.Unlock()
		return false
	}
	quit := w.quit
	subs := w.resetLocked()
	w.mu.Unlock()

	close(quit)
	for _, sub := range subs {
		sub.Unsubscribe()
	}

	return true
}

func (w *Wallet) resetLocked() []ethereum.Subscription {
	var subs []ethereum.Subscription
	if w.accountsSub != nil {
		subs = append(subs, w.accountsSub)
	}
	if w.chainSub != nil {
		subs = append(subs, w.chainSub)
	}
	w.connected = false
	w.address = common.Address{}
	w.networkID = 0
	w.accountsSub, w.chainSub = nil, nil
	w.quit, w.done = nil, nil

	return subs
}

func (w *Wallet) setAddress(addr common.Address) {
	w.mu.Lock()
	if !w.connected || w.address == addr {
		w.mu.Unlock()
		return
	}
	w.address = addr
	w.mu.Unlock()

	w.feed.Send(types.WalletEvent{Kind: types.AccountsChanged, Wallet: w.name, Address: addr.Hex()})
}

func (w *Wallet) setNetwork(id uint64) {
	w.mu.Lock()
	if !w.connected || w.networkID == id {
		w.mu.Unlock()
		return
	}
	w.networkID = id
	w.mu.Unlock()

	w.feed.Send(types.WalletEvent{Kind: types.NetworkChanged, Wallet: w.name, NetworkID: id})
}

func (w *Wallet) connectionError(op string, err error) error {
	if isUserRejected(err) {
		err = fmt.Errorf("%w: %w", sdkerrors.ErrUserRejected, err)
	}

	return sdkerrors.NewConnectionError(w.chain, w.name, op, err)
}
