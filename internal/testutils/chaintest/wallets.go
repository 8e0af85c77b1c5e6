package chaintest

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/event"

	"github.com/smartcontractkit/walletconn/sdk"
	"github.com/smartcontractkit/walletconn/types"
)

var (
	_ sdk.Wallet             = (*Wallet)(nil)
	_ sdk.EventSource        = (*Wallet)(nil)
	_ sdk.NetworkWallet      = (*EVMWallet)(nil)
	_ sdk.NamedNetworkWallet = (*AptosWallet)(nil)
)

// Wallet is an in-memory wallet for tests. It reports address once connected
// and pushes lifecycle events to subscribers.
type Wallet struct {
	name  string
	chain types.ChainID

	mu             sync.RWMutex
	address        string
	connected      bool
	connectErr     error
	disconnectErr  error
	connects       int
	disconnects    int
	connectHook    func()
	disconnectHook func()

	feed  event.Feed
	scope event.SubscriptionScope
}

func NewWallet(name string, chain types.ChainID, address string) *Wallet {
	return &Wallet{name: name, chain: chain, address: address}
}

func (w *Wallet) Name() string {
	return w.name
}

func (w *Wallet) Chain() types.ChainID {
	return w.chain
}

func (w *Wallet) Address() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.connected {
		return ""
	}

	return w.address
}

func (w *Wallet) Connect(_ context.Context) error {
	w.mu.Lock()
	w.connects++
	hook := w.connectHook
	err := w.connectErr
	if err == nil {
		w.connected = true
	}
	w.mu.Unlock()

	if hook != nil {
		hook()
	}

	return err
}

func (w *Wallet) Disconnect(_ context.Context) error {
	w.mu.Lock()
	w.disconnects++
	hook := w.disconnectHook
	w.mu.Unlock()

	if hook != nil {
		hook()
	}

	w.mu.Lock()
	if w.disconnectErr != nil {
		err := w.disconnectErr
		w.mu.Unlock()

		return err
	}
	wasConnected := w.connected
	w.connected = false
	w.mu.Unlock()

	if wasConnected {
		w.feed.Send(types.WalletEvent{Kind: types.Disconnected, Wallet: w.name})
	}

	return nil
}

func (w *Wallet) Subscribe(ch chan<- types.WalletEvent) event.Subscription {
	return w.scope.Track(w.feed.Subscribe(ch))
}

// FailConnect makes subsequent Connect calls return err.
func (w *Wallet) FailConnect(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.connectErr = err
}

// FailDisconnect makes subsequent Disconnect calls return err.
func (w *Wallet) FailDisconnect(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.disconnectErr = err
}

// OnConnect runs fn after every Connect call, outside the wallet lock.
func (w *Wallet) OnConnect(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.connectHook = fn
}

// OnDisconnect runs fn at the start of every Disconnect call, outside the
// wallet lock.
func (w *Wallet) OnDisconnect(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.disconnectHook = fn
}

func (w *Wallet) ConnectCalls() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.connects
}

func (w *Wallet) DisconnectCalls() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.disconnects
}

// Subscribers returns the number of live subscriptions.
func (w *Wallet) Subscribers() int {
	return w.scope.Count()
}

// SetAccount simulates the user picking another account in the wallet.
func (w *Wallet) SetAccount(address string) {
	w.mu.Lock()
	w.address = address
	w.mu.Unlock()

	w.feed.Send(types.WalletEvent{Kind: types.AccountsChanged, Wallet: w.name, Address: address})
}

// Drop simulates the wallet ending the connection on its own.
func (w *Wallet) Drop() {
	w.mu.Lock()
	w.connected = false
	w.mu.Unlock()

	w.feed.Send(types.WalletEvent{Kind: types.Disconnected, Wallet: w.name})
}

// EVMWallet is a Wallet that is on a numbered network and can be asked to
// switch.
type EVMWallet struct {
	*Wallet

	networkID uint64
	switchErr error
	switches  []uint64
}

func NewEVMWallet(name string, chain types.ChainID, address string, networkID uint64) *EVMWallet {
	return &EVMWallet{Wallet: NewWallet(name, chain, address), networkID: networkID}
}

func (w *EVMWallet) NetworkID() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.networkID
}

// SwitchNetwork records the request and, unless FailSwitch was set, moves the
// wallet to networkID.
func (w *EVMWallet) SwitchNetwork(_ context.Context, networkID uint64) error {
	w.mu.Lock()
	w.switches = append(w.switches, networkID)
	if w.switchErr != nil {
		err := w.switchErr
		w.mu.Unlock()

		return err
	}
	w.mu.Unlock()

	w.SetNetwork(networkID)

	return nil
}

// SetNetwork simulates the user moving the wallet to another network.
func (w *EVMWallet) SetNetwork(networkID uint64) {
	w.mu.Lock()
	w.networkID = networkID
	w.mu.Unlock()

	w.feed.Send(types.WalletEvent{Kind: types.NetworkChanged, Wallet: w.name, NetworkID: networkID})
}

func (w *EVMWallet) FailSwitch(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.switchErr = err
}

// SwitchCalls returns the network ids SwitchNetwork was called with.
func (w *EVMWallet) SwitchCalls() []uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	calls := make([]uint64, len(w.switches))
	copy(calls, w.switches)

	return calls
}

// AptosWallet is a Wallet that reports its network by name.
type AptosWallet struct {
	*Wallet

	networkName string
}

func NewAptosWallet(name, address, networkName string) *AptosWallet {
	return &AptosWallet{Wallet: NewWallet(name, types.ChainIDAptos, address), networkName: networkName}
}

func (w *AptosWallet) NetworkName() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.networkName
}

func (w *AptosWallet) SetNetworkName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.networkName = name
}
