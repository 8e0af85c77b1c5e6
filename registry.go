package walletconn

import (
	"context"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/event"
	"github.com/sourcegraph/conc/pool"

	"github.com/smartcontractkit/walletconn/sdk"
	sdkerrors "github.com/smartcontractkit/walletconn/sdk/errors"
	"github.com/smartcontractkit/walletconn/types"
)

// walletEventBuffer keeps adapters from blocking on a watcher that is busy
// evicting its wallet.
const walletEventBuffer = 8

// Registry tracks, per chain, the wallets a user can pick from and the one
// that is currently active.
//
// The registry does not own wallets. It never connects or disconnects a
// wallet except through Connect, Disconnect and DisconnectAll.
type Registry struct {
	lggr sdk.Logger

	mu         sync.RWMutex
	available  map[types.ChainID][]sdk.Wallet
	active     map[types.ChainID]*activeWallet
	generation uint64

	opsMu sync.Mutex
	ops   map[types.ChainID]*sync.Mutex

	changes event.Feed
	scope   event.SubscriptionScope
}

// activeWallet is an occupied slot. sub is set when the wallet pushes events.
// generation is unique per SetActiveWallet call, so a reconnect of the same
// wallet yields a new one.
type activeWallet struct {
	wallet     sdk.Wallet
	sub        event.Subscription
	generation uint64
}

type RegistryOption func(*Registry)

// WithLogger sets the logger used for registry bookkeeping messages.
func WithLogger(lggr sdk.Logger) RegistryOption {
	return func(r *Registry) {
		r.lggr = lggr
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		available: make(map[types.ChainID][]sdk.Wallet),
		active:    make(map[types.ChainID]*activeWallet),
		ops:       make(map[types.ChainID]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.lggr == nil {
		r.lggr = sdk.LoggerFrom(context.Background())
	}

	return r
}

// AddWallets registers wallets as available for their chain, keeping the
// order they are given in. Wallet names must be unique per chain; when one is
// not, nothing is registered.
func (r *Registry) AddWallets(wallets ...sdk.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, w := range wallets {
		chain := w.Chain()
		for _, existing := range r.available[chain] {
			if existing.Name() == w.Name() {
				return NewDuplicateWalletError(chain, w.Name())
			}
		}
		for _, other := range wallets[:i] {
			if other.Chain() == chain && other.Name() == w.Name() {
				return NewDuplicateWalletError(chain, w.Name())
			}
		}
	}

	for _, w := range wallets {
		r.available[w.Chain()] = append(r.available[w.Chain()], w)
	}

	return nil
}

// AvailableWallets returns the wallets registered for chain in registration
// order.
func (r *Registry) AvailableWallets(chain types.ChainID) []sdk.Wallet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallets := make([]sdk.Wallet, len(r.available[chain]))
	copy(wallets, r.available[chain])

	return wallets
}

// Chains returns the chains with at least one available wallet, in id order.
func (r *Registry) Chains() []types.ChainID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chains := make([]types.ChainID, 0, len(r.available))
	for chain := range r.available {
		chains = append(chains, chain)
	}
	slices.Sort(chains)

	return chains
}

// AvailableWallet looks up an available wallet of chain by name.
func (r *Registry) AvailableWallet(chain types.ChainID, name string) (sdk.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.available[chain] {
		if w.Name() == name {
			return w, nil
		}
	}

	return nil, sdkerrors.NewUnknownWalletError(chain, name)
}

// ActiveWallet returns the wallet that is active for chain, if any.
func (r *Registry) ActiveWallet(chain types.ChainID) (sdk.Wallet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.active[chain]
	if !ok {
		return nil, false
	}

	return entry.wallet, true
}

// activeEntry returns the occupied slot of chain, if any.
func (r *Registry) activeEntry(chain types.ChainID) (*activeWallet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.active[chain]

	return entry, ok
}

// ActiveChains returns the chains that currently have an active wallet.
func (r *Registry) ActiveChains() []types.ChainID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chains := make([]types.ChainID, 0, len(r.active))
	for chain := range r.active {
		chains = append(chains, chain)
	}

	return chains
}

// SetActiveWallet makes w the active wallet of its chain. A previously active
// wallet is replaced without being disconnected.
//
// When w is an sdk.EventSource the registry follows it and clears the slot
// once w reports that it disconnected.
func (r *Registry) SetActiveWallet(w sdk.Wallet) {
	chain := w.Chain()
	entry := &activeWallet{wallet: w}

	var events chan types.WalletEvent
	if src, ok := w.(sdk.EventSource); ok {
		events = make(chan types.WalletEvent, walletEventBuffer)
		entry.sub = src.Subscribe(events)
	}

	r.mu.Lock()
	r.generation++
	entry.generation = r.generation
	prev := r.active[chain]
	r.active[chain] = entry
	r.mu.Unlock()

	prev.release()
	if entry.sub != nil {
		go r.watch(chain, entry, events)
	}

	r.lggr.Debugf("wallet %s is active on %s", w.Name(), chain)
	r.changes.Send(types.RegistryChange{Chain: chain, Wallet: w.Name()})
}

// ClearActiveWallet empties the slot of chain. Clearing an empty slot does
// nothing.
func (r *Registry) ClearActiveWallet(chain types.ChainID) {
	r.mu.Lock()
	entry, ok := r.active[chain]
	delete(r.active, chain)
	r.mu.Unlock()

	if !ok {
		return
	}

	entry.release()
	r.lggr.Debugf("wallet %s is no longer active on %s", entry.wallet.Name(), chain)
	r.changes.Send(types.RegistryChange{Chain: chain})
}

// Connect connects w and, once that succeeded, makes it the active wallet of
// its chain. On failure the slot is left as it was.
func (r *Registry) Connect(ctx context.Context, w sdk.Wallet) error {
	chain := w.Chain()
	unlock := r.lockChain(chain)
	defer unlock()

	if err := w.Connect(ctx); err != nil {
		sdk.LoggerFrom(ctx).Warnf("failed to connect wallet %s on %s: %v", w.Name(), chain, err)

		return sdkerrors.AsConnectionError(chain, w.Name(), "connect", err)
	}

	r.SetActiveWallet(w)

	return nil
}

// Disconnect disconnects the active wallet of chain and clears the slot. When
// the wallet fails to disconnect the slot is kept.
func (r *Registry) Disconnect(ctx context.Context, chain types.ChainID) error {
	unlock := r.lockChain(chain)
	defer unlock()

	r.mu.RLock()
	entry, ok := r.active[chain]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	if err := entry.wallet.Disconnect(ctx); err != nil {
		return sdkerrors.AsConnectionError(chain, entry.wallet.Name(), "disconnect", err)
	}

	r.evict(chain, entry)

	return nil
}

// DisconnectAll disconnects every active wallet concurrently. All wallets are
// attempted; the returned error joins the individual failures.
func (r *Registry) DisconnectAll(ctx context.Context) error {
	p := pool.New().WithErrors()
	for _, chain := range r.ActiveChains() {
		p.Go(func() error {
			return r.Disconnect(ctx, chain)
		})
	}

	return p.Wait()
}

// SubscribeChanges delivers a types.RegistryChange after every change of an
// active slot, and when the active wallet reports a new account or network. The change is visible through ActiveWallet by the time it is
// received. Subscribers must keep reading or unsubscribe.
func (r *Registry) SubscribeChanges(ch chan<- types.RegistryChange) event.Subscription {
	return r.scope.Track(r.changes.Subscribe(ch))
}

// Close unsubscribes every change subscriber and stops following wallets.
func (r *Registry) Close() {
	r.mu.Lock()
	entries := make([]*activeWallet, 0, len(r.active))
	for _, entry := range r.active {
		entries = append(entries, entry)
	}
	r.mu.Unlock()

	for _, entry := range entries {
		entry.release()
	}
	r.scope.Close()
}

// watch follows the events of an active wallet until its subscription ends.
func (r *Registry) watch(chain types.ChainID, entry *activeWallet, events <-chan types.WalletEvent) {
	for {
		select {
		case ev := <-events:
			switch ev.Kind {
			case types.Disconnected:
				r.lggr.Infof("wallet %s disconnected from %s", entry.wallet.Name(), chain)
				r.evict(chain, entry)

				return
			case types.AccountsChanged:
				r.lggr.Debugf("wallet %s on %s switched account to %s", entry.wallet.Name(), chain, ev.Address)
				r.publish(chain, entry, types.ActiveAccountChanged)
			case types.NetworkChanged:
				r.lggr.Debugf("wallet %s on %s switched to network %d", entry.wallet.Name(), chain, ev.NetworkID)
				r.publish(chain, entry, types.ActiveNetworkChanged)
			}
		case <-entry.sub.Err():
			return
		}
	}
}

// publish announces a change of entry's wallet while it still occupies the
// slot of chain.
func (r *Registry) publish(chain types.ChainID, entry *activeWallet, kind types.RegistryChangeKind) {
	if current, ok := r.activeEntry(chain); !ok || current != entry {
		return
	}

	r.changes.Send(types.RegistryChange{Kind: kind, Chain: chain, Wallet: entry.wallet.Name()})
}

// evict clears the slot of chain if entry still occupies it.
func (r *Registry) evict(chain types.ChainID, entry *activeWallet) {
	r.mu.Lock()
	if r.active[chain] != entry {
		r.mu.Unlock()
		return
	}
	delete(r.active, chain)
	r.mu.Unlock()

	entry.release()
	r.changes.Send(types.RegistryChange{Chain: chain})
}

func (r *Registry) lockChain(chain types.ChainID) func() {
	r.opsMu.Lock()
	mu, ok := r.ops[chain]
	if !ok {
		mu = &sync.Mutex{}
		r.ops[chain] = mu
	}
	r.opsMu.Unlock()

	mu.Lock()

	return mu.Unlock
}

func (a *activeWallet) release() {
	if a != nil && a.sub != nil {
		a.sub.Unsubscribe()
	}
}
