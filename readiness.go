package walletconn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/sourcegraph/conc"

	"github.com/smartcontractkit/walletconn/sdk"
	sdkerrors "github.com/smartcontractkit/walletconn/sdk/errors"
	"github.com/smartcontractkit/walletconn/types"
)

const msgNotConnected = "Wallet not connected"

// NetworkTable is the expected network configuration wallets are checked
// against.
type NetworkTable interface {
	// Cluster is the deployment the table describes, e.g. "mainnet".
	Cluster() string
	// ExpectedEVMNetwork returns the EVM network id chain must be on.
	ExpectedEVMNetwork(chain types.ChainID) (uint64, bool)
	// ExpectedAptosNetwork returns the Aptos network name, e.g. "testnet".
	ExpectedAptosNetwork() string
}

// Verdict is the readiness of the wallet of one chain at the time it was
// computed.
type Verdict struct {
	IsReady       bool
	StatusMessage string
	// WalletAddress is only set when IsReady is true.
	WalletAddress string
	// ForceNetworkSwitch asks the active wallet to move to the expected
	// network. It does nothing for chains outside the EVM family, when no
	// expected network is configured, or when no network aware wallet is
	// active.
	ForceNetworkSwitch func(ctx context.Context) error
}

type readinessOptions struct {
	autoSwitch bool
}

type ReadinessOption func(*readinessOptions)

// WithAutoSwitch controls whether a detected EVM network mismatch triggers a
// switch request. Enabled by default.
func WithAutoSwitch(enabled bool) ReadinessOption {
	return func(o *readinessOptions) {
		o.autoSwitch = enabled
	}
}

// switchAttempt identifies one detected network mismatch of one connection.
type switchAttempt struct {
	chain      types.ChainID
	generation uint64
	wallet     string
	observed   uint64
	expected   uint64
}

// Reconciler reduces the state of the active wallet of a chain to a Verdict.
type Reconciler struct {
	registry *Registry
	networks NetworkTable

	mu        sync.Mutex
	attempted map[switchAttempt]struct{}
	switches  conc.WaitGroup
}

func NewReconciler(registry *Registry, networks NetworkTable) *Reconciler {
	return &Reconciler{
		registry:  registry,
		networks:  networks,
		attempted: make(map[switchAttempt]struct{}),
	}
}

// IsWalletReady reports whether the active wallet of chain can be used.
//
// For EVM chains on the wrong network, and unless disabled with
// WithAutoSwitch, one switch request is sent per detected mismatch of a
// connection. The request runs in the background; the verdict describes the
// state observed before it. A reconnect counts as a new connection.
func (r *Reconciler) IsWalletReady(ctx context.Context, chain types.ChainID, opts ...ReadinessOption) Verdict {
	options := readinessOptions{autoSwitch: true}
	for _, opt := range opts {
		opt(&options)
	}

	force := func(ctx context.Context) error {
		return r.forceNetworkSwitch(ctx, chain)
	}

	family, err := types.GetChainFamily(chain)
	if err != nil {
		sdk.LoggerFrom(ctx).Debugf("no readiness rules for chain %d: %v", chain, err)

		return notReady(msgNotConnected, force)
	}

	entry, ok := r.registry.activeEntry(chain)
	if !ok {
		return notReady(msgNotConnected, force)
	}
	w := entry.wallet
	address := w.Address()
	if address == "" {
		return notReady(msgNotConnected, force)
	}

	switch family {
	case types.FamilyTerra, chainsel.FamilySolana, types.FamilyAlgorand,
		types.FamilyXpla, types.FamilyInjective, types.FamilyNear:
		return ready(address, force)

	case chainsel.FamilyAptos:
		expected := r.networks.ExpectedAptosNetwork()
		if !aptosNetworkMatches(w, expected) {
			return notReady(fmt.Sprintf("Wallet is not connected to %s.", expected), force)
		}

		return ready(address, force)

	case chainsel.FamilyEVM:
		expected, hasExpected := r.networks.ExpectedEVMNetwork(chain)
		nw, isNetworkWallet := w.(sdk.NetworkWallet)
		if !hasExpected {
			return notReady(fmt.Sprintf("Wallet is not connected to %s. No network is configured for %s",
				r.networks.Cluster(), chain), force)
		}
		if !isNetworkWallet {
			return notReady(r.evmMismatchMessage(expected), force)
		}

		observed := nw.NetworkID()
		if observed == expected {
			r.forgetAttempts(chain)

			return ready(address, force)
		}

		if options.autoSwitch {
			r.autoSwitch(ctx, nw, switchAttempt{
				chain:      chain,
				generation: entry.generation,
				wallet:     nw.Name(),
				observed:   observed,
				expected:   expected,
			})
		}

		return notReady(r.evmMismatchMessage(expected), force)

	default:
		return notReady(msgNotConnected, force)
	}
}

func (r *Reconciler) evmMismatchMessage(expected uint64) string {
	return fmt.Sprintf("Wallet is not connected to %s. Expected Chain ID: %d", r.networks.Cluster(), expected)
}

// autoSwitch starts one switch request per mismatch. Failures are logged, the
// user can still switch through ForceNetworkSwitch.
func (r *Reconciler) autoSwitch(ctx context.Context, w sdk.NetworkWallet, attempt switchAttempt) {
	r.mu.Lock()
	if _, done := r.attempted[attempt]; done {
		r.mu.Unlock()
		return
	}
	// Attempts of earlier connections of the chain can never match again.
	for prev := range r.attempted {
		if prev.chain == attempt.chain && prev.generation != attempt.generation {
			delete(r.attempted, prev)
		}
	}
	r.attempted[attempt] = struct{}{}
	r.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	lggr := sdk.LoggerFrom(ctx)
	lggr.Infof("wallet %s is on network %d, requesting switch to %d", attempt.wallet, attempt.observed, attempt.expected)
	r.switches.Go(func() {
		if err := w.SwitchNetwork(ctx, attempt.expected); err != nil {
			lggr.Warnf("automatic network switch of wallet %s failed: %v", attempt.wallet, err)
		}
	})
}

// Wait blocks until the switch requests started by IsWalletReady have
// returned. It must not be called concurrently with IsWalletReady.
func (r *Reconciler) Wait() {
	r.switches.Wait()
}

func (r *Reconciler) forgetAttempts(chain types.ChainID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := range r.attempted {
		if attempt.chain == chain {
			delete(r.attempted, attempt)
		}
	}
}

func (r *Reconciler) forceNetworkSwitch(ctx context.Context, chain types.ChainID) error {
	if !types.IsEVMChain(chain) {
		return nil
	}
	expected, ok := r.networks.ExpectedEVMNetwork(chain)
	if !ok {
		return nil
	}
	w, ok := r.registry.ActiveWallet(chain)
	if !ok {
		return nil
	}
	nw, ok := w.(sdk.NetworkWallet)
	if !ok {
		return nil
	}

	err := nw.SwitchNetwork(ctx, expected)

	var unsupported *sdkerrors.UnsupportedNetworkError
	if errors.As(err, &unsupported) {
		sdk.LoggerFrom(ctx).Warnf("%v", err)

		return nil
	}

	return err
}

// aptosNetworkMatches compares loosely since wallets disagree on how they
// name networks ("Testnet", "Aptos testnet").
func aptosNetworkMatches(w sdk.Wallet, expected string) bool {
	named, ok := w.(sdk.NamedNetworkWallet)
	if !ok {
		return false
	}
	reported := named.NetworkName()
	if reported == "" {
		return false
	}

	return strings.Contains(strings.ToLower(reported), strings.ToLower(expected))
}

func ready(address string, force func(context.Context) error) Verdict {
	return Verdict{IsReady: true, WalletAddress: address, ForceNetworkSwitch: force}
}

func notReady(message string, force func(context.Context) error) Verdict {
	return Verdict{StatusMessage: message, ForceNetworkSwitch: force}
}
