package walletconn

import (
	"context"
	"errors"
	"sync"

	"github.com/smartcontractkit/walletconn/types"
)

// ErrDialogClosed is returned when a wallet is selected while the dialog is
// not open.
var ErrDialogClosed = errors.New("wallet selection dialog is not open")

// WalletOption is one entry of the wallet selection list.
type WalletOption struct {
	Name      string
	Connected bool
}

// Dialog is the wallet selection flow of one connect button. It holds no
// wallet state of its own, selections go through the registry.
type Dialog struct {
	registry *Registry

	mu    sync.Mutex
	open  bool
	chain types.ChainID
}

func NewDialog(registry *Registry) *Dialog {
	return &Dialog{registry: registry}
}

// Open shows the wallets available for chain.
func (d *Dialog) Open(chain types.ChainID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.open = true
	d.chain = chain
}

func (d *Dialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.open = false
}

func (d *Dialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.open
}

// Chain returns the chain the dialog was last opened for.
func (d *Dialog) Chain() types.ChainID {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.chain
}

// Options lists the available wallets of the dialog's chain in registration
// order.
func (d *Dialog) Options() []WalletOption {
	chain := d.Chain()
	active, hasActive := d.registry.ActiveWallet(chain)

	wallets := d.registry.AvailableWallets(chain)
	options := make([]WalletOption, 0, len(wallets))
	for _, w := range wallets {
		options = append(options, WalletOption{
			Name:      w.Name(),
			Connected: hasActive && active == w && w.Address() != "",
		})
	}

	return options
}

// Select connects the named wallet and makes it active. The dialog closes
// only when that succeeded; on failure it stays open so the user can pick
// again.
func (d *Dialog) Select(ctx context.Context, name string) error {
	d.mu.Lock()
	open, chain := d.open, d.chain
	d.mu.Unlock()

	if !open {
		return ErrDialogClosed
	}

	w, err := d.registry.AvailableWallet(chain, name)
	if err != nil {
		return err
	}

	if err := d.registry.Connect(ctx, w); err != nil {
		return err
	}

	d.Close()

	return nil
}

// Toggle is the connect button: it disconnects the active wallet of chain
// when there is one with an address, and opens the dialog otherwise. It
// reports whether the dialog was opened.
func (d *Dialog) Toggle(ctx context.Context, chain types.ChainID) (bool, error) {
	if w, ok := d.registry.ActiveWallet(chain); ok && w.Address() != "" {
		return false, d.registry.Disconnect(ctx, chain)
	}

	d.Open(chain)

	return true, nil
}

// ShortAddress abbreviates an address for display, keeping its first six and
// last four characters.
func ShortAddress(address string) string {
	const head, tail = 6, 4
	if len(address) <= head+tail+3 {
		return address
	}

	return address[:head] + "..." + address[len(address)-tail:]
}
