package types

import "fmt"

// WalletEventKind is the kind of lifecycle notification a wallet adapter emits.
type WalletEventKind int

const (
	// AccountsChanged is emitted when the wallet switches its selected account.
	AccountsChanged WalletEventKind = iota + 1
	// NetworkChanged is emitted when the wallet moves to another network.
	NetworkChanged
	// Disconnected is emitted when the connection ends, whether requested by
	// the caller or initiated by the wallet itself.
	Disconnected
)

func (k WalletEventKind) String() string {
	switch k {
	case AccountsChanged:
		return "accountsChanged"
	case NetworkChanged:
		return "networkChanged"
	case Disconnected:
		return "disconnected"
	default:
		return fmt.Sprintf("WalletEventKind(%d)", int(k))
	}
}

// WalletEvent is a one-shot notification from a wallet adapter.
type WalletEvent struct {
	Kind WalletEventKind
	// Wallet is the name of the wallet that emitted the event.
	Wallet string
	// Address is set for AccountsChanged.
	Address string
	// NetworkID is set for NetworkChanged.
	NetworkID uint64
}

// RegistryChangeKind is what changed about the active wallet of a chain.
type RegistryChangeKind int

const (
	// ActiveWalletChanged is published when the slot is filled, replaced or
	// cleared.
	ActiveWalletChanged RegistryChangeKind = iota
	// ActiveAccountChanged is published when the active wallet switches account.
	ActiveAccountChanged
	// ActiveNetworkChanged is published when the active wallet moves to another
	// network.
	ActiveNetworkChanged
)

func (k RegistryChangeKind) String() string {
	switch k {
	case ActiveWalletChanged:
		return "activeWalletChanged"
	case ActiveAccountChanged:
		return "activeAccountChanged"
	case ActiveNetworkChanged:
		return "activeNetworkChanged"
	default:
		return fmt.Sprintf("RegistryChangeKind(%d)", int(k))
	}
}

// RegistryChange is published after the active wallet of a chain changed.
// Wallet is empty when the slot was cleared.
type RegistryChange struct {
	Kind   RegistryChangeKind
	Chain  ChainID
	Wallet string
}
