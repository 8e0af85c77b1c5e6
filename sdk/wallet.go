package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/event"

	"github.com/smartcontractkit/walletconn/types"
)

// Wallet is the capability set every chain adapter exposes.
//
// The adapter owns the connection state. Address returns an empty string while
// the wallet is not connected.
type Wallet interface {
	Name() string
	Chain() types.ChainID
	Connect(ctx context.Context) error
	// Disconnect is a no-op on a wallet that is not connected.
	Disconnect(ctx context.Context) error
	Address() string
}

// NetworkWallet is implemented by wallets that can be on one of several
// networks, like the EVM family.
type NetworkWallet interface {
	Wallet
	// NetworkID is the id of the network the wallet is currently on, or 0
	// when unknown.
	NetworkID() uint64
	SwitchNetwork(ctx context.Context, networkID uint64) error
}

// NamedNetworkWallet is implemented by wallets that report their network by
// name, like the Aptos family.
type NamedNetworkWallet interface {
	Wallet
	NetworkName() string
}

// EventSource is implemented by wallets that push lifecycle updates. Events
// are sent for as long as the subscription is held; callers must unsubscribe
// once they stop reading.
type EventSource interface {
	Subscribe(ch chan<- types.WalletEvent) event.Subscription
}
