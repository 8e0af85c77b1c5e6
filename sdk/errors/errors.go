package sdkerrors

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/walletconn/types"
)

// ErrUserRejected is wrapped by a ConnectionError when the wallet user
// declined the request.
var ErrUserRejected = errors.New("user rejected the request")

// ConnectionError is returned when a wallet rejects or fails a connect or
// disconnect request.
type ConnectionError struct {
	Chain  types.ChainID
	Wallet string
	Op     string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s %s wallet on %s: %v", e.Op, e.Wallet, e.Chain, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(chain types.ChainID, wallet, op string, err error) *ConnectionError {
	return &ConnectionError{Chain: chain, Wallet: wallet, Op: op, Err: err}
}

// AsConnectionError returns err unchanged when it already is a ConnectionError
// and wraps it into one otherwise.
func AsConnectionError(chain types.ChainID, wallet, op string, err error) error {
	if err == nil {
		return nil
	}

	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return err
	}

	return NewConnectionError(chain, wallet, op, err)
}

// UnsupportedNetworkError is returned when the wallet cannot switch to the
// requested network programmatically.
type UnsupportedNetworkError struct {
	Wallet    string
	NetworkID uint64
}

func (e *UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("wallet %s does not support switching to network %d", e.Wallet, e.NetworkID)
}

func NewUnsupportedNetworkError(wallet string, networkID uint64) *UnsupportedNetworkError {
	return &UnsupportedNetworkError{Wallet: wallet, NetworkID: networkID}
}

// UnknownWalletError is returned when a wallet is selected that is not in the
// available list of the chain. It means the caller is holding a stale list.
type UnknownWalletError struct {
	Chain types.ChainID
	Name  string
}

func (e *UnknownWalletError) Error() string {
	return fmt.Sprintf("wallet %s does not exist for chain %s", e.Name, e.Chain)
}

func NewUnknownWalletError(chain types.ChainID, name string) *UnknownWalletError {
	return &UnknownWalletError{Chain: chain, Name: name}
}

// NotConnectedError is returned by signing operations on a wallet that has
// no live connection.
type NotConnectedError struct {
	Wallet string
}

func (e *NotConnectedError) Error() string {
	return fmt.Sprintf("wallet %s is not connected", e.Wallet)
}

func NewNotConnectedError(wallet string) *NotConnectedError {
	return &NotConnectedError{Wallet: wallet}
}
