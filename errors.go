package walletconn

import (
	"fmt"

	"github.com/smartcontractkit/walletconn/types"
)

// DuplicateWalletError is returned when a wallet is added to a chain that
// already has a wallet with the same name.
type DuplicateWalletError struct {
	Chain types.ChainID
	Name  string
}

func (e *DuplicateWalletError) Error() string {
	return fmt.Sprintf("wallet %s is already registered for chain %s", e.Name, e.Chain)
}

func NewDuplicateWalletError(chain types.ChainID, name string) *DuplicateWalletError {
	return &DuplicateWalletError{Chain: chain, Name: name}
}

// UnsupportedChainError is returned when no wallet can be built for a
// configured chain.
type UnsupportedChainError struct {
	Chain  types.ChainID
	Family string
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("no wallet adapter for chain %s (family %s)", e.Chain, e.Family)
}

func NewUnsupportedChainError(chain types.ChainID, family string) *UnsupportedChainError {
	return &UnsupportedChainError{Chain: chain, Family: family}
}
