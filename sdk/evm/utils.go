package evm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	// EIP-1193 and JSON-RPC error codes returned by wallet providers.
	codeUserRejected      = 4001
	codeUnauthorized      = 4100
	codeUnrecognizedChain = 4902
	codeMethodNotFound    = -32601
)

// Backend is the JSON-RPC transport to an EIP-1193 style wallet provider.
type Backend interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
	Subscribe(ctx context.Context, namespace string, channel any, args ...any) (ethereum.Subscription, error)
	Close()
}

type rpcBackend struct {
	*rpc.Client
}

// NewRPCBackend dials a wallet provider endpoint, for example a Frame or
// WalletConnect relay exposing the provider API over HTTP or websocket.
func NewRPCBackend(ctx context.Context, url string) (Backend, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial wallet provider %s: %w", url, err)
	}

	return rpcBackend{Client: client}, nil
}

func (b rpcBackend) Subscribe(ctx context.Context, namespace string, channel any, args ...any) (ethereum.Subscription, error) {
	sub, err := b.Client.Subscribe(ctx, namespace, channel, args...)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// rpcErrorCode extracts the JSON-RPC error code of err, if any.
func rpcErrorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}

	return 0, false
}

func isMethodNotFound(err error) bool {
	code, ok := rpcErrorCode(err)

	return ok && code == codeMethodNotFound
}

func isUserRejected(err error) bool {
	code, ok := rpcErrorCode(err)

	return ok && (code == codeUserRejected || code == codeUnauthorized)
}

// subErr returns the error channel of sub, or nil when there is no subscription
// so that a select on it never fires.
func subErr(sub ethereum.Subscription) <-chan error {
	if sub == nil {
		return nil
	}

	return sub.Err()
}
