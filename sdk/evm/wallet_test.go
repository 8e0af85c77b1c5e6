package evm

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartcontractkit/walletconn/sdk"
	sdkerrors "github.com/smartcontractkit/walletconn/sdk/errors"
	"github.com/smartcontractkit/walletconn/types"
)

const (
	testAddr1 = "0x8ba1f109551bd432803012645ac136ddd64dba72"
	testAddr2 = "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"
)

func testContext() context.Context {
	return sdk.WithLogger(context.Background(), zap.NewNop().Sugar())
}

func newConnectableBackend(chainID uint64) *fakeBackend {
	return newFakeBackend().
		returns("eth_requestAccounts", []string{testAddr1}).
		returns("eth_chainId", hexutil.Uint64(chainID)).
		returns("wallet_revokePermissions", nil)
}

func TestWallet_ConnectDisconnect(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	backend := newConnectableBackend(5)
	w := NewWallet("Frame", types.ChainIDEthereum, backend)

	events := make(chan types.WalletEvent, 8)
	sub := w.Subscribe(events)
	defer sub.Unsubscribe()

	assert.Empty(t, w.Address())
	require.NoError(t, w.Connect(ctx))

	assert.Equal(t, "Frame", w.Name())
	assert.Equal(t, types.ChainIDEthereum, w.Chain())
	assert.Equal(t, common.HexToAddress(testAddr1).Hex(), w.Address())
	assert.Equal(t, uint64(5), w.NetworkID())

	// A second connect is a no-op.
	require.NoError(t, w.Connect(ctx))
	assert.Equal(t, 1, backend.callCount("eth_requestAccounts"))

	require.NoError(t, w.Disconnect(ctx))
	assert.Empty(t, w.Address())
	assert.Zero(t, w.NetworkID())
	assert.True(t, backend.sub("accountsChanged").unsubscribed.Load())
	assert.True(t, backend.sub("chainChanged").unsubscribed.Load())

	ev := requireEvent(t, events)
	assert.Equal(t, types.Disconnected, ev.Kind)
	assert.Equal(t, "Frame", ev.Wallet)

	// Disconnecting an already disconnected wallet is a no-op.
	require.NoError(t, w.Disconnect(ctx))
	assert.Equal(t, 1, backend.callCount("wallet_revokePermissions"))
}

func TestWallet_Connect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		backend    *fakeBackend
		wantReject bool
	}{
		{
			name: "user rejected",
			backend: newFakeBackend().handle("eth_requestAccounts", func(...any) (any, error) {
				return nil, fakeRPCError{code: codeUserRejected, msg: "User rejected the request."}
			}),
			wantReject: true,
		},
		{
			name:    "no accounts",
			backend: newFakeBackend().returns("eth_requestAccounts", []string{}),
		},
		{
			name: "chain id unavailable",
			backend: newFakeBackend().
				returns("eth_requestAccounts", []string{testAddr1}).
				handle("eth_chainId", func(...any) (any, error) { return nil, errors.New("provider offline") }),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := NewWallet("Frame", types.ChainIDBSC, tt.backend)
			err := w.Connect(testContext())

			var connErr *sdkerrors.ConnectionError
			require.ErrorAs(t, err, &connErr)
			assert.Equal(t, types.ChainIDBSC, connErr.Chain)
			assert.Equal(t, "connect", connErr.Op)
			assert.Equal(t, tt.wantReject, errors.Is(err, sdkerrors.ErrUserRejected))
			assert.Empty(t, w.Address())
		})
	}
}

func TestWallet_Connect_WithoutSubscriptions(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	backend := newConnectableBackend(1)
	backend.subErr = errors.New("notifications not supported")
	w := NewWallet("Injected", types.ChainIDEthereum, backend)

	require.NoError(t, w.Connect(ctx))
	assert.NotEmpty(t, w.Address())
	require.NoError(t, w.Disconnect(ctx))
	assert.Empty(t, w.Address())
}

func TestWallet_LiveUpdates(t *testing.T) {
	t.Parallel()

	backend := newConnectableBackend(1)
	w := NewWallet("Frame", types.ChainIDEthereum, backend)
	require.NoError(t, w.Connect(testContext()))

	events := make(chan types.WalletEvent, 8)
	sub := w.Subscribe(events)
	defer sub.Unsubscribe()

	backend.sub("chainChanged").channel.(chan hexutil.Uint64) <- 5
	ev := requireEvent(t, events)
	assert.Equal(t, types.NetworkChanged, ev.Kind)
	assert.Equal(t, uint64(5), ev.NetworkID)
	assert.Equal(t, uint64(5), w.NetworkID())

	backend.sub("accountsChanged").channel.(chan []common.Address) <- []common.Address{common.HexToAddress(testAddr2)}
	ev = requireEvent(t, events)
	assert.Equal(t, types.AccountsChanged, ev.Kind)
	assert.Equal(t, common.HexToAddress(testAddr2).Hex(), ev.Address)
	assert.Equal(t, common.HexToAddress(testAddr2).Hex(), w.Address())

	// The wallet locking itself reports an empty account list.
	backend.sub("accountsChanged").channel.(chan []common.Address) <- []common.Address{}
	ev = requireEvent(t, events)
	assert.Equal(t, types.Disconnected, ev.Kind)
	assert.Empty(t, w.Address())
	assert.True(t, backend.sub("chainChanged").unsubscribed.Load())
}

func TestWallet_SubscriptionFailureDisconnects(t *testing.T) {
	t.Parallel()

	backend := newConnectableBackend(1)
	w := NewWallet("Frame", types.ChainIDEthereum, backend)
	require.NoError(t, w.Connect(testContext()))

	events := make(chan types.WalletEvent, 8)
	sub := w.Subscribe(events)
	defer sub.Unsubscribe()

	backend.sub("chainChanged").err <- errors.New("connection reset")

	ev := requireEvent(t, events)
	assert.Equal(t, types.Disconnected, ev.Kind)
	assert.Empty(t, w.Address())
	assert.True(t, backend.sub("accountsChanged").unsubscribed.Load())
}

func TestWallet_SwitchNetwork(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		current := hexutil.Uint64(1)
		var requested any
		backend := newConnectableBackend(1)
		backend.handle("eth_chainId", func(...any) (any, error) { return current, nil })
		backend.handle("wallet_switchEthereumChain", func(args ...any) (any, error) {
			requested = args[0]
			current = 5

			return nil, nil
		})

		w := NewWallet("Frame", types.ChainIDEthereum, backend)
		require.NoError(t, w.Connect(testContext()))

		require.NoError(t, w.SwitchNetwork(testContext(), 5))
		assert.Equal(t, map[string]string{"chainId": "0x5"}, requested)
		assert.Equal(t, uint64(5), w.NetworkID())
	})

	t.Run("unrecognized chain", func(t *testing.T) {
		t.Parallel()

		backend := newConnectableBackend(1).handle("wallet_switchEthereumChain", func(...any) (any, error) {
			return nil, fakeRPCError{code: codeUnrecognizedChain, msg: "Unrecognized chain ID"}
		})
		w := NewWallet("Frame", types.ChainIDEthereum, backend)
		require.NoError(t, w.Connect(testContext()))

		var unsupported *sdkerrors.UnsupportedNetworkError
		require.ErrorAs(t, w.SwitchNetwork(testContext(), 97), &unsupported)
		assert.Equal(t, uint64(97), unsupported.NetworkID)
		assert.Equal(t, uint64(1), w.NetworkID())
	})

	t.Run("method not implemented", func(t *testing.T) {
		t.Parallel()

		w := NewWallet("Frame", types.ChainIDEthereum, newConnectableBackend(1))
		require.NoError(t, w.Connect(testContext()))

		var unsupported *sdkerrors.UnsupportedNetworkError
		require.ErrorAs(t, w.SwitchNetwork(testContext(), 5), &unsupported)
	})

	t.Run("user rejected", func(t *testing.T) {
		t.Parallel()

		backend := newConnectableBackend(1).handle("wallet_switchEthereumChain", func(...any) (any, error) {
			return nil, fakeRPCError{code: codeUserRejected, msg: "User rejected the request."}
		})
		w := NewWallet("Frame", types.ChainIDEthereum, backend)
		require.NoError(t, w.Connect(testContext()))

		require.ErrorIs(t, w.SwitchNetwork(testContext(), 5), sdkerrors.ErrUserRejected)
	})

	t.Run("not connected", func(t *testing.T) {
		t.Parallel()

		w := NewWallet("Frame", types.ChainIDEthereum, newConnectableBackend(1))

		var notConnected *sdkerrors.NotConnectedError
		require.ErrorAs(t, w.SwitchNetwork(testContext(), 5), &notConnected)
	})
}

func TestWallet_SignAndSend(t *testing.T) {
	t.Parallel()

	txHash := common.HexToHash("0x01")
	var sentArgs any
	backend := newConnectableBackend(1).
		returns("personal_sign", hexutil.Bytes{0xde, 0xad}).
		handle("eth_sendTransaction", func(args ...any) (any, error) {
			sentArgs = args[0]

			return txHash, nil
		})
	w := NewWallet("Frame", types.ChainIDEthereum, backend)

	_, err := w.SignMessage(testContext(), []byte("hello"))
	var notConnected *sdkerrors.NotConnectedError
	require.ErrorAs(t, err, &notConnected)

	require.NoError(t, w.Connect(testContext()))

	sig, err := w.SignMessage(testContext(), []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, sig)

	to := common.HexToAddress(testAddr2)
	hash, err := w.SendTransaction(testContext(), TransactionArgs{To: &to})
	require.NoError(t, err)
	assert.Equal(t, txHash, hash)
	require.IsType(t, TransactionArgs{}, sentArgs)
	assert.Equal(t, common.HexToAddress(testAddr1), sentArgs.(TransactionArgs).From)
}
