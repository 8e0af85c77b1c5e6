package solana

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartcontractkit/walletconn/sdk"
	sdkerrors "github.com/smartcontractkit/walletconn/sdk/errors"
	"github.com/smartcontractkit/walletconn/types"
)

var anyContext = mock.MatchedBy(func(_ context.Context) bool { return true })

// mockJSONRPCClient mocks the transport under rpc.Client. Only CallForInto is
// used by the calls the wallet makes.
type mockJSONRPCClient struct {
	rpc.JSONRPCClient
	mock.Mock
}

func (m *mockJSONRPCClient) CallForInto(ctx context.Context, out any, method string, params []any) error {
	args := m.Called(ctx, out, method, params)

	return args.Error(0)
}

func newMockClient(t *testing.T) (*mockJSONRPCClient, *rpc.Client) {
	t.Helper()

	m := &mockJSONRPCClient{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m, rpc.NewWithCustomRPCClient(m)
}

func fillJSON(t *testing.T, raw string) func(mock.Arguments) {
	t.Helper()

	return func(args mock.Arguments) {
		require.NoError(t, json.Unmarshal([]byte(raw), args.Get(1)))
	}
}

func testContext() context.Context {
	return sdk.WithLogger(context.Background(), zap.NewNop().Sugar())
}

func newTransferTx(t *testing.T, payer, to solana.PublicKey) *solana.Transaction {
	t.Helper()

	tx, err := solana.NewTransaction(
		[]solana.Instruction{system.NewTransferInstruction(1_000, payer, to).Build()},
		solana.Hash{},
		solana.TransactionPayer(payer),
	)
	require.NoError(t, err)

	return tx
}

func requireSignedBy(t *testing.T, tx *solana.Transaction, key solana.PublicKey) {
	t.Helper()

	content, err := tx.Message.MarshalBinary()
	require.NoError(t, err)
	require.NotEmpty(t, tx.Signatures)
	assert.True(t, tx.Signatures[0].Verify(key, content))
}

func TestWallet_ConnectDisconnect(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	key := solana.NewWallet().PrivateKey
	m, client := newMockClient(t)
	m.On("CallForInto", anyContext, mock.Anything, "getHealth", mock.Anything).
		Run(fillJSON(t, `"ok"`)).Return(nil).Once()

	w := NewWallet("Phantom", key, client)
	events := make(chan types.WalletEvent, 4)
	sub := w.Subscribe(events)
	defer sub.Unsubscribe()

	assert.Equal(t, types.ChainIDSolana, w.Chain())
	assert.Empty(t, w.Address())

	require.NoError(t, w.Connect(ctx))
	assert.Equal(t, key.PublicKey().String(), w.Address())

	require.NoError(t, w.Disconnect(ctx))
	assert.Empty(t, w.Address())
	ev := <-events
	assert.Equal(t, types.Disconnected, ev.Kind)

	require.NoError(t, w.Disconnect(ctx))
	assert.Empty(t, events)
}

func TestWallet_Connect_Unhealthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T, m *mockJSONRPCClient)
	}{
		{
			name: "rpc error",
			setup: func(t *testing.T, m *mockJSONRPCClient) {
				t.Helper()
				m.On("CallForInto", anyContext, mock.Anything, "getHealth", mock.Anything).
					Return(errors.New("node is behind by 42 slots")).Once()
			},
		},
		{
			name: "unexpected status",
			setup: func(t *testing.T, m *mockJSONRPCClient) {
				t.Helper()
				m.On("CallForInto", anyContext, mock.Anything, "getHealth", mock.Anything).
					Run(fillJSON(t, `"behind"`)).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, client := newMockClient(t)
			tt.setup(t, m)

			w := NewWallet("Phantom", solana.NewWallet().PrivateKey, client)

			var connErr *sdkerrors.ConnectionError
			require.ErrorAs(t, w.Connect(testContext()), &connErr)
			assert.Equal(t, types.ChainIDSolana, connErr.Chain)
			assert.Empty(t, w.Address())
		})
	}
}

func TestWallet_SignTransaction(t *testing.T) {
	t.Parallel()

	key := solana.NewWallet().PrivateKey
	w := NewWallet("Solflare", key, nil)

	tx := newTransferTx(t, key.PublicKey(), solana.NewWallet().PublicKey())

	var notConnected *sdkerrors.NotConnectedError
	require.ErrorAs(t, w.SignTransaction(tx), &notConnected)

	require.NoError(t, w.Connect(testContext()))
	require.NoError(t, w.SignTransaction(tx))
	requireSignedBy(t, tx, key.PublicKey())

	foreign := newTransferTx(t, solana.NewWallet().PublicKey(), key.PublicKey())
	require.ErrorIs(t, w.SignTransaction(foreign), errNotSigner)
}

func TestWallet_SignSerializedTransaction(t *testing.T) {
	t.Parallel()

	key := solana.NewWallet().PrivateKey
	w := NewWallet("Backpack", key, nil)
	require.NoError(t, w.Connect(testContext()))

	tx := newTransferTx(t, key.PublicKey(), solana.NewWallet().PublicKey())
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)
	raw, err := tx.MarshalBinary()
	require.NoError(t, err)

	signed, err := w.SignSerializedTransaction(raw)
	require.NoError(t, err)
	requireSignedBy(t, signed, key.PublicKey())

	_, err = w.SignSerializedTransaction([]byte{0x01})
	require.Error(t, err)
}

func TestWallet_SignMessage(t *testing.T) {
	t.Parallel()

	key := solana.NewWallet().PrivateKey
	w := NewWallet("Phantom", key, nil)
	require.NoError(t, w.Connect(testContext()))

	sig, err := w.SignMessage([]byte("bridge"))
	require.NoError(t, err)
	assert.True(t, sig.Verify(key.PublicKey(), []byte("bridge")))
}

func TestWallet_SendTransactionAndBalance(t *testing.T) {
	t.Parallel()

	key := solana.NewWallet().PrivateKey
	m, client := newMockClient(t)
	want := solana.MustSignatureFromBase58("3Kp5n9Ye69MNAeUEiw77QCMR2c5csEUxr3opSUzFJM7dFRf5jUYNufbb4B1caQehD1wGrP3yGCo5N7V9W96CQzAH")

	m.On("CallForInto", anyContext, mock.Anything, "getHealth", mock.Anything).
		Run(fillJSON(t, `"ok"`)).Return(nil).Once()
	m.On("CallForInto", anyContext, mock.Anything, "sendTransaction", mock.Anything).
		Run(func(args mock.Arguments) {
			out, ok := args.Get(1).(*solana.Signature)
			require.True(t, ok)
			*out = want
		}).Return(nil).Once()
	m.On("CallForInto", anyContext, mock.Anything, "getBalance", mock.Anything).
		Run(fillJSON(t, `{"context":{"slot":1},"value":2500000000}`)).Return(nil).Once()

	w := NewWallet("Phantom", key, client)
	require.NoError(t, w.Connect(testContext()))

	tx := newTransferTx(t, key.PublicKey(), solana.NewWallet().PublicKey())
	got, err := w.SendTransaction(testContext(), tx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	requireSignedBy(t, tx, key.PublicKey())

	balance, err := w.Balance(testContext())
	require.NoError(t, err)
	assert.Equal(t, uint64(2_500_000_000), balance)
}

func TestWallet_WithoutClient(t *testing.T) {
	t.Parallel()

	w := NewWallet("Phantom", solana.NewWallet().PrivateKey, nil)
	require.NoError(t, w.Connect(testContext()))

	_, err := w.Balance(testContext())
	require.Error(t, err)
	_, err = w.SendTransaction(testContext(), &solana.Transaction{})
	require.Error(t, err)
}
