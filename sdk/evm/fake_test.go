package evm

import (
	"context"
	"encoding/json"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/walletconn/types"
)

// fakeRPCError implements rpc.Error.
type fakeRPCError struct {
	code int
	msg  string
}

func (e fakeRPCError) Error() string  { return e.msg }
func (e fakeRPCError) ErrorCode() int { return e.code }

type handlerFunc func(args ...any) (any, error)

// fakeBackend is an in-memory wallet provider. Methods without a handler fail
// with "method not found" like a provider that does not implement them.
type fakeBackend struct {
	mu       sync.Mutex
	handlers map[string]handlerFunc
	calls    map[string]int
	subs     map[string]*fakeSub
	subErr   error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		handlers: map[string]handlerFunc{},
		calls:    map[string]int{},
		subs:     map[string]*fakeSub{},
	}
}

func (b *fakeBackend) handle(method string, h handlerFunc) *fakeBackend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[method] = h

	return b
}

func (b *fakeBackend) returns(method string, v any) *fakeBackend {
	return b.handle(method, func(...any) (any, error) { return v, nil })
}

func (b *fakeBackend) callCount(method string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.calls[method]
}

func (b *fakeBackend) sub(name string) *fakeSub {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.subs[name]
}

func (b *fakeBackend) CallContext(_ context.Context, result any, method string, args ...any) error {
	b.mu.Lock()
	b.calls[method]++
	h, ok := b.handlers[method]
	b.mu.Unlock()

	if !ok {
		return fakeRPCError{code: codeMethodNotFound, msg: "the method " + method + " does not exist/is not available"}
	}
	v, err := h(args...)
	if err != nil {
		return err
	}
	if result == nil || v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, result)
}

func (b *fakeBackend) Subscribe(_ context.Context, _ string, channel any, args ...any) (ethereum.Subscription, error) {
	if b.subErr != nil {
		return nil, b.subErr
	}
	sub := &fakeSub{channel: channel, err: make(chan error, 1)}

	b.mu.Lock()
	b.subs[args[0].(string)] = sub
	b.mu.Unlock()

	return sub, nil
}

func (b *fakeBackend) Close() {}

type fakeSub struct {
	channel      any
	err          chan error
	once         sync.Once
	unsubscribed atomic.Bool
}

func (s *fakeSub) Unsubscribe() {
	s.once.Do(func() {
		s.unsubscribed.Store(true)
		close(s.err)
	})
}

func (s *fakeSub) Err() <-chan error {
	return s.err
}

// fakeAccountsWallet overrides the parts of accounts.Wallet the adapter uses.
type fakeAccountsWallet struct {
	accounts.Wallet

	url       accounts.URL
	accts     []accounts.Account
	derived   accounts.Account
	openErr   error
	deriveErr error
	closeErr  error
	opened    atomic.Bool
	signed    []byte
}

func (w *fakeAccountsWallet) URL() accounts.URL { return w.url }

func (w *fakeAccountsWallet) Open(string) error {
	if w.openErr != nil {
		return w.openErr
	}
	w.opened.Store(true)

	return nil
}

func (w *fakeAccountsWallet) Close() error {
	w.opened.Store(false)

	return w.closeErr
}

func (w *fakeAccountsWallet) Accounts() []accounts.Account { return w.accts }

func (w *fakeAccountsWallet) Derive(accounts.DerivationPath, bool) (accounts.Account, error) {
	return w.derived, w.deriveErr
}

func (w *fakeAccountsWallet) SignText(_ accounts.Account, text []byte) ([]byte, error) {
	w.signed = text

	return []byte("signature"), nil
}

// fakeAccountsBackend publishes wallet arrival/drop events.
type fakeAccountsBackend struct {
	feed event.Feed
}

func (b *fakeAccountsBackend) Wallets() []accounts.Wallet { return nil }

func (b *fakeAccountsBackend) Subscribe(sink chan<- accounts.WalletEvent) event.Subscription {
	return b.feed.Subscribe(sink)
}

type fakeChainIDReader struct {
	id  uint64
	err error
}

func (r fakeChainIDReader) ChainID(context.Context) (*big.Int, error) {
	if r.err != nil {
		return nil, r.err
	}

	return new(big.Int).SetUint64(r.id), nil
}

func requireEvent(t *testing.T, events <-chan types.WalletEvent) types.WalletEvent {
	t.Helper()

	select {
	case ev := <-events:
		return ev
	case <-time.After(time.Second):
		require.FailNow(t, "timed out waiting for wallet event")
	}

	return types.WalletEvent{}
}
