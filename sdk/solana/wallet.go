package solana

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/event"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/smartcontractkit/walletconn/sdk"
	sdkerrors "github.com/smartcontractkit/walletconn/sdk/errors"
	"github.com/smartcontractkit/walletconn/types"
)

var (
	_ sdk.Wallet      = (*Wallet)(nil)
	_ sdk.EventSource = (*Wallet)(nil)
)

const healthOK = "ok"

var errNotSigner = errors.New("wallet is not a required signer of the transaction")

// Signer produces ed25519 signatures for a single account.
// solana.PrivateKey satisfies it.
type Signer interface {
	PublicKey() solana.PublicKey
	Sign(payload []byte) (solana.Signature, error)
}

// Wallet is a Solana wallet backed by a Signer. The RPC client is optional;
// without it the wallet can only sign.
type Wallet struct {
	name   string
	signer Signer
	client *rpc.Client

	mu        sync.RWMutex
	connected bool

	feed  event.Feed
	scope event.SubscriptionScope
}

// NewWallet creates a Solana wallet.
func NewWallet(name string, signer Signer, client *rpc.Client) *Wallet {
	return &Wallet{
		name:   name,
		signer: signer,
		client: client,
	}
}

// NewKeypairWallet loads a solana-keygen JSON keypair file.
func NewKeypairWallet(name, keygenPath string, client *rpc.Client) (*Wallet, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(keygenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load keypair %s: %w", keygenPath, err)
	}

	return NewWallet(name, key, client), nil
}

func (w *Wallet) Name() string {
	return w.name
}

func (w *Wallet) Chain() types.ChainID {
	return types.ChainIDSolana
}

// Address returns the base58 public key while connected.
func (w *Wallet) Address() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.connected {
		return ""
	}

	return w.signer.PublicKey().String()
}

// PublicKey returns the public key of the signer.
func (w *Wallet) PublicKey() solana.PublicKey {
	return w.signer.PublicKey()
}

func (w *Wallet) Subscribe(ch chan<- types.WalletEvent) event.Subscription {
	return w.scope.Track(w.feed.Subscribe(ch))
}

// Connect checks that the cluster is healthy before marking the wallet as
// connected.
func (w *Wallet) Connect(ctx context.Context) error {
	if w.client != nil {
		status, err := w.client.GetHealth(ctx)
		if err != nil {
			return sdkerrors.NewConnectionError(types.ChainIDSolana, w.name, "connect", err)
		}
		if status != healthOK {
			return sdkerrors.NewConnectionError(types.ChainIDSolana, w.name, "connect",
				fmt.Errorf("cluster is unhealthy: %s", status))
		}
	}

	w.mu.Lock()
	w.connected = true
	w.mu.Unlock()

	sdk.LoggerFrom(ctx).Infof("wallet %s connected on solana as %s", w.name, w.signer.PublicKey())

	return nil
}

func (w *Wallet) Disconnect(ctx context.Context) error {
	w.mu.Lock()
	if !w.connected {
		w.mu.Unlock()
		return nil
	}
	w.connected = false
	w.mu.Unlock()

	sdk.LoggerFrom(ctx).Infof("wallet %s disconnected from solana", w.name)
	w.feed.Send(types.WalletEvent{Kind: types.Disconnected, Wallet: w.name})

	return nil
}

// SignTransaction adds the wallet signature to tx in the slot of its account key.
func (w *Wallet) SignTransaction(tx *solana.Transaction) error {
	if w.Address() == "" {
		return sdkerrors.NewNotConnectedError(w.name)
	}

	content, err := tx.Message.MarshalBinary()
	if err != nil {
		return fmt.Errorf("unable to encode message for signing: %w", err)
	}

	numSigners := int(tx.Message.Header.NumRequiredSignatures)
	if numSigners > len(tx.Message.AccountKeys) {
		return fmt.Errorf("message requires %d signatures but has %d account keys", numSigners, len(tx.Message.AccountKeys))
	}

	pub := w.signer.PublicKey()
	idx := -1
	for i, key := range tx.Message.AccountKeys[:numSigners] {
		if key.Equals(pub) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errNotSigner
	}

	sig, err := w.signer.Sign(content)
	if err != nil {
		return fmt.Errorf("unable to sign transaction: %w", err)
	}

	if len(tx.Signatures) < numSigners {
		sigs := make([]solana.Signature, numSigners)
		copy(sigs, tx.Signatures)
		tx.Signatures = sigs
	}
	tx.Signatures[idx] = sig

	return nil
}

// SignSerializedTransaction decodes a wire-format transaction and signs it.
func (w *Wallet) SignSerializedTransaction(raw []byte) (*solana.Transaction, error) {
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, fmt.Errorf("unable to decode transaction: %w", err)
	}
	if err := w.SignTransaction(tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// SignMessage signs an arbitrary off-chain message.
func (w *Wallet) SignMessage(msg []byte) (solana.Signature, error) {
	if w.Address() == "" {
		return solana.Signature{}, sdkerrors.NewNotConnectedError(w.name)
	}

	return w.signer.Sign(msg)
}

// SendTransaction signs tx and submits it to the cluster.
func (w *Wallet) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	if w.client == nil {
		return solana.Signature{}, fmt.Errorf("wallet %s has no rpc client", w.name)
	}
	if err := w.SignTransaction(tx); err != nil {
		return solana.Signature{}, err
	}

	sig, err := w.client.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("unable to send transaction: %w", err)
	}

	return sig, nil
}

// Balance returns the finalized lamport balance of the wallet account.
func (w *Wallet) Balance(ctx context.Context) (uint64, error) {
	if w.client == nil {
		return 0, fmt.Errorf("wallet %s has no rpc client", w.name)
	}

	out, err := w.client.GetBalance(ctx, w.signer.PublicKey(), rpc.CommitmentFinalized)
	if err != nil {
		return 0, fmt.Errorf("unable to get balance: %w", err)
	}

	return out.Value, nil
}
