package aptos

import (
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/crypto"
)

// accountFromPrivateKey builds an account from a hex or AIP-80 encoded
// ed25519 private key.
func accountFromPrivateKey(key string) (*aptos.Account, error) {
	// Instead of using (*Ed25519PrivateKey).FromHex directly, parse manually to pass the strict=false flag
	bytes, err := crypto.ParsePrivateKey(key, crypto.PrivateKeyVariantEd25519, false)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	signer := &crypto.Ed25519PrivateKey{}
	if err := signer.FromBytes(bytes); err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	return aptos.NewAccountFromSigner(signer)
}

// NetworkConfigByName resolves one of the well-known network configs.
func NetworkConfigByName(name string) (aptos.NetworkConfig, error) {
	for _, cfg := range []aptos.NetworkConfig{aptos.MainnetConfig, aptos.TestnetConfig, aptos.DevnetConfig, aptos.LocalnetConfig} {
		if cfg.Name == name {
			return cfg, nil
		}
	}

	return aptos.NetworkConfig{}, fmt.Errorf("unknown aptos network %q", name)
}
