package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
	"slices"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainID is the bridge-level identifier of a chain.
//
// Values follow the Wormhole chain id numbering, which is what the bridge UI
// keys its per-chain state on. Note that this is not the EVM chain id; the
// EVM network a chain is expected on lives in the network table.
type ChainID uint16

const (
	ChainIDSolana    ChainID = 1
	ChainIDEthereum  ChainID = 2
	ChainIDTerra     ChainID = 3
	ChainIDBSC       ChainID = 4
	ChainIDPolygon   ChainID = 5
	ChainIDAvalanche ChainID = 6
	ChainIDOasis     ChainID = 7
	ChainIDAlgorand  ChainID = 8
	ChainIDAurora    ChainID = 9
	ChainIDFantom    ChainID = 10
	ChainIDKarura    ChainID = 11
	ChainIDAcala     ChainID = 12
	ChainIDKlaytn    ChainID = 13
	ChainIDCelo      ChainID = 14
	ChainIDNear      ChainID = 15
	ChainIDMoonbeam  ChainID = 16
	ChainIDNeon      ChainID = 17
	ChainIDTerra2    ChainID = 18
	ChainIDInjective ChainID = 19
	ChainIDAptos     ChainID = 22
	ChainIDArbitrum  ChainID = 23
	ChainIDOptimism  ChainID = 24
	ChainIDXpla      ChainID = 28
	ChainIDBase      ChainID = 30
)

// Families without a chain-selectors constant. EVM, Solana and Aptos reuse the
// chain-selectors family names so the two numbering schemes stay comparable.
const (
	FamilyTerra     = "terra"
	FamilyAlgorand  = "algorand"
	FamilyNear      = "near"
	FamilyInjective = "injective"
	FamilyXpla      = "xpla"
)

var (
	// ErrChainFamilyNotFound is returned when the chain family is not found for a chain id
	ErrChainFamilyNotFound = errors.New("chain family not found")
)

type chainInfo struct {
	name   string
	family string
}

var chains = map[ChainID]chainInfo{
	ChainIDSolana:    {"solana", chainsel.FamilySolana},
	ChainIDEthereum:  {"ethereum", chainsel.FamilyEVM},
	ChainIDTerra:     {"terra", FamilyTerra},
	ChainIDBSC:       {"bsc", chainsel.FamilyEVM},
	ChainIDPolygon:   {"polygon", chainsel.FamilyEVM},
	ChainIDAvalanche: {"avalanche", chainsel.FamilyEVM},
	ChainIDOasis:     {"oasis", chainsel.FamilyEVM},
	ChainIDAlgorand:  {"algorand", FamilyAlgorand},
	ChainIDAurora:    {"aurora", chainsel.FamilyEVM},
	ChainIDFantom:    {"fantom", chainsel.FamilyEVM},
	ChainIDKarura:    {"karura", chainsel.FamilyEVM},
	ChainIDAcala:     {"acala", chainsel.FamilyEVM},
	ChainIDKlaytn:    {"klaytn", chainsel.FamilyEVM},
	ChainIDCelo:      {"celo", chainsel.FamilyEVM},
	ChainIDNear:      {"near", FamilyNear},
	ChainIDMoonbeam:  {"moonbeam", chainsel.FamilyEVM},
	ChainIDNeon:      {"neon", chainsel.FamilyEVM},
	ChainIDTerra2:    {"terra2", FamilyTerra},
	ChainIDInjective: {"injective", FamilyInjective},
	ChainIDAptos:     {"aptos", chainsel.FamilyAptos},
	ChainIDArbitrum:  {"arbitrum", chainsel.FamilyEVM},
	ChainIDOptimism:  {"optimism", chainsel.FamilyEVM},
	ChainIDXpla:      {"xpla", FamilyXpla},
	ChainIDBase:      {"base", chainsel.FamilyEVM},
}

// GetChainFamily returns the family of the chain id.
func GetChainFamily(id ChainID) (string, error) {
	info, ok := chains[id]
	if !ok {
		return "", fmt.Errorf("%w for chain id %d", ErrChainFamilyNotFound, id)
	}

	return info.family, nil
}

// IsEVMChain reports whether the chain belongs to the EVM family.
func IsEVMChain(id ChainID) bool {
	family, err := GetChainFamily(id)

	return err == nil && family == chainsel.FamilyEVM
}

// EVMChains returns every known EVM chain id in ascending order.
func EVMChains() []ChainID {
	ids := make([]ChainID, 0, len(chains))
	for id, info := range chains {
		if info.family == chainsel.FamilyEVM {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	return ids
}

// String returns the lowercase chain name, or the numeric id when unknown.
func (c ChainID) String() string {
	if info, ok := chains[c]; ok {
		return info.name
	}

	return fmt.Sprintf("chain(%d)", uint16(c))
}

// ChainIDFromString parses a chain name as printed by String.
func ChainIDFromString(name string) (ChainID, error) {
	for id, info := range chains {
		if info.name == name {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w for chain name %q", ErrChainFamilyNotFound, name)
}
