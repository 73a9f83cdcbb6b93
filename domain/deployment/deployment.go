// Package deployment describes how the Earth collection contract is deployed:
// the named deployer, the ordered constructor arguments and the driver options.
package deployment

import (
	"encoding/json"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/earthart/aether/base/abi"
)

const (
	ContractEarth = "Earth"
	TagEarth      = "Earth"

	// Steward receives the ownership of the collection and its whole sale split
	Steward = "0x5f3371793285920351344a1EaaAA48d45e600652"

	EarthName        = "Aether, Earth, & Art"
	EarthSymbol      = "EARTH"
	EarthBaseURI     = "ipfs://bafybeide2u3kthepdm3t3xpcirarkh4isaurkhzghldsl55m65y5qczcmi/"
	EarthContractURI = "https://metadata.mintplex.xyz/wrYvhRZx9EtKojZZLSO1/contract-metadata"

	EarthMintPrice      = "0.05"
	EarthMaxMintsPerTx  = 5
	EarthCollectionSize = 5
	EarthMaxWalletMints = 100

	totalShares = 100
	etherDigits = 18
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrSharesMismatch = errors.New("payees and shares length mismatch")
	ErrSharesTotal    = errors.New("shares must sum to 100")
	ErrEmptyField     = errors.New("empty field")
	ErrInvalidKey     = errors.New("invalid deployer key")
)

// Options are handed to the deployment driver as is
type Options struct {
	// AutoMine mines the deployment tx right away on local networks
	AutoMine bool `json:"autoMine"`
	Log      bool `json:"log"`
}

// EarthArgs are the Earth constructor arguments, in constructor order
type EarthArgs struct {
	Steward common.Address
	Payees  []common.Address
	Shares  []*big.Int
	Name    string
	Symbol  string
	// URIs is [baseURI, contractURI]
	URIs [2]string
	// MintLimits is [maxMintsPerTx, collectionSize]
	MintLimits [2]*big.Int
	// Sale is [mintPrice in wei, maxWalletMints]
	Sale [2]*big.Int
}

// Values returns the arguments in constructor order with their abi Go types
func (a EarthArgs) Values() []interface{} {
	return []interface{}{
		a.Steward,
		a.Payees,
		a.Shares,
		a.Name,
		a.Symbol,
		a.URIs,
		a.MintLimits,
		a.Sale,
	}
}

// MarshalJSON writes the ordered tuple, addresses checksummed and integers as
// decimal strings.
func (a EarthArgs) MarshalJSON() ([]byte, error) {
	payees := make([]string, len(a.Payees))
	for i, p := range a.Payees {
		payees[i] = p.Hex()
	}
	return json.Marshal([]interface{}{
		a.Steward.Hex(),
		payees,
		bigStrings(a.Shares...),
		a.Name,
		a.Symbol,
		a.URIs,
		bigStrings(a.MintLimits[:]...),
		bigStrings(a.Sale[:]...),
	})
}

// Plan is one contract deployment as the driver expects it
type Plan struct {
	Contract string         `json:"contract"`
	From     common.Address `json:"from"`
	Args     EarthArgs      `json:"args"`
	Options  Options        `json:"options"`
	Tags     []string       `json:"tags"`
}

// Earth returns the deployment of the Earth collection from deployer
func Earth(deployer common.Address) (*Plan, error) {
	price, err := ParseEther(EarthMintPrice)
	if err != nil {
		return nil, err
	}
	steward := common.HexToAddress(Steward)
	return &Plan{
		Contract: ContractEarth,
		From:     deployer,
		Args: EarthArgs{
			Steward:    steward,
			Payees:     []common.Address{steward},
			Shares:     []*big.Int{big.NewInt(totalShares)},
			Name:       EarthName,
			Symbol:     EarthSymbol,
			URIs:       [2]string{EarthBaseURI, EarthContractURI},
			MintLimits: [2]*big.Int{big.NewInt(EarthMaxMintsPerTx), big.NewInt(EarthCollectionSize)},
			Sale:       [2]*big.Int{price, big.NewInt(EarthMaxWalletMints)},
		},
		Options: Options{
			AutoMine: true,
			Log:      true,
		},
		Tags: []string{TagEarth},
	}, nil
}

// Validate checks what the constructor would otherwise revert on
func (p *Plan) Validate() error {
	a := p.Args
	if p.Contract == "" || a.Name == "" || a.Symbol == "" {
		return ErrEmptyField
	}
	if a.Steward == (common.Address{}) {
		return xerrors.Errorf("steward: %w", ErrInvalidAddress)
	}
	if len(a.Payees) == 0 || len(a.Payees) != len(a.Shares) {
		return ErrSharesMismatch
	}
	sum := new(big.Int)
	for i, payee := range a.Payees {
		if payee == (common.Address{}) {
			return xerrors.Errorf("payee %d: %w", i, ErrInvalidAddress)
		}
		if a.Shares[i] == nil || a.Shares[i].Sign() <= 0 {
			return xerrors.Errorf("share %d: %w", i, ErrInvalidAmount)
		}
		sum.Add(sum, a.Shares[i])
	}
	if sum.Cmp(big.NewInt(totalShares)) != 0 {
		return ErrSharesTotal
	}
	for i, v := range a.MintLimits {
		if v == nil || v.Sign() <= 0 {
			return xerrors.Errorf("mint limit %d: %w", i, ErrInvalidAmount)
		}
	}
	for i, v := range a.Sale {
		if v == nil || v.Sign() < 0 {
			return xerrors.Errorf("sale %d: %w", i, ErrInvalidAmount)
		}
	}
	return nil
}

// PackConstructor abi encodes the constructor arguments, as appended to the
// contract bytecode and asked for by explorer verification.
func (p *Plan) PackConstructor() ([]byte, error) {
	return abi.EarthABI.Pack("", p.Args.Values()...)
}

// ParseEther converts a decimal ether amount into wei
func ParseEther(ether string) (*big.Int, error) {
	d, err := decimal.NewFromString(ether)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", err, ErrInvalidAmount)
	}
	wei := d.Shift(etherDigits)
	if wei.IsNegative() || !wei.Equal(wei.Truncate(0)) {
		return nil, xerrors.Errorf("%s: %w", ether, ErrInvalidAmount)
	}
	return wei.BigInt(), nil
}

// DeployerFromKey derives the deployer account from a hex private key
func DeployerFromKey(hexKey string) (common.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return common.Address{}, xerrors.Errorf("%s: %w", err, ErrInvalidKey)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

func bigStrings(values ...*big.Int) []string {
	res := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		res[i] = v.String()
	}
	return res
}
