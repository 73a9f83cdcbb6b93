package explorer

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ExplorerTestSuite struct {
	suite.Suite
	f *Formatter
}

func (s *ExplorerTestSuite) SetupTest() {
	s.f = New("https://optimistic.etherscan.io/", "")
}

func TestExplorerTestSuite(t *testing.T) {
	suite.Run(t, new(ExplorerTestSuite))
}

func (s *ExplorerTestSuite) TestAddress() {
	tests := []struct {
		desc    string
		address string
		name    string
		exp     Link
	}{
		{
			desc:    "lower case address is checksummed",
			address: "0x5f3371793285920351344a1eaaaa48d45e600652",
			exp: Link{
				Text:  "0x5f3...0652",
				Title: "0x5f3371793285920351344a1EaaAA48d45e600652",
				Href:  "https://optimistic.etherscan.io/address/0x5f3371793285920351344a1EaaAA48d45e600652",
			},
		},
		{
			desc:    "ens name replaces short form",
			address: "0x5f3371793285920351344a1EaaAA48d45e600652",
			name:    "earthart.eth",
			exp: Link{
				Text:  "earthart.eth",
				Title: "0x5f3371793285920351344a1EaaAA48d45e600652",
				Href:  "https://optimistic.etherscan.io/address/0x5f3371793285920351344a1EaaAA48d45e600652",
			},
		},
		{
			desc:    "invalid address is kept",
			address: "0xabc",
			exp:     Link{Text: "0xabc", Title: "0xabc"},
		},
	}
	for _, t := range tests {
		s.Equal(t.exp, s.f.Address(t.address, t.name), t.desc)
	}
}

func (s *ExplorerTestSuite) TestAddressWithoutExplorer() {
	l := New("", "").Address("0x5f3371793285920351344a1EaaAA48d45e600652", "")
	s.Empty(l.Href)
	s.Equal("0x5f3...0652", l.Text)
}

func (s *ExplorerTestSuite) TestTxHash() {
	hash := "0x7d4a470c1f919efbc629d12c57cf5dbc7eee958d0b6d787f842944c0be83c8c3"
	s.Equal(Link{
		Text:  "0x7d4a...c8c3",
		Title: hash,
		Href:  "/blockexplorer/transaction/" + hash,
	}, s.f.TxHash(hash))

	s.Equal(Link{Text: "0x1", Title: "0x1", Href: "/blockexplorer/transaction/0x1"}, s.f.TxHash("0x1"))
}
