package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - steward",
			address:    "0x5f3371793285920351344a1EaaAA48d45e600652",
			expIsValid: true,
		},
		{
			desc:       "valid address - zero address",
			address:    "0x0000000000000000000000000000000000000000",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestStruct() {
	type cfg struct {
		EndpointURL   string `validate:"required,url"`
		FilterAddress string `validate:"required,eth_addr"`
	}
	s.NoError(Struct(cfg{
		EndpointURL:   "https://api.studio.thegraph.com/query/24825/aether-optimism/version/latest",
		FilterAddress: "0x0000000000000000000000000000000000000000",
	}))
	s.Error(Struct(cfg{EndpointURL: "not a url", FilterAddress: "0x0000000000000000000000000000000000000000"}))
	s.Error(Struct(cfg{EndpointURL: "http://localhost:8000", FilterAddress: "0xabc"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
