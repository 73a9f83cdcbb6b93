package ens

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/domain"
)

type ensSuite struct {
	suite.Suite

	calls   map[common.Address]int
	names   map[common.Address]string
	failing error
	im      *impl
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) SetupTest() {
	s.calls = map[common.Address]int{}
	s.names = map[common.Address]string{}
	s.failing = nil
	s.im = newResolver(func(addr common.Address) (string, error) {
		s.calls[addr]++
		if s.failing != nil {
			return "", s.failing
		}
		name, ok := s.names[addr]
		if !ok {
			return "", errors.New("not a resolver")
		}
		return name, nil
	}, nil)
}

func (s *ensSuite) TestReverseResolveCached() {
	address := domain.Address("0x5f3371793285920351344a1EaaAA48d45e600652")
	s.names[common.HexToAddress(string(address))] = "earthart.eth"

	for i := 0; i < 3; i++ {
		res, err := s.im.ReverseResolve(ctx.Background(), address)
		s.NoError(err)
		s.Equal("earthart.eth", res)
	}
	// lower case hits the same key
	res, err := s.im.ReverseResolve(ctx.Background(), address.ToLower())
	s.NoError(err)
	s.Equal("earthart.eth", res)
	s.Equal(1, s.calls[common.HexToAddress(string(address))])
}

func (s *ensSuite) TestReverseResolveUnregistered() {
	res, err := s.im.ReverseResolve(ctx.Background(), domain.Address("0x0000000000000000000000000000000000000001"))
	s.NoError(err)
	s.Equal("", res)
}

func (s *ensSuite) TestReverseResolveError() {
	s.failing = errors.New("rpc down")
	_, err := s.im.ReverseResolve(ctx.Background(), domain.Address("0x0000000000000000000000000000000000000002"))
	s.Error(err)
}

func (s *ensSuite) TestReverseResolveInvalid() {
	_, err := s.im.ReverseResolve(ctx.Background(), domain.Address("0xabc"))
	s.ErrorIs(err, domain.ErrInvalidAddress)
	s.Empty(s.calls)
}
