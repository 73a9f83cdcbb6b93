package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/domain"
	"github.com/earthart/aether/service/subgraph"
	"github.com/earthart/aether/service/subgraph/mocks"
)

var (
	mockCtx = ctx.Background()
)

type CollectorRepoTestSuite struct {
	suite.Suite
	client *mocks.Client
	repo   domain.CollectorRepo
}

func (s *CollectorRepoTestSuite) SetupTest() {
	s.client = &mocks.Client{}
	s.repo = New(s.client)
}

func TestCollectorRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CollectorRepoTestSuite))
}

func (s *CollectorRepoTestSuite) TestFindMintedKeepsOrder() {
	s.client.On("Transfers", mock.Anything).Return([]subgraph.Transfer{
		{Id: "0x2", To: "0xdef", TokenId: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{Id: "0x1", To: "0xabc", TokenId: "7"},
	}, nil).Once()

	res, err := s.repo.FindMinted(mockCtx)
	s.NoError(err)
	s.Equal([]domain.CollectorRecord{
		{Id: "0x2", To: "0xdef", TokenId: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{Id: "0x1", To: "0xabc", TokenId: "7"},
	}, res)
	s.client.AssertExpectations(s.T())
}

func (s *CollectorRepoTestSuite) TestFindMintedDuplicateIds() {
	s.client.On("Transfers", mock.Anything).Return([]subgraph.Transfer{
		{Id: "0x1", To: "0xabc", TokenId: "7"},
		{Id: "0x1", To: "0xabc", TokenId: "7"},
	}, nil).Once()

	res, err := s.repo.FindMinted(mockCtx)
	s.NoError(err)
	s.Len(res, 2)
}

func (s *CollectorRepoTestSuite) TestFindMintedError() {
	s.client.On("Transfers", mock.Anything).Return(nil, subgraph.ErrStatusCodeNotOk).Once()

	res, err := s.repo.FindMinted(mockCtx)
	s.Nil(res)
	s.ErrorIs(err, domain.ErrFetchOrParse)
	s.ErrorIs(err, subgraph.ErrStatusCodeNotOk)
}
