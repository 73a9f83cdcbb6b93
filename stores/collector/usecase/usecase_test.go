package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/explorer"
	"github.com/earthart/aether/domain"
	"github.com/earthart/aether/domain/mocks"
)

var (
	mockCtx      = ctx.Background()
	mockMinter   = domain.Address("0x5f3371793285920351344a1eaaaa48d45e600652")
	mockChecksum = "0x5f3371793285920351344a1EaaAA48d45e600652"
	mockTxHash   = "0x9d1f8d4b1a0c7c0b8f5a3c2e1d0f9e8d7c6b5a4f3e2d1c0b9a8f7e6d5c4b3a21"
)

type CollectorUseCaseTestSuite struct {
	suite.Suite
	repo     *mocks.CollectorRepo
	resolver *mocks.NameResolver
	uc       domain.CollectorUseCase
}

func (s *CollectorUseCaseTestSuite) SetupTest() {
	s.repo = &mocks.CollectorRepo{}
	s.resolver = &mocks.NameResolver{}
	s.uc = New(&CollectorUseCaseCfg{
		Repo:      s.repo,
		Formatter: explorer.New("https://optimistic.etherscan.io", ""),
	})
}

func TestCollectorUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(CollectorUseCaseTestSuite))
}

func (s *CollectorUseCaseTestSuite) mountAndWait() domain.CollectorFeed {
	f := s.uc.Mount(mockCtx)
	c, cancel := ctx.WithTimeout(mockCtx, time.Second)
	defer cancel()
	s.Require().NoError(f.Wait(c))
	return f
}

func (s *CollectorUseCaseTestSuite) TestMountLoadsOnce() {
	records := []domain.CollectorRecord{
		{Id: mockTxHash, To: mockMinter, TokenId: "1"},
		{Id: "0x2", To: "0xdef", TokenId: "2"},
	}
	s.repo.On("FindMinted", mock.Anything).Return(records, nil).Once()

	f := s.mountAndWait()
	s.Equal(domain.FeedStatusLoaded, f.Status())
	s.Equal(records, f.Collectors())
	s.repo.AssertNumberOfCalls(s.T(), "FindMinted", 1)
	f.Close()
}

func (s *CollectorUseCaseTestSuite) TestMountIds() {
	s.repo.On("FindMinted", mock.Anything).Return([]domain.CollectorRecord{}, nil)

	a := s.uc.Mount(mockCtx)
	b := s.uc.Mount(mockCtx)
	defer a.Close()
	defer b.Close()
	s.NotEmpty(a.Id())
	s.NotEqual(a.Id(), b.Id())
}

func (s *CollectorUseCaseTestSuite) TestRowsSingle() {
	s.repo.On("FindMinted", mock.Anything).Return([]domain.CollectorRecord{
		{Id: "0x1", To: "0xabc", TokenId: "7"},
	}, nil).Once()

	f := s.mountAndWait()
	rows := f.Rows(mockCtx)
	s.Equal([]domain.CollectorRow{
		{
			Key:     "0x1",
			TokenId: "7",
			Minter:  explorer.Link{Text: "0xabc", Title: "0xabc"},
			TxHash:  explorer.Link{Text: "0x1", Title: "0x1", Href: "/blockexplorer/transaction/0x1"},
		},
	}, rows)
}

func (s *CollectorUseCaseTestSuite) TestRowsAligned() {
	n := 5
	records := make([]domain.CollectorRecord, n)
	for i := 0; i < n; i++ {
		records[i] = domain.CollectorRecord{
			Id:      fmt.Sprintf("0x%d", i),
			To:      mockMinter,
			TokenId: domain.TokenId(fmt.Sprint(i)),
		}
	}
	s.repo.On("FindMinted", mock.Anything).Return(records, nil).Once()

	f := s.mountAndWait()
	rows := f.Rows(mockCtx)
	s.Len(rows, n)
	for i, row := range rows {
		s.Equal(records[i].Id, row.Key)
		s.Equal(records[i].TokenId, row.TokenId)
		s.Equal("0x5f3...0652", row.Minter.Text)
		s.Equal("https://optimistic.etherscan.io/address/"+mockChecksum, row.Minter.Href)
		s.Equal("/blockexplorer/transaction/"+records[i].Id, row.TxHash.Href)
	}
}

func (s *CollectorUseCaseTestSuite) TestRowsWithNames() {
	uc := New(&CollectorUseCaseCfg{
		Repo:      s.repo,
		Formatter: explorer.New("https://optimistic.etherscan.io", ""),
		Resolver:  s.resolver,
	})
	other := domain.Address("0x0000000000000000000000000000000000000001")
	s.repo.On("FindMinted", mock.Anything).Return([]domain.CollectorRecord{
		{Id: mockTxHash, To: mockMinter, TokenId: "1"},
		{Id: "0x2", To: other, TokenId: "2"},
		{Id: "0x3", To: domain.Address(mockChecksum), TokenId: "3"},
	}, nil).Once()
	s.resolver.On("ReverseResolve", mock.Anything, mockMinter).Return("earthart.eth", nil).Once()
	s.resolver.On("ReverseResolve", mock.Anything, other).Return("", errors.New("rpc down")).Once()

	f := uc.Mount(mockCtx)
	s.Require().NoError(f.Wait(mockCtx))
	rows := f.Rows(mockCtx)
	s.Require().Len(rows, 3)
	s.Equal("earthart.eth", rows[0].Minter.Text)
	s.Equal("0x9d1f...3a21", rows[0].TxHash.Text)
	s.Equal("0x000...0001", rows[1].Minter.Text)
	s.Equal("earthart.eth", rows[2].Minter.Text)
	s.resolver.AssertExpectations(s.T())
}

func (s *CollectorUseCaseTestSuite) TestLoadFailure() {
	s.repo.On("FindMinted", mock.Anything).Return(nil, domain.ErrFetchOrParse).Once()

	f := s.mountAndWait()
	s.Equal(domain.FeedStatusFailed, f.Status())
	s.Empty(f.Collectors())
	s.Empty(f.Rows(mockCtx))
}

func (s *CollectorUseCaseTestSuite) TestLoadEmpty() {
	s.repo.On("FindMinted", mock.Anything).Return([]domain.CollectorRecord{}, nil).Once()

	f := s.mountAndWait()
	s.Equal(domain.FeedStatusLoaded, f.Status())
	s.NotNil(f.Collectors())
	s.Empty(f.Collectors())
}

func (s *CollectorUseCaseTestSuite) TestLoadTwiceReplaces() {
	records := []domain.CollectorRecord{
		{Id: "0x1", To: "0xabc", TokenId: "7"},
		{Id: "0x1", To: "0xabc", TokenId: "7"},
	}
	s.repo.On("FindMinted", mock.Anything).Return(records, nil).Twice()

	f := s.mountAndWait()
	first := f.Collectors()
	s.NoError(f.Load(mockCtx))
	s.Equal(first, f.Collectors())
	s.Len(f.Collectors(), 2)
	s.repo.AssertExpectations(s.T())
}

func (s *CollectorUseCaseTestSuite) TestCloseSuppressesLateWrite() {
	started := make(chan struct{})
	release := make(chan struct{})
	s.repo.On("FindMinted", mock.Anything).Run(func(args mock.Arguments) {
		close(started)
		<-release
	}).Return([]domain.CollectorRecord{{Id: "0x1", To: "0xabc", TokenId: "7"}}, nil).Once()

	f := s.uc.Mount(mockCtx)
	<-started
	s.Equal(domain.FeedStatusLoading, f.Status())
	f.Close()
	s.NoError(f.Wait(mockCtx))
	close(release)

	s.Never(func() bool {
		return len(f.Collectors()) > 0 || f.Status() == domain.FeedStatusLoaded
	}, 100*time.Millisecond, 10*time.Millisecond)
	s.ErrorIs(f.Load(mockCtx), domain.ErrFeedClosed)
}

func (s *CollectorUseCaseTestSuite) TestWaitCanceled() {
	release := make(chan struct{})
	s.repo.On("FindMinted", mock.Anything).Run(func(args mock.Arguments) {
		<-release
	}).Return([]domain.CollectorRecord{}, nil).Once()

	f := s.uc.Mount(mockCtx)
	defer close(release)
	defer f.Close()
	c, cancel := ctx.WithTimeout(mockCtx, 10*time.Millisecond)
	defer cancel()
	s.Error(f.Wait(c))
	s.NotEqual(domain.FeedStatusLoaded, f.Status())
}

func (s *CollectorUseCaseTestSuite) TestReloadFailureKeepsList() {
	records := []domain.CollectorRecord{{Id: "0x1", To: "0xabc", TokenId: "7"}}
	s.repo.On("FindMinted", mock.Anything).Return(records, nil).Once()
	s.repo.On("FindMinted", mock.Anything).Return(nil, domain.ErrFetchOrParse).Once()

	f := s.mountAndWait()
	s.ErrorIs(f.Load(mockCtx), domain.ErrFetchOrParse)
	s.Equal(domain.FeedStatusFailed, f.Status())
	s.Equal(records, f.Collectors())
}

func (s *CollectorUseCaseTestSuite) TestRowsStalledResolver() {
	release := make(chan struct{})
	defer close(release)
	uc := New(&CollectorUseCaseCfg{
		Repo:      s.repo,
		Formatter: explorer.New("https://optimistic.etherscan.io", ""),
		Resolver:  s.resolver,
	})
	s.repo.On("FindMinted", mock.Anything).Return([]domain.CollectorRecord{
		{Id: "0x1", To: mockMinter, TokenId: "1"},
	}, nil).Once()
	s.resolver.On("ReverseResolve", mock.Anything, mockMinter).Run(func(args mock.Arguments) {
		<-release
	}).Return("earthart.eth", nil)

	f := uc.Mount(mockCtx)
	defer f.Close()
	s.Require().NoError(f.Wait(mockCtx))

	c, cancel := ctx.WithTimeout(mockCtx, 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	rows := f.Rows(c)
	s.Less(time.Since(start), time.Second)
	s.Require().Len(rows, 1)
	s.Equal("0x5f3...0652", rows[0].Minter.Text)

	// an expired context skips the lookups
	rows = f.Rows(c)
	s.Equal("0x5f3...0652", rows[0].Minter.Text)
}
