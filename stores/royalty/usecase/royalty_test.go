package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/authority"
	authorityMocks "github.com/x-xyz/royaltymarket/domain/authority/mocks"
	"github.com/x-xyz/royaltymarket/domain/royalty"
	"github.com/x-xyz/royaltymarket/domain/royalty/mocks"
	queryMocks "github.com/x-xyz/royaltymarket/service/query/mocks"
)

const (
	admin   = domain.Address("0x00000000000000000000000000000000000000ad")
	manager = domain.Address("0x00000000000000000000000000000000000000aa")
	holder  = domain.Address("0x00000000000000000000000000000000000000ab")
	r1      = domain.Address("0x0000000000000000000000000000000000000001")
	r2      = domain.Address("0x0000000000000000000000000000000000000002")
	r3      = domain.Address("0x0000000000000000000000000000000000000003")
)

var assetId = domain.AssetId{Collection: "0x00000000000000000000000000000000000000cc", TokenId: "1"}

func passthrough(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

type royaltySuite struct {
	suite.Suite
	repo      *mocks.Repo
	authority *authorityMocks.UseCase
	q         *queryMocks.Mongo
	uc        royalty.UseCase
}

func (s *royaltySuite) SetupTest() {
	s.repo = mocks.NewRepo(s.T())
	s.authority = authorityMocks.NewUseCase(s.T())
	s.q = queryMocks.NewMongo(s.T())
	s.uc = New(&RoyaltyUseCaseCfg{
		Repo:       s.repo,
		Authority:  s.authority,
		Gate:       authority.NewGate(admin),
		Transactor: s.q,
	})
}

func (s *royaltySuite) storedTable(entries ...royalty.Entry) *royalty.Table {
	return &royalty.Table{Collection: assetId.Collection, TokenId: assetId.TokenId, Entries: entries, Version: 3}
}

func (s *royaltySuite) TestCreateTable() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(t royalty.Table) bool {
		return t.Version == 1 && len(t.Entries) == 2 && t.TotalBasisPoints() == 10000
	})).Return(nil).Once()
	s.authority.On("Grant", mock.Anything, holder, admin).Return(nil).Once()

	res, err := s.uc.CreateTable(ctx.Background(), admin, assetId, holder, []domain.Address{r1, r2}, []int64{5000, 5000})
	s.Require().NoError(err)
	s.Equal(int64(10000), res.TotalBasisPoints())
}

func (s *royaltySuite) TestCreateTableNotAdmin() {
	_, err := s.uc.CreateTable(ctx.Background(), manager, assetId, holder, []domain.Address{r1}, []int64{100})
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *royaltySuite) TestCreateTableInvalidTotal() {
	cases := []struct {
		name       string
		recipients []domain.Address
		shares     []int64
	}{
		{"over 100%", []domain.Address{r1, r2}, []int64{6000, 5000}},
		{"length mismatch", []domain.Address{r1, r2}, []int64{6000}},
		{"duplicate", []domain.Address{r1, r1}, []int64{100, 100}},
		{"zero share", []domain.Address{r1}, []int64{0}},
	}
	for _, tc := range cases {
		_, err := s.uc.CreateTable(ctx.Background(), admin, assetId, holder, tc.recipients, tc.shares)
		s.ErrorIs(err, domain.ErrInvalidRoyaltyTotal, tc.name)
	}
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *royaltySuite) TestCreateTableExisting() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

	_, err := s.uc.CreateTable(ctx.Background(), admin, assetId, holder, nil, nil)
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *royaltySuite) TestAddEntriesNotManager() {
	s.authority.On("IsManager", mock.Anything, r3).Return(false, nil).Once()

	_, err := s.uc.AddEntries(ctx.Background(), r3, assetId, []domain.Address{r3}, []int64{100})
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *royaltySuite) TestAddEntries() {
	s.authority.On("IsManager", mock.Anything, manager).Return(true, nil).Once()
	s.repo.On("FindOne", mock.Anything, assetId).Return(s.storedTable(royalty.Entry{Recipient: r1, BasisPoints: 4000}), nil).Once()
	s.repo.On("UpdateEntries", mock.Anything, assetId, int64(3), []royalty.Entry{
		{Recipient: r1, BasisPoints: 4000},
		{Recipient: r2, BasisPoints: 6000},
	}).Return(nil).Once()

	res, err := s.uc.AddEntries(ctx.Background(), manager, assetId, []domain.Address{r2}, []int64{6000})
	s.Require().NoError(err)
	s.Equal(int64(4), res.Version)
	s.Equal(int64(10000), res.TotalBasisPoints())
}

func (s *royaltySuite) TestAddEntriesRejectsOverflowAndExisting() {
	s.authority.On("IsManager", mock.Anything, manager).Return(true, nil).Twice()
	s.repo.On("FindOne", mock.Anything, assetId).Return(s.storedTable(royalty.Entry{Recipient: r1, BasisPoints: 4000}), nil).Twice()

	_, err := s.uc.AddEntries(ctx.Background(), manager, assetId, []domain.Address{r2}, []int64{6001})
	s.ErrorIs(err, domain.ErrInvalidRoyaltyTotal)

	_, err = s.uc.AddEntries(ctx.Background(), manager, assetId, []domain.Address{r1}, []int64{1})
	s.ErrorIs(err, domain.ErrInvalidRoyaltyTotal)

	s.repo.AssertNotCalled(s.T(), "UpdateEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *royaltySuite) TestAddEntriesUnknownTable() {
	s.authority.On("IsManager", mock.Anything, manager).Return(true, nil).Once()
	s.repo.On("FindOne", mock.Anything, assetId).Return(nil, domain.ErrNotFound).Once()

	_, err := s.uc.AddEntries(ctx.Background(), manager, assetId, []domain.Address{r2}, []int64{1})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *royaltySuite) TestRemoveEntriesKeepsOrder() {
	s.authority.On("IsManager", mock.Anything, manager).Return(true, nil).Once()
	s.repo.On("FindOne", mock.Anything, assetId).Return(s.storedTable(
		royalty.Entry{Recipient: r1, BasisPoints: 1000},
		royalty.Entry{Recipient: r2, BasisPoints: 2000},
		royalty.Entry{Recipient: r3, BasisPoints: 3000},
	), nil).Once()
	s.repo.On("UpdateEntries", mock.Anything, assetId, int64(3), []royalty.Entry{
		{Recipient: r1, BasisPoints: 1000},
		{Recipient: r3, BasisPoints: 3000},
	}).Return(nil).Once()

	res, err := s.uc.RemoveEntries(ctx.Background(), manager, assetId, []domain.Address{r2, holder})
	s.Require().NoError(err)
	s.Len(res.Entries, 2)
}

func (s *royaltySuite) TestConcurrentUpdateConflict() {
	s.authority.On("IsManager", mock.Anything, manager).Return(true, nil).Once()
	s.repo.On("FindOne", mock.Anything, assetId).Return(s.storedTable(), nil).Once()
	s.repo.On("UpdateEntries", mock.Anything, assetId, int64(3), mock.Anything).Return(domain.ErrConflict).Once()

	_, err := s.uc.AddEntries(ctx.Background(), manager, assetId, []domain.Address{r1}, []int64{1})
	s.ErrorIs(err, domain.ErrConflict)
}

func TestRoyaltySuite(t *testing.T) {
	suite.Run(t, new(royaltySuite))
}
