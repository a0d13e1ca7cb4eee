package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/asset"
	"github.com/x-xyz/royaltymarket/domain/asset/mocks"
	"github.com/x-xyz/royaltymarket/domain/authority"
	"github.com/x-xyz/royaltymarket/domain/royalty"
	royaltyMocks "github.com/x-xyz/royaltymarket/domain/royalty/mocks"
	queryMocks "github.com/x-xyz/royaltymarket/service/query/mocks"
)

const (
	admin    = domain.Address("0x00000000000000000000000000000000000000ad")
	holder   = domain.Address("0x00000000000000000000000000000000000000aa")
	buyer    = domain.Address("0x00000000000000000000000000000000000000bb")
	operator = domain.Address("0x00000000000000000000000000000000000000ee")
)

var assetId = domain.AssetId{Collection: "0x00000000000000000000000000000000000000cc", TokenId: "1"}

func passthrough(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

type assetSuite struct {
	suite.Suite
	repo    *mocks.Repo
	royalty *royaltyMocks.UseCase
	q       *queryMocks.Mongo
	uc      asset.UseCase
}

func (s *assetSuite) SetupTest() {
	s.repo = mocks.NewRepo(s.T())
	s.royalty = royaltyMocks.NewUseCase(s.T())
	s.q = queryMocks.NewMongo(s.T())
	s.uc = New(&AssetUseCaseCfg{
		Repo:       s.repo,
		Royalty:    s.royalty,
		Gate:       authority.NewGate(admin),
		Transactor: s.q,
	})
}

func (s *assetSuite) TestRegister() {
	recipients := []domain.Address{holder}
	shares := []int64{250}
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(a asset.Asset) bool {
		return a.Holder == holder && a.ApprovedOperator.IsEmpty()
	})).Return(nil).Once()
	s.royalty.On("CreateTable", mock.Anything, admin, assetId, holder, recipients, shares).Return(&royalty.Table{}, nil).Once()

	res, err := s.uc.Register(ctx.Background(), admin, assetId, holder, recipients, shares)
	s.Require().NoError(err)
	s.Equal(holder, res.Holder)
}

func (s *assetSuite) TestRegisterRollsBackOnTableFailure() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	s.royalty.On("CreateTable", mock.Anything, admin, assetId, holder, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidRoyaltyTotal).Once()

	_, err := s.uc.Register(ctx.Background(), admin, assetId, holder, []domain.Address{holder}, []int64{10001})
	s.ErrorIs(err, domain.ErrInvalidRoyaltyTotal)
}

func (s *assetSuite) TestRegisterNotAdmin() {
	_, err := s.uc.Register(ctx.Background(), holder, assetId, holder, nil, nil)
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *assetSuite) TestApprove() {
	s.repo.On("FindOne", mock.Anything, assetId).Return(&asset.Asset{Holder: holder}, nil).Twice()
	s.repo.On("SetApprovedOperator", mock.Anything, assetId, holder, operator).Return(nil).Once()

	s.NoError(s.uc.Approve(ctx.Background(), holder, assetId, operator))
	s.ErrorIs(s.uc.Approve(ctx.Background(), buyer, assetId, operator), domain.ErrNotOwner)
}

func (s *assetSuite) TestIsApprovedOperator() {
	s.repo.On("FindOne", mock.Anything, assetId).Return(&asset.Asset{Holder: holder, ApprovedOperator: operator}, nil).Twice()

	ok, err := s.uc.IsApprovedOperator(ctx.Background(), assetId, "0x00000000000000000000000000000000000000EE")
	s.NoError(err)
	s.True(ok)

	ok, err = s.uc.IsApprovedOperator(ctx.Background(), assetId, buyer)
	s.NoError(err)
	s.False(ok)
}

func (s *assetSuite) TestCurrentHolderUnknown() {
	s.repo.On("FindOne", mock.Anything, assetId).Return(nil, domain.ErrNotFound).Once()

	_, err := s.uc.CurrentHolder(ctx.Background(), assetId)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *assetSuite) TestTransferNotOwner() {
	s.repo.On("SetHolder", mock.Anything, assetId, buyer, holder).Return(domain.ErrNotOwner).Once()

	s.ErrorIs(s.uc.Transfer(ctx.Background(), assetId, buyer, holder), domain.ErrNotOwner)
}

func TestAssetSuite(t *testing.T) {
	suite.Run(t, new(assetSuite))
}
