package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/priceformatter"
	"github.com/x-xyz/royaltymarket/domain"
	assetMocks "github.com/x-xyz/royaltymarket/domain/asset/mocks"
	"github.com/x-xyz/royaltymarket/domain/event"
	eventMocks "github.com/x-xyz/royaltymarket/domain/event/mocks"
	"github.com/x-xyz/royaltymarket/domain/listing"
	"github.com/x-xyz/royaltymarket/domain/listing/mocks"
	queryMocks "github.com/x-xyz/royaltymarket/service/query/mocks"
)

const (
	operator = domain.Address("0x00000000000000000000000000000000000000ee")
	seller   = domain.Address("0x00000000000000000000000000000000000000aa")
	stranger = domain.Address("0x00000000000000000000000000000000000000cc")
)

var assetId = domain.AssetId{Collection: "0x00000000000000000000000000000000000000dd", TokenId: "1"}

func passthrough(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

type listingSuite struct {
	suite.Suite
	repo     *mocks.Repo
	registry *assetMocks.Registry
	event    *eventMocks.UseCase
	q        *queryMocks.Mongo
	uc       listing.UseCase
}

func (s *listingSuite) SetupTest() {
	s.repo = mocks.NewRepo(s.T())
	s.registry = assetMocks.NewRegistry(s.T())
	s.event = eventMocks.NewUseCase(s.T())
	s.q = queryMocks.NewMongo(s.T())
	s.uc = New(&ListingUseCaseCfg{
		Repo:           s.repo,
		Registry:       s.registry,
		Event:          s.event,
		Transactor:     s.q,
		PriceFormatter: priceformatter.NewPriceFormatter(2),
		Operator:       operator,
	})
}

func (s *listingSuite) TestCreateListing() {
	s.registry.On("CurrentHolder", mock.Anything, assetId).Return(seller, nil).Once()
	s.registry.On("IsApprovedOperator", mock.Anything, assetId, operator).Return(true, nil).Once()
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("NextId", mock.Anything).Return(int64(1), nil).Once()
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(l listing.Listing) bool {
		return l.ListingId == 1 && !l.Sold && l.Price == "1250" && l.FullOwnershipAvailable
	})).Return(nil).Once()
	recorded := &event.Event{Seq: 1, Type: event.TypeListingCreated, ListingId: 1}
	s.event.On("Record", mock.Anything, event.ListingCreated(1, seller, "1250")).Return(recorded, nil).Once()
	s.event.On("Publish", mock.Anything, recorded).Return().Once()

	res, err := s.uc.CreateListing(ctx.Background(), "0x00000000000000000000000000000000000000AA", assetId, "1250", true)
	s.Require().NoError(err)
	s.Equal(int64(1), res.ListingId)
	s.Equal("12.5", res.DisplayPrice.String())
}

func (s *listingSuite) TestCreateListingNotOwner() {
	s.registry.On("CurrentHolder", mock.Anything, assetId).Return(seller, nil).Once()

	_, err := s.uc.CreateListing(ctx.Background(), stranger, assetId, "10", false)
	s.ErrorIs(err, domain.ErrNotOwner)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestCreateListingNotApproved() {
	s.registry.On("CurrentHolder", mock.Anything, assetId).Return(seller, nil).Once()
	s.registry.On("IsApprovedOperator", mock.Anything, assetId, operator).Return(false, nil).Once()

	_, err := s.uc.CreateListing(ctx.Background(), seller, assetId, "10", false)
	s.ErrorIs(err, domain.ErrNotApproved)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestCreateListingBadPrice() {
	for _, price := range []string{"0", "-1", "1.5", ""} {
		_, err := s.uc.CreateListing(ctx.Background(), seller, assetId, price, false)
		s.ErrorIs(err, domain.ErrBadParamInput, price)
	}
}

func (s *listingSuite) TestCreateListingEventFailureAborts() {
	s.registry.On("CurrentHolder", mock.Anything, assetId).Return(seller, nil).Once()
	s.registry.On("IsApprovedOperator", mock.Anything, assetId, operator).Return(true, nil).Once()
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("NextId", mock.Anything).Return(int64(2), nil).Once()
	s.repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	s.event.On("Record", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := s.uc.CreateListing(ctx.Background(), seller, assetId, "10", false)
	s.Error(err)
	s.event.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestGetListing() {
	s.repo.On("FindOne", mock.Anything, int64(1)).Return(&listing.Listing{ListingId: 1, Price: "5"}, nil).Once()
	s.repo.On("FindOne", mock.Anything, int64(2)).Return(nil, domain.ErrNotFound).Once()

	res, err := s.uc.GetListing(ctx.Background(), 1)
	s.Require().NoError(err)
	s.Equal("0.05", res.DisplayPrice.String())

	_, err = s.uc.GetListing(ctx.Background(), 2)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *listingSuite) TestMarkSold() {
	s.repo.On("MarkSold", mock.Anything, int64(1), stranger, mock.Anything).Return(domain.ErrAlreadySold).Once()

	s.ErrorIs(s.uc.MarkSold(ctx.Background(), 1, stranger), domain.ErrAlreadySold)
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}
