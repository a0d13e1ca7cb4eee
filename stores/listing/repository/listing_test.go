package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/counter"
	counterMocks "github.com/x-xyz/royaltymarket/domain/counter/mocks"
	"github.com/x-xyz/royaltymarket/domain/listing"
	"github.com/x-xyz/royaltymarket/service/query"
	"github.com/x-xyz/royaltymarket/service/query/mocks"
)

type listingRepoSuite struct {
	suite.Suite
	q        *mocks.Mongo
	counters *counterMocks.Repo
	repo     listing.Repo
}

func (s *listingRepoSuite) SetupTest() {
	s.q = mocks.NewMongo(s.T())
	s.counters = counterMocks.NewRepo(s.T())
	s.repo = New(s.q, s.counters)
}

func (s *listingRepoSuite) TestNextId() {
	s.counters.On("Next", mock.Anything, counter.NameListingId).Return(int64(1), nil).Once()

	id, err := s.repo.NextId(ctx.Background())
	s.Require().NoError(err)
	s.Equal(int64(1), id)
}

func (s *listingRepoSuite) TestFindOneNotFound() {
	s.q.On("FindOne", mock.Anything, domain.TableListings, bson.M{"listingId": int64(9)}, mock.Anything).Return(query.ErrNotFound).Once()

	_, err := s.repo.FindOne(ctx.Background(), 9)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *listingRepoSuite) TestFindAll() {
	seller := domain.Address("0x00000000000000000000000000000000000000AB")
	expQuery := bson.M{"seller": seller.ToLower(), "sold": false}
	s.q.On("Search", mock.Anything, domain.TableListings, 20, 10, "-listingId", expQuery, mock.Anything).
		Run(func(args mock.Arguments) {
			res := args.Get(6).(*[]*listing.Listing)
			*res = append(*res, &listing.Listing{ListingId: 3})
		}).Return(nil).Once()

	res, err := s.repo.FindAll(ctx.Background(),
		listing.WithSeller(seller),
		listing.WithSold(false),
		listing.WithPagination(20, 10),
		listing.WithSort("listingId", domain.SortDirDesc),
	)
	s.Require().NoError(err)
	s.Len(res, 1)
}

func (s *listingRepoSuite) TestFindAllByCollection() {
	expQuery := bson.M{"collection": domain.Address("0x00000000000000000000000000000000000000cc")}
	s.q.On("Search", mock.Anything, domain.TableListings, 0, 0, "listingId", expQuery, mock.Anything).Return(nil).Once()

	_, err := s.repo.FindAll(ctx.Background(),
		listing.WithAsset(domain.AssetId{Collection: "0x00000000000000000000000000000000000000CC"}),
	)
	s.Require().NoError(err)
}

func (s *listingRepoSuite) TestFindAllByAsset() {
	expQuery := bson.M{
		"collection": domain.Address("0x00000000000000000000000000000000000000cc"),
		"tokenId":    domain.TokenId("7"),
	}
	s.q.On("Search", mock.Anything, domain.TableListings, 0, 0, "listingId", expQuery, mock.Anything).Return(nil).Once()

	_, err := s.repo.FindAll(ctx.Background(),
		listing.WithAsset(domain.AssetId{Collection: "0x00000000000000000000000000000000000000CC", TokenId: "7"}),
	)
	s.Require().NoError(err)
}

func (s *listingRepoSuite) TestFindAllBadPagination() {
	_, err := s.repo.FindAll(ctx.Background(), listing.WithPagination(-1, 10))
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *listingRepoSuite) TestMarkSold() {
	now := time.Now()
	s.q.On("Patch", mock.Anything, domain.TableListings, bson.M{"listingId": int64(1), "sold": false}, bson.M{
		"sold":   true,
		"buyer":  domain.Address("0x00000000000000000000000000000000000000bb"),
		"soldAt": now,
	}).Return(nil).Once()

	s.NoError(s.repo.MarkSold(ctx.Background(), 1, "0x00000000000000000000000000000000000000BB", now))
}

func (s *listingRepoSuite) TestMarkSoldTwice() {
	s.q.On("Patch", mock.Anything, domain.TableListings, mock.Anything, mock.Anything).Return(query.ErrNotFound).Once()

	s.ErrorIs(s.repo.MarkSold(ctx.Background(), 1, "0xbb", time.Now()), domain.ErrAlreadySold)
}

func TestListingRepoSuite(t *testing.T) {
	suite.Run(t, new(listingRepoSuite))
}
