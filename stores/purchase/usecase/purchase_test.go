package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	assetMocks "github.com/x-xyz/royaltymarket/domain/asset/mocks"
	"github.com/x-xyz/royaltymarket/domain/event"
	eventMocks "github.com/x-xyz/royaltymarket/domain/event/mocks"
	"github.com/x-xyz/royaltymarket/domain/ledger"
	ledgerMocks "github.com/x-xyz/royaltymarket/domain/ledger/mocks"
	"github.com/x-xyz/royaltymarket/domain/listing"
	listingMocks "github.com/x-xyz/royaltymarket/domain/listing/mocks"
	"github.com/x-xyz/royaltymarket/domain/purchase"
	"github.com/x-xyz/royaltymarket/domain/royalty"
	royaltyMocks "github.com/x-xyz/royaltymarket/domain/royalty/mocks"
	mutexMocks "github.com/x-xyz/royaltymarket/service/mutex/mocks"
	queryMocks "github.com/x-xyz/royaltymarket/service/query/mocks"
)

const (
	seller = domain.Address("0x00000000000000000000000000000000000000aa")
	buyer  = domain.Address("0x00000000000000000000000000000000000000bb")
	r1     = domain.Address("0x0000000000000000000000000000000000000001")
	r2     = domain.Address("0x0000000000000000000000000000000000000002")

	lockKey   = "lock:listing:1"
	lockToken = "token"
)

var assetId = domain.AssetId{Collection: "0x00000000000000000000000000000000000000cc", TokenId: "9"}

func passthrough(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

type want struct {
	to     domain.Address
	amount int64
}

func paymentsEq(expected ...want) interface{} {
	return mock.MatchedBy(func(payments []ledger.Payment) bool {
		if len(payments) != len(expected) {
			return false
		}
		for i, p := range payments {
			if p.To != expected[i].to || p.Amount.Cmp(big.NewInt(expected[i].amount)) != 0 {
				return false
			}
		}
		return true
	})
}

type purchaseSuite struct {
	suite.Suite
	listing  *listingMocks.UseCase
	royalty  *royaltyMocks.UseCase
	ledger   *ledgerMocks.Ledger
	registry *assetMocks.Registry
	event    *eventMocks.UseCase
	mutex    *mutexMocks.Service
	q        *queryMocks.Mongo
	uc       purchase.UseCase
}

func (s *purchaseSuite) SetupTest() {
	s.listing = listingMocks.NewUseCase(s.T())
	s.royalty = royaltyMocks.NewUseCase(s.T())
	s.ledger = ledgerMocks.NewLedger(s.T())
	s.registry = assetMocks.NewRegistry(s.T())
	s.event = eventMocks.NewUseCase(s.T())
	s.mutex = mutexMocks.NewService(s.T())
	s.q = queryMocks.NewMongo(s.T())
	s.uc = New(&PurchaseUseCaseCfg{
		Listing:    s.listing,
		Royalty:    s.royalty,
		Ledger:     s.ledger,
		Registry:   s.registry,
		Event:      s.event,
		Mutex:      s.mutex,
		Transactor: s.q,
	})
}

// begin expects the lock round trip and one transaction
func (s *purchaseSuite) begin(l *listing.Listing) {
	s.mutex.On("Lock", mock.Anything, lockKey).Return(lockToken, nil).Once()
	s.mutex.On("Unlock", mock.Anything, lockKey, lockToken).Return(nil).Once()
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.listing.On("GetListing", mock.Anything, int64(1)).Return(l, nil).Once()
}

func (s *purchaseSuite) newListing(price string, full bool) *listing.Listing {
	return &listing.Listing{
		ListingId:              1,
		Collection:             assetId.Collection,
		TokenId:                assetId.TokenId,
		Price:                  price,
		Seller:                 seller,
		FullOwnershipAvailable: full,
	}
}

func (s *purchaseSuite) table(entries ...royalty.Entry) {
	s.royalty.On("GetTable", mock.Anything, assetId).Return(&royalty.Table{Entries: entries}, nil).Once()
}

func (s *purchaseSuite) commit(full bool, price string) {
	s.listing.On("MarkSold", mock.Anything, int64(1), buyer).Return(nil).Once()
	recorded := &event.Event{Seq: 2, Type: event.TypeListingBought, ListingId: 1}
	s.event.On("Record", mock.Anything, event.ListingBought(1, buyer, price, full)).Return(recorded, nil).Once()
	s.event.On("Publish", mock.Anything, recorded).Return().Once()
}

func (s *purchaseSuite) TestEvenSplitExactPayment() {
	s.begin(s.newListing("100", false))
	s.table(royalty.Entry{Recipient: r1, BasisPoints: 5000}, royalty.Entry{Recipient: r2, BasisPoints: 5000})
	s.ledger.On("AtomicSplit", mock.Anything, buyer, paymentsEq(want{r1, 50}, want{r2, 50}, want{seller, 0}), "listing:1").Return(nil).Once()
	s.commit(false, "100")

	res, err := s.uc.BuyFromListing(ctx.Background(), buyer, 1, "100")
	s.Require().NoError(err)
	s.Equal("0", res.SellerShare)
	s.Equal("0", res.Refund)
	s.Require().Len(res.Royalties, 2)
	s.Equal("50", res.Royalties[0].Amount)
	s.Equal(int64(5000), res.Royalties[1].BasisPoints)
	s.False(res.FullOwnership)
	s.registry.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseSuite) TestPartialTableWithOverpayment() {
	s.begin(s.newListing("1000", false))
	s.table(royalty.Entry{Recipient: r1, BasisPoints: 2500})
	s.ledger.On("AtomicSplit", mock.Anything, buyer, paymentsEq(want{r1, 250}, want{seller, 750}), "listing:1").Return(nil).Once()
	s.commit(false, "1000")

	res, err := s.uc.BuyFromListing(ctx.Background(), buyer, 1, "1500")
	s.Require().NoError(err)
	s.Equal("750", res.SellerShare)
	s.Equal("1500", res.Paid)
	s.Equal("500", res.Refund)
}

func (s *purchaseSuite) TestMissingTablePaysSeller() {
	s.begin(s.newListing("77", false))
	s.royalty.On("GetTable", mock.Anything, assetId).Return(nil, domain.ErrNotFound).Once()
	s.ledger.On("AtomicSplit", mock.Anything, buyer, paymentsEq(want{seller, 77}), "listing:1").Return(nil).Once()
	s.commit(false, "77")

	res, err := s.uc.BuyFromListing(ctx.Background(), buyer, 1, "77")
	s.Require().NoError(err)
	s.Empty(res.Royalties)
	s.Equal("77", res.SellerShare)
}

func (s *purchaseSuite) TestAlreadySold() {
	l := s.newListing("100", true)
	l.Sold = true
	s.begin(l)

	_, err := s.uc.BuyFromListing(ctx.Background(), buyer, 1, "100")
	s.ErrorIs(err, domain.ErrAlreadySold)
	s.ledger.AssertNotCalled(s.T(), "AtomicSplit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseSuite) TestAlreadySoldFullOwnership() {
	l := s.newListing("100", true)
	l.Sold = true
	s.begin(l)

	_, err := s.uc.BuyFullOwnership(ctx.Background(), buyer, 1, "100")
	s.ErrorIs(err, domain.ErrAlreadySold)
	s.registry.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseSuite) TestInsufficientPayment() {
	s.begin(s.newListing("100", false))

	_, err := s.uc.BuyFromListing(ctx.Background(), buyer, 1, "99")
	s.ErrorIs(err, domain.ErrInsufficientPayment)
	s.ledger.AssertNotCalled(s.T(), "AtomicSplit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.listing.AssertNotCalled(s.T(), "MarkSold", mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseSuite) TestFullOwnershipUnavailable() {
	s.begin(s.newListing("100", false))

	_, err := s.uc.BuyFullOwnership(ctx.Background(), buyer, 1, "100")
	s.ErrorIs(err, domain.ErrFullOwnershipUnavailable)
	s.registry.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.listing.AssertNotCalled(s.T(), "MarkSold", mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseSuite) TestFullOwnership() {
	s.begin(s.newListing("100", true))
	s.table(royalty.Entry{Recipient: r1, BasisPoints: 1000})
	s.ledger.On("AtomicSplit", mock.Anything, buyer, paymentsEq(want{r1, 10}, want{seller, 90}), "listing:1").Return(nil).Once()
	s.registry.On("Transfer", mock.Anything, assetId, seller, buyer).Return(nil).Once()
	s.commit(true, "100")

	res, err := s.uc.BuyFullOwnership(ctx.Background(), buyer, 1, "100")
	s.Require().NoError(err)
	s.True(res.FullOwnership)
	s.Equal("90", res.SellerShare)
}

func (s *purchaseSuite) TestLedgerFailureLeavesListingUnsold() {
	s.begin(s.newListing("100", false))
	s.table()
	s.ledger.On("AtomicSplit", mock.Anything, buyer, mock.Anything, "listing:1").Return(domain.ErrInsufficientFunds).Once()

	_, err := s.uc.BuyFromListing(ctx.Background(), buyer, 1, "100")
	s.ErrorIs(err, domain.ErrInsufficientFunds)
	s.listing.AssertNotCalled(s.T(), "MarkSold", mock.Anything, mock.Anything, mock.Anything)
	s.event.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
}

func (s *purchaseSuite) TestCustodyFailureAborts() {
	s.begin(s.newListing("100", true))
	s.table()
	s.ledger.On("AtomicSplit", mock.Anything, buyer, mock.Anything, "listing:1").Return(nil).Once()
	s.registry.On("Transfer", mock.Anything, assetId, seller, buyer).Return(domain.ErrNotOwner).Once()

	_, err := s.uc.BuyFullOwnership(ctx.Background(), buyer, 1, "100")
	s.ErrorIs(err, domain.ErrNotOwner)
	s.listing.AssertNotCalled(s.T(), "MarkSold", mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseSuite) TestLostRaceOnMarkSold() {
	s.begin(s.newListing("100", false))
	s.table()
	s.ledger.On("AtomicSplit", mock.Anything, buyer, mock.Anything, "listing:1").Return(nil).Once()
	s.listing.On("MarkSold", mock.Anything, int64(1), buyer).Return(domain.ErrAlreadySold).Once()

	_, err := s.uc.BuyFromListing(ctx.Background(), buyer, 1, "100")
	s.ErrorIs(err, domain.ErrAlreadySold)
	s.event.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *purchaseSuite) TestLockNotAcquired() {
	s.mutex.On("Lock", mock.Anything, lockKey).Return("", domain.ErrLockNotAcquired).Once()

	_, err := s.uc.BuyFromListing(ctx.Background(), buyer, 1, "100")
	s.ErrorIs(err, domain.ErrLockNotAcquired)
	s.q.AssertNotCalled(s.T(), "RunWithTransaction", mock.Anything, mock.Anything)
}

func (s *purchaseSuite) TestUnknownListing() {
	s.mutex.On("Lock", mock.Anything, lockKey).Return(lockToken, nil).Once()
	s.mutex.On("Unlock", mock.Anything, lockKey, lockToken).Return(nil).Once()
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.listing.On("GetListing", mock.Anything, int64(1)).Return(nil, domain.ErrNotFound).Once()

	_, err := s.uc.BuyFromListing(ctx.Background(), buyer, 1, "100")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *purchaseSuite) TestBadInput() {
	_, err := s.uc.BuyFromListing(ctx.Background(), "", 1, "100")
	s.ErrorIs(err, domain.ErrInvalidAddress)

	_, err = s.uc.BuyFromListing(ctx.Background(), buyer, 1, "-5")
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func TestPurchaseSuite(t *testing.T) {
	suite.Run(t, new(purchaseSuite))
}
