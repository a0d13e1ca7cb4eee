package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/authority"
	"github.com/x-xyz/royaltymarket/domain/authority/mocks"
	queryMocks "github.com/x-xyz/royaltymarket/service/query/mocks"
)

const (
	admin     = domain.Address("0x00000000000000000000000000000000000000ad")
	member    = domain.Address("0x00000000000000000000000000000000000000aa")
	successor = domain.Address("0x00000000000000000000000000000000000000bb")
	stranger  = domain.Address("0x00000000000000000000000000000000000000cc")
)

func passthrough(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

type authoritySuite struct {
	suite.Suite
	repo *mocks.Repo
	q    *queryMocks.Mongo
	uc   authority.UseCase
}

func (s *authoritySuite) SetupTest() {
	s.repo = mocks.NewRepo(s.T())
	s.q = queryMocks.NewMongo(s.T())
	s.uc = New(&AuthorityUseCaseCfg{
		Repo:       s.repo,
		Gate:       authority.NewGate(admin),
		Transactor: s.q,
	})
}

func (s *authoritySuite) TestGrantExistingMember() {
	s.repo.On("FindOne", mock.Anything, member).Return(&authority.Manager{Address: member}, nil).Once()

	s.NoError(s.uc.Grant(ctx.Background(), member, admin))
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *authoritySuite) TestGrantLostInsertRace() {
	s.repo.On("FindOne", mock.Anything, member).Return(nil, nil).Once()
	s.repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

	s.NoError(s.uc.Grant(ctx.Background(), member, admin))
}

func (s *authoritySuite) TestIsManager() {
	s.repo.On("FindOne", mock.Anything, member).Return(&authority.Manager{Address: member}, nil).Once()
	s.repo.On("FindOne", mock.Anything, stranger).Return(nil, nil).Once()

	ok, err := s.uc.IsManager(ctx.Background(), member)
	s.NoError(err)
	s.True(ok)

	ok, err = s.uc.IsManager(ctx.Background(), stranger)
	s.NoError(err)
	s.False(ok)
}

func (s *authoritySuite) TestTransferByNonMember() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("FindOne", mock.Anything, stranger).Return(nil, nil).Once()

	err := s.uc.Transfer(ctx.Background(), stranger, successor)
	s.ErrorIs(err, domain.ErrUnauthorized)
	s.repo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *authoritySuite) TestTransfer() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("FindOne", mock.Anything, member).Return(&authority.Manager{Address: member}, nil).Once()
	s.repo.On("Delete", mock.Anything, member).Return(nil).Once()
	s.repo.On("FindOne", mock.Anything, successor).Return(nil, nil).Once()
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(m authority.Manager) bool {
		return m.Address == successor && m.GrantedBy == member
	})).Return(nil).Once()

	s.NoError(s.uc.Transfer(ctx.Background(), member, successor))
}

func (s *authoritySuite) TestTransferToExistingMember() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("FindOne", mock.Anything, member).Return(&authority.Manager{Address: member}, nil).Once()
	s.repo.On("Delete", mock.Anything, member).Return(nil).Once()
	s.repo.On("FindOne", mock.Anything, successor).Return(&authority.Manager{Address: successor}, nil).Once()

	s.NoError(s.uc.Transfer(ctx.Background(), member, successor))
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *authoritySuite) TestTransferToSelf() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(passthrough).Once()
	s.repo.On("FindOne", mock.Anything, member).Return(&authority.Manager{Address: member}, nil).Once()

	s.NoError(s.uc.Transfer(ctx.Background(), member, member))
}

func (s *authoritySuite) TestAdminGrant() {
	s.ErrorIs(s.uc.AdminGrant(ctx.Background(), stranger, member), domain.ErrUnauthorized)

	s.repo.On("FindOne", mock.Anything, member).Return(nil, nil).Once()
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(m authority.Manager) bool {
		return m.Address == member && m.GrantedBy == admin
	})).Return(nil).Once()
	s.NoError(s.uc.AdminGrant(ctx.Background(), admin, member))
}

func TestAuthoritySuite(t *testing.T) {
	suite.Run(t, new(authoritySuite))
}
