package postgres_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/repository/postgres/testhelpers"
)

type UserRepositoryTestSuite struct {
	dbSuite
	repo repository.UserRepository
}

func (s *UserRepositoryTestSuite) SetupSuite() {
	s.fixtures = []string{"users.sql"}
	s.dbSuite.SetupSuite()
	s.repo = testhelpers.NewUserRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *UserRepositoryTestSuite) TestList_Filters() {
	active := true
	users, total, err := s.repo.List(s.ctx, domain.UserFilter{
		Company:  "Acme",
		IsActive: &active,
		OrderBy:  "employee_id",
		Limit:    10,
	})

	s.Require().NoError(err)
	s.Equal(3, total)
	s.Require().Len(users, 3)
	s.Equal("", users[0].EmployeeID)
	s.Equal("00001", users[1].EmployeeID)
}

func (s *UserRepositoryTestSuite) TestList_QueryAndPaging() {
	users, total, err := s.repo.List(s.ctx, domain.UserFilter{Query: "bruno", Limit: 10})
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Equal("00002", users[0].EmployeeID)

	users, total, err = s.repo.List(s.ctx, domain.UserFilter{
		OrderBy: "username", Descending: true, Offset: 1, Limit: 2,
	})
	s.Require().NoError(err)
	s.Equal(4, total)
	s.Require().Len(users, 2)
	s.Equal("emp_00003", users[0].Username)
}

func (s *UserRepositoryTestSuite) TestCreate_Conflict() {
	err := s.repo.Create(s.ctx, &domain.User{
		Username: "emp_00001", Role: domain.RoleEmployee, EmployeeStatus: domain.EmployeeStatusActive,
	})
	s.ErrorIs(err, errors.ErrConflict)
}

func (s *UserRepositoryTestSuite) TestUpdate_Location() {
	id, err := testhelpers.GetUserIDByEmployeeID(s.testDB.DB.DB, "00003")
	s.Require().NoError(err)

	user, err := s.repo.GetByID(s.ctx, id)
	s.Require().NoError(err)
	_, ok := user.Location()
	s.False(ok)

	lat, lon := 19.5, -99.1
	domain.UserPatch{Latitude: &lat, Longitude: &lon}.Apply(user)
	s.Require().NoError(s.repo.Update(s.ctx, user))

	user, err = s.repo.GetByID(s.ctx, id)
	s.Require().NoError(err)
	loc, ok := user.Location()
	s.True(ok)
	s.InDelta(19.5, loc.Lat, 1e-9)
}

func (s *UserRepositoryTestSuite) TestExistingAndCreateBatch() {
	existing, err := s.repo.ExistingEmployeeIDs(s.ctx, []string{"00001", "00099"})
	s.Require().NoError(err)
	s.Contains(existing, "00001")
	s.NotContains(existing, "00099")

	n, err := s.repo.CreateBatch(s.ctx, []domain.User{
		{Username: "emp_a", EmployeeID: "00099", Role: domain.RoleEmployee, IsActive: true, EmployeeStatus: domain.EmployeeStatusActive},
		{Username: "emp_b", EmployeeID: "00098", Role: domain.RoleEmployee, IsActive: true, EmployeeStatus: domain.EmployeeStatusActive},
	})
	s.NoError(err)
	s.Equal(2, n)

	counts, err := s.repo.Counts(s.ctx)
	s.Require().NoError(err)
	s.Equal(6, counts.Total)
	s.Equal(5, counts.Employees)
}

func (s *UserRepositoryTestSuite) TestSyncActiveEmployees() {
	updated, err := s.repo.SyncActiveEmployees(s.ctx, []string{"00001", "00003"}, time.Now())

	s.Require().NoError(err)
	// 00002 deactivated, 00003 activated; 00001 unchanged; hr_admin has no employee id
	s.Equal(2, updated)

	id, err := testhelpers.GetUserIDByEmployeeID(s.testDB.DB.DB, "00002")
	s.Require().NoError(err)
	user, err := s.repo.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.False(user.IsActive)
	s.Equal(domain.EmployeeStatusTerminated, user.EmployeeStatus)

	admin, err := s.repo.GetByUsername(s.ctx, "hr_admin")
	s.Require().NoError(err)
	s.True(admin.IsActive)
}

func (s *UserRepositoryTestSuite) TestListWithLocation() {
	users, err := s.repo.ListWithLocation(s.ctx)
	s.NoError(err)
	s.Len(users, 2)
}

func (s *UserRepositoryTestSuite) TestDeleteByIDs() {
	id, err := testhelpers.GetUserIDByEmployeeID(s.testDB.DB.DB, "00001")
	s.Require().NoError(err)

	n, err := s.repo.DeleteByIDs(s.ctx, []int64{id, 999999})
	s.NoError(err)
	s.Equal(1, n)
}

func (s *UserRepositoryTestSuite) TestConsent() {
	id, err := testhelpers.GetUserIDByEmployeeID(s.testDB.DB.DB, "00001")
	s.Require().NoError(err)

	consent, err := s.repo.GetOrCreateConsent(s.ctx, id)
	s.Require().NoError(err)
	s.False(consent.Accepted)
	s.Equal(domain.DefaultConsentVersion, consent.Version)

	accepted := true
	consent.Apply(domain.ConsentChange{Accepted: &accepted}, time.Now())
	s.Require().NoError(s.repo.SaveConsent(s.ctx, consent))

	consent, err = s.repo.GetOrCreateConsent(s.ctx, id)
	s.Require().NoError(err)
	s.True(consent.Accepted)
	s.NotNil(consent.AcceptedAt)

	_, err = s.repo.GetOrCreateConsent(s.ctx, 999999)
	s.ErrorIs(err, errors.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
