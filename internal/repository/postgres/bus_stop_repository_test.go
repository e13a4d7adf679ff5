package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/repository/postgres/testhelpers"
)

type BusStopRepositoryTestSuite struct {
	dbSuite
	repo repository.BusStopRepository
}

func (s *BusStopRepositoryTestSuite) SetupSuite() {
	s.fixtures = []string{"bus_stops.sql"}
	s.dbSuite.SetupSuite()
	s.repo = testhelpers.NewBusStopRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *BusStopRepositoryTestSuite) TestList_OrderedByStopID() {
	stops, total, err := s.repo.List(s.ctx, 0, 2)

	s.NoError(err)
	s.Equal(3, total)
	s.Require().Len(stops, 2)
	s.Equal("S001", stops[0].StopID)
	s.Equal("S002", stops[1].StopID)
}

func (s *BusStopRepositoryTestSuite) TestListActive_SkipsInactive() {
	stops, err := s.repo.ListActive(s.ctx)

	s.NoError(err)
	s.Require().Len(stops, 2)
	for _, stop := range stops {
		s.True(stop.IsActive)
	}
}

func (s *BusStopRepositoryTestSuite) TestCreate_DuplicateStopID() {
	err := s.repo.Create(s.ctx, &domain.BusStop{
		StopID: "S001", Name: "Dup", Latitude: 1, Longitude: 1,
		Source: domain.StopSourceGenerated, IsActive: true,
	})

	s.ErrorIs(err, errors.ErrConflict)
}

func (s *BusStopRepositoryTestSuite) TestCreateUpdateDelete() {
	stop := &domain.BusStop{
		StopID: "S900", Name: "New", Latitude: 19.5, Longitude: -99.2,
		Source: domain.StopSourceGenerated, IsActive: true,
	}
	s.Require().NoError(s.repo.Create(s.ctx, stop))
	s.NotZero(stop.ID)
	s.False(stop.CreatedAt.IsZero())

	stop.Name = "Renamed"
	stop.IsActive = false
	s.Require().NoError(s.repo.Update(s.ctx, stop))

	got, err := s.repo.GetByID(s.ctx, stop.ID)
	s.Require().NoError(err)
	s.Equal("Renamed", got.Name)
	s.False(got.IsActive)

	s.Require().NoError(s.repo.Delete(s.ctx, stop.ID))
	_, err = s.repo.GetByID(s.ctx, stop.ID)
	s.ErrorIs(err, errors.ErrNotFound)
	s.ErrorIs(s.repo.Delete(s.ctx, stop.ID), errors.ErrNotFound)
}

func (s *BusStopRepositoryTestSuite) TestReplaceAll_SwapsWholeSet() {
	n, err := s.repo.ReplaceAll(s.ctx, []domain.BusStop{
		{StopID: "N1", Name: "One", Latitude: 1, Longitude: 1, Source: domain.StopSourceMoovit, IsActive: true},
		{StopID: "N2", Name: "Two", Latitude: 2, Longitude: 2, Source: domain.StopSourceGenerated, IsActive: true},
	})

	s.NoError(err)
	s.Equal(2, n)

	stops, total, err := s.repo.List(s.ctx, 0, 10)
	s.NoError(err)
	s.Equal(2, total)
	s.Equal("N1", stops[0].StopID)
}

func (s *BusStopRepositoryTestSuite) TestReplaceAll_DuplicateKeepsOldSet() {
	_, err := s.repo.ReplaceAll(s.ctx, []domain.BusStop{
		{StopID: "D1", Latitude: 1, Longitude: 1, Source: domain.StopSourceGenerated, IsActive: true},
		{StopID: "D1", Latitude: 2, Longitude: 2, Source: domain.StopSourceGenerated, IsActive: true},
	})
	s.ErrorIs(err, errors.ErrInvalidUpload)

	// rolled back
	_, total, err := s.repo.List(s.ctx, 0, 10)
	s.NoError(err)
	s.Equal(3, total)
}

func (s *BusStopRepositoryTestSuite) TestCountsAndDeleteAll() {
	counts, err := s.repo.Counts(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, counts.Total)
	s.Equal(2, counts.Active)
	s.Equal(1, counts.Inactive)

	n, err := s.repo.DeleteAll(s.ctx)
	s.NoError(err)
	s.Equal(3, n)

	counts, err = s.repo.Counts(s.ctx)
	s.Require().NoError(err)
	s.Zero(counts.Total)
}

func TestBusStopRepository(t *testing.T) {
	suite.Run(t, new(BusStopRepositoryTestSuite))
}
