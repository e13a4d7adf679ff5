package usecase

import (
	"context"
	stderrors "errors"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/metrics"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapUseCase serves the employee map: location, nearest and nearby stops,
// active routes and coverage.
type MapUseCase struct {
	userRepo       repository.UserRepository
	meshRepo       repository.CoverageMeshRepository
	assignmentRepo repository.AssignmentRepository
	active         *ActiveData
	defaultLimit   int
	maxLimit       int
	logger         *zap.Logger
}

func NewMapUseCase(
	userRepo repository.UserRepository,
	meshRepo repository.CoverageMeshRepository,
	assignmentRepo repository.AssignmentRepository,
	active *ActiveData,
	defaultLimit, maxLimit int,
	logger *zap.Logger,
) *MapUseCase {
	if defaultLimit <= 0 {
		defaultLimit = 100
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	return &MapUseCase{
		userRepo:       userRepo,
		meshRepo:       meshRepo,
		assignmentRepo: assignmentRepo,
		active:         active,
		defaultLimit:   defaultLimit,
		maxLimit:       maxLimit,
		logger:         logger,
	}
}

func (uc *MapUseCase) EmployeeLocation(ctx context.Context, userID int64) (*dto.LocationResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc, ok := user.Location()
	if !ok {
		return nil, errors.ErrNoLocation
	}
	return &dto.LocationResponse{Lat: loc.Lat, Lng: loc.Lon}, nil
}

func (uc *MapUseCase) NearestStop(ctx context.Context, userID int64) (*dto.NearestStopResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc, ok := user.Location()
	if !ok {
		metrics.ProximityLookups.WithLabelValues("nearest", "no_location").Inc()
		return nil, errors.ErrNoLocation
	}

	stops, err := uc.active.Stops(ctx)
	if err != nil {
		metrics.ProximityLookups.WithLabelValues("nearest", "error").Inc()
		return nil, err
	}

	nearest, ok := NearestStop(loc, stops)
	if !ok {
		metrics.ProximityLookups.WithLabelValues("nearest", "no_stops").Inc()
		return nil, errors.ErrNoStopsAvailable
	}

	metrics.ProximityLookups.WithLabelValues("nearest", "ok").Inc()
	return &dto.NearestStopResponse{
		Stop:      dto.NewStopResponse(nearest.Stop),
		DistanceM: nearest.DistanceM,
	}, nil
}

// NearbyStops returns up to limit active stops. With a registered location they
// are sorted by distance; otherwise by stop_id.
func (uc *MapUseCase) NearbyStops(ctx context.Context, userID int64, limit int) ([]dto.NearbyStopResponse, error) {
	limit = uc.clampLimit(limit)

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stops, err := uc.active.Stops(ctx)
	if err != nil {
		metrics.ProximityLookups.WithLabelValues("nearby", "error").Inc()
		return nil, err
	}

	loc, ok := user.Location()
	if !ok {
		metrics.ProximityLookups.WithLabelValues("nearby", "no_location").Inc()
		first := FirstStopsByStopID(stops, limit)
		out := make([]dto.NearbyStopResponse, 0, len(first))
		for _, s := range first {
			out = append(out, dto.NearbyStopResponse{
				StopResponse: dto.NewStopResponse(s),
				Source:       s.Source,
			})
		}
		return out, nil
	}

	nearest := NearestStops(loc, stops, limit)
	out := make([]dto.NearbyStopResponse, 0, len(nearest))
	for _, sd := range nearest {
		d := sd.DistanceM
		out = append(out, dto.NearbyStopResponse{
			StopResponse: dto.NewStopResponse(sd.Stop),
			Source:       sd.Stop.Source,
			DistanceM:    &d,
		})
	}

	metrics.ProximityLookups.WithLabelValues("nearby", "ok").Inc()
	return out, nil
}

func (uc *MapUseCase) clampLimit(limit int) int {
	if limit <= 0 {
		return uc.defaultLimit
	}
	if limit > uc.maxLimit {
		return uc.maxLimit
	}
	return limit
}

// EmployeeRoutes returns the active plan, or an empty routes list when none is active.
func (uc *MapUseCase) EmployeeRoutes(ctx context.Context) (*dto.EmployeeRoutesResponse, error) {
	plan, err := uc.active.Plan(ctx)
	if stderrors.Is(err, errors.ErrNoActivePlan) {
		return &dto.EmployeeRoutesResponse{Routes: []domain.Route{}}, nil
	}
	if err != nil {
		return nil, err
	}

	routes := plan.Routes
	if routes == nil {
		routes = []domain.Route{}
	}
	return &dto.EmployeeRoutesResponse{RoutePlan: plan, Routes: routes}, nil
}

// EmployeeCoverage lists the coverage meshes containing the employee location.
func (uc *MapUseCase) EmployeeCoverage(ctx context.Context, userID int64) (*dto.EmployeeCoverageResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc, ok := user.Location()
	if !ok {
		return nil, errors.ErrNoLocation
	}

	meshes, err := uc.meshRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	containing := containingMeshes(loc, meshes)
	refs := make([]dto.CoverageMeshRef, 0, len(containing))
	for _, m := range containing {
		refs = append(refs, dto.CoverageMeshRef{ID: m.ID, Name: m.Name, Version: m.Version})
	}

	return &dto.EmployeeCoverageResponse{
		Location: dto.LocationResponse{Lat: loc.Lat, Lng: loc.Lon},
		Covered:  len(refs) > 0,
		Meshes:   refs,
	}, nil
}

// Assignment returns the precomputed assignment for the employee.
func (uc *MapUseCase) Assignment(ctx context.Context, userID int64) (*domain.EmployeeAssignment, error) {
	return uc.assignmentRepo.GetByUserID(ctx, userID)
}
