package usecase

import (
	"context"
	"time"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/metrics"
	"go.uber.org/zap"
)

// AssignmentUseCase recomputes the nearest stop and covering meshes of every
// employee with a registered location.
type AssignmentUseCase struct {
	userRepo       repository.UserRepository
	stopRepo       repository.BusStopRepository
	meshRepo       repository.CoverageMeshRepository
	assignmentRepo repository.AssignmentRepository
	logger         *zap.Logger
	now            func() time.Time
}

func NewAssignmentUseCase(
	userRepo repository.UserRepository,
	stopRepo repository.BusStopRepository,
	meshRepo repository.CoverageMeshRepository,
	assignmentRepo repository.AssignmentRepository,
	logger *zap.Logger,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		userRepo:       userRepo,
		stopRepo:       stopRepo,
		meshRepo:       meshRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// Recompute rebuilds the assignment table from a fresh snapshot and returns
// how many employees were assigned.
func (uc *AssignmentUseCase) Recompute(ctx context.Context) (n int, err error) {
	defer func() {
		metrics.AssignmentRecomputes.WithLabelValues(metrics.Outcome(err)).Inc()
	}()

	users, err := uc.userRepo.ListWithLocation(ctx)
	if err != nil {
		return 0, err
	}
	stops, err := uc.stopRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	meshes, err := uc.meshRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	assignments := Assign(users, stops, meshes, uc.now().UTC())

	if err := uc.assignmentRepo.ReplaceAll(ctx, assignments); err != nil {
		return 0, err
	}

	uc.logger.Info("Assignments recomputed",
		zap.Int("employees", len(assignments)),
		zap.Int("stops", len(stops)),
		zap.Int("meshes", len(meshes)),
	)
	return len(assignments), nil
}

// Assign pairs every located user with the nearest stop and the meshes
// containing the user. Users without a location are skipped.
func Assign(users []domain.User, stops []domain.BusStop, meshes []domain.CoverageMesh, at time.Time) []domain.EmployeeAssignment {
	idx := newMeshIndex(meshes)

	out := make([]domain.EmployeeAssignment, 0, len(users))
	for i := range users {
		u := &users[i]
		loc, ok := u.Location()
		if !ok {
			continue
		}

		a := domain.EmployeeAssignment{
			UserID:     u.ID,
			EmployeeID: u.EmployeeID,
			MeshIDs:    []int64{},
			ComputedAt: at,
		}
		if nearest, ok := NearestStop(loc, stops); ok {
			id, d := nearest.Stop.ID, nearest.DistanceM
			a.BusStopID = &id
			a.StopName = nearest.Stop.DisplayName()
			a.DistanceM = &d
		}
		for _, m := range idx.Containing(loc) {
			a.MeshIDs = append(a.MeshIDs, m.ID)
		}
		out = append(out, a)
	}
	return out
}
