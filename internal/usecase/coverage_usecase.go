package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/ingest"
	"github.com/shuttle-hr/internal/pkg/metrics"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	defaultMeshName    = "Coverage Mesh"
	defaultMeshVersion = "1.0"
)

type CoverageUseCase struct {
	meshRepo repository.CoverageMeshRepository
	notifier *RecomputeNotifier
	logger   *zap.Logger
}

func NewCoverageUseCase(
	meshRepo repository.CoverageMeshRepository,
	notifier *RecomputeNotifier,
	logger *zap.Logger,
) *CoverageUseCase {
	return &CoverageUseCase{
		meshRepo: meshRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// List returns every mesh, newest first, with points in boundary order.
func (uc *CoverageUseCase) List(ctx context.Context) ([]domain.CoverageMesh, error) {
	return uc.meshRepo.List(ctx)
}

// Create stores a mesh given as JSON points. Points without an explicit order
// keep their position in the request.
func (uc *CoverageUseCase) Create(ctx context.Context, req dto.CoverageMeshRequest) (*domain.CoverageMesh, error) {
	points := make([]domain.CoverageMeshPoint, 0, len(req.Points))
	for i, p := range req.Points {
		if p.Latitude == nil || p.Longitude == nil {
			return nil, errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("Point %d is missing coordinates", i))
		}
		order := i
		if p.Order != nil {
			order = *p.Order
		}
		points = append(points, domain.CoverageMeshPoint{
			Latitude:  *p.Latitude,
			Longitude: *p.Longitude,
			Order:     order,
		})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Order < points[j].Order })
	for i := 1; i < len(points); i++ {
		if points[i].Order == points[i-1].Order {
			return nil, errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("Duplicate point order %d", points[i].Order))
		}
	}

	mesh := &domain.CoverageMesh{
		Name:    meshName(req.Name),
		Version: meshVersion(req.Version),
		Points:  points,
	}
	if err := uc.meshRepo.Create(ctx, mesh); err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, domain.ReasonCoverageChanged)
	return mesh, nil
}

// Upload normalizes a GeoJSON Polygon/FeatureCollection or a latitude/longitude
// CSV into a new mesh.
func (uc *CoverageUseCase) Upload(ctx context.Context, content []byte, name, version string) (*dto.CoverageUploadResult, error) {
	input, err := ingest.DetectCoverageInput(content)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("coverage_mesh", "rejected").Inc()
		return nil, err
	}

	points, err := ingest.MeshPoints(input)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("coverage_mesh", "rejected").Inc()
		return nil, err
	}

	mesh := &domain.CoverageMesh{
		Name:    meshName(name),
		Version: meshVersion(version),
		Points:  points,
	}
	if err := uc.meshRepo.Create(ctx, mesh); err != nil {
		metrics.UploadsProcessed.WithLabelValues("coverage_mesh", "error").Inc()
		return nil, err
	}

	metrics.UploadsProcessed.WithLabelValues("coverage_mesh", "ok").Inc()
	metrics.UploadRows.WithLabelValues("coverage_mesh").Add(float64(len(points)))
	uc.logger.Info("Coverage mesh uploaded",
		zap.Int64("mesh_id", mesh.ID),
		zap.String("format", input.Kind()),
		zap.Int("points", len(points)),
	)

	uc.notifier.Notify(ctx, domain.ReasonCoverageChanged)
	return &dto.CoverageUploadResult{
		Status:      "success",
		MeshID:      mesh.ID,
		PointsCount: len(points),
		Format:      input.Kind(),
		Message:     fmt.Sprintf("Coverage mesh uploaded with %d points.", len(points)),
	}, nil
}

// Delete removes a single mesh, or every mesh when id is nil.
func (uc *CoverageUseCase) Delete(ctx context.Context, id *int64) (*dto.DeleteResult, error) {
	deleted := 1
	if id != nil {
		if err := uc.meshRepo.Delete(ctx, *id); err != nil {
			return nil, err
		}
	} else {
		n, err := uc.meshRepo.DeleteAll(ctx)
		if err != nil {
			return nil, err
		}
		deleted = n
	}

	uc.notifier.Notify(ctx, domain.ReasonCoverageChanged)
	return &dto.DeleteResult{Status: "success", Deleted: deleted}, nil
}

// ContainingMeshes returns the meshes whose boundary contains coord.
func (uc *CoverageUseCase) ContainingMeshes(ctx context.Context, coord domain.Coordinate) ([]domain.CoverageMesh, error) {
	meshes, err := uc.meshRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return containingMeshes(coord, meshes), nil
}

func meshName(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return defaultMeshName
}

func meshVersion(version string) string {
	if version = strings.TrimSpace(version); version != "" {
		return version
	}
	return defaultMeshVersion
}
