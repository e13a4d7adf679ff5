package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/ingest"
	"github.com/shuttle-hr/internal/pkg/metrics"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

type RoutePlanUseCase struct {
	planRepo repository.RoutePlanRepository
	active   *ActiveData
	logger   *zap.Logger
}

func NewRoutePlanUseCase(
	planRepo repository.RoutePlanRepository,
	active *ActiveData,
	logger *zap.Logger,
) *RoutePlanUseCase {
	return &RoutePlanUseCase{
		planRepo: planRepo,
		active:   active,
		logger:   logger,
	}
}

// List returns every plan, newest first, with nested routes.
func (uc *RoutePlanUseCase) List(ctx context.Context) ([]domain.RoutePlan, error) {
	return uc.planRepo.List(ctx)
}

func (uc *RoutePlanUseCase) Get(ctx context.Context, id int64) (*domain.RoutePlan, error) {
	return uc.planRepo.GetByID(ctx, id)
}

// Active returns the active plan or errors.ErrNoActivePlan.
func (uc *RoutePlanUseCase) Active(ctx context.Context) (*domain.RoutePlan, error) {
	return uc.active.Plan(ctx)
}

// Activate makes the plan the only active one.
func (uc *RoutePlanUseCase) Activate(ctx context.Context, id int64) (*domain.RoutePlan, error) {
	if err := uc.planRepo.Activate(ctx, id); err != nil {
		return nil, err
	}
	metrics.PlanActivations.Inc()
	uc.active.InvalidatePlan(ctx)

	uc.logger.Info("Route plan activated", zap.Int64("plan_id", id))
	return uc.planRepo.GetByID(ctx, id)
}

// Upload parses a GPX file and attaches the route to the named plan,
// creating the plan when it does not exist yet.
func (uc *RoutePlanUseCase) Upload(ctx context.Context, content []byte, req dto.RouteUploadRequest) (*dto.RouteUploadResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Route name is required")
	}

	shift := strings.ToUpper(strings.TrimSpace(req.RouteType))
	if shift == "" {
		shift = domain.ShiftFixed8
	}
	if !domain.IsValidShift(shift) {
		return nil, errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("Unknown route_type %q", req.RouteType))
	}

	parsed, err := ingest.ParseRouteGPX(content)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("route", "rejected").Inc()
		return nil, err
	}

	planName := strings.TrimSpace(req.PlanName)
	if planName == "" {
		planName = name + " Plan"
	}
	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = domain.DefaultRouteColor
	}
	activate := ingest.FormBool(req.IsActive)

	result, err := uc.planRepo.CreateRoute(ctx, domain.RouteUpload{
		PlanName:    planName,
		BusSupplier: strings.TrimSpace(req.BusSupplier),
		Activate:    activate,
		Route: domain.Route{
			Name:        name,
			Shift:       shift,
			Color:       color,
			Stops:       parsed.Stops,
			Trackpoints: parsed.Trackpoints,
		},
	})
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("route", "error").Inc()
		return nil, err
	}

	metrics.UploadsProcessed.WithLabelValues("route", "ok").Inc()
	metrics.UploadRows.WithLabelValues("route").Add(float64(result.TrackPoints + result.StopPoints))
	if activate {
		metrics.PlanActivations.Inc()
	}
	uc.active.InvalidatePlan(ctx)

	uc.logger.Info("Route uploaded",
		zap.Int64("route_id", result.RouteID),
		zap.Int64("plan_id", result.PlanID),
		zap.Bool("plan_created", result.PlanCreated),
		zap.Bool("activated", activate),
	)

	return &dto.RouteUploadResult{
		Status:            "success",
		RouteUploadResult: *result,
		Message: fmt.Sprintf("Route %q uploaded with %d trackpoints and %d stops.",
			name, result.TrackPoints, result.StopPoints),
	}, nil
}

// Delete removes a route, a plan, or both. At least one id is required.
func (uc *RoutePlanUseCase) Delete(ctx context.Context, req dto.DeleteRouteRequest) (*dto.DeleteResult, error) {
	if req.RouteID == nil && req.PlanID == nil {
		return nil, errors.ErrInvalidRequest.WithMessage("route_id or plan_id is required")
	}

	deleted, err := uc.planRepo.Delete(ctx, req.RouteID, req.PlanID)
	if err != nil {
		return nil, err
	}

	uc.active.InvalidatePlan(ctx)
	return &dto.DeleteResult{Status: "success", Deleted: deleted}, nil
}
