package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/ingest"
	"github.com/shuttle-hr/internal/pkg/metrics"
	"github.com/shuttle-hr/internal/pkg/utils"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

type BusStopUseCase struct {
	stopRepo repository.BusStopRepository
	active   *ActiveData
	notifier *RecomputeNotifier
	logger   *zap.Logger
}

func NewBusStopUseCase(
	stopRepo repository.BusStopRepository,
	active *ActiveData,
	notifier *RecomputeNotifier,
	logger *zap.Logger,
) *BusStopUseCase {
	return &BusStopUseCase{
		stopRepo: stopRepo,
		active:   active,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *BusStopUseCase) List(ctx context.Context, page utils.Page) ([]domain.BusStop, *utils.Meta, error) {
	stops, total, err := uc.stopRepo.List(ctx, page.Offset(), page.Size)
	if err != nil {
		return nil, nil, err
	}

	return stops, &utils.Meta{
		Total:      total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.TotalPages(total),
	}, nil
}

func (uc *BusStopUseCase) Get(ctx context.Context, id int64) (*domain.BusStop, error) {
	return uc.stopRepo.GetByID(ctx, id)
}

func (uc *BusStopUseCase) Create(ctx context.Context, req dto.BusStopRequest) (*domain.BusStop, error) {
	stop := &domain.BusStop{IsActive: true}
	applyBusStopRequest(stop, req)

	if err := uc.stopRepo.Create(ctx, stop); err != nil {
		return nil, err
	}

	uc.changed(ctx)
	return stop, nil
}

func (uc *BusStopUseCase) Update(ctx context.Context, id int64, req dto.BusStopRequest) (*domain.BusStop, error) {
	stop, err := uc.stopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyBusStopRequest(stop, req)

	if err := uc.stopRepo.Update(ctx, stop); err != nil {
		return nil, err
	}

	uc.changed(ctx)
	return stop, nil
}

func (uc *BusStopUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.stopRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx)
	return nil
}

// Upload replaces the whole stop set with the contents of a CSV file.
// Nothing is written when any row is invalid.
func (uc *BusStopUseCase) Upload(ctx context.Context, file io.Reader) (*dto.UploadResult, error) {
	stops, err := ingest.ParseBusStopsCSV(file)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("bus_stops", "rejected").Inc()
		return nil, err
	}

	n, err := uc.stopRepo.ReplaceAll(ctx, stops)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("bus_stops", "error").Inc()
		return nil, err
	}

	metrics.UploadsProcessed.WithLabelValues("bus_stops", "ok").Inc()
	metrics.UploadRows.WithLabelValues("bus_stops").Add(float64(n))
	uc.logger.Info("Bus stops replaced", zap.Int("count", n))

	uc.changed(ctx)
	return &dto.UploadResult{
		Status:  "success",
		Message: fmt.Sprintf("Uploaded %d bus stops.", n),
		Count:   n,
	}, nil
}

func (uc *BusStopUseCase) DeleteAll(ctx context.Context) (*dto.DeleteResult, error) {
	n, err := uc.stopRepo.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Bus stops deleted", zap.Int("count", n))
	uc.changed(ctx)
	return &dto.DeleteResult{Status: "success", Deleted: n}, nil
}

func (uc *BusStopUseCase) changed(ctx context.Context) {
	uc.active.InvalidateStops(ctx)
	uc.notifier.Notify(ctx, domain.ReasonStopsChanged)
}

func applyBusStopRequest(stop *domain.BusStop, req dto.BusStopRequest) {
	stop.StopID = strings.TrimSpace(req.StopID)
	stop.Name = strings.TrimSpace(req.Name)
	if req.Latitude != nil {
		stop.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		stop.Longitude = *req.Longitude
	}
	stop.Source = req.Source
	if stop.Source == "" {
		stop.Source = domain.StopSourceGenerated
	}
	if req.IsActive != nil {
		stop.IsActive = *req.IsActive
	}
}
