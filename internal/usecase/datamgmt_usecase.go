package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/ingest"
	"github.com/shuttle-hr/internal/pkg/metrics"
	"github.com/shuttle-hr/internal/pkg/utils"
	"github.com/shuttle-hr/internal/usecase/dto"
	"go.uber.org/zap"
)

const overviewPageSize = 10

// overviewSort maps the overview sort parameter to user ordering fields
var overviewSort = map[string]string{
	"employee_id": "employee_id",
	"name":        "name",
	"company":     "company",
}

// DataManagementUseCase backs the HR data management screen.
type DataManagementUseCase struct {
	userRepo       repository.UserRepository
	stopRepo       repository.BusStopRepository
	meshRepo       repository.CoverageMeshRepository
	planRepo       repository.RoutePlanRepository
	assignmentRepo repository.AssignmentRepository
	notifier       *RecomputeNotifier
	logger         *zap.Logger
	now            func() time.Time
}

func NewDataManagementUseCase(
	userRepo repository.UserRepository,
	stopRepo repository.BusStopRepository,
	meshRepo repository.CoverageMeshRepository,
	planRepo repository.RoutePlanRepository,
	assignmentRepo repository.AssignmentRepository,
	notifier *RecomputeNotifier,
	logger *zap.Logger,
) *DataManagementUseCase {
	return &DataManagementUseCase{
		userRepo:       userRepo,
		stopRepo:       stopRepo,
		meshRepo:       meshRepo,
		planRepo:       planRepo,
		assignmentRepo: assignmentRepo,
		notifier:       notifier,
		logger:         logger,
		now:            time.Now,
	}
}

// Overview assembles the employee page together with stop, mesh, plan and
// assignment summaries.
func (uc *DataManagementUseCase) Overview(ctx context.Context, role string, req dto.OverviewRequest) (*dto.OverviewResponse, error) {
	sortField, ok := overviewSort[strings.ToLower(strings.TrimSpace(req.Sort))]
	if !ok {
		sortField = "employee_id"
	}
	showAll := ingest.FormBool(req.ShowAll)
	page := utils.NewPage(req.Page, overviewPageSize)

	// все пользователи, включая админов
	filter := domain.UserFilter{
		Query:      strings.TrimSpace(req.Q),
		OrderBy:    sortField,
		Descending: strings.EqualFold(req.Dir, "desc"),
	}
	if !showAll {
		filter.Offset = page.Offset()
		filter.Limit = page.Size
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.EmployeeRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, dto.NewEmployeeRow(u))
	}

	totalPages := 1
	if !showAll {
		totalPages = page.TotalPages(total)
	}

	stopCounts, err := uc.stopRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	meshes, err := uc.meshRepo.Summaries(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := uc.planRepo.Summaries(ctx)
	if err != nil {
		return nil, err
	}

	// assignments are advisory; the overview still renders without them
	assignments, err := uc.assignmentRepo.Summary(ctx)
	if err != nil {
		uc.logger.Warn("Failed to load assignment summary", zap.Error(err))
		assignments = nil
	}

	return &dto.OverviewResponse{
		Role: role,
		Employees: dto.EmployeesPage{
			Results:    rows,
			TotalPages: totalPages,
			TotalCount: total,
		},
		BusStops:       *stopCounts,
		CoverageMeshes: meshes,
		RoutePlans:     plans,
		Assignments:    assignments,
	}, nil
}

// UploadActiveEmployees marks every employee listed in the file active and
// every other employee terminated.
func (uc *DataManagementUseCase) UploadActiveEmployees(ctx context.Context, file io.Reader) (*dto.UploadResult, error) {
	ids, err := ingest.ParseActiveEmployeesCSV(file)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("active_employees", "rejected").Inc()
		return nil, err
	}

	updated, err := uc.userRepo.SyncActiveEmployees(ctx, ids, uc.now().UTC())
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("active_employees", "error").Inc()
		return nil, err
	}

	metrics.UploadsProcessed.WithLabelValues("active_employees", "ok").Inc()
	metrics.UploadRows.WithLabelValues("active_employees").Add(float64(updated))
	uc.logger.Info("Active employees synced",
		zap.Int("listed", len(ids)),
		zap.Int("updated", updated),
	)

	uc.notifier.Notify(ctx, domain.ReasonEmployeesChanged)
	return &dto.UploadResult{
		Status:  "success",
		Message: fmt.Sprintf("Updated %d employees.", updated),
		Count:   updated,
	}, nil
}

// UploadMinimalEmployees creates users for employee ids not yet registered.
// Existing ids are skipped.
func (uc *DataManagementUseCase) UploadMinimalEmployees(ctx context.Context, file io.Reader) (*dto.UploadResult, error) {
	rows, err := ingest.ParseMinimalEmployeesCSV(file)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("minimal_employees", "rejected").Inc()
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.EmployeeID)
	}
	existing, err := uc.userRepo.ExistingEmployeeIDs(ctx, ids)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("minimal_employees", "error").Inc()
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, r := range rows {
		if _, ok := existing[r.EmployeeID]; ok {
			continue
		}
		users = append(users, newMinimalEmployee(r))
	}

	created, err := uc.userRepo.CreateBatch(ctx, users)
	if err != nil {
		metrics.UploadsProcessed.WithLabelValues("minimal_employees", "error").Inc()
		return nil, err
	}

	skipped := len(rows) - len(users)
	metrics.UploadsProcessed.WithLabelValues("minimal_employees", "ok").Inc()
	metrics.UploadRows.WithLabelValues("minimal_employees").Add(float64(created))
	uc.logger.Info("Minimal employees uploaded",
		zap.Int("created", created),
		zap.Int("skipped", skipped),
	)

	if created > 0 {
		uc.notifier.Notify(ctx, domain.ReasonEmployeesChanged)
	}
	return &dto.UploadResult{
		Status:  "success",
		Message: fmt.Sprintf("Created %d employees, skipped %d existing.", created, skipped),
		Count:   created,
	}, nil
}

func newMinimalEmployee(r ingest.MinimalEmployee) domain.User {
	lat, lon := r.Latitude, r.Longitude
	return domain.User{
		Username:       "emp_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
		Name:           "Employee " + r.EmployeeID,
		Email:          fmt.Sprintf("emp_%s@temp.com", r.EmployeeID),
		Role:           domain.RoleEmployee,
		EmployeeID:     r.EmployeeID,
		Company:        r.Company,
		IsActive:       true,
		EmployeeStatus: domain.EmployeeStatusActive,
		Shift:          r.Shift,
		Utilization:    r.Utilization,
		Latitude:       &lat,
		Longitude:      &lon,
	}
}

func (uc *DataManagementUseCase) DeleteEmployees(ctx context.Context, ids []int64) (*dto.DeleteResult, error) {
	if len(ids) == 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("No employees selected")
	}

	n, err := uc.userRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Employees deleted", zap.Int("requested", len(ids)), zap.Int("deleted", n))
	uc.notifier.Notify(ctx, domain.ReasonEmployeesChanged)
	return &dto.DeleteResult{Status: "success", Deleted: n}, nil
}
