package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/pkg/errors"
	"go.uber.org/zap"
)

const routePlanColumns = `id, route_plan_name, bus_supplier, is_active, created_at`

type routePlanRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRoutePlanRepository(db *DB) repository.RoutePlanRepository {
	return &routePlanRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *routePlanRepository) List(ctx context.Context) ([]domain.RoutePlan, error) {
	plans := []domain.RoutePlan{}
	query := `SELECT ` + routePlanColumns + ` FROM route_plans ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &plans, query); err != nil {
		r.logger.Error("Failed to list route plans", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.loadRoutes(ctx, plans); err != nil {
		r.logger.Error("Failed to load routes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return plans, nil
}

func (r *routePlanRepository) GetByID(ctx context.Context, id int64) (*domain.RoutePlan, error) {
	var plan domain.RoutePlan
	err := r.db.GetContext(ctx, &plan, `SELECT `+routePlanColumns+` FROM route_plans WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound.WithMessage("Route plan not found")
	}
	if err != nil {
		r.logger.Error("Failed to get route plan", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	plans := []domain.RoutePlan{plan}
	if err := r.loadRoutes(ctx, plans); err != nil {
		r.logger.Error("Failed to load routes", zap.Int64("plan_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &plans[0], nil
}

func (r *routePlanRepository) GetActive(ctx context.Context) (*domain.RoutePlan, error) {
	var plan domain.RoutePlan
	err := r.db.GetContext(ctx, &plan, `SELECT `+routePlanColumns+` FROM route_plans WHERE is_active LIMIT 1`)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get active route plan", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	plans := []domain.RoutePlan{plan}
	if err := r.loadRoutes(ctx, plans); err != nil {
		r.logger.Error("Failed to load routes", zap.Int64("plan_id", plan.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &plans[0], nil
}

// Activate demotes every other plan and promotes id in a single transaction.
// The advisory lock serializes concurrent activations; the partial unique
// index on is_active rejects anything that slips past it.
func (r *routePlanRepository) Activate(ctx context.Context, id int64) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return activatePlan(ctx, tx, id)
	})
	if err == sql.ErrNoRows {
		return errors.ErrNotFound.WithMessage("Route plan not found")
	}
	if err != nil {
		r.logger.Error("Failed to activate route plan", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	r.logger.Info("Route plan activated", zap.Int64("id", id))
	return nil
}

func activatePlan(ctx context.Context, tx *sqlx.Tx, id int64) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, lockActivatePlan); err != nil {
		return err
	}

	var exists int64
	if err := tx.GetContext(ctx, &exists, `SELECT id FROM route_plans WHERE id = $1 FOR UPDATE`, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE route_plans SET is_active = FALSE WHERE is_active AND id <> $1`, id); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `UPDATE route_plans SET is_active = TRUE WHERE id = $1`, id)
	return err
}

func (r *routePlanRepository) CreateRoute(ctx context.Context, upload domain.RouteUpload) (*domain.RouteUploadResult, error) {
	result := &domain.RouteUploadResult{
		TrackPoints: len(upload.Route.Trackpoints),
		StopPoints:  len(upload.Route.Stops),
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if upload.Activate {
			// take the activation lock before any row lock to keep lock order stable
			if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, lockActivatePlan); err != nil {
				return err
			}
		}

		// xmax = 0 only for freshly inserted rows
		upsert := `
			INSERT INTO route_plans (route_plan_name, bus_supplier)
			VALUES ($1, $2)
			ON CONFLICT (route_plan_name) DO UPDATE SET route_plan_name = EXCLUDED.route_plan_name
			RETURNING id, (xmax = 0) AS inserted
		`
		if err := tx.QueryRowxContext(ctx, upsert, upload.PlanName, upload.BusSupplier).
			Scan(&result.PlanID, &result.PlanCreated); err != nil {
			return err
		}

		route := upload.Route
		err := tx.QueryRowxContext(ctx,
			`INSERT INTO routes (plan_id, route_name, shift, color) VALUES ($1, $2, $3, $4) RETURNING id`,
			result.PlanID, route.Name, route.Shift, route.Color,
		).Scan(&result.RouteID)
		if err != nil {
			return err
		}

		for i := range route.Stops {
			route.Stops[i].RouteID = result.RouteID
		}
		for i := range route.Trackpoints {
			route.Trackpoints[i].RouteID = result.RouteID
		}

		stopsQuery := `INSERT INTO route_stop_points (route_id, stop_name, latitude, longitude, point_order) ` +
			`VALUES (:route_id, :stop_name, :latitude, :longitude, :point_order)`
		for _, c := range chunks(len(route.Stops), insertChunkSize) {
			if _, err := tx.NamedExecContext(ctx, stopsQuery, route.Stops[c[0]:c[1]]); err != nil {
				return err
			}
		}

		trackQuery := `INSERT INTO route_track_points (route_id, latitude, longitude, point_order) ` +
			`VALUES (:route_id, :latitude, :longitude, :point_order)`
		for _, c := range chunks(len(route.Trackpoints), insertChunkSize) {
			if _, err := tx.NamedExecContext(ctx, trackQuery, route.Trackpoints[c[0]:c[1]]); err != nil {
				return err
			}
		}

		if upload.Activate {
			return activatePlan(ctx, tx, result.PlanID)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to create route",
			zap.String("plan", upload.PlanName),
			zap.String("route", upload.Route.Name),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	r.logger.Info("Route created",
		zap.Int64("plan_id", result.PlanID),
		zap.Int64("route_id", result.RouteID),
		zap.Bool("plan_created", result.PlanCreated),
		zap.Int("track_points", result.TrackPoints),
		zap.Int("stop_points", result.StopPoints))
	return result, nil
}

// Delete removes the route and/or the plan in one transaction. Either both
// deletes happen or none does.
func (r *routePlanRepository) Delete(ctx context.Context, routeID, planID *int64) (int, error) {
	deleted := 0
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if routeID != nil {
			if err := deleteByID(ctx, tx, `DELETE FROM routes WHERE id = $1`, *routeID, "Route not found"); err != nil {
				return err
			}
			deleted++
		}
		if planID != nil {
			if err := deleteByID(ctx, tx, `DELETE FROM route_plans WHERE id = $1`, *planID, "Route plan not found"); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return 0, appErr
		}
		r.logger.Error("Failed to delete route/plan",
			zap.Int64p("route_id", routeID),
			zap.Int64p("plan_id", planID),
			zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	r.logger.Info("Route/plan deleted",
		zap.Int64p("route_id", routeID),
		zap.Int64p("plan_id", planID))
	return deleted, nil
}

func deleteByID(ctx context.Context, tx *sqlx.Tx, query string, id int64, notFound string) error {
	res, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrNotFound.WithMessage(notFound)
	}
	return nil
}

func (r *routePlanRepository) Summaries(ctx context.Context) ([]domain.RoutePlanSummary, error) {
	summaries := []domain.RoutePlanSummary{}
	query := `
		SELECT p.id, p.route_plan_name, p.bus_supplier, p.is_active, p.created_at,
		       COUNT(r.id) AS routes_count
		FROM route_plans p
		LEFT JOIN routes r ON r.plan_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
	`
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		r.logger.Error("Failed to summarize route plans", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return summaries, nil
}

// loadRoutes fills Routes (with ordered stops and trackpoints) for every plan.
func (r *routePlanRepository) loadRoutes(ctx context.Context, plans []domain.RoutePlan) error {
	if len(plans) == 0 {
		return nil
	}

	planIDs := make([]int64, len(plans))
	for i, p := range plans {
		planIDs[i] = p.ID
	}

	var routes []domain.Route
	err := r.db.SelectContext(ctx, &routes,
		`SELECT id, plan_id, route_name, shift, color FROM routes WHERE plan_id = ANY($1) ORDER BY id`,
		pq.Int64Array(planIDs))
	if err != nil {
		return err
	}

	routeIDs := make([]int64, len(routes))
	for i, rt := range routes {
		routeIDs[i] = rt.ID
	}

	var stops []domain.RouteStopPoint
	if len(routeIDs) > 0 {
		err = r.db.SelectContext(ctx, &stops, `
			SELECT route_id, stop_name, latitude, longitude, point_order
			FROM route_stop_points
			WHERE route_id = ANY($1)
			ORDER BY route_id, point_order
		`, pq.Int64Array(routeIDs))
		if err != nil {
			return err
		}
	}

	var track []domain.RouteTrackPoint
	if len(routeIDs) > 0 {
		err = r.db.SelectContext(ctx, &track, `
			SELECT route_id, latitude, longitude, point_order
			FROM route_track_points
			WHERE route_id = ANY($1)
			ORDER BY route_id, point_order
		`, pq.Int64Array(routeIDs))
		if err != nil {
			return err
		}
	}

	stopsByRoute := make(map[int64][]domain.RouteStopPoint)
	for _, s := range stops {
		stopsByRoute[s.RouteID] = append(stopsByRoute[s.RouteID], s)
	}
	trackByRoute := make(map[int64][]domain.RouteTrackPoint)
	for _, t := range track {
		trackByRoute[t.RouteID] = append(trackByRoute[t.RouteID], t)
	}

	routesByPlan := make(map[int64][]domain.Route)
	for _, rt := range routes {
		rt.Stops = stopsByRoute[rt.ID]
		if rt.Stops == nil {
			rt.Stops = []domain.RouteStopPoint{}
		}
		rt.Trackpoints = trackByRoute[rt.ID]
		if rt.Trackpoints == nil {
			rt.Trackpoints = []domain.RouteTrackPoint{}
		}
		routesByPlan[rt.PlanID] = append(routesByPlan[rt.PlanID], rt)
	}

	for i := range plans {
		plans[i].Routes = routesByPlan[plans[i].ID]
		if plans[i].Routes == nil {
			plans[i].Routes = []domain.Route{}
		}
	}
	return nil
}
