package usecase

import (
	"sort"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/pkg/utils"
)

// StopDistance - остановка и расстояние до нее в метрах
type StopDistance struct {
	Stop      domain.BusStop
	DistanceM float64
}

// NearestStop returns the stop closest to ref. On exact ties the first stop in
// input order wins. Returns false when stops is empty.
func NearestStop(ref domain.Coordinate, stops []domain.BusStop) (StopDistance, bool) {
	if len(stops) == 0 {
		return StopDistance{}, false
	}

	best := StopDistance{Stop: stops[0], DistanceM: utils.Distance(ref, stops[0].Coordinate())}
	for _, s := range stops[1:] {
		d := utils.Distance(ref, s.Coordinate())
		if d < best.DistanceM {
			best = StopDistance{Stop: s, DistanceM: d}
		}
	}
	return best, true
}

// NearestStops returns up to limit stops sorted ascending by distance.
// Equidistant stops keep their input order.
func NearestStops(ref domain.Coordinate, stops []domain.BusStop, limit int) []StopDistance {
	out := make([]StopDistance, 0, len(stops))
	for _, s := range stops {
		out = append(out, StopDistance{Stop: s, DistanceM: utils.Distance(ref, s.Coordinate())})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceM < out[j].DistanceM
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FirstStopsByStopID is the fallback ordering used when there is no reference point.
func FirstStopsByStopID(stops []domain.BusStop, limit int) []domain.BusStop {
	out := make([]domain.BusStop, len(stops))
	copy(out, stops)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StopID < out[j].StopID
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
