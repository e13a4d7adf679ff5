package ingest

import (
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shuttle-hr/internal/domain"
)

type busStopRow struct {
	StopID    string `csv:"stop_id"`
	Name      string `csv:"name"`
	Latitude  string `csv:"latitude"`
	Longitude string `csv:"longitude"`
	Source    string `csv:"source"`
}

// ParseBusStopsCSV reads a stop list with columns stop_id, name, latitude,
// longitude and optional source. Stops are returned active.
func ParseBusStopsCSV(in io.Reader) ([]domain.BusStop, error) {
	reader := newCSVReader(in)

	var rows []busStopRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, invalidUpload("CSV could not be read: %v", err)
	}
	if missing := reader.hasColumns("stop_id", "name", "latitude", "longitude"); len(missing) > 0 {
		return nil, invalidUpload("CSV missing required columns: %s", strings.Join(missing, ", "))
	}

	var (
		rowErrs RowErrors
		seen    = make(map[string]int, len(rows))
		stops   = make([]domain.BusStop, 0, len(rows))
	)
	for i, r := range rows {
		line := i + 2

		stopID := strings.TrimSpace(r.StopID)
		if stopID == "" {
			rowErrs.add(line, "stop_id", "stop_id is required")
			continue
		}
		if prev, dup := seen[stopID]; dup {
			rowErrs.add(line, "stop_id", "duplicate stop_id %q (first at row %d)", stopID, prev)
			continue
		}
		seen[stopID] = line

		lat, lon, ok := parseCoordinate(&rowErrs, line, r.Latitude, r.Longitude)
		if !ok {
			continue
		}

		source := strings.TrimSpace(r.Source)
		if source == "" {
			source = domain.StopSourceGenerated
		}
		if !domain.IsValidStopSource(source) {
			rowErrs.add(line, "source", "unknown source %q", source)
			continue
		}

		stops = append(stops, domain.BusStop{
			StopID:    stopID,
			Name:      strings.TrimSpace(r.Name),
			Latitude:  lat,
			Longitude: lon,
			Source:    source,
			IsActive:  true,
		})
	}

	if err := rowErrs.err(); err != nil {
		return nil, err
	}
	return stops, nil
}
