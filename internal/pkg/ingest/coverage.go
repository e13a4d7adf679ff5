package ingest

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shuttle-hr/internal/domain"
)

// CoverageInput is one of the accepted coverage mesh file shapes:
// GeoJSONPolygon, GeoJSONFeatureCollection or Tabular.
type CoverageInput interface {
	Points() ([]domain.CoverageMeshPoint, error)
	Kind() string
}

// GeoJSONPolygon is a bare Polygon geometry (or a single Polygon feature).
type GeoJSONPolygon struct {
	Polygon orb.Polygon
}

// GeoJSONFeatureCollection contributes the outer ring of every Polygon feature, in order.
type GeoJSONFeatureCollection struct {
	Collection *geojson.FeatureCollection
}

// Tabular is a CSV listing with latitude and longitude columns.
type Tabular struct {
	Rows []coverageRow
}

type coverageRow struct {
	Latitude  string `csv:"latitude"`
	Longitude string `csv:"longitude"`
}

func (GeoJSONPolygon) Kind() string           { return "geojson_polygon" }
func (GeoJSONFeatureCollection) Kind() string { return "geojson_feature_collection" }
func (Tabular) Kind() string                  { return "csv" }

func (g GeoJSONPolygon) Points() ([]domain.CoverageMeshPoint, error) {
	if len(g.Polygon) == 0 {
		return []domain.CoverageMeshPoint{}, nil
	}
	return ringPoints(nil, g.Polygon[0]), nil
}

func (g GeoJSONFeatureCollection) Points() ([]domain.CoverageMeshPoint, error) {
	points := []domain.CoverageMeshPoint{}
	if g.Collection == nil {
		return points, nil
	}
	for _, f := range g.Collection.Features {
		if f == nil {
			continue
		}
		poly, ok := f.Geometry.(orb.Polygon)
		if !ok || len(poly) == 0 {
			continue
		}
		points = ringPoints(points, poly[0])
	}
	return points, nil
}

func (t Tabular) Points() ([]domain.CoverageMeshPoint, error) {
	var rowErrs RowErrors
	points := make([]domain.CoverageMeshPoint, 0, len(t.Rows))
	for i, r := range t.Rows {
		lat, lon, ok := parseCoordinate(&rowErrs, i+2, r.Latitude, r.Longitude)
		if !ok {
			continue
		}
		points = append(points, domain.CoverageMeshPoint{
			Latitude:  lat,
			Longitude: lon,
			Order:     len(points),
		})
	}
	if err := rowErrs.err(); err != nil {
		return nil, err
	}
	return points, nil
}

// ringPoints appends the ring's vertices continuing the zero-based order.
// GeoJSON positions are [lon, lat]. Closure is kept as given.
func ringPoints(dst []domain.CoverageMeshPoint, ring orb.Ring) []domain.CoverageMeshPoint {
	for _, p := range ring {
		dst = append(dst, domain.CoverageMeshPoint{
			Latitude:  p.Lat(),
			Longitude: p.Lon(),
			Order:     len(dst),
		})
	}
	return dst
}

// DetectCoverageInput picks the variant: anything that decodes as JSON is
// treated as GeoJSON, everything else as CSV.
func DetectCoverageInput(content []byte) (CoverageInput, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, invalidUpload("Coverage mesh file is empty")
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(trimmed, &head); err == nil {
		return detectGeoJSON(head.Type, trimmed)
	}

	reader := newCSVReader(bytes.NewReader(trimmed))
	var rows []coverageRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, invalidUpload("CSV could not be read: %v", err)
	}
	if missing := reader.hasColumns("latitude", "longitude"); len(missing) > 0 {
		return nil, invalidUpload("CSV must have latitude and longitude columns")
	}
	return Tabular{Rows: rows}, nil
}

func detectGeoJSON(kind string, content []byte) (CoverageInput, error) {
	switch kind {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(content)
		if err != nil {
			return nil, invalidUpload("Invalid GeoJSON FeatureCollection: %v", err)
		}
		return GeoJSONFeatureCollection{Collection: fc}, nil

	case "Feature":
		f, err := geojson.UnmarshalFeature(content)
		if err != nil {
			return nil, invalidUpload("Invalid GeoJSON Feature: %v", err)
		}
		poly, ok := f.Geometry.(orb.Polygon)
		if !ok {
			return nil, invalidUpload("GeoJSON Feature geometry must be a Polygon, got %s", geometryType(f.Geometry))
		}
		return GeoJSONPolygon{Polygon: poly}, nil

	case "Polygon":
		g, err := geojson.UnmarshalGeometry(content)
		if err != nil {
			return nil, invalidUpload("Invalid GeoJSON Polygon: %v", err)
		}
		poly, ok := g.Geometry().(orb.Polygon)
		if !ok {
			return nil, invalidUpload("Invalid GeoJSON Polygon")
		}
		return GeoJSONPolygon{Polygon: poly}, nil
	}

	if kind == "" {
		return nil, invalidUpload("JSON file is not GeoJSON")
	}
	return nil, invalidUpload("Unsupported GeoJSON type %q, expected Polygon or FeatureCollection", kind)
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "null"
	}
	return g.GeoJSONType()
}

// ParseCoverageMesh normalizes a coverage file into ordered boundary points.
// No polygon validity is checked.
func ParseCoverageMesh(content []byte) ([]domain.CoverageMeshPoint, error) {
	input, err := DetectCoverageInput(content)
	if err != nil {
		return nil, err
	}
	return MeshPoints(input)
}

// MeshPoints runs the variant's adapter and rejects inputs without coordinates.
func MeshPoints(input CoverageInput) ([]domain.CoverageMeshPoint, error) {
	points, err := input.Points()
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, invalidUpload("No coordinates found in %s file", strings.ReplaceAll(input.Kind(), "_", " "))
	}
	return points, nil
}
