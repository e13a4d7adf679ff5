package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoverageMesh_Polygon(t *testing.T) {
	content := []byte(`{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}`)

	input, err := DetectCoverageInput(content)
	require.NoError(t, err)
	assert.IsType(t, GeoJSONPolygon{}, input)

	points, err := ParseCoverageMesh(content)
	require.NoError(t, err)
	require.Len(t, points, 4)

	expected := [][2]float64{{0, 0}, {0, 1}, {1, 1}, {0, 0}} // lon, lat
	for i, p := range points {
		assert.Equal(t, i, p.Order)
		assert.Equal(t, expected[i][0], p.Longitude)
		assert.Equal(t, expected[i][1], p.Latitude)
	}
}

func TestParseCoverageMesh_FeatureCollection(t *testing.T) {
	content := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[10,20],[11,20],[11,21],[10,20]]]}},
			{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [5,5]}},
			{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[30,40],[31,40],[30,40]], [[30.1,40.1],[30.2,40.1],[30.1,40.1]]]}}
		]
	}`)

	input, err := DetectCoverageInput(content)
	require.NoError(t, err)
	assert.IsType(t, GeoJSONFeatureCollection{}, input)

	points, err := input.Points()
	require.NoError(t, err)
	// outer rings only, concatenated, points skipped
	require.Len(t, points, 7)
	assert.Equal(t, 6, points[6].Order)
	assert.Equal(t, 30.0, points[4].Longitude)
	assert.Equal(t, 40.0, points[4].Latitude)
}

func TestParseCoverageMesh_Feature(t *testing.T) {
	content := []byte(`{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[1,2],[3,4],[1,2]]]}}`)

	points, err := ParseCoverageMesh(content)
	require.NoError(t, err)
	assert.Len(t, points, 3)
}

func TestParseCoverageMesh_CSV(t *testing.T) {
	content := []byte("Latitude, Longitude\n19.1,-99.1\n19.2,-99.2\n")

	input, err := DetectCoverageInput(content)
	require.NoError(t, err)
	assert.IsType(t, Tabular{}, input)

	points, err := input.Points()
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 19.2, points[1].Latitude)
	assert.Equal(t, -99.2, points[1].Longitude)
	assert.Equal(t, 1, points[1].Order)
}

func TestParseCoverageMesh_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"empty", "   ", "empty"},
		{"csv without columns", "lat,lon\n1,2\n", "latitude and longitude"},
		{"unsupported geojson", `{"type":"LineString","coordinates":[[0,0],[1,1]]}`, "Unsupported GeoJSON type"},
		{"plain json", `{"foo":"bar"}`, "not GeoJSON"},
		{"feature with point", `{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,2]}}`, "must be a Polygon"},
		{"no polygons", `{"type":"FeatureCollection","features":[]}`, "No coordinates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCoverageMesh([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseCoverageMesh_CSVBadRow(t *testing.T) {
	_, err := ParseCoverageMesh([]byte("latitude,longitude\n1,2\nx,3\n"))

	rows := requireRowErrors(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Row)
}
