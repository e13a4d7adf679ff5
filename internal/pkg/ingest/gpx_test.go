package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const namespacedGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <wpt lat="9" lon="9"><name>Ignored waypoint</name></wpt>
  <rte>
    <rtept lat="19.43" lon="-99.13"><name>Plaza</name></rtept>
    <rtept lat="19.44" lon="-99.14"></rtept>
  </rte>
  <trk>
    <trkseg>
      <trkpt lat="19.430" lon="-99.130"></trkpt>
      <trkpt lat="19.435" lon="-99.135"></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="19.440" lon="-99.140"></trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseRouteGPX_Namespaced(t *testing.T) {
	route, err := ParseRouteGPX([]byte(namespacedGPX))

	require.NoError(t, err)
	require.Len(t, route.Trackpoints, 3)
	for i, tp := range route.Trackpoints {
		assert.Equal(t, i, tp.Order)
	}
	assert.Equal(t, 19.44, route.Trackpoints[2].Latitude)

	require.Len(t, route.Stops, 2)
	assert.Equal(t, "Plaza", route.Stops[0].StopName)
	assert.Equal(t, "Stop 2", route.Stops[1].StopName)
	assert.Equal(t, 1, route.Stops[1].Order)
}

func TestParseRouteGPX_BareWaypointsFallback(t *testing.T) {
	content := `<gpx>
  <wpt lat="1" lon="2"><name>A</name></wpt>
  <wpt lat="3" lon="4"/>
</gpx>`

	route, err := ParseRouteGPX([]byte(content))

	require.NoError(t, err)
	assert.Empty(t, route.Trackpoints)
	require.Len(t, route.Stops, 2)
	assert.Equal(t, "A", route.Stops[0].StopName)
	assert.Equal(t, "Stop 2", route.Stops[1].StopName)
	assert.Equal(t, 4.0, route.Stops[1].Longitude)
}

func TestParseRouteGPX_Errors(t *testing.T) {
	_, err := ParseRouteGPX([]byte("not xml"))
	assert.Error(t, err)

	_, err = ParseRouteGPX([]byte(`<gpx></gpx>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no track or route points")

	_, err = ParseRouteGPX([]byte(`<gpx><trk><trkseg><trkpt lat="x" lon="1"/></trkseg></trk></gpx>`))
	rows := requireRowErrors(t, err)
	assert.Equal(t, "trkpt", rows[0].Field)
}
