package ingest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/pkg/utils"
)

// GPX element names match regardless of namespace, so both GPX 1.1
// namespaced files and bare ones decode the same way.
type gpxFile struct {
	XMLName   xml.Name   `xml:"gpx"`
	Waypoints []gpxPoint `xml:"wpt"`
	Routes    []gpxRoute `xml:"rte"`
	Tracks    []gpxTrack `xml:"trk"`
}

type gpxRoute struct {
	Points []gpxPoint `xml:"rtept"`
}

type gpxTrack struct {
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxPoint struct {
	Lat  string `xml:"lat,attr"`
	Lon  string `xml:"lon,attr"`
	Name string `xml:"name"`
}

// ParsedRoute holds the geometry read from a GPX file.
type ParsedRoute struct {
	Trackpoints []domain.RouteTrackPoint
	Stops       []domain.RouteStopPoint
}

// ParseRouteGPX extracts trackpoints (trkpt) and stops (rtept, or wpt when the
// file has no route points). Orders are zero-based in document order; unnamed
// stops become "Stop N".
func ParseRouteGPX(content []byte) (*ParsedRoute, error) {
	var doc gpxFile
	if err := xml.NewDecoder(bytes.NewReader(content)).Decode(&doc); err != nil {
		return nil, invalidUpload("Invalid GPX file: %v", err)
	}

	var rowErrs RowErrors
	out := &ParsedRoute{
		Trackpoints: []domain.RouteTrackPoint{},
		Stops:       []domain.RouteStopPoint{},
	}

	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				n := len(out.Trackpoints)
				lat, lon, ok := parseGPXPoint(&rowErrs, "trkpt", n, p)
				if !ok {
					continue
				}
				out.Trackpoints = append(out.Trackpoints, domain.RouteTrackPoint{
					Latitude:  lat,
					Longitude: lon,
					Order:     n,
				})
			}
		}
	}

	var stopSource []gpxPoint
	for _, rte := range doc.Routes {
		stopSource = append(stopSource, rte.Points...)
	}
	kind := "rtept"
	if len(stopSource) == 0 {
		stopSource = doc.Waypoints
		kind = "wpt"
	}

	for i, p := range stopSource {
		lat, lon, ok := parseGPXPoint(&rowErrs, kind, i, p)
		if !ok {
			continue
		}
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = fmt.Sprintf("Stop %d", i+1)
		}
		out.Stops = append(out.Stops, domain.RouteStopPoint{
			StopName:  name,
			Latitude:  lat,
			Longitude: lon,
			Order:     len(out.Stops),
		})
	}

	if err := rowErrs.err(); err != nil {
		return nil, err
	}
	if len(out.Trackpoints) == 0 && len(out.Stops) == 0 {
		return nil, invalidUpload("GPX file has no track or route points")
	}
	return out, nil
}

// parseGPXPoint records errors with Row set to the 1-based point index.
func parseGPXPoint(rows *RowErrors, kind string, idx int, p gpxPoint) (float64, float64, bool) {
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(p.Lat), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(p.Lon), 64)
	if errLat != nil || errLon != nil {
		rows.add(idx+1, kind, "invalid %s coordinates lat=%q lon=%q", kind, p.Lat, p.Lon)
		return 0, 0, false
	}
	if !utils.ValidateCoordinates(lat, lon) {
		rows.add(idx+1, kind, "%s coordinate out of range (%g, %g)", kind, lat, lon)
		return 0, 0, false
	}
	return lat, lon, true
}
