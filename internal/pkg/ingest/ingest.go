// Package ingest turns uploaded files into validated domain values. Every
// parser checks all rows before returning; a single bad row rejects the
// whole upload so callers never persist a partial file.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/utils"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxReportedRowErrors bounds the error list returned to clients.
const maxReportedRowErrors = 50

// RowError describes one rejected row. Row is 1-based and counts the header line.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type RowErrors []RowError

func (e RowErrors) Error() string {
	if len(e) == 0 {
		return "no row errors"
	}
	return fmt.Sprintf("%d invalid rows, first at row %d: %s", len(e), e[0].Row, e[0].Message)
}

func (e *RowErrors) add(row int, field, format string, args ...interface{}) {
	*e = append(*e, RowError{Row: row, Field: field, Message: fmt.Sprintf(format, args...)})
}

// err converts the collected row errors into an upload error, or nil.
func (e RowErrors) err() error {
	if len(e) == 0 {
		return nil
	}
	reported := e
	if len(reported) > maxReportedRowErrors {
		reported = reported[:maxReportedRowErrors]
	}
	return errors.ErrInvalidUpload.
		WithMessage(fmt.Sprintf("%d invalid rows", len(e))).
		WithDetails(map[string]interface{}{
			"rows":        reported,
			"total_count": len(e),
		})
}

func invalidUpload(format string, args ...interface{}) error {
	return errors.ErrInvalidUpload.WithMessage(fmt.Sprintf(format, args...))
}

// headerNormalizer lower-cases, trims and strips accents from the header row
// so "  Número de Personal" matches "numero de personal".
type headerNormalizer struct {
	r          *csv.Reader
	headerRead bool
	header     []string
}

func newCSVReader(in io.Reader) *headerNormalizer {
	r := csv.NewReader(in)
	// ragged rows are reported per row instead of aborting the file
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return &headerNormalizer{r: r}
}

func (h *headerNormalizer) Read() ([]string, error) {
	rec, err := h.r.Read()
	if err != nil || h.headerRead {
		return rec, err
	}
	h.headerRead = true
	for i, col := range rec {
		rec[i] = normalizeHeader(col)
	}
	h.header = rec
	return rec, nil
}

func (h *headerNormalizer) ReadAll() ([][]string, error) {
	var out [][]string
	for {
		rec, err := h.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

func (h *headerNormalizer) hasColumns(cols ...string) []string {
	present := make(map[string]struct{}, len(h.header))
	for _, c := range h.header {
		present[c] = struct{}{}
	}
	var missing []string
	for _, c := range cols {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// parseCoordinate parses and range-checks a lat/lon pair, recording failures on rows.
func parseCoordinate(rows *RowErrors, row int, latStr, lonStr string) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		rows.add(row, "latitude", "invalid latitude %q", latStr)
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		rows.add(row, "longitude", "invalid longitude %q", lonStr)
		return 0, 0, false
	}
	if !utils.ValidateCoordinates(lat, lon) {
		rows.add(row, "latitude", "coordinate out of range (%g, %g)", lat, lon)
		return 0, 0, false
	}
	return lat, lon, true
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "si", "sí", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off", "":
		return false, true
	}
	return false, false
}

// FormBool reads a checkbox-style form value. Unrecognized values are false.
func FormBool(s string) bool {
	v, _ := parseBool(s)
	return v
}
