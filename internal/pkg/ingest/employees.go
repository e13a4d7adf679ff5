package ingest

import (
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"github.com/shuttle-hr/internal/domain"
	"golang.org/x/text/encoding/charmap"
)

// ActiveEmployeesColumn is the payroll export column holding employee numbers.
const ActiveEmployeesColumn = "numero de personal"

type activeEmployeeRow struct {
	EmployeeID string `csv:"numero de personal"`
}

// ParseActiveEmployeesCSV reads the payroll export (ISO-8859-1) and returns
// the normalized, de-duplicated employee ids it lists.
func ParseActiveEmployeesCSV(in io.Reader) ([]string, error) {
	reader := newCSVReader(charmap.ISO8859_1.NewDecoder().Reader(in))

	var rows []activeEmployeeRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, invalidUpload("CSV could not be read: %v", err)
	}
	if missing := reader.hasColumns(ActiveEmployeesColumn); len(missing) > 0 {
		return nil, invalidUpload("Column 'Numero de personal' not found.")
	}

	var rowErrs RowErrors
	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for i, r := range rows {
		id := domain.NormalizeEmployeeID(r.EmployeeID)
		if id == "" {
			rowErrs.add(i+2, ActiveEmployeesColumn, "employee number is empty")
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if err := rowErrs.err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// minimalEmployeeColumns is the fixed layout of the headerless roster file:
// employee_id, company, utilization, shift, latitude, longitude.
const minimalEmployeeColumns = 6

// MinimalEmployee is one parsed row of the headerless roster file.
type MinimalEmployee struct {
	EmployeeID  string
	Company     string
	Utilization bool
	Shift       string
	Latitude    float64
	Longitude   float64
}

// ParseMinimalEmployeesCSV reads the headerless six-column roster. Rows are
// validated as a whole; ids are normalized to five characters.
func ParseMinimalEmployeesCSV(in io.Reader) ([]MinimalEmployee, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, invalidUpload("CSV could not be read: %v", err)
	}

	var rowErrs RowErrors
	seen := make(map[string]int, len(records))
	out := make([]MinimalEmployee, 0, len(records))
	for i, rec := range records {
		line := i + 1
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < minimalEmployeeColumns {
			rowErrs.add(line, "", "expected %d columns, got %d", minimalEmployeeColumns, len(rec))
			continue
		}

		if !utf8.ValidString(rec[0]) || !utf8.ValidString(rec[1]) {
			rowErrs.add(line, "", "row is not valid UTF-8")
			continue
		}
		id := domain.NormalizeEmployeeID(rec[0])
		if id == "" {
			rowErrs.add(line, "employee_id", "employee_id is required")
			continue
		}
		if prev, dup := seen[id]; dup {
			rowErrs.add(line, "employee_id", "duplicate employee_id %q (first at row %d)", id, prev)
			continue
		}
		seen[id] = line

		utilization, ok := parseBool(rec[2])
		if !ok {
			rowErrs.add(line, "utilization", "invalid utilization %q", rec[2])
			continue
		}

		shift := strings.ToUpper(strings.TrimSpace(rec[3]))
		if shift != "" && !domain.IsValidShift(shift) {
			rowErrs.add(line, "shift", "unknown shift %q", rec[3])
			continue
		}

		lat, lon, ok := parseCoordinate(&rowErrs, line, rec[4], rec[5])
		if !ok {
			continue
		}

		out = append(out, MinimalEmployee{
			EmployeeID:  id,
			Company:     strings.TrimSpace(rec[1]),
			Utilization: utilization,
			Shift:       shift,
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	if err := rowErrs.err(); err != nil {
		return nil, err
	}
	return out, nil
}
