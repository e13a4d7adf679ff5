package ingest

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/pkg/errors"
)

func requireRowErrors(t *testing.T, err error) RowErrors {
	t.Helper()
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr), "expected AppError, got %v", err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidUpload))
	rows, ok := appErr.Details["rows"].(RowErrors)
	require.True(t, ok, "details must carry row errors")
	return rows
}

func TestParseBusStopsCSV(t *testing.T) {
	csv := " Stop_ID ,Name,LATITUDE,longitude,source\n" +
		"S2,Second,19.44,-99.14,Moovit\n" +
		"S1,First,19.43,-99.13,\n"

	stops, err := ParseBusStopsCSV(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, stops, 2)
	assert.Equal(t, "S2", stops[0].StopID)
	assert.Equal(t, domain.StopSourceMoovit, stops[0].Source)
	assert.Equal(t, domain.StopSourceGenerated, stops[1].Source)
	assert.True(t, stops[1].IsActive)
	assert.InDelta(t, -99.13, stops[1].Longitude, 1e-9)
}

func TestParseBusStopsCSV_MissingColumns(t *testing.T) {
	_, err := ParseBusStopsCSV(strings.NewReader("stop_id,name,latitude\nS1,A,1\n"))

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidUpload))
	assert.Contains(t, err.Error(), "longitude")
}

func TestParseBusStopsCSV_RejectsWholeFileOnBadRows(t *testing.T) {
	csv := "stop_id,name,latitude,longitude,source\n" +
		"S1,Ok,1,1,\n" +
		"S2,BadLat,abc,1,\n" +
		"S1,Dup,1,1,\n" +
		"S3,OutOfRange,95,1,\n" +
		"S4,BadSource,1,1,Uber\n"

	stops, err := ParseBusStopsCSV(strings.NewReader(csv))

	assert.Nil(t, stops)
	rows := requireRowErrors(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, 3, rows[0].Row)
	assert.Equal(t, "latitude", rows[0].Field)
	assert.Equal(t, "stop_id", rows[1].Field)
	assert.Equal(t, 6, rows[3].Row)
}

func TestParseActiveEmployeesCSV_Latin1(t *testing.T) {
	raw := "Número de Personal;x\n37,a\n00037,b\n1234567,c\n"
	raw = strings.ReplaceAll(raw, ";", ",")
	encoded, err := charmap.ISO8859_1.NewEncoder().String(raw)
	require.NoError(t, err)

	ids, err := ParseActiveEmployeesCSV(strings.NewReader(encoded))

	require.NoError(t, err)
	assert.Equal(t, []string{"00037", "12345"}, ids)
}

func TestParseActiveEmployeesCSV_MissingColumn(t *testing.T) {
	_, err := ParseActiveEmployeesCSV(strings.NewReader("id\n1\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Numero de personal")
}

func TestParseMinimalEmployeesCSV(t *testing.T) {
	csv := "1,Acme,1,fixed_8hrs,19.43,-99.13\n" +
		"\n" +
		"22,Globex,no,,19.44,-99.14,extra\n"

	rows, err := ParseMinimalEmployeesCSV(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "00001", rows[0].EmployeeID)
	assert.True(t, rows[0].Utilization)
	assert.Equal(t, domain.ShiftFixed8, rows[0].Shift)
	assert.Equal(t, "00022", rows[1].EmployeeID)
	assert.False(t, rows[1].Utilization)
	assert.Empty(t, rows[1].Shift)
}

func TestParseMinimalEmployeesCSV_Errors(t *testing.T) {
	csv := "1,Acme,1,FIXED_8HRS,19.43\n" +
		"2,Acme,maybe,FIXED_8HRS,1,1\n" +
		"3,Acme,1,NIGHT,1,1\n" +
		"4,Acme,1,FIXED_8HRS,x,1\n"

	_, err := ParseMinimalEmployeesCSV(strings.NewReader(csv))

	rows := requireRowErrors(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, 1, rows[0].Row)
	assert.Equal(t, "utilization", rows[1].Field)
	assert.Equal(t, "shift", rows[2].Field)
	assert.Equal(t, "latitude", rows[3].Field)
}

func TestParseMinimalEmployeesCSV_InvalidUTF8(t *testing.T) {
	csv := "1,Acme,1,FIXED_8HRS,1,1\n" +
		"1234\xe9,Acme,1,FIXED_8HRS,1,1\n"

	_, err := ParseMinimalEmployeesCSV(strings.NewReader(csv))

	rows := requireRowErrors(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Row)
}

func TestParseActiveEmployeesCSV_NonASCIIIDs(t *testing.T) {
	// "Numero de personal" in ISO-8859-1, id with a Latin-1 character
	raw := []byte("Numero de personal\n1234\xe9\n")

	ids, err := ParseActiveEmployeesCSV(strings.NewReader(string(raw)))

	require.NoError(t, err)
	require.Equal(t, []string{"1234é"}, ids)
}

func TestRowErrors_CappedInDetails(t *testing.T) {
	var rows RowErrors
	for i := 0; i < maxReportedRowErrors+10; i++ {
		rows.add(i+2, "x", "bad")
	}

	err := rows.err()

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Len(t, appErr.Details["rows"], maxReportedRowErrors)
	assert.Equal(t, maxReportedRowErrors+10, appErr.Details["total_count"])
	assert.NoError(t, RowErrors(nil).err())
}
