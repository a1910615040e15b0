package reports

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Students enrolled without a class still belong in every report; their
// class column is NULL and must round-trip as JSON null rather than making
// the row unscannable.
func TestReportRowsCarryMissingClass(t *testing.T) {
	perf := StudentPerformance{
		StudentID:    "ST00000001",
		StudentName:  "No Class Yet",
		Class:        nil,
		GradeCount:   0,
		AveragePoint: 0,
	}
	b, err := json.Marshal(perf)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"class":null`)

	row := AttendanceReportRow{
		StudentID:   "ST00000001",
		StudentName: "No Class Yet",
		Class:       nil,
	}
	b, err = json.Marshal(row)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"class":null`)

	class := "Grade 7C"
	row.Class = &class
	b, err = json.Marshal(row)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"class":"Grade 7C"`)
}
