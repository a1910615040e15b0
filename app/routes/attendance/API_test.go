package attendance

import (
	"strings"
	"testing"

	"gj-schools/app/helpers"
	"gj-schools/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRecordValidation(t *testing.T) {
	valid := AttendanceRecord{
		StudentID: "ST00000001",
		Class:     "Grade 7C",
		Status:    models.AttendancePresent,
	}
	require.NoError(t, helpers.Validate.Struct(valid))

	// Every status the model knows is accepted by the DTO.
	for _, status := range []string{
		models.AttendancePresent, models.AttendanceAbsent,
		models.AttendanceLate, models.AttendanceExcused,
	} {
		require.True(t, models.ValidAttendanceStatus(status))
		r := valid
		r.Status = status
		assert.NoError(t, helpers.Validate.Struct(r), "status %s", status)
	}

	oversized := strings.Repeat("x", 501)
	tests := []struct {
		name   string
		mutate func(*AttendanceRecord)
	}{
		{"missing student id", func(r *AttendanceRecord) { r.StudentID = "" }},
		{"missing class", func(r *AttendanceRecord) { r.Class = "" }},
		{"unknown status", func(r *AttendanceRecord) { r.Status = "tardy" }},
		{"oversized remarks", func(r *AttendanceRecord) { r.Remarks = &oversized }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := helpers.Validate.Struct(r)
			assert.Error(t, err)
			assert.NotEmpty(t, helpers.ValidationMessage(err))
		})
	}
}
