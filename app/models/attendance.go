package models

import "time"

// Attendance is one student's attendance record for a single day. Records
// are upserted on (student_id, attendance_date).
type Attendance struct {
	ID             int       `json:"id"`
	StudentID      string    `json:"student_id"`
	Class          *string   `json:"class,omitempty"`
	AttendanceDate time.Time `json:"attendance_date"`
	Status         string    `json:"status"`
	Remarks        *string   `json:"remarks,omitempty"`
	MarkedBy       string    `json:"marked_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	StudentName  string  `json:"student_name,omitempty"`
	StudentClass *string `json:"student_class,omitempty"`
	MarkedByName string  `json:"marked_by_name,omitempty"`
}
