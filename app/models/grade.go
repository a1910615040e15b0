package models

import "time"

// Grade represents an academic grade entry for a student.
type Grade struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	Subject      string    `json:"subject"`
	Grade        string    `json:"grade"`
	Term         string    `json:"term"`
	AcademicYear string    `json:"academic_year"`
	Remarks      *string   `json:"remarks,omitempty"`
	TeacherID    string    `json:"teacher_id"`
	CreatedAt    time.Time `json:"created_at"`

	StudentName  string  `json:"student_name,omitempty"`
	StudentClass *string `json:"class,omitempty"`
}
