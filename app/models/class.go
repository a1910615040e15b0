package models

import "time"

// Class is a school class (e.g. "Grade 9A").
type Class struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	GradeLevel     int       `json:"grade_level"`
	ClassTeacherID *string   `json:"class_teacher_id,omitempty"`
	Capacity       int       `json:"capacity"`
	AcademicYear   string    `json:"academic_year"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`

	ClassTeacherName string `json:"class_teacher_name,omitempty"`
	StudentCount     int    `json:"student_count"`
}

// ClassAllocation assigns a teacher to a subject in a class.
type ClassAllocation struct {
	ID           int       `json:"id"`
	TeacherID    string    `json:"teacher_id"`
	ClassName    string    `json:"class_name"`
	Subject      string    `json:"subject"`
	AcademicYear string    `json:"academic_year"`
	CreatedAt    time.Time `json:"created_at"`

	TeacherName    string  `json:"teacher_name,omitempty"`
	TeacherSubject *string `json:"teacher_subject,omitempty"`
}
