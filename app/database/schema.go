package database

import (
	"database/sql"
	"log"
)

// InitSchema creates all tables on startup if they do not exist yet. The
// statements are idempotent so the server can boot against a fresh or an
// existing database.
func InitSchema(db *sql.DB) error {
	log.Println("Initializing database schema...")

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		school VARCHAR(300) DEFAULT '',
		role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'accountant', 'teacher')),
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS students (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(300) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(20),
		dob DATE,
		class VARCHAR(100),
		parent_name VARCHAR(300),
		parent_phone VARCHAR(20),
		address VARCHAR(500),
		status VARCHAR(20) NOT NULL DEFAULT 'Active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS teachers (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(300) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(20),
		subject VARCHAR(100),
		qualification VARCHAR(200),
		experience INTEGER,
		salary NUMERIC(10,2),
		status VARCHAR(20) NOT NULL DEFAULT 'Active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS fees (
		id VARCHAR(50) PRIMARY KEY,
		student_id VARCHAR(50) NOT NULL REFERENCES students(id),
		class VARCHAR(100),
		amount NUMERIC(10,2) NOT NULL CHECK (amount > 0),
		due_date DATE NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'partial', 'paid', 'overdue')),
		description VARCHAR(300),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_fees_student ON fees(student_id);
	CREATE INDEX IF NOT EXISTS idx_fees_status ON fees(status);

	CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		fee_id VARCHAR(50) NOT NULL REFERENCES fees(id),
		student_id VARCHAR(50) NOT NULL,
		amount NUMERIC(10,2) NOT NULL CHECK (amount > 0),
		method VARCHAR(50),
		payment_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		notes VARCHAR(1000),
		receipt_number VARCHAR(20) UNIQUE NOT NULL,
		issued_by UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_payments_fee ON payments(fee_id);
	CREATE INDEX IF NOT EXISTS idx_payments_student ON payments(student_id);

	CREATE TABLE IF NOT EXISTS grades (
		id UUID PRIMARY KEY,
		student_id VARCHAR(50) NOT NULL,
		subject VARCHAR(100) NOT NULL,
		grade VARCHAR(5) NOT NULL,
		term VARCHAR(50),
		academic_year VARCHAR(20),
		remarks VARCHAR(1000),
		teacher_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_grades_student ON grades(student_id);

	CREATE TABLE IF NOT EXISTS attendance (
		id SERIAL PRIMARY KEY,
		student_id VARCHAR(50) NOT NULL REFERENCES students(id),
		class VARCHAR(100),
		attendance_date DATE NOT NULL DEFAULT CURRENT_DATE,
		status VARCHAR(20) NOT NULL
			CHECK (status IN ('present', 'absent', 'late', 'excused')),
		remarks VARCHAR(500),
		marked_by UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (student_id, attendance_date)
	);

	CREATE TABLE IF NOT EXISTS announcements (
		id SERIAL PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		content TEXT NOT NULL,
		category VARCHAR(20) NOT NULL DEFAULT 'general',
		target_audience VARCHAR(20) NOT NULL DEFAULT 'all',
		priority VARCHAR(10) NOT NULL DEFAULT 'normal',
		start_date DATE NOT NULL DEFAULT CURRENT_DATE,
		end_date DATE,
		is_active BOOLEAN NOT NULL DEFAULT true,
		published_by UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS subjects (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL,
		code VARCHAR(20) UNIQUE NOT NULL,
		description VARCHAR(500),
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS classes (
		id SERIAL PRIMARY KEY,
		name VARCHAR(50) UNIQUE NOT NULL,
		grade_level INTEGER NOT NULL,
		class_teacher_id VARCHAR(50) REFERENCES teachers(id),
		capacity INTEGER NOT NULL DEFAULT 30,
		academic_year VARCHAR(9) NOT NULL DEFAULT '2024/2025',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS class_allocations (
		id SERIAL PRIMARY KEY,
		teacher_id VARCHAR(50) NOT NULL REFERENCES teachers(id),
		class_name VARCHAR(50) NOT NULL,
		subject VARCHAR(100) NOT NULL,
		academic_year VARCHAR(9) NOT NULL DEFAULT '2024/2025',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (teacher_id, class_name, subject, academic_year)
	);
	`

	if _, err := db.Exec(schema); err != nil {
		log.Printf("Schema initialization failed: %v", err)
		return err
	}

	log.Println("Database schema ready")
	return nil
}
