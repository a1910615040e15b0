package reports

import (
	"database/sql"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// FinancialSummary aggregates billing across the whole school.
type FinancialSummary struct {
	TotalStudents    int             `json:"total_students"`
	TotalBilled      decimal.Decimal `json:"total_billed"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	PaidCount        int             `json:"paid_count"`
	PartialCount     int             `json:"partial_count"`
	PendingCount     int             `json:"pending_count"`
	OverdueCount     int             `json:"overdue_count"`
}

func GetFinancialSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	var summary FinancialSummary

	err := db.QueryRow(`
		SELECT COUNT(DISTINCT s.id),
		       COALESCE(SUM(f.amount), 0),
		       COALESCE(SUM(p.total_paid), 0),
		       COALESCE(SUM(f.amount), 0) - COALESCE(SUM(p.total_paid), 0),
		       COUNT(*) FILTER (WHERE f.status = 'paid'),
		       COUNT(*) FILTER (WHERE f.status = 'partial'),
		       COUNT(*) FILTER (WHERE f.status = 'pending'),
		       COUNT(*) FILTER (WHERE f.status = 'overdue')
		FROM students s
		LEFT JOIN fees f ON f.student_id = s.id
		LEFT JOIN (
			SELECT fee_id, SUM(amount) AS total_paid FROM payments GROUP BY fee_id
		) p ON p.fee_id = f.id`).Scan(
		&summary.TotalStudents, &summary.TotalBilled, &summary.TotalCollected,
		&summary.TotalOutstanding, &summary.PaidCount, &summary.PartialCount,
		&summary.PendingCount, &summary.OverdueCount)
	if err != nil {
		log.Printf("Error building financial summary: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error building financial summary"})
	}

	return c.JSON(summary)
}

// StudentPerformance is a student's average grade across all recorded
// subjects, on a 5-point scale (A=5 ... F=1).
type StudentPerformance struct {
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	Class        *string `json:"class"`
	GradeCount   int     `json:"grade_count"`
	AveragePoint float64 `json:"average_point"`
}

func GetStudentPerformanceAPI(c *fiber.Ctx, db *sql.DB) error {
	rows, err := db.Query(`
		SELECT s.id, s.name, s.class, COUNT(g.id),
		       COALESCE(AVG(CASE
		           WHEN g.grade IN ('A+', 'A') THEN 5
		           WHEN g.grade IN ('B+', 'B') THEN 4
		           WHEN g.grade IN ('C+', 'C') THEN 3
		           WHEN g.grade IN ('D+', 'D') THEN 2
		           ELSE 1
		       END), 0)
		FROM students s
		LEFT JOIN grades g ON g.student_id = s.id
		WHERE s.status = 'Active'
		GROUP BY s.id, s.name, s.class
		ORDER BY s.class, s.name`)
	if err != nil {
		log.Printf("Error building performance report: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error building performance report"})
	}
	defer rows.Close()

	report := []StudentPerformance{}
	for rows.Next() {
		var p StudentPerformance
		if err := rows.Scan(&p.StudentID, &p.StudentName, &p.Class, &p.GradeCount, &p.AveragePoint); err != nil {
			continue
		}
		report = append(report, p)
	}
	return c.JSON(report)
}

// AttendanceReportRow summarises one student's attendance over the
// requested window.
type AttendanceReportRow struct {
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	Class        *string `json:"class"`
	PresentCount int     `json:"present_count"`
	AbsentCount  int     `json:"absent_count"`
	LateCount    int     `json:"late_count"`
	ExcusedCount int     `json:"excused_count"`
	TotalDays    int     `json:"total_days"`
	Percentage   float64 `json:"percentage"`
}

func GetAttendanceReportAPI(c *fiber.Ctx, db *sql.DB) error {
	query := `
		SELECT s.id, s.name, s.class,
		       COUNT(*) FILTER (WHERE a.status = 'present'),
		       COUNT(*) FILTER (WHERE a.status = 'absent'),
		       COUNT(*) FILTER (WHERE a.status = 'late'),
		       COUNT(*) FILTER (WHERE a.status = 'excused'),
		       COUNT(a.id)
		FROM students s
		LEFT JOIN attendance a ON a.student_id = s.id`
	args := []interface{}{}

	// Date bounds go into the join condition so students with no records
	// in the window still appear with zero counts.
	if start := c.Query("start_date"); start != "" {
		args = append(args, start)
		query += ` AND a.attendance_date >= $` + strconv.Itoa(len(args))
	}
	if end := c.Query("end_date"); end != "" {
		args = append(args, end)
		query += ` AND a.attendance_date <= $` + strconv.Itoa(len(args))
	}

	query += ` WHERE s.status = 'Active'`
	if class := c.Query("class"); class != "" {
		args = append(args, class)
		query += ` AND s.class = $` + strconv.Itoa(len(args))
	}
	query += ` GROUP BY s.id, s.name, s.class ORDER BY s.class, s.name`

	rows, err := db.Query(query, args...)
	if err != nil {
		log.Printf("Error building attendance report: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error building attendance report"})
	}
	defer rows.Close()

	report := []AttendanceReportRow{}
	for rows.Next() {
		var r AttendanceReportRow
		err := rows.Scan(&r.StudentID, &r.StudentName, &r.Class,
			&r.PresentCount, &r.AbsentCount, &r.LateCount, &r.ExcusedCount, &r.TotalDays)
		if err != nil {
			continue
		}
		if r.TotalDays > 0 {
			attended := r.PresentCount + r.LateCount
			r.Percentage = float64(attended) / float64(r.TotalDays) * 100
		}
		report = append(report, r)
	}
	return c.JSON(report)
}
