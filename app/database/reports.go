package database

import (
	"database/sql"
	"sort"

	"stmarys-portal/app/models"
)

const reportSelect = `SELECT r.id, r.student_id, r.term_id, r.class_teacher_id, r.overall_average,
		r.class_position, r.total_students, r.conduct_grade, r.effort_grade, r.teacher_comments,
		r.principal_comments, r.parent_comments, r.next_term_begins, r.generated_at,
		u.first_name || ' ' || u.last_name, st.admission_number, tm.name
		FROM progress_reports r
		JOIN students st ON r.student_id = st.id
		JOIN user_profiles p ON st.profile_id = p.id
		JOIN users u ON p.user_id = u.id
		JOIN terms tm ON r.term_id = tm.id`

func scanReport(row interface{ Scan(...interface{}) error }) (*models.ProgressReport, error) {
	r := &models.ProgressReport{}
	err := row.Scan(&r.ID, &r.StudentID, &r.TermID, &r.ClassTeacherID, &r.OverallAverage,
		&r.ClassPosition, &r.TotalStudents, &r.ConductGrade, &r.EffortGrade, &r.TeacherComments,
		&r.PrincipalComments, &r.ParentComments, &r.NextTermBegins, &r.GeneratedAt,
		&r.StudentName, &r.AdmissionNumber, &r.TermName)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func GetProgressReport(db *sql.DB, studentID, termID string) (*models.ProgressReport, error) {
	return scanReport(db.QueryRow(reportSelect+` WHERE r.student_id = $1 AND r.term_id = $2`, studentID, termID))
}

func GetReportsByStudent(db *sql.DB, studentID string) ([]*models.ProgressReport, error) {
	rows, err := db.Query(reportSelect+` WHERE r.student_id = $1 ORDER BY tm.start_date DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.ProgressReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	if reports == nil {
		reports = []*models.ProgressReport{}
	}
	return reports, rows.Err()
}

// The conflict set-list covers computed columns only; narrative fields
// entered via UpdateReportComments survive regeneration.
const upsertReportQuery = `INSERT INTO progress_reports (student_id, term_id, class_teacher_id, overall_average,
			  class_position, total_students, conduct_grade, effort_grade, teacher_comments,
			  principal_comments, parent_comments, next_term_begins, generated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
			  ON CONFLICT (student_id, term_id)
			  DO UPDATE SET class_teacher_id = EXCLUDED.class_teacher_id,
						    overall_average = EXCLUDED.overall_average,
						    class_position = EXCLUDED.class_position,
						    total_students = EXCLUDED.total_students,
						    next_term_begins = EXCLUDED.next_term_begins,
						    generated_at = NOW()
			  RETURNING id, generated_at`

// UpsertProgressReport writes the (student, term) rollup, refreshing
// the computed figures of a previous generation for the same pair.
func UpsertProgressReport(db *sql.DB, r *models.ProgressReport) error {
	return db.QueryRow(upsertReportQuery, r.StudentID, r.TermID, r.ClassTeacherID, r.OverallAverage,
		r.ClassPosition, r.TotalStudents, r.ConductGrade, r.EffortGrade, r.TeacherComments,
		r.PrincipalComments, r.ParentComments, r.NextTermBegins).Scan(&r.ID, &r.GeneratedAt)
}

// GenerateClassReports recomputes the term rollup for every active
// student in a class: overall average from the term's grades, then
// positions by ranking averages within the class.
func GenerateClassReports(db *sql.DB, classID, termID, classTeacherID string) ([]*models.ProgressReport, error) {
	students, err := GetStudentsByClass(db, classID)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		report  *models.ProgressReport
		average float64
	}
	entries := make([]ranked, 0, len(students))
	total := len(students)

	for _, student := range students {
		avg, err := TermAverage(db, student.ID, termID)
		if err != nil {
			return nil, err
		}
		a := avg
		t := total
		report := &models.ProgressReport{
			StudentID:      student.ID,
			TermID:         termID,
			ClassTeacherID: classTeacherID,
			OverallAverage: &a,
			TotalStudents:  &t,
		}
		entries = append(entries, ranked{report: report, average: avg})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].average > entries[j].average
	})

	var reports []*models.ProgressReport
	for i := range entries {
		pos := i + 1
		// Tied averages share the higher position
		if i > 0 && entries[i].average == entries[i-1].average {
			pos = *entries[i-1].report.ClassPosition
		}
		entries[i].report.ClassPosition = &pos
		if err := UpsertProgressReport(db, entries[i].report); err != nil {
			return nil, err
		}
		reports = append(reports, entries[i].report)
	}
	if reports == nil {
		reports = []*models.ProgressReport{}
	}
	return reports, nil
}

// UpdateReportComments sets the narrative fields without touching the
// computed rollup.
func UpdateReportComments(db *sql.DB, r *models.ProgressReport) error {
	query := `UPDATE progress_reports SET conduct_grade = $1, effort_grade = $2, teacher_comments = $3,
			  principal_comments = $4, parent_comments = $5, next_term_begins = $6
			  WHERE id = $7`
	_, err := db.Exec(query, r.ConductGrade, r.EffortGrade, r.TeacherComments,
		r.PrincipalComments, r.ParentComments, r.NextTermBegins, r.ID)
	return err
}
