package database

import (
	"database/sql"
	"time"

	"stmarys-portal/app/models"
)

const assignmentSelect = `SELECT a.id, a.title, a.description, a.subject_id, a.class_id, a.teacher_id,
		a.assignment_type, a.due_date, a.max_marks, a.instructions, a.attachment_path, a.status,
		a.created_at, a.updated_at, s.name, s.code, c.display_name, u.first_name || ' ' || u.last_name
		FROM assignments a
		JOIN subjects s ON a.subject_id = s.id
		JOIN classes c ON a.class_id = c.id
		JOIN teachers t ON a.teacher_id = t.id
		JOIN user_profiles p ON t.profile_id = p.id
		JOIN users u ON p.user_id = u.id`

func scanAssignment(row interface{ Scan(...interface{}) error }) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.SubjectID, &a.ClassID, &a.TeacherID,
		&a.AssignmentType, &a.DueDate, &a.MaxMarks, &a.Instructions, &a.AttachmentPath, &a.Status,
		&a.CreatedAt, &a.UpdatedAt, &a.SubjectName, &a.SubjectCode, &a.ClassName, &a.TeacherName)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func collectAssignments(rows *sql.Rows) ([]*models.Assignment, error) {
	var assignments []*models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if assignments == nil {
		assignments = []*models.Assignment{}
	}
	return assignments, rows.Err()
}

func GetAssignmentByID(db *sql.DB, id string) (*models.Assignment, error) {
	return scanAssignment(db.QueryRow(assignmentSelect+` WHERE a.id = $1`, id))
}

// GetPublishedAssignmentsByClass lists assignments visible to students
// of a class, newest due date first.
func GetPublishedAssignmentsByClass(db *sql.DB, classID string, limit int) ([]*models.Assignment, error) {
	query := assignmentSelect + ` WHERE a.class_id = $1 AND a.status = 'published' ORDER BY a.due_date DESC`
	args := []interface{}{classID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func GetAssignmentsByTeacher(db *sql.DB, teacherID string, limit int) ([]*models.Assignment, error) {
	query := assignmentSelect + ` WHERE a.teacher_id = $1 ORDER BY a.created_at DESC`
	args := []interface{}{teacherID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func CreateAssignment(db *sql.DB, a *models.Assignment) error {
	query := `INSERT INTO assignments (title, description, subject_id, class_id, teacher_id, assignment_type,
			  due_date, max_marks, instructions, attachment_path, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, a.Title, a.Description, a.SubjectID, a.ClassID, a.TeacherID,
		a.AssignmentType, a.DueDate, a.MaxMarks, a.Instructions, a.AttachmentPath, a.Status).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func UpdateAssignment(db *sql.DB, a *models.Assignment) error {
	query := `UPDATE assignments SET title = $1, description = $2, subject_id = $3, assignment_type = $4,
			  due_date = $5, max_marks = $6, instructions = $7, attachment_path = $8, updated_at = NOW()
			  WHERE id = $9`
	_, err := db.Exec(query, a.Title, a.Description, a.SubjectID, a.AssignmentType,
		a.DueDate, a.MaxMarks, a.Instructions, a.AttachmentPath, a.ID)
	return err
}

// UpdateAssignmentStatus moves an assignment through its lifecycle
// (draft -> published -> closed).
func UpdateAssignmentStatus(db *sql.DB, id string, status models.AssignmentStatus) error {
	res, err := db.Exec(`UPDATE assignments SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const submissionSelect = `SELECT sub.id, sub.assignment_id, sub.student_id, sub.submission_text,
		sub.attachment_path, sub.submitted_at, sub.marks_obtained, sub.teacher_feedback, sub.status,
		sub.is_late, sub.created_at, sub.updated_at,
		u.first_name || ' ' || u.last_name, st.admission_number, a.title, a.max_marks
		FROM assignment_submissions sub
		JOIN students st ON sub.student_id = st.id
		JOIN user_profiles p ON st.profile_id = p.id
		JOIN users u ON p.user_id = u.id
		JOIN assignments a ON sub.assignment_id = a.id`

func scanSubmission(row interface{ Scan(...interface{}) error }) (*models.AssignmentSubmission, error) {
	sub := &models.AssignmentSubmission{}
	err := row.Scan(&sub.ID, &sub.AssignmentID, &sub.StudentID, &sub.SubmissionText, &sub.AttachmentPath,
		&sub.SubmittedAt, &sub.MarksObtained, &sub.TeacherFeedback, &sub.Status, &sub.IsLate,
		&sub.CreatedAt, &sub.UpdatedAt, &sub.StudentName, &sub.AdmissionNumber, &sub.AssignmentTitle,
		&sub.MaxMarks)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func GetSubmission(db *sql.DB, assignmentID, studentID string) (*models.AssignmentSubmission, error) {
	return scanSubmission(db.QueryRow(submissionSelect+` WHERE sub.assignment_id = $1 AND sub.student_id = $2`,
		assignmentID, studentID))
}

func GetSubmissionByID(db *sql.DB, id string) (*models.AssignmentSubmission, error) {
	return scanSubmission(db.QueryRow(submissionSelect+` WHERE sub.id = $1`, id))
}

func GetSubmissionsByAssignment(db *sql.DB, assignmentID string) ([]*models.AssignmentSubmission, error) {
	rows, err := db.Query(submissionSelect+` WHERE sub.assignment_id = $1 ORDER BY u.first_name`, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.AssignmentSubmission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if subs == nil {
		subs = []*models.AssignmentSubmission{}
	}
	return subs, rows.Err()
}

// SubmitAssignment records a student's submission. The unique
// (assignment, student) pair means a resubmission overwrites the
// existing row instead of creating a second one. is_late is computed
// here against the assignment due date.
func SubmitAssignment(db *sql.DB, sub *models.AssignmentSubmission, dueDate time.Time) error {
	now := time.Now()
	sub.SubmittedAt = &now
	sub.IsLate = now.After(dueDate)
	sub.Status = models.SubmissionSubmitted

	query := `INSERT INTO assignment_submissions
			  (assignment_id, student_id, submission_text, attachment_path, submitted_at, status, is_late, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			  ON CONFLICT (assignment_id, student_id)
			  DO UPDATE SET submission_text = EXCLUDED.submission_text,
						    attachment_path = EXCLUDED.attachment_path,
						    submitted_at = EXCLUDED.submitted_at,
						    status = EXCLUDED.status,
						    is_late = EXCLUDED.is_late,
						    updated_at = NOW()
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, sub.AssignmentID, sub.StudentID, sub.SubmissionText, sub.AttachmentPath,
		sub.SubmittedAt, sub.Status, sub.IsLate).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

// GradeSubmission records marks and feedback, moving the submission to
// graded.
func GradeSubmission(db *sql.DB, submissionID string, marks float64, feedback string) error {
	res, err := db.Exec(`UPDATE assignment_submissions
		SET marks_obtained = $1, teacher_feedback = $2, status = 'graded', updated_at = NOW()
		WHERE id = $3 AND status IN ('submitted', 'graded')`, marks, feedback, submissionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReturnSubmission publishes the graded work back to the student.
func ReturnSubmission(db *sql.DB, submissionID string) error {
	res, err := db.Exec(`UPDATE assignment_submissions
		SET status = 'returned', updated_at = NOW()
		WHERE id = $1 AND status = 'graded'`, submissionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountPendingSubmissions counts submitted, not-yet-graded work across
// a teacher's assignments.
func CountPendingSubmissions(db *sql.DB, teacherID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM assignment_submissions sub
		JOIN assignments a ON sub.assignment_id = a.id
		WHERE a.teacher_id = $1 AND sub.status = 'submitted'`, teacherID).Scan(&count)
	return count, err
}

// CountPendingAssignments counts published assignments still due that
// the student has not submitted.
func CountPendingAssignments(db *sql.DB, studentID, classID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM assignments a
		WHERE a.class_id = $1 AND a.status = 'published' AND a.due_date >= NOW()
		AND NOT EXISTS (
			SELECT 1 FROM assignment_submissions sub
			WHERE sub.assignment_id = a.id AND sub.student_id = $2
			AND sub.status IN ('submitted', 'graded', 'returned')
		)`, classID, studentID).Scan(&count)
	return count, err
}

// AttachSubmissionState fills the per-student submission fields on a
// list of assignments.
func AttachSubmissionState(db *sql.DB, assignments []*models.Assignment, studentID string) error {
	for _, a := range assignments {
		sub, err := GetSubmission(db, a.ID, studentID)
		if err == sql.ErrNoRows {
			a.SubmissionStatus = "not_submitted"
			continue
		}
		if err != nil {
			return err
		}
		a.Submission = sub
		a.SubmissionStatus = sub.Status
	}
	return nil
}
