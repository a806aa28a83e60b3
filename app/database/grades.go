package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

const gradeSelect = `SELECT g.id, g.student_id, g.subject_id, g.term_id, g.teacher_id, g.grade_type,
		g.title, g.marks_obtained, g.max_marks, g.weight, g.comments, g.date_recorded, g.created_at,
		s.name, s.code, u.first_name || ' ' || u.last_name
		FROM grades g
		JOIN subjects s ON g.subject_id = s.id
		JOIN teachers t ON g.teacher_id = t.id
		JOIN user_profiles p ON t.profile_id = p.id
		JOIN users u ON p.user_id = u.id`

func scanGrade(row interface{ Scan(...interface{}) error }) (*models.Grade, error) {
	g := &models.Grade{}
	err := row.Scan(&g.ID, &g.StudentID, &g.SubjectID, &g.TermID, &g.TeacherID, &g.GradeType,
		&g.Title, &g.MarksObtained, &g.MaxMarks, &g.Weight, &g.Comments, &g.DateRecorded, &g.CreatedAt,
		&g.SubjectName, &g.SubjectCode, &g.TeacherName)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func collectGrades(rows *sql.Rows) ([]*models.Grade, error) {
	var grades []*models.Grade
	for rows.Next() {
		g, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	if grades == nil {
		grades = []*models.Grade{}
	}
	return grades, rows.Err()
}

// GetGradesByStudentAndTerm lists a student's scored entries for a
// term, ordered by subject.
func GetGradesByStudentAndTerm(db *sql.DB, studentID, termID string, limit int) ([]*models.Grade, error) {
	query := gradeSelect + ` WHERE g.student_id = $1 AND g.term_id = $2 ORDER BY s.name, g.date_recorded DESC`
	args := []interface{}{studentID, termID}
	if limit > 0 {
		query = gradeSelect + ` WHERE g.student_id = $1 AND g.term_id = $2 ORDER BY g.date_recorded DESC LIMIT $3`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGrades(rows)
}

func GetGradeByID(db *sql.DB, id string) (*models.Grade, error) {
	return scanGrade(db.QueryRow(gradeSelect+` WHERE g.id = $1`, id))
}

func CreateGrade(db *sql.DB, g *models.Grade) error {
	query := `INSERT INTO grades (student_id, subject_id, term_id, teacher_id, grade_type, title,
			  marks_obtained, max_marks, weight, comments, date_recorded, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, g.StudentID, g.SubjectID, g.TermID, g.TeacherID, g.GradeType, g.Title,
		g.MarksObtained, g.MaxMarks, g.Weight, g.Comments, g.DateRecorded).Scan(&g.ID, &g.CreatedAt)
}

func UpdateGrade(db *sql.DB, g *models.Grade) error {
	query := `UPDATE grades SET grade_type = $1, title = $2, marks_obtained = $3, max_marks = $4,
			  weight = $5, comments = $6, date_recorded = $7 WHERE id = $8`
	_, err := db.Exec(query, g.GradeType, g.Title, g.MarksObtained, g.MaxMarks, g.Weight,
		g.Comments, g.DateRecorded, g.ID)
	return err
}

func DeleteGrade(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM grades WHERE id = $1`, id)
	return err
}

// TermAverage is the unweighted mean of percentage scores across all of
// a student's entries in a term. The stored weight column is not
// applied here.
func TermAverage(db *sql.DB, studentID, termID string) (float64, error) {
	var avg sql.NullFloat64
	err := db.QueryRow(`SELECT AVG(marks_obtained / max_marks * 100)
		FROM grades WHERE student_id = $1 AND term_id = $2 AND max_marks > 0`,
		studentID, termID).Scan(&avg)
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

// SubjectAverages breaks a student's term down by subject using the
// same unweighted percentage mean.
func SubjectAverages(db *sql.DB, studentID, termID string) ([]*models.SubjectAverage, error) {
	query := `SELECT s.id, s.name, s.code, AVG(g.marks_obtained / g.max_marks * 100), COUNT(*)
			  FROM grades g
			  JOIN subjects s ON g.subject_id = s.id
			  WHERE g.student_id = $1 AND g.term_id = $2 AND g.max_marks > 0
			  GROUP BY s.id, s.name, s.code
			  ORDER BY s.name`

	rows, err := db.Query(query, studentID, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var averages []*models.SubjectAverage
	for rows.Next() {
		sa := &models.SubjectAverage{}
		if err := rows.Scan(&sa.SubjectID, &sa.SubjectName, &sa.SubjectCode, &sa.Average, &sa.EntryCount); err != nil {
			return nil, err
		}
		sa.Letter = models.LetterForPercentage(sa.Average)
		averages = append(averages, sa)
	}
	if averages == nil {
		averages = []*models.SubjectAverage{}
	}
	return averages, rows.Err()
}

// GetGradesByTeacher lists entries a teacher has recorded, newest
// first.
func GetGradesByTeacher(db *sql.DB, teacherID string, limit int) ([]*models.Grade, error) {
	query := gradeSelect + ` WHERE g.teacher_id = $1 ORDER BY g.date_recorded DESC`
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
	return collectGrades(rows)
}
