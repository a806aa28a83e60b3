package database

import (
	"database/sql"

	"stmarys-portal/app/models"
)

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.display_name, c.level, c.capacity, c.academic_year_id, c.class_teacher_id,
			  c.created_at, c.updated_at, COALESCE(s.student_count, 0)
			  FROM classes c
			  LEFT JOIN (
				  SELECT current_class_id, COUNT(*) AS student_count
				  FROM students WHERE is_active = true
				  GROUP BY current_class_id
			  ) s ON c.id = s.current_class_id
			  ORDER BY c.level`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.Name, &class.DisplayName, &class.Level, &class.Capacity,
			&class.AcademicYearID, &class.ClassTeacherID, &class.CreatedAt, &class.UpdatedAt,
			&class.StudentCount); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	if classes == nil {
		classes = []*models.Class{}
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	query := `SELECT id, name, display_name, level, capacity, academic_year_id, class_teacher_id, created_at, updated_at
			  FROM classes WHERE id = $1`

	class := &models.Class{}
	err := db.QueryRow(query, id).Scan(&class.ID, &class.Name, &class.DisplayName, &class.Level,
		&class.Capacity, &class.AcademicYearID, &class.ClassTeacherID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return class, nil
}

func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, display_name, level, capacity, academic_year_id, class_teacher_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, class.Name, class.DisplayName, class.Level, class.Capacity,
		class.AcademicYearID, class.ClassTeacherID).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
	if IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `UPDATE classes SET name = $1, display_name = $2, level = $3, capacity = $4,
			  academic_year_id = $5, class_teacher_id = $6, updated_at = NOW() WHERE id = $7`
	_, err := db.Exec(query, class.Name, class.DisplayName, class.Level, class.Capacity,
		class.AcademicYearID, class.ClassTeacherID, class.ID)
	return err
}

func DeleteClass(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM classes WHERE id = $1`, id)
	return err
}

// GetClassesByTeacher returns classes where the teacher is the class
// teacher or teaches a subject through class_subjects.
func GetClassesByTeacher(db *sql.DB, teacherID string) ([]*models.Class, error) {
	query := `SELECT DISTINCT c.id, c.name, c.display_name, c.level, c.capacity, c.academic_year_id,
			  c.class_teacher_id, c.created_at, c.updated_at
			  FROM classes c
			  LEFT JOIN class_subjects cs ON cs.class_id = c.id
			  WHERE c.class_teacher_id = $1 OR cs.teacher_id = $1
			  ORDER BY c.level`

	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.Name, &class.DisplayName, &class.Level, &class.Capacity,
			&class.AcademicYearID, &class.ClassTeacherID, &class.CreatedAt, &class.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	if classes == nil {
		classes = []*models.Class{}
	}
	return classes, rows.Err()
}

// TeacherTeachesClass reports whether the teacher is tied to the class
// as class teacher or through a subject assignment.
func TeacherTeachesClass(db *sql.DB, teacherID, classID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM classes c
				  LEFT JOIN class_subjects cs ON cs.class_id = c.id
				  WHERE c.id = $2 AND (c.class_teacher_id = $1 OR cs.teacher_id = $1)
			  )`
	var ok bool
	err := db.QueryRow(query, teacherID, classID).Scan(&ok)
	return ok, err
}

func GetClassSubjects(db *sql.DB, classID string) ([]*models.ClassSubject, error) {
	query := `SELECT cs.id, cs.class_id, cs.subject_id, cs.teacher_id, cs.lessons_per_week, cs.created_at,
			  s.name, s.code, s.is_core
			  FROM class_subjects cs
			  JOIN subjects s ON cs.subject_id = s.id
			  WHERE cs.class_id = $1
			  ORDER BY s.name`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*models.ClassSubject
	for rows.Next() {
		cs := &models.ClassSubject{Subject: &models.Subject{}}
		if err := rows.Scan(&cs.ID, &cs.ClassID, &cs.SubjectID, &cs.TeacherID, &cs.LessonsPerWeek,
			&cs.CreatedAt, &cs.Subject.Name, &cs.Subject.Code, &cs.Subject.IsCore); err != nil {
			return nil, err
		}
		cs.Subject.ID = cs.SubjectID
		links = append(links, cs)
	}
	if links == nil {
		links = []*models.ClassSubject{}
	}
	return links, rows.Err()
}

func AssignSubjectToClass(db *sql.DB, cs *models.ClassSubject) error {
	query := `INSERT INTO class_subjects (class_id, subject_id, teacher_id, lessons_per_week, created_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  ON CONFLICT (class_id, subject_id)
			  DO UPDATE SET teacher_id = EXCLUDED.teacher_id, lessons_per_week = EXCLUDED.lessons_per_week
			  RETURNING id, created_at`
	return db.QueryRow(query, cs.ClassID, cs.SubjectID, cs.TeacherID, cs.LessonsPerWeek).Scan(&cs.ID, &cs.CreatedAt)
}

func RemoveSubjectFromClass(db *sql.DB, classID, subjectID string) error {
	_, err := db.Exec(`DELETE FROM class_subjects WHERE class_id = $1 AND subject_id = $2`, classID, subjectID)
	return err
}
