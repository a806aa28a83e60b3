package database

import (
	"database/sql"
	"log"
)

// RunMigrations bootstraps the schema and applies incremental updates.
// Statements are idempotent so the app can run them on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,

	`CREATE TABLE IF NOT EXISTS user_profiles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		user_type VARCHAR(20) NOT NULL,
		phone VARCHAR(20) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		date_of_birth DATE,
		profile_picture TEXT NOT NULL DEFAULT '',
		emergency_contact VARCHAR(100) NOT NULL DEFAULT '',
		emergency_phone VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS academic_years (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(50) UNIQUE NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_current BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS terms (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academic_year_id UUID NOT NULL REFERENCES academic_years(id) ON DELETE CASCADE,
		term_number INT NOT NULL CHECK (term_number BETWEEN 1 AND 3),
		name VARCHAR(50) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_current BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (academic_year_id, term_number)
	)`,

	`CREATE TABLE IF NOT EXISTS teachers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile_id UUID UNIQUE NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
		employee_id VARCHAR(20) UNIQUE NOT NULL,
		employment_status VARCHAR(20) NOT NULL DEFAULT 'permanent',
		hire_date DATE NOT NULL,
		qualifications TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS classes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(20) NOT NULL,
		display_name VARCHAR(50) NOT NULL,
		level INT NOT NULL,
		capacity INT NOT NULL DEFAULT 40,
		academic_year_id UUID NOT NULL REFERENCES academic_years(id) ON DELETE CASCADE,
		class_teacher_id UUID REFERENCES teachers(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (name, academic_year_id)
	)`,

	`CREATE TABLE IF NOT EXISTS subjects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) UNIQUE NOT NULL,
		code VARCHAR(20) UNIQUE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_core BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS class_subjects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		class_id UUID NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		teacher_id UUID REFERENCES teachers(id) ON DELETE SET NULL,
		lessons_per_week INT NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (class_id, subject_id)
	)`,

	`CREATE TABLE IF NOT EXISTS teacher_subjects (
		teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
		subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		PRIMARY KEY (teacher_id, subject_id)
	)`,

	`CREATE TABLE IF NOT EXISTS parents (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile_id UUID UNIQUE NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
		relationship VARCHAR(20) NOT NULL,
		occupation VARCHAR(100) NOT NULL DEFAULT '',
		workplace VARCHAR(200) NOT NULL DEFAULT '',
		work_phone VARCHAR(20) NOT NULL DEFAULT '',
		is_primary_contact BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile_id UUID UNIQUE NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
		admission_number VARCHAR(20) UNIQUE NOT NULL,
		current_class_id UUID REFERENCES classes(id) ON DELETE SET NULL,
		gender VARCHAR(10) NOT NULL,
		admission_date DATE NOT NULL,
		parent_guardian_id UUID REFERENCES parents(id) ON DELETE SET NULL,
		medical_conditions TEXT NOT NULL DEFAULT '',
		previous_school VARCHAR(200) NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS parent_children (
		parent_id UUID NOT NULL REFERENCES parents(id) ON DELETE CASCADE,
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		PRIMARY KEY (parent_id, student_id)
	)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		class_id UUID NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
		assignment_type VARCHAR(20) NOT NULL DEFAULT 'homework',
		due_date TIMESTAMPTZ NOT NULL,
		max_marks INT NOT NULL DEFAULT 100,
		instructions TEXT NOT NULL DEFAULT '',
		attachment_path TEXT NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_class_status ON assignments(class_id, status)`,

	`CREATE TABLE IF NOT EXISTS assignment_submissions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		submission_text TEXT NOT NULL DEFAULT '',
		attachment_path TEXT NOT NULL DEFAULT '',
		submitted_at TIMESTAMPTZ,
		marks_obtained DECIMAL(5,2),
		teacher_feedback TEXT NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		is_late BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (assignment_id, student_id)
	)`,

	`CREATE TABLE IF NOT EXISTS grades (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		term_id UUID NOT NULL REFERENCES terms(id) ON DELETE CASCADE,
		teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
		grade_type VARCHAR(20) NOT NULL,
		title VARCHAR(200) NOT NULL,
		marks_obtained DECIMAL(5,2) NOT NULL,
		max_marks DECIMAL(5,2) NOT NULL DEFAULT 100,
		weight DECIMAL(3,2) NOT NULL DEFAULT 1.0,
		comments TEXT NOT NULL DEFAULT '',
		date_recorded DATE NOT NULL DEFAULT CURRENT_DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_grades_student_term ON grades(student_id, term_id)`,

	`CREATE TABLE IF NOT EXISTS attendance (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		status VARCHAR(10) NOT NULL DEFAULT 'present',
		time_in TIME,
		time_out TIME,
		notes TEXT NOT NULL DEFAULT '',
		marked_by UUID REFERENCES teachers(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (student_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_student_date ON attendance(student_id, date)`,

	`CREATE TABLE IF NOT EXISTS progress_reports (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		term_id UUID NOT NULL REFERENCES terms(id) ON DELETE CASCADE,
		class_teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
		overall_average DECIMAL(5,2),
		class_position INT,
		total_students INT,
		conduct_grade VARCHAR(2) NOT NULL DEFAULT '',
		effort_grade VARCHAR(2) NOT NULL DEFAULT '',
		teacher_comments TEXT NOT NULL DEFAULT '',
		principal_comments TEXT NOT NULL DEFAULT '',
		parent_comments TEXT NOT NULL DEFAULT '',
		next_term_begins DATE,
		generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (student_id, term_id)
	)`,

	`CREATE TABLE IF NOT EXISTS communications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		sender_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message_type VARCHAR(20) NOT NULL DEFAULT 'general',
		priority VARCHAR(10) NOT NULL DEFAULT 'medium',
		subject VARCHAR(200) NOT NULL,
		message TEXT NOT NULL,
		attachment_path TEXT NOT NULL DEFAULT '',
		is_broadcast BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS communication_recipients (
		communication_id UUID NOT NULL REFERENCES communications(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		PRIMARY KEY (communication_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS communication_reads (
		communication_id UUID NOT NULL REFERENCES communications(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		read_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (communication_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS portal_settings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		school_year_start_month INT NOT NULL DEFAULT 1,
		grading_scale JSONB NOT NULL DEFAULT '{}',
		attendance_required BOOLEAN NOT NULL DEFAULT true,
		parent_access_enabled BOOLEAN NOT NULL DEFAULT true,
		assignment_submission_enabled BOOLEAN NOT NULL DEFAULT true,
		communication_enabled BOOLEAN NOT NULL DEFAULT true,
		report_generation_enabled BOOLEAN NOT NULL DEFAULT true,
		singleton BOOLEAN UNIQUE NOT NULL DEFAULT true CHECK (singleton),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS news_categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		slug VARCHAR(100) UNIQUE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS news_articles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(200) NOT NULL,
		slug VARCHAR(200) UNIQUE NOT NULL,
		category_id UUID REFERENCES news_categories(id) ON DELETE SET NULL,
		author_id UUID REFERENCES users(id) ON DELETE SET NULL,
		excerpt VARCHAR(500) NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		featured_image TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		meta_description VARCHAR(160) NOT NULL DEFAULT '',
		is_published BOOLEAN NOT NULL DEFAULT false,
		is_featured BOOLEAN NOT NULL DEFAULT false,
		published_at TIMESTAMPTZ,
		views_count INT NOT NULL DEFAULT 0,
		likes_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_news_articles_slug ON news_articles(slug)`,

	`CREATE TABLE IF NOT EXISTS article_likes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		article_id UUID NOT NULL REFERENCES news_articles(id) ON DELETE CASCADE,
		ip_address INET NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (article_id, ip_address)
	)`,

	`CREATE TABLE IF NOT EXISTS article_comments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		article_id UUID NOT NULL REFERENCES news_articles(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		comment TEXT NOT NULL,
		ip_address INET NOT NULL,
		is_approved BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS gallery_categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		slug VARCHAR(100) UNIQUE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS albums (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(200) NOT NULL,
		slug VARCHAR(200) UNIQUE NOT NULL,
		category_id UUID REFERENCES gallery_categories(id) ON DELETE SET NULL,
		description TEXT NOT NULL DEFAULT '',
		cover_image TEXT NOT NULL DEFAULT '',
		event_date DATE,
		is_published BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS photos (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		album_id UUID NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
		title VARCHAR(200) NOT NULL DEFAULT '',
		caption TEXT NOT NULL DEFAULT '',
		image_path TEXT NOT NULL,
		thumbnail_path TEXT NOT NULL DEFAULT '',
		likes_count INT NOT NULL DEFAULT 0,
		views_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS photo_likes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		photo_id UUID NOT NULL REFERENCES photos(id) ON DELETE CASCADE,
		ip_address INET NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (photo_id, ip_address)
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		location VARCHAR(200) NOT NULL DEFAULT '',
		term_id UUID REFERENCES terms(id) ON DELETE SET NULL,
		is_published BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS contact_messages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(20) NOT NULL DEFAULT '',
		subject VARCHAR(200) NOT NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}
