package models

// UserType defines the role a portal account carries.
type UserType string

const (
	UserTypeAdmin   UserType = "admin"
	UserTypeTeacher UserType = "teacher"
	UserTypeStudent UserType = "student"
	UserTypeParent  UserType = "parent"
)

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// RelationshipType defines the relationship of a parent/guardian to a student.
type RelationshipType string

const (
	Father      RelationshipType = "father"
	Mother      RelationshipType = "mother"
	Guardian    RelationshipType = "guardian"
	Grandfather RelationshipType = "grandfather"
	Grandmother RelationshipType = "grandmother"
	Uncle       RelationshipType = "uncle"
	Aunt        RelationshipType = "aunt"
	OtherRel    RelationshipType = "other"
)

// EmploymentStatus defines a teacher's employment arrangement.
type EmploymentStatus string

const (
	Permanent EmploymentStatus = "permanent"
	Contract  EmploymentStatus = "contract"
	Temporary EmploymentStatus = "temporary"
	Intern    EmploymentStatus = "intern"
)

// AssignmentStatus tracks the teacher-driven lifecycle of an assignment.
type AssignmentStatus string

const (
	AssignmentDraft     AssignmentStatus = "draft"
	AssignmentPublished AssignmentStatus = "published"
	AssignmentClosed    AssignmentStatus = "closed"
)

// AssignmentType categorises the kind of task issued.
type AssignmentType string

const (
	Homework  AssignmentType = "homework"
	Project   AssignmentType = "project"
	Quiz      AssignmentType = "quiz"
	Test      AssignmentType = "test"
	Exam      AssignmentType = "exam"
	Practical AssignmentType = "practical"
)

// SubmissionStatus tracks a student's progress on an assignment.
type SubmissionStatus string

const (
	SubmissionDraft     SubmissionStatus = "draft"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
	SubmissionReturned  SubmissionStatus = "returned"
)

// GradeType categorises a scored entry.
type GradeType string

const (
	GradeAssignment    GradeType = "assignment"
	GradeTest          GradeType = "test"
	GradeExam          GradeType = "exam"
	GradeQuiz          GradeType = "quiz"
	GradeProject       GradeType = "project"
	GradeParticipation GradeType = "participation"
)

// MessageType categorises a portal communication.
type MessageType string

const (
	Announcement    MessageType = "announcement"
	AssignmentMsg   MessageType = "assignment"
	GradeMsg        MessageType = "grade"
	AttendanceMsg   MessageType = "attendance"
	EventMsg        MessageType = "event"
	DisciplinaryMsg MessageType = "disciplinary"
	GeneralMsg      MessageType = "general"
)

// PriorityLevel defines message priority.
type PriorityLevel string

const (
	LowPriority    PriorityLevel = "low"
	MediumPriority PriorityLevel = "medium"
	HighPriority   PriorityLevel = "high"
	UrgentPriority PriorityLevel = "urgent"
)
