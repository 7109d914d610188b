package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateChat SessionState = iota
	StateStudyPlan
	StatePlanner
	NumMainTabs

	// Modal states live past the main tabs so tab cycling never lands on them
	StateTaskForm
	StatePlanForm
	StateCardForm
	StateConfirmDelete
)

// Priority represents the display priority of a task
type Priority string

// Role identifies the author of a chat turn
type Role string

// PlanTab identifies the active tab of a generated study plan
type PlanTab int

const (
	AppName           = "socrates"
	DefaultKeyringKey = "gemini-api-key"
	Version           = "v0.1.0"

	// EnvAPIKey overrides the keyring-stored credential when set
	EnvAPIKey = "GEMINI_API_KEY"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Model constants
	ModelName        = "gemini-2.5-flash"
	GeminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

	// Task defaults
	DefaultDurationMin  = 60
	FallbackEstimateMin = 30

	// RecurrenceHorizonDays is the fixed window over which a weekly-repeating
	// task template is expanded into concrete instances, inclusive of the
	// start date.
	RecurrenceHorizonDays = 84

	// MaxTasksPerCell caps the task summaries shown inside a calendar day
	// cell; the remainder is summarized as a count.
	MaxTasksPerCell = 3

	// Priority constants
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"

	// Role constants
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Plan tab constants
const (
	PlanTabSchedule PlanTab = iota
	PlanTabFlashcards
	PlanTabQuiz
)
