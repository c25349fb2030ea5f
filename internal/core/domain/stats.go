package domain

type StreakPoint struct {
	Date   Date `json:"date"`
	Streak int  `json:"streak"`
}

// SuccessPoint marks a completed occurrence of a goal's recurrence.
// Success is always 0 or 1.
type SuccessPoint struct {
	Date    Date `json:"date"`
	Success int  `json:"success"`
}

type RatingPoint struct {
	Date   Date `json:"date"`
	Rating int  `json:"rating"`
}

type GoalHistory struct {
	GoalID        string         `json:"goal_id"`
	Streaks       []StreakPoint  `json:"streaks"`
	Successes     []SuccessPoint `json:"successes"`
	Ratings       []RatingPoint  `json:"ratings"`
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
}

type CalendarLevel string

const (
	LevelNone   CalendarLevel = "none"
	LevelLow    CalendarLevel = "low"
	LevelMedium CalendarLevel = "medium"
	LevelHigh   CalendarLevel = "high"
)

// CalendarDay summarises every log a user wrote on one day of a month.
type CalendarDay struct {
	Date       Date          `json:"date"`
	Logged     int           `json:"logged"`
	Achieved   int           `json:"achieved"`
	TotalGoals int           `json:"total_goals"`
	Level      CalendarLevel `json:"level"`
}
