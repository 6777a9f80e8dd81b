package models

import "time"

// GuidedExercise 引导练习（冥想、呼吸等）
type GuidedExercise struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(100)" json:"title"`
	Category    string    `gorm:"type:varchar(50)" json:"category"`
	Duration    int       `json:"duration"` // 秒
	Description string    `gorm:"type:text" json:"description"`
	AudioURL    string    `gorm:"type:varchar(255)" json:"audio_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (GuidedExercise) TableName() string {
	return "guided_exercises"
}

// ExerciseSession 一次练习记录
type ExerciseSession struct {
	ID                string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID            string    `gorm:"type:varchar(50);index:idx_exercise_sessions_user_created" json:"user_id"`
	ExerciseID        string    `gorm:"type:varchar(50)" json:"exercise_id"`
	DurationCompleted *int      `json:"duration_completed"` // 秒，未记录时为空
	Completed         bool      `gorm:"default:false" json:"completed"`
	Notes             string    `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time `gorm:"index:idx_exercise_sessions_user_created" json:"created_at"`
}

func (ExerciseSession) TableName() string {
	return "exercise_sessions"
}
