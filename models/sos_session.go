package models

import "time"

// SOSSession SOS应急练习记录
type SOSSession struct {
	ID                  string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID              string    `gorm:"type:varchar(50);index:idx_sos_sessions_user_created" json:"user_id"`
	SessionType         string    `gorm:"type:varchar(50)" json:"session_type"` // 处理感受 / 处理想法
	TechniqueUsed       string    `gorm:"type:varchar(100)" json:"technique_used"`
	Duration            *int      `json:"duration"`             // 秒，未记录时为空
	EffectivenessRating *int      `json:"effectiveness_rating"` // 1-5，未评分时为空
	Notes               string    `gorm:"type:text" json:"notes"`
	CreatedAt           time.Time `gorm:"index:idx_sos_sessions_user_created" json:"created_at"`
}

func (SOSSession) TableName() string {
	return "sos_sessions"
}
