package models

import (
	"encoding/json"
	"time"
)

// EmotionLog 情绪记录模型
type EmotionLog struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(50);index:idx_emotion_logs_user_created" json:"user_id"`
	EmotionType string    `gorm:"type:varchar(20)" json:"emotion_type"`
	Intensity   int       `json:"intensity"` // 1-10
	Content     string    `gorm:"type:text" json:"content"`
	Tags        string    `gorm:"type:text" json:"-"` // JSON数组字符串
	CreatedAt   time.Time `gorm:"index:idx_emotion_logs_user_created" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (EmotionLog) TableName() string {
	return "emotion_logs"
}

// GetTags 解析标签列表
func (e *EmotionLog) GetTags() []string {
	if e.Tags == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(e.Tags), &tags); err != nil {
		return nil
	}
	return tags
}
