package models

import "time"

// CBTThought CBT思维记录模型
type CBTThought struct {
	ID                  string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID              string    `gorm:"type:varchar(50);index:idx_cbt_thoughts_user_created" json:"user_id"`
	Situation           string    `gorm:"type:text" json:"situation"`
	AutomaticThought    string    `gorm:"type:text" json:"automatic_thought"`
	Emotion             string    `gorm:"type:varchar(50)" json:"emotion"`
	EmotionIntensity    int       `json:"emotion_intensity"` // 1-10
	CognitiveDistortion string    `gorm:"type:varchar(100)" json:"cognitive_distortion"`
	EvidenceFor         string    `gorm:"type:text" json:"evidence_for"`
	EvidenceAgainst     string    `gorm:"type:text" json:"evidence_against"`
	BalancedThought     string    `gorm:"type:text" json:"balanced_thought"`
	NewEmotionIntensity *int      `json:"new_emotion_intensity"` // 完成重构步骤后才有值
	CreatedAt           time.Time `gorm:"index:idx_cbt_thoughts_user_created" json:"created_at"`
}

func (CBTThought) TableName() string {
	return "cbt_thoughts"
}

// Improvement 情绪强度改善值，未完成重构时返回false
func (t *CBTThought) Improvement() (int, bool) {
	if t.NewEmotionIntensity == nil {
		return 0, false
	}
	return t.EmotionIntensity - *t.NewEmotionIntensity, true
}
