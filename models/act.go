package models

import "time"

// ACTValue 价值观条目，每个用户每个分类唯一
type ACTValue struct {
	ID               string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID           string    `gorm:"type:varchar(50);index:idx_act_values_user_category,unique" json:"user_id"`
	ValueCategory    string    `gorm:"type:varchar(50);index:idx_act_values_user_category,unique" json:"value_category"`
	ValueDescription string    `gorm:"type:text" json:"value_description"`
	ImportanceRating int       `json:"importance_rating"` // 1-10
	CurrentAlignment int       `json:"current_alignment"` // 1-10
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (ACTValue) TableName() string {
	return "act_values"
}

// AlignmentGap 重要性与当前对齐度的差距
func (v *ACTValue) AlignmentGap() int {
	return v.ImportanceRating - v.CurrentAlignment
}

// ACTAction 价值观行动计划
type ACTAction struct {
	ID                string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID            string     `gorm:"type:varchar(50);index:idx_act_actions_user" json:"user_id"`
	ValueID           string     `gorm:"type:varchar(50);index:idx_act_actions_value" json:"value_id"`
	ActionDescription string     `gorm:"type:text" json:"action_description"`
	TargetDate        *time.Time `json:"target_date"`
	Completed         bool       `gorm:"default:false" json:"completed"`
	CompletionDate    *time.Time `json:"completion_date"`
	Notes             string     `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (ACTAction) TableName() string {
	return "act_actions"
}
