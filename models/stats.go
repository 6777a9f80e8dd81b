package models

import "time"

// EmotionStats 情绪统计
type EmotionStats struct {
	EmotionDistribution map[string]int `json:"emotion_distribution"`
	AverageIntensity    float64        `json:"average_intensity"`
	TotalEntries        int            `json:"total_entries"`
	MostCommonTags      []string       `json:"most_common_tags"`
	Period              string         `json:"period"`
	StartDate           time.Time      `json:"start_date"`
	EndDate             time.Time      `json:"end_date"`
}

// CBTStats CBT统计
type CBTStats struct {
	TotalRecords          int            `json:"total_records"`
	AverageImprovement    float64        `json:"average_improvement"`
	ImprovementPercentage float64        `json:"improvement_percentage"`
	MostCommonDistortion  *string        `json:"most_common_distortion"`
	EmotionDistribution   map[string]int `json:"emotion_distribution"`
	Period                string         `json:"period"`
	StartDate             time.Time      `json:"start_date"`
	EndDate               time.Time      `json:"end_date"`
}

// ACTStats 价值观与行动计划统计
type ACTStats struct {
	OverallAlignmentScore float64 `json:"overall_alignment_score"`
	TotalValues           int     `json:"total_values"`
	MostAlignedValue      *string `json:"most_aligned_value"`
	LeastAlignedValue     *string `json:"least_aligned_value"`
	BiggestGapValue       *string `json:"biggest_gap_value"`
	TotalActions          int     `json:"total_actions"`
	CompletedActions      int     `json:"completed_actions"`
	CompletionRate        float64 `json:"completion_rate"`
	UpcomingActions       int     `json:"upcoming_actions"`
	OverdueActions        int     `json:"overdue_actions"`
}

// ExerciseStats 练习统计
type ExerciseStats struct {
	TotalSessions        int     `json:"total_sessions"`
	CompletedSessions    int     `json:"completed_sessions"`
	CompletionRate       float64 `json:"completion_rate"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
	FavoriteCategory     *string `json:"favorite_category"`
}

// TechniqueCount 技巧使用次数
type TechniqueCount struct {
	Technique string `json:"technique"`
	Count     int    `json:"count"`
}

// SOSStats SOS统计
type SOSStats struct {
	TotalSessions        int              `json:"total_sessions"`
	TypeDistribution     map[string]int   `json:"type_distribution"`
	MostUsedTechniques   []TechniqueCount `json:"most_used_techniques"`
	AverageEffectiveness float64          `json:"average_effectiveness"`
	TotalDurationMinutes float64          `json:"total_duration_minutes"`
	Period               string           `json:"period"`
	StartDate            time.Time        `json:"start_date"`
	EndDate              time.Time        `json:"end_date"`
}

// TechniqueRecommendation 个性化SOS技巧推荐
type TechniqueRecommendation struct {
	Type               string   `json:"type"`
	Technique          string   `json:"technique"`
	Description        string   `json:"description"`
	EstimatedDuration  int      `json:"estimated_duration"` // 秒
	Instructions       []string `json:"instructions"`
	EffectivenessScore float64  `json:"effectiveness_score"`
	UsageCount         int      `json:"usage_count"`
}
