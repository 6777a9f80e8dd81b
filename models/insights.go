package models

import "time"

// 趋势方向
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
	TrendNoData    = "no_data"
)

// EmotionPatterns 情绪模式分析结果
// 可选字段使用指针，空集时序列化为null而不是0
type EmotionPatterns struct {
	WeeklyTrend      string   `json:"weekly_trend"`
	PeakDays         []string `json:"peak_days"`
	LowDays          []string `json:"low_days"`
	DominantEmotion  *string  `json:"dominant_emotion"`
	IntensityTrend   string   `json:"intensity_trend"`
	AverageIntensity *float64 `json:"average_intensity"`
}

// CBTProgress CBT进展分析结果
type CBTProgress struct {
	ThoughtChallengingImprovement float64 `json:"thought_challenging_improvement"`
	MostCommonDistortion          *string `json:"most_common_distortion"`
	AverageImprovement            float64 `json:"average_improvement"`
	ProgressTrend                 string  `json:"progress_trend"`
	TotalRecords                  int     `json:"total_records"`
}

// ACTAlignment 价值观对齐分析结果
type ACTAlignment struct {
	OverallScore      float64 `json:"overall_score"`
	MostAlignedValue  *string `json:"most_aligned_value"`
	LeastAlignedValue *string `json:"least_aligned_value"`
	BiggestGapValue   *string `json:"biggest_gap_value"`
	TotalValues       int     `json:"total_values"`
}

// ExerciseHabits 练习习惯分析结果
type ExerciseHabits struct {
	ConsistencyScore float64 `json:"consistency_score"`
	PreferredTime    *string `json:"preferred_time"`
	CompletionRate   float64 `json:"completion_rate"`
	TotalSessions    int     `json:"total_sessions"`
}

// SOSUsage SOS使用情况分析结果
type SOSUsage struct {
	UsageFrequency         float64 `json:"usage_frequency"`
	MostEffectiveTechnique *string `json:"most_effective_technique"`
	PreferredType          *string `json:"preferred_type"`
	AverageEffectiveness   float64 `json:"average_effectiveness"`
}

// InsightReport 一个用户一个时间窗口的综合洞察报告
type InsightReport struct {
	EmotionPatterns EmotionPatterns `json:"emotion_patterns"`
	CBTProgress     CBTProgress     `json:"cbt_progress"`
	ACTAlignment    ACTAlignment    `json:"act_alignment"`
	ExerciseHabits  ExerciseHabits  `json:"exercise_habits"`
	SOSUsage        SOSUsage        `json:"sos_usage"`
	Recommendations []string        `json:"recommendations"`
	Period          string          `json:"period"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
}
