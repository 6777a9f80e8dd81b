package services

import (
	"context"
	"testing"
	"time"

	"github.com/prospermen/Belief-life/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatsService(store RecordStore) *StatsService {
	return NewStatsService(store, newTestService(store))
}

func timePtr(t time.Time) *time.Time { return &t }

func TestEmotionStats(t *testing.T) {
	store := &stubRecordStore{
		emotions: []models.EmotionLog{
			{EmotionType: "happy", Intensity: 8, Tags: `["工作","家庭"]`, CreatedAt: monday},
			{EmotionType: "happy", Intensity: 6, Tags: `["工作"]`, CreatedAt: monday.Add(time.Hour)},
			{EmotionType: "sad", Intensity: 3, CreatedAt: monday.Add(2 * time.Hour)},
		},
	}
	now := monday.AddDate(0, 0, 3)

	stats, err := newTestStatsService(store).EmotionStats(context.Background(), "user-1", "week", now)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"happy": 2, "sad": 1}, stats.EmotionDistribution)
	// (8+6+3)/3 = 5.666... -> 5.7
	assert.Equal(t, 5.7, stats.AverageIntensity)
	assert.Equal(t, 3, stats.TotalEntries)
	assert.Equal(t, []string{"工作", "家庭"}, stats.MostCommonTags)
	assert.Equal(t, "week", stats.Period)
	assert.Equal(t, now.AddDate(0, 0, -7), stats.StartDate)
}

func TestEmotionStatsEmpty(t *testing.T) {
	stats, err := newTestStatsService(&stubRecordStore{}).EmotionStats(context.Background(), "user-1", "week", monday)

	require.NoError(t, err)
	assert.Zero(t, stats.AverageIntensity)
	assert.Zero(t, stats.TotalEntries)
	assert.Empty(t, stats.MostCommonTags)
	assert.NotNil(t, stats.MostCommonTags)
}

func TestEmotionStatsPeriodFallback(t *testing.T) {
	stats, err := newTestStatsService(&stubRecordStore{}).EmotionStats(context.Background(), "user-1", "decade", monday)

	require.NoError(t, err)
	// 未知周期按周处理
	assert.Equal(t, monday.AddDate(0, 0, -7), stats.StartDate)
}

func TestCBTStatsUnclampedImprovement(t *testing.T) {
	store := &stubRecordStore{
		thoughts: []models.CBTThought{
			{Emotion: "焦虑", EmotionIntensity: 3, NewEmotionIntensity: intPtr(8), CreatedAt: monday},
		},
	}

	stats, err := newTestStatsService(store).CBTStats(context.Background(), "user-1", "month", monday)

	require.NoError(t, err)
	// 统计接口保留负改善值，不截断到0
	assert.Equal(t, -5.0, stats.AverageImprovement)
	assert.Equal(t, -50.0, stats.ImprovementPercentage)
	assert.Equal(t, map[string]int{"焦虑": 1}, stats.EmotionDistribution)
}

func TestCBTStatsEmpty(t *testing.T) {
	stats, err := newTestStatsService(&stubRecordStore{}).CBTStats(context.Background(), "user-1", "month", monday)

	require.NoError(t, err)
	assert.Zero(t, stats.TotalRecords)
	assert.Zero(t, stats.ImprovementPercentage)
	assert.Nil(t, stats.MostCommonDistortion)
}

func TestACTStats(t *testing.T) {
	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	store := &stubRecordStore{
		values: []models.ACTValue{
			{ValueCategory: "家庭", ImportanceRating: 10, CurrentAlignment: 2},
			{ValueCategory: "工作/职业", ImportanceRating: 5, CurrentAlignment: 8},
		},
		actions: []models.ACTAction{
			{Completed: true, TargetDate: timePtr(today.AddDate(0, 0, -10))},
			{Completed: false, TargetDate: timePtr(today.AddDate(0, 0, 3))},
			{Completed: false, TargetDate: timePtr(today.AddDate(0, 0, -1))},
			{Completed: false, TargetDate: nil},
		},
	}

	stats, err := newTestStatsService(store).ACTStats(context.Background(), "user-1", monday)

	require.NoError(t, err)
	assert.Equal(t, 4.0, stats.OverallAlignmentScore)
	require.NotNil(t, stats.BiggestGapValue)
	assert.Equal(t, "家庭", *stats.BiggestGapValue)
	assert.Equal(t, 4, stats.TotalActions)
	assert.Equal(t, 1, stats.CompletedActions)
	assert.Equal(t, 25.0, stats.CompletionRate)
	// 已完成的行动不计入逾期，无目标日期的不计入任何分类
	assert.Equal(t, 1, stats.UpcomingActions)
	assert.Equal(t, 1, stats.OverdueActions)
}

func TestACTStatsUpcomingBoundary(t *testing.T) {
	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	store := &stubRecordStore{
		actions: []models.ACTAction{
			// 今天和第7天都算即将到期，第8天不算
			{Completed: false, TargetDate: timePtr(today)},
			{Completed: false, TargetDate: timePtr(today.AddDate(0, 0, 7))},
			{Completed: false, TargetDate: timePtr(today.AddDate(0, 0, 8))},
		},
	}

	stats, err := newTestStatsService(store).ACTStats(context.Background(), "user-1", monday)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.UpcomingActions)
	assert.Zero(t, stats.OverdueActions)
}

func TestExerciseStats(t *testing.T) {
	favorite := "正念冥想"
	store := &stubRecordStore{
		exercises: []models.ExerciseSession{
			{Completed: true, DurationCompleted: intPtr(300), CreatedAt: monday},
			{Completed: false, DurationCompleted: intPtr(90), CreatedAt: monday.Add(time.Hour)},
		},
		favorite: &favorite,
	}

	stats, err := newTestStatsService(store).ExerciseStats(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 1, stats.CompletedSessions)
	assert.Equal(t, 50.0, stats.CompletionRate)
	// 390秒 -> 6.5分钟
	assert.Equal(t, 6.5, stats.TotalDurationMinutes)
	require.NotNil(t, stats.FavoriteCategory)
	assert.Equal(t, "正念冥想", *stats.FavoriteCategory)
}

func TestExerciseStatsEmpty(t *testing.T) {
	stats, err := newTestStatsService(&stubRecordStore{}).ExerciseStats(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Zero(t, stats.CompletionRate)
	assert.Nil(t, stats.FavoriteCategory)
}

func TestSOSStats(t *testing.T) {
	store := &stubRecordStore{
		sos: []models.SOSSession{
			{SessionType: "处理感受", TechniqueUsed: "方框呼吸", EffectivenessRating: intPtr(4), Duration: intPtr(120), CreatedAt: monday},
			{SessionType: "处理感受", TechniqueUsed: "方框呼吸", EffectivenessRating: intPtr(5), Duration: intPtr(60), CreatedAt: monday.Add(time.Hour)},
			{SessionType: "处理想法", TechniqueUsed: "思维泡泡", CreatedAt: monday.Add(2 * time.Hour)},
		},
	}

	stats, err := newTestStatsService(store).SOSStats(context.Background(), "user-1", "month", monday)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, map[string]int{"处理感受": 2, "处理想法": 1}, stats.TypeDistribution)
	require.Len(t, stats.MostUsedTechniques, 2)
	assert.Equal(t, models.TechniqueCount{Technique: "方框呼吸", Count: 2}, stats.MostUsedTechniques[0])
	assert.Equal(t, models.TechniqueCount{Technique: "思维泡泡", Count: 1}, stats.MostUsedTechniques[1])
	assert.Equal(t, 4.5, stats.AverageEffectiveness)
	assert.Equal(t, 3.0, stats.TotalDurationMinutes)
}

func TestRecommendTechniques(t *testing.T) {
	store := &stubRecordStore{
		sos: []models.SOSSession{
			{SessionType: "处理感受", TechniqueUsed: "方框呼吸", EffectivenessRating: intPtr(5), CreatedAt: monday},
			{SessionType: "处理感受", TechniqueUsed: "4-7-8呼吸", EffectivenessRating: intPtr(2), CreatedAt: monday},
			{SessionType: "处理感受", TechniqueUsed: "4-7-8呼吸", EffectivenessRating: intPtr(2), CreatedAt: monday},
			{SessionType: "处理感受", TechniqueUsed: "4-7-8呼吸", EffectivenessRating: intPtr(2), CreatedAt: monday},
		},
	}

	recommendations, err := newTestStatsService(store).RecommendTechniques(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, recommendations, 8)

	scores := make(map[string]float64, len(recommendations))
	usage := make(map[string]int, len(recommendations))
	for i, rec := range recommendations {
		scores[rec.Technique] = rec.EffectivenessScore
		usage[rec.Technique] = rec.UsageCount
		// 按分数降序排列
		if i > 0 {
			assert.GreaterOrEqual(t, recommendations[i-1].EffectivenessScore, rec.EffectivenessScore)
		}
		assert.LessOrEqual(t, rec.EffectivenessScore, 5.0)
	}

	// 评分5.0加新鲜感加分后封顶5.0
	assert.Equal(t, 5.0, scores["方框呼吸"])
	assert.Equal(t, 1, usage["方框呼吸"])
	// 用满3次后没有新鲜感加分
	assert.Equal(t, 2.0, scores["4-7-8呼吸"])
	assert.Equal(t, 3, usage["4-7-8呼吸"])
	// 没用过的技巧按默认3.0分加满额新鲜感加分
	assert.Equal(t, 3.6, scores["思维泡泡"])
	assert.Zero(t, usage["思维泡泡"])
}

func TestTopByCount(t *testing.T) {
	labels := []string{"b", "a", "b", "c", "a", "b", "d"}

	top := topByCount(labels, 3)

	assert.Equal(t, []string{"b", "a", "c"}, top)
	assert.Empty(t, topByCount(nil, 5))
	assert.NotNil(t, topByCount(nil, 5))
}
