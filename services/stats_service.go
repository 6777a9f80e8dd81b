package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/prospermen/Belief-life/models"
)

// StatsService 各模块的独立统计，供客户端数据可视化页面使用
type StatsService struct {
	store    RecordStore
	insights *InsightService
}

func NewStatsService(store RecordStore, insights *InsightService) *StatsService {
	return &StatsService{store: store, insights: insights}
}

// EmotionStats 情绪统计，周期无法识别时按周处理
func (s *StatsService) EmotionStats(ctx context.Context, userID, period string, now time.Time) (*models.EmotionStats, error) {
	var days int
	switch period {
	case "week":
		days = 7
	case "month":
		days = 30
	case "year":
		days = 365
	default:
		days = 7
	}
	start, end := now.AddDate(0, 0, -days), now

	logs, err := s.store.EmotionLogs(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("获取情绪记录失败: %w", err)
	}

	distribution := make(map[string]int)
	var intensitySum float64
	var allTags []string
	for _, log := range logs {
		distribution[log.EmotionType]++
		intensitySum += float64(log.Intensity)
		allTags = append(allTags, log.GetTags()...)
	}

	var avgIntensity float64
	if len(logs) > 0 {
		avgIntensity = round1(intensitySum / float64(len(logs)))
	}

	return &models.EmotionStats{
		EmotionDistribution: distribution,
		AverageIntensity:    avgIntensity,
		TotalEntries:        len(logs),
		MostCommonTags:      topByCount(allTags, 5),
		Period:              period,
		StartDate:           start,
		EndDate:             end,
	}, nil
}

// CBTStats CBT统计，周期无法识别时按月处理
// 与洞察报告不同，这里的改善百分比不做0-100截断，保留原始值
func (s *StatsService) CBTStats(ctx context.Context, userID, period string, now time.Time) (*models.CBTStats, error) {
	start, end := ResolveWindow(period, now)

	thoughts, err := s.store.CBTThoughts(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("获取CBT思维记录失败: %w", err)
	}

	var improvementSum float64
	improvementCount := 0
	var distortions []string
	distribution := make(map[string]int)
	for _, t := range thoughts {
		if imp, ok := t.Improvement(); ok {
			improvementSum += float64(imp)
			improvementCount++
		}
		if t.CognitiveDistortion != "" {
			distortions = append(distortions, t.CognitiveDistortion)
		}
		distribution[t.Emotion]++
	}

	var avgImprovement, improvementPct float64
	if improvementCount > 0 {
		avgImprovement = improvementSum / float64(improvementCount)
		improvementPct = avgImprovement / 10 * 100
	}

	return &models.CBTStats{
		TotalRecords:          len(thoughts),
		AverageImprovement:    round1(avgImprovement),
		ImprovementPercentage: round1(improvementPct),
		MostCommonDistortion:  mostFrequent(distortions),
		EmotionDistribution:   distribution,
		Period:                period,
		StartDate:             start,
		EndDate:               end,
	}, nil
}

// ACTStats 价值观对齐统计加行动计划统计
func (s *StatsService) ACTStats(ctx context.Context, userID string, now time.Time) (*models.ACTStats, error) {
	values, err := s.store.ACTValues(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取价值观记录失败: %w", err)
	}
	actions, err := s.store.ACTActions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取行动计划失败: %w", err)
	}

	alignment := s.insights.AnalyzeACTAlignment(values)

	loc := s.insights.opts.Location
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	weekAhead := today.AddDate(0, 0, 7)

	completed := 0
	upcoming := 0
	overdue := 0
	for _, action := range actions {
		if action.Completed {
			completed++
			continue
		}
		if action.TargetDate == nil {
			continue
		}
		target := *action.TargetDate
		if target.Before(today) {
			overdue++
		} else if !target.After(weekAhead) {
			upcoming++
		}
	}

	var completionRate float64
	if len(actions) > 0 {
		completionRate = round1(float64(completed) / float64(len(actions)) * 100)
	}

	return &models.ACTStats{
		OverallAlignmentScore: alignment.OverallScore,
		TotalValues:           alignment.TotalValues,
		MostAlignedValue:      alignment.MostAlignedValue,
		LeastAlignedValue:     alignment.LeastAlignedValue,
		BiggestGapValue:       alignment.BiggestGapValue,
		TotalActions:          len(actions),
		CompletedActions:      completed,
		CompletionRate:        completionRate,
		UpcomingActions:       upcoming,
		OverdueActions:        overdue,
	}, nil
}

// ExerciseStats 练习统计，覆盖全部历史
func (s *StatsService) ExerciseStats(ctx context.Context, userID string) (*models.ExerciseStats, error) {
	sessions, err := s.store.ExerciseSessions(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("获取练习记录失败: %w", err)
	}

	completed := 0
	durationSeconds := 0
	for _, session := range sessions {
		if session.Completed {
			completed++
		}
		if session.DurationCompleted != nil {
			durationSeconds += *session.DurationCompleted
		}
	}

	var completionRate float64
	if len(sessions) > 0 {
		completionRate = round1(float64(completed) / float64(len(sessions)) * 100)
	}

	favorite, err := s.store.FavoriteExerciseCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取练习分类统计失败: %w", err)
	}

	return &models.ExerciseStats{
		TotalSessions:        len(sessions),
		CompletedSessions:    completed,
		CompletionRate:       completionRate,
		TotalDurationMinutes: round1(float64(durationSeconds) / 60),
		FavoriteCategory:     favorite,
	}, nil
}

// SOSStats SOS使用统计，周期无法识别时按月处理
func (s *StatsService) SOSStats(ctx context.Context, userID, period string, now time.Time) (*models.SOSStats, error) {
	start, end := ResolveWindow(period, now)

	sessions, err := s.store.SOSSessions(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("获取SOS记录失败: %w", err)
	}

	typeDistribution := make(map[string]int)
	var techniques []string
	var ratingSum float64
	ratingCount := 0
	durationSeconds := 0
	for _, session := range sessions {
		typeDistribution[session.SessionType]++
		techniques = append(techniques, session.TechniqueUsed)
		if session.EffectivenessRating != nil {
			ratingSum += float64(*session.EffectivenessRating)
			ratingCount++
		}
		if session.Duration != nil {
			durationSeconds += *session.Duration
		}
	}

	var avgEffectiveness float64
	if ratingCount > 0 {
		avgEffectiveness = round1(ratingSum / float64(ratingCount))
	}

	mostUsed := make([]models.TechniqueCount, 0)
	for _, technique := range topByCount(techniques, 5) {
		count := 0
		for _, t := range techniques {
			if t == technique {
				count++
			}
		}
		mostUsed = append(mostUsed, models.TechniqueCount{Technique: technique, Count: count})
	}

	return &models.SOSStats{
		TotalSessions:        len(sessions),
		TypeDistribution:     typeDistribution,
		MostUsedTechniques:   mostUsed,
		AverageEffectiveness: avgEffectiveness,
		TotalDurationMinutes: round1(float64(durationSeconds) / 60),
		Period:               period,
		StartDate:            start,
		EndDate:              end,
	}, nil
}

// RecommendTechniques 基于用户历史有效性评分推荐SOS技巧
// 没用过或很少用的技巧有新鲜感加分，分数封顶5.0，返回前8个
func (s *StatsService) RecommendTechniques(ctx context.Context, userID string) ([]models.TechniqueRecommendation, error) {
	sessions, err := s.store.SOSSessions(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("获取SOS记录失败: %w", err)
	}

	ratingSums := make(map[string]float64)
	ratingCounts := make(map[string]int)
	usage := make(map[string]int)
	for _, session := range sessions {
		usage[session.TechniqueUsed]++
		if session.EffectivenessRating != nil {
			ratingSums[session.TechniqueUsed] += float64(*session.EffectivenessRating)
			ratingCounts[session.TechniqueUsed]++
		}
	}

	recommendations := make([]models.TechniqueRecommendation, 0)
	for _, entry := range TechniqueCatalog() {
		// 没有评分的技巧按默认3.0分计算
		score := 3.0
		if ratingCounts[entry.Technique] > 0 {
			score = ratingSums[entry.Technique] / float64(ratingCounts[entry.Technique])
		}
		noveltyBonus := math.Max(0, float64(3-usage[entry.Technique])) * 0.2
		finalScore := math.Min(5.0, score+noveltyBonus)

		recommendations = append(recommendations, models.TechniqueRecommendation{
			Type:               entry.Type,
			Technique:          entry.Technique,
			Description:        entry.Description,
			EstimatedDuration:  entry.EstimatedDuration,
			Instructions:       entry.Instructions,
			EffectivenessScore: round1(finalScore),
			UsageCount:         usage[entry.Technique],
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].EffectivenessScore > recommendations[j].EffectivenessScore
	})
	if len(recommendations) > 8 {
		recommendations = recommendations[:8]
	}
	return recommendations, nil
}

// topByCount 出现次数最多的前n个标签，按次数降序，并列时保持先出现的在前
func topByCount(labels []string, n int) []string {
	counts := make(map[string]int, len(labels))
	order := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}
