package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/prospermen/Belief-life/models"
)

// InsightOptions 分析用的时区和本地化标签
// 星期和时段名称可配置，默认与客户端展示一致
type InsightOptions struct {
	Location      *time.Location
	WeekdayNames  [7]string // 周一..周日
	MorningName   string    // [6,12)
	AfternoonName string    // [12,18)
	EveningName   string    // 其余时段
}

func DefaultInsightOptions() InsightOptions {
	return InsightOptions{
		Location:      time.UTC,
		WeekdayNames:  [7]string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"},
		MorningName:   "早晨",
		AfternoonName: "下午",
		EveningName:   "晚上",
	}
}

// InsightService 洞察分析服务
// 各Analyze方法都是纯函数：相同输入必然产生相同输出，可安全并发调用
type InsightService struct {
	store RecordStore
	opts  InsightOptions
}

func NewInsightService(store RecordStore, opts InsightOptions) *InsightService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &InsightService{store: store, opts: opts}
}

// ResolveWindow 根据周期标识计算时间窗口，无法识别的周期按月处理
func ResolveWindow(period string, now time.Time) (time.Time, time.Time) {
	var days int
	switch period {
	case "week":
		days = 7
	case "month":
		days = 30
	case "year":
		days = 365
	default:
		days = 30
	}
	return now.AddDate(0, 0, -days), now
}

// AnalyzeEmotionPatterns 分析情绪模式
// 并列的峰值/低谷日全部返回，按周一到周日的顺序排列
func (s *InsightService) AnalyzeEmotionPatterns(logs []models.EmotionLog) models.EmotionPatterns {
	if len(logs) == 0 {
		return models.EmotionPatterns{
			WeeklyTrend:    "暂无足够数据进行分析",
			PeakDays:       []string{},
			LowDays:        []string{},
			IntensityTrend: models.TrendStable,
		}
	}

	// 按星期几分桶计算平均强度
	var sums [7]float64
	var counts [7]int
	var total float64
	for _, log := range logs {
		idx := mondayIndex(log.CreatedAt.In(s.opts.Location).Weekday())
		sums[idx] += float64(log.Intensity)
		counts[idx]++
		total += float64(log.Intensity)
	}

	maxMean := math.Inf(-1)
	minMean := math.Inf(1)
	for i := 0; i < 7; i++ {
		if counts[i] == 0 {
			continue
		}
		mean := sums[i] / float64(counts[i])
		if mean > maxMean {
			maxMean = mean
		}
		if mean < minMean {
			minMean = mean
		}
	}

	peakDays := []string{}
	lowDays := []string{}
	for i := 0; i < 7; i++ {
		if counts[i] == 0 {
			continue
		}
		mean := sums[i] / float64(counts[i])
		if mean == maxMean {
			peakDays = append(peakDays, s.opts.WeekdayNames[i])
		}
		if mean == minMean {
			lowDays = append(lowDays, s.opts.WeekdayNames[i])
		}
	}

	// 主导情绪：出现次数最多的标签，并列时取先出现的
	labels := make([]string, len(logs))
	for i, log := range logs {
		labels[i] = log.EmotionType
	}
	dominant := mostFrequent(labels)

	// 强度趋势：少于3条记录视为stable
	trend := models.TrendStable
	if len(logs) >= 3 {
		sorted := make([]models.EmotionLog, len(logs))
		copy(sorted, logs)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})

		// 前后各取1/3，长度不是3的倍数时中间记录不参与比较
		k := len(sorted) / 3
		var firstSum, lastSum float64
		for _, log := range sorted[:k] {
			firstSum += float64(log.Intensity)
		}
		for _, log := range sorted[len(sorted)-k:] {
			lastSum += float64(log.Intensity)
		}
		trend = compareTrend(firstSum/float64(k), lastSum/float64(k))
	}

	var desc string
	switch trend {
	case models.TrendImproving:
		desc = "情绪整体呈上升趋势"
	case models.TrendDeclining:
		desc = "情绪有所下降，建议关注"
	default:
		desc = "情绪保持相对稳定"
	}

	avg := round1(total / float64(len(logs)))
	return models.EmotionPatterns{
		WeeklyTrend:      desc,
		PeakDays:         peakDays,
		LowDays:          lowDays,
		DominantEmotion:  dominant,
		IntensityTrend:   trend,
		AverageIntensity: &avg,
	}
}

// AnalyzeCBTProgress 分析CBT进展
// 改善值只统计完成了重构步骤的记录，认知扭曲统计覆盖全部记录
func (s *InsightService) AnalyzeCBTProgress(thoughts []models.CBTThought) models.CBTProgress {
	if len(thoughts) == 0 {
		return models.CBTProgress{ProgressTrend: models.TrendNoData}
	}

	var withImprovement []models.CBTThought
	var totalImprovement float64
	for _, t := range thoughts {
		if imp, ok := t.Improvement(); ok {
			withImprovement = append(withImprovement, t)
			totalImprovement += float64(imp)
		}
	}

	var avgImprovement, improvementPct float64
	if len(withImprovement) > 0 {
		avgImprovement = totalImprovement / float64(len(withImprovement))
		improvementPct = math.Min(100, math.Max(0, avgImprovement/10*100))
	}

	var distortions []string
	for _, t := range thoughts {
		if t.CognitiveDistortion != "" {
			distortions = append(distortions, t.CognitiveDistortion)
		}
	}
	mostCommon := mostFrequent(distortions)

	// 进展趋势只看有改善数据的记录，少于3条视为stable
	trend := models.TrendStable
	if len(withImprovement) >= 3 {
		sorted := make([]models.CBTThought, len(withImprovement))
		copy(sorted, withImprovement)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})

		// 前后各一半，奇数条时后一半多一条
		half := len(sorted) / 2
		trend = compareTrend(meanImprovement(sorted[:half]), meanImprovement(sorted[half:]))
	}

	return models.CBTProgress{
		ThoughtChallengingImprovement: round1(improvementPct),
		MostCommonDistortion:          mostCommon,
		AverageImprovement:            round1(avgImprovement),
		ProgressTrend:                 trend,
		TotalRecords:                  len(thoughts),
	}
}

// AnalyzeACTAlignment 分析价值观对齐情况（不按时间窗口，覆盖全部历史）
// 并列时取先出现的条目
func (s *InsightService) AnalyzeACTAlignment(values []models.ACTValue) models.ACTAlignment {
	if len(values) == 0 {
		return models.ACTAlignment{}
	}

	var totalImportance, weightedAlignment float64
	for _, v := range values {
		totalImportance += float64(v.ImportanceRating)
		weightedAlignment += float64(v.CurrentAlignment) * float64(v.ImportanceRating)
	}
	var overall float64
	if totalImportance > 0 {
		overall = weightedAlignment / totalImportance
	}

	most := values[0]
	least := values[0]
	biggestGap := values[0]
	for _, v := range values[1:] {
		if v.CurrentAlignment > most.CurrentAlignment {
			most = v
		}
		if v.CurrentAlignment < least.CurrentAlignment {
			least = v
		}
		if v.AlignmentGap() > biggestGap.AlignmentGap() {
			biggestGap = v
		}
	}

	return models.ACTAlignment{
		OverallScore:      round1(overall),
		MostAlignedValue:  &most.ValueCategory,
		LeastAlignedValue: &least.ValueCategory,
		BiggestGapValue:   &biggestGap.ValueCategory,
		TotalValues:       len(values),
	}
}

// AnalyzeExerciseHabits 分析练习习惯
func (s *InsightService) AnalyzeExerciseHabits(sessions []models.ExerciseSession, start, end time.Time) models.ExerciseHabits {
	if len(sessions) == 0 {
		return models.ExerciseHabits{}
	}

	completed := 0
	buckets := make([]string, len(sessions))
	for i, session := range sessions {
		if session.Completed {
			completed++
		}
		buckets[i] = s.timeOfDay(session.CreatedAt)
	}
	completionRate := round1(float64(completed) / float64(len(sessions)) * 100)
	preferred := mostFrequent(buckets)

	// 每天一次练习为满分
	var consistency float64
	days := daysInWindow(start, end)
	if days > 0 {
		consistency = round1(math.Min(100, float64(len(sessions))/float64(days)*100))
	}

	return models.ExerciseHabits{
		ConsistencyScore: consistency,
		PreferredTime:    preferred,
		CompletionRate:   completionRate,
		TotalSessions:    len(sessions),
	}
}

// AnalyzeSOSUsage 分析SOS使用情况
// 未评分的会话不参与有效性计算，而不是按0分处理
func (s *InsightService) AnalyzeSOSUsage(sessions []models.SOSSession, start, end time.Time) models.SOSUsage {
	if len(sessions) == 0 {
		return models.SOSUsage{}
	}

	days := daysInWindow(start, end)
	if days < 1 {
		days = 1
	}
	frequency := round2(float64(len(sessions)) / float64(days))

	// 各技巧的平均有效性，只统计有评分的会话，并列时取先出现的技巧
	ratingSums := make(map[string]float64)
	ratingCounts := make(map[string]int)
	var techniqueOrder []string
	var allRatingSum float64
	allRatingCount := 0
	types := make([]string, len(sessions))
	for i, session := range sessions {
		types[i] = session.SessionType
		if session.EffectivenessRating == nil {
			continue
		}
		rating := float64(*session.EffectivenessRating)
		if _, seen := ratingCounts[session.TechniqueUsed]; !seen {
			techniqueOrder = append(techniqueOrder, session.TechniqueUsed)
		}
		ratingSums[session.TechniqueUsed] += rating
		ratingCounts[session.TechniqueUsed]++
		allRatingSum += rating
		allRatingCount++
	}

	var mostEffective *string
	bestMean := 0.0
	for _, technique := range techniqueOrder {
		mean := ratingSums[technique] / float64(ratingCounts[technique])
		if mostEffective == nil || mean > bestMean {
			name := technique
			mostEffective = &name
			bestMean = mean
		}
	}

	preferredType := mostFrequent(types)

	var avgEffectiveness float64
	if allRatingCount > 0 {
		avgEffectiveness = round1(allRatingSum / float64(allRatingCount))
	}

	return models.SOSUsage{
		UsageFrequency:         frequency,
		MostEffectiveTechnique: mostEffective,
		PreferredType:          preferredType,
		AverageEffectiveness:   avgEffectiveness,
	}
}

// GenerateRecommendations 根据各项分析结果生成个性化推荐
// 按固定规则顺序追加，最多返回5条；没有规则命中时返回通用建议
func (s *InsightService) GenerateRecommendations(
	emotions models.EmotionPatterns,
	cbt models.CBTProgress,
	act models.ACTAlignment,
	exercise models.ExerciseHabits,
	sos models.SOSUsage,
) []string {
	var recommendations []string

	if len(emotions.LowDays) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("建议在%s增加正念练习或SOS技巧使用", strings.Join(emotions.LowDays, ", ")))
	}
	if emotions.IntensityTrend == models.TrendDeclining {
		recommendations = append(recommendations, "最近情绪有所下降，建议增加CBT思维记录练习")
	}
	if cbt.MostCommonDistortion != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("继续练习挑战'%s'类型的思维模式", *cbt.MostCommonDistortion))
	}
	if cbt.ThoughtChallengingImprovement < 30 {
		recommendations = append(recommendations, "建议更多地练习寻找反驳证据和平衡思维")
	}
	if act.BiggestGapValue != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("考虑为'%s'价值观制定更多具体行动计划", *act.BiggestGapValue))
	}
	if exercise.CompletionRate < 70 {
		recommendations = append(recommendations, "建议选择更短时长的练习来提高完成率")
	}
	if exercise.ConsistencyScore < 50 {
		recommendations = append(recommendations, "建议建立固定的练习时间来提高一致性")
	}
	if sos.MostEffectiveTechnique != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("'%s'对您很有效，可以多加练习", *sos.MostEffectiveTechnique))
	}

	if len(recommendations) == 0 {
		return []string{
			"保持当前的良好状态，继续记录情绪和练习",
			"尝试探索新的正念练习技巧",
			"定期回顾和更新您的价值观和行动计划",
		}
	}
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}

// BuildReport 构建一个用户一个时间窗口的综合洞察报告
// now由调用方传入，相同输入和相同now必然产生相同报告
func (s *InsightService) BuildReport(ctx context.Context, userID, period string, now time.Time) (*models.InsightReport, error) {
	start, end := ResolveWindow(period, now)

	logs, err := s.store.EmotionLogs(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("获取情绪记录失败: %w", err)
	}
	thoughts, err := s.store.CBTThoughts(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("获取CBT思维记录失败: %w", err)
	}
	values, err := s.store.ACTValues(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取价值观记录失败: %w", err)
	}
	exerciseSessions, err := s.store.ExerciseSessions(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("获取练习记录失败: %w", err)
	}
	sosSessions, err := s.store.SOSSessions(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("获取SOS记录失败: %w", err)
	}

	emotions := s.AnalyzeEmotionPatterns(logs)
	cbt := s.AnalyzeCBTProgress(thoughts)
	act := s.AnalyzeACTAlignment(values)
	exercise := s.AnalyzeExerciseHabits(exerciseSessions, start, end)
	sos := s.AnalyzeSOSUsage(sosSessions, start, end)

	return &models.InsightReport{
		EmotionPatterns: emotions,
		CBTProgress:     cbt,
		ACTAlignment:    act,
		ExerciseHabits:  exercise,
		SOSUsage:        sos,
		Recommendations: s.GenerateRecommendations(emotions, cbt, act, exercise, sos),
		Period:          period,
		StartDate:       start,
		EndDate:         end,
	}, nil
}

// timeOfDay 将本地小时映射到时段标签
func (s *InsightService) timeOfDay(t time.Time) string {
	hour := t.In(s.opts.Location).Hour()
	switch {
	case hour >= 6 && hour < 12:
		return s.opts.MorningName
	case hour >= 12 && hour < 18:
		return s.opts.AfternoonName
	default:
		return s.opts.EveningName
	}
}

// mondayIndex 把time.Weekday转成周一为0的下标
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// mostFrequent 出现次数最多的标签，并列时取输入中先出现的；空输入返回nil
func mostFrequent(labels []string) *string {
	if len(labels) == 0 {
		return nil
	}
	counts := make(map[string]int, len(labels))
	var order []string
	for _, label := range labels {
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}
	best := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return &best
}

// compareTrend 按±0.5阈值比较前后两段的均值
func compareTrend(first, last float64) string {
	switch {
	case last > first+0.5:
		return models.TrendImproving
	case last < first-0.5:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

func meanImprovement(thoughts []models.CBTThought) float64 {
	var sum float64
	for _, t := range thoughts {
		if imp, ok := t.Improvement(); ok {
			sum += float64(imp)
		}
	}
	return sum / float64(len(thoughts))
}

// daysInWindow 窗口覆盖的整天数
func daysInWindow(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
