package services

import (
	"context"
	"time"

	"github.com/prospermen/Belief-life/models"
	"gorm.io/gorm"
)

// RecordStore 只读数据访问边界
// 所有查询按用户过滤、按创建时间升序返回，时间窗口为左闭右开[start, end)
// 价值观和行动计划不做时间过滤，始终返回全部历史
type RecordStore interface {
	EmotionLogs(ctx context.Context, userID string, start, end time.Time) ([]models.EmotionLog, error)
	CBTThoughts(ctx context.Context, userID string, start, end time.Time) ([]models.CBTThought, error)
	ACTValues(ctx context.Context, userID string) ([]models.ACTValue, error)
	ACTActions(ctx context.Context, userID string) ([]models.ACTAction, error)
	ExerciseSessions(ctx context.Context, userID string, start, end time.Time) ([]models.ExerciseSession, error)
	SOSSessions(ctx context.Context, userID string, start, end time.Time) ([]models.SOSSession, error)
	FavoriteExerciseCategory(ctx context.Context, userID string) (*string, error)
}

// GormRecordStore 基于gorm的RecordStore实现
type GormRecordStore struct {
	db *gorm.DB
}

func NewGormRecordStore(db *gorm.DB) *GormRecordStore {
	return &GormRecordStore{db: db}
}

// windowed 构建按用户和时间窗口过滤的查询，start/end为零值时不加时间条件
func (s *GormRecordStore) windowed(ctx context.Context, userID string, start, end time.Time) *gorm.DB {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !start.IsZero() && !end.IsZero() {
		query = query.Where("created_at >= ? AND created_at < ?", start, end)
	}
	return query.Order("created_at asc")
}

func (s *GormRecordStore) EmotionLogs(ctx context.Context, userID string, start, end time.Time) ([]models.EmotionLog, error) {
	var logs []models.EmotionLog
	if err := s.windowed(ctx, userID, start, end).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *GormRecordStore) CBTThoughts(ctx context.Context, userID string, start, end time.Time) ([]models.CBTThought, error) {
	var thoughts []models.CBTThought
	if err := s.windowed(ctx, userID, start, end).Find(&thoughts).Error; err != nil {
		return nil, err
	}
	return thoughts, nil
}

func (s *GormRecordStore) ACTValues(ctx context.Context, userID string) ([]models.ACTValue, error) {
	var values []models.ACTValue
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at asc").Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (s *GormRecordStore) ACTActions(ctx context.Context, userID string) ([]models.ACTAction, error) {
	var actions []models.ACTAction
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at asc").Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

func (s *GormRecordStore) ExerciseSessions(ctx context.Context, userID string, start, end time.Time) ([]models.ExerciseSession, error) {
	var sessions []models.ExerciseSession
	if err := s.windowed(ctx, userID, start, end).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *GormRecordStore) SOSSessions(ctx context.Context, userID string, start, end time.Time) ([]models.SOSSession, error) {
	var sessions []models.SOSSession
	if err := s.windowed(ctx, userID, start, end).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// FavoriteExerciseCategory 练习次数最多的练习分类，没有练习记录时返回nil
func (s *GormRecordStore) FavoriteExerciseCategory(ctx context.Context, userID string) (*string, error) {
	var category string
	err := s.db.WithContext(ctx).
		Table("exercise_sessions").
		Select("guided_exercises.category").
		Joins("JOIN guided_exercises ON guided_exercises.id = exercise_sessions.exercise_id").
		Where("exercise_sessions.user_id = ?", userID).
		Group("guided_exercises.category").
		Order("COUNT(exercise_sessions.id) DESC").
		Limit(1).
		Scan(&category).Error
	if err != nil {
		return nil, err
	}
	if category == "" {
		return nil, nil
	}
	return &category, nil
}
