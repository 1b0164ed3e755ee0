package service

import (
	"context"

	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/repository"
)

type activityService struct {
	activity repository.ActivityRepo
}

func NewActivityService(activity repository.ActivityRepo) ActivityService {
	return &activityService{activity: activity}
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	return s.activity.ListRecent(ctx, limit)
}

func (s *activityService) Total(ctx context.Context) (int, error) {
	return s.activity.Count(ctx)
}
