package services

import (
	"time"

	"symptomtracker/internal/models"
	"symptomtracker/internal/repository"
)

// DefaultTrendWindowDays is used when the caller does not give a window.
const DefaultTrendWindowDays = 30

type TrendPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type HomeSummary struct {
	Date                   string                `json:"date"`
	DisplayName            string                `json:"display_name"`
	HasLoggedPainToday     bool                  `json:"has_logged_pain_today"`
	HasLoggedWellnessToday bool                  `json:"has_logged_wellness_today"`
	LatestPainEntry        *models.PainEntry     `json:"latest_pain_entry"`
	LatestWellnessEntry    *models.WellnessEntry `json:"latest_wellness_entry"`
}

type InsightsService interface {
	HomeSummary(userID uint, now time.Time) (*HomeSummary, error)
	PainTrend(userID uint, windowDays int, now time.Time) ([]TrendPoint, error)
	WellnessTrend(userID uint, windowDays int, now time.Time) ([]TrendPoint, error)
}

type insightsService struct {
	userRepo     repository.UserRepository
	painRepo     repository.PainEntryRepository
	wellnessRepo repository.WellnessEntryRepository
}

func NewInsightsService(userRepo repository.UserRepository, painRepo repository.PainEntryRepository, wellnessRepo repository.WellnessEntryRepository) InsightsService {
	return &insightsService{
		userRepo:     userRepo,
		painRepo:     painRepo,
		wellnessRepo: wellnessRepo,
	}
}

// HomeSummary reports whether the user has logged pain and wellness entries
// today and hands back the most recent entry of each kind for display.
func (s *insightsService) HomeSummary(userID uint, now time.Time) (*HomeSummary, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	summary := &HomeSummary{
		Date:        now.Format("Monday, January 2, 2006"),
		DisplayName: user.DisplayName(),
	}

	painEntries, err := s.painRepo.FindByUserIDSince(userID, startOfDay)
	if err != nil {
		return nil, err
	}
	for i := range painEntries {
		entry := painEntries[i]
		if entry.Timestamp.Before(endOfDay) {
			summary.HasLoggedPainToday = true
			summary.LatestPainEntry = &entry
		}
	}

	wellnessEntries, err := s.wellnessRepo.FindByUserIDSince(userID, startOfDay)
	if err != nil {
		return nil, err
	}
	for i := range wellnessEntries {
		entry := wellnessEntries[i]
		if entry.Timestamp.Before(endOfDay) {
			summary.HasLoggedWellnessToday = true
			summary.LatestWellnessEntry = &entry
		}
	}

	return summary, nil
}

// PainTrend returns one point per entry within the window, in ascending
// timestamp order. Same-day entries are not averaged.
func (s *insightsService) PainTrend(userID uint, windowDays int, now time.Time) ([]TrendPoint, error) {
	if windowDays <= 0 {
		return nil, &ValidationError{Fields: map[string]string{"days": "Must be a positive integer."}}
	}
	entries, err := s.painRepo.FindByUserIDSince(userID, now.AddDate(0, 0, -windowDays))
	if err != nil {
		return nil, err
	}
	points := make([]TrendPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, TrendPoint{
			Label: entry.Timestamp.Format("2006-01-02"),
			Value: entry.PainLevel,
		})
	}
	return points, nil
}

func (s *insightsService) WellnessTrend(userID uint, windowDays int, now time.Time) ([]TrendPoint, error) {
	if windowDays <= 0 {
		return nil, &ValidationError{Fields: map[string]string{"days": "Must be a positive integer."}}
	}
	entries, err := s.wellnessRepo.FindByUserIDSince(userID, now.AddDate(0, 0, -windowDays))
	if err != nil {
		return nil, err
	}
	points := make([]TrendPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, TrendPoint{
			Label: entry.Timestamp.Format("2006-01-02"),
			Value: entry.WellnessLevel,
		})
	}
	return points, nil
}
