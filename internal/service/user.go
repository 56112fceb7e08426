package service

import (
	"errors"

	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/repository"
)

const profileRecentEntries = 5

// Profile is everything the dashboard shows about a user.
type Profile struct {
	User           *model.User           `json:"user"`
	MBTIProfile    *model.MBTIProfile    `json:"mbti_profile"`
	RecentEntries  []*model.JournalEntry `json:"recent_entries"`
	ActiveHabits   []*model.Habit        `json:"active_habits"`
	HabitStats     model.HabitStats      `json:"habit_stats"`
	HasMBTIProfile bool                  `json:"has_mbti_profile"`
}

type UserService struct {
	userRepository repository.UserRepository
	mbtiRepository repository.MBTIRepository
	habitService   *HabitService
	journalService *JournalService
}

func NewUserService(
	userRepository repository.UserRepository,
	mbtiRepository repository.MBTIRepository,
	habitService *HabitService,
	journalService *JournalService,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		mbtiRepository: mbtiRepository,
		habitService:   habitService,
		journalService: journalService,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

// Profile aggregates the user, their MBTI profile (nil before the quiz), recent
// journal entries and active habits.
func (s *UserService) Profile(userID string) (*Profile, error) {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return nil, err
	}

	mbtiProfile, err := s.mbtiRepository.ByUserID(userID)
	if err != nil && !errors.Is(err, repository.ErrMBTIProfileNotFound) {
		return nil, err
	}

	entries, err := s.journalService.Recent(userID, profileRecentEntries)
	if err != nil {
		return nil, err
	}

	active := true
	habits, err := s.habitService.Habits(userID, &active)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:           user,
		MBTIProfile:    mbtiProfile,
		RecentEntries:  entries,
		ActiveHabits:   habits,
		HabitStats:     model.StatsOf(habits),
		HasMBTIProfile: mbtiProfile != nil,
	}, nil
}
