package service

import (
	"fmt"
	"log/slog"

	"github.com/thrivelog/thrivelog/internal/mbti"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/validation"
)

type MBTIService struct {
	repo repository.MBTIRepository
}

func NewMBTIService(repo repository.MBTIRepository) *MBTIService {
	return &MBTIService{
		repo: repo,
	}
}

func (s *MBTIService) Questions() []mbti.Question {
	return mbti.Questions()
}

// Submit scores answers and replaces the user's stored profile with the result.
func (s *MBTIService) Submit(userID string, answers map[string]string) (*model.MBTIProfile, mbti.Result, error) {
	err := validation.ValidateAnswers(answers)
	if err != nil {
		return nil, mbti.Result{}, err
	}

	result := mbti.Score(answers)

	profile, err := s.repo.Upsert(&model.MBTIProfile{
		UserID:     userID,
		MBTIType:   result.Type,
		Confidence: result.Confidence,
		Answers:    model.Answers(answers),
	})
	if err != nil {
		return nil, mbti.Result{}, fmt.Errorf("failed to save mbti profile: %w", err)
	}

	slog.Info("mbti quiz submitted", "user_id", userID, "mbti_type", result.Type, "confidence", result.Confidence)
	return profile, result, nil
}

func (s *MBTIService) Profile(userID string) (*model.MBTIProfile, error) {
	return s.repo.ByUserID(userID)
}
