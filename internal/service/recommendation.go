package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/cache"
	"github.com/thrivelog/thrivelog/internal/fallback"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/service/ai"
	"github.com/thrivelog/thrivelog/internal/validation"
)

const (
	suggestionCount = 3
	themeEntries    = 3
	themeLength     = 100
)

// RecommendationContext is the user state recommendations were built from.
type RecommendationContext struct {
	MBTIType   string           `json:"mbti_type"`
	Confidence int              `json:"confidence"`
	RecentMood string           `json:"recent_mood"`
	HabitStats model.HabitStats `json:"habit_stats"`
}

type RecommendationResult struct {
	Recommendations model.Recommendations `json:"recommendations"`
	Context         RecommendationContext `json:"context"`
	Source          string                `json:"source"`
	Note            string                `json:"note,omitempty"`
}

type InsightsResult struct {
	MBTIType string         `json:"mbti_type"`
	Insights model.Insights `json:"insights"`
	Source   string         `json:"source"`
	Cached   bool           `json:"cached"`
	Note     string         `json:"note,omitempty"`
}

type RecommendationService struct {
	mbtiRepo    repository.MBTIRepository
	habitRepo   repository.HabitRepository
	journalRepo repository.JournalRepository
	provider    ai.Provider
	cache       cache.Cache
	cacheTTL    time.Duration
}

func NewRecommendationService(
	mbtiRepo repository.MBTIRepository,
	habitRepo repository.HabitRepository,
	journalRepo repository.JournalRepository,
	provider ai.Provider,
	insightsCache cache.Cache,
	cacheTTL time.Duration,
) *RecommendationService {
	return &RecommendationService{
		mbtiRepo:    mbtiRepo,
		habitRepo:   habitRepo,
		journalRepo: journalRepo,
		provider:    provider,
		cache:       insightsCache,
		cacheTTL:    cacheTTL,
	}
}

// Recommendations suggests habits and careers for the user's MBTI type, mood and
// habit record. Without a stored MBTI profile it fails with NotFound; when the
// provider fails it returns the static bundle for the type with a note.
func (s *RecommendationService) Recommendations(ctx context.Context, userID string) (*RecommendationResult, error) {
	profile, err := s.mbtiRepo.ByUserID(userID)
	if err != nil {
		return nil, err
	}

	active := true
	habits, err := s.habitRepo.Habits(userID, &active)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	entries, err := s.journalRepo.Entries(userID, model.JournalFilter{Limit: themeEntries})
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}

	result := &RecommendationResult{
		Context: RecommendationContext{
			MBTIType:   profile.MBTIType,
			Confidence: profile.Confidence,
			RecentMood: recentMood(entries),
			HabitStats: model.StatsOf(habits),
		},
	}

	var raw rawRecommendations
	err = s.provider.GenerateJSON(ctx, recommendationPrompt(result.Context, habits, entries), &raw)
	if err == nil {
		result.Recommendations, err = sanitizeRecommendations(raw)
	}
	if err != nil {
		reason := ai.Classify(err)
		slog.Warn("ai recommendations failed, using fallback", "error", err, "reason", reason, "user_id", userID)
		result.Recommendations = fallback.Recommendations(profile.MBTIType)
		result.Source = model.SourceFallback
		result.Note = ai.Note(reason)
		return result, nil
	}

	result.Source = model.SourceAI
	return result, nil
}

// Insights describes an MBTI type. Successful provider answers are cached per
// type; failures fall back to the static insights with a note.
func (s *RecommendationService) Insights(ctx context.Context, mbtiType string) (*InsightsResult, error) {
	mbtiType = strings.ToUpper(strings.TrimSpace(mbtiType))
	if mbtiType == "" {
		return nil, apperr.New(apperr.ErrInvalidArgument, "MBTI type is required")
	}
	if err := validation.ValidateType(mbtiType); err != nil {
		return nil, err
	}

	key := "insights:" + mbtiType
	result := &InsightsResult{MBTIType: mbtiType}

	hit, err := s.cache.Get(ctx, key, &result.Insights)
	if err != nil {
		slog.Warn("insights cache read failed", "error", err, "mbti_type", mbtiType)
	}
	if hit {
		result.Source = model.SourceAI
		result.Cached = true
		return result, nil
	}

	var raw rawInsights
	err = s.provider.GenerateJSON(ctx, insightsPrompt(mbtiType), &raw)
	if err == nil {
		result.Insights, err = sanitizeInsights(raw)
	}
	if err != nil {
		reason := ai.Classify(err)
		slog.Warn("ai insights failed, using fallback", "error", err, "reason", reason, "mbti_type", mbtiType)
		result.Insights = fallback.Insights(mbtiType)
		result.Source = model.SourceFallback
		result.Note = ai.InsightsNote(reason)
		return result, nil
	}

	if err := s.cache.Set(ctx, key, result.Insights, s.cacheTTL); err != nil {
		slog.Warn("insights cache write failed", "error", err, "mbti_type", mbtiType)
	}

	result.Source = model.SourceAI
	return result, nil
}

// recentMood is the sentiment of the latest entry, or neutral when it has none.
func recentMood(entries []*model.JournalEntry) string {
	if len(entries) > 0 && entries[0].Analysis != nil && entries[0].Analysis.Sentiment != "" {
		return entries[0].Analysis.Sentiment
	}
	return model.SentimentNeutral
}

func recommendationPrompt(rc RecommendationContext, habits []*model.Habit, entries []*model.JournalEntry) string {
	themes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Analysis != nil && entry.Analysis.Summary != "" {
			themes = append(themes, entry.Analysis.Summary)
			continue
		}
		themes = append(themes, truncate(entry.Content, themeLength))
	}

	current := make([]string, 0, len(habits))
	for _, h := range habits {
		current = append(current, fmt.Sprintf("%s (%d day streak)", h.Title, h.Streak))
	}

	return fmt.Sprintf(`Based on this user's MBTI personality type and current patterns, provide personalized recommendations.

User Context:
MBTI Type: %s (%d%% confidence)
Recent Mood: %s
Current Habits: %d active habits
Average Streak: %d days
Longest Streak: %d days
Recent Journal Themes: %s
Current Habits: %s

Please provide 3 specific habit recommendations and 3 career path suggestions that would be particularly well-suited for this personality type and current situation.

Focus on:
- Habits that align with their MBTI strengths
- Career paths that leverage their natural preferences
- Practical, actionable suggestions
- Consider their current mood and habit patterns

Return the response as JSON with this exact structure:
{
  "habits": [
    {
      "title": "Habit name",
      "description": "Why this habit would work well for this personality type",
      "category": "%s",
      "frequency": "%s",
      "goal": 1,
      "reasoning": "How it fits their type"
    }
  ],
  "careerPaths": [
    {
      "title": "Career path name",
      "description": "Why this career path aligns with their MBTI type",
      "skills": ["skill 1", "skill 2"],
      "growthPotential": "Outlook for this path",
      "workStyle": "Preferred work environment",
      "reasoning": "How it fits their type"
    }
  ]
}`,
		rc.MBTIType, rc.Confidence, rc.RecentMood, rc.HabitStats.TotalHabits,
		rc.HabitStats.AvgStreak, rc.HabitStats.LongestStreak,
		strings.Join(themes, "; "), strings.Join(current, ", "),
		strings.Join(model.HabitCategories, "|"), strings.Join(model.HabitFrequencies, "|"))
}

func insightsPrompt(mbtiType string) string {
	return fmt.Sprintf(`Provide personality insights for the MBTI type %s.

Return a JSON object with this exact structure:
{
  "careers": ["career 1", "career 2", "career 3"],
  "habits": ["habit 1", "habit 2", "habit 3"],
  "motivationTip": "One sentence on what motivates this type",
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "challenges": ["challenge 1", "challenge 2", "challenge 3"],
  "learningStyle": "One sentence on how this type learns best"
}`, mbtiType)
}

type rawRecommendations struct {
	Habits []struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Frequency   string  `json:"frequency"`
		Goal        float64 `json:"goal"`
		Reasoning   string  `json:"reasoning"`
	} `json:"habits"`
	CareerPaths []struct {
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		Skills          []string `json:"skills"`
		GrowthPotential string   `json:"growthPotential"`
		WorkStyle       string   `json:"workStyle"`
		Reasoning       string   `json:"reasoning"`
	} `json:"careerPaths"`
}

// sanitizeRecommendations keeps the first three titled habits and careers and
// maps categories and frequencies onto the habit enums.
func sanitizeRecommendations(raw rawRecommendations) (model.Recommendations, error) {
	out := model.Recommendations{
		Habits:      []model.HabitSuggestion{},
		CareerPaths: []model.CareerPath{},
	}

	for _, h := range raw.Habits {
		title := strings.TrimSpace(h.Title)
		if title == "" || len(out.Habits) == suggestionCount {
			continue
		}

		category := validation.NormalizeEnum(h.Category)
		if !model.IsHabitCategory(category) {
			category = model.HabitCategoryOther
		}
		frequency := validation.NormalizeEnum(h.Frequency)
		if !model.IsHabitFrequency(frequency) {
			frequency = model.HabitFrequencyDaily
		}

		out.Habits = append(out.Habits, model.HabitSuggestion{
			Title:       truncate(title, validation.MaxHabitTitle),
			Description: truncate(strings.TrimSpace(h.Description), validation.MaxHabitDescription),
			Category:    category,
			Frequency:   frequency,
			Goal:        max(1, int(h.Goal)),
			Reasoning:   strings.TrimSpace(h.Reasoning),
		})
	}

	for _, c := range raw.CareerPaths {
		title := strings.TrimSpace(c.Title)
		if title == "" || len(out.CareerPaths) == suggestionCount {
			continue
		}
		out.CareerPaths = append(out.CareerPaths, model.CareerPath{
			Title:           title,
			Description:     strings.TrimSpace(c.Description),
			Skills:          cleanList(c.Skills, 10, 100),
			GrowthPotential: strings.TrimSpace(c.GrowthPotential),
			WorkStyle:       strings.TrimSpace(c.WorkStyle),
			Reasoning:       strings.TrimSpace(c.Reasoning),
		})
	}

	if len(out.Habits) < suggestionCount || len(out.CareerPaths) < suggestionCount {
		return model.Recommendations{}, fmt.Errorf("%w: expected %d habits and %d career paths, got %d and %d",
			ai.ErrInvalidResponse, suggestionCount, suggestionCount, len(out.Habits), len(out.CareerPaths))
	}

	return out, nil
}

type rawInsights struct {
	Careers       []string `json:"careers"`
	Habits        []string `json:"habits"`
	MotivationTip string   `json:"motivationTip"`
	Strengths     []string `json:"strengths"`
	Challenges    []string `json:"challenges"`
	LearningStyle string   `json:"learningStyle"`
}

func sanitizeInsights(raw rawInsights) (model.Insights, error) {
	out := model.Insights{
		Careers:       cleanList(raw.Careers, 10, 200),
		Habits:        cleanList(raw.Habits, 10, 200),
		MotivationTip: truncate(strings.TrimSpace(raw.MotivationTip), 500),
		Strengths:     cleanList(raw.Strengths, 10, 200),
		Challenges:    cleanList(raw.Challenges, 10, 200),
		LearningStyle: truncate(strings.TrimSpace(raw.LearningStyle), 500),
	}

	if len(out.Careers) == 0 || len(out.Habits) == 0 || len(out.Strengths) == 0 {
		return model.Insights{}, fmt.Errorf("%w: incomplete insights", ai.ErrInvalidResponse)
	}

	return out, nil
}
