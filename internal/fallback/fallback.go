// Package fallback holds the static recommendations and insights served when the
// AI provider is unavailable.
package fallback

import (
	"slices"
	"time"

	"github.com/thrivelog/thrivelog/internal/model"
)

// DefaultJournalPrompt is served when a prompt cannot be generated.
const DefaultJournalPrompt = "How are you feeling today? What would you like to reflect on?"

// Recommendations returns the static bundle for mbtiType, or the default bundle when
// the type is not one of the 16 canonical types. Lookup is exact and case-sensitive.
func Recommendations(mbtiType string) model.Recommendations {
	r, ok := recommendations[mbtiType]
	if !ok {
		r = defaultRecommendations
	}
	return cloneRecommendations(r)
}

// Insights returns the static insights for mbtiType, or the default insights.
func Insights(mbtiType string) model.Insights {
	in, ok := insights[mbtiType]
	if !ok {
		in = defaultInsights
	}
	return cloneInsights(in)
}

// JournalAnalysis is the neutral analysis recorded when an entry cannot be analysed.
func JournalAnalysis() model.JournalAnalysis {
	return model.JournalAnalysis{
		Sentiment:       model.SentimentNeutral,
		MotivationLevel: 3,
		Summary:         "Unable to analyze entry at this time.",
		Insights:        []string{"Consider reflecting on your day", "Focus on positive moments", "Practice gratitude"},
		MoodKeywords:    []string{"reflective", "neutral", "contemplative"},
		AnalyzedAt:      time.Now().UTC(),
	}
}

func JournalPrompt() string {
	return DefaultJournalPrompt
}

// HasType reports whether the table carries a type-specific bundle for mbtiType.
func HasType(mbtiType string) bool {
	_, ok := recommendations[mbtiType]
	return ok
}

func cloneRecommendations(r model.Recommendations) model.Recommendations {
	out := model.Recommendations{
		Habits:      slices.Clone(r.Habits),
		CareerPaths: make([]model.CareerPath, len(r.CareerPaths)),
	}
	for i, c := range r.CareerPaths {
		c.Skills = slices.Clone(c.Skills)
		out.CareerPaths[i] = c
	}
	return out
}

func cloneInsights(in model.Insights) model.Insights {
	in.Careers = slices.Clone(in.Careers)
	in.Habits = slices.Clone(in.Habits)
	in.Strengths = slices.Clone(in.Strengths)
	in.Challenges = slices.Clone(in.Challenges)
	return in
}
