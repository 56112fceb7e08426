package model

type HabitSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Frequency   string `json:"frequency"`
	Goal        int    `json:"goal"`
	Reasoning   string `json:"reasoning"`
}

type CareerPath struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	GrowthPotential string   `json:"growth_potential"`
	WorkStyle       string   `json:"work_style"`
	Reasoning       string   `json:"reasoning"`
}

type Recommendations struct {
	Habits      []HabitSuggestion `json:"habits"`
	CareerPaths []CareerPath      `json:"career_paths"`
}

type Insights struct {
	Careers       []string `json:"careers"`
	Habits        []string `json:"habits"`
	MotivationTip string   `json:"motivation_tip"`
	Strengths     []string `json:"strengths"`
	Challenges    []string `json:"challenges"`
	LearningStyle string   `json:"learning_style"`
}

// Recommendation source values.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)
