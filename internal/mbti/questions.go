package mbti

type Option struct {
	Text  string `json:"text"`
	Value Trait  `json:"value"`
}

type Question struct {
	ID        int    `json:"id"`
	Question  string `json:"question"`
	Dimension string `json:"dimension"`
	OptionA   Option `json:"option_a"`
	OptionB   Option `json:"option_b"`
}

var questions = []Question{
	{
		ID:        1,
		Question:  "How do you prefer to spend your free time?",
		Dimension: "EI",
		OptionA:   Option{Text: "Going out with friends and meeting new people", Value: Extraversion},
		OptionB:   Option{Text: "Staying home and enjoying quiet activities", Value: Introversion},
	},
	{
		ID:        2,
		Question:  "When making decisions, do you prefer to:",
		Dimension: "SN",
		OptionA:   Option{Text: "Focus on concrete facts and details", Value: Sensing},
		OptionB:   Option{Text: "Consider possibilities and future implications", Value: Intuition},
	},
	{
		ID:        3,
		Question:  "In conflicts, you tend to:",
		Dimension: "TF",
		OptionA:   Option{Text: "Analyze the situation logically and objectively", Value: Thinking},
		OptionB:   Option{Text: "Consider how people feel and maintain harmony", Value: Feeling},
	},
	{
		ID:        4,
		Question:  "You prefer to:",
		Dimension: "JP",
		OptionA:   Option{Text: "Plan ahead and stick to schedules", Value: Judging},
		OptionB:   Option{Text: "Keep options open and be spontaneous", Value: Perceiving},
	},
}

// Questions returns a copy of the quiz.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
