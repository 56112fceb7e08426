package mbti

import (
	"math"
	"strings"
)

// Trait is one of the eight MBTI preference letters.
type Trait string

const (
	Extraversion Trait = "E"
	Introversion Trait = "I"
	Sensing      Trait = "S"
	Intuition    Trait = "N"
	Thinking     Trait = "T"
	Feeling      Trait = "F"
	Judging      Trait = "J"
	Perceiving   Trait = "P"
)

// Dimension is one of the four opposed trait pairs.
type Dimension struct {
	Key    string
	First  Trait
	Second Trait
	// TieBreak is emitted when both letters were chosen equally often.
	TieBreak Trait
}

// Dimensions lists the pairs in type-letter order. Ties favour the second letter
// of each pair, so an empty quiz scores INFP.
var Dimensions = []Dimension{
	{Key: "EI", First: Extraversion, Second: Introversion, TieBreak: Introversion},
	{Key: "SN", First: Sensing, Second: Intuition, TieBreak: Intuition},
	{Key: "TF", First: Thinking, Second: Feeling, TieBreak: Feeling},
	{Key: "JP", First: Judging, Second: Perceiving, TieBreak: Perceiving},
}

// QuestionCount is the number of questions in the fixed quiz, one per dimension.
const QuestionCount = 4

// Types lists the 16 canonical types.
var Types = []string{
	"INTJ", "INTP", "ENTJ", "ENTP",
	"INFJ", "INFP", "ENFJ", "ENFP",
	"ISTJ", "ISFJ", "ESTJ", "ESFJ",
	"ISTP", "ISFP", "ESTP", "ESFP",
}

type Result struct {
	Type       string        `json:"mbti_type"`
	Confidence int           `json:"confidence"`
	Answered   int           `json:"answered"`
	Scores     map[Trait]int `json:"scores"`
}

// ParseTrait reports whether s is one of the eight trait letters.
func ParseTrait(s string) (Trait, bool) {
	t := Trait(s)
	for _, d := range Dimensions {
		if t == d.First || t == d.Second {
			return t, true
		}
	}
	return "", false
}

// Score tallies the trait letters in answers and derives the type. Values that are
// not trait letters are ignored and do not count as answered.
func Score(answers map[string]string) Result {
	scores := make(map[Trait]int, 8)
	for _, d := range Dimensions {
		scores[d.First] = 0
		scores[d.Second] = 0
	}

	answered := 0
	for _, v := range answers {
		t, ok := ParseTrait(v)
		if !ok {
			continue
		}
		scores[t]++
		answered++
	}

	var b strings.Builder
	for _, d := range Dimensions {
		switch {
		case scores[d.First] > scores[d.Second]:
			b.WriteString(string(d.First))
		case scores[d.Second] > scores[d.First]:
			b.WriteString(string(d.Second))
		default:
			b.WriteString(string(d.TieBreak))
		}
	}

	return Result{
		Type:       b.String(),
		Confidence: Confidence(answered),
		Answered:   answered,
		Scores:     scores,
	}
}

// Confidence is the share of quiz questions answered, as a percentage in [0,100].
func Confidence(answered int) int {
	c := int(math.Round(100 * float64(answered) / QuestionCount))
	return max(0, min(100, c))
}

// IsType reports whether s is one of the 16 canonical types.
func IsType(s string) bool {
	for _, t := range Types {
		if s == t {
			return true
		}
	}
	return false
}
