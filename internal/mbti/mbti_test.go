package mbti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreFullQuiz(t *testing.T) {
	r := Score(map[string]string{"EI": "E", "SN": "S", "TF": "T", "JP": "J"})
	assert.Equal(t, "ESTJ", r.Type)
	assert.Equal(t, 100, r.Confidence)
	assert.Equal(t, 4, r.Answered)
	assert.Equal(t, 1, r.Scores[Extraversion])
	assert.Equal(t, 0, r.Scores[Introversion])
}

func TestScoreEmptyUsesTieBreaks(t *testing.T) {
	r := Score(map[string]string{})
	assert.Equal(t, "INFP", r.Type)
	assert.Equal(t, 0, r.Confidence)

	r = Score(nil)
	assert.Equal(t, "INFP", r.Type)
	assert.Len(t, r.Scores, 8)
}

func TestTieBreakTable(t *testing.T) {
	want := map[string]Trait{"EI": Introversion, "SN": Intuition, "TF": Feeling, "JP": Perceiving}
	for _, d := range Dimensions {
		assert.Equal(t, want[d.Key], d.TieBreak, d.Key)
	}

	r := Score(map[string]string{"q1": "E", "q2": "I", "q3": "T", "q4": "F"})
	assert.Equal(t, "INFP", r.Type)
	assert.Equal(t, 100, r.Confidence)
}

func TestScorePartialAnswers(t *testing.T) {
	r := Score(map[string]string{"EI": "E", "JP": "J"})
	assert.Equal(t, "ENFJ", r.Type)
	assert.Equal(t, 50, r.Confidence)

	r = Score(map[string]string{"EI": "E"})
	assert.Equal(t, 25, r.Confidence)

	r = Score(map[string]string{"EI": "E", "SN": "N", "TF": "T"})
	assert.Equal(t, 75, r.Confidence)
}

func TestScoreIgnoresUnknownLetters(t *testing.T) {
	r := Score(map[string]string{"EI": "X", "SN": "s", "TF": "T"})
	assert.Equal(t, "INTP", r.Type)
	assert.Equal(t, 1, r.Answered)
	assert.Equal(t, 25, r.Confidence)
}

func TestConfidenceClamped(t *testing.T) {
	assert.Equal(t, 0, Confidence(-1))
	assert.Equal(t, 100, Confidence(4))
	assert.Equal(t, 100, Confidence(9))
}

func TestScoreAlwaysYieldsCanonicalType(t *testing.T) {
	letters := []string{"E", "I", "S", "N", "T", "F", "J", "P", ""}
	for _, a := range letters {
		for _, b := range letters {
			r := Score(map[string]string{"1": a, "2": b})
			assert.True(t, IsType(r.Type), r.Type)
		}
	}
}

func TestQuestionsCoverEveryDimension(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, QuestionCount)

	for i, d := range Dimensions {
		assert.Equal(t, d.Key, qs[i].Dimension)
		assert.Equal(t, d.First, qs[i].OptionA.Value)
		assert.Equal(t, d.Second, qs[i].OptionB.Value)
	}

	qs[0].Question = "changed"
	assert.NotEqual(t, "changed", Questions()[0].Question)
}

func TestParseTrait(t *testing.T) {
	for _, s := range []string{"E", "I", "S", "N", "T", "F", "J", "P"} {
		_, ok := ParseTrait(s)
		assert.True(t, ok, s)
	}
	for _, s := range []string{"", "e", "X", "EI"} {
		_, ok := ParseTrait(s)
		assert.False(t, ok, s)
	}
}
