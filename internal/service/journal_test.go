package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/fallback"
	"github.com/thrivelog/thrivelog/internal/model"
)

const analysisJSON = "```json\n" + `{"sentiment":"Positive","motivationLevel":9,"summary":"A productive day.","insights":["Keep going"," "],"moodKeywords":["energized"]}` + "\n```"

func TestJournalCreateWithAnalysis(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{text: analysisJSON})
	user := env.newUser(t, "alice")

	entry, err := env.journalService.Create(context.Background(), user.ID, model.NewJournalEntry{
		Content: "Shipped the **release** today.",
		Mood:    "Excited",
		Tags:    []string{"work"},
	})
	require.NoError(t, err)

	assert.Equal(t, model.DefaultJournalTitle, entry.Title)
	assert.Equal(t, model.MoodExcited, entry.Mood)
	assert.False(t, entry.IsPrivate)
	assert.Contains(t, entry.ContentHTML, "<strong>release</strong>")

	require.NotNil(t, entry.Analysis)
	assert.Equal(t, model.SentimentPositive, entry.Analysis.Sentiment)
	assert.Equal(t, 5, entry.Analysis.MotivationLevel)
	assert.Equal(t, []string{"Keep going"}, entry.Analysis.Insights)
	assert.Equal(t, []string{"energized"}, entry.Analysis.MoodKeywords)

	stored, err := env.journalService.ByID(user.ID, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Analysis)
	assert.Equal(t, "A productive day.", stored.Analysis.Summary)
	assert.Equal(t, model.Tags{"work"}, stored.Tags)
}

func TestJournalCreateFallsBackWhenAIFails(t *testing.T) {
	for name, provider := range map[string]*fakeProvider{
		"error":      {err: errUnavailable},
		"not json":   {text: "I'd rather not."},
		"incomplete": {text: `{"sentiment":"ecstatic","motivationLevel":3,"summary":"x"}`},
	} {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t, provider)
			user := env.newUser(t, "alice")

			entry, err := env.journalService.Create(context.Background(), user.ID, model.NewJournalEntry{Content: "A quiet day."})
			require.NoError(t, err)
			require.NotNil(t, entry.Analysis)

			want := fallback.JournalAnalysis()
			assert.Equal(t, want.Sentiment, entry.Analysis.Sentiment)
			assert.Equal(t, want.MotivationLevel, entry.Analysis.MotivationLevel)
			assert.Equal(t, want.Summary, entry.Analysis.Summary)
		})
	}
}

func TestJournalCreateValidates(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{text: analysisJSON})
	user := env.newUser(t, "alice")

	_, err := env.journalService.Create(context.Background(), user.ID, model.NewJournalEntry{Content: "  "})
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
	assert.Zero(t, env.provider.calls())
}

func TestJournalEntriesPaginate(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{text: analysisJSON})
	user := env.newUser(t, "alice")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := env.journalService.Create(context.Background(), user.ID, model.NewJournalEntry{
			Content:   "entry",
			Title:     string(rune('A' + i)),
			Date:      base.AddDate(0, 0, i),
			IsPrivate: i == 0,
		})
		require.NoError(t, err)
	}

	first, err := env.journalService.Entries(user.ID, 2, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Total)
	require.Len(t, first.Entries, 2)
	assert.Equal(t, "C", first.Entries[0].Title)
	assert.NotEmpty(t, first.Entries[0].ContentHTML)

	second, err := env.journalService.Entries(user.ID, 2, 2, nil)
	require.NoError(t, err)
	require.Len(t, second.Entries, 1)
	assert.Equal(t, "A", second.Entries[0].Title)

	private := true
	onlyPrivate, err := env.journalService.Entries(user.ID, 0, 0, &private)
	require.NoError(t, err)
	assert.Equal(t, DefaultJournalLimit, onlyPrivate.Limit)
	assert.Equal(t, 1, onlyPrivate.Page)
	assert.Equal(t, 1, onlyPrivate.Total)

	capped, err := env.journalService.Entries(user.ID, 1000, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, MaxJournalLimit, capped.Limit)
}

func TestJournalImport(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{text: analysisJSON})
	user := env.newUser(t, "alice")

	source := strings.Join([]string{
		"---",
		"title: Weekend",
		"mood: calm",
		"tags: [rest]",
		"date: 2024-05-04",
		"private: true",
		"---",
		"Long walk by the river.",
	}, "\n")

	entry, err := env.journalService.Import(context.Background(), user.ID, []byte(source))
	require.NoError(t, err)
	assert.Equal(t, "Weekend", entry.Title)
	assert.Equal(t, model.MoodCalm, entry.Mood)
	assert.Equal(t, model.Tags{"rest"}, entry.Tags)
	assert.True(t, entry.IsPrivate)
	assert.Equal(t, "Long walk by the river.", entry.Content)
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), entry.Date.UTC())

	_, err = env.journalService.Import(context.Background(), user.ID, []byte("---\ndate: someday\n---\nbody"))
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	_, err = env.journalService.Import(context.Background(), user.ID, []byte("---\ntitle: empty\n---\n"))
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
}

func TestJournalSentimentTrend(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{err: errUnavailable})
	user := env.newUser(t, "alice")
	now := time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)

	add := func(date time.Time, sentiment string, motivation int) {
		t.Helper()
		entry := &model.JournalEntry{
			UserID:   user.ID,
			Date:     date,
			Title:    "t",
			Content:  "c",
			Mood:     model.MoodOther,
			Analysis: &model.JournalAnalysis{Sentiment: sentiment, MotivationLevel: motivation},
		}
		require.NoError(t, env.journal.Create(entry))
	}

	add(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), model.SentimentNegative, 2)
	add(time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC), model.SentimentPositive, 4)
	add(time.Date(2024, 6, 4, 8, 0, 0, 0, time.UTC), model.SentimentNegative, 1)
	add(time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC), model.SentimentPositive, 5)

	points, err := env.journalService.Sentiment(user.ID, now)
	require.NoError(t, err)
	require.Len(t, points, SentimentDays)

	assert.Equal(t, "2024-06-04", points[0].Date)
	assert.Equal(t, model.SentimentNegative, points[0].Sentiment)
	assert.Equal(t, 1, points[0].MotivationLevel)

	assert.Equal(t, "2024-06-07", points[3].Date)
	assert.Equal(t, model.SentimentNeutral, points[3].Sentiment)
	assert.Zero(t, points[3].MotivationLevel)
	assert.Zero(t, points[3].EntryCount)

	last := points[6]
	assert.Equal(t, "2024-06-10", last.Date)
	assert.Equal(t, model.SentimentPositive, last.Sentiment)
	assert.Equal(t, 4, last.MotivationLevel)
	assert.Equal(t, 2, last.EntryCount)
}

func TestJournalPrompt(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{text: "  What made you smile today?  "})
	user := env.newUser(t, "alice")

	assert.Equal(t, "What made you smile today?", env.journalService.Prompt(context.Background(), user.ID, "Happy"))
	assert.Contains(t, env.provider.prompts[0], "(happy)")
	assert.Contains(t, env.provider.prompts[0], "No previous entry")

	failing := newTestEnv(t, &fakeProvider{err: errUnavailable})
	other := failing.newUser(t, "bob")
	assert.Equal(t, fallback.JournalPrompt(), failing.journalService.Prompt(context.Background(), other.ID, ""))
}

func TestJournalReanalyze(t *testing.T) {
	provider := &fakeProvider{err: errUnavailable}
	env := newTestEnv(t, provider)
	user := env.newUser(t, "alice")

	entry, err := env.journalService.Create(context.Background(), user.ID, model.NewJournalEntry{Content: "Great run."})
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNeutral, entry.Analysis.Sentiment)

	provider.err = nil
	provider.text = analysisJSON

	updated, err := env.journalService.Reanalyze(context.Background(), user.ID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SentimentPositive, updated.Analysis.Sentiment)

	_, err = env.journalService.Reanalyze(context.Background(), user.ID, "missing")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
