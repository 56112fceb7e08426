package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/db/dbtest"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/tracking"
)

func newUser(t *testing.T, conn *sqlx.DB, subject string) *model.User {
	t.Helper()
	u, err := NewUserRepository(conn).Upsert(&model.User{Subject: subject, Email: subject + "@example.com"})
	require.NoError(t, err)
	return u
}

func newHabit(userID, title string) *model.Habit {
	return &model.Habit{
		UserID:    userID,
		Title:     title,
		Category:  model.HabitCategoryHealth,
		Frequency: model.HabitFrequencyDaily,
		Goal:      1,
	}
}

func TestUserUpsertRefreshesProfile(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewUserRepository(conn)

	first, err := repo.Upsert(&model.User{Subject: "auth0|1", Email: "a@example.com", Name: "A"})
	require.NoError(t, err)

	second, err := repo.Upsert(&model.User{Subject: "auth0|1", Email: "b@example.com", Name: "B"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "b@example.com", second.Email)
	assert.Equal(t, "B", second.Name)

	byEmail, err := repo.ByEmail("b@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, byEmail.ID)

	_, err = repo.ByID("missing")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestHabitCreateEnforcesActiveLimit(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewHabitRepository(conn)
	user := newUser(t, conn, "auth0|quota")

	for i := range model.MaxActiveHabits {
		require.NoError(t, repo.CreateWithinLimit(newHabit(user.ID, fmt.Sprintf("habit %d", i)), model.MaxActiveHabits))
	}

	before, err := repo.Habits(user.ID, nil)
	require.NoError(t, err)

	err = repo.CreateWithinLimit(newHabit(user.ID, "one too many"), model.MaxActiveHabits)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrQuotaExceeded))

	after, err := repo.Habits(user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	require.NoError(t, repo.Deactivate(user.ID, before[0].ID))
	require.NoError(t, repo.CreateWithinLimit(newHabit(user.ID, "replacement"), model.MaxActiveHabits))

	count, err := repo.CountActive(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MaxActiveHabits, count)
}

func TestHabitCreateLimitUnderConcurrency(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewHabitRepository(conn)
	user := newUser(t, conn, "auth0|race")

	var wg sync.WaitGroup
	errs := make(chan error, 6)
	for i := range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.CreateWithinLimit(newHabit(user.ID, fmt.Sprintf("habit %d", i)), model.MaxActiveHabits)
		}()
	}
	wg.Wait()
	close(errs)

	count, err := repo.CountActive(user.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, count, model.MaxActiveHabits)

	created := 0
	for err := range errs {
		if err == nil {
			created++
		}
	}
	assert.Equal(t, count, created)
}

func TestHabitCreateUnknownOwner(t *testing.T) {
	conn := dbtest.New(t)
	err := NewHabitRepository(conn).CreateWithinLimit(newHabit("nobody", "x"), model.MaxActiveHabits)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestHabitRoundTripsProgress(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewHabitRepository(conn)
	user := newUser(t, conn, "auth0|progress")

	h := newHabit(user.ID, "Run")
	require.NoError(t, repo.CreateWithinLimit(h, model.MaxActiveHabits))

	loaded, err := repo.ByID(user.ID, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Log.Len())
	assert.True(t, loaded.IsActive)
	assert.Equal(t, 1, loaded.Version)

	loaded.Record(tracking.Date("2024-01-01"), true)
	loaded.Record(tracking.Date("2024-01-02"), true)
	require.NoError(t, repo.UpdateProgress(loaded))
	assert.Equal(t, 2, loaded.Version)

	again, err := repo.ByID(user.ID, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Completed)
	assert.Equal(t, 2, again.Streak)
	assert.Equal(t, 2, again.LongestStreak)
	assert.Equal(t, loaded.Log.Entries(), again.Log.Entries())
}

func TestHabitUpdateProgressDetectsStaleVersion(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewHabitRepository(conn)
	user := newUser(t, conn, "auth0|cas")

	h := newHabit(user.ID, "Read")
	require.NoError(t, repo.CreateWithinLimit(h, model.MaxActiveHabits))

	a, err := repo.ByID(user.ID, h.ID)
	require.NoError(t, err)
	b, err := repo.ByID(user.ID, h.ID)
	require.NoError(t, err)

	a.Record(tracking.Date("2024-01-01"), true)
	require.NoError(t, repo.UpdateProgress(a))

	b.Record(tracking.Date("2024-01-02"), true)
	err = repo.UpdateProgress(b)
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	b.ID = "missing"
	err = repo.UpdateProgress(b)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestHabitOwnership(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewHabitRepository(conn)
	owner := newUser(t, conn, "auth0|owner")
	other := newUser(t, conn, "auth0|other")

	h := newHabit(owner.ID, "Meditate")
	require.NoError(t, repo.CreateWithinLimit(h, model.MaxActiveHabits))

	_, err := repo.ByID(other.ID, h.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.True(t, errors.Is(repo.Deactivate(other.ID, h.ID), apperr.ErrNotFound))

	active := true
	habits, err := repo.Habits(other.ID, &active)
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestHabitsFilterByActive(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewHabitRepository(conn)
	user := newUser(t, conn, "auth0|filter")

	a := newHabit(user.ID, "A")
	b := newHabit(user.ID, "B")
	require.NoError(t, repo.CreateWithinLimit(a, model.MaxActiveHabits))
	require.NoError(t, repo.CreateWithinLimit(b, model.MaxActiveHabits))
	require.NoError(t, repo.Deactivate(user.ID, a.ID))

	active, inactive := true, false
	got, err := repo.Habits(user.ID, &active)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	got, err = repo.Habits(user.ID, &inactive)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = repo.Habits(user.ID, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMBTIUpsertReplaces(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewMBTIRepository(conn)
	user := newUser(t, conn, "auth0|mbti")

	_, err := repo.ByUserID(user.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	first, err := repo.Upsert(&model.MBTIProfile{
		UserID:     user.ID,
		MBTIType:   "ESTJ",
		Confidence: 100,
		Answers:    model.Answers{"EI": "E", "SN": "S", "TF": "T", "JP": "J"},
	})
	require.NoError(t, err)

	second, err := repo.Upsert(&model.MBTIProfile{
		UserID:     user.ID,
		MBTIType:   "INFP",
		Confidence: 25,
		Answers:    model.Answers{"EI": "I"},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "INFP", second.MBTIType)
	assert.Equal(t, 25, second.Confidence)
	assert.Equal(t, model.Answers{"EI": "I"}, second.Answers)
}

func TestJournalEntriesFilterAndPaginate(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewJournalRepository(conn)
	user := newUser(t, conn, "auth0|journal")

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, repo.Create(&model.JournalEntry{
			UserID:    user.ID,
			Date:      base.AddDate(0, 0, i),
			Title:     fmt.Sprintf("Day %d", i),
			Content:   "content",
			Mood:      model.MoodCalm,
			Tags:      model.Tags{"t"},
			IsPrivate: i%2 == 0,
		}))
	}

	all, err := repo.Entries(user.ID, model.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "Day 4", all[0].Title)
	assert.Equal(t, model.Tags{"t"}, all[0].Tags)
	assert.Nil(t, all[0].Analysis)

	page, err := repo.Entries(user.ID, model.JournalFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Day 2", page[0].Title)

	private := true
	count, err := repo.Count(user.ID, model.JournalFilter{IsPrivate: &private})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	since := base.AddDate(0, 0, 3)
	recent, err := repo.Entries(user.ID, model.JournalFilter{Since: &since})
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestJournalUpdateAnalysis(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewJournalRepository(conn)
	user := newUser(t, conn, "auth0|analysis")

	entry := &model.JournalEntry{UserID: user.ID, Title: "t", Content: "c", Mood: model.MoodHappy}
	require.NoError(t, repo.Create(entry))

	analysis := &model.JournalAnalysis{
		Sentiment:       model.SentimentPositive,
		MotivationLevel: 4,
		Summary:         "Good day",
		Insights:        []string{"keep going"},
		MoodKeywords:    []string{"upbeat"},
		AnalyzedAt:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.UpdateAnalysis(user.ID, entry.ID, analysis))

	got, err := repo.ByID(user.ID, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Analysis)
	assert.Equal(t, analysis.Summary, got.Analysis.Summary)
	assert.Equal(t, 4, got.Analysis.MotivationLevel)
	assert.True(t, analysis.AnalyzedAt.Equal(got.Analysis.AnalyzedAt))

	err = repo.UpdateAnalysis("someone-else", entry.ID, analysis)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
