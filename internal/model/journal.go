package model

import (
	"database/sql/driver"
	"time"
)

const (
	MoodHappy      = "happy"
	MoodSad        = "sad"
	MoodExcited    = "excited"
	MoodAnxious    = "anxious"
	MoodCalm       = "calm"
	MoodFrustrated = "frustrated"
	MoodGrateful   = "grateful"
	MoodStressed   = "stressed"
	MoodContent    = "content"
	MoodOther      = "other"
)

var Moods = []string{
	MoodHappy, MoodSad, MoodExcited, MoodAnxious, MoodCalm,
	MoodFrustrated, MoodGrateful, MoodStressed, MoodContent, MoodOther,
}

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

const DefaultJournalTitle = "Daily Reflection"

type JournalEntry struct {
	ID        string           `db:"id" json:"id"`
	UserID    string           `db:"user_id" json:"user_id"`
	Date      time.Time        `db:"date" json:"date"`
	Title     string           `db:"title" json:"title"`
	Content   string           `db:"content" json:"content"`
	Mood      string           `db:"mood" json:"mood"`
	Tags      Tags             `db:"tags" json:"tags"`
	IsPrivate bool             `db:"is_private" json:"is_private"`
	Analysis  *JournalAnalysis `db:"analysis" json:"analysis,omitempty"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt time.Time        `db:"updated_at" json:"updated_at"`

	// Rendered from Content, not stored
	ContentHTML string `db:"-" json:"content_html"`
}

type JournalAnalysis struct {
	Sentiment       string    `json:"sentiment"`
	MotivationLevel int       `json:"motivation_level"`
	Summary         string    `json:"summary"`
	Insights        []string  `json:"insights"`
	MoodKeywords    []string  `json:"mood_keywords"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
}

func (a *JournalAnalysis) Scan(src any) error {
	return scanJSON(src, a)
}

func (a JournalAnalysis) Value() (driver.Value, error) {
	return jsonValue(a)
}

// NewJournalEntry is the validated input for creating a journal entry.
type NewJournalEntry struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Tags      []string  `json:"tags"`
	IsPrivate bool      `json:"is_private"`
	Date      time.Time `json:"date"`
}

// JournalFilter narrows a journal listing. A nil IsPrivate matches all entries.
type JournalFilter struct {
	Limit     int
	Offset    int
	IsPrivate *bool
	Since     *time.Time
}

type Tags []string

func (t *Tags) Scan(src any) error {
	var v []string
	if err := scanJSON(src, &v); err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return jsonValue([]string(t))
}

// SentimentPoint is one day of the sentiment trend.
type SentimentPoint struct {
	Date            string `json:"date"`
	Sentiment       string `json:"sentiment"`
	MotivationLevel int    `json:"motivation_level"`
	EntryCount      int    `json:"entry_count"`
}

func IsMood(s string) bool {
	return contains(Moods, s)
}

func IsSentiment(s string) bool {
	return s == SentimentPositive || s == SentimentNeutral || s == SentimentNegative
}
