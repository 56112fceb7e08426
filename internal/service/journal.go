package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/fallback"
	"github.com/thrivelog/thrivelog/internal/markdown"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/service/ai"
	"github.com/thrivelog/thrivelog/internal/tracking"
	"github.com/thrivelog/thrivelog/internal/validation"
)

const (
	DefaultJournalLimit = 10
	MaxJournalLimit     = 50
	SentimentDays       = 7

	maxSummaryLength = 500
	maxInsightLength = 200
	maxKeywordLength = 50
	maxInsights      = 5
	maxMoodKeywords  = 5
	maxPromptContext = 500
)

// JournalPage is one page of a journal listing.
type JournalPage struct {
	Entries []*model.JournalEntry `json:"entries"`
	Total   int                   `json:"total"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
}

type JournalService struct {
	repo     repository.JournalRepository
	provider ai.Provider
	parser   *markdown.Parser
}

func NewJournalService(repo repository.JournalRepository, provider ai.Provider, parser *markdown.Parser) *JournalService {
	return &JournalService{
		repo:     repo,
		provider: provider,
		parser:   parser,
	}
}

// Create validates in, attaches an AI analysis (or the neutral fallback) and
// stores the entry.
func (s *JournalService) Create(ctx context.Context, userID string, in model.NewJournalEntry) (*model.JournalEntry, error) {
	in, err := validation.NormalizeJournalEntry(in)
	if err != nil {
		return nil, err
	}

	analysis := s.Analyze(ctx, in.Content)

	entry := &model.JournalEntry{
		UserID:    userID,
		Date:      in.Date,
		Title:     in.Title,
		Content:   in.Content,
		Mood:      in.Mood,
		Tags:      model.Tags(in.Tags),
		IsPrivate: in.IsPrivate,
		Analysis:  &analysis,
	}

	err = s.repo.Create(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	s.render(entry)

	slog.Info("journal entry created", "user_id", userID, "entry_id", entry.ID, "sentiment", analysis.Sentiment)
	return entry, nil
}

// Import creates an entry from a Markdown document with optional front matter.
func (s *JournalService) Import(ctx context.Context, userID string, source []byte) (*model.JournalEntry, error) {
	doc, err := s.parser.ParseDocument(source)
	if err != nil {
		return nil, apperr.Newf(apperr.ErrInvalidArgument, "invalid front matter: %v", err)
	}

	in := model.NewJournalEntry{
		Title:     doc.Meta.Title,
		Content:   doc.Body,
		Mood:      doc.Meta.Mood,
		Tags:      doc.Meta.Tags,
		IsPrivate: doc.Meta.Private,
	}

	if doc.Meta.Date != "" {
		date, err := ParseEntryDate(doc.Meta.Date)
		if err != nil {
			return nil, err
		}
		in.Date = date
	}

	return s.Create(ctx, userID, in)
}

func (s *JournalService) ByID(userID, entryID string) (*model.JournalEntry, error) {
	entry, err := s.repo.ByID(userID, entryID)
	if err != nil {
		return nil, err
	}
	s.render(entry)
	return entry, nil
}

// Reanalyze replaces the stored analysis of an entry with a fresh one.
func (s *JournalService) Reanalyze(ctx context.Context, userID, entryID string) (*model.JournalEntry, error) {
	entry, err := s.repo.ByID(userID, entryID)
	if err != nil {
		return nil, err
	}

	analysis := s.Analyze(ctx, entry.Content)
	err = s.repo.UpdateAnalysis(userID, entryID, &analysis)
	if err != nil {
		return nil, err
	}

	entry.Analysis = &analysis
	s.render(entry)
	return entry, nil
}

// Entries returns one page of entries, most recent first. page starts at 1.
func (s *JournalService) Entries(userID string, limit, page int, isPrivate *bool) (*JournalPage, error) {
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	if limit > MaxJournalLimit {
		limit = MaxJournalLimit
	}
	if page < 1 {
		page = 1
	}

	filter := model.JournalFilter{
		Limit:     limit,
		Offset:    (page - 1) * limit,
		IsPrivate: isPrivate,
	}

	entries, err := s.repo.Entries(userID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(userID, filter)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		s.render(entry)
	}

	return &JournalPage{Entries: entries, Total: total, Page: page, Limit: limit}, nil
}

// Recent returns the n most recent entries.
func (s *JournalService) Recent(userID string, n int) ([]*model.JournalEntry, error) {
	entries, err := s.repo.Entries(userID, model.JournalFilter{Limit: n})
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		s.render(entry)
	}
	return entries, nil
}

// Sentiment returns one point per UTC day for the SentimentDays ending at now,
// oldest first. Days without an analysed entry are neutral with motivation 0.
// When a day has several analysed entries the most recent one wins.
func (s *JournalService) Sentiment(userID string, now time.Time) ([]model.SentimentPoint, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(SentimentDays - 1))

	entries, err := s.repo.Entries(userID, model.JournalFilter{Since: &since})
	if err != nil {
		return nil, err
	}

	points := make([]model.SentimentPoint, SentimentDays)
	index := make(map[tracking.Date]int, SentimentDays)
	for i := range points {
		day := tracking.DateOf(since.AddDate(0, 0, i))
		points[i] = model.SentimentPoint{Date: day.String(), Sentiment: model.SentimentNeutral}
		index[day] = i
	}

	// entries arrive newest first, so the first analysis seen for a day wins
	analysed := make(map[int]bool, SentimentDays)
	for _, entry := range entries {
		i, ok := index[tracking.DateOf(entry.Date)]
		if !ok {
			continue
		}
		points[i].EntryCount++
		if entry.Analysis == nil || analysed[i] {
			continue
		}
		points[i].Sentiment = entry.Analysis.Sentiment
		points[i].MotivationLevel = entry.Analysis.MotivationLevel
		analysed[i] = true
	}

	return points, nil
}

// Prompt suggests a journaling prompt for mood, informed by the latest entry.
func (s *JournalService) Prompt(ctx context.Context, userID, mood string) string {
	mood = validation.NormalizeEnum(mood)
	if mood == "" {
		mood = model.MoodOther
	}

	previous := "No previous entry"
	entries, err := s.repo.Entries(userID, model.JournalFilter{Limit: 1})
	if err != nil {
		slog.Warn("failed to load previous journal entry", "error", err, "user_id", userID)
	} else if len(entries) > 0 {
		previous = truncate(entries[0].Content, maxPromptContext)
	}

	prompt := fmt.Sprintf(`Based on the user's current mood (%s) and their previous journal entry, suggest a thoughtful journaling prompt.

Previous entry: %s

Generate a single, engaging journaling prompt that encourages reflection and self-discovery.
The prompt should be 1-2 sentences and feel personal and supportive.

Return ONLY the prompt text, no additional formatting.`, mood, previous)

	text, err := s.provider.GenerateText(ctx, prompt, ai.PromptOptions)
	if err != nil || strings.TrimSpace(text) == "" {
		slog.Warn("journal prompt generation failed, using fallback", "error", err, "reason", ai.Classify(err), "user_id", userID)
		return fallback.JournalPrompt()
	}

	return strings.TrimSpace(text)
}

type rawAnalysis struct {
	Sentiment       string   `json:"sentiment"`
	MotivationLevel float64  `json:"motivationLevel"`
	Summary         string   `json:"summary"`
	Insights        []string `json:"insights"`
	MoodKeywords    []string `json:"moodKeywords"`
}

// Analyze asks the provider for a sentiment analysis of content. Any failure or
// malformed answer yields the neutral fallback analysis.
func (s *JournalService) Analyze(ctx context.Context, content string) model.JournalAnalysis {
	prompt := fmt.Sprintf(`Analyze the following journal entry and provide insights in JSON format:

Journal Entry:
%q

Please analyze this journal entry and return a JSON object with the following structure:
{
  "sentiment": "positive|neutral|negative",
  "motivationLevel": 1-5,
  "summary": "A brief 2-3 sentence summary of the main themes",
  "insights": ["insight 1", "insight 2", "insight 3"],
  "moodKeywords": ["keyword1", "keyword2", "keyword3"]
}

Guidelines:
- Sentiment: Determine overall emotional tone (positive, neutral, negative)
- Motivation Level: Rate from 1 (very low) to 5 (very high) based on energy and drive expressed
- Summary: Capture main themes and emotional state
- Insights: Provide 3 actionable or reflective insights
- Mood Keywords: Extract 3-5 words that capture the emotional state`, content)

	var raw rawAnalysis
	err := s.provider.GenerateJSON(ctx, prompt, &raw)
	if err == nil {
		var analysis model.JournalAnalysis
		analysis, err = sanitizeAnalysis(raw)
		if err == nil {
			return analysis
		}
	}

	slog.Warn("journal analysis failed, using fallback", "error", err, "reason", ai.Classify(err))
	return fallback.JournalAnalysis()
}

// sanitizeAnalysis requires sentiment, motivation and summary, clamps motivation
// to 1..5 and truncates free text.
func sanitizeAnalysis(raw rawAnalysis) (model.JournalAnalysis, error) {
	sentiment := validation.NormalizeEnum(raw.Sentiment)
	if !model.IsSentiment(sentiment) || raw.MotivationLevel == 0 || strings.TrimSpace(raw.Summary) == "" {
		return model.JournalAnalysis{}, fmt.Errorf("%w: incomplete analysis", ai.ErrInvalidResponse)
	}

	motivation := int(math.Round(raw.MotivationLevel))
	motivation = max(1, min(5, motivation))

	return model.JournalAnalysis{
		Sentiment:       sentiment,
		MotivationLevel: motivation,
		Summary:         truncate(strings.TrimSpace(raw.Summary), maxSummaryLength),
		Insights:        cleanList(raw.Insights, maxInsights, maxInsightLength),
		MoodKeywords:    cleanList(raw.MoodKeywords, maxMoodKeywords, maxKeywordLength),
		AnalyzedAt:      time.Now().UTC(),
	}, nil
}

func (s *JournalService) render(entry *model.JournalEntry) {
	html, err := s.parser.Render(entry.Content)
	if err != nil {
		slog.Warn("failed to render journal entry", "error", err, "entry_id", entry.ID)
		return
	}
	entry.ContentHTML = html
}

// ParseEntryDate accepts a calendar date or an RFC 3339 timestamp.
func ParseEntryDate(s string) (time.Time, error) {
	if day, err := tracking.ParseDate(s); err == nil {
		return day.Time(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperr.Newf(apperr.ErrInvalidArgument, "invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return t.UTC(), nil
}

func cleanList(values []string, maxItems, maxLength int) []string {
	out := []string{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, truncate(v, maxLength))
		if len(out) == maxItems {
			break
		}
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
