package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/model"
)

const (
	MaxJournalTitle   = 200
	MaxJournalContent = 10000
	MaxTagLength      = 50
	MaxTags           = 20
)

// NormalizeJournalEntry validates a new entry and fills defaults: title
// "Daily Reflection", mood "other". Blank tags are dropped.
func NormalizeJournalEntry(in model.NewJournalEntry) (model.NewJournalEntry, error) {
	out := model.NewJournalEntry{
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Mood:      NormalizeEnum(in.Mood),
		IsPrivate: in.IsPrivate,
		Date:      in.Date,
		Tags:      []string{},
	}

	if out.Content == "" {
		return out, apperr.New(apperr.ErrInvalidArgument, "content is required")
	}
	if utf8.RuneCountInString(out.Content) > MaxJournalContent {
		return out, apperr.Newf(apperr.ErrInvalidArgument, "content is too long (max %d characters)", MaxJournalContent)
	}

	if out.Title == "" {
		out.Title = model.DefaultJournalTitle
	}
	if utf8.RuneCountInString(out.Title) > MaxJournalTitle {
		return out, apperr.Newf(apperr.ErrInvalidArgument, "title is too long (max %d characters)", MaxJournalTitle)
	}

	if out.Mood == "" {
		out.Mood = model.MoodOther
	}
	if !model.IsMood(out.Mood) {
		return out, apperr.Newf(apperr.ErrInvalidArgument, "invalid mood %q (allowed: %s)", in.Mood, strings.Join(model.Moods, ", "))
	}

	for _, tag := range in.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return out, apperr.Newf(apperr.ErrInvalidArgument, "tag %q is too long (max %d characters)", tag, MaxTagLength)
		}
		out.Tags = append(out.Tags, tag)
	}
	if len(out.Tags) > MaxTags {
		return out, apperr.Newf(apperr.ErrInvalidArgument, "too many tags (max %d)", MaxTags)
	}

	return out, nil
}
