package models

import (
	"strings"
	"time"
)

// DefaultTitle is shown and stored whenever the draft has no title.
const DefaultTitle = "Untitled"

// Draft is the single document being written.
type Draft struct {
	Title     string
	Content   string
	UpdatedAt time.Time
	// Revision orders edits made during one run. Zero means unordered.
	Revision uint64
}

// NewDraft returns the empty draft used on first run and after a clear.
func NewDraft() Draft {
	return Draft{
		Title:     DefaultTitle,
		Content:   "",
		UpdatedAt: time.Now(),
	}
}

// Normalized fills in the default title when the title is blank.
func (d Draft) Normalized() Draft {
	if strings.TrimSpace(d.Title) == "" {
		d.Title = DefaultTitle
	}
	return d
}

// IsBlank reports whether the content holds nothing but whitespace.
func (d Draft) IsBlank() bool {
	return strings.TrimSpace(d.Content) == ""
}

// WordCount counts whitespace separated words in the content.
func (d Draft) WordCount() int {
	return len(strings.Fields(d.Content))
}

type AppStatus int

const (
	Idle AppStatus = iota
	Writing
	AiThinking
)

func (s AppStatus) String() string {
	switch s {
	case Writing:
		return "Writing"
	case AiThinking:
		return "Thinking"
	default:
		return "Idle"
	}
}

// SuggestionKind identifies which remote suggestion produced a result.
type SuggestionKind int

const (
	Continuation SuggestionKind = iota
	TitleSuggestion
)
