// Package parser implements the executive-move extraction engine: a pure,
// heuristic pipeline that turns a raw news article into a validated
// Candidate or nothing. Failures here are rejections, not errors - no input,
// however malformed, makes Parse panic or return an error.
package parser

import (
	"time"
	"unicode/utf8"

	"github.com/jonesrussell/people-moves/internal/domain"
	"github.com/jonesrussell/people-moves/internal/logger"
	"github.com/jonesrussell/people-moves/internal/vocab"
)

// Config holds engine settings.
type Config struct {
	// MaxAgeDays drops articles whose publication date is older than this
	// many days. Zero disables the age filter.
	MaxAgeDays int
}

// ArticleParser composes the extraction stages into one synchronous
// function of its inputs. It holds only read-only vocabulary-derived state,
// so one instance is safe for concurrent use across articles.
type ArticleParser struct {
	classifier *MoveClassifier
	names      *NameExtractor
	titles     *TitleExtractor
	maxAgeDays int
	log        logger.Logger

	now func() time.Time
}

// New builds an ArticleParser from the vocabulary tables.
func New(v *vocab.Vocabulary, cfg Config, log logger.Logger) *ArticleParser {
	if log == nil {
		log = logger.NewNop()
	}
	return &ArticleParser{
		classifier: NewMoveClassifier(v),
		names:      NewNameExtractor(v),
		titles:     NewTitleExtractor(v),
		maxAgeDays: cfg.MaxAgeDays,
		log:        log,
		now:        time.Now,
	}
}

// Parse extracts an executive-move Candidate from one article. It returns
// nil when the article is not about a move, names no valid person, or is
// older than the configured age cutoff. Parsing the same article twice
// yields the same result; the parser has no mutable state.
func (p *ArticleParser) Parse(article domain.RawArticle) *domain.Candidate {
	articlesParsed.Inc()

	body := CleanHTML(article.Body)
	combined := article.Title
	if body != "" {
		combined = article.Title + " " + body
	}

	if !p.classifier.IsExecutiveMove(article.Title, body) {
		parseRejections.WithLabelValues(reasonNotMove).Inc()
		return nil
	}

	// Publication date comes from feed metadata only. Dates embedded in the
	// body belong to sibling stories as often as to this one. The stored
	// announcement date is a calendar date, so the time of day is dropped
	// once the age filter has seen the full timestamp.
	announced := ParseDate(article.Published)

	if p.maxAgeDays > 0 && announced != nil && olderThan(*announced, p.maxAgeDays, p.now()) {
		parseRejections.WithLabelValues(reasonTooOld).Inc()
		p.log.Debug("article dropped by age filter",
			logger.String("title", article.Title),
			logger.Time("published", *announced),
		)
		return nil
	}

	// No person, no story: a title or action without an attributable person
	// is not actionable.
	personName := p.names.ExtractPersonName(combined)
	if personName == "" {
		parseRejections.WithLabelValues(reasonNoName).Inc()
		return nil
	}

	if announced != nil {
		day := dateOnly(*announced)
		announced = &day
	}

	rawText := capRawText(combined)

	candidatesProduced.Inc()
	return &domain.Candidate{
		PersonName:       personName,
		NewTitle:         p.titles.ExtractTitle(combined),
		Action:           ExtractAction(combined),
		RawText:          rawText,
		SourceURL:        article.Link,
		SourceName:       article.SourceName,
		AnnouncementDate: announced,
	}
}

// capRawText bounds the stored excerpt at MaxRawTextLen bytes, backing the
// cut off to a rune boundary so a multibyte character is never split.
func capRawText(s string) string {
	if len(s) <= domain.MaxRawTextLen {
		return s
	}
	cut := domain.MaxRawTextLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
