package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/haulware/haulbot/internal/core/domain"
)

// TimestampLayout is the capture-time stamp format of the Date column:
// local time with a numeric zone offset.
const TimestampLayout = "2006-01-02 15:04:05 -0700"

// orgFallback captures the span before the first comma or semicolon when
// no delimiter keyword matched.
var orgFallback = regexp.MustCompile(`^(.*?)[,;]`)

// leadingSeparators is the run of separator characters trimmed from the
// front of the description residue.
var leadingSeparators = regexp.MustCompile(`^[\s,;:\-]+`)

// compiledModel is a vocabulary entry with its whole-word matcher.
type compiledModel struct {
	domain.ModelKeyword
	re *regexp.Regexp
}

// Extractor parses free-text breakdown messages into Reports. It is a
// fixed pipeline of matchers over immutable input: matches are located on
// a lowercased copy of the text and values are recovered from the
// original-case text where possible.
//
// Extract is a total function: malformed, empty or binary-looking input
// yields empty fields, never an error. An Extractor is safe for
// concurrent use.
type Extractor struct {
	lex domain.Lexicon

	org      *regexp.Regexp
	chassis  *regexp.Regexp
	distance *regexp.Regexp
	hours    *regexp.Regexp
	failures []*regexp.Regexp
	models   []compiledModel

	now func() time.Time
}

// NewExtractor compiles the lexicon's pattern set. The lexicons shipped in
// the domain package always compile; an error indicates a hand-built
// lexicon with a broken pattern.
func NewExtractor(lex domain.Lexicon) (*Extractor, error) {
	e := &Extractor{lex: lex, now: time.Now}

	var err error
	if e.org, err = regexp.Compile(`(?i)^(.*?)\s*(?:` + lex.OrgDelimiters + `)`); err != nil {
		return nil, fmt.Errorf("compile organisation pattern: %w", err)
	}
	if e.chassis, err = regexp.Compile(`(?i)` + lex.ChassisPrefix + `(\d+)`); err != nil {
		return nil, fmt.Errorf("compile chassis pattern: %w", err)
	}
	if e.distance, err = regexp.Compile(`(?i)` + lex.DistancePattern); err != nil {
		return nil, fmt.Errorf("compile distance pattern: %w", err)
	}
	if e.hours, err = regexp.Compile(`(?i)` + lex.HoursPattern); err != nil {
		return nil, fmt.Errorf("compile hours pattern: %w", err)
	}
	for _, p := range lex.FailurePatterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("compile failure pattern %q: %w", p, err)
		}
		e.failures = append(e.failures, re)
	}
	for _, m := range lex.Models {
		re, err := regexp.Compile(wholeWord(m.Word))
		if err != nil {
			return nil, fmt.Errorf("compile model keyword %q: %w", m.Word, err)
		}
		e.models = append(e.models, compiledModel{ModelKeyword: m, re: re})
	}

	return e, nil
}

// WithClock replaces the capture-time clock. Used by tests to make the
// timestamp deterministic.
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	e.now = now
	return e
}

// wholeWord builds a whole-word matcher for a vocabulary keyword. \b is an
// ASCII boundary in Go regexps and never fires next to Cyrillic letters,
// so boundaries are expressed as explicit letter/digit classes. The
// keyword itself is capture group 1.
func wholeWord(word string) string {
	return `(?i)(?:^|[^\p{L}\p{N}_])(` + regexp.QuoteMeta(word) + `)(?:[^\p{L}\p{N}_]|$)`
}

// Extract parses one message into a Report. Evaluation order is fixed:
// organisation, timestamp, chassis number, model, mileage/hours, failure
// description, then the description residue.
func (e *Extractor) Extract(text string) domain.Report {
	orig := strings.TrimSpace(text)
	lower := strings.ToLower(orig)

	org := e.extractOrganization(orig, lower)
	chassis := e.extractGroup(e.chassis, lower)
	model := e.extractModel(orig, lower)
	distance := e.extractGroup(e.distance, lower)
	hours := e.extractGroup(e.hours, lower)

	return domain.Report{
		Organization:       org,
		Timestamp:          e.now().Format(TimestampLayout),
		ChassisNumber:      chassis,
		Model:              model,
		FailureDescription: e.extractFailures(lower),
		Description:        e.buildDescription(orig, org, chassis, distance, hours),
		MileageHours:       e.lex.ComposeMileageHours(distance, hours),
	}
}

// extractOrganization finds the span before the first delimiter keyword,
// falling back to the span before the first comma/semicolon. The span is
// located on the lowercased copy and re-located case-insensitively in the
// original text to preserve the user's capitalisation.
func (e *Extractor) extractOrganization(orig, lower string) string {
	var org string
	if m := e.org.FindStringSubmatch(lower); m != nil {
		org = strings.TrimSpace(m[1])
	} else if m := orgFallback.FindStringSubmatch(orig); m != nil {
		org = strings.TrimSpace(m[1])
	}
	if org == "" {
		return ""
	}

	if re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(org)); err == nil {
		if span := re.FindString(orig); span != "" {
			return strings.TrimSpace(span)
		}
	}
	return org
}

// extractGroup returns the first capture group of the first match, or "".
func (e *Extractor) extractGroup(re *regexp.Regexp, lower string) string {
	if m := re.FindStringSubmatch(lower); m != nil {
		return m[1]
	}
	return ""
}

// extractModel returns the first vocabulary candidate present as a whole
// word. The candidate list order is the tie-break: first listed, first
// matched. The matched span keeps its original casing when recoverable,
// otherwise the canonical casing is used.
func (e *Extractor) extractModel(orig, lower string) string {
	for _, m := range e.models {
		if !m.re.MatchString(lower) {
			continue
		}
		if span := m.re.FindStringSubmatch(orig); span != nil {
			return span[1]
		}
		return m.Canonical
	}
	return ""
}

// extractFailures collects every failure-pattern match span across all
// patterns in their fixed order, deduplicates preserving first-seen order,
// and joins the survivors with "; ".
func (e *Extractor) extractFailures(lower string) string {
	var spans []string
	seen := make(map[string]struct{})
	for _, re := range e.failures {
		for _, m := range re.FindAllString(lower, -1) {
			span := strings.TrimSpace(m)
			if _, dup := seen[span]; dup {
				continue
			}
			seen[span] = struct{}{}
			spans = append(spans, span)
		}
	}
	return strings.Join(spans, "; ")
}

// buildDescription removes the already-extracted phrases from the original
// text, each first-occurrence only and case-insensitively, in the fixed
// order organisation, chassis phrase, distance phrase, hours phrase, then
// trims the leading separator run.
func (e *Extractor) buildDescription(orig, org, chassis, distance, hours string) string {
	desc := orig
	if org != "" {
		desc = removeFirst(desc, regexp.QuoteMeta(org))
	}
	if chassis != "" {
		desc = removeFirst(desc, e.lex.ChassisPrefix+regexp.QuoteMeta(chassis))
	}
	if distance != "" {
		desc = removeFirst(desc, regexp.QuoteMeta(distance)+e.lex.DistanceSuffix)
	}
	if hours != "" {
		desc = removeFirst(desc, regexp.QuoteMeta(hours)+e.lex.HoursSuffix)
	}
	desc = leadingSeparators.ReplaceAllString(desc, "")
	return strings.TrimSpace(desc)
}

// removeFirst deletes the first case-insensitive match of the pattern.
func removeFirst(s, pattern string) string {
	re, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		return s
	}
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return strings.TrimSpace(s[:loc[0]] + s[loc[1]:])
}
