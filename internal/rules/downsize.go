package rules

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryEarlobe Category = "earlobe"
	CategoryOral    Category = "oral"
	CategoryDaith   Category = "daith"
	CategoryDefault Category = "default"
)

const (
	OralDownsizeAfter    = 2 * 7 * 24 * time.Hour
	DaithDownsizeAfter   = 16 * 7 * 24 * time.Hour
	DefaultDownsizeAfter = 12 * 7 * 24 * time.Hour
)

var earlobeTerms = []string{"earlobe", "earlobes", "set of earlobes"}

var oralTerms = []string{"tongue", "lip", "labret", "monroe", "medusa", "snake bite", "spider bite"}

type downsizeRule struct {
	category Category
	matches  func(normalized string) bool
	// zero means the category is never downsized
	after time.Duration
}

// downsizeRules are evaluated in order and the first match wins. An input
// containing both "earlobe" and "lip" is an earlobe.
var downsizeRules = []downsizeRule{
	{
		category: CategoryEarlobe,
		matches:  func(s string) bool { return containsAny(s, earlobeTerms) },
	},
	{
		category: CategoryOral,
		matches:  func(s string) bool { return containsAny(s, oralTerms) },
		after:    OralDownsizeAfter,
	},
	{
		category: CategoryDaith,
		matches:  func(s string) bool { return strings.Contains(s, "daith") },
		after:    DaithDownsizeAfter,
	},
	{
		category: CategoryDefault,
		matches:  func(string) bool { return true },
		after:    DefaultDownsizeAfter,
	},
}

func (e *Engine) match(piercingType string) downsizeRule {
	normalized := normalize(piercingType)
	for _, rule := range e.downsizeRules {
		if rule.matches(normalized) {
			return rule
		}
	}
	// unreachable while the catch-all rule is last
	return downsizeRule{category: CategoryDefault, after: DefaultDownsizeAfter}
}

// Classify reports which downsize category a piercing type falls into.
func (e *Engine) Classify(piercingType string) Category {
	return e.match(piercingType).category
}

// ResolveDownsizeDate returns the date the initial jewelry should be swapped
// for a shorter post. ok is false for categories that are never downsized.
func (e *Engine) ResolveDownsizeDate(piercingType string, procedureDate time.Time) (time.Time, bool) {
	rule := e.match(piercingType)
	if rule.after == 0 {
		return time.Time{}, false
	}
	return procedureDate.Add(rule.after), true
}
