// Package rules holds the studio's pricing, downsizing and jewelry
// compatibility tables. Every function is pure: the tables are built once and
// only read afterwards, so a single Engine is shared by all request handlers.
package rules

import (
	"maps"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Result is everything the studio needs to know about a piercing type at a
// given procedure time.
type Result struct {
	PiercingType    string            `json:"piercing_type"`
	Category        Category          `json:"category"`
	Price           decimal.Decimal   `json:"price"`
	DownsizeDueDate *time.Time        `json:"downsize_due_date"`
	JewelryOptions  map[string]string `json:"jewelry_options"`
}

type Engine struct {
	prices          map[string]decimal.Decimal
	defaultPrice    decimal.Decimal
	downsizeRules   []downsizeRule
	earlobeTerms    []string
	earlobeOptions  map[string]string
	standardOptions map[string]string
	now             func() time.Time
}

type Option func(*Engine)

// WithClock replaces time.Now as the reference for Evaluate calls that do not
// carry a procedure time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		prices:          priceTable,
		defaultPrice:    DefaultPrice,
		downsizeRules:   downsizeRules,
		earlobeTerms:    earlobeTerms,
		earlobeOptions:  earlobeJewelryOptions,
		standardOptions: standardJewelryOptions,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultEngine is built at process start and shared read-only.
var DefaultEngine = NewEngine()

func normalize(piercingType string) string {
	return strings.ToLower(piercingType)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// Evaluate resolves price, downsize date and jewelry options in one call.
// A nil at means the procedure happens now.
func (e *Engine) Evaluate(piercingType string, at *time.Time) Result {
	var procedureDate time.Time
	if at != nil {
		procedureDate = *at
	} else {
		procedureDate = e.now()
	}

	result := Result{
		PiercingType:   piercingType,
		Category:       e.Classify(piercingType),
		Price:          e.ResolvePrice(piercingType),
		JewelryOptions: e.ResolveJewelryOptions(piercingType),
	}
	if due, ok := e.ResolveDownsizeDate(piercingType, procedureDate); ok {
		result.DownsizeDueDate = &due
	}
	return result
}

// ResolveJewelryOptions returns a fresh copy of the earlobe set when the type
// mentions an earlobe, otherwise of the standard set.
func (e *Engine) ResolveJewelryOptions(piercingType string) map[string]string {
	if containsAny(normalize(piercingType), e.earlobeTerms) {
		return maps.Clone(e.earlobeOptions)
	}
	return maps.Clone(e.standardOptions)
}
