package rules

import "github.com/shopspring/decimal"

// DefaultPrice applies to every piercing type missing from the price table.
var DefaultPrice = decimal.NewFromInt(90)

var priceTable = map[string]decimal.Decimal{
	"set of earlobes": decimal.NewFromInt(80),
	"earlobe":         decimal.NewFromInt(80),
	"earlobes":        decimal.NewFromInt(80),
	"industrial":      decimal.NewFromInt(100),
	"surface bar":     decimal.NewFromInt(120),
	"nipple":          decimal.NewFromInt(100),
	"nipple pair":     decimal.NewFromInt(150),
	"dermal":          decimal.NewFromInt(175),
	"dermal pair":     decimal.NewFromInt(250),
	"nostril":         decimal.NewFromInt(90),
	"tragus":          decimal.NewFromInt(90),
	"rook":            decimal.NewFromInt(90),
	"septum":          decimal.NewFromInt(90),
	"daith":           decimal.NewFromInt(90),
	"helix":           decimal.NewFromInt(90),
	"forward-helix":   decimal.NewFromInt(90),
	"conch":           decimal.NewFromInt(90),
	"anti-tragus":     decimal.NewFromInt(90),
	"snug":            decimal.NewFromInt(90),
	"eyebrow":         decimal.NewFromInt(90),
	"navel":           decimal.NewFromInt(90),
	"tongue":          decimal.NewFromInt(90),
	"lip":             decimal.NewFromInt(90),
	"labret":          decimal.NewFromInt(90),
	"monroe":          decimal.NewFromInt(90),
	"medusa":          decimal.NewFromInt(90),
}

// ResolvePrice looks the lower-cased type up by exact match. Unlike the
// downsize rules there is no substring matching here, so "daith piercing"
// prices at the default even though it downsizes as a daith.
func (e *Engine) ResolvePrice(piercingType string) decimal.Decimal {
	if price, ok := e.prices[normalize(piercingType)]; ok {
		return price
	}
	return e.defaultPrice
}
