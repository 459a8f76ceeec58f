package recommend

// Scoring weights. These are the single source of truth for ranking:
// the engine, the explanation payload, and the tests all read from here.
const (
	// defaultTagWeight applies to requested tags missing from the table.
	defaultTagWeight = 3.0

	// categoryMatchBonus is added when a place's category equals the
	// request's explicit category filter. Kept distinct from tag overlap.
	categoryMatchBonus = 15.0

	// openNowBonus is added on the "now" path to places whose opening
	// window is known and currently open. Places with unknown windows
	// survive the open-now filter but do not earn the bonus.
	openNowBonus = 10.0

	// socialBiasCap bounds the social bonus to this fraction of the
	// request's maximum possible base score.
	socialBiasCap = 0.30

	// DefaultMaxResults caps the ranked list when the caller does not.
	DefaultMaxResults = 20
)

// tagWeights maps experience tags to their scoring weight. Value tags
// (what a place delivers) outweigh atmosphere tags (how it feels).
var tagWeights = map[string]float64{
	"exceptional-food":  10,
	"hidden-gem":        9,
	"local-favorite":    9,
	"great-value":       8,
	"stunning-views":    8,
	"unique-experience": 8,

	"romantic":        5,
	"family-friendly": 5,
	"lively":          4,
	"relaxing":        4,
	"cozy":            4,
	"quiet":           3,
	"trendy":          3,
}

func tagWeight(tag string) float64 {
	if w, ok := tagWeights[tag]; ok {
		return w
	}
	return defaultTagWeight
}
