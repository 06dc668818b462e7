package domain

// ContentTier identifies which reading-level variant of the educational
// content a persona is shown.
type ContentTier string

// Valid content tiers.
const (
	ContentSimple   ContentTier = "simple"
	ContentStandard ContentTier = "standard"
)

// ContentVariant is one reading-level rendition of the onboarding
// educational material. Variants are immutable catalog data.
type ContentVariant struct {
	Tier  ContentTier `json:"tier"`
	Title string      `json:"title"`
	Body  string      `json:"body"`
}
