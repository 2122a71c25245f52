package merge

import "strings"

// Tier names a generation quality level. Each tier maps to a distinct
// backing model; the high tier additionally requests a larger output size.
type Tier string

const (
	TierStandard Tier = "standard"
	TierHigh     Tier = "high"
)

const (
	defaultStandardModel = "gemini-2.5-flash-image"
	defaultHighResModel  = "gemini-3-pro-image-preview"

	// Output-size hint sent with high-tier requests. The standard model
	// rejects the field, so it is never sent there.
	highResImageSize = "2K"
)

// ParseTier sanitizes free-form user input into a supported tier.
func ParseTier(s string) Tier {
	if strings.ToLower(strings.TrimSpace(s)) == string(TierHigh) {
		return TierHigh
	}
	return TierStandard
}

// ModelCatalog resolves tiers to concrete model identifiers. Zero fields
// fall back to the defaults when the catalog passes through NewMerger.
type ModelCatalog struct {
	Standard string
	High     string
}

// DefaultCatalog returns the stock tier-to-model mapping.
func DefaultCatalog() ModelCatalog {
	return ModelCatalog{Standard: defaultStandardModel, High: defaultHighResModel}
}

// ModelConfig returns the backing model for the tier plus the output-size
// hint to send alongside it. The hint is non-empty only for the high tier.
func (c ModelCatalog) ModelConfig(t Tier) (model, imageSize string) {
	if t == TierHigh {
		return c.High, highResImageSize
	}
	return c.Standard, ""
}
