package handlers

import (
	"net/http"

	"imagefuse/internal/merge"
)

type tierInfo struct {
	Tier      string `json:"tier"`
	Model     string `json:"model"`
	ImageSize string `json:"image_size,omitempty"`
}

// Tiers lists the available quality tiers so the page can render its
// quality selector from live configuration.
func (a *App) Tiers(w http.ResponseWriter, r *http.Request) {
	var out []tierInfo
	for _, tier := range []merge.Tier{merge.TierStandard, merge.TierHigh} {
		model, size := a.Catalog.ModelConfig(tier)
		out = append(out, tierInfo{Tier: string(tier), Model: model, ImageSize: size})
	}
	a.json(w, http.StatusOK, map[string]any{"tiers": out})
}
