package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTiersListsBothQualityLevels(t *testing.T) {
	app := newTestApp(&fakeMerger{})

	req := httptest.NewRequest(http.MethodGet, "/v1/tiers", nil)
	rec := httptest.NewRecorder()
	app.Tiers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Tiers []tierInfo `json:"tiers"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Tiers) != 2 {
		t.Fatalf("tiers = %d, want 2", len(body.Tiers))
	}
	if body.Tiers[0].Tier != "standard" || body.Tiers[0].ImageSize != "" {
		t.Fatalf("standard tier mismatch: %+v", body.Tiers[0])
	}
	if body.Tiers[1].Tier != "high" || body.Tiers[1].ImageSize != "2K" {
		t.Fatalf("high tier mismatch: %+v", body.Tiers[1])
	}
}
