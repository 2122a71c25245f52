package merge

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// Invoker is the single call the orchestrator makes against the backing
// capability. The Gemini client adapter satisfies it in production; tests
// substitute fakes.
type Invoker interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Result is a successful merge, annotated with which attempt produced it.
type Result struct {
	ImageDataURI string
	Tier         Tier
	Model        string
	Fallback     bool
}

// Merger sequences generation attempts and applies the single permitted
// high-to-standard downgrade when the high tier is not entitled.
type Merger struct {
	invoker Invoker
	catalog ModelCatalog
	apiKey  string
	log     zerolog.Logger
}

// NewMerger wires the orchestrator. The invoker may be nil only when the
// API key is empty, in which case every Merge call fails pre-flight with
// a missing-credential error instead of panicking.
func NewMerger(invoker Invoker, catalog ModelCatalog, apiKey string, log zerolog.Logger) (*Merger, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" && invoker == nil {
		return nil, errors.New("merge: invoker is required when an API key is configured")
	}
	if catalog.Standard == "" {
		catalog.Standard = defaultStandardModel
	}
	if catalog.High == "" {
		catalog.High = defaultHighResModel
	}
	return &Merger{invoker: invoker, catalog: catalog, apiKey: apiKey, log: log}, nil
}

// Catalog exposes the resolved tier-to-model mapping.
func (m *Merger) Catalog() ModelCatalog {
	return m.catalog
}

// Merge runs at most two attempts. The second attempt exists for exactly
// one case: the requested tier was high and the first invocation was
// rejected as an access denial, which usually means the account is not
// entitled to the high-resolution model. Extraction failures (refusals,
// empty responses) are terminal on whichever attempt produced them.
func (m *Merger) Merge(ctx context.Context, req Request) (*Result, error) {
	if m.apiKey == "" {
		return nil, &Error{Category: CategoryMissingCredential, Message: msgMissingKey}
	}

	res, err := m.attempt(ctx, req, req.Tier)
	if err == nil {
		return res, nil
	}

	if req.Tier == TierHigh && CategoryOf(err) == CategoryAccessDenied {
		m.log.Warn().
			Str("model", m.catalog.High).
			Msg("high tier unavailable, retrying on standard model")
		res, err = m.attempt(ctx, req, TierStandard)
		if err == nil {
			res.Fallback = true
			return res, nil
		}
	}
	return nil, err
}

// attempt builds and issues one generation request at the given tier and
// extracts its result.
func (m *Merger) attempt(ctx context.Context, req Request, tier Tier) (*Result, error) {
	model, imageSize := m.catalog.ModelConfig(tier)

	resp, err := m.invoker.GenerateContent(ctx, model, buildContents(req), buildConfig(req.AspectRatio, imageSize))
	if err != nil {
		cat := classify(err)
		m.log.Error().Err(err).
			Str("model", model).
			Str("category", string(cat)).
			Msg("generation call failed")
		msg := err.Error()
		if msg == "" {
			msg = msgGenericFailed
		}
		return nil, &Error{Category: cat, Message: msg}
	}

	dataURI, err := extractImage(resp)
	if err != nil {
		m.log.Error().Err(err).
			Str("model", model).
			Msg("generation returned no usable image")
		return nil, err
	}
	return &Result{ImageDataURI: dataURI, Tier: tier, Model: model}, nil
}
