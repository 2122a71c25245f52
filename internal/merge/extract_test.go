package merge

import (
	"encoding/base64"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func inlineResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestExtractImageInlineDataAnyPosition(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	resp := inlineResponse(
		&genai.Part{Text: "here is your merged image"},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: raw}},
	)

	uri, err := extractImage(resp)
	if err != nil {
		t.Fatalf("extractImage returned error: %v", err)
	}
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
	if uri != want {
		t.Fatalf("data URI = %q, want %q", uri, want)
	}
}

// The output MIME is pinned to PNG even when the model reports producing
// something else. A JPEG result is therefore mislabeled; this test
// documents that behavior rather than endorsing it.
func TestExtractImageNormalizesMIMEToPNG(t *testing.T) {
	resp := inlineResponse(
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}},
	)

	uri, err := extractImage(resp)
	if err != nil {
		t.Fatalf("extractImage returned error: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("data URI prefix = %q, want image/png", uri)
	}
}

func TestExtractImageLeadingTextIsRefusal(t *testing.T) {
	resp := inlineResponse(&genai.Part{Text: "I cannot merge those images."})

	_, err := extractImage(resp)
	if err == nil {
		t.Fatal("expected refusal error")
	}
	if CategoryOf(err) != CategoryModelRefused {
		t.Fatalf("category = %q, want %q", CategoryOf(err), CategoryModelRefused)
	}
	if UserMessage(err) != "I cannot merge those images." {
		t.Fatalf("refusal text not passed through: %q", UserMessage(err))
	}
}

func TestExtractImageNoCandidates(t *testing.T) {
	for _, resp := range []*genai.GenerateContentResponse{
		nil,
		{},
		{Candidates: []*genai.Candidate{{}}},
	} {
		_, err := extractImage(resp)
		if CategoryOf(err) != CategoryNoImageProduced {
			t.Fatalf("category = %q, want %q (resp %#v)", CategoryOf(err), CategoryNoImageProduced, resp)
		}
	}
}

func TestExtractImageIgnoresLaterCandidates(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "blocked"}}}},
			{Content: &genai.Content{Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("img")}},
			}}},
		},
	}

	_, err := extractImage(resp)
	if CategoryOf(err) != CategoryModelRefused {
		t.Fatalf("second candidate consulted: category = %q", CategoryOf(err))
	}
}
