package merge

import (
	"encoding/base64"

	"google.golang.org/genai"
)

const dataURIPrefix = "data:image/png;base64,"

// extractImage turns a raw generation response into a displayable data
// URI. Only the first candidate is consulted: any of its parts may carry
// the image, and failing that, leading text is treated as the model
// declining the request. The MIME type is pinned to PNG regardless of
// what the part reports; see extract_test.go.
func extractImage(resp *genai.GenerateContentResponse) (string, error) {
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		content := resp.Candidates[0].Content
		for _, part := range content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return dataURIPrefix + base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
			}
		}
		if len(content.Parts) > 0 && content.Parts[0].Text != "" {
			return "", &Error{Category: CategoryModelRefused, Message: content.Parts[0].Text}
		}
	}
	return "", &Error{Category: CategoryNoImageProduced, Message: msgNoImage}
}
