package merge

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Category identifies a stable class of generation failure. Categories
// drive both the fallback decision and the user-facing message.
type Category string

const (
	CategoryMissingCredential Category = "missing_credential"
	CategoryAccessDenied      Category = "access_denied"
	CategoryModelRefused      Category = "model_refused"
	CategoryNoImageProduced   Category = "no_image"
	CategoryTransport         Category = "transport"
	CategoryUnknown           Category = "unknown"
)

const (
	msgNoImage       = "No image generated. The model might have refused the request."
	msgAccessDenied  = "Your API key does not have access to the image generation model. Verify the key and make sure the Generative Language API is enabled for it."
	msgMissingKey    = "GEMINI_API_KEY is not configured."
	msgGenericFailed = "Failed to generate the image. Please try again."
)

// Error is a classified generation failure.
type Error struct {
	Category Category
	Message  string
}

func (e *Error) Error() string {
	return string(e.Category) + ": " + e.Message
}

// classify maps an invocation-level error onto a category. The matching
// mirrors the API's observable shape today: 403/404 status codes plus two
// literal substrings. Quota errors (429) are not access denials and never
// downgrade the tier.
func classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusForbidden || apiErr.Code == http.StatusNotFound {
			return CategoryAccessDenied
		}
	}
	msg := err.Error()
	if msg == "" {
		return CategoryUnknown
	}
	if strings.Contains(msg, "PERMISSION_DENIED") || strings.Contains(msg, "403") {
		return CategoryAccessDenied
	}
	return CategoryTransport
}

// CategoryOf extracts the failure category, defaulting to unknown for
// errors that did not come out of the merge pipeline.
func CategoryOf(err error) Category {
	var merr *Error
	if errors.As(err, &merr) {
		return merr.Category
	}
	return CategoryUnknown
}

// UserMessage renders the outward-facing text for a failure. It is applied
// once, at the HTTP boundary, after any fallback has run its course.
func UserMessage(err error) string {
	var merr *Error
	if errors.As(err, &merr) {
		switch merr.Category {
		case CategoryMissingCredential:
			return msgMissingKey
		case CategoryAccessDenied:
			return msgAccessDenied
		case CategoryModelRefused:
			return merr.Message
		case CategoryNoImageProduced:
			return msgNoImage
		}
		if merr.Message != "" {
			return merr.Message
		}
		return msgGenericFailed
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return msgGenericFailed
}
