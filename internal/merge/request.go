package merge

import (
	"fmt"

	"google.golang.org/genai"
)

// ImageInput is one validated upload: raw bytes plus the MIME type the
// browser reported for the file.
type ImageInput struct {
	Data     []byte
	MIMEType string
}

// Request carries everything one user-initiated merge needs. Validation
// (file types, sizes, non-empty prompt) is the caller's job; the builders
// below pass inputs through untouched.
type Request struct {
	Instruction string
	ImageA      ImageInput
	ImageB      ImageInput
	AspectRatio string
	Tier        Tier
}

const instructionFrame = "Merge these two images into a single cohesive image according to the following description: %s"

func buildInstruction(userText string) string {
	return fmt.Sprintf(instructionFrame, userText)
}

// buildContents assembles the parts for one attempt. Order is load-bearing:
// instruction first, then image A, then image B. The backing models are
// sensitive to part ordering.
func buildContents(req Request) []*genai.Content {
	parts := []*genai.Part{
		genai.NewPartFromText(buildInstruction(req.Instruction)),
		genai.NewPartFromBytes(req.ImageA.Data, req.ImageA.MIMEType),
		genai.NewPartFromBytes(req.ImageB.Data, req.ImageB.MIMEType),
	}
	return []*genai.Content{{Parts: parts}}
}

func buildConfig(aspectRatio, imageSize string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: aspectRatio},
	}
	if imageSize != "" {
		cfg.ImageConfig.ImageSize = imageSize
	}
	return cfg
}
