package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"imagefuse/internal/merge"
)

const defaultAspectRatio = "1:1"

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

type mergeResponse struct {
	Image    string `json:"image"`
	Model    string `json:"model"`
	Tier     string `json:"tier"`
	Fallback bool   `json:"fallback"`
}

// MergeImages accepts a multipart form with two image files (image_a,
// image_b), a prompt, an optional aspect_ratio, and an optional quality
// tier, and responds with a displayable data URI. Input validation lives
// here; the merge core trusts what it is handed.
func (a *App) MergeImages(w http.ResponseWriter, r *http.Request) {
	// Two uploads plus form fields, with headroom for multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, 2*a.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(a.MaxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}

	imageA, err := a.readImage(r, "image_a")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	imageB, err := a.readImage(r, "image_b")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	prompt := strings.TrimSpace(r.FormValue("prompt"))
	if prompt == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "a merge description is required")
		return
	}

	aspectRatio := strings.TrimSpace(r.FormValue("aspect_ratio"))
	if aspectRatio == "" {
		aspectRatio = defaultAspectRatio
	}

	req := merge.Request{
		Instruction: prompt,
		ImageA:      imageA,
		ImageB:      imageB,
		AspectRatio: aspectRatio,
		Tier:        merge.ParseTier(r.FormValue("quality")),
	}

	res, err := a.Merger.Merge(r.Context(), req)
	if err != nil {
		category := merge.CategoryOf(err)
		a.error(w, statusFor(category), string(category), merge.UserMessage(err))
		return
	}

	a.json(w, http.StatusOK, mergeResponse{
		Image:    res.ImageDataURI,
		Model:    res.Model,
		Tier:     string(res.Tier),
		Fallback: res.Fallback,
	})
}

func (a *App) readImage(r *http.Request, field string) (merge.ImageInput, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return merge.ImageInput{}, fmt.Errorf("both images are required (missing %s)", field)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, a.MaxUploadBytes+1))
	if err != nil {
		return merge.ImageInput{}, fmt.Errorf("failed to read %s", field)
	}
	if int64(len(data)) > a.MaxUploadBytes {
		return merge.ImageInput{}, fmt.Errorf("%s exceeds the %d MB upload limit", field, a.MaxUploadBytes>>20)
	}
	if len(data) == 0 {
		return merge.ImageInput{}, fmt.Errorf("%s is empty", field)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if !allowedImageTypes[mimeType] {
		return merge.ImageInput{}, fmt.Errorf("%s has unsupported type %s (use PNG, JPEG, or WebP)", field, mimeType)
	}

	return merge.ImageInput{Data: data, MIMEType: mimeType}, nil
}

func statusFor(category merge.Category) int {
	switch category {
	case merge.CategoryMissingCredential:
		return http.StatusInternalServerError
	case merge.CategoryAccessDenied:
		return http.StatusForbidden
	case merge.CategoryModelRefused:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
