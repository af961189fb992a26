// Package media turns uploaded images into data URIs stored on the owning
// document.
package media

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pocketbase/pocketbase/tools/filesystem"
)

// MaxImageBytes is the ceiling on the raw upload, checked before encoding.
const MaxImageBytes = 700 * 1024

// EncodeImage validates an uploaded file and returns it as a data URI.
func EncodeImage(f *filesystem.File) (string, error) {
	if f.Size > MaxImageBytes {
		return "", core.ErrImageTooLarge
	}

	r, err := f.Reader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", f.OriginalName, err)
	}
	defer r.Close()

	return EncodeImageReader(r)
}

// EncodeImageReader reads at most one byte past the limit so oversized
// bodies are rejected without buffering them. The type comes from the file
// content, never from the client's Content-Type.
func EncodeImageReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxImageBytes {
		return "", core.ErrImageTooLarge
	}

	mimeType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	if !strings.HasPrefix(mimeType, "image/") {
		return "", core.ErrNotImage
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
