package handlers

import (
	"errors"
	"net/http"
	"strconv"

	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/media"

	"github.com/pocketbase/pocketbase/core"
)

// imageUpload resolves the "image" and "removeImage" fields against the
// stored value. A new upload wins over removal.
func imageUpload(e *core.RequestEvent, current string) (string, error) {
	next := current
	if e.Request.FormValue("removeImage") != "" {
		next = ""
	}

	files, err := e.FindUploadedFiles("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return next, nil
	case err != nil:
		return current, err
	}

	return media.EncodeImage(files[0])
}

func imageErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrImageTooLarge):
		return "Image must be 700KB or smaller"
	case errors.Is(err, domain.ErrNotImage):
		return "Please choose an image file"
	}
	return "Could not read the uploaded image"
}

// formList returns every value submitted for key.
func formList(e *core.RequestEvent, key string) []string {
	_ = e.Request.FormValue(key)
	return e.Request.Form[key]
}

// validationErrors extracts field errors from err, merging extra on top.
func validationErrors(err error, extra domain.ValidationErrors) domain.ValidationErrors {
	out := domain.ValidationErrors{}
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		for k, v := range verrs {
			out[k] = v
		}
	}
	for k, v := range extra {
		out.Add(k, v)
	}
	return out
}

func parseOrder(raw string, errs domain.ValidationErrors) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add("order", "Order must be a whole number")
	}
	return n
}

func parseRating(raw string, errs domain.ValidationErrors) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 5 {
		errs.Add("rating", "Choose a rating from 1 to 5")
	}
	return n
}
