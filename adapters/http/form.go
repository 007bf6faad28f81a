package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/validator"
)

const (
	imageField      = "image"
	avatarField     = "avatar"
	clearImageField = "clear_image"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// imageChangeFromForm reads the optional file part plus the clear flag. A file
// wins over clear_image. The caller closes the returned closer once the use
// case has finished.
func imageChangeFromForm(c *gin.Context, field string) (media.ImageChange, io.Closer, error) {
	fileHeader, err := c.FormFile(field)
	if err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return media.ImageChange{}, nil, apperror.NewInternal("failed to open file", err)
		}
		return media.ReplaceImage(media.StagedFile{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Reader:      file,
		}), file, nil
	}
	if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return media.ImageChange{}, nil, apperror.NewInvalidInput("cannot read '"+field+"' part", err)
	}

	if clear, _ := strconv.ParseBool(c.PostForm(clearImageField)); clear {
		return media.ClearImage(), nopCloser{}, nil
	}
	return media.KeepImage(), nopCloser{}, nil
}

func bindingError(err error) *apperror.AppError {
	return apperror.NewInvalidInput(validator.FormatValidationError(err), err)
}

func queryLimit(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return limit
}

func splitQuery(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
