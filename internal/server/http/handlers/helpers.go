package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polyforge/printdesk/internal/domain/errors"
	"github.com/polyforge/printdesk/internal/domain/model"
	"github.com/polyforge/printdesk/internal/server/http/dto"
)

// modelFileField is the multipart form field carrying the uploaded model.
const modelFileField = "modelFile"

func respondError(c *gin.Context, err error) {
	var ve *domainErrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: ve.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Order not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}

// readUpload materializes a multipart file header into an in-memory upload.
func readUpload(header *multipart.FileHeader) (*model.Upload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &model.Upload{
		FileName: header.Filename,
		Size:     header.Size,
		Data:     data,
	}, nil
}

// optionalString trims the value and maps empty strings to nil so absent and
// blank form fields persist as null.
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
