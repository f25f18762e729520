package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	domainErrors "github.com/polyforge/printdesk/internal/domain/errors"
	"github.com/polyforge/printdesk/internal/domain/model"
)

const minPhoneLength = 10

var allowedExtensions = map[string]bool{
	".stl": true,
	".obj": true,
	".3mf": true,
}

// ValidateDraft checks the order payload field rules, including the
// conditional delivery-address rule.
func ValidateDraft(draft model.OrderDraft) error {
	ve := &domainErrors.ValidationError{}

	if strings.TrimSpace(draft.Name) == "" {
		ve.Add("name", "name is required")
	}
	if len(strings.TrimSpace(draft.Phone)) < minPhoneLength {
		ve.Add("phone", fmt.Sprintf("phone must be at least %d characters", minPhoneLength))
	}
	if !draft.DeliveryMethod.Valid() {
		ve.Add("deliveryMethod", "delivery method must be delivery or meetup")
	}

	if draft.DeliveryMethod == model.DeliveryMethodDelivery {
		if draft.StreetAddress == nil || strings.TrimSpace(*draft.StreetAddress) == "" {
			ve.Add("streetAddress", "street address is required for delivery")
		}
		if draft.Zip == nil || strings.TrimSpace(*draft.Zip) == "" {
			ve.Add("zip", "zip is required for delivery")
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// ValidateUpload checks the model file name extension and size limits.
func ValidateUpload(upload model.Upload, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(upload.FileName))
	if !allowedExtensions[ext] {
		return domainErrors.NewValidation("modelFile", "file type must be .stl, .obj or .3mf")
	}
	if upload.Size <= 0 {
		return domainErrors.NewValidation("modelFile", "file is empty")
	}
	if upload.Size > maxBytes {
		return domainErrors.NewValidation("modelFile", fmt.Sprintf("file exceeds maximum size of %d bytes", maxBytes))
	}
	return nil
}
