package validation

import (
	"mime/multipart"

	"doc-quiz/internal/domain"
)

// Validator provides request validation functionality
type Validator struct {
	maxUploadBytes int64
}

// NewValidator creates a validator. maxUploadBytes <= 0 disables the size check.
func NewValidator(maxUploadBytes int64) *Validator {
	return &Validator{maxUploadBytes: maxUploadBytes}
}

// ValidateUpload checks the uploaded file header. The file extension is not
// checked here; unsupported types surface as unreadable documents.
func (v *Validator) ValidateUpload(file *multipart.FileHeader) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if file == nil {
		return append(errors, domain.NewMissingFieldError("file", domain.MsgNoFileUploaded))
	}
	// Only an empty name counts as no selection; a blank name such as " "
	// is passed on and fails later as an unreadable document.
	if file.Filename == "" {
		errors = append(errors, domain.NewMissingFieldError("file", domain.MsgNoFileSelected))
	}
	if v.maxUploadBytes > 0 && file.Size > v.maxUploadBytes {
		errors = append(errors, domain.NewOutOfRangeError("file.size", file.Size, 0, v.maxUploadBytes))
	}

	return errors
}
