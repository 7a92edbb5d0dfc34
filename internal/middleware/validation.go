package middleware

import (
	"mime/multipart"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedFileKey is the fiber.Ctx local holding the checked *multipart.FileHeader.
const ValidatedFileKey = "validated_file"

// UploadField is the multipart field carrying the document.
const UploadField = "file"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(maxUploadBytes int64) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(maxUploadBytes),
	}
}

// ValidateUpload requires a multipart file under UploadField.
func (vm *ValidationMiddleware) ValidateUpload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile(UploadField)
		if err != nil {
			file = nil
		}

		if errors := vm.validator.ValidateUpload(file); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedFileKey, file)
		return c.Next()
	}
}

// ValidatedFile returns the file stored by ValidateUpload.
func ValidatedFile(c *fiber.Ctx) (*multipart.FileHeader, error) {
	file, ok := c.Locals(ValidatedFileKey).(*multipart.FileHeader)
	if !ok || file == nil {
		return nil, domain.NewMissingInputError(domain.MsgNoFileUploaded)
	}
	return file, nil
}
