package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		filename string
		want     DocumentFormat
	}{
		{"notes.pdf", FormatPDF},
		{"notes.txt", FormatText},
		{"archive.tar.txt", FormatText},
		{"NOTES.PDF", FormatUnknown},
		{"notes.TXT", FormatUnknown},
		{"notes.docx", FormatUnknown},
		{"pdf", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOf(tt.filename))
		})
	}
}

func TestExtraction_Empty(t *testing.T) {
	assert.True(t, Extraction{}.Empty())
	assert.True(t, Extraction{Text: " \n\t "}.Empty())
	assert.False(t, Extraction{Text: "text"}.Empty())
	assert.False(t, Extraction{Text: "text"}.Degraded())
	assert.True(t, Extraction{Reason: "broken"}.Degraded())
}

func TestQuizItem_HasAnswerOption(t *testing.T) {
	item := QuizItem{Answer: "brown", Options: []string{"quick", "brown", "jumps", "riverbank"}}
	assert.True(t, item.HasAnswerOption())

	item.Options = []string{"quick", "Brown", "jumps", "riverbank"}
	assert.False(t, item.HasAnswerOption())
}

func TestDomainError(t *testing.T) {
	cause := errors.New("disk on fire")
	err := NewInternalError("failed to read upload", cause)

	assert.Equal(t, "failed to read upload: disk on fire", err.Error())
	assert.ErrorIs(t, err, cause)

	var domainErr *DomainError
	require.True(t, errors.As(error(err), &domainErr))
	assert.Equal(t, CodeInternal, domainErr.Code)

	body, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"failed to read upload"}`, string(body))
}

func TestDomainError_Context(t *testing.T) {
	err := NewUnreadableDocumentError("scan.pdf")
	assert.Equal(t, CodeUnreadableDocument, err.Code)
	assert.Equal(t, MsgUnreadableDocument, err.Error())
	assert.Equal(t, map[string]interface{}{"filename": "scan.pdf"}, err.Context)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		NewMissingFieldError("file", MsgNoFileSelected),
		NewOutOfRangeError("size", 20, 1, 10),
	}
	assert.Equal(t, "No file selected; size must be between 1 and 10, got 20", errs.Error())
	assert.Equal(t, CodeMissingInput, errs[0].Code)
	assert.Equal(t, CodeInvalidInput, errs[1].Code)
}
