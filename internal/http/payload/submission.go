package payload

import (
	"errors"
	"quill/internal/core"
	"sort"

	"github.com/jellydator/validation"
)

const (
	TitleMinLength   = 5
	TitleMaxLength   = 100
	ContentMinLength = 1000
	ContentMaxLength = 5000
)

// SubmitRequest holds the trimmed text fields of a post submission.
type SubmitRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks every field and reports one message per failing field.
// Lengths are counted in runes.
func (s SubmitRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title,
			validation.Required.Error("Title is required."),
			validation.RuneLength(0, TitleMaxLength).Error("Title can have at most 100 characters."),
			validation.RuneLength(TitleMinLength, 0).Error("Title must contain at least 5 characters."),
		),
		validation.Field(&s.Content,
			validation.Required.Error("Content is required."),
			validation.RuneLength(0, ContentMaxLength).Error("Content can have at most 5000 characters."),
			validation.RuneLength(ContentMinLength, 0).Error("Content must contain at least 1000 characters."),
		),
	)
}

func (s SubmitRequest) ToCorePostMessage(imagePath string) core.PostMessage {
	return core.PostMessage{
		Title:     s.Title,
		Content:   s.Content,
		ImagePath: imagePath,
	}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var submitFieldOrder = map[string]int{"title": 0, "content": 1}

// FieldErrors flattens a validation error into a list ordered title, content.
func FieldErrors(err error) []FieldError {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return []FieldError{{Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(errs))
	for field, fieldErr := range errs {
		fieldErrors = append(fieldErrors, FieldError{Field: field, Message: fieldErr.Error()})
	}

	sort.Slice(fieldErrors, func(i, j int) bool {
		oi, iok := submitFieldOrder[fieldErrors[i].Field]
		oj, jok := submitFieldOrder[fieldErrors[j].Field]
		if iok != jok {
			return iok
		}
		if oi != oj {
			return oi < oj
		}
		return fieldErrors[i].Field < fieldErrors[j].Field
	})

	return fieldErrors
}
