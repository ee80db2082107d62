package payload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"quill/internal/upload"
	"strings"

	"github.com/jellydator/validation"
)

// maxFieldSize caps a single text field of a multipart submission.
const maxFieldSize = 1 << 20

var ErrFieldTooLarge error = errors.New("form field too large")
var ErrSaveImage error = errors.New("saving image")

type ImageStore interface {
	Save(contentType string, body io.Reader) (upload.Result, error)
	Remove(publicPath string) error
}

type DecodeValidator struct{}

// DecodeAndValidateForm reads the url encoded login form.
func (dv DecodeValidator) DecodeAndValidateForm(r *http.Request) (AuthRequest, error) {
	if err := r.ParseForm(); err != nil {
		return AuthRequest{}, fmt.Errorf("parsing form: %w", err)
	}

	req := AuthRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	return req, dv.validatePayload(req)
}

// DecodeSubmission reads the title, content and image parts of a post
// submission. The image is handed to images as it streams in, so a size or
// type violation stops decoding early. Non multipart bodies are read as plain
// forms without an image.
func (dv DecodeValidator) DecodeSubmission(r *http.Request, images ImageStore) (SubmitRequest, upload.Result, error) {
	noImage := upload.Result{Status: upload.Missing}

	reader, err := r.MultipartReader()
	if errors.Is(err, http.ErrNotMultipart) {
		if err := r.ParseForm(); err != nil {
			return SubmitRequest{}, noImage, fmt.Errorf("parsing form: %w", err)
		}
		return SubmitRequest{
			Title:   strings.TrimSpace(r.PostForm.Get("title")),
			Content: strings.TrimSpace(r.PostForm.Get("content")),
		}, noImage, nil
	}
	if err != nil {
		return SubmitRequest{}, noImage, fmt.Errorf("reading multipart body: %w", err)
	}

	var req SubmitRequest
	result := noImage

	discard := func() {
		if result.Status == upload.Accepted {
			_ = images.Remove(result.Path)
		}
	}

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			discard()
			return SubmitRequest{}, noImage, fmt.Errorf("reading multipart part: %w", err)
		}

		if part.FileName() != "" {
			if part.FormName() != upload.FieldName || result.Status != upload.Missing {
				part.Close()
				discard()
				return req, upload.Result{Status: upload.Unexpected}, nil
			}

			result, err = images.Save(part.Header.Get("Content-Type"), part)
			part.Close()
			if err != nil {
				return SubmitRequest{}, noImage, fmt.Errorf("%w: %w", ErrSaveImage, err)
			}
			if result.Status != upload.Accepted {
				return req, result, nil
			}
			continue
		}

		value, err := readField(part)
		part.Close()
		if err != nil {
			discard()
			return SubmitRequest{}, noImage, err
		}

		switch part.FormName() {
		case "title":
			req.Title = strings.TrimSpace(value)
		case "content":
			req.Content = strings.TrimSpace(value)
		}
	}

	return req, result, nil
}

func readField(part io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(part, maxFieldSize+1))
	if err != nil {
		return "", fmt.Errorf("reading form field: %w", err)
	}
	if len(data) > maxFieldSize {
		return "", ErrFieldTooLarge
	}
	return string(data), nil
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
