package handler

import "quill/internal/http/payload"

const (
	invalidCredentialsMsg = "Invalid username or password."
	loginServerErrorMsg   = "Server error."
	loadPostsErrorMsg     = "Error loading posts."
	postNotFoundMsg       = "Post not found"
	postServerErrorMsg    = "Server error"
	missingFieldsMsg      = "Title, content and image are required!"
	saveErrorMsg          = "Error saving the data to the database."
	fileTooLargeMsg       = "File exceeds the maximum allowed size (10MB)."
	fileTypeMsg           = "File type not allowed. Only JPEG, PNG and GIF images are accepted."
	unexpectedFileMsg     = "Only a single image may be uploaded, in the image field."
	malformedFormMsg      = "Invalid form data."
	renderErrorMsg        = "Server error"
)

type ValidationResponse struct {
	Errors []payload.FieldError `json:"errors"`
}
