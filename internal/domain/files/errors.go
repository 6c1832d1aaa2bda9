package files

import (
	"errors"
	"io"
	"io/fs"
)

// Code identifies a failure class returned to the front end.
type Code string

const (
	CodeInvalidPath      Code = "INVALID_PATH"
	CodeFileNotFound     Code = "FILE_NOT_FOUND"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeInvalidText      Code = "INVALID_TEXT"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeWriteFailed      Code = "WRITE_FAILED"
	CodeIOError          Code = "IO_ERROR"
)

// Action is the message prefix naming the command that failed.
type Action string

const (
	ActionOpen   Action = "Open failed: "
	ActionSave   Action = "Save failed: "
	ActionSaveAs Action = "Save As failed: "
)

// ErrInvalidText reports file content that is not valid UTF-8.
var ErrInvalidText = errors.New("file is not valid UTF-8 text")

const invalidPathMessage = "Invalid file path. Please choose a valid path."

// CommandError is the error payload handed to the front end.
type CommandError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Error implements error
func (e *CommandError) Error() string {
	return e.Message
}

// AsCommandError unwraps err into a *CommandError.
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}

func invalidPathError() *CommandError {
	return &CommandError{Code: CodeInvalidPath, Message: invalidPathMessage}
}

// toCommandError maps an I/O failure into the closed taxonomy.
func toCommandError(action Action, err error) *CommandError {
	code, detail := classify(err)
	return &CommandError{
		Code:    code,
		Message: string(action) + detail,
	}
}

func classify(err error) (Code, string) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return CodeFileNotFound, "File does not exist."
	case errors.Is(err, fs.ErrPermission):
		return CodePermissionDenied, "Permission denied."
	case errors.Is(err, ErrInvalidText):
		return CodeInvalidText, "File is not valid UTF-8 text."
	case errors.Is(err, fs.ErrExist):
		return CodeAlreadyExists, "Target file already exists."
	case errors.Is(err, io.ErrShortWrite):
		return CodeWriteFailed, "Failed to write file."
	default:
		return CodeIOError, "I/O error occurred."
	}
}
