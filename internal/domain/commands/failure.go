package commands

import (
	"errors"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/files"
)

// Codes for failures outside the file error taxonomy.
const (
	CodeUnknownCommand   = "UNKNOWN_COMMAND"
	CodeInvalidArguments = "INVALID_ARGUMENTS"
	CodeInternal         = "INTERNAL_ERROR"
)

// Failure is the wire form of a failed invocation.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FailureOf converts an Invoke error to its wire form. Command errors keep
// their code and message verbatim.
func FailureOf(err error) Failure {
	if cmdErr, ok := files.AsCommandError(err); ok {
		return Failure{Code: string(cmdErr.Code), Message: cmdErr.Message}
	}
	switch {
	case errors.Is(err, ErrUnknownCommand):
		return Failure{Code: CodeUnknownCommand, Message: err.Error()}
	case errors.Is(err, ErrInvalidArguments):
		return Failure{Code: CodeInvalidArguments, Message: err.Error()}
	}
	return Failure{Code: CodeInternal, Message: err.Error()}
}
