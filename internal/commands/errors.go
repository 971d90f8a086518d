package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Errors already wrapped by go-errors pass through untouched so categories
// assigned deeper in the stack survive the handler boundary.

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode("COMMAND_VALIDATION_FAILED")
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}

	code, msg := "COMMAND_CONTEXT_ERROR", "command context error"
	switch {
	case errors.Is(err, context.Canceled):
		code, msg = "COMMAND_CONTEXT_CANCELED", "command execution cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		code, msg = "COMMAND_CONTEXT_TIMEOUT", "command execution deadline exceeded"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode("COMMAND_EXECUTION_FAILED")
}
