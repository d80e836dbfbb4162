package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating a ForgeError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *ForgeError {
	if err == nil {
		return nil
	}

	// If it's already a ForgeError, preserve its properties but update the message
	var fe *ForgeError
	if errors.As(err, &fe) {
		return &ForgeError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       fe,
			Context:     fe.Context,
			Path:        fe.Path,
			Recoverable: fe.Recoverable,
		}
	}

	return &ForgeError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation,
	}
}

// WrapValidation wraps an error as a validation error
func WrapValidation(err error, code, message string) *ForgeError {
	return Wrap(err, ErrorTypeValidation, code, message)
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) *ForgeError {
	forgeErr := Wrap(err, ErrorTypeIO, code, message)
	if forgeErr != nil {
		forgeErr.Recoverable = false
	}
	return forgeErr
}

// WrapManifest wraps an error as a manifest error with the manifest path attached
func WrapManifest(err error, code, message, path string) *ForgeError {
	forgeErr := Wrap(err, ErrorTypeManifest, code, message)
	if forgeErr != nil {
		forgeErr.Path = path
		forgeErr.Recoverable = false
	}
	return forgeErr
}

// WrapCommand wraps an error as a command error
func WrapCommand(err error, code, message string) *ForgeError {
	forgeErr := Wrap(err, ErrorTypeCommand, code, message)
	if forgeErr != nil {
		forgeErr.Recoverable = false
	}
	return forgeErr
}
