package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"sonrisitas-client/internal/pkg/constvars"
)

// Kind classifies a failure for call-site dispatch: the view layer decides
// between retry, forced logout and plain notification based on it.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindAuth
	KindValidation
	KindStorage
	KindDeserialization
	KindPermissionDenied
	KindUnsupportedMedia
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	case KindDeserialization:
		return "deserialization"
	case KindPermissionDenied:
		return "permission_denied"
	case KindUnsupportedMedia:
		return "unsupported_media"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type CustomError struct {
	Kind          Kind     `json:"kind"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, kind Kind, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

// KindOf reports the classification of err, or KindUnknown for errors that
// did not come out of this package.
func KindOf(err error) Kind {
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ClientMessageOf returns the user-visible message for err, falling back to a
// generic one for unclassified errors.
func ClientMessageOf(err error) string {
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.ClientMessage
	}
	return constvars.ErrClientCannotProcessRequest
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "unknown", FunctionName: "unknown"}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
