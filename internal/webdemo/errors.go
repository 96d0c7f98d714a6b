package webdemo

import (
	"errors"

	"github.com/cwbudde/algo-matrix/matrix"
	"github.com/cwbudde/algo-matrix/nn"
)

var (
	// ErrUnknownHandle is returned for a handle that was never issued or
	// has been released.
	ErrUnknownHandle = errors.New("webdemo: unknown matrix handle")

	// ErrNoNetwork is returned by Forward before BuildNetwork succeeded.
	ErrNoNetwork = errors.New("webdemo: no network built")
)

// ErrorKind classifies err for the host. It returns "" for nil and "Error"
// for anything it does not recognize.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, matrix.ErrInvalidDimension):
		return kindInvalidDimension
	case errors.Is(err, matrix.ErrIndexOutOfRange):
		return kindIndexOutOfRange
	case errors.Is(err, matrix.ErrShapeMismatch):
		return kindShapeMismatch
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return kindDimensionMismatch
	case errors.Is(err, ErrUnknownHandle):
		return kindUnknownHandle
	case errors.Is(err, ErrNoNetwork),
		errors.Is(err, nn.ErrLayerMismatch),
		errors.Is(err, nn.ErrUnknownActivation),
		errors.Is(err, nn.ErrEmptyNetwork):
		return kindNetwork
	default:
		return "Error"
	}
}
