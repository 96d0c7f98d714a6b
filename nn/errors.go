package nn

import "errors"

var (
	// ErrUnknownActivation is returned for an activation outside ReLU,
	// Sigmoid and Tanh.
	ErrUnknownActivation = errors.New("nn: unknown activation")

	// ErrLayerMismatch is returned when a layer's input size does not match
	// the output size of the layer before it, or an input batch has the
	// wrong number of columns.
	ErrLayerMismatch = errors.New("nn: layer size mismatch")

	// ErrEmptyNetwork is returned by Forward on a network without layers.
	ErrEmptyNetwork = errors.New("nn: network has no layers")
)
