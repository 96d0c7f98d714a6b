package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation selects the elementwise nonlinearity of a layer.
type Activation int

const (
	ReLU Activation = iota
	Sigmoid
	Tanh
)

// String returns the lower-case name of a.
func (a Activation) String() string {
	switch a {
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation maps a name (case-insensitive) to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "relu":
		return ReLU, nil
	case "sigmoid":
		return Sigmoid, nil
	case "tanh":
		return Tanh, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}

func (a Activation) valid() bool {
	return a >= ReLU && a <= Tanh
}

// Apply evaluates the activation at x.
func (a Activation) Apply(x float32) float32 {
	switch a {
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	case Sigmoid:
		return sigmoid(x)
	case Tanh:
		return float32(math.Tanh(float64(x)))
	default:
		panic("nn: unknown activation " + a.String())
	}
}

// Derivative evaluates the derivative of the activation at x.
func (a Activation) Derivative(x float32) float32 {
	switch a {
	case ReLU:
		if x > 0 {
			return 1
		}
		return 0
	case Sigmoid:
		s := sigmoid(x)
		return s * (1 - s)
	case Tanh:
		t := float32(math.Tanh(float64(x)))
		return 1 - t*t
	default:
		panic("nn: unknown activation " + a.String())
	}
}

func sigmoid(x float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(x))))
}
