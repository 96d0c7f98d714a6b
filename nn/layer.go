package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-matrix/matrix"
)

// Layer is a fully connected layer with weights of shape in×out and a
// 1×out bias row.
type Layer struct {
	weights    *matrix.Matrix
	biases     *matrix.Matrix
	activation Activation
}

// NewLayer returns a layer with Xavier-uniform weights drawn from rng in
// [-sqrt(6/(in+out)), sqrt(6/(in+out))] and zero biases.
func NewLayer(in, out int, act Activation, rng *rand.Rand) (*Layer, error) {
	if !act.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownActivation, act)
	}

	weights, err := matrix.New(in, out)
	if err != nil {
		return nil, fmt.Errorf("nn: weights: %w", err)
	}
	biases, err := matrix.New(1, out)
	if err != nil {
		return nil, fmt.Errorf("nn: biases: %w", err)
	}

	limit := float32(math.Sqrt(6 / float64(in+out)))
	for i := 0; i < in; i++ {
		for j := 0; j < out; j++ {
			if err := weights.Set(i, j, (rng.Float32()*2-1)*limit); err != nil {
				return nil, err
			}
		}
	}

	return &Layer{weights: weights, biases: biases, activation: act}, nil
}

// NewLayerFrom builds a layer from explicit weights (in×out) and biases
// (1×out). Both are copied.
func NewLayerFrom(weights, biases *matrix.Matrix, act Activation) (*Layer, error) {
	if !act.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownActivation, act)
	}
	if biases.Rows() != 1 || biases.Cols() != weights.Cols() {
		return nil, fmt.Errorf("%w: biases %dx%d for weights %dx%d",
			ErrLayerMismatch, biases.Rows(), biases.Cols(), weights.Rows(), weights.Cols())
	}
	return &Layer{weights: weights.Clone(), biases: biases.Clone(), activation: act}, nil
}

// InputSize returns the number of inputs per sample.
func (l *Layer) InputSize() int { return l.weights.Rows() }

// OutputSize returns the number of outputs per sample.
func (l *Layer) OutputSize() int { return l.weights.Cols() }

// Activation returns the layer's activation.
func (l *Layer) Activation() Activation { return l.activation }

// Weights returns a copy of the weight matrix.
func (l *Layer) Weights() *matrix.Matrix { return l.weights.Clone() }

// Biases returns a copy of the bias row.
func (l *Layer) Biases() *matrix.Matrix { return l.biases.Clone() }

// Forward evaluates the layer on a batch of shape batch×InputSize() and
// returns a new batch×OutputSize() matrix. input is not modified.
func (l *Layer) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if input.Cols() != l.InputSize() {
		return nil, fmt.Errorf("%w: input has %d columns, layer expects %d",
			ErrLayerMismatch, input.Cols(), l.InputSize())
	}

	out, err := input.Mul(l.weights)
	if err != nil {
		return nil, err
	}

	for j := 0; j < out.Cols(); j++ {
		bias, err := l.biases.At(0, j)
		if err != nil {
			return nil, err
		}
		for i := 0; i < out.Rows(); i++ {
			if err := out.Update(i, j, func(v float32) float32 {
				return l.activation.Apply(v + bias)
			}); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
