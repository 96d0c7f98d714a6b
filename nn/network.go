package nn

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-matrix/matrix"
)

// Network is an ordered stack of layers.
type Network struct {
	layers []*Layer
	rng    *rand.Rand
}

// NewNetwork returns an empty network whose layers draw their initial
// weights from a generator seeded with seed.
func NewNetwork(seed int64) *Network {
	return &Network{rng: rand.New(rand.NewSource(seed))}
}

// AddLayer appends a freshly initialized in×out layer. in must equal the
// output size of the current last layer.
func (n *Network) AddLayer(in, out int, act Activation) error {
	if last := len(n.layers); last > 0 && n.layers[last-1].OutputSize() != in {
		return fmt.Errorf("%w: layer %d outputs %d, next layer expects %d",
			ErrLayerMismatch, last-1, n.layers[last-1].OutputSize(), in)
	}

	layer, err := NewLayer(in, out, act, n.rng)
	if err != nil {
		return err
	}
	n.layers = append(n.layers, layer)
	return nil
}

// Layers returns the layers in evaluation order. The slice is a copy; the
// layers are shared.
func (n *Network) Layers() []*Layer {
	return append([]*Layer(nil), n.layers...)
}

// Forward runs input through every layer in turn.
func (n *Network) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if len(n.layers) == 0 {
		return nil, ErrEmptyNetwork
	}

	x := input
	for i, layer := range n.layers {
		y, err := layer.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("nn: layer %d: %w", i, err)
		}
		x = y
	}
	return x, nil
}
