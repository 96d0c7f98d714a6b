package webdemo

import (
	"fmt"

	"github.com/cwbudde/algo-matrix/nn"
)

// BuildNetwork replaces the demo network with one whose layer sizes are
// sizes[0] -> sizes[1] -> ... -> sizes[len-1], all using the activation
// named act. At least two sizes are required.
func (e *Engine) BuildNetwork(sizes []int, act string, seed int64) error {
	if len(sizes) < 2 {
		return fmt.Errorf("%w: need at least 2 sizes, got %d", nn.ErrLayerMismatch, len(sizes))
	}
	activation, err := nn.ParseActivation(act)
	if err != nil {
		return err
	}

	net := nn.NewNetwork(seed)
	layers := make([]LayerInfo, 0, len(sizes)-1)
	for i := 0; i+1 < len(sizes); i++ {
		if err := net.AddLayer(sizes[i], sizes[i+1], activation); err != nil {
			return fmt.Errorf("webdemo: layer %d: %w", i, err)
		}
		layers = append(layers, LayerInfo{
			Inputs:     sizes[i],
			Outputs:    sizes[i+1],
			Activation: activation.String(),
		})
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.net = net
	e.layers = layers
	return nil
}

// Layers describes the current demo network.
func (e *Engine) Layers() []LayerInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]LayerInfo(nil), e.layers...)
}

// Forward runs the matrix behind h through the demo network and stores the
// output under a new handle.
func (e *Engine) Forward(h Handle) (Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.net == nil {
		return 0, ErrNoNetwork
	}
	input, err := e.lookup(h)
	if err != nil {
		return 0, err
	}
	out, err := e.net.Forward(input)
	if err != nil {
		return 0, err
	}
	return e.store(out), nil
}
