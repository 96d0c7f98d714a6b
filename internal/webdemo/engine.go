package webdemo

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-matrix/matrix"
	"github.com/cwbudde/algo-matrix/nn"
)

// Handle identifies a matrix owned by the engine. Handles start at 1 and
// are never reused.
type Handle int

// Engine owns the matrices created on behalf of the host. The host only
// ever sees handles and copied values; element access goes through the
// bounds-checked accessors.
//
// The handle table is guarded by a mutex because host callbacks may
// arrive from more than one goroutine; individual operations hold the lock
// for their whole duration, so a matrix is never touched concurrently.
type Engine struct {
	mu     sync.Mutex
	next   Handle
	mats   map[Handle]*matrix.Matrix
	net    *nn.Network
	layers []LayerInfo
}

// LayerInfo describes one layer of the demo network.
type LayerInfo struct {
	Inputs     int
	Outputs    int
	Activation string
}

// NewEngine returns an engine with no matrices.
func NewEngine() *Engine {
	return &Engine{mats: make(map[Handle]*matrix.Matrix)}
}

func (e *Engine) store(m *matrix.Matrix) Handle {
	e.next++
	e.mats[e.next] = m
	return e.next
}

func (e *Engine) lookup(h Handle) (*matrix.Matrix, error) {
	m, ok := e.mats[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return m, nil
}

func (e *Engine) lookupPair(a, b Handle) (*matrix.Matrix, *matrix.Matrix, error) {
	ma, err := e.lookup(a)
	if err != nil {
		return nil, nil, err
	}
	mb, err := e.lookup(b)
	if err != nil {
		return nil, nil, err
	}
	return ma, mb, nil
}

// NewMatrix creates a zero-filled rows×cols matrix.
func (e *Engine) NewMatrix(rows, cols int) (Handle, error) {
	m, err := matrix.New(rows, cols)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store(m), nil
}

// FromValues creates a matrix from rows of values.
func (e *Engine) FromValues(values [][]float32) (Handle, error) {
	m, err := matrix.NewFromRows(values)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store(m), nil
}

// Release drops the matrix behind h.
func (e *Engine) Release(h Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.lookup(h); err != nil {
		return err
	}
	delete(e.mats, h)
	return nil
}

// Count returns the number of live matrices.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.mats)
}

// Dims returns the shape of h.
func (e *Engine) Dims(h Handle) (rows, cols int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.lookup(h)
	if err != nil {
		return 0, 0, err
	}
	rows, cols = m.Dims()
	return rows, cols, nil
}

// At returns element (row, col) of h.
func (e *Engine) At(h Handle, row, col int) (float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.lookup(h)
	if err != nil {
		return 0, err
	}
	return m.At(row, col)
}

// Set stores v at (row, col) of h.
func (e *Engine) Set(h Handle, row, col int, v float32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.lookup(h)
	if err != nil {
		return err
	}
	return m.Set(row, col, v)
}

// Fill sets every element of h to v.
func (e *Engine) Fill(h Handle, v float32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.lookup(h)
	if err != nil {
		return err
	}
	m.Fill(v)
	return nil
}

// Values returns a copy of the contents of h.
func (e *Engine) Values(h Handle) ([][]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.lookup(h)
	if err != nil {
		return nil, err
	}
	return m.Values(), nil
}

// Add stores a + b under a new handle.
func (e *Engine) Add(a, b Handle) (Handle, error) {
	return e.binary(a, b, (*matrix.Matrix).Add)
}

// Subtract stores a - b under a new handle.
func (e *Engine) Subtract(a, b Handle) (Handle, error) {
	return e.binary(a, b, (*matrix.Matrix).Sub)
}

// Multiply stores a × b under a new handle.
func (e *Engine) Multiply(a, b Handle) (Handle, error) {
	return e.binary(a, b, (*matrix.Matrix).Mul)
}

func (e *Engine) binary(a, b Handle, op func(*matrix.Matrix, *matrix.Matrix) (*matrix.Matrix, error)) (Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ma, mb, err := e.lookupPair(a, b)
	if err != nil {
		return 0, err
	}
	out, err := op(ma, mb)
	if err != nil {
		return 0, err
	}
	return e.store(out), nil
}

// AddInPlace adds b into a.
func (e *Engine) AddInPlace(a, b Handle) error {
	return e.inPlace(a, b, (*matrix.Matrix).AddInPlace)
}

// SubtractInPlace subtracts b from a.
func (e *Engine) SubtractInPlace(a, b Handle) error {
	return e.inPlace(a, b, (*matrix.Matrix).SubInPlace)
}

func (e *Engine) inPlace(a, b Handle, op func(*matrix.Matrix, *matrix.Matrix) (*matrix.Matrix, error)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ma, mb, err := e.lookupPair(a, b)
	if err != nil {
		return err
	}
	_, err = op(ma, mb)
	return err
}
