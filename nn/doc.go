// Package nn builds feed-forward networks on top of the matrix package.
//
// A Layer computes activation(input × weights + biases) for a batch of
// inputs laid out one sample per row. A Network chains layers whose sizes
// line up. Only the forward pass is provided; there is no training.
package nn
