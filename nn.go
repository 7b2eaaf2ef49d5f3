package scalargrad

import (
	"fmt"
	"math/rand"
	"strings"
)

// Module is anything that owns trainable parameters built from Values.
// Neuron, Layer and MLP all satisfy it.
type Module interface {
	Parameters() []*Value
}

// ZeroGrad clears the gradients of every parameter in a module. Run it
// before a backward pass to drop gradients accumulated by earlier passes.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.Grad = 0
	}
}

// Neuron is one computational unit: a weighted sum of its inputs plus a
// bias, optionally passed through ReLU.
type Neuron struct {
	Weights   []*Value
	Bias      *Value
	NonLinear bool
}

// NewNeuron creates a neuron for nIn inputs. Weights start uniform in
// [-1, 1) and the bias starts at zero.
func NewNeuron(nIn int, nonLinear bool) *Neuron {
	weights := make([]*Value, nIn)
	for i := range weights {
		weights[i] = NewValue(rand.Float64()*2 - 1)
	}
	return &Neuron{
		Weights:   weights,
		Bias:      NewValue(0),
		NonLinear: nonLinear,
	}
}

// Forward computes the neuron's activation: the dot product of weights and
// inputs, plus the bias, through ReLU when the neuron is non-linear.
// len(x) must equal len(n.Weights).
func (n *Neuron) Forward(x []*Value) *Value {
	sum := NewValue(0)
	for i, w := range n.Weights {
		sum = sum.Add(w.Mul(x[i]))
	}
	out := sum.Add(n.Bias)
	if n.NonLinear {
		return out.Relu()
	}
	return out
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Value {
	params := make([]*Value, 0, len(n.Weights)+1)
	params = append(params, n.Weights...)
	return append(params, n.Bias)
}

func (n *Neuron) String() string {
	kind := "Linear"
	if n.NonLinear {
		kind = "ReLU"
	}
	return fmt.Sprintf("%sNeuron(%d)", kind, len(n.Weights))
}

// Layer is a set of neurons sharing the same inputs.
type Layer struct {
	Neurons []*Neuron
}

// NewLayer creates a layer mapping nIn inputs to nOut outputs.
func NewLayer(nIn, nOut int, nonLinear bool) *Layer {
	neurons := make([]*Neuron, nOut)
	for i := range neurons {
		neurons[i] = NewNeuron(nIn, nonLinear)
	}
	return &Layer{Neurons: neurons}
}

// Forward computes every neuron's activation for the same input vector.
func (l *Layer) Forward(x []*Value) []*Value {
	out := make([]*Value, len(l.Neurons))
	for i, n := range l.Neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns all neuron parameters in layer order.
func (l *Layer) Parameters() []*Value {
	var params []*Value
	for _, n := range l.Neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

func (l *Layer) String() string {
	parts := make([]string, len(l.Neurons))
	for i, n := range l.Neurons {
		parts[i] = n.String()
	}
	return fmt.Sprintf("Layer([%s])", strings.Join(parts, ","))
}

// MLP is a feed-forward multi-layer perceptron.
//
// Example:
//
//	mlp := NewMLP(2, []int{16, 16, 1})
//
// - 2 dimensional input
// - 2 hidden layers with 16 ReLU units each
// - 1 dimensional linear output
type MLP struct {
	Layers []*Layer
}

// NewMLP creates a perceptron from nIn inputs through the given layer
// sizes. Every layer is ReLU except the last, which stays linear.
func NewMLP(nIn int, sizes []int) *MLP {
	dims := append([]int{nIn}, sizes...)
	layers := make([]*Layer, len(sizes))
	for i := range layers {
		layers[i] = NewLayer(dims[i], dims[i+1], i != len(sizes)-1)
	}
	return &MLP{Layers: layers}
}

// Forward propagates an input vector through every layer.
func (m *MLP) Forward(x []*Value) []*Value {
	for _, layer := range m.Layers {
		x = layer.Forward(x)
	}
	return x
}

// Parameters returns all parameters across all layers.
func (m *MLP) Parameters() []*Value {
	var params []*Value
	for _, layer := range m.Layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

func (m *MLP) String() string {
	parts := make([]string, len(m.Layers))
	for i, layer := range m.Layers {
		parts[i] = layer.String()
	}
	return fmt.Sprintf("MLP([%s])", strings.Join(parts, ","))
}
