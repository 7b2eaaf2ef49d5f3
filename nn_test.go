package scalargrad

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// setWeights overwrites a neuron's random initialization so forward math is
// deterministic in tests.
func setWeights(n *Neuron, weights []float64, bias float64) {
	for i, w := range weights {
		n.Weights[i].Data = w
	}
	n.Bias.Data = bias
}

func TestNeuronForward(t *testing.T) {
	n := NewNeuron(2, false)
	setWeights(n, []float64{2.0, -3.0}, 0.5)

	x := []*Value{NewValue(1.0), NewValue(0.5)}
	out := n.Forward(x)

	// 2*1 + (-3)*0.5 + 0.5 = 1
	if !scalar.EqualWithinAbs(out.Data, 1.0, 1e-12) {
		t.Errorf("linear neuron output = %g, want 1", out.Data)
	}
}

func TestNeuronReluClamps(t *testing.T) {
	n := NewNeuron(1, true)
	setWeights(n, []float64{1.0}, 0)

	if out := n.Forward([]*Value{NewValue(-2.0)}); out.Data != 0 {
		t.Errorf("ReLU neuron output for negative pre-activation = %g, want 0", out.Data)
	}
	if out := n.Forward([]*Value{NewValue(2.0)}); out.Data != 2 {
		t.Errorf("ReLU neuron output for positive pre-activation = %g, want 2", out.Data)
	}
}

func TestNeuronGradients(t *testing.T) {
	n := NewNeuron(2, false)
	setWeights(n, []float64{2.0, -3.0}, 0.5)

	x := []*Value{NewValue(1.0), NewValue(0.5)}
	n.Forward(x).Backward()

	// d out/d w_i = x_i, d out/d b = 1, d out/d x_i = w_i
	if n.Weights[0].Grad != 1.0 || n.Weights[1].Grad != 0.5 {
		t.Errorf("weight grads = (%g, %g), want (1, 0.5)", n.Weights[0].Grad, n.Weights[1].Grad)
	}
	if n.Bias.Grad != 1 {
		t.Errorf("bias grad = %g, want 1", n.Bias.Grad)
	}
	if x[0].Grad != 2.0 || x[1].Grad != -3.0 {
		t.Errorf("input grads = (%g, %g), want (2, -3)", x[0].Grad, x[1].Grad)
	}
}

func TestNeuronParameters(t *testing.T) {
	n := NewNeuron(4, true)
	if got := len(n.Parameters()); got != 5 {
		t.Errorf("neuron parameter count = %d, want 5 (weights + bias)", got)
	}
}

func TestNeuronInitRange(t *testing.T) {
	n := NewNeuron(64, true)
	for i, w := range n.Weights {
		if w.Data < -1 || w.Data >= 1 {
			t.Errorf("weight %d initialized to %g, want [-1, 1)", i, w.Data)
		}
	}
	if n.Bias.Data != 0 {
		t.Errorf("bias initialized to %g, want 0", n.Bias.Data)
	}
}

func TestLayerForwardShape(t *testing.T) {
	l := NewLayer(3, 5, true)
	x := []*Value{NewValue(1), NewValue(2), NewValue(3)}
	if out := l.Forward(x); len(out) != 5 {
		t.Errorf("layer output size = %d, want 5", len(out))
	}
	if got := len(l.Parameters()); got != 5*(3+1) {
		t.Errorf("layer parameter count = %d, want 20", got)
	}
}

func TestMLPConstruction(t *testing.T) {
	m := NewMLP(3, []int{4, 4, 1})

	if len(m.Layers) != 3 {
		t.Fatalf("layer count = %d, want 3", len(m.Layers))
	}
	// 3*4+4 + 4*4+4 + 4*1+1 = 41
	if got := len(m.Parameters()); got != 41 {
		t.Errorf("parameter count = %d, want 41", got)
	}
	// Hidden layers are ReLU, output layer is linear.
	for i, layer := range m.Layers {
		wantNonLinear := i != len(m.Layers)-1
		for _, n := range layer.Neurons {
			if n.NonLinear != wantNonLinear {
				t.Errorf("layer %d neuron non-linearity = %v, want %v", i, n.NonLinear, wantNonLinear)
			}
		}
	}
}

// TestMLPGradientFlow fixes all parameters to positive values so every ReLU
// stays active, then checks gradients reach every parameter.
func TestMLPGradientFlow(t *testing.T) {
	m := NewMLP(2, []int{2, 1})
	for _, layer := range m.Layers {
		for _, n := range layer.Neurons {
			for _, w := range n.Weights {
				w.Data = 0.5
			}
			n.Bias.Data = 0.1
		}
	}

	x := []*Value{NewValue(1.0), NewValue(2.0)}
	out := m.Forward(x)
	if len(out) != 1 {
		t.Fatalf("output size = %d, want 1", len(out))
	}

	// Hidden units: 0.5*1 + 0.5*2 + 0.1 = 1.6 each; output: 0.5*1.6*2 + 0.1.
	if !scalar.EqualWithinAbs(out[0].Data, 1.7, 1e-12) {
		t.Errorf("forward output = %g, want 1.7", out[0].Data)
	}

	out[0].Backward()
	for i, p := range m.Parameters() {
		if p.Grad == 0 {
			t.Errorf("parameter %d received no gradient", i)
		}
	}
}

func TestModuleZeroGrad(t *testing.T) {
	m := NewMLP(2, []int{2, 1})
	x := []*Value{NewValue(0.5), NewValue(-0.5)}
	m.Forward(x)[0].Backward()

	ZeroGrad(m)
	for i, p := range m.Parameters() {
		if p.Grad != 0 {
			t.Errorf("parameter %d grad = %g after ZeroGrad, want 0", i, p.Grad)
		}
	}
}

func TestModuleStrings(t *testing.T) {
	n := NewNeuron(3, true)
	if got := n.String(); got != "ReLUNeuron(3)" {
		t.Errorf("neuron String() = %q, want %q", got, "ReLUNeuron(3)")
	}
	if got := NewNeuron(2, false).String(); got != "LinearNeuron(2)" {
		t.Errorf("neuron String() = %q, want %q", got, "LinearNeuron(2)")
	}

	m := NewMLP(2, []int{2, 1})
	s := m.String()
	if !strings.HasPrefix(s, "MLP([") || !strings.Contains(s, "ReLUNeuron(2)") || !strings.Contains(s, "LinearNeuron(2)") {
		t.Errorf("MLP String() = %q, want layer/neuron summary", s)
	}
}
