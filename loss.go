package scalargrad

// SVMMaxMarginLoss computes the per-sample hinge loss relu(1 - y*out) for
// each output/label pair. Labels are expected to be +1 or -1. The losses
// are graph nodes, so gradients flow back into the outputs.
// len(labels) must equal len(outputs).
func SVMMaxMarginLoss(outputs []*Value, labels []float64) []*Value {
	losses := make([]*Value, len(outputs))
	for i, out := range outputs {
		losses[i] = out.MulScalar(-labels[i]).AddScalar(1).Relu()
	}
	return losses
}

// L2Regularization returns alpha * sum(p^2) over a module's parameters.
func L2Regularization(m Module, alpha float64) *Value {
	sum := NewValue(0)
	for _, p := range m.Parameters() {
		sum = sum.Add(p.Mul(p))
	}
	return sum.MulScalar(alpha)
}
