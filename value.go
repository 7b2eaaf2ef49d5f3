package scalargrad

import (
	"fmt"
	"math"
)

// Value is the core unit of the autodiff engine.
//
// Think of this as a "number with memory":
// - Data is the actual number used in calculations.
// - Grad is "how much the terminal output changes if this number changes a little."
// - Children points to the input nodes used to create this value.
// - LocalGrads stores local derivative factors for each child.
// - Op labels the operation that created the node (diagnostics only).
//
// This structure allows us to build a computation graph during the forward
// pass and then send gradients backward with the chain rule. A Value is
// immutable once built except for Grad, which only backward passes write.
type Value struct {
	Data       float64
	Grad       float64
	Op         string
	Children   []*Value
	LocalGrads []float64
}

// NewValue creates a leaf node (a plain number with no inputs).
func NewValue(data float64) *Value {
	return &Value{Data: data}
}

// String reports the node in a compact diagnostic form.
func (v *Value) String() string {
	op := v.Op
	if op == "" {
		op = "input"
	}
	return fmt.Sprintf("Value(data=%.4f, grad=%.4f, op=%s)", v.Data, v.Grad, op)
}

// Add creates node z = x + y.
// Local derivatives:
// dz/dx = 1
// dz/dy = 1
//
// Addition commutes, so x.Add(y) and y.Add(x) carry identical derivatives.
func (v *Value) Add(other *Value) *Value {
	return &Value{
		Data:       v.Data + other.Data,
		Op:         "+",
		Children:   []*Value{v, other},
		LocalGrads: []float64{1, 1},
	}
}

// Sub creates node z = x - y.
// Local derivatives:
// dz/dx = 1
// dz/dy = -1
//
// Order matters here: the subtracted operand always gets derivative -1.
func (v *Value) Sub(other *Value) *Value {
	return &Value{
		Data:       v.Data - other.Data,
		Op:         "-",
		Children:   []*Value{v, other},
		LocalGrads: []float64{1, -1},
	}
}

// Mul creates node z = x * y.
// Local derivatives:
// dz/dx = y
// dz/dy = x
func (v *Value) Mul(other *Value) *Value {
	return &Value{
		Data:       v.Data * other.Data,
		Op:         "*",
		Children:   []*Value{v, other},
		LocalGrads: []float64{other.Data, v.Data},
	}
}

// Div creates node z = x / y.
// Local derivatives:
// dz/dx = 1/y
// dz/dy = -x/y^2   (power rule on x*y^-1)
//
// A zero-valued denominator is not guarded; the IEEE-754 result (Inf or
// NaN) flows into the node and its derivatives.
func (v *Value) Div(other *Value) *Value {
	return &Value{
		Data:       v.Data / other.Data,
		Op:         "/",
		Children:   []*Value{v, other},
		LocalGrads: []float64{1 / other.Data, -v.Data / (other.Data * other.Data)},
	}
}

// Pow creates node z = x^k for a plain numeric exponent k.
// Local derivative:
// dz/dx = k * x^(k-1)
//
// The exponent is not a graph node and carries no gradient. Differentiating
// with respect to a variable exponent is unsupported.
func (v *Value) Pow(k float64) *Value {
	return &Value{
		Data:       math.Pow(v.Data, k),
		Op:         fmt.Sprintf("^%g", k),
		Children:   []*Value{v},
		LocalGrads: []float64{k * math.Pow(v.Data, k-1)},
	}
}

// Neg creates node z = -x, implemented as x * -1.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Exp creates node z = e^x.
// Local derivative:
// dz/dx = e^x
func (v *Value) Exp() *Value {
	exp := math.Exp(v.Data)
	return &Value{
		Data:       exp,
		Op:         "exp",
		Children:   []*Value{v},
		LocalGrads: []float64{exp},
	}
}

// Log creates node z = ln(x).
// Local derivative:
// dz/dx = 1/x
func (v *Value) Log() *Value {
	return &Value{
		Data:       math.Log(v.Data),
		Op:         "log",
		Children:   []*Value{v},
		LocalGrads: []float64{1 / v.Data},
	}
}

// Relu applies the ReLU activation:
// relu(x) = max(0, x)
//
// Local derivative:
// 1 when x > 0, otherwise 0 (the subgradient at exactly 0 is taken as 0).
func (v *Value) Relu() *Value {
	grad := 0.0
	if v.Data > 0 {
		grad = 1.0
	}
	return &Value{
		Data:       math.Max(0, v.Data),
		Op:         "relu",
		Children:   []*Value{v},
		LocalGrads: []float64{grad},
	}
}

// Sigmoid applies the logistic activation:
// g(x) = 1 / (1 + e^-x)
//
// Local derivative:
// g'(x) = g(x) * (1 - g(x))
func (v *Value) Sigmoid() *Value {
	g := 1 / (1 + math.Exp(-v.Data))
	return &Value{
		Data:       g,
		Op:         "sigmoid",
		Children:   []*Value{v},
		LocalGrads: []float64{g * (1 - g)},
	}
}

// The *Scalar variants below accept a raw number where a binary operator
// would take a node. Each one promotes the literal to a leaf and applies the
// ordinary node-node operation, so the derivative bookkeeping is identical.
// For the non-commutative operations the operand order is spelled out in the
// name: SubScalar is v - x, ScalarSub is x - v.

// AddScalar creates node z = v + x (equivalently x + v).
func (v *Value) AddScalar(x float64) *Value {
	return v.Add(NewValue(x))
}

// SubScalar creates node z = v - x.
func (v *Value) SubScalar(x float64) *Value {
	return v.Sub(NewValue(x))
}

// ScalarSub creates node z = x - v.
func (v *Value) ScalarSub(x float64) *Value {
	return NewValue(x).Sub(v)
}

// MulScalar creates node z = v * x (equivalently x * v).
func (v *Value) MulScalar(x float64) *Value {
	return v.Mul(NewValue(x))
}

// DivScalar creates node z = v / x.
func (v *Value) DivScalar(x float64) *Value {
	return v.Div(NewValue(x))
}

// ScalarDiv creates node z = x / v.
func (v *Value) ScalarDiv(x float64) *Value {
	return NewValue(x).Div(v)
}
