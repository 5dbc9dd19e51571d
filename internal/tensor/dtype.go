// Package tensor provides shapes, multi-indices, the generic access capability
// and the fixed-shape Tensor value type used by the expression engine.
package tensor

// Scalar is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Scalar interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int
	Int32
	Int64
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int:
		return "int"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Scalar]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int:
		return Int
	case int32:
		return Int32
	case int64:
		return Int64
	default:
		panic("unsupported type")
	}
}
