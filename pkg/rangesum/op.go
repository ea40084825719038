package rangesum

import "fmt"

// Key identifies a closed index interval [Left, Right] into an Array.
// It is a comparable value type and serves as the cache key for memoized
// sums; equality is structural.
type Key struct {
	Left  int
	Right int
}

// Contains reports whether index falls inside the interval.
func (k Key) Contains(index int) bool {
	return k.Left <= index && index <= k.Right
}

func (k Key) String() string {
	return fmt.Sprintf("(%d,%d)", k.Left, k.Right)
}

// OpKind discriminates workload operations.
type OpKind uint8

const (
	// OpRange is a range-sum query.
	OpRange OpKind = iota + 1
	// OpUpdate is a point write.
	OpUpdate
)

func (k OpKind) String() string {
	switch k {
	case OpRange:
		return "range"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Op is a single workload operation: either a range query over [Left, Right]
// or a point update setting index Index to Value. Ops are immutable values
// produced by a generator and consumed by Service.Apply or Baseline.Apply.
type Op struct {
	Kind  OpKind
	Left  int
	Right int
	Index int
	Value int64
}

// RangeOp builds a range-sum query operation.
func RangeOp(left, right int) Op {
	return Op{Kind: OpRange, Left: left, Right: right}
}

// UpdateOp builds a point-update operation.
func UpdateOp(index int, value int64) Op {
	return Op{Kind: OpUpdate, Index: index, Value: value}
}
