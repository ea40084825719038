package rangesum

// Baseline answers the same queries as Service with plain linear scans and
// no memoization. It exists so benchmark runs can compare cached and
// uncached execution over identical operation sequences.
type Baseline struct {
	arr *Array
}

// NewBaseline builds an uncached query service over arr.
func NewBaseline(arr *Array) (*Baseline, error) {
	if arr == nil {
		return nil, ErrNilArray
	}
	return &Baseline{arr: arr}, nil
}

// Sum scans the elements in [left, right].
func (b *Baseline) Sum(left, right int) (int64, error) {
	return b.arr.Sum(left, right)
}

// Update writes value at index.
func (b *Baseline) Update(index int, value int64) error {
	return b.arr.Set(index, value)
}

// Apply dispatches a single workload operation.
func (b *Baseline) Apply(op Op) error {
	switch op.Kind {
	case OpRange:
		_, err := b.Sum(op.Left, op.Right)
		return err
	case OpUpdate:
		return b.Update(op.Index, op.Value)
	default:
		return ErrUnknownOp
	}
}
