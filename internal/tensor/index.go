package tensor

// Index is a multi-dimensional coordinate, one component per shape dimension.
type Index []int

// Clone returns a copy of the index.
func (idx Index) Clone() Index {
	clone := make(Index, len(idx))
	copy(clone, idx)
	return clone
}
