package replacement

// Order exposes set's recency sequence (MRU→LRU) to tests.
func (r *recency) Order(set int) []int {
	return r.table.Order(set)
}
