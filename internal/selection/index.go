package selection

// NotFound is the sentinel position for items absent from a collection
const NotFound = -1

// IndexOf locates an item within a collection by track-by key. An empty
// collection, or an item whose key matches nothing, yields NotFound.
func IndexOf[T any](items []T, item T, key KeyFunc[T]) int {
	k := key(item)
	for i, it := range items {
		if key(it) == k {
			return i
		}
	}
	return NotFound
}
