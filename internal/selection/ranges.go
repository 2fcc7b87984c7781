package selection

// SelectBetween selects every item of visible lying between anchor and
// clicked in display order, both endpoints included. It only ever adds to
// the set; callers wanting "replace with range" clear via DeselectAllExcept
// with the boundary pair first. A boundary that is not present in the
// visible collection degrades the range to the clicked item alone.
func SelectBetween[T any](set *Set[T], visible []T, anchor, clicked T) {
	if IndexOf(visible, clicked, set.key) == NotFound {
		set.Select(clicked)
		return
	}
	if IndexOf(visible, anchor, set.key) == NotFound {
		anchor = clicked
	}

	anchorKey := set.key(anchor)
	clickedKey := set.key(clicked)
	seenAnchor, seenClicked := false, false
	for _, item := range visible {
		k := set.key(item)
		boundary := k == anchorKey || k == clickedKey
		if k == anchorKey {
			seenAnchor = true
		}
		if k == clickedKey {
			seenClicked = true
		}
		// Between the two encounter points exactly one flag is set
		if boundary || seenAnchor != seenClicked {
			set.Select(item)
		}
	}
}
