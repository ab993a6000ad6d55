package control

// SwipeThreshold is the vertical travel, in pixels, above which a touch is a swipe.
const SwipeThreshold = 30.0

// ClassifySwipe returns +1 for an upward swipe, -1 for a downward one and
// 0 when the pointer moved SwipeThreshold pixels or less.
func ClassifySwipe(startY, endY float64) int {
	diff := startY - endY
	switch {
	case diff > SwipeThreshold:
		return 1
	case diff < -SwipeThreshold:
		return -1
	}
	return 0
}

// ClassifyTap returns the step of a tap at y on a tile spanning
// [top, top+height): the top quarter steps down (-1), the bottom quarter
// steps up (+1), and the middle does nothing.
func ClassifyTap(y, top, height float64) int {
	if height <= 0 {
		return 0
	}
	rel := (y - top) / height
	switch {
	case rel < 0 || rel >= 1:
		return 0
	case rel < 0.25:
		return -1
	case rel >= 0.75:
		return 1
	}
	return 0
}
