package game

// CardSequence is the ordered cycle of level ranks.
var CardSequence = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A1", "A2", "A3"}

// Side selects one of the two level counters.
type Side string

const (
	Left  Side = "left"  // Red team level.
	Right Side = "right" // Blue team level.
)

// Levels holds the index into CardSequence of each team's level.
type Levels struct {
	Left  int
	Right int
}

// Shift moves the level of side by delta, wrapping around CardSequence in
// both directions.
func (l Levels) Shift(side Side, delta int) Levels {
	switch side {
	case Left:
		l.Left = wrapIndex(l.Left + delta)
	case Right:
		l.Right = wrapIndex(l.Right + delta)
	}
	return l
}

// Reset returns both levels to the first card.
func (l Levels) Reset() Levels {
	return Levels{}
}

// Index returns the level index of side.
func (l Levels) Index(side Side) int {
	if side == Right {
		return l.Right
	}
	return l.Left
}

// Card returns the rank displayed for side.
func (l Levels) Card(side Side) string {
	return Card(l.Index(side))
}

// Card returns the rank at index i, wrapped into the sequence.
func Card(i int) string {
	return CardSequence[wrapIndex(i)]
}

func wrapIndex(i int) int {
	n := len(CardSequence)
	return ((i % n) + n) % n
}

// Round is the round counter; it never goes below FirstRound.
type Round int

// FirstRound is the initial and minimum round.
const FirstRound Round = 1

// Shift moves the round by delta, clamped at FirstRound.
func (r Round) Shift(delta int) Round {
	return max(FirstRound, r+Round(delta))
}
