package game

import (
	"fmt"
	"strings"
)

// PlayerID identifies one of the four fixed seats at the table.
type PlayerID string

const (
	North PlayerID = "N"
	South PlayerID = "S"
	West  PlayerID = "W"
	East  PlayerID = "E"
)

// AllPlayers lists the seats in their canonical order.
var AllPlayers = [4]PlayerID{North, South, West, East}

// Valid reports whether p is one of the four seats.
func (p PlayerID) Valid() bool {
	_, ok := Seats[p]
	return ok
}

// Team is the color of one of the two fixed partnerships.
type Team string

const (
	Red  Team = "red"
	Blue Team = "blue"
)

// Seat is the immutable configuration of one player.
type Seat struct {
	ID       PlayerID
	NameKey  string // Translation key of the default display name.
	Team     Team
	Position string // top, bottom, left or right on the board.
}

// Seats is the fixed seating of the table.
var Seats = map[PlayerID]Seat{
	North: {ID: North, NameKey: "north", Team: Red, Position: "top"},
	South: {ID: South, NameKey: "south", Team: Red, Position: "bottom"},
	West:  {ID: West, NameKey: "west", Team: Blue, Position: "left"},
	East:  {ID: East, NameKey: "east", Team: Blue, Position: "right"},
}

// teammates is the static positional partner table. It is the canonical
// rule used to resolve the second winner of a DUO event.
var teammates = map[PlayerID]PlayerID{
	North: South,
	South: North,
	West:  East,
	East:  West,
}

// Teammate returns the fixed partner of p.
func Teammate(p PlayerID) (PlayerID, bool) {
	mate, ok := teammates[p]
	return mate, ok
}

// TeamOf returns the team color of p, or "" if p is not a seat.
func TeamOf(p PlayerID) Team {
	return Seats[p].Team
}

// Mode is the kind of score event.
type Mode string

const (
	Solo Mode = "solo" // One winner, three losers sharing the deduction.
	Duo  Mode = "duo"  // Two winners of the same team, two losers.
)

// Winners returns how many winners an event of this mode has, or 0 for an unknown mode.
func (m Mode) Winners() int {
	switch m {
	case Solo:
		return 1
	case Duo:
		return 2
	}
	return 0
}

// ScoreRecord is one entry of the ledger. Records are immutable once created.
type ScoreRecord struct {
	ID        string     `json:"id"`
	Timestamp int64      `json:"timestamp"` // Milliseconds since Unix epoch.
	Type      Mode       `json:"type"`
	Score     float64    `json:"score"`
	WinnerIDs []PlayerID `json:"winnerIds"`
	LoserIDs  []PlayerID `json:"loserIds"`
	Remark    string     `json:"remark"`
}

// HasWinner reports whether p is among the record's winners.
func (r ScoreRecord) HasWinner(p PlayerID) bool {
	for _, id := range r.WinnerIDs {
		if id == p {
			return true
		}
	}
	return false
}

func (r ScoreRecord) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Record %s: %s %s, winners=%v, losers=%v", r.ID, r.Type, FormatScore(r.Score), r.WinnerIDs, r.LoserIDs)
	if r.Remark != "" {
		fmt.Fprintf(&sb, ", remark=%q", r.Remark)
	}
	return sb.String()
}

// losersOf returns the seats not in winners, in canonical order.
func losersOf(winners []PlayerID) []PlayerID {
	losers := make([]PlayerID, 0, len(AllPlayers)-len(winners))
	for _, p := range AllPlayers {
		isWinner := false
		for _, w := range winners {
			if w == p {
				isWinner = true
				break
			}
		}
		if !isWinner {
			losers = append(losers, p)
		}
	}
	return losers
}
