package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPoints  = errors.New("points must be a positive number")
	ErrInvalidPartner = errors.New("partner is not the initiator's teammate")
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrUnknownMode    = errors.New("unknown score mode")
)

// Preset is a quick-pick score in the score input.
type Preset struct {
	Points float64
	Label  string
	Remark string // Canned remark used when the user leaves the remark empty.
}

// SoloPresets are the quick-picks of a SOLO event. Their remarks also drive
// the default remark policy of every event.
var SoloPresets = []Preset{
	{Points: 15, Label: "15 (6⚡)", Remark: "6⚡"},
	{Points: 30, Label: "30 (7⚡)", Remark: "7⚡"},
	{Points: 45, Label: "45 (8⚡)", Remark: "8⚡"},
	{Points: 60, Label: "60 (王⚡)", Remark: "王⚡"},
}

// DuoPresets are the quick-picks of a DUO event.
var DuoPresets = []Preset{
	{Points: 10, Label: "10", Remark: "10"},
	{Points: 15, Label: "15", Remark: "15"},
	{Points: 20, Label: "20", Remark: "20"},
	{Points: 25, Label: "25", Remark: "25"},
}

// PresetsFor returns the quick-picks shown for mode.
func PresetsFor(mode Mode) []Preset {
	if mode == Duo {
		return DuoPresets
	}
	return SoloPresets
}

// ScoreRequest is the user input that creates a ScoreRecord.
type ScoreRequest struct {
	Mode      Mode
	Initiator PlayerID
	Partner   PlayerID // Optional: resolved with Teammate when empty.
	Points    float64
	Remark    string // Optional: DefaultRemark is used when blank.
}

// ValidateScore checks the request without creating a record. It is the
// predicate behind the enabled state of the confirm button.
func ValidateScore(req ScoreRequest) error {
	_, err := resolveWinners(req)
	return err
}

func resolveWinners(req ScoreRequest) ([]PlayerID, error) {
	if math.IsNaN(req.Points) || math.IsInf(req.Points, 0) || req.Points <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPoints, req.Points)
	}
	if !req.Initiator.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, req.Initiator)
	}
	switch req.Mode {
	case Solo:
		return []PlayerID{req.Initiator}, nil
	case Duo:
		mate, ok := Teammate(req.Initiator)
		if !ok {
			return nil, fmt.Errorf("%w: no teammate for %s", ErrInvalidPartner, req.Initiator)
		}
		if req.Partner != "" && req.Partner != mate {
			return nil, fmt.Errorf("%w: %s is not the teammate of %s", ErrInvalidPartner, req.Partner, req.Initiator)
		}
		return []PlayerID{req.Initiator, mate}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
}

// DefaultRemark is the remark of an event whose remark was left blank: the
// canned remark of the matching SOLO preset, or the decimal points otherwise.
func DefaultRemark(points float64) string {
	for _, p := range SoloPresets {
		if p.Points == points {
			return p.Remark
		}
	}
	return strconv.FormatFloat(points, 'f', -1, 64)
}

// NewRecord validates req and creates the corresponding ScoreRecord.
func NewRecord(req ScoreRequest, now time.Time) (ScoreRecord, error) {
	winners, err := resolveWinners(req)
	if err != nil {
		return ScoreRecord{}, err
	}
	remark := strings.TrimSpace(req.Remark)
	if remark == "" {
		remark = DefaultRemark(req.Points)
	}
	return ScoreRecord{
		ID:        uuid.NewString(),
		Timestamp: now.UnixMilli(),
		Type:      req.Mode,
		Score:     req.Points,
		WinnerIDs: winners,
		LoserIDs:  losersOf(winners),
		Remark:    remark,
	}, nil
}

// Ledger is the ordered history of score events. It is treated as an
// immutable value: Add and Delete return new slices.
type Ledger []ScoreRecord

// Add returns a new ledger with r appended.
func (l Ledger) Add(r ScoreRecord) Ledger {
	next := make(Ledger, len(l), len(l)+1)
	copy(next, l)
	return append(next, r)
}

// Delete returns a new ledger without the record with the given id.
// Deleting an absent id returns an equal ledger.
func (l Ledger) Delete(id string) Ledger {
	next := make(Ledger, 0, len(l))
	for _, r := range l {
		if r.ID != id {
			next = append(next, r)
		}
	}
	return next
}

// Find returns the record with the given id.
func (l Ledger) Find(id string) (ScoreRecord, bool) {
	for _, r := range l {
		if r.ID == id {
			return r, true
		}
	}
	return ScoreRecord{}, false
}

// Reversed returns the records newest first, for display.
func (l Ledger) Reversed() []ScoreRecord {
	out := make([]ScoreRecord, len(l))
	for i, r := range l {
		out[len(l)-1-i] = r
	}
	return out
}

// Totals folds the ledger into per-player scores.
//
// A SOLO event gives the winner the full score and takes a third of it from
// each of the three losers. A DUO event gives each winner the score and takes
// the score from each loser. Both are zero-sum.
func (l Ledger) Totals() map[PlayerID]float64 {
	totals := make(map[PlayerID]float64, len(AllPlayers))
	for _, p := range AllPlayers {
		totals[p] = 0
	}
	for _, r := range l {
		deduct := r.Score
		if r.Type == Solo {
			deduct = r.Score / 3
		}
		for _, id := range r.WinnerIDs {
			totals[id] += r.Score
		}
		for _, id := range r.LoserIDs {
			totals[id] -= deduct
		}
	}
	return totals
}

// Remarks joins, per player, the non-empty remarks of the events they won,
// in ledger order.
func (l Ledger) Remarks() map[PlayerID]string {
	remarks := make(map[PlayerID]string, len(AllPlayers))
	for _, p := range AllPlayers {
		var parts []string
		for _, r := range l {
			if r.Remark != "" && r.HasWinner(p) {
				parts = append(parts, r.Remark)
			}
		}
		remarks[p] = strings.Join(parts, RemarkSeparator)
	}
	return remarks
}

// FormatScore renders a total rounded to one decimal, dropping a zero decimal.
func FormatScore(v float64) string {
	rounded := math.Round(v*10) / 10
	if rounded == 0 {
		return "0"
	}
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
