package game

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"k8s.io/klog/v2"
)

// Snapshot is the persisted state of the scoreboard.
type Snapshot struct {
	Levels  Levels
	Round   Round
	Names   Directory
	History Ledger
	Lang    string
	FabPos  *Point // nil when no position was ever saved.
}

// JSON keys of the persisted snapshot.
const (
	keyLeftLevel  = "leftCardIdx"
	keyRightLevel = "rightCardIdx"
	keyRound      = "middleNum"
	keyNames      = "playerNames"
	keyHistory    = "history"
	keyLang       = "lang"
	keyFabPos     = "fabPos"
)

// DecodeSnapshot parses a persisted snapshot. It never fails: every field
// that is missing or malformed keeps its value from defaults, and invalid
// history records are dropped. Problems are logged.
func DecodeSnapshot(raw []byte, defaults Snapshot) Snapshot {
	s := defaults
	if len(raw) == 0 {
		return s
	}
	if !gjson.ValidBytes(raw) {
		klog.Warningf("DecodeSnapshot: invalid JSON (%d bytes), using defaults", len(raw))
		return s
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		klog.Warningf("DecodeSnapshot: snapshot is a %s, not an object, using defaults", root.Type)
		return s
	}

	if idx, ok := intField(root, keyLeftLevel); ok {
		s.Levels.Left = wrapIndex(idx)
	}
	if idx, ok := intField(root, keyRightLevel); ok {
		s.Levels.Right = wrapIndex(idx)
	}
	if r, ok := intField(root, keyRound); ok {
		s.Round = max(FirstRound, Round(r))
	}

	if names := root.Get(keyNames); names.IsObject() {
		d := make(Directory, len(AllPlayers))
		for _, p := range AllPlayers {
			d[p] = defaults.Names[p]
			if v := names.Get(string(p)); v.Type == gjson.String && v.String() != "" {
				d[p] = v.String()
			}
		}
		s.Names = d
	} else if names.Exists() {
		klog.Warningf("DecodeSnapshot: %s is not an object, using default names", keyNames)
	}

	if history := root.Get(keyHistory); history.IsArray() {
		records := history.Array()
		ledger := make(Ledger, 0, len(records))
		for i, v := range records {
			r, err := decodeRecord(v)
			if err != nil {
				klog.Warningf("DecodeSnapshot: dropping history record #%d: %v", i, err)
				continue
			}
			ledger = append(ledger, r)
		}
		s.History = ledger
	} else if history.Exists() {
		klog.Warningf("DecodeSnapshot: %s is not an array, using empty history", keyHistory)
	}

	if lang := root.Get(keyLang); lang.Type == gjson.String && lang.String() != "" {
		s.Lang = lang.String()
	}

	if pos := root.Get(keyFabPos); pos.IsObject() {
		x, y := pos.Get("x"), pos.Get("y")
		if x.Type == gjson.Number && y.Type == gjson.Number && isFinite(x.Float()) && isFinite(y.Float()) {
			s.FabPos = &Point{X: x.Float(), Y: y.Float()}
		} else {
			klog.Warningf("DecodeSnapshot: %s has non-numeric coordinates %s, ignoring", keyFabPos, pos.Raw)
		}
	}
	return s
}

func intField(root gjson.Result, key string) (int, bool) {
	v := root.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return 0, false
	}
	if v.Type != gjson.Number || v.Float() != math.Trunc(v.Float()) {
		klog.Warningf("DecodeSnapshot: %s=%s is not an integer, using default", key, v.Raw)
		return 0, false
	}
	return int(v.Int()), true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// decodeRecord validates one persisted record. Losers are recomputed from
// the winners, so an inconsistent loser list is repaired.
func decodeRecord(v gjson.Result) (ScoreRecord, error) {
	if !v.IsObject() {
		return ScoreRecord{}, fmt.Errorf("not an object: %s", v.Raw)
	}
	r := ScoreRecord{
		ID:        v.Get("id").String(),
		Timestamp: v.Get("timestamp").Int(),
		Type:      Mode(v.Get("type").String()),
		Score:     v.Get("score").Float(),
		Remark:    v.Get("remark").String(),
	}
	if r.ID == "" {
		return r, fmt.Errorf("missing id")
	}
	want := r.Type.Winners()
	if want == 0 {
		return r, fmt.Errorf("record %s: %w: %q", r.ID, ErrUnknownMode, r.Type)
	}
	if score := v.Get("score"); score.Type != gjson.Number || !isFinite(r.Score) || r.Score <= 0 {
		return r, fmt.Errorf("record %s: %w: %s", r.ID, ErrInvalidPoints, score.Raw)
	}
	seen := make(map[PlayerID]bool, want)
	for _, w := range v.Get("winnerIds").Array() {
		id := PlayerID(w.String())
		if !id.Valid() {
			return r, fmt.Errorf("record %s: %w: %q", r.ID, ErrUnknownPlayer, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		r.WinnerIDs = append(r.WinnerIDs, id)
	}
	if len(r.WinnerIDs) != want {
		return r, fmt.Errorf("record %s: %s event with %d winners", r.ID, r.Type, len(r.WinnerIDs))
	}
	if r.Type == Duo {
		if mate, _ := Teammate(r.WinnerIDs[0]); mate != r.WinnerIDs[1] {
			return r, fmt.Errorf("record %s: %w: %s and %s", r.ID, ErrInvalidPartner, r.WinnerIDs[0], r.WinnerIDs[1])
		}
	}
	r.LoserIDs = losersOf(r.WinnerIDs)
	return r, nil
}

// Encode serializes the snapshot by patching it onto prev, the previously
// persisted blob, so keys this version does not know about survive.
func (s Snapshot) Encode(prev []byte) ([]byte, error) {
	out := []byte("{}")
	if len(prev) > 0 && gjson.ValidBytes(prev) && gjson.ParseBytes(prev).IsObject() {
		out = append([]byte(nil), prev...)
	}

	history := s.History
	if history == nil {
		history = Ledger{}
	}
	names := make(map[string]string, len(s.Names))
	for p, name := range s.Names {
		names[string(p)] = name
	}

	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
		if err != nil {
			err = fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	set(keyLeftLevel, s.Levels.Left)
	set(keyRightLevel, s.Levels.Right)
	set(keyRound, int(s.Round))
	set(keyNames, names)
	set(keyHistory, []ScoreRecord(history))
	set(keyLang, s.Lang)
	if s.FabPos != nil {
		set(keyFabPos, *s.FabPos)
	} else if err == nil {
		out, err = sjson.DeleteBytes(out, keyFabPos)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
