package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"
)

var testNow = time.Date(2026, 10, 16, 20, 30, 0, 0, time.UTC)

func mustRecord(t *testing.T, req ScoreRequest) ScoreRecord {
	t.Helper()
	r, err := NewRecord(req, testNow)
	if err != nil {
		t.Fatalf("NewRecord(%+v) failed: %v", req, err)
	}
	return r
}

func sumTotals(totals map[PlayerID]float64) float64 {
	var sum float64
	for _, v := range totals {
		sum += v
	}
	return sum
}

func TestTotalsScenarios(t *testing.T) {
	tests := []struct {
		name string
		req  ScoreRequest
		want map[PlayerID]float64
	}{
		{
			name: "solo",
			req:  ScoreRequest{Mode: Solo, Initiator: North, Points: 30},
			want: map[PlayerID]float64{North: 30, South: -10, West: -10, East: -10},
		},
		{
			name: "duo",
			req:  ScoreRequest{Mode: Duo, Initiator: North, Points: 20},
			want: map[PlayerID]float64{North: 20, South: 20, West: -20, East: -20},
		},
		{
			name: "duo blue",
			req:  ScoreRequest{Mode: Duo, Initiator: East, Partner: West, Points: 25},
			want: map[PlayerID]float64{North: -25, South: -25, West: 25, East: 25},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ledger := Ledger{}.Add(mustRecord(t, tc.req))
			got := ledger.Totals()
			for _, p := range AllPlayers {
				if got[p] != tc.want[p] {
					t.Errorf("Totals()[%s] = %v, want %v", p, got[p], tc.want[p])
				}
			}
		})
	}
}

func TestSoloDeductsAThird(t *testing.T) {
	for _, points := range []float64{1, 7, 10, 15, 100, 0.5} {
		t.Run(fmt.Sprintf("%v", points), func(t *testing.T) {
			ledger := Ledger{}.Add(mustRecord(t, ScoreRequest{Mode: Solo, Initiator: West, Points: points}))
			totals := ledger.Totals()
			if totals[West] != points {
				t.Errorf("winner got %v, want %v", totals[West], points)
			}
			for _, p := range []PlayerID{North, South, East} {
				if totals[p] != -points/3 {
					t.Errorf("loser %s got %v, want %v", p, totals[p], -points/3)
				}
			}
		})
	}
}

func TestTotalsZeroSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	modes := []Mode{Solo, Duo}
	for trial := 0; trial < 50; trial++ {
		var ledger Ledger
		for n, i := rng.Intn(30)+1, 0; i < n; i++ {
			req := ScoreRequest{
				Mode:      modes[rng.Intn(len(modes))],
				Initiator: AllPlayers[rng.Intn(len(AllPlayers))],
				Points:    float64(rng.Intn(100) + 1),
			}
			ledger = ledger.Add(mustRecord(t, req))
		}
		if sum := sumTotals(ledger.Totals()); math.Abs(sum) > 1e-9 {
			t.Errorf("trial %d: totals sum to %v, want 0", trial, sum)
		}
	}
}

func TestNewRecord(t *testing.T) {
	r := mustRecord(t, ScoreRequest{Mode: Duo, Initiator: South, Points: 15, Remark: "  double  "})
	if r.ID == "" {
		t.Errorf("record has no id")
	}
	if r.Timestamp != testNow.UnixMilli() {
		t.Errorf("Timestamp = %d, want %d", r.Timestamp, testNow.UnixMilli())
	}
	if r.Remark != "double" {
		t.Errorf("Remark = %q, want trimmed %q", r.Remark, "double")
	}
	if len(r.WinnerIDs) != 2 || r.WinnerIDs[0] != South || r.WinnerIDs[1] != North {
		t.Errorf("WinnerIDs = %v, want [S N]", r.WinnerIDs)
	}
	if len(r.LoserIDs) != 2 || r.LoserIDs[0] != West || r.LoserIDs[1] != East {
		t.Errorf("LoserIDs = %v, want [W E]", r.LoserIDs)
	}

	other := mustRecord(t, ScoreRequest{Mode: Duo, Initiator: South, Points: 15})
	if other.ID == r.ID {
		t.Errorf("two records share id %s", r.ID)
	}
}

func TestNewRecordRejects(t *testing.T) {
	tests := []struct {
		name string
		req  ScoreRequest
		want error
	}{
		{"zero", ScoreRequest{Mode: Solo, Initiator: North, Points: 0}, ErrInvalidPoints},
		{"negative", ScoreRequest{Mode: Solo, Initiator: North, Points: -5}, ErrInvalidPoints},
		{"nan", ScoreRequest{Mode: Solo, Initiator: North, Points: math.NaN()}, ErrInvalidPoints},
		{"inf", ScoreRequest{Mode: Duo, Initiator: North, Points: math.Inf(1)}, ErrInvalidPoints},
		{"unknown player", ScoreRequest{Mode: Solo, Initiator: "X", Points: 10}, ErrUnknownPlayer},
		{"wrong partner", ScoreRequest{Mode: Duo, Initiator: North, Partner: West, Points: 10}, ErrInvalidPartner},
		{"unknown mode", ScoreRequest{Mode: "trio", Initiator: North, Points: 10}, ErrUnknownMode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRecord(tc.req, testNow); !errors.Is(err, tc.want) {
				t.Errorf("NewRecord(%+v) error = %v, want %v", tc.req, err, tc.want)
			}
			if err := ValidateScore(tc.req); !errors.Is(err, tc.want) {
				t.Errorf("ValidateScore(%+v) error = %v, want %v", tc.req, err, tc.want)
			}
		})
	}
}

func TestDefaultRemark(t *testing.T) {
	tests := []struct {
		points float64
		want   string
	}{
		{15, "6⚡"},
		{30, "7⚡"},
		{45, "8⚡"},
		{60, "王⚡"},
		{20, "20"},
		{12.5, "12.5"},
	}
	for _, tc := range tests {
		if got := DefaultRemark(tc.points); got != tc.want {
			t.Errorf("DefaultRemark(%v) = %q, want %q", tc.points, got, tc.want)
		}
	}
}

func TestRemarksAggregation(t *testing.T) {
	var ledger Ledger
	ledger = ledger.Add(mustRecord(t, ScoreRequest{Mode: Solo, Initiator: North, Points: 15}))
	ledger = ledger.Add(mustRecord(t, ScoreRequest{Mode: Solo, Initiator: North, Points: 15}))
	remarks := ledger.Remarks()
	if remarks[North] != "6⚡、6⚡" {
		t.Errorf("Remarks()[N] = %q, want %q", remarks[North], "6⚡、6⚡")
	}
	for _, p := range []PlayerID{South, West, East} {
		if remarks[p] != "" {
			t.Errorf("Remarks()[%s] = %q, want empty", p, remarks[p])
		}
	}

	ledger = ledger.Add(mustRecord(t, ScoreRequest{Mode: Duo, Initiator: South, Points: 20, Remark: "big"}))
	remarks = ledger.Remarks()
	if remarks[North] != "6⚡、6⚡、big" {
		t.Errorf("Remarks()[N] = %q, want %q", remarks[North], "6⚡、6⚡、big")
	}
	if remarks[South] != "big" {
		t.Errorf("Remarks()[S] = %q, want %q", remarks[South], "big")
	}
}

func TestDelete(t *testing.T) {
	var ledger Ledger
	var records []ScoreRecord
	for i, p := range AllPlayers {
		r := mustRecord(t, ScoreRequest{Mode: Solo, Initiator: p, Points: float64(10 * (i + 1))})
		records = append(records, r)
		ledger = ledger.Add(r)
	}

	deleted := ledger.Delete(records[1].ID)
	if len(deleted) != len(ledger)-1 {
		t.Fatalf("Delete removed %d records, want 1", len(ledger)-len(deleted))
	}
	if _, found := deleted.Find(records[1].ID); found {
		t.Errorf("record %s still present after Delete", records[1].ID)
	}

	var expected Ledger
	for i, r := range records {
		if i != 1 {
			expected = expected.Add(r)
		}
	}
	got, want := deleted.Totals(), expected.Totals()
	for _, p := range AllPlayers {
		if got[p] != want[p] {
			t.Errorf("after Delete, Totals()[%s] = %v, want %v", p, got[p], want[p])
		}
	}
	if fmt.Sprint(deleted.Remarks()) != fmt.Sprint(expected.Remarks()) {
		t.Errorf("after Delete, Remarks() = %v, want %v", deleted.Remarks(), expected.Remarks())
	}

	if again := deleted.Delete("no-such-id"); len(again) != len(deleted) {
		t.Errorf("deleting an absent id changed the ledger length from %d to %d", len(deleted), len(again))
	}
	if len(ledger) != len(AllPlayers) {
		t.Errorf("Delete modified the original ledger")
	}
}

func TestReversed(t *testing.T) {
	var ledger Ledger
	for _, p := range AllPlayers {
		ledger = ledger.Add(mustRecord(t, ScoreRequest{Mode: Solo, Initiator: p, Points: 10}))
	}
	rev := ledger.Reversed()
	for i := range ledger {
		if rev[i].ID != ledger[len(ledger)-1-i].ID {
			t.Errorf("Reversed()[%d] = %s, want %s", i, rev[i].ID, ledger[len(ledger)-1-i].ID)
		}
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{30, "30"},
		{-10, "-10"},
		{10.0 / 3, "3.3"},
		{-20.0 / 3, "-6.7"},
		{19.99999999, "20"},
		{-0.00001, "0"},
	}
	for _, tc := range tests {
		if got := FormatScore(tc.v); got != tc.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestTeammateMatchesTeamColor(t *testing.T) {
	for _, p := range AllPlayers {
		mate, ok := Teammate(p)
		if !ok {
			t.Fatalf("no teammate for %s", p)
		}
		if mate == p {
			t.Errorf("%s is its own teammate", p)
		}
		if TeamOf(mate) != TeamOf(p) {
			t.Errorf("teammate %s of %s is on team %s, want %s", mate, p, TeamOf(mate), TeamOf(p))
		}
	}
}
