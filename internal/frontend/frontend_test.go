package frontend

import (
	"errors"
	"testing"

	"github.com/janpfeifer/TuoLaJi/internal/game"
)

func TestParseScore(t *testing.T) {
	req, err := parseScore(game.Duo, game.West, " 20 ", "")
	if err != nil {
		t.Fatalf("parseScore: %v", err)
	}
	if req.Points != 20 || req.Initiator != game.West || req.Mode != game.Duo {
		t.Errorf("parseScore = %+v", req)
	}

	for _, points := range []string{"", "abc", "0", "-3", "NaN", "Inf"} {
		if _, err := parseScore(game.Solo, game.North, points, ""); !errors.Is(err, game.ErrInvalidPoints) {
			t.Errorf("parseScore(%q) error = %v, want ErrInvalidPoints", points, err)
		}
	}
}

func TestSignedScore(t *testing.T) {
	for v, want := range map[float64]string{
		0:          "0",
		30:         "+30",
		-10:        "-10",
		10.0 / 3:   "+3.3",
		-20.0 / 3:  "-6.7",
		-0.0000001: "0",
	} {
		if got := signedScore(v); got != want {
			t.Errorf("signedScore(%v) = %q, want %q", v, got, want)
		}
	}
}
