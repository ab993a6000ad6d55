package game

// Version of the app.
// Bumping this number will eventually make installed clients reload the WASM.
//
// If you set this to an empty string, a random version number will be
// used, and force the reload of the WASM on every restart (the reload
// still only happens after the first page is loaded, so there is a delay).
// This is useful during development.
var Version = "v0.1.0"

// RemarkSeparator joins the remarks aggregated for one player.
const RemarkSeparator = "、"

// Point is a position in screen pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
