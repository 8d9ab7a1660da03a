package model

// WordScore is the private effect of a successful word submission:
// the canonical (lowercased) word and the points it earned
type WordScore struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}
