package game

import "fmt"

// LinesPerLevel is how many cleared rows advance the level by one.
const LinesPerLevel = 10

var lineScores = [5]int{0, 40, 100, 300, 1200}

// Score returns the points for clearing cleared rows at once on level. It
// panics if cleared is outside 1..4 or level is negative; no sequence of
// legal moves can produce either.
func Score(cleared, level int) int {
	if cleared < 1 || cleared > 4 {
		panic(fmt.Sprintf("game: cannot score %d cleared rows", cleared))
	}
	if level < 0 {
		panic(fmt.Sprintf("game: negative level %d", level))
	}
	return lineScores[cleared] * (level + 1)
}
