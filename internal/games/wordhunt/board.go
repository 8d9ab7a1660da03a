package wordhunt

import (
	"strings"

	"github.com/openroom/partygames-go/internal/dependencies/random"
)

const (
	// BoardSize is the number of tiles on the 4x4 grid
	BoardSize = 16
	boardCols = 4
)

// letterPool weights letters roughly like a Scrabble bag so boards
// stay playable
const letterPool = "AAAAAAAAABBCCDDDDEEEEEEEEEEEEFFGGGHHIIIIIIIIIJKLLLLMMNNNNNNOOOOOOOOPPQRRRRRRSSSSTTTTTTUUUUVVWWXYYZ"

// GenerateBoard draws sixteen letters from the weighted pool
func GenerateBoard(rnd random.Random) []string {
	board := make([]string, BoardSize)
	for i := range board {
		board[i] = string(letterPool[rnd.Intn(len(letterPool))])
	}
	return board
}

// ValidatePath checks that path is a legal trace of word on the
// board: in-bounds tiles, no tile reused, each step adjacent
// (including diagonals), and the traced letters spell the word.
func ValidatePath(board []string, word string, path []int) bool {
	if len(path) != len(word) {
		return false
	}

	var traced strings.Builder
	used := make(map[int]bool, len(path))
	for i, idx := range path {
		if idx < 0 || idx >= len(board) {
			return false
		}
		if used[idx] {
			return false
		}
		used[idx] = true

		if i > 0 && !adjacent(path[i-1], idx) {
			return false
		}
		traced.WriteString(board[idx])
	}

	return strings.EqualFold(traced.String(), word)
}

func adjacent(a, b int) bool {
	rowDiff := abs(a/boardCols - b/boardCols)
	colDiff := abs(a%boardCols - b%boardCols)
	return rowDiff <= 1 && colDiff <= 1 && rowDiff+colDiff > 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Score returns the points awarded for a found word of the given
// length: 100 for 3 letters, rising steeply for longer words
func Score(wordLength int) int {
	switch wordLength {
	case 3:
		return 100
	case 4:
		return 400
	case 5:
		return 800
	case 6:
		return 1400
	case 7:
		return 1800
	default:
		return 2000 + (wordLength-8)*400
	}
}
