package session

import (
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"quizgame/internal/question"
)

// Selection describes how to draw questions from a bank.
type Selection struct {
	// Count is the number of questions; values outside [1, bank size] use the whole bank.
	Count   int
	Shuffle bool
}

// Select draws questions from the bank. Subsets are chosen at random; when
// Shuffle is false the chosen questions keep bank order.
func Select(bank question.Bank, sel Selection, rng *rand.Rand) []question.Question {
	all := bank.All()
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if sel.Count >= 1 && sel.Count < len(all) {
		picked := rng.Perm(len(all))[:sel.Count]
		if !sel.Shuffle {
			sort.Ints(picked)
		}
		subset := make([]question.Question, 0, sel.Count)
		for _, idx := range picked {
			subset = append(subset, all[idx])
		}
		return subset
	}
	if sel.Shuffle {
		rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	}
	return all
}

// ClampCount bounds a count to [1, bankLen].
func ClampCount(count, bankLen int) int {
	if bankLen < 1 {
		return 0
	}
	return min(max(count, 1), bankLen)
}

// ResolveCount parses a requested question count. Unparsable or out-of-range
// requests return the fallback clamped to the bank size and ok=false.
func ResolveCount(reply string, bankLen, fallback int) (count int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil || n < 1 || n > bankLen {
		return ClampCount(fallback, bankLen), false
	}
	return n, true
}
