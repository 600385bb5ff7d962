package session

import (
	"math/rand/v2"
	"testing"

	"quizgame/internal/question"
)

func testBank(n int) question.Bank {
	bank := question.Bank{Version: 1}
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		bank.Questions = append(bank.Questions, question.Question{ID: id, Prompt: "Q " + id, Answers: []string{id}})
	}
	return bank
}

func TestSelectSubsetKeepsBankOrderWithoutShuffle(t *testing.T) {
	bank := testBank(10)
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 20; trial++ {
		picked := Select(bank, Selection{Count: 4}, rng)
		if len(picked) != 4 {
			t.Fatalf("expected 4 questions, got %d", len(picked))
		}
		for i := 1; i < len(picked); i++ {
			if picked[i-1].ID >= picked[i].ID {
				t.Fatalf("expected bank order, got %v then %v", picked[i-1].ID, picked[i].ID)
			}
		}
	}
}

func TestSelectSubsetHasNoDuplicates(t *testing.T) {
	bank := testBank(8)
	rng := rand.New(rand.NewPCG(3, 4))
	picked := Select(bank, Selection{Count: 8 - 1, Shuffle: true}, rng)
	seen := map[string]bool{}
	for _, q := range picked {
		if seen[q.ID] {
			t.Fatalf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSelectWholeBank(t *testing.T) {
	bank := testBank(5)
	for _, count := range []int{0, 5, 9, -1} {
		picked := Select(bank, Selection{Count: count}, nil)
		if len(picked) != 5 {
			t.Fatalf("count %d: expected whole bank, got %d", count, len(picked))
		}
		for i, q := range picked {
			if q.ID != bank.Questions[i].ID {
				t.Fatalf("count %d: expected bank order without shuffle", count)
			}
		}
	}
}

func TestSelectShufflePermutesWholeBank(t *testing.T) {
	bank := testBank(6)
	picked := Select(bank, Selection{Shuffle: true}, rand.New(rand.NewPCG(5, 6)))
	if len(picked) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(picked))
	}
	seen := map[string]bool{}
	for _, q := range picked {
		seen[q.ID] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected a permutation, got %v", picked)
	}
}

func TestResolveCount(t *testing.T) {
	cases := []struct {
		reply    string
		bankLen  int
		fallback int
		want     int
		ok       bool
	}{
		{"3", 10, 5, 3, true},
		{" 10 ", 10, 5, 10, true},
		{"abc", 10, 5, 5, false},
		{"", 10, 5, 5, false},
		{"0", 10, 5, 5, false},
		{"11", 10, 5, 5, false},
		{"-2", 10, 5, 5, false},
		{"abc", 3, 5, 3, false},
	}
	for _, tc := range cases {
		got, ok := ResolveCount(tc.reply, tc.bankLen, tc.fallback)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ResolveCount(%q, %d, %d) = (%d, %v), want (%d, %v)", tc.reply, tc.bankLen, tc.fallback, got, ok, tc.want, tc.ok)
		}
	}
}

func TestClampCount(t *testing.T) {
	if got := ClampCount(0, 4); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := ClampCount(9, 4); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := ClampCount(3, 0); got != 0 {
		t.Fatalf("expected 0 for empty bank, got %d", got)
	}
}
