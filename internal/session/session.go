package session

import (
	"github.com/google/uuid"

	"quizgame/internal/prompt"
	"quizgame/internal/question"
)

// Session is one pass through a chosen question sequence.
type Session struct {
	ID        string
	Questions []question.Question
	Score     int
	Total     int
}

// New starts a session over the given questions.
func New(questions []question.Question) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Questions: questions,
		Total:     len(questions),
	}
}

// Outcome is the final tally of a session.
type Outcome struct {
	Score int
	Total int
	// Ended is true when input ran out or was interrupted before the last question.
	Ended bool
	// Reason is StreamClosed or Interrupted when Ended is set.
	Reason prompt.Kind
}

// record increments the score for a correct answer, never past Total.
func (s *Session) record(correct bool) {
	if correct && s.Score < s.Total {
		s.Score++
	}
}
