package question

// Bank is an ordered collection of questions loaded from YAML, JSON, or the built-in set.
type Bank struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a prompt with its accepted answers. The first answer is the canonical form.
type Question struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt  string   `json:"question" yaml:"question"`
	Answers []string `json:"answers" yaml:"answers"`
}

// Len returns the number of questions in the bank.
func (bank Bank) Len() int {
	return len(bank.Questions)
}

// All returns a copy of the bank's questions so callers cannot mutate the bank.
func (bank Bank) All() []Question {
	out := make([]Question, len(bank.Questions))
	for i, q := range bank.Questions {
		out[i] = q.clone()
	}
	return out
}

// Canonical returns the display form of the correct answer.
func (q Question) Canonical() string {
	if len(q.Answers) == 0 {
		return ""
	}
	return q.Answers[0]
}

// Check reports whether input is one of the question's accepted answers.
func (q Question) Check(input string) bool {
	return Matches(input, q.Answers)
}

func (q Question) clone() Question {
	q.Answers = append([]string(nil), q.Answers...)
	return q
}
