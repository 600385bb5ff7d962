package grade

// Letter is a display bucket derived from a percentage score.
type Letter string

const (
	LetterA  Letter = "A"
	LetterB  Letter = "B"
	LetterC  Letter = "C"
	LetterD  Letter = "D"
	LetterF  Letter = "F"
	LetterNA Letter = "N/A"
)

// Result is the grade for one finished session.
type Result struct {
	Letter     Letter
	Percentage float64
	Message    string
	// Graded is false when there were no questions to score.
	Graded bool
}

type band struct {
	min     float64
	letter  Letter
	message string
}

// bands are ordered from highest threshold to lowest.
var bands = []band{
	{min: 90, letter: LetterA, message: "Outstanding! You're a trivia master!"},
	{min: 80, letter: LetterB, message: "Great job! You really know your stuff."},
	{min: 70, letter: LetterC, message: "Good work! A solid result."},
	{min: 60, letter: LetterD, message: "Not bad! A little more practice and you'll be there."},
	{min: 0, letter: LetterF, message: "Keep practicing! Every quiz makes you sharper."},
}

// Grade maps score out of total to a letter grade and feedback message.
func Grade(score, total int) Result {
	if total <= 0 {
		return Result{Letter: LetterNA, Message: "No questions were answered."}
	}
	if score < 0 {
		score = 0
	}
	if score > total {
		score = total
	}
	percentage := 100 * float64(score) / float64(total)
	for _, b := range bands {
		if percentage >= b.min {
			return Result{Letter: b.letter, Percentage: percentage, Message: b.message, Graded: true}
		}
	}
	last := bands[len(bands)-1]
	return Result{Letter: last.letter, Percentage: percentage, Message: last.message, Graded: true}
}
