package question

// DefaultCount is the number of questions asked when the player does not choose.
const DefaultCount = 5

var builtin = []Question{
	{ID: "capital-france", Prompt: "What is the capital of France?", Answers: []string{"Paris"}},
	{ID: "two-plus-two", Prompt: "What is 2 + 2?", Answers: []string{"4", "four"}},
	{ID: "language", Prompt: "What programming language is this game written in?", Answers: []string{"Go", "golang"}},
	{ID: "mockingbird", Prompt: "Who wrote 'To Kill a Mockingbird'?", Answers: []string{"Harper Lee"}},
	{ID: "boiling-point", Prompt: "What is the boiling point of water in Celsius?", Answers: []string{"100", "one hundred", "100c", "100 degrees"}},
	{ID: "largest-planet", Prompt: "What is the largest planet in our solar system?", Answers: []string{"Jupiter"}},
	{ID: "red-planet", Prompt: "Which planet is known as the Red Planet?", Answers: []string{"Mars"}},
	{ID: "continents", Prompt: "How many continents are there?", Answers: []string{"7", "seven"}},
	{ID: "mona-lisa", Prompt: "Who painted the Mona Lisa?", Answers: []string{"Leonardo da Vinci", "da Vinci", "Leonardo"}},
	{ID: "chemical-gold", Prompt: "What is the chemical symbol for gold?", Answers: []string{"Au"}},
	{ID: "pacific", Prompt: "What is the largest ocean on Earth?", Answers: []string{"Pacific", "Pacific Ocean", "the Pacific"}},
	{ID: "hexagon-sides", Prompt: "How many sides does a hexagon have?", Answers: []string{"6", "six"}},
}

// Default returns the built-in question bank.
func Default() Bank {
	return Bank{Version: 1, Questions: Bank{Questions: builtin}.All()}
}
