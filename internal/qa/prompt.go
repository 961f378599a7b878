package qa

const preamble = "You are a helpful and concise Question-and-Answer system. " +
	"Please provide a direct answer to the following question:\n\n"

// BuildPrompt wraps a normalized question in the fixed instruction preamble
func BuildPrompt(question string) string {
	return preamble + "Question: " + question
}
