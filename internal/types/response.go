package types

// Exchange is one question/answer round trip shown to the user
type Exchange struct {
	Question   string
	Normalized string
	Answer     string
}

// Answered reports whether the exchange carries an answer to display
func (e Exchange) Answered() bool {
	return e.Answer != ""
}
