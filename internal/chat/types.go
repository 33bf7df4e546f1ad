package chat

// AnswerInput is the input for answering one shopper message. The caller
// identity lives in model.Scope, not here.
type AnswerInput struct {
	Message string
}

// AnswerOutput is the result of answering a message.
type AnswerOutput struct {
	// Response is the HTML-rendered answer text.
	Response string
}
