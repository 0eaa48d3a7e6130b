package conversation

import (
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/pkg/content"
)

var interviewQuestions = []string{
	"What is the address of the property you'd like to feature?",
	"What are the standout features buyers will love about this home?",
	"Who is the ideal buyer for this property?",
	"What makes the neighborhood special?",
}

const (
	contentReadyMessage = "Thank you! I have everything I need. Your listing content is ready. You can copy it below or ask me to start a new interview from the dashboard."
	closingMessage      = "Your content has already been generated for this interview. Start a new chat to create content for another property."
)

// interview tracks positional answers for the guided content interview.
// stage is the index of the question currently waiting for an answer.
type interview struct {
	stage     int
	answers   []string
	generated string
}

func (iv *interview) done() bool {
	return iv.stage >= len(interviewQuestions)
}

// advance records one reply and returns the next engine message. Reply
// content never changes the flow.
func (iv *interview) advance(userText string) entity.Message {
	if iv.done() {
		return newMessage(entity.SenderAI, closingMessage, nil)
	}

	iv.answers = append(iv.answers, userText)
	iv.stage++

	if iv.done() {
		iv.generated = content.SynthesizeInterview(iv.answers)
		return newMessage(entity.SenderAI, contentReadyMessage, nil)
	}
	return newMessage(entity.SenderAI, interviewQuestions[iv.stage], nil)
}
