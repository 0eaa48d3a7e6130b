package conversation

import (
	"fmt"
	"time"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/entity"

	"github.com/google/uuid"
)

func newMessage(sender, content string, sources []entity.Source) entity.Message {
	return entity.Message{
		Id:        uuid.New(),
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Sources:   sources,
	}
}

// IsInterview reports whether topic runs the guided interview instead of
// the general acknowledgement flow.
func IsInterview(topic string) bool {
	return topic == constant.ConversationalInterviewTitle
}

// WelcomeMessage greets the user for a topic with the product's source
// prefix. The interview topic also asks its first question.
func WelcomeMessage(p entity.Product, topic string) entity.Message {
	if IsInterview(topic) {
		text := fmt.Sprintf(
			"Hello! I'm your %s assistant. Let's create great content together through a quick interview. I'll ask you %d questions.\n\n%s",
			p.DisplayName(), len(interviewQuestions), interviewQuestions[0],
		)
		return newMessage(entity.SenderAI, text, welcomeSources(p))
	}

	text := fmt.Sprintf(
		"Hello! I'm your %s assistant. I'm here to help you with %s. What would you like to know?",
		p.DisplayName(), topic,
	)
	return newMessage(entity.SenderAI, text, welcomeSources(p))
}

// Respond is the canned acknowledgement for every general-topic message.
// The user's text does not change the answer.
func Respond(p entity.Product, topic, userText string) entity.Message {
	text := fmt.Sprintf(
		"Thank you for your question about %s. Based on the resources available to %s, here is what you should keep in mind. Review the sources below for the details, and let me know if you'd like me to go deeper on any of them.",
		topic, p.DisplayName(),
	)
	return newMessage(entity.SenderAI, text, Sources(p))
}
