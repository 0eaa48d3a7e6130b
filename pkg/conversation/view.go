package conversation

import (
	"context"
	"sync"
	"time"

	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/apperror"
	"ai-realestate-be/internal/pkg/metrics"

	"github.com/google/uuid"
)

// View is one mounted chat screen. Its messages and interview progress live
// in memory only and vanish when the view is closed.
type View struct {
	ID       string
	Product  entity.Product
	Topic    string
	ChatPath string

	delay time.Duration

	mu        sync.Mutex
	messages  []entity.Message
	interview *interview

	closed    chan struct{}
	closeOnce sync.Once
}

// NewView opens a view and seeds it with the welcome message.
func NewView(p entity.Product, topic, chatPath string, replyDelay time.Duration) *View {
	v := &View{
		ID:       uuid.NewString(),
		Product:  p,
		Topic:    topic,
		ChatPath: chatPath,
		delay:    replyDelay,
		closed:   make(chan struct{}),
	}
	if IsInterview(topic) {
		v.interview = &interview{}
	}
	v.messages = []entity.Message{WelcomeMessage(p, topic)}
	return v
}

func (v *View) Messages() []entity.Message {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]entity.Message, len(v.messages))
	copy(out, v.messages)
	return out
}

// Stage is the interview question index, or -1 for general topics.
func (v *View) Stage() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.interview == nil {
		return -1
	}
	return v.interview.stage
}

// GeneratedContent is the synthesized interview post once all questions
// were answered.
func (v *View) GeneratedContent() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.interview == nil {
		return ""
	}
	return v.interview.generated
}

// Send records the user message and returns the engine reply after the
// simulated thinking delay. If the view closes or ctx ends first the reply
// is dropped and the interview does not advance.
func (v *View) Send(ctx context.Context, text string) (entity.Message, entity.Message, error) {
	v.mu.Lock()
	if v.isClosed() {
		v.mu.Unlock()
		return entity.Message{}, entity.Message{}, apperror.ErrViewClosed
	}
	sent := newMessage(entity.SenderUser, text, nil)
	v.messages = append(v.messages, sent)
	v.mu.Unlock()

	timer := time.NewTimer(v.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-v.closed:
		metrics.ChatRepliesDropped.Inc()
		return sent, entity.Message{}, apperror.ErrViewClosed
	case <-ctx.Done():
		metrics.ChatRepliesDropped.Inc()
		return sent, entity.Message{}, ctx.Err()
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.isClosed() {
		metrics.ChatRepliesDropped.Inc()
		return sent, entity.Message{}, apperror.ErrViewClosed
	}

	var reply entity.Message
	if v.interview != nil {
		reply = v.interview.advance(text)
	} else {
		reply = Respond(v.Product, v.Topic, text)
	}
	v.messages = append(v.messages, reply)
	return sent, reply, nil
}

// Close disposes the view. Pending replies are discarded.
func (v *View) Close() {
	v.closeOnce.Do(func() { close(v.closed) })
}

func (v *View) Closed() bool {
	return v.isClosed()
}

func (v *View) isClosed() bool {
	select {
	case <-v.closed:
		return true
	default:
		return false
	}
}
