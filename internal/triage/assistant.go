package triage

import (
	"context"
	"math/rand"
	"time"
)

// Greeting opens every assistant conversation.
const Greeting = "Hello! I'm your AI health assistant. How can I help you today?"

var cannedReplies = []string{
	"Based on what you've described, these symptoms could be related to several conditions. I'd recommend scheduling an appointment with a doctor for proper evaluation.",
	"It's important to monitor these symptoms. If they worsen or persist for more than a few days, please consult a healthcare professional.",
	"Have you tried any over-the-counter medications for relief? While these might help with symptoms, it's still important to get a proper diagnosis.",
	"Your symptoms could be related to seasonal allergies, a common cold, or something else. A doctor can help determine the cause and recommend appropriate treatment.",
	"Would you like me to help you find a specialist who can address these specific symptoms?",
	"While I can provide general information, remember that I'm not a replacement for professional medical advice. Always consult with a healthcare provider for diagnosis and treatment.",
}

// Assistant answers chat messages with a reply chosen at random from a
// fixed set, after a typing delay.
type Assistant struct {
	delay time.Duration
	rng   *rand.Rand
}

// NewAssistant builds an assistant with the given typing delay. rng may
// be nil, defaulting to a time-seeded source.
func NewAssistant(delay time.Duration, rng *rand.Rand) *Assistant {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Assistant{delay: delay, rng: rng}
}

// Reply returns a canned response to the message. The message content
// does not influence the choice. Cancelling ctx before the typing delay
// elapses returns ctx.Err() and no reply.
func (a *Assistant) Reply(ctx context.Context, message string) (string, error) {
	if err := wait(ctx, a.delay); err != nil {
		return "", err
	}
	return cannedReplies[a.rng.Intn(len(cannedReplies))], nil
}
