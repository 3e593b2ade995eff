package assistant

import (
	"math/rand/v2"
	"time"

	"github.com/julianstephens/attune/internal/notify"
)

const (
	analyzeTimeout = 10 * time.Second
	intentTimeout  = 8 * time.Second

	replyTemperature = 0.6
	replyTopP        = 0.9
	replyMaxTokens   = 512

	maxAnalysisTodos = 5

	// intentConfidenceGate is the minimum model-reported confidence for a
	// habit-management classification to be accepted over the regex
	// fallback.
	intentConfidenceGate = 0.7
)

// Assistant answers chat turns using the remote model when available and the
// local heuristics otherwise. A nil client means no API key is configured;
// every method then degrades to its deterministic fallback without error.
type Assistant struct {
	client        Client
	notifications *notify.Center
	replyPolicy   Policy
	analyzePolicy Policy

	// pick selects a canned fallback reply; injectable for tests.
	pick func(n int) int
}

// New creates an assistant. client may be nil to run fully offline.
func New(client Client, notifications *notify.Center) *Assistant {
	return &Assistant{
		client:        client,
		notifications: notifications,
		replyPolicy:   ReplyPolicy(),
		analyzePolicy: AnalyzePolicy(),
		pick:          rand.IntN,
	}
}

// Online reports whether a remote client is configured.
func (a *Assistant) Online() bool {
	return a.client != nil
}

func (a *Assistant) cannedReply() string {
	return cannedReplies[a.pick(len(cannedReplies))]
}

func (a *Assistant) notifyInfo(message string) {
	if a.notifications != nil {
		a.notifications.Info(message)
	}
}
