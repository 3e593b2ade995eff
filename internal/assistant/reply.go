package assistant

import (
	"context"

	"github.com/julianstephens/attune/internal/heuristics"
	"github.com/julianstephens/attune/internal/logger"
	"github.com/julianstephens/attune/internal/models"
)

// GenerateReply produces the bot's conversational reply for one user turn.
// Off-topic messages short-circuit to a fixed redirect without touching the
// model. Remote failures never surface: overload errors are retried with
// backoff and then replaced by a canned reply (with an informational banner),
// any other error falls back immediately. Crisis-pattern user text gets a
// fixed support preamble prepended to whatever the model returned.
func (a *Assistant) GenerateReply(ctx context.Context, history []models.ChatMessage, userText string) string {
	if heuristics.IsOffTopic(userText) {
		return offTopicRedirect
	}
	if a.client == nil {
		return a.cannedReply()
	}

	req := Request{
		System:      systemPrompt,
		History:     historyWindow(history),
		Prompt:      userText,
		Temperature: replyTemperature,
		TopP:        replyTopP,
		MaxTokens:   replyMaxTokens,
	}

	var text string
	err := a.replyPolicy.Do(ctx, func(ctx context.Context) error {
		out, err := a.client.Generate(ctx, req)
		if err != nil {
			return err
		}
		text = out
		return nil
	})
	if err != nil {
		logger.Warn("reply generation failed, using canned fallback", "error", err)
		if IsOverloaded(err) {
			a.notifyInfo("The AI is overloaded right now. I'll use a reliable fallback response.")
		}
		return a.cannedReply()
	}

	if heuristics.IsCrisisText(userText) {
		return crisisPreamble + text
	}
	return text
}

// historyWindow truncates the transcript to the window sent to the model:
// everything from the first user message onward, excluding the current turn
// (the caller passes it as the prompt).
func historyWindow(history []models.ChatMessage) []Turn {
	start := -1
	for i, m := range history {
		if m.Sender == models.SenderUser {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	turns := make([]Turn, 0, len(history)-start)
	for _, m := range history[start:] {
		role := RoleModel
		if m.Sender == models.SenderUser {
			role = RoleUser
		}
		turns = append(turns, Turn{Role: role, Text: m.Text})
	}
	return turns
}
