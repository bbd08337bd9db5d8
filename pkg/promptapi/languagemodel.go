// ABOUTME: The capability and session interfaces a host runtime implements
// ABOUTME: Plus the prompt payload union: plain text or an ordered message list

package promptapi

import (
	"context"
	"fmt"
)

// PromptInput is the payload accepted by every session request: either plain
// text (Text) or an ordered list of structured messages (Messages). The
// union is closed.
type PromptInput interface {
	isPromptInput()
}

// Text is the plain-string shorthand; it normalizes to a single user message.
type Text string

func (Text) isPromptInput() {}

// Messages is the structured form of a prompt payload.
type Messages []Message

func (Messages) isPromptInput() {}

// InputMessages normalizes a payload to its message list.
func InputMessages(in PromptInput) []Message {
	switch v := in.(type) {
	case Text:
		return []Message{TextMessage(RoleUser, string(v))}
	case Messages:
		return []Message(v)
	}
	return nil
}

// ValidateInput checks a payload structurally. Nil payloads and unknown
// union members are rejected.
func ValidateInput(in PromptInput) error {
	switch v := in.(type) {
	case Text:
		return nil
	case Messages:
		for i, msg := range v {
			if err := msg.Validate(); err != nil {
				return fmt.Errorf("message %d: %w", i, err)
			}
		}
		return nil
	case nil:
		return fmt.Errorf("prompt input is nil")
	}
	return fmt.Errorf("unsupported prompt input %T", in)
}

// LanguageModel is the globally exposed capability object. The browser hosts
// it as a global; a Go host hands one to its consumers however it likes.
type LanguageModel interface {
	// Availability reports host readiness for sessions shaped like opts.
	// A nil opts asks about the default configuration.
	Availability(ctx context.Context, opts *CreateOptions) (Availability, error)

	// Params reports the host's sampling parameter defaults and limits.
	Params(ctx context.Context) (*Params, error)

	// Create yields a session handle. A nil opts is valid; the host
	// applies its defaults. If the model is still downloadable, creation
	// triggers the fetch and blocks under ctx until usable.
	Create(ctx context.Context, opts *CreateOptions) (Session, error)
}

// Session is a created conversation handle. Its numeric state — sampling
// parameters and quota totals — is mutated by the host as turns occur; this
// package only declares the accessors.
type Session interface {
	// Prompt runs a single-shot request and returns the full textual
	// result. Returns *QuotaExceededError when the input alone exceeds
	// the session's quota.
	Prompt(ctx context.Context, input PromptInput, opts *PromptOptions) (string, error)

	// PromptStreaming runs the same request but yields partial results as
	// the host produces them. The sequence is unbounded until the host
	// signals completion; no restart semantics are defined.
	PromptStreaming(ctx context.Context, input PromptInput, opts *PromptOptions) (*Stream, error)

	// MeasureInputUsage reports the token cost a payload would consume,
	// without generating output or mutating session state.
	MeasureInputUsage(ctx context.Context, input PromptInput, opts *PromptOptions) (float64, error)

	// Append adds messages to the session's context without requesting a
	// reply. The added messages count against the quota.
	Append(ctx context.Context, input PromptInput) error

	// Clone returns a fresh session with this session's configuration and
	// initial prompts, but none of the accumulated turns.
	Clone(ctx context.Context) (Session, error)

	// Destroy releases the session. Subsequent requests fail with
	// ErrDestroyed.
	Destroy()

	// Live numeric state, host-mutated as the conversation progresses.
	InputUsage() float64
	InputQuota() float64
	TopK() int
	Temperature() float64

	// On registers a listener and returns its remove function. No event
	// ordering or delivery guarantee is declared.
	On(t EventType, h Handler) func()
}
