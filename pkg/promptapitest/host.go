// ABOUTME: In-memory scripted host implementing the Prompt API interfaces
// ABOUTME: Canned replies and chars÷4 accounting; a test double, not a runtime

package promptapitest

import (
	"context"
	"fmt"
	"sync"

	"github.com/zivl/prompt-api-types/pkg/promptapi"
)

// Responder produces the assistant reply for a turn. It receives the full
// retained history, ending with the messages just submitted.
type Responder func(history []promptapi.Message) string

// EchoResponder replies with the text of the most recent user message.
func EchoResponder(history []promptapi.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == promptapi.RoleUser {
			if history[i].Content.Type == promptapi.ContentText {
				return history[i].Content.Text
			}
			return fmt.Sprintf("[%s received]", history[i].Content.Type)
		}
	}
	return ""
}

// Host is a scripted LanguageModel for consumer tests: replies come from a
// Responder, usage from the chars÷4 estimate, and quota overflow evicts the
// oldest non-system turns. It deliberately implements nothing beyond what
// the interface documentation states.
type Host struct {
	// Status is the availability reported before the first Create.
	Status promptapi.Availability
	// ModelParams are the sampling defaults and limits Create applies.
	ModelParams promptapi.Params
	// Quota is the input budget, in tokens, of each created session.
	Quota float64
	// Respond supplies assistant replies. Defaults to EchoResponder.
	Respond Responder
	// ChunkSize is the byte length of streaming chunks.
	ChunkSize int

	mu sync.Mutex
}

// New returns a Host that is immediately available with generous defaults.
func New() *Host {
	return &Host{
		Status: promptapi.AvailabilityAvailable,
		ModelParams: promptapi.Params{
			DefaultTopK:        3,
			MaxTopK:            8,
			DefaultTemperature: 1.0,
			MaxTemperature:     2.0,
		},
		Quota:     4096,
		Respond:   EchoResponder,
		ChunkSize: 8,
	}
}

var _ promptapi.LanguageModel = (*Host)(nil)

// Availability reports the host's scripted status.
func (h *Host) Availability(ctx context.Context, opts *promptapi.CreateOptions) (promptapi.Availability, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Status, nil
}

// Params reports the scripted sampling ranges.
func (h *Host) Params(ctx context.Context) (*promptapi.Params, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := h.ModelParams
	return &p, nil
}

// Create validates opts, "downloads" instantly when the model is merely
// downloadable, and returns a fresh session seeded with the initial prompts.
func (h *Host) Create(ctx context.Context, opts *promptapi.CreateOptions) (promptapi.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}

	h.mu.Lock()
	switch h.Status {
	case promptapi.AvailabilityUnavailable:
		h.mu.Unlock()
		return nil, fmt.Errorf("create: model unavailable")
	case promptapi.AvailabilityDownloadable, promptapi.AvailabilityDownloading:
		// The scripted download completes instantly.
		h.Status = promptapi.AvailabilityAvailable
	}
	h.mu.Unlock()

	s := &session{
		host:        h,
		topK:        h.ModelParams.DefaultTopK,
		temperature: h.ModelParams.DefaultTemperature,
		quota:       h.Quota,
		events:      promptapi.NewEvents(),
	}
	if opts != nil {
		if opts.TopK != nil {
			s.topK = min(*opts.TopK, h.ModelParams.MaxTopK)
			s.temperature = min(*opts.Temperature, h.ModelParams.MaxTemperature)
		}
		s.seed = append([]promptapi.Message(nil), opts.InitialPrompts...)
		s.tools = append([]promptapi.Tool(nil), opts.Tools...)
	}
	s.history = append([]promptapi.Message(nil), s.seed...)
	s.usage = EstimateMessages(s.history)
	if s.usage > s.quota {
		return nil, &promptapi.QuotaExceededError{Requested: s.usage, Quota: s.quota}
	}
	return s, nil
}

func (h *Host) respond(history []promptapi.Message) string {
	if h.Respond == nil {
		return EchoResponder(history)
	}
	return h.Respond(history)
}

// session is the scripted Session: history in a slice, usage recomputed per
// turn, oldest non-system messages evicted on overflow.
type session struct {
	host *Host

	mu          sync.Mutex
	topK        int
	temperature float64
	quota       float64
	usage       float64
	seed        []promptapi.Message
	tools       []promptapi.Tool
	history     []promptapi.Message
	destroyed   bool

	events *promptapi.Events
}

var _ promptapi.Session = (*session)(nil)

func (s *session) Prompt(ctx context.Context, input promptapi.PromptInput, opts *promptapi.PromptOptions) (string, error) {
	msgs, err := s.checkRequest(ctx, input, opts)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	reply, overflowed, err := s.runTurnLocked(msgs)
	s.mu.Unlock()
	if err != nil {
		return "", err
	}
	if overflowed {
		s.events.Dispatch(promptapi.Event{Type: promptapi.EventQuotaOverflow})
	}
	return reply, nil
}

func (s *session) PromptStreaming(ctx context.Context, input promptapi.PromptInput, opts *promptapi.PromptOptions) (*promptapi.Stream, error) {
	reply, err := s.Prompt(ctx, input, opts)
	if err != nil {
		return nil, err
	}

	size := s.host.ChunkSize
	if size <= 0 {
		size = 8
	}
	stream := promptapi.NewStream(4)
	go func() {
		for start := 0; start < len(reply); start += size {
			end := min(start+size, len(reply))
			if ctx.Err() != nil {
				stream.Fail(ctx.Err())
				return
			}
			stream.Send(reply[start:end])
		}
		stream.Finish()
	}()
	return stream, nil
}

func (s *session) MeasureInputUsage(ctx context.Context, input promptapi.PromptInput, opts *promptapi.PromptOptions) (float64, error) {
	msgs, err := s.checkRequest(ctx, input, opts)
	if err != nil {
		return 0, err
	}
	return EstimateMessages(msgs), nil
}

func (s *session) Append(ctx context.Context, input promptapi.PromptInput) error {
	msgs, err := s.checkRequest(ctx, input, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	cost := EstimateMessages(msgs)
	if cost > s.quota {
		remaining := s.quota - s.usage
		s.mu.Unlock()
		return &promptapi.QuotaExceededError{Requested: cost, Quota: remaining}
	}
	s.history = append(s.history, msgs...)
	overflowed := s.recomputeLocked()
	s.mu.Unlock()

	if overflowed {
		s.events.Dispatch(promptapi.Event{Type: promptapi.EventQuotaOverflow})
	}
	return nil
}

func (s *session) Clone(ctx context.Context) (promptapi.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return nil, promptapi.ErrDestroyed
	}
	clone := &session{
		host:        s.host,
		topK:        s.topK,
		temperature: s.temperature,
		quota:       s.quota,
		seed:        append([]promptapi.Message(nil), s.seed...),
		tools:       append([]promptapi.Tool(nil), s.tools...),
		events:      promptapi.NewEvents(),
	}
	clone.history = append([]promptapi.Message(nil), clone.seed...)
	clone.usage = EstimateMessages(clone.history)
	return clone, nil
}

func (s *session) Destroy() {
	s.mu.Lock()
	s.destroyed = true
	s.history = nil
	s.mu.Unlock()
}

func (s *session) InputUsage() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usage
}

func (s *session) InputQuota() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quota
}

func (s *session) TopK() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topK
}

func (s *session) Temperature() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.temperature
}

func (s *session) On(t promptapi.EventType, h promptapi.Handler) func() {
	return s.events.On(t, h)
}

// checkRequest runs the shared per-request validation and normalization.
func (s *session) checkRequest(ctx context.Context, input promptapi.PromptInput, opts *promptapi.PromptOptions) ([]promptapi.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	destroyed := s.destroyed
	s.mu.Unlock()
	if destroyed {
		return nil, promptapi.ErrDestroyed
	}
	if err := promptapi.ValidateInput(input); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return promptapi.InputMessages(input), nil
}

// runTurnLocked submits msgs, produces the reply, and rebalances usage.
// Callers hold s.mu and dispatch quotaoverflow after releasing it.
func (s *session) runTurnLocked(msgs []promptapi.Message) (reply string, overflowed bool, err error) {
	cost := EstimateMessages(msgs)
	if cost > s.quota {
		return "", false, &promptapi.QuotaExceededError{Requested: cost, Quota: s.quota - s.usage}
	}
	s.history = append(s.history, msgs...)
	reply = s.host.respond(s.history)
	s.history = append(s.history, promptapi.TextMessage(promptapi.RoleAssistant, reply))
	overflowed = s.recomputeLocked()
	return reply, overflowed, nil
}

// recomputeLocked refreshes usage, evicting oldest non-system messages until
// the session fits its quota again. Reports whether anything was evicted.
func (s *session) recomputeLocked() bool {
	s.usage = EstimateMessages(s.history)
	evicted := false
	for s.usage > s.quota {
		i := s.oldestEvictableLocked()
		if i < 0 {
			break
		}
		s.history = append(s.history[:i], s.history[i+1:]...)
		s.usage = EstimateMessages(s.history)
		evicted = true
	}
	return evicted
}

func (s *session) oldestEvictableLocked() int {
	for i, m := range s.history {
		if m.Role != promptapi.RoleSystem {
			return i
		}
	}
	return -1
}
