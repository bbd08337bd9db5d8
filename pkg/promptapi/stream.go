// ABOUTME: Channel-based sequence of partial textual results for streaming prompts
// ABOUTME: Unbounded until the producer signals completion; no restart semantics

package promptapi

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
)

// Stream is the sequence of partial results a host produces for a streaming
// prompt. Consumers range over Chunks and check Err once the channel closes.
//
// Producers call Send for each chunk and exactly one of Finish or Fail.
// Send writes to an internal channel that is never closed; Finish closes
// only the done channel, and a drainer goroutine forwards buffered chunks to
// the consumer-facing channel before closing it. That split removes the
// send-on-closed-channel race between a producing host and a finishing one.
type Stream struct {
	chunks chan string // internal: producer writes via Send
	out    chan string // external: consumer reads via Chunks
	done   chan struct{}
	err    atomic.Pointer[error]
	once   sync.Once
}

// NewStream creates a Stream with the given chunk buffer size.
func NewStream(bufSize int) *Stream {
	s := &Stream{
		chunks: make(chan string, bufSize),
		out:    make(chan string, bufSize),
		done:   make(chan struct{}),
	}
	go s.drain()
	return s
}

func (s *Stream) drain() {
	defer close(s.out)
	for {
		select {
		case c := <-s.chunks:
			s.out <- c
		case <-s.done:
			for {
				select {
				case c := <-s.chunks:
					s.out <- c
				default:
					return
				}
			}
		}
	}
}

// Chunks returns the read-only sequence of partial results. The channel is
// closed once the host signals completion or failure.
func (s *Stream) Chunks() <-chan string {
	return s.out
}

// Send delivers one chunk. It reports false once the stream has finished.
func (s *Stream) Send(chunk string) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.chunks <- chunk:
		return true
	case <-s.done:
		return false
	}
}

// Finish signals successful completion. Buffered chunks are still delivered.
func (s *Stream) Finish() {
	s.once.Do(func() {
		close(s.done)
	})
}

// Fail signals completion with an error, observable via Err after Chunks
// closes.
func (s *Stream) Fail(err error) {
	s.once.Do(func() {
		if err != nil {
			s.err.Store(&err)
		}
		close(s.done)
	})
}

// Err returns the terminal error, if any. Meaningful only after Chunks has
// closed.
func (s *Stream) Err() error {
	if p := s.err.Load(); p != nil {
		return *p
	}
	return nil
}

// Collect drains the stream into a single string. It stops early if ctx is
// cancelled and otherwise returns the stream's terminal error.
func (s *Stream) Collect(ctx context.Context) (string, error) {
	var b strings.Builder
	for {
		select {
		case <-ctx.Done():
			return b.String(), ctx.Err()
		case chunk, ok := <-s.out:
			if !ok {
				return b.String(), s.Err()
			}
			b.WriteString(chunk)
		}
	}
}
