// ABOUTME: Tests for the streaming chunk sequence: send, finish, fail, collect
// ABOUTME: Buffered chunks survive Finish; Send after Finish reports false

package promptapi

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStream_SendAndCollect(t *testing.T) {
	t.Parallel()

	s := NewStream(4)
	go func() {
		s.Send("Hel")
		s.Send("lo")
		s.Finish()
	}()

	got, err := s.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if got != "Hello" {
		t.Errorf("Collect = %q, want %q", got, "Hello")
	}
}

func TestStream_BufferedChunksSurviveFinish(t *testing.T) {
	t.Parallel()

	s := NewStream(8)
	s.Send("a")
	s.Send("b")
	s.Finish()

	var got string
	for c := range s.Chunks() {
		got += c
	}
	if got != "ab" {
		t.Errorf("drained %q, want %q", got, "ab")
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err = %v, want nil", err)
	}
}

func TestStream_SendAfterFinish(t *testing.T) {
	t.Parallel()

	s := NewStream(1)
	s.Finish()
	if s.Send("late") {
		t.Error("Send after Finish = true, want false")
	}
}

func TestStream_Fail(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	s := NewStream(1)
	s.Send("partial")
	s.Fail(boom)

	got, err := s.Collect(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Collect err = %v, want %v", err, boom)
	}
	if got != "partial" {
		t.Errorf("Collect = %q, want %q", got, "partial")
	}
}

func TestStream_CollectHonorsContext(t *testing.T) {
	t.Parallel()

	s := NewStream(1) // never finished
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.Collect(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Collect err = %v, want deadline exceeded", err)
	}
}

func TestStream_DoubleFinishIsSafe(t *testing.T) {
	t.Parallel()

	s := NewStream(1)
	s.Finish()
	s.Finish()
	s.Fail(errors.New("ignored"))
	if err := s.Err(); err != nil {
		t.Errorf("Err after Finish-first = %v, want nil", err)
	}
}
