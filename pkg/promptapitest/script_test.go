// ABOUTME: Tests for YAML scenario loading and the scripted responder
// ABOUTME: Exchange matching, fallback replies, and rejection of bad fields

package promptapitest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/zivl/prompt-api-types/pkg/promptapi"
)

func TestLoadScript(t *testing.T) {
	t.Parallel()

	s, err := LoadScript(filepath.Join("testdata", "scenario.yaml"))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.Quota != 512 {
		t.Errorf("Quota = %g, want 512", s.Quota)
	}
	if len(s.Exchanges) != 2 {
		t.Errorf("got %d exchanges, want 2", len(s.Exchanges))
	}
}

func TestLoadScript_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadScript(filepath.Join("testdata", "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseScript_BadAvailability(t *testing.T) {
	t.Parallel()

	if _, err := ParseScript([]byte("availability: maybe\n")); err == nil {
		t.Fatal("expected error for unknown availability")
	}
}

func TestParseScript_NegativeQuota(t *testing.T) {
	t.Parallel()

	if _, err := ParseScript([]byte("quota: -5\n")); err == nil {
		t.Fatal("expected error for negative quota")
	}
}

func TestScriptHost_ExchangeAndFallback(t *testing.T) {
	t.Parallel()

	s, err := LoadScript(filepath.Join("testdata", "scenario.yaml"))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	sess, err := s.Host().Create(context.Background(), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	reply, err := sess.Prompt(context.Background(), promptapi.Text("hi"), nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if reply != "hello there" {
		t.Errorf("scripted reply = %q, want %q", reply, "hello there")
	}

	reply, err = sess.Prompt(context.Background(), promptapi.Text("something unscripted"), nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if reply != "I only know what the script tells me." {
		t.Errorf("fallback reply = %q", reply)
	}
}

func TestScriptResponder_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	s := &Script{Exchanges: []Exchange{{Prompt: "hi", Reply: "hey"}}}
	respond := s.Responder()
	history := []promptapi.Message{promptapi.TextMessage(promptapi.RoleUser, "  hi \n")}
	if got := respond(history); got != "hey" {
		t.Errorf("reply = %q, want %q", got, "hey")
	}
}

func TestScriptHost_QuotaApplied(t *testing.T) {
	t.Parallel()

	s := &Script{Quota: 64}
	h := s.Host()
	if h.Quota != 64 {
		t.Errorf("Quota = %g, want 64", h.Quota)
	}
}
