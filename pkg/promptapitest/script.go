// ABOUTME: YAML scenario files describing a scripted host's canned behavior
// ABOUTME: Availability, quota, prompt/reply exchanges, and a fallback reply

package promptapitest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zivl/prompt-api-types/pkg/promptapi"
)

// Exchange pairs a user prompt with the reply the host should give for it.
type Exchange struct {
	Prompt string `yaml:"prompt"`
	Reply  string `yaml:"reply"`
}

// Script is a canned host scenario. Zero fields fall back to Host defaults.
type Script struct {
	Availability string     `yaml:"availability,omitempty"`
	Quota        float64    `yaml:"quota,omitempty"`
	Exchanges    []Exchange `yaml:"exchanges,omitempty"`
	Fallback     string     `yaml:"fallback,omitempty"`
}

// LoadScript reads and validates a scenario file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a scenario from YAML.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if s.Availability != "" {
		if _, err := promptapi.ParseAvailability(s.Availability); err != nil {
			return nil, fmt.Errorf("parsing script: %w", err)
		}
	}
	if s.Quota < 0 {
		return nil, fmt.Errorf("parsing script: negative quota %g", s.Quota)
	}
	return &s, nil
}

// Responder matches the latest user prompt against the script's exchanges
// (exact match after trimming whitespace) and falls back to Fallback.
func (s *Script) Responder() Responder {
	return func(history []promptapi.Message) string {
		last := lastUserText(history)
		for _, ex := range s.Exchanges {
			if strings.TrimSpace(last) == strings.TrimSpace(ex.Prompt) {
				return ex.Reply
			}
		}
		if s.Fallback != "" {
			return s.Fallback
		}
		return EchoResponder(history)
	}
}

// Host builds a scripted Host from the scenario.
func (s *Script) Host() *Host {
	h := New()
	if s.Availability != "" {
		h.Status = promptapi.Availability(s.Availability)
	}
	if s.Quota > 0 {
		h.Quota = s.Quota
	}
	h.Respond = s.Responder()
	return h
}

func lastUserText(history []promptapi.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == promptapi.RoleUser && history[i].Content.Type == promptapi.ContentText {
			return history[i].Content.Text
		}
	}
	return ""
}
