// ABOUTME: Bubbletea model for the chat loop: input line, transcript, stream
// ABOUTME: Assistant turns render through glamour once their stream completes

package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	pclog "github.com/zivl/prompt-api-types/internal/log"
	"github.com/zivl/prompt-api-types/pkg/promptapi"
)

var (
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type turn struct {
	role promptapi.Role
	text string
}

type (
	streamStartedMsg struct{ stream *promptapi.Stream }
	chunkMsg         string
	streamDoneMsg    struct{ err error }
	errMsg           struct{ err error }
	overflowMsg      struct{}
)

type model struct {
	sess      promptapi.Session
	styleName string
	renderer  *glamour.TermRenderer
	width     int

	input      strings.Builder
	transcript []turn
	partial    strings.Builder
	stream     *promptapi.Stream
	streaming  bool
	notice     string
	err        error
}

func newModel(sess promptapi.Session, styleName string) *model {
	return &model{sess: sess, styleName: styleName, width: 80}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.renderer = nil // rebuilt at the new wrap width on next render
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case streamStartedMsg:
		m.stream = msg.stream
		return m, waitChunk(msg.stream)

	case chunkMsg:
		m.partial.WriteString(string(msg))
		return m, waitChunk(m.stream)

	case streamDoneMsg:
		m.streaming = false
		text := m.partial.String()
		m.partial.Reset()
		m.stream = nil
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.transcript = append(m.transcript, turn{role: promptapi.RoleAssistant, text: text})
		return m, nil

	case errMsg:
		m.streaming = false
		m.err = msg.err
		return m, nil

	case overflowMsg:
		m.notice = "older turns evicted to fit the input quota"
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.streaming || m.input.Len() == 0 {
			return m, nil
		}
		text := m.input.String()
		m.input.Reset()
		m.err = nil
		m.notice = ""
		m.transcript = append(m.transcript, turn{role: promptapi.RoleUser, text: text})
		m.streaming = true
		return m, startStream(m.sess, text)

	case tea.KeyBackspace:
		s := m.input.String()
		if s != "" {
			runes := []rune(s)
			m.input.Reset()
			m.input.WriteString(string(runes[:len(runes)-1]))
		}
		return m, nil

	case tea.KeySpace:
		m.input.WriteByte(' ')
		return m, nil

	case tea.KeyRunes:
		m.input.WriteString(string(msg.Runes))
		return m, nil
	}
	return m, nil
}

func startStream(sess promptapi.Session, text string) tea.Cmd {
	return func() tea.Msg {
		stream, err := sess.PromptStreaming(context.Background(), promptapi.Text(text), nil)
		if err != nil {
			pclog.Debug("prompt failed: %v", err)
			return errMsg{err: err}
		}
		return streamStartedMsg{stream: stream}
	}
}

func waitChunk(stream *promptapi.Stream) tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-stream.Chunks()
		if !ok {
			return streamDoneMsg{err: stream.Err()}
		}
		return chunkMsg(chunk)
	}
}

func (m *model) View() string {
	var b strings.Builder
	for _, t := range m.transcript {
		switch t.role {
		case promptapi.RoleUser:
			b.WriteString(userStyle.Render("you: "+t.text) + "\n")
		case promptapi.RoleAssistant:
			b.WriteString(m.renderMarkdown(t.text))
		}
	}
	if m.streaming {
		b.WriteString(m.partial.String() + "\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	if m.err != nil {
		if promptapi.IsQuotaExceeded(m.err) {
			b.WriteString(noticeStyle.Render(m.err.Error()) + "\n")
		} else {
			b.WriteString(noticeStyle.Render("error: "+m.err.Error()) + "\n")
		}
	}

	b.WriteString(promptStyle.Render("> ") + m.input.String() + "\n")
	footer := fmt.Sprintf("usage %g / %g tokens · enter to send · esc to quit",
		m.sess.InputUsage(), m.sess.InputQuota())
	b.WriteString(footerStyle.Render(footer))
	return b.String()
}

func (m *model) renderMarkdown(text string) string {
	if m.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.styleName),
			glamour.WithWordWrap(m.width),
		)
		if err != nil {
			return text + "\n"
		}
		m.renderer = r
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text + "\n"
	}
	return out
}
