package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"shopagent/storage"
)

// Session runs an agent interactively over a line-based transcript surface:
// one user line in, one agent line out, until the exit token or end of
// input. When a transcript store is attached, the conversation is persisted
// after every exchange.
type Session struct {
	agent      *Agent
	in         io.Reader
	out        io.Writer
	exitToken  string
	userLabel  string
	agentLabel string

	store        *storage.TranscriptStore
	providerID   string
	transcriptID string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithExitToken overrides the token that ends the session.
func WithExitToken(token string) SessionOption {
	return func(s *Session) { s.exitToken = token }
}

// WithLabels sets the rendered speaker labels. The user label is printed as
// the input prompt; the agent label prefixes every reply line.
func WithLabels(user, agent string) SessionOption {
	return func(s *Session) { s.userLabel = user; s.agentLabel = agent }
}

// WithTranscriptStore persists the conversation under the given provider ID.
func WithTranscriptStore(store *storage.TranscriptStore, providerID string) SessionOption {
	return func(s *Session) { s.store = store; s.providerID = providerID }
}

// NewSession creates a session for one agent over the given reader/writer.
func NewSession(a *Agent, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		agent:      a,
		in:         in,
		out:        out,
		exitToken:  DefaultExitToken,
		userLabel:  "You: ",
		agentLabel: "Shopping Assistant: ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the session until the exit token, end of input, or a read
// error. The greeting is emitted first and the farewell last; the exit token
// is matched case-insensitively and triggers no model or catalog calls.
func (s *Session) Run(ctx context.Context) error {
	s.reply(GreetingFor(s.exitToken))

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.userLabel)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read user input: %w", err)
			}
			// End of input counts as leaving.
			fmt.Fprintln(s.out)
			s.reply(Farewell)
			return s.persist()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, s.exitToken) {
			s.reply(Farewell)
			return s.persist()
		}

		s.reply(s.agent.HandleMessage(ctx, line))
		if err := s.persist(); err != nil {
			return err
		}
	}
}

func (s *Session) reply(text string) {
	fmt.Fprintf(s.out, "%s%s\n", s.agentLabel, text)
}

func (s *Session) persist() error {
	if s.store == nil {
		return nil
	}

	transcript := &storage.Transcript{
		ID:       s.transcriptID,
		Provider: s.providerID,
		Model:    s.agent.Model(),
		Turns:    storage.FromModelTurns(s.agent.History()),
	}
	if err := s.store.Save(transcript); err != nil {
		return fmt.Errorf("failed to persist transcript: %w", err)
	}
	s.transcriptID = transcript.ID
	return nil
}
