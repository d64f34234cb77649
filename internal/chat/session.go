// Package chat holds the per-session conversation state machine driven
// by the chat front end.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/TALA-AI/tala-web/internal/rag"
)

// Role tags a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the transcript. Turns are append-only and never
// persisted; they live only for the session.
type Turn struct {
	Role    Role
	Content string
}

// State is the session's position in the consultation flow. Transitions
// are monotonic: once a case is selected the session stays bound to it.
type State int

const (
	// AwaitingDescription: free text triggers similar-case search.
	AwaitingDescription State = iota
	// AwaitingCaseSelection: a number picks one of the offered cases.
	AwaitingCaseSelection
	// AwaitingQuestion: free text is answered against the bound case.
	AwaitingQuestion
)

// ConnectionFailureMessage is shown when a backend call fails.
const ConnectionFailureMessage = "서버에 연결할 수 없습니다."

// API is the session's view of the consultation backend.
type API interface {
	SearchAccidents(ctx context.Context, accidentText string) ([]rag.AccidentMatch, error)
	AskAI(ctx context.Context, accidentText, question string) (string, error)
}

// Session is one user's conversation: the transcript, the candidate
// cases offered, and at most one selected case.
type Session struct {
	api        API
	state      State
	turns      []Turn
	candidates []rag.AccidentMatch
	selected   *rag.AccidentMatch
}

// NewSession creates a session in AwaitingDescription.
func NewSession(api API) *Session {
	return &Session{api: api}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Turns returns the transcript so far.
func (s *Session) Turns() []Turn { return s.turns }

// Candidates returns the cases offered for selection.
func (s *Session) Candidates() []rag.AccidentMatch { return s.candidates }

// Selected returns the bound case, or nil before selection.
func (s *Session) Selected() *rag.AccidentMatch { return s.selected }

// Submit feeds one line of user input through the state machine,
// appending the resulting turns. Each call makes at most one backend
// request and blocks until it completes.
func (s *Session) Submit(ctx context.Context, input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	switch s.state {
	case AwaitingDescription:
		s.handleDescription(ctx, input)
	case AwaitingCaseSelection:
		s.handleSelection(ctx, input)
	case AwaitingQuestion:
		s.handleQuestion(ctx, input)
	}
}

func (s *Session) handleDescription(ctx context.Context, input string) {
	s.append(RoleUser, input)

	matches, err := s.api.SearchAccidents(ctx, input)
	if err != nil {
		// No transition; the user may retry with another description.
		s.append(RoleAssistant, failureMessage(err))
		return
	}

	s.candidates = matches
	var b strings.Builder
	b.WriteString("다음과 같은 유사 사고가 있습니다:\n\n")
	for i, match := range matches {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, match.Accident)
	}
	b.WriteString("사고 번호를 입력해주세요 (예: 1, 2, 3)")
	s.append(RoleAssistant, b.String())
	s.state = AwaitingCaseSelection
}

func (s *Session) handleSelection(ctx context.Context, input string) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(s.candidates) {
		// The original dropped invalid selections silently; this asks
		// for a valid number instead and stays in the same state.
		s.append(RoleUser, input)
		s.append(RoleAssistant, fmt.Sprintf("1부터 %d 사이의 사고 번호를 입력해주세요.", len(s.candidates)))
		return
	}

	s.selected = &s.candidates[n-1]
	s.append(RoleUser, fmt.Sprintf("사고 %d번 선택", n))

	var b strings.Builder
	fmt.Fprintf(&b, "선택한 사고 상황:\n%s\n\n", s.selected.Accident)
	if preview, ok := DrivePreviewURL(s.selected.URL); ok {
		fmt.Fprintf(&b, "사고 영상: %s\n\n", preview)
	} else if s.selected.URL != "" {
		fmt.Fprintf(&b, "사고 영상: %s\n\n", s.selected.URL)
	}
	b.WriteString("해당 사고에 대해 질문해주세요!")
	s.append(RoleAssistant, b.String())
	s.state = AwaitingQuestion
}

func (s *Session) handleQuestion(ctx context.Context, input string) {
	s.append(RoleUser, input)

	answer, err := s.api.AskAI(ctx, s.selected.Accident, input)
	if err != nil {
		s.append(RoleAssistant, failureMessage(err))
		return
	}

	// The transcript grows but the session stays bound to the case.
	s.append(RoleAssistant, answer)
}

func (s *Session) append(role Role, content string) {
	s.turns = append(s.turns, Turn{Role: role, Content: content})
}

// failureMessage maps backend errors to the user-facing text. NotFound
// carries its own Korean detail; everything else is a connection failure.
func failureMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return ConnectionFailureMessage
}
