// Package session owns the generation wizard's state machine. Each session
// walks Idle -> AwaitingTheme -> GeneratingContent -> AssemblingProject ->
// Ready, with the assembly phases advancing on a timer purely for display:
// by the time a session enters AssemblingProject, all real work is done.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"scaffold_ai_server/internal/template"
	"scaffold_ai_server/internal/types"
)

// State is one generation wizard state.
type State string

const (
	StateIdle              State = "idle"
	StateAwaitingTheme     State = "awaiting_theme"
	StateGeneratingContent State = "generating_content"
	StateAssembling        State = "assembling_project"
	StateReady             State = "ready"
)

const (
	// DefaultPhaseDelay is the cadence of the cosmetic assembly phases.
	DefaultPhaseDelay = 700 * time.Millisecond
	// DefaultNoticeTTL is how long a notice stays visible before
	// auto-dismissing.
	DefaultNoticeTTL = 4 * time.Second
)

var (
	ErrNotFound          = errors.New("session not found")
	ErrInvalidTransition = errors.New("operation not valid in current session state")
)

// session is the internal mutable record. All access goes through the
// store's mutex.
type session struct {
	id          string
	state       State
	projectType types.ProjectType
	projectName string
	slug        string
	theme       string
	lifecycle   []string
	phase       int
	files       types.FileMap
	lastError   string
	notice      string
	noticeTimer *time.Timer

	// epoch invalidates pending timers after a reset or a new generation.
	epoch int
}

// Snapshot is a read-only copy of a session's user-visible state.
type Snapshot struct {
	ID          string            `json:"sessionId"`
	State       State             `json:"state"`
	ProjectType types.ProjectType `json:"projectType,omitempty"`
	ProjectName string            `json:"projectName,omitempty"`
	Lifecycle   []string          `json:"lifecycle,omitempty"`
	Phase       int               `json:"phase"`
	LastError   string            `json:"lastError,omitempty"`
	Notice      string            `json:"notice,omitempty"`
}

// Store holds all live sessions.
type Store struct {
	mu         sync.Mutex
	sessions   map[string]*session
	phaseDelay time.Duration
	noticeTTL  time.Duration
}

// NewStore builds a session store. Zero durations fall back to the defaults.
func NewStore(phaseDelay, noticeTTL time.Duration) *Store {
	if phaseDelay <= 0 {
		phaseDelay = DefaultPhaseDelay
	}
	if noticeTTL <= 0 {
		noticeTTL = DefaultNoticeTTL
	}
	return &Store{
		sessions:   map[string]*session{},
		phaseDelay: phaseDelay,
		noticeTTL:  noticeTTL,
	}
}

// Create starts a new session in Idle.
func (s *Store) Create() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		id:    uuid.New().String(),
		state: StateIdle,
	}
	s.sessions[sess.id] = sess
	return snapshotOf(sess)
}

// SelectProject handles the archetype choice. The store archetype needs a
// theme first; anything else goes straight to assembly with the untouched
// static template.
func (s *Store) SelectProject(id string, pt types.ProjectType) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	if sess.state != StateIdle {
		return Snapshot{}, fmt.Errorf("%w: select requires idle, session is %s", ErrInvalidTransition, sess.state)
	}

	tpl, ok := template.Get(pt)
	if !ok {
		return Snapshot{}, fmt.Errorf("unknown project type %q", pt)
	}

	sess.projectType = pt
	sess.projectName = tpl.Name
	sess.slug = tpl.Slug

	if pt == types.ProjectStore {
		sess.state = StateAwaitingTheme
		return snapshotOf(sess), nil
	}

	files, _ := template.CloneFiles(pt)
	sess.files = files
	sess.lifecycle = tpl.Lifecycle
	s.startAssemblyLocked(sess)
	return snapshotOf(sess), nil
}

// BeginGeneration moves a store session from AwaitingTheme into
// GeneratingContent. The caller runs the actual merge and reports back via
// CompleteGeneration or FailGeneration.
func (s *Store) BeginGeneration(id, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if sess.state != StateAwaitingTheme {
		return fmt.Errorf("%w: theme submission requires awaiting_theme, session is %s", ErrInvalidTransition, sess.state)
	}

	sess.state = StateGeneratingContent
	sess.theme = theme
	sess.lastError = ""
	return nil
}

// CompleteGeneration installs the merged file map and enters the cosmetic
// assembly phases. lifecyclePrefix is shown before the template's own labels.
func (s *Store) CompleteGeneration(id string, files types.FileMap, lifecyclePrefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if sess.state != StateGeneratingContent {
		return fmt.Errorf("%w: completion requires generating_content, session is %s", ErrInvalidTransition, sess.state)
	}

	tpl, _ := template.Get(sess.projectType)
	sess.files = files
	sess.lifecycle = append([]string{lifecyclePrefix}, tpl.Lifecycle...)
	s.startAssemblyLocked(sess)
	return nil
}

// FailGeneration returns the session to the theme input, keeping the error
// message for display and the archetype choice intact. No partial state from
// the failed attempt survives.
func (s *Store) FailGeneration(id, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if sess.state != StateGeneratingContent {
		return fmt.Errorf("%w: failure requires generating_content, session is %s", ErrInvalidTransition, sess.state)
	}

	sess.state = StateAwaitingTheme
	sess.lastError = message
	sess.files = nil
	sess.lifecycle = nil
	return nil
}

// startAssemblyLocked enters AssemblingProject and schedules the phase
// ticks. Caller holds the lock.
func (s *Store) startAssemblyLocked(sess *session) {
	sess.state = StateAssembling
	sess.phase = 0
	sess.epoch++
	epoch := sess.epoch
	id := sess.id
	time.AfterFunc(s.phaseDelay, func() { s.advancePhase(id, epoch) })
}

// advancePhase moves the cosmetic progress forward one label, reaching Ready
// after the last one. A stale epoch means the session was reset underneath
// the timer; the tick is dropped.
func (s *Store) advancePhase(id string, epoch int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.epoch != epoch || sess.state != StateAssembling {
		return
	}

	sess.phase++
	if sess.phase >= len(sess.lifecycle) {
		sess.state = StateReady
		return
	}
	time.AfterFunc(s.phaseDelay, func() { s.advancePhase(id, epoch) })
}

// Reset discards all session state and returns to Idle.
func (s *Store) Reset(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}

	sess.epoch++
	if sess.noticeTimer != nil {
		sess.noticeTimer.Stop()
		sess.noticeTimer = nil
	}
	*sess = session{id: sess.id, state: StateIdle, epoch: sess.epoch}
	return snapshotOf(sess), nil
}

// Snapshot returns a read-only copy of the session.
func (s *Store) Snapshot(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return snapshotOf(sess), nil
}

// Files returns the ready session's file map and archive slug. The map is
// treated as immutable after this handoff.
func (s *Store) Files(id string) (types.FileMap, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, "", ErrNotFound
	}
	if sess.state != StateReady {
		return nil, "", fmt.Errorf("%w: files require ready, session is %s", ErrInvalidTransition, sess.state)
	}
	return sess.files, sess.slug, nil
}

func snapshotOf(sess *session) Snapshot {
	lifecycle := make([]string, len(sess.lifecycle))
	copy(lifecycle, sess.lifecycle)
	return Snapshot{
		ID:          sess.id,
		State:       sess.state,
		ProjectType: sess.projectType,
		ProjectName: sess.projectName,
		Lifecycle:   lifecycle,
		Phase:       sess.phase,
		LastError:   sess.lastError,
		Notice:      sess.notice,
	}
}
