// Package session keeps the selection state of one presentation shell and
// runs generation as an explicit asynchronous task.
//
// A Session owns the chosen template (nil means "suggest one"), the active
// style and surface size, and the last classified model with its rendered
// image. Generate starts a Task; while it runs further Generate calls fail
// with a BUSY error. Changing the template, style or size re-renders the
// stored model without classifying again.
package session

import (
	"context"
	"image"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
	"github.com/ankek/terraform-provider-infographic/internal/renderer"
	"github.com/ankek/terraform-provider-infographic/internal/style"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

// DefaultDelay is the simulated processing time before classification
const DefaultDelay = 2 * time.Second

// Options configures a new Session. Zero values select the defaults.
type Options struct {
	Template catalog.ID // empty or "auto" lets the session suggest one
	Style    *style.Context
	Size     canvas.Size
	Delay    *time.Duration
	Logger   *log.Logger
}

// Snapshot is an immutable view of a completed render
type Snapshot struct {
	Model    *content.Model
	Template catalog.Template
	Style    style.Context
	Size     canvas.Size
	Image    image.Image
}

// Session is safe for concurrent use
type Session struct {
	mu       sync.Mutex
	template *catalog.Template
	style    style.Context
	size     canvas.Size
	delay    time.Duration
	logger   *log.Logger

	current *Snapshot
	running *Task
}

// New creates a session. An unknown template id is an INVALID_TEMPLATE error.
func New(opts Options) (*Session, error) {
	tmpl, ok := catalog.Resolve(string(opts.Template))
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidTemplate, "unknown template %q (expected one of %v)", opts.Template, catalog.IDs())
	}

	s := &Session{
		template: tmpl,
		style:    style.Default(),
		size:     canvas.Standard,
		delay:    DefaultDelay,
		logger:   opts.Logger,
	}
	if opts.Style != nil {
		s.style = *opts.Style
	}
	if opts.Size.Width > 0 {
		s.size = opts.Size
	}
	if opts.Delay != nil {
		s.delay = *opts.Delay
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s, nil
}

// Generate validates text and starts a task that waits for the processing
// delay, classifies the text and renders it. Blank text is rejected with
// INVALID_INPUT and leaves the session untouched. A second call while a task
// runs returns BUSY.
func (s *Session) Generate(text string) (*Task, error) {
	if err := validation.ValidateText(text); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running != nil {
		return nil, apperrors.New(apperrors.ErrCodeBusy, "generation %s is still running", s.running.ID)
	}

	task := newTask()
	s.running = task
	s.logger.Debug("generation started", "task", task.ID, "delay", s.delay)

	go s.run(task, text)
	return task, nil
}

func (s *Session) run(task *Task, text string) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	m := content.Classify(strings.TrimSpace(text))

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.running = nil }()

	if s.template == nil {
		suggested := catalog.Suggest(m)
		s.template = &suggested
		s.logger.Debug("template suggested", "task", task.ID, "category", m.Category(), "template", suggested.ID)
	}

	snap, err := s.renderLocked(m)
	if err != nil {
		task.finish(nil, err)
		return
	}
	s.current = snap
	s.logger.Info("generated infographic", "task", task.ID, "category", m.Category(), "template", snap.Template.ID, "items", m.Len())
	task.finish(snap, nil)
}

// renderLocked renders m with the current selection. s.mu must be held.
func (s *Session) renderLocked(m *content.Model) (*Snapshot, error) {
	tmpl := *s.template
	img, err := renderer.Render(context.Background(), m, tmpl.ID, s.style, s.size)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render failed")
	}
	return &Snapshot{
		Model:    m,
		Template: tmpl,
		Style:    s.style,
		Size:     s.size,
		Image:    img,
	}, nil
}

// rerenderLocked repaints the stored model, if any. s.mu must be held.
func (s *Session) rerenderLocked() error {
	if s.current == nil {
		return nil
	}
	if s.template == nil {
		suggested := catalog.Suggest(s.current.Model)
		s.template = &suggested
	}
	snap, err := s.renderLocked(s.current.Model)
	if err != nil {
		return err
	}
	s.current = snap
	return nil
}

// SelectTemplate chooses a template by id, or "auto"/"" to let the session
// suggest one. The stored model is re-rendered when there is one.
func (s *Session) SelectTemplate(id string) error {
	tmpl, ok := catalog.Resolve(id)
	if !ok {
		return apperrors.New(apperrors.ErrCodeInvalidTemplate, "unknown template %q (expected one of %v)", id, catalog.IDs())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.template = tmpl
	return s.rerenderLocked()
}

// SetStyle replaces the active style and re-renders the stored model
func (s *Session) SetStyle(st style.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.style = st
	return s.rerenderLocked()
}

// Resize changes the surface size and re-renders the stored model
func (s *Session) Resize(size canvas.Size) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.size = size
	return s.rerenderLocked()
}

// Template returns the selected template, nil when none is selected yet
func (s *Session) Template() *catalog.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.template == nil {
		return nil
	}
	t := *s.template
	return &t
}

// Style returns the active style
func (s *Session) Style() style.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// Size returns the active surface size
func (s *Session) Size() canvas.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Busy reports whether a generation task is running
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running != nil
}

// Current returns the last completed render
func (s *Session) Current() (*Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != nil
}

// Export encodes the current image. It fails with NOT_READY before the first
// generation has completed.
func (s *Session) Export(w io.Writer, format renderer.Format) error {
	snap, ok := s.Current()
	if !ok {
		return apperrors.New(apperrors.ErrCodeNotReady, "please generate an infographic first")
	}
	return renderer.Encode(w, snap.Image, format)
}

// Task is one running generation. It cannot be cancelled once started.
type Task struct {
	ID string

	done   chan struct{}
	result *Snapshot
	err    error
}

func newTask() *Task {
	return &Task{
		ID:   uuid.NewString(),
		done: make(chan struct{}),
	}
}

func (t *Task) finish(snap *Snapshot, err error) {
	t.result = snap
	t.err = err
	close(t.done)
}

// Done is closed when the task has finished
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes or ctx is done. A cancelled ctx only
// stops the wait; the task itself runs to completion.
func (t *Task) Wait(ctx context.Context) (*Snapshot, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
