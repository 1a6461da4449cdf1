// Package workflow runs the content-to-background pipeline: extract the note
// content, derive an image prompt, render the image and hand its reference
// to the caller.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/adrianliechti/flowgenius/pkg/prompter"
	"github.com/adrianliechti/flowgenius/pkg/validator"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/adrianliechti/flowgenius/pkg/workflow"

const (
	DefaultStyle      = "photorealistic"
	DefaultMaxContent = 8000
)

const (
	StatusExtracting = "Extracting content..."
	StatusPrompting  = "Creating visual description..."
	StatusGenerating = "Generating background image..."
	StatusApplying   = "Applying background..."
)

type Prompter = prompter.Provider

type Renderer interface {
	Render(ctx context.Context, prompt string) (string, error)
}

type Validator interface {
	Check(ctx context.Context) validator.Result
}

// StatusFunc receives a progress message before each phase and an empty
// message once the execution is over.
type StatusFunc func(message string)

// ReadyFunc receives the rendered image reference.
type ReadyFunc func(url string)

type Result struct {
	ID string

	Content string
	Prompt  string
	URL     string
}

// Engine holds the state of a single execution at a time. Concurrent calls
// to Execute or Run are rejected with ErrBusy.
type Engine struct {
	prompter  Prompter
	renderer  Renderer
	validator Validator
	notifier  Notifier

	style        string
	instructions string
	maxContent   int

	onPhase func(Phase)

	busy atomic.Bool

	mu    sync.RWMutex
	state State
}

type Option func(*Engine)

func WithValidator(v Validator) Option {
	return func(e *Engine) {
		e.validator = v
	}
}

func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

func WithStyle(style string) Option {
	return func(e *Engine) {
		e.style = style
	}
}

func WithInstructions(instructions string) Option {
	return func(e *Engine) {
		e.instructions = instructions
	}
}

// WithMaxContent bounds the extracted content in runes. Zero disables the limit.
func WithMaxContent(n int) Option {
	return func(e *Engine) {
		e.maxContent = n
	}
}

// WithPhaseObserver registers a function called on every phase transition.
func WithPhaseObserver(fn func(Phase)) Option {
	return func(e *Engine) {
		e.onPhase = fn
	}
}

func New(p Prompter, r Renderer, options ...Option) *Engine {
	e := &Engine{
		prompter: p,
		renderer: r,
		notifier: LogNotifier{},

		style:      DefaultStyle,
		maxContent: DefaultMaxContent,

		state: State{Phase: PhaseIdle},
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// State returns a copy of the current execution state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state
}

// Reset discards the state of the last execution. It has no effect while an
// execution is in flight.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	// run marks itself busy before it first takes the lock
	if e.busy.Load() {
		return
	}

	e.state = State{Phase: PhaseIdle}
}

// Execute runs the workflow and reports progress through onStatus and the
// image reference through onReady. Failures end in the error phase and are
// reported through the notifier only.
func (e *Engine) Execute(ctx context.Context, source Source, onStatus StatusFunc, onReady ReadyFunc) {
	_, err := e.run(ctx, source, onStatus, onReady)

	if err != nil {
		e.notifier.Notify(ctx, Notice{
			Level:   LevelError,
			Message: "Failed to generate background: " + err.Error(),

			Err: err,
		})

		return
	}

	e.notifier.Notify(ctx, Notice{
		Level:   LevelInfo,
		Message: "Background generated successfully!",
	})
}

// Run runs the workflow and returns its result or the error that ended it.
func (e *Engine) Run(ctx context.Context, source Source, onStatus StatusFunc) (*Result, error) {
	return e.run(ctx, source, onStatus, nil)
}

// ValidateConfiguration checks presence and validity of every credential.
// It does not touch the execution state.
func (e *Engine) ValidateConfiguration(ctx context.Context) validator.Result {
	if e.validator == nil {
		return validator.Result{
			Valid:  false,
			Errors: []string{"credential validation not configured"},
		}
	}

	return e.validator.Check(ctx)
}

func (e *Engine) run(ctx context.Context, source Source, onStatus StatusFunc, onReady ReadyFunc) (*Result, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	defer e.busy.Store(false)

	id := uuid.NewString()
	logger := slog.With("run", id)

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "workflow")
	defer span.End()

	span.SetAttributes(attribute.String("workflow.run", id))

	status := func(message string) {
		if onStatus != nil {
			onStatus(message)
		}
	}

	e.mu.Lock()
	e.state = State{Phase: PhaseIdle}
	e.mu.Unlock()

	fail := func(err error) (*Result, error) {
		e.update(func(s *State) {
			s.Error = err.Error()
		})

		e.advance(ctx, PhaseError)
		status("")

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		logger.ErrorContext(ctx, "workflow failed", "phase", PhaseError, "error", err)

		return nil, err
	}

	e.advance(ctx, PhaseExtracting)
	status(StatusExtracting)

	content, err := extract(ctx, source, e.maxContent)

	if err != nil {
		return fail(err)
	}

	e.update(func(s *State) {
		s.Content = content
	})

	e.advance(ctx, PhasePrompting)
	status(StatusPrompting)

	input := prompter.Context(content, e.style, e.instructions)

	prompt, err := e.prompter.Prompt(ctx, input)

	if err != nil {
		return fail(err)
	}

	e.update(func(s *State) {
		s.Prompt = prompt
	})

	logger.DebugContext(ctx, "prompt created", "prompt", prompt)

	e.advance(ctx, PhaseGenerating)
	status(StatusGenerating)

	url, err := e.renderer.Render(ctx, prompt)

	if err != nil {
		return fail(err)
	}

	e.update(func(s *State) {
		s.ImageURL = url
	})

	e.advance(ctx, PhaseApplying)
	status(StatusApplying)

	status("")

	if onReady != nil {
		onReady(url)
	}

	e.advance(ctx, PhaseComplete)

	logger.InfoContext(ctx, "workflow complete", "url", url)

	return &Result{
		ID: id,

		Content: content,
		Prompt:  prompt,
		URL:     url,
	}, nil
}

func (e *Engine) update(fn func(s *State)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn(&e.state)
}

func (e *Engine) advance(ctx context.Context, next Phase) {
	e.mu.Lock()

	current := e.state.Phase

	if !current.CanAdvance(next) {
		e.mu.Unlock()

		slog.WarnContext(ctx, "ignoring phase regression", "from", current, "to", next)
		return
	}

	e.state.Phase = next
	e.mu.Unlock()

	slog.DebugContext(ctx, "workflow phase", "phase", next)

	trace.SpanFromContext(ctx).AddEvent("phase", trace.WithAttributes(attribute.String("workflow.phase", string(next))))

	if e.onPhase != nil {
		e.onPhase(next)
	}
}

func extract(ctx context.Context, source Source, limit int) (string, error) {
	if source == nil {
		return "", ErrContentUnavailable
	}

	content, err := source.Content(ctx)

	if err != nil {
		if errors.Is(err, ErrContentUnavailable) {
			return "", err
		}

		return "", fmt.Errorf("%w: %w", ErrContentUnavailable, err)
	}

	if content == "" {
		return "", ErrContentUnavailable
	}

	return truncate(content, limit), nil
}

// truncate limits s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}

	i := 0

	for pos := range s {
		if i == n {
			return s[:pos]
		}

		i++
	}

	return s
}
