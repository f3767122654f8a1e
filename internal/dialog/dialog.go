// Package dialog drives the "create translation flashcard" flow: the learner's
// text is translated first and the resulting pair is then stored as a card in
// a deck. Each step's failure is reported as a toast and leaves the dialog ready
// for another attempt.
package dialog

import (
	"context"
	"errors"
	"sync"

	"lingodeck/internal/domain"
	"lingodeck/internal/validation"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// ErrBusy is returned when a submission is already running
var ErrBusy = errors.New("submission already in progress")

// Toast texts shown to the learner
const (
	SuccessTitle        = "Success"
	ErrorTitle          = "Error"
	SuccessDescription  = "Translation flashcard created successfully"
	translationFallback = "Translation failed"
	createCardFallback  = "Failed to create flashcard"
)

// Translator is the first step of a submission
type Translator interface {
	Translate(ctx context.Context, req domain.TranslationRequest) (*domain.Translation, error)
}

// CardCreator is the second step of a submission
type CardCreator interface {
	CreateFlashcard(ctx context.Context, card domain.NewFlashcard) (*domain.Flashcard, error)
}

// Toast is a short notification for the learner
type Toast struct {
	Title       string
	Description string
	Destructive bool
}

// Notifier displays toasts
type Notifier interface {
	Notify(t Toast)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(t Toast)

// Notify calls f(t)
func (f NotifierFunc) Notify(t Toast) { f(t) }

// Options configures a Dialog
type Options struct {
	DeckID     string
	Translator Translator
	Creator    CardCreator
	Notifier   Notifier
	// OnCreated runs after a card was stored
	OnCreated func(card *domain.Flashcard)
	// OnOpenChange runs whenever the dialog opens or closes
	OnOpenChange func(open bool)
	// ErrorMessage picks the toast text for a failed step. An empty result
	// shows the step's fallback. When nil, the error text is shown.
	ErrorMessage func(err error) string
	Logger       *zap.Logger
}

// Dialog collects a translation form for one deck and submits it
type Dialog struct {
	deckID       string
	translator   Translator
	creator      CardCreator
	notifier     Notifier
	onCreated    func(card *domain.Flashcard)
	onOpenChange func(open bool)
	errorMessage func(err error) string
	logger       *zap.Logger

	busy atomic.Bool

	mu    sync.Mutex
	form  domain.TranslationRequest
	open  bool
	state domain.SubmissionState
}

// New creates a closed dialog with the default form
func New(opts Options) *Dialog {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NotifierFunc(func(Toast) {})
	}
	errorMessage := opts.ErrorMessage
	if errorMessage == nil {
		errorMessage = func(err error) string { return err.Error() }
	}
	return &Dialog{
		deckID:       opts.DeckID,
		translator:   opts.Translator,
		creator:      opts.Creator,
		notifier:     notifier,
		onCreated:    opts.OnCreated,
		onOpenChange: opts.OnOpenChange,
		errorMessage: errorMessage,
		logger:       logger,
		form:         DefaultForm(),
		state:        domain.SubmissionIdle,
	}
}

// DefaultForm returns an empty form with the default language pair
func DefaultForm() domain.TranslationRequest {
	return domain.TranslationRequest{
		SourceLang: domain.DefaultSourceLang,
		TargetLang: domain.DefaultTargetLang,
	}
}

// DeckID returns the deck new cards go to
func (d *Dialog) DeckID() string { return d.deckID }

// Form returns the current form values
func (d *Dialog) Form() domain.TranslationRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// SetForm replaces the form values
func (d *Dialog) SetForm(form domain.TranslationRequest) {
	d.mu.Lock()
	d.form = form
	d.mu.Unlock()
}

// State returns the submission state
func (d *Dialog) State() domain.SubmissionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Busy reports whether a submission is running
func (d *Dialog) Busy() bool { return d.busy.Load() }

// IsOpen reports whether the dialog is shown
func (d *Dialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// SetOpen opens or closes the dialog. Closing does not cancel a running submission.
func (d *Dialog) SetOpen(open bool) {
	d.mu.Lock()
	changed := d.open != open
	d.open = open
	d.mu.Unlock()

	if changed && d.onOpenChange != nil {
		d.onOpenChange(open)
	}
}

// Submit validates the form, translates its text and stores the result as a
// flashcard. It returns the validation error without contacting anything, ErrBusy
// while another submission runs, or the error of the failed step.
func (d *Dialog) Submit(ctx context.Context, form domain.TranslationRequest) (*domain.Flashcard, error) {
	if err := validation.Struct(form); err != nil {
		return nil, err
	}

	if !d.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer d.busy.Store(false)

	d.mu.Lock()
	d.form = form
	d.state = domain.SubmissionLoading
	d.mu.Unlock()

	translation, err := d.translator.Translate(ctx, form)
	if err != nil {
		d.fail(err, translationFallback)
		return nil, err
	}

	card, err := d.creator.CreateFlashcard(ctx, domain.NewFlashcard{
		DeckID: d.deckID,
		Front:  translation.Source,
		Back:   translation.Target,
	})
	if err != nil {
		d.fail(err, createCardFallback)
		return nil, err
	}

	d.notifier.Notify(Toast{Title: SuccessTitle, Description: SuccessDescription})

	d.mu.Lock()
	d.form = DefaultForm()
	d.state = domain.SubmissionSuccess
	d.open = false
	d.mu.Unlock()

	if d.onCreated != nil {
		d.onCreated(card)
	}
	if d.onOpenChange != nil {
		d.onOpenChange(false)
	}

	return card, nil
}

func (d *Dialog) fail(err error, fallback string) {
	d.logger.Error("Error creating translation flashcard",
		zap.Error(err),
		zap.String("deck_id", d.deckID),
	)

	description := d.errorMessage(err)
	if description == "" {
		description = fallback
	}
	d.notifier.Notify(Toast{Title: ErrorTitle, Description: description, Destructive: true})

	d.mu.Lock()
	d.state = domain.SubmissionError
	d.mu.Unlock()
}
