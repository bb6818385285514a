package workflow

import (
	"context"
	"sync"

	"github.com/mhdirfanpn/panadol-platform-client/pkg/apierror"
)

// Phase is the lifecycle of one modal session.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Definition parameterizes a workflow with resource-specific behavior. All
// five modal shapes (create, onboard, update-status, delete-confirm, view)
// share the one lifecycle below.
type Definition[F any] struct {
	// NewForm returns the pristine form used when a create-style workflow
	// opens and after a successful submit.
	NewForm func() F
	// Seed, when set, produces the form from the current selection instead
	// of NewForm. Returning false aborts Open: a workflow that needs a
	// selected entity does nothing without one.
	Seed func() (F, bool)
	// Validate returns a user-facing message for a client-side violation,
	// or "" when the form may be submitted.
	Validate func(F) string
	// Submit performs the mutation, typically through the controller so a
	// refetch follows on success.
	Submit func(context.Context, F) error
	// Fallback is shown when the server fails without a message.
	Fallback string
	// OnClose runs whenever the workflow leaves the open state for closed,
	// letting the owning controller drop its selection.
	OnClose func()
}

// Workflow is a short-lived, single-purpose modal session:
// closed -> open -> submitting -> closed on success, or back to open
// carrying an error message on failure.
type Workflow[F any] struct {
	mu     sync.Mutex
	def    Definition[F]
	phase  Phase
	form   F
	errMsg string
}

// New builds a closed workflow.
func New[F any](def Definition[F]) *Workflow[F] {
	w := &Workflow[F]{def: def}
	if def.NewForm != nil {
		w.form = def.NewForm()
	}
	return w
}

// Open starts a session with a pristine (or selection-seeded) form. It
// reports whether the workflow actually opened; a seeded workflow with
// nothing selected stays closed.
func (w *Workflow[F]) Open() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != PhaseClosed {
		return false
	}
	switch {
	case w.def.Seed != nil:
		form, ok := w.def.Seed()
		if !ok {
			return false
		}
		w.form = form
	case w.def.NewForm != nil:
		w.form = w.def.NewForm()
	}
	w.errMsg = ""
	w.phase = PhaseOpen
	return true
}

// Form returns a copy of the current form.
func (w *Workflow[F]) Form() F {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// SetForm replaces the form while open. Editing clears the local error,
// matching field-change behavior. Ignored while submitting.
func (w *Workflow[F]) SetForm(form F) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != PhaseOpen {
		return
	}
	w.form = form
	w.errMsg = ""
}

// Phase returns the current lifecycle phase.
func (w *Workflow[F]) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Err returns the inline error message, "" when there is none.
func (w *Workflow[F]) Err() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// Submit validates and performs the mutation. A validation failure keeps
// the session open with a local message and never touches the network. A
// server failure re-opens the session with the server's message or the
// fallback, keeping the selection so the user may retry or cancel. Success
// resets the form, closes the session and releases the selection.
func (w *Workflow[F]) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.phase != PhaseOpen {
		w.mu.Unlock()
		return nil
	}
	if w.def.Validate != nil {
		if msg := w.def.Validate(w.form); msg != "" {
			w.errMsg = msg
			w.mu.Unlock()
			return apierror.NewValidation(msg)
		}
	}
	w.phase = PhaseSubmitting
	w.errMsg = ""
	form := w.form
	w.mu.Unlock()

	err := w.def.Submit(ctx, form)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.phase = PhaseOpen
		w.errMsg = apierror.UserMessage(err, w.def.Fallback)
		return err
	}
	w.errMsg = ""
	if w.def.NewForm != nil {
		w.form = w.def.NewForm()
	}
	w.phase = PhaseClosed
	if w.def.OnClose != nil {
		w.def.OnClose()
	}
	return nil
}

// Close cancels an open session, clearing the local error and form state.
// Closing while a submit is in flight is a no-op so an in-flight mutation
// is never abandoned; it reports whether the workflow closed.
func (w *Workflow[F]) Close() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.phase {
	case PhaseSubmitting:
		return false
	case PhaseClosed:
		return true
	}
	w.errMsg = ""
	if w.def.NewForm != nil {
		w.form = w.def.NewForm()
	}
	w.phase = PhaseClosed
	if w.def.OnClose != nil {
		w.def.OnClose()
	}
	return true
}
