// Package usernameform drives the "change your username" form: validation,
// a single in-flight submission per user and the toast shown for each outcome.
package usernameform

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/breadit-dev/breadit/frontend/internal/toast"
	"github.com/breadit-dev/breadit/shared/domain"
	"github.com/breadit-dev/breadit/shared/errors"
	"github.com/breadit-dev/breadit/shared/logger"
	"github.com/breadit-dev/breadit/shared/validation"
)

type State int

const (
	Idle State = iota
	Validating
	Invalid
	Submitting
	Success
	Conflict
	OtherError
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Invalid:
		return "invalid"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Conflict:
		return "conflict"
	case OtherError:
		return "other_error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	SuccessToast = toast.Toast{
		Description: "Your username has been updated",
		Variant:     toast.Default,
	}
	ConflictToast = toast.Toast{
		Title:       "Username already taken",
		Description: "Please choose a different username.",
		Variant:     toast.Destructive,
	}
	ErrorToast = toast.Toast{
		Title:       "There was an error",
		Description: "Could not change the username.",
		Variant:     toast.Destructive,
	}
)

// ErrBusy is returned when the same user already has a submission in flight.
var ErrBusy = errors.New("username change already in progress", http.StatusTooManyRequests)

// Submitter sends the validated name to the backend.
type Submitter interface {
	UpdateUsername(r *http.Request, name string) error
}

// Feedback receives everything the form shows to the user.
type Feedback interface {
	toast.Notifier
	FieldError(field, message string)
	Refresh()
}

type Editor struct {
	validate  validation.UsernameFunc
	submitter Submitter

	mu       sync.Mutex
	inflight map[domain.UserId]struct{}
}

func New(validate validation.UsernameFunc, submitter Submitter) *Editor {
	return &Editor{
		validate:  validate,
		submitter: submitter,
		inflight:  make(map[domain.UserId]struct{}),
	}
}

func (e *Editor) acquire(userID domain.UserId) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.inflight[userID]; busy {
		return false
	}
	e.inflight[userID] = struct{}{}
	return true
}

func (e *Editor) release(userID domain.UserId) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inflight, userID)
}

// InFlight reports whether userID has a submission that has not settled yet.
func (e *Editor) InFlight(userID domain.UserId) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, busy := e.inflight[userID]
	return busy
}

// Submit runs one pass of the form: Idle -> Validating -> Invalid, or
// Submitting -> Success | Conflict | OtherError. A call made while the same
// user has a submission in flight returns (Idle, ErrBusy) and changes nothing.
// The returned error is the submitter's error, if any.
func (e *Editor) Submit(r *http.Request, userID domain.UserId, raw string, fb Feedback) (State, error) {
	if !e.acquire(userID) {
		return Idle, ErrBusy
	}
	defer e.release(userID)

	log := logger.FromContext(r.Context()).With("user_id", userID.String())

	// Validating
	req, fieldErrs := e.validate(raw)
	if fieldErrs.HasErrors() {
		for field, msg := range fieldErrs {
			fb.FieldError(field, msg)
		}
		return Invalid, nil
	}

	// Submitting
	err := e.submitter.UpdateUsername(r, req.Name)
	switch {
	case err == nil:
		fb.Notify(SuccessToast)
		fb.Refresh()
		log.Info("username updated")
		return Success, nil
	case errors.IsConflict(err):
		fb.Notify(ConflictToast)
		log.Info("username already taken")
		return Conflict, err
	default:
		fb.Notify(ErrorToast)
		log.Error("failed to update username", "error", err)
		return OtherError, err
	}
}
