package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/mass"
	"github.com/outofforest/slablist/types"
)

// Op enumerates list operations reporting their status.
type Op uint8

// Op constants.
const (
	OpInsertFirst Op = iota
	OpInsertLast
	OpInsertAtPos
	OpInsertAfter
	OpDeleteFirst
	OpDeleteLast
	OpDeleteAtPos
	OpDeleteElement
	OpReverse
	OpClear
	OpAssign
)

var opNames = [...]string{
	OpInsertFirst:   "insertFirst",
	OpInsertLast:    "insertLast",
	OpInsertAtPos:   "insertAtPos",
	OpInsertAfter:   "insertAfter",
	OpDeleteFirst:   "deleteFirst",
	OpDeleteLast:    "deleteLast",
	OpDeleteAtPos:   "deleteAtPos",
	OpDeleteElement: "deleteElement",
	OpReverse:       "reverse",
	OpClear:         "clear",
	OpAssign:        "assign",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", o)
}

// Status describes the outcome of a single list operation.
type Status struct {
	Op       Op
	Value    any
	After    any
	Position int
	Err      error
}

// OK returns true if operation succeeded.
func (s Status) OK() bool {
	return s.Err == nil
}

// Message returns human-readable line describing the status.
func (s Status) Message() string {
	if s.Err != nil {
		switch {
		case errors.Is(s.Err, types.ErrPoolExhausted):
			if s.Op == OpAssign {
				return "Storage pool is full; list could not be assigned"
			}
			return fmt.Sprintf("Storage pool is full; %v could not be inserted", s.Value)
		case errors.Is(s.Err, types.ErrEmptyCollection):
			if s.Op == OpInsertAfter {
				return "List is empty"
			}
			return "The list is empty. Nothing can be deleted."
		case errors.Is(s.Err, types.ErrInvalidPosition):
			return fmt.Sprintf("Invalid position %d.", s.Position)
		case errors.Is(s.Err, types.ErrValueNotFound):
			if s.Op == OpInsertAfter {
				return fmt.Sprintf("%v not found", s.After)
			}
			return fmt.Sprintf("%v is not found", s.Value)
		default:
			return fmt.Sprintf("%s failed: %s", s.Op, s.Err)
		}
	}

	switch s.Op {
	case OpInsertFirst:
		return fmt.Sprintf("%v is inserted at the head of the list", s.Value)
	case OpInsertLast:
		return fmt.Sprintf("%v is inserted at the tail of the list", s.Value)
	case OpInsertAtPos:
		return fmt.Sprintf("%v is inserted at position %d", s.Value, s.Position)
	case OpInsertAfter:
		return fmt.Sprintf("%v is inserted after %v", s.Value, s.After)
	case OpDeleteFirst:
		return "The head of the list is deleted."
	case OpDeleteLast:
		return "The tail of the list is deleted."
	case OpDeleteAtPos:
		return fmt.Sprintf("Element at position %d is deleted.", s.Position)
	case OpDeleteElement:
		return fmt.Sprintf("%v is deleted.", s.Value)
	case OpReverse:
		return "The list is reversed."
	case OpClear:
		return "The list is cleared."
	case OpAssign:
		return "The list is assigned."
	default:
		return s.Op.String()
	}
}

// Reporter receives status of every mutating list operation.
type Reporter interface {
	Report(status Status)
}

// Nop discards all the statuses.
type Nop struct{}

// Report implements Reporter.
func (Nop) Report(Status) {}

// Func adapts function to Reporter interface.
type Func func(status Status)

// Report implements Reporter.
func (f Func) Report(status Status) {
	f(status)
}

// NewLogger returns reporter writing statuses to the logger stored in the context.
func NewLogger(ctx context.Context) *Logger {
	return &Logger{
		log: logger.Get(ctx),
	}
}

// Logger writes statuses as structured log entries.
type Logger struct {
	log *zap.Logger
}

// Report implements Reporter.
func (l *Logger) Report(status Status) {
	fields := []zap.Field{
		zap.Stringer("op", status.Op),
		zap.Any("value", status.Value),
		zap.Int("position", status.Position),
	}
	if status.After != nil {
		fields = append(fields, zap.Any("after", status.After))
	}

	if status.Err != nil {
		l.log.Warn(status.Message(), append(fields, zap.Error(status.Err))...)
		return
	}
	l.log.Info(status.Message(), fields...)
}

// recorderChunk is the number of statuses allocated at once by the recorder.
const recorderChunk = 64

// NewRecorder returns reporter remembering all the statuses.
func NewRecorder() *Recorder {
	return &Recorder{
		massStatus: mass.New[Status](recorderChunk),
	}
}

// Recorder stores reported statuses so they might be inspected later.
type Recorder struct {
	mu         sync.Mutex
	massStatus *mass.Mass[Status]
	statuses   []*Status
}

// Report implements Reporter.
func (r *Recorder) Report(status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.massStatus.New()
	*s = status
	r.statuses = append(r.statuses, s)
}

// Statuses returns copy of recorded statuses.
func (r *Recorder) Statuses() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	statuses := make([]Status, 0, len(r.statuses))
	for _, s := range r.statuses {
		statuses = append(statuses, *s)
	}
	return statuses
}

// Last returns the most recent status.
func (r *Recorder) Last() (Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.statuses) == 0 {
		return Status{}, false
	}
	return *r.statuses[len(r.statuses)-1], true
}

// Messages returns human-readable lines of recorded statuses.
func (r *Recorder) Messages() []string {
	statuses := r.Statuses()
	messages := make([]string, 0, len(statuses))
	for _, s := range statuses {
		messages = append(messages, s.Message())
	}
	return messages
}
