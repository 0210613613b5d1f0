package ot

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNoOutstandingOperation is returned by Ack when there is nothing
// pending to acknowledge.
var ErrNoOutstandingOperation = errors.New("ot: no outstanding operation to acknowledge")

// SessionState is the synchronization state of a Session, ported from
// the teacher's ot.js-derived client state machine
// (Synchronized/AwaitingConfirm/AwaitingWithBuffer).
type SessionState int

const (
	// Synchronized means the session has nothing in flight.
	Synchronized SessionState = iota
	// AwaitingConfirm means one operation has been sent and is waiting
	// on the server's acknowledgment.
	AwaitingConfirm
	// AwaitingBuffer means a second local edit arrived while still
	// awaiting confirmation of the first, and has been composed into a
	// buffer rather than sent.
	AwaitingBuffer
)

// Session coordinates one participant's local view of a document against
// a server using Compose and Transform. It owns no socket, goroutine, or
// timer — it is a pure, synchronous port of the teacher's pkg/ot/client.go
// state machine restated over this package's Skip/Delete/Insert operations
// and explicit Side discriminator, and exists to demonstrate the three
// core operations converging in a believable client/server loop rather
// than to be a supported transport or session product (see SPEC_FULL.md
// §6 for the scope note). Nothing in this repository connects a Session
// to a network transport.
type Session struct {
	ID       string
	state    SessionState
	revision int
	doc      string

	outstanding Operation // sent, not yet acknowledged
	buffer      Operation // local edits made since outstanding was sent
}

// NewSession returns a Session starting from document content initial,
// identified by a freshly generated UUID.
func NewSession(initial string) *Session {
	return &Session{
		ID:    uuid.NewString(),
		state: Synchronized,
		doc:   initial,
	}
}

// State returns the session's current synchronization state.
func (s *Session) State() SessionState { return s.state }

// Revision returns the number of server operations this session has
// incorporated.
func (s *Session) Revision() int { return s.revision }

// Document returns the session's current local document content.
func (s *Session) Document() string { return s.doc }

// ApplyLocal applies a locally originated edit: it is applied to the
// document immediately (so typing feels instant), and is either sent
// right away, held as the outstanding operation, or composed into the
// buffer, depending on what is already in flight.
func (s *Session) ApplyLocal(op Operation) error {
	newDoc, err := ApplyToString(s.doc, op)
	if err != nil {
		return err
	}

	switch s.state {
	case Synchronized:
		s.state = AwaitingConfirm
		s.outstanding = op
	case AwaitingConfirm:
		s.state = AwaitingBuffer
		s.buffer = op
	case AwaitingBuffer:
		composed, err := Compose(s.buffer, op)
		if err != nil {
			return err
		}
		s.buffer = composed
	}

	s.doc = newDoc
	return nil
}

// Outgoing returns the operation the session should send to the server
// right now, and whether one is pending. It always returns the
// outstanding operation, never the buffer — the buffer is only sent once
// it becomes outstanding, on Ack.
func (s *Session) Outgoing() (Operation, bool) {
	if s.state == Synchronized {
		return nil, false
	}
	return s.outstanding, true
}

// Ack handles the server acknowledging the outstanding operation: the
// revision advances, and if a buffer had accumulated it becomes the new
// outstanding operation (ready to send on the next Outgoing call).
func (s *Session) Ack() error {
	switch s.state {
	case AwaitingConfirm:
		s.state = Synchronized
		s.outstanding = nil
	case AwaitingBuffer:
		s.state = AwaitingConfirm
		s.outstanding = s.buffer
		s.buffer = nil
	default:
		return ErrNoOutstandingOperation
	}
	s.revision++
	return nil
}

// ApplyRemote applies an operation that arrived from the server
// concurrently with this session's own pending edits. Any outstanding or
// buffered local operation is rebased across it (Transform, invariant
// I4) before being applied locally, keeping every participant converging
// on the same document regardless of delivery order.
func (s *Session) ApplyRemote(op Operation) error {
	transformed := op
	var err error

	switch s.state {
	case Synchronized:
		// nothing pending locally; apply as-is.
	case AwaitingConfirm:
		s.outstanding, transformed, err = transformPair(s.outstanding, op)
		if err != nil {
			return err
		}
	case AwaitingBuffer:
		s.outstanding, transformed, err = transformPair(s.outstanding, op)
		if err != nil {
			return err
		}
		s.buffer, transformed, err = transformPair(s.buffer, transformed)
		if err != nil {
			return err
		}
	}

	newDoc, err := ApplyToString(s.doc, transformed)
	if err != nil {
		return err
	}
	s.doc = newDoc
	s.revision++
	return nil
}

// transformPair rebases a and b across each other symmetrically: a' on
// the left (a's insert wins same-position ties), b' on the right.
func transformPair(a, b Operation) (Operation, Operation, error) {
	aPrime, err := Transform(a, b, SideLeft)
	if err != nil {
		return nil, nil, err
	}
	bPrime, err := Transform(b, a, SideRight)
	if err != nil {
		return nil, nil, err
	}
	return aPrime, bPrime, nil
}
