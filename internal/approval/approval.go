// Package approval holds the two-track approval state machine shared by every
// request kind. It is pure: callers load the record, decide here and persist
// the result with a conditional update.
package approval

import (
	"net/http"

	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Track string

const (
	TrackBH Track = "BH"
	TrackHR Track = "HR"
)

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

var (
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"approval track already decided",
		http.StatusConflict,
	)
	ErrNotAuthorized = apperror.New(
		apperror.CodeForbidden,
		"actor is not allowed to decide this approval track",
		http.StatusForbidden,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"decision must be APPROVE or REJECT",
		http.StatusBadRequest,
	)
)

func ParseDecision(v string) (Decision, error) {
	switch Decision(v) {
	case DecisionApprove, DecisionReject:
		return Decision(v), nil
	default:
		return "", ErrInvalidDecision
	}
}

func (d Decision) Status() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// TrackForRole maps the acting role onto the track it decides.
func TrackForRole(role string) (Track, error) {
	switch {
	case domain.IsBusinessHead(role):
		return TrackBH, nil
	case role == domain.RoleHR:
		return TrackHR, nil
	default:
		return "", ErrNotAuthorized
	}
}

type State struct {
	BH Status
	HR Status
}

func NewState() State {
	return State{BH: StatusPending, HR: StatusPending}
}

// Aggregate derives the overall status. It is never stored independently of
// the two tracks.
func (s State) Aggregate() Status {
	switch {
	case s.BH == StatusRejected || s.HR == StatusRejected:
		return StatusRejected
	case s.BH == StatusApproved && s.HR == StatusApproved:
		return StatusApproved
	default:
		return StatusPending
	}
}

func (s State) Of(t Track) Status {
	if t == TrackBH {
		return s.BH
	}
	return s.HR
}

// Other returns the status of the track that is not t.
func (s State) Other(t Track) Status {
	if t == TrackBH {
		return s.HR
	}
	return s.BH
}

// Decide applies d to track t. A track that is not PENDING cannot be decided
// again, including re-approval with the same decision.
func (s State) Decide(t Track, d Decision) (State, error) {
	if s.Of(t) != StatusPending {
		return s, ErrInvalidTransition
	}
	next := s
	if t == TrackBH {
		next.BH = d.Status()
	} else {
		next.HR = d.Status()
	}
	return next, nil
}
