package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/audit"
	"github.com/JaimeStill/docket/internal/documents"
	"github.com/JaimeStill/docket/internal/notifications"
	"github.com/JaimeStill/docket/internal/users"
)

// System defines the public contract for the approval workflow.
type System interface {
	Handler() *Handler

	// Submit moves a pending or rejected document into review and
	// broadcasts an approval request to every active approver.
	Submit(ctx context.Context, cmd SubmitCommand) (*Event, error)

	// Approve closes the review cycle as approved and notifies the owner.
	Approve(ctx context.Context, cmd DecisionCommand) (*Event, error)

	// Reject closes the review cycle as rejected and notifies the owner.
	Reject(ctx context.Context, cmd DecisionCommand) (*Event, error)

	// History returns the document's workflow events oldest first.
	History(ctx context.Context, documentID uuid.UUID) ([]Event, error)
}

// Engine executes approval transitions. Authorization checks run before
// the transaction; the status update, event append, and notification
// enqueue happen inside it; the audit append follows the commit.
type Engine struct {
	store  Store
	users  users.System
	trail  *audit.Trail
	cfg    Config
	logger *slog.Logger
}

// New creates the approval workflow engine.
func New(
	store Store,
	usrs users.System,
	trail *audit.Trail,
	cfg Config,
	logger *slog.Logger,
) System {
	return &Engine{
		store:  store,
		users:  usrs,
		trail:  trail,
		cfg:    cfg,
		logger: logger.With("system", "workflow"),
	}
}

func (e *Engine) Handler() *Handler {
	return NewHandler(e, e.logger)
}

func (e *Engine) Submit(ctx context.Context, cmd SubmitCommand) (*Event, error) {
	if cmd.Priority == "" {
		cmd.Priority = PriorityNormal
	}
	if !cmd.Priority.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, cmd.Priority)
	}

	requester, err := e.users.Find(ctx, cmd.RequesterID)
	if err != nil {
		return nil, err
	}

	approvers, err := e.users.Approvers(ctx)
	if err != nil {
		return nil, err
	}

	var event *Event
	err = e.store.InTx(ctx, func(tx Tx) error {
		doc, err := tx.Document(ctx, cmd.DocumentID)
		if err != nil {
			return err
		}

		// Checked after the document load so a missing document still
		// reports not found.
		if len(approvers) == 0 {
			return ErrNoApprovers
		}

		// Adding a version to a rejected document reopens it to Pending,
		// so a document still in Rejected has had no new version since
		// the rejection.
		if doc.Status == documents.StatusRejected && e.cfg.RequireNewVersion {
			return ErrNewVersionRequired
		}

		if !documents.CanTransition(doc.Status, documents.StatusUnderReview) {
			return fmt.Errorf(
				"%w: cannot submit %s document for review",
				ErrInvalidTransition, doc.Status,
			)
		}

		if err := tx.SetStatus(ctx, doc.ID, documents.StatusUnderReview, doc.RowVersion); err != nil {
			return err
		}

		event, err = tx.InsertEvent(ctx, Event{
			DocumentID: doc.ID,
			Status:     documents.StatusUnderReview,
			Priority:   cmd.Priority,
		})
		if err != nil {
			return err
		}

		for _, approver := range approvers {
			err := tx.Enqueue(ctx, notifications.EnqueueCommand{
				RecipientID: approver.ID,
				DocumentID:  &doc.ID,
				Type:        notifications.TypeApprovalRequest,
				Subject:     fmt.Sprintf("Review requested: %s", doc.Name),
				Body: fmt.Sprintf(
					"%s submitted %q for review with %s priority.",
					requester.DisplayName, doc.Name, cmd.Priority,
				),
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	e.trail.Append(ctx, audit.Entry{
		ActorID:    cmd.RequesterID,
		Action:     audit.ActionReviewSubmitted,
		Details:    fmt.Sprintf("priority %s", cmd.Priority),
		DocumentID: &cmd.DocumentID,
		Origin:     cmd.Origin,
	})

	e.logger.Info(
		"document submitted for review",
		"document", cmd.DocumentID,
		"requester", cmd.RequesterID,
		"priority", cmd.Priority,
		"approvers", len(approvers),
	)
	return event, nil
}

func (e *Engine) Approve(ctx context.Context, cmd DecisionCommand) (*Event, error) {
	return e.decide(ctx, cmd, documents.StatusApproved)
}

func (e *Engine) Reject(ctx context.Context, cmd DecisionCommand) (*Event, error) {
	return e.decide(ctx, cmd, documents.StatusRejected)
}

func (e *Engine) History(ctx context.Context, documentID uuid.UUID) ([]Event, error) {
	return e.store.History(ctx, documentID)
}

// decide authorizes the approver, then applies the terminal transition.
// An unauthorized or unknown approver fails before the transaction opens,
// so no event, notification, or status change is written.
func (e *Engine) decide(ctx context.Context, cmd DecisionCommand, target documents.Status) (*Event, error) {
	approver, err := e.users.Find(ctx, cmd.ApproverID)
	if err != nil {
		return nil, err
	}
	if !approver.Active || !approver.Role.CanApprove() {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorizedApprover, approver.Email)
	}

	var event *Event
	err = e.store.InTx(ctx, func(tx Tx) error {
		doc, err := tx.Document(ctx, cmd.DocumentID)
		if err != nil {
			return err
		}

		if !documents.CanTransition(doc.Status, target) {
			return fmt.Errorf(
				"%w: cannot move %s document to %s",
				ErrInvalidTransition, doc.Status, target,
			)
		}

		priority := PriorityNormal
		if latest, err := tx.Latest(ctx, doc.ID); err != nil {
			return err
		} else if latest != nil {
			priority = latest.Priority
		}

		if err := tx.SetStatus(ctx, doc.ID, target, doc.RowVersion); err != nil {
			return err
		}

		event, err = tx.InsertEvent(ctx, Event{
			DocumentID: doc.ID,
			Status:     target,
			ApproverID: &cmd.ApproverID,
			Comment:    cmd.Comment,
			Priority:   priority,
		})
		if err != nil {
			return err
		}

		return tx.Enqueue(ctx, notifications.EnqueueCommand{
			RecipientID: doc.OwnerID,
			DocumentID:  &doc.ID,
			Type:        decisionType(target),
			Subject:     fmt.Sprintf("Document %s: %s", decisionWord(target), doc.Name),
			Body: fmt.Sprintf(
				"%s %s %q. %s",
				approver.DisplayName, decisionWord(target), doc.Name, cmd.Comment,
			),
		})
	})
	if err != nil {
		return nil, err
	}

	e.trail.Append(ctx, audit.Entry{
		ActorID:    cmd.ApproverID,
		Action:     decisionAction(target),
		Details:    cmd.Comment,
		DocumentID: &cmd.DocumentID,
		Origin:     cmd.Origin,
	})

	e.logger.Info(
		"review decision recorded",
		"document", cmd.DocumentID,
		"approver", cmd.ApproverID,
		"status", target,
	)
	return event, nil
}

func decisionType(target documents.Status) notifications.Type {
	if target == documents.StatusApproved {
		return notifications.TypeApproved
	}
	return notifications.TypeRejected
}

func decisionWord(target documents.Status) string {
	if target == documents.StatusApproved {
		return "approved"
	}
	return "rejected"
}

func decisionAction(target documents.Status) string {
	if target == documents.StatusApproved {
		return audit.ActionApproved
	}
	return audit.ActionRejected
}
