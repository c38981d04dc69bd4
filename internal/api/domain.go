package api

import (
	"github.com/JaimeStill/docket/internal/audit"
	"github.com/JaimeStill/docket/internal/documents"
	"github.com/JaimeStill/docket/internal/notifications"
	"github.com/JaimeStill/docket/internal/users"
	"github.com/JaimeStill/docket/internal/versions"
	"github.com/JaimeStill/docket/internal/workflow"
)

// Domain holds all domain systems that comprise the API. Audit is
// exposed through its read surface; the write surface is the Trail
// threaded through the mutating systems.
type Domain struct {
	Audit         audit.System
	Users         users.System
	Documents     documents.System
	Versions      versions.System
	Notifications notifications.System
	Workflow      workflow.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	auditSys := audit.New(db, runtime.Logger, runtime.Pagination)
	trail := audit.NewTrail(auditSys, runtime.Logger)

	usersSys := users.New(db, trail, runtime.Logger, runtime.Pagination)

	docsSys := documents.New(
		db,
		usersSys,
		runtime.Storage,
		trail,
		runtime.Logger,
		runtime.Pagination,
	)

	versionsSys := versions.New(
		versions.NewStore(db),
		docsSys,
		runtime.Storage,
		trail,
		runtime.Logger,
	)

	notificationsSys := notifications.New(db, runtime.Logger, runtime.Pagination)

	workflowSys := workflow.New(
		workflow.NewStore(db),
		usersSys,
		trail,
		runtime.Workflow,
		runtime.Logger,
	)

	return &Domain{
		Audit:         auditSys,
		Users:         usersSys,
		Documents:     docsSys,
		Versions:      versionsSys,
		Notifications: notificationsSys,
		Workflow:      workflowSys,
	}
}
