package api

import (
	"net/http"

	"github.com/JaimeStill/docket/internal/config"
	"github.com/JaimeStill/docket/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Users.Handler().Routes(),
		domain.Documents.Handler().Routes(),
		domain.Versions.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Workflow.Handler().Routes(),
		domain.Notifications.Handler().Routes(),
		domain.Audit.Handler().Routes(),
	)
}
