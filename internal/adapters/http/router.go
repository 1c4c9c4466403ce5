// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/listsync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/listsync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/listsync/internal/domain"
)

// Routes groups the handlers served by the router. Metrics is optional and
// mounted on /metrics when set.
type Routes struct {
	Lists   *handlers.ListHandler
	Members *handlers.MemberHandler
	Health  *handlers.HealthHandler
	Metrics http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, dto.Problem(req, http.StatusMethodNotAllowed, req.Method+" is not supported here"))
	})

	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	if routes.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", routes.Metrics)
	}

	listPath := "/lists/{" + handlers.ParamListID + "}"
	memberPath := listPath + "/members/{" + handlers.ParamMemberID + "}"

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/lists", routes.Lists.ListLists)
		r.Post("/lists", routes.Lists.CreateList)
		r.Get(listPath, routes.Lists.GetList)
		r.Put(listPath, routes.Lists.UpdateList)
		r.Patch(listPath, routes.Lists.UpdateList)
		r.Delete(listPath, routes.Lists.DeleteList)

		r.Get(listPath+"/members", routes.Members.ListMembers)
		r.Post(listPath+"/members", routes.Members.CreateMember)
		r.Get(memberPath, routes.Members.GetMember)
		r.Put(memberPath, routes.Members.UpdateMember)
		r.Patch(memberPath, routes.Members.UpdateMember)
		r.Delete(memberPath, routes.Members.DeleteMember)
	})

	return r
}
