package api

import (
	"net/http"
	"net/url"

	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// ActivitiesHandler serves the activity directory.
type ActivitiesHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps Dependencies, log logger.Logger) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps, logger: log}
}

// HandleList handles GET /activities.
func (h *ActivitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	dir, err := h.deps.ListActivities(r.Context())
	if err != nil {
		h.fail(w, r, Wrap("list activities", err))
		return
	}
	writeJSON(w, http.StatusOK, dir)
}

// HandleSignup handles POST /activities/{activity_name}/signup?email=.
func (h *ActivitiesHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	name, email, err := membershipParams(r)
	if err != nil {
		h.fail(w, r, Wrap("signup", err))
		return
	}
	msg, err := h.deps.Signup(r.Context(), name, email)
	if err != nil {
		h.fail(w, r, Wrap("signup", err))
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// HandleUnregister handles DELETE /activities/{activity_name}/signup?email=.
func (h *ActivitiesHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	name, email, err := membershipParams(r)
	if err != nil {
		h.fail(w, r, Wrap("unregister", err))
		return
	}
	msg, err := h.deps.Unregister(r.Context(), name, email)
	if err != nil {
		h.fail(w, r, Wrap("unregister", err))
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *ActivitiesHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := problem(err)
	if status >= http.StatusInternalServerError && h.logger != nil {
		h.logger.Error(r.Context(), "request failed",
			logger.String("request_id", chimiddleware.GetReqID(r.Context())),
			logger.Error(err),
		)
	}
	writeDetail(w, status, detail)
}

// membershipParams extracts the decoded activity name and the email query value.
// An empty email is accepted; only an absent one is rejected.
func membershipParams(r *http.Request) (string, string, error) {
	name := chi.URLParam(r, "activity_name")
	// chi matches against RawPath when the request carries escapes that the
	// decoded path cannot represent, e.g. %2F.
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return "", "", WrapKind("decode activity name", ErrBadRequest, err)
		}
		name = decoded
	}

	q := r.URL.Query()
	if !q.Has("email") {
		return "", "", &MissingParamError{Param: "email"}
	}
	return name, q.Get("email"), nil
}
