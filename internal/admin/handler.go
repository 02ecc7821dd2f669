// Package admin implements the password-protected back office API.
//
// All routes except login sit behind a bearer-token session check. Every
// mutation follows the same cycle: one store call, then a full re-read of
// the affected collection so the client always renders fresh state.
//
// Routes:
//
//	POST   /admin/api/login                  → credentials → session token
//	POST   /admin/api/logout                 → revoke session
//	GET    /admin/api/session                → session probe
//	GET    /admin/api/dashboard              → all five collections, concurrently
//	GET    /admin/api/{entity}               → list
//	POST   /admin/api/{projects|jobs|blog}   → create, returns refreshed list
//	PUT    /admin/api/{projects|jobs|blog}/{id}
//	DELETE /admin/api/{entity}/{id}?confirm=true
//	GET    /admin/api/export/{messages|jobs} → xlsx download
//	POST   /admin/api/upload                 → image → public URL
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"mobintix/site-service/internal/auth"
	"mobintix/site-service/internal/cache"
	"mobintix/site-service/internal/model"
	"mobintix/site-service/internal/site"
	"mobintix/site-service/internal/store"
)

// ErrConfirmRequired gates destructive operations: without confirm=true
// the store delete is never issued.
var ErrConfirmRequired = errors.New("delete requires confirm=true")

// ProjectStore is the projects collection as seen by the back office.
type ProjectStore interface {
	FetchAll(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, in model.ProjectInput) (model.Project, error)
	Update(ctx context.Context, id int64, in model.ProjectInput) (model.Project, error)
	Delete(ctx context.Context, id int64) error
}

// JobStore is the jobs collection as seen by the back office.
type JobStore interface {
	FetchAll(ctx context.Context) ([]model.Job, error)
	Create(ctx context.Context, in model.JobInput) (model.Job, error)
	Update(ctx context.Context, id int64, in model.JobInput) (model.Job, error)
	Delete(ctx context.Context, id int64) error
}

// BlogStore is the blog collection as seen by the back office.
type BlogStore interface {
	FetchAll(ctx context.Context) ([]model.BlogPost, error)
	Create(ctx context.Context, in model.BlogPostInput) (model.BlogPost, error)
	Update(ctx context.Context, id int64, in model.BlogPostInput) (model.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}

// MessageStore is the read/delete view of contact messages.
type MessageStore interface {
	FetchAll(ctx context.Context) ([]model.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

// ApplicationStore is the read/delete view of job applications.
type ApplicationStore interface {
	FetchAll(ctx context.Context) ([]model.JobApplication, error)
	Delete(ctx context.Context, id int64) error
}

// TalentPoolStore is the read/delete view of the talent pool.
type TalentPoolStore interface {
	FetchAll(ctx context.Context) ([]model.TalentPoolEntry, error)
	Delete(ctx context.Context, id int64) error
}

// CredentialChecker verifies operator credentials.
type CredentialChecker interface {
	Check(ctx context.Context, email, password string) error
}

// SessionStore issues and validates bearer tokens.
type SessionStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename string, size int64, contentType string) (string, error)
}

// Deps bundles the Handler's collaborators. Uploader and Cache may be nil
// (uploads disabled / no public cache to invalidate).
type Deps struct {
	Projects     ProjectStore
	Jobs         JobStore
	Blog         BlogStore
	Messages     MessageStore
	Applications ApplicationStore
	TalentPool   TalentPoolStore
	Credentials  CredentialChecker
	Sessions     SessionStore
	Uploader     Uploader
	Cache        *cache.Cache
}

// Handler holds the admin route implementations.
type Handler struct {
	deps Deps
}

// NewHandler returns a configured Handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// RegisterRoutes mounts all admin routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /admin/api/login", h.login)
	mux.HandleFunc("POST /admin/api/logout", h.guard(h.logout))
	mux.HandleFunc("GET /admin/api/session", h.guard(h.sessionProbe))
	mux.HandleFunc("GET /admin/api/dashboard", h.guard(h.dashboard))

	mux.HandleFunc("GET /admin/api/projects", h.guard(h.listProjects))
	mux.HandleFunc("POST /admin/api/projects", h.guard(h.createProject))
	mux.HandleFunc("PUT /admin/api/projects/{id}", h.guard(h.updateProject))
	mux.HandleFunc("DELETE /admin/api/projects/{id}", h.guard(h.deleteProject))

	mux.HandleFunc("GET /admin/api/jobs", h.guard(h.listJobs))
	mux.HandleFunc("POST /admin/api/jobs", h.guard(h.createJob))
	mux.HandleFunc("PUT /admin/api/jobs/{id}", h.guard(h.updateJob))
	mux.HandleFunc("DELETE /admin/api/jobs/{id}", h.guard(h.deleteJob))

	mux.HandleFunc("GET /admin/api/blog", h.guard(h.listBlog))
	mux.HandleFunc("POST /admin/api/blog", h.guard(h.createBlogPost))
	mux.HandleFunc("PUT /admin/api/blog/{id}", h.guard(h.updateBlogPost))
	mux.HandleFunc("DELETE /admin/api/blog/{id}", h.guard(h.deleteBlogPost))

	mux.HandleFunc("GET /admin/api/messages", h.guard(h.listMessages))
	mux.HandleFunc("DELETE /admin/api/messages/{id}", h.guard(h.deleteMessage))

	mux.HandleFunc("GET /admin/api/applications", h.guard(h.listApplications))
	mux.HandleFunc("DELETE /admin/api/applications/{id}", h.guard(h.deleteApplication))

	mux.HandleFunc("GET /admin/api/talent-pool", h.guard(h.listTalentPool))
	mux.HandleFunc("DELETE /admin/api/talent-pool/{id}", h.guard(h.deleteTalentPoolEntry))

	mux.HandleFunc("GET /admin/api/export/messages", h.guard(h.exportMessages))
	mux.HandleFunc("GET /admin/api/export/jobs", h.guard(h.exportJobs))

	mux.HandleFunc("POST /admin/api/upload", h.guard(h.upload))
}

// ─── Session lifecycle ───────────────────────────────────────────────────────

// login drives the LoggedOut → LoggingIn → {LoggedIn, LoggedOut} machine
// for one attempt. A failure returns 401 with the retained error message;
// there is no automatic retry.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		jsonError(w, "body must contain email and password", http.StatusBadRequest)
		return
	}

	flow := auth.NewLogin()
	if err := flow.Begin(); err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.deps.Credentials.Check(r.Context(), body.Email, body.Password); err != nil {
		flow.Fail(err.Error())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"error": flow.LastError(),
			"state": string(flow.State()),
		})
		return
	}

	token, err := h.deps.Sessions.Issue(r.Context(), body.Email)
	if err != nil {
		flow.Fail(err.Error())
		jsonError(w, "session error", http.StatusInternalServerError)
		return
	}
	flow.Succeed()

	jsonOK(w, map[string]string{
		"token": token,
		"email": body.Email,
		"state": string(flow.State()),
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Sessions.Revoke(r.Context(), bearerToken(r)); err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]string{"state": string(auth.StateLoggedOut)})
}

func (h *Handler) sessionProbe(w http.ResponseWriter, r *http.Request) {
	email, _ := h.deps.Sessions.Validate(r.Context(), bearerToken(r))
	jsonOK(w, map[string]string{
		"email": email,
		"state": string(auth.StateLoggedIn),
	})
}

// guard rejects requests without a live session.
func (h *Handler) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.deps.Sessions.Validate(r.Context(), bearerToken(r)); err != nil {
			jsonError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if after, found := strings.CutPrefix(h, "Bearer "); found {
		return after
	}
	return ""
}

// ─── Projects ────────────────────────────────────────────────────────────────

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, "projects", func(ctx context.Context) (any, error) {
		return h.deps.Projects.FetchAll(ctx)
	})
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeProjectInput(w, r)
	if !ok {
		return
	}
	if _, err := h.deps.Projects.Create(r.Context(), in); err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.invalidatePublic(r.Context(), site.CacheKeyProjects)
	h.respondList(w, r, "projects", func(ctx context.Context) (any, error) {
		return h.deps.Projects.FetchAll(ctx)
	})
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	in, ok := decodeProjectInput(w, r)
	if !ok {
		return
	}
	if _, err := h.deps.Projects.Update(r.Context(), id, in); err != nil {
		storeError(w, err)
		return
	}
	h.invalidatePublic(r.Context(), site.CacheKeyProjects)
	h.respondList(w, r, "projects", func(ctx context.Context) (any, error) {
		return h.deps.Projects.FetchAll(ctx)
	})
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	h.confirmedDelete(w, r, h.deps.Projects.Delete, func() {
		h.invalidatePublic(r.Context(), site.CacheKeyProjects)
		h.respondList(w, r, "projects", func(ctx context.Context) (any, error) {
			return h.deps.Projects.FetchAll(ctx)
		})
	})
}

func decodeProjectInput(w http.ResponseWriter, r *http.Request) (model.ProjectInput, bool) {
	var in model.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return in, false
	}
	if in.Title == "" {
		jsonError(w, "title is required", http.StatusBadRequest)
		return in, false
	}
	if _, err := model.ParseProjectCategory(in.Category); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return in, false
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	return in, true
}

// ─── Jobs ────────────────────────────────────────────────────────────────────

// jobPayload is the admin-facing job form: requirements arrive as one
// textarea block, one requirement per line.
type jobPayload struct {
	Title        string `json:"title"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	SalaryRange  string `json:"salary_range"`
	Category     string `json:"category"`
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, "jobs", func(ctx context.Context) (any, error) {
		return h.deps.Jobs.FetchAll(ctx)
	})
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeJobInput(w, r)
	if !ok {
		return
	}
	if _, err := h.deps.Jobs.Create(r.Context(), in); err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.invalidatePublic(r.Context(), site.CacheKeyJobs)
	h.respondList(w, r, "jobs", func(ctx context.Context) (any, error) {
		return h.deps.Jobs.FetchAll(ctx)
	})
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	in, ok := decodeJobInput(w, r)
	if !ok {
		return
	}
	if _, err := h.deps.Jobs.Update(r.Context(), id, in); err != nil {
		storeError(w, err)
		return
	}
	h.invalidatePublic(r.Context(), site.CacheKeyJobs)
	h.respondList(w, r, "jobs", func(ctx context.Context) (any, error) {
		return h.deps.Jobs.FetchAll(ctx)
	})
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	h.confirmedDelete(w, r, h.deps.Jobs.Delete, func() {
		h.invalidatePublic(r.Context(), site.CacheKeyJobs)
		h.respondList(w, r, "jobs", func(ctx context.Context) (any, error) {
			return h.deps.Jobs.FetchAll(ctx)
		})
	})
}

func decodeJobInput(w http.ResponseWriter, r *http.Request) (model.JobInput, bool) {
	var p jobPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return model.JobInput{}, false
	}
	if p.Title == "" {
		jsonError(w, "title is required", http.StatusBadRequest)
		return model.JobInput{}, false
	}
	if _, err := model.ParseJobType(p.Type); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return model.JobInput{}, false
	}
	return model.JobInput{
		Title:        p.Title,
		Type:         p.Type,
		Location:     p.Location,
		Description:  p.Description,
		Requirements: model.SplitLines(p.Requirements),
		SalaryRange:  p.SalaryRange,
		Category:     p.Category,
	}, true
}

// ─── Blog ────────────────────────────────────────────────────────────────────

func (h *Handler) listBlog(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, "posts", func(ctx context.Context) (any, error) {
		return h.deps.Blog.FetchAll(ctx)
	})
}

func (h *Handler) createBlogPost(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeBlogInput(w, r)
	if !ok {
		return
	}
	if _, err := h.deps.Blog.Create(r.Context(), in); err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.respondList(w, r, "posts", func(ctx context.Context) (any, error) {
		return h.deps.Blog.FetchAll(ctx)
	})
}

func (h *Handler) updateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	in, ok := decodeBlogInput(w, r)
	if !ok {
		return
	}
	if _, err := h.deps.Blog.Update(r.Context(), id, in); err != nil {
		storeError(w, err)
		return
	}
	h.respondList(w, r, "posts", func(ctx context.Context) (any, error) {
		return h.deps.Blog.FetchAll(ctx)
	})
}

func (h *Handler) deleteBlogPost(w http.ResponseWriter, r *http.Request) {
	h.confirmedDelete(w, r, h.deps.Blog.Delete, func() {
		h.respondList(w, r, "posts", func(ctx context.Context) (any, error) {
			return h.deps.Blog.FetchAll(ctx)
		})
	})
}

func decodeBlogInput(w http.ResponseWriter, r *http.Request) (model.BlogPostInput, bool) {
	var in model.BlogPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return in, false
	}
	if in.Slug == "" || in.Title == "" {
		jsonError(w, "slug and title are required", http.StatusBadRequest)
		return in, false
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	return in, true
}

// ─── Read/delete-only collections ────────────────────────────────────────────

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, "messages", func(ctx context.Context) (any, error) {
		return h.deps.Messages.FetchAll(ctx)
	})
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	h.confirmedDelete(w, r, h.deps.Messages.Delete, func() {
		h.respondList(w, r, "messages", func(ctx context.Context) (any, error) {
			return h.deps.Messages.FetchAll(ctx)
		})
	})
}

func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, "applications", func(ctx context.Context) (any, error) {
		return h.deps.Applications.FetchAll(ctx)
	})
}

func (h *Handler) deleteApplication(w http.ResponseWriter, r *http.Request) {
	h.confirmedDelete(w, r, h.deps.Applications.Delete, func() {
		h.respondList(w, r, "applications", func(ctx context.Context) (any, error) {
			return h.deps.Applications.FetchAll(ctx)
		})
	})
}

func (h *Handler) listTalentPool(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, "entries", func(ctx context.Context) (any, error) {
		return h.deps.TalentPool.FetchAll(ctx)
	})
}

func (h *Handler) deleteTalentPoolEntry(w http.ResponseWriter, r *http.Request) {
	h.confirmedDelete(w, r, h.deps.TalentPool.Delete, func() {
		h.respondList(w, r, "entries", func(ctx context.Context) (any, error) {
			return h.deps.TalentPool.FetchAll(ctx)
		})
	})
}

// ─── Shared plumbing ─────────────────────────────────────────────────────────

// respondList re-reads a collection and returns it under key. Used both
// for plain lists and as the refetch step after a successful mutation.
func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, key string, fetch func(ctx context.Context) (any, error)) {
	rows, err := fetch(r.Context())
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]any{key: rows})
}

// confirmedDelete enforces the confirmation gate, issues the store delete,
// and on success hands off to the caller's refetch.
func (h *Handler) confirmedDelete(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id int64) error, onSuccess func()) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		jsonError(w, ErrConfirmRequired.Error(), http.StatusBadRequest)
		return
	}
	if err := del(r.Context(), id); err != nil {
		storeError(w, err)
		return
	}
	onSuccess()
}

// invalidatePublic drops a public cache key after a content mutation so
// visitors see the change before the next warm cycle.
func (h *Handler) invalidatePublic(ctx context.Context, key string) {
	h.deps.Cache.Delete(ctx, key)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// storeError maps store sentinels to HTTP status codes. Everything else is
// surfaced with the store's error message, mirroring the blocking alert
// the operator UI shows on mutation failure.
func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "record not found", http.StatusNotFound)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
