// Package site implements the public HTTP surface of the marketing site:
// project/job/blog reads, the contact form, job applications, the talent
// pool opt-in, and region/currency resolution.
//
// Routes:
//
//	GET  /api/projects          → project list (fallback list on failure/empty)
//	GET  /api/jobs              → open roles
//	GET  /api/blog              → published posts
//	GET  /api/blog/{slug}       → one published post
//	POST /api/contact           → contact form submission
//	POST /api/jobs/{id}/apply   → job application
//	POST /api/talent-pool       → talent pool opt-in
//	GET  /api/region            → visitor region/currency
//	GET  /api/region/price      → localized price for ?usd=N
package site

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"mobintix/site-service/internal/cache"
	"mobintix/site-service/internal/model"
	"mobintix/site-service/internal/region"
	"mobintix/site-service/internal/store"
)

// Cache keys for the public content lists, shared with the warmer.
const (
	CacheKeyProjects = "public:projects"
	CacheKeyJobs     = "public:jobs"
)

// ProjectReader lists projects for the public Projects page.
type ProjectReader interface {
	FetchAll(ctx context.Context) ([]model.Project, error)
}

// JobReader lists and fetches job postings.
type JobReader interface {
	FetchAll(ctx context.Context) ([]model.Job, error)
	Get(ctx context.Context, id int64) (model.Job, error)
}

// BlogReader reads the published side of the blog.
type BlogReader interface {
	Published(ctx context.Context) ([]model.BlogPost, error)
	BySlug(ctx context.Context, slug string) (model.BlogPost, error)
}

// MessageCreator stores contact form submissions.
type MessageCreator interface {
	Create(ctx context.Context, in model.ContactMessageInput) (model.ContactMessage, error)
}

// ApplicationCreator stores job applications.
type ApplicationCreator interface {
	Create(ctx context.Context, in model.JobApplicationInput) (model.JobApplication, error)
}

// TalentPool inserts talent-pool opt-ins.
type TalentPool interface {
	Join(ctx context.Context, email string) (model.TalentPoolEntry, error)
}

// Deps bundles the Handler's collaborators. Region is required; Cache and
// Events are optional and nil-safe.
type Deps struct {
	Projects     ProjectReader
	Jobs         JobReader
	Blog         BlogReader
	Messages     MessageCreator
	Applications ApplicationCreator
	TalentPool   TalentPool
	Region       *region.Service
	Cache        *cache.Cache
	Events       *redis.Client
}

// Handler holds the public route implementations.
type Handler struct {
	deps Deps
}

// NewHandler returns a configured Handler. A missing region service is a
// wiring bug and fails fast.
func NewHandler(deps Deps) *Handler {
	if deps.Region == nil {
		panic("site: nil region service")
	}
	return &Handler{deps: deps}
}

// RegisterRoutes mounts all public routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects", h.listProjects)
	mux.HandleFunc("GET /api/jobs", h.listJobs)
	mux.HandleFunc("GET /api/blog", h.listBlog)
	mux.HandleFunc("GET /api/blog/{slug}", h.blogBySlug)
	mux.HandleFunc("POST /api/contact", h.submitContact)
	mux.HandleFunc("POST /api/jobs/{id}/apply", h.applyToJob)
	mux.HandleFunc("POST /api/talent-pool", h.joinTalentPool)
	mux.HandleFunc("GET /api/region", h.resolveRegion)
	mux.HandleFunc("GET /api/region/price", h.localizedPrice)
}

// ─── Content reads ───────────────────────────────────────────────────────────

// listProjects serves the project list. A failed or empty read falls back
// to the hardcoded showcase list so the page is never blank.
func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var projects []model.Project
	if !h.deps.Cache.Get(ctx, CacheKeyProjects, &projects) {
		var err error
		projects, err = h.deps.Projects.FetchAll(ctx)
		if err != nil {
			log.Printf("[site] projects fetch failed, serving fallback: %v", err)
			jsonOK(w, map[string]any{"projects": FallbackProjects(), "fallback": true})
			return
		}
		if len(projects) > 0 {
			h.deps.Cache.Set(ctx, CacheKeyProjects, projects)
		}
	}

	if len(projects) == 0 {
		jsonOK(w, map[string]any{"projects": FallbackProjects(), "fallback": true})
		return
	}
	jsonOK(w, map[string]any{"projects": projects})
}

// listJobs serves the open roles. A failed read renders an empty list; the
// failure is logged, not surfaced.
func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var jobs []model.Job
	if !h.deps.Cache.Get(ctx, CacheKeyJobs, &jobs) {
		var err error
		jobs, err = h.deps.Jobs.FetchAll(ctx)
		if err != nil {
			log.Printf("[site] jobs fetch failed: %v", err)
			jobs = []model.Job{}
		} else if len(jobs) > 0 {
			h.deps.Cache.Set(ctx, CacheKeyJobs, jobs)
		}
	}

	jsonOK(w, map[string]any{"jobs": jobs})
}

func (h *Handler) listBlog(w http.ResponseWriter, r *http.Request) {
	posts, err := h.deps.Blog.Published(r.Context())
	if err != nil {
		log.Printf("[site] blog fetch failed: %v", err)
		posts = []model.BlogPost{}
	}
	jsonOK(w, map[string]any{"posts": posts})
}

func (h *Handler) blogBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.deps.Blog.BySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "post not found", http.StatusNotFound)
			return
		}
		log.Printf("[site] blog slug fetch failed: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}
	jsonOK(w, post)
}

// ─── Visitor submissions ─────────────────────────────────────────────────────

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var in model.ContactMessageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := requireFields(map[string]string{
		"name": in.Name, "email": in.Email, "subject": in.Subject, "message": in.Message,
	}); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.deps.Messages.Create(r.Context(), in)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.publishMessageReceived(r.Context(), msg)

	jsonCreated(w, msg)
}

func (h *Handler) applyToJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, "invalid job id", http.StatusBadRequest)
		return
	}

	var in model.JobApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := requireFields(map[string]string{
		"name": in.Name, "email": in.Email, "resume_link": in.ResumeLink,
	}); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	job, err := h.deps.Jobs.Get(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "job not found", http.StatusNotFound)
			return
		}
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}

	// Snapshot the title at application time; later edits to the job must
	// not rewrite history.
	in.JobID = job.ID
	in.JobTitle = job.Title

	app, err := h.deps.Applications.Create(r.Context(), in)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonCreated(w, app)
}

func (h *Handler) joinTalentPool(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		jsonError(w, "a valid email is required", http.StatusBadRequest)
		return
	}

	entry, err := h.deps.TalentPool.Join(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyJoined) {
			// Benign: the visitor is already signed up. Info, not failure.
			jsonOK(w, map[string]string{"status": "already_joined"})
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonCreated(w, map[string]any{"status": "joined", "entry": entry})
}

// ─── Region & pricing ────────────────────────────────────────────────────────

func (h *Handler) resolveRegion(w http.ResponseWriter, r *http.Request) {
	reg := h.deps.Region.Resolve(r.Context(), clientIP(r))
	jsonOK(w, map[string]any{
		"countryCode":    reg.CountryCode,
		"currency":       reg.Currency,
		"currencySymbol": reg.Symbol(),
		"language":       reg.Language,
	})
}

func (h *Handler) localizedPrice(w http.ResponseWriter, r *http.Request) {
	usd, err := strconv.ParseFloat(r.URL.Query().Get("usd"), 64)
	if err != nil || usd < 0 {
		jsonError(w, "usd must be a non-negative number", http.StatusBadRequest)
		return
	}
	reg := h.deps.Region.Resolve(r.Context(), clientIP(r))
	jsonOK(w, map[string]any{
		"currency": reg.Currency,
		"display":  reg.Convert(usd),
	})
}

// publishMessageReceived emits a Redis event so an operator console can
// live-update. Non-fatal.
func (h *Handler) publishMessageReceived(ctx context.Context, msg model.ContactMessage) {
	if h.deps.Events == nil {
		return
	}
	event, _ := json.Marshal(map[string]any{
		"type":      "EVENT_MESSAGE_RECEIVED",
		"messageId": msg.ID,
		"email":     msg.Email,
	})
	if err := h.deps.Events.Publish(ctx, "EVENT_MESSAGE_RECEIVED", event).Err(); err != nil {
		slog.Warn("publish EVENT_MESSAGE_RECEIVED failed", "err", err)
	}
}

// clientIP extracts the visitor IP: first hop of X-Forwarded-For when the
// service sits behind a proxy, else the socket peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
