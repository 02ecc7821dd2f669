package site_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mobintix/site-service/internal/model"
	"mobintix/site-service/internal/region"
	"mobintix/site-service/internal/site"
	"mobintix/site-service/internal/store"
)

// ─── Fakes ───────────────────────────────────────────────────────────────────

type fakeProjects struct {
	rows []model.Project
	err  error
}

func (f *fakeProjects) FetchAll(ctx context.Context) ([]model.Project, error) {
	return f.rows, f.err
}

type fakeJobs struct {
	rows []model.Job
	err  error
}

func (f *fakeJobs) FetchAll(ctx context.Context) ([]model.Job, error) { return f.rows, f.err }

func (f *fakeJobs) Get(ctx context.Context, id int64) (model.Job, error) {
	for _, j := range f.rows {
		if j.ID == id {
			return j, nil
		}
	}
	return model.Job{}, store.ErrNotFound
}

type fakeBlog struct {
	rows []model.BlogPost
}

func (f *fakeBlog) Published(ctx context.Context) ([]model.BlogPost, error) { return f.rows, nil }

func (f *fakeBlog) BySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	for _, p := range f.rows {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.BlogPost{}, store.ErrNotFound
}

type fakeMessages struct {
	created []model.ContactMessageInput
}

func (f *fakeMessages) Create(ctx context.Context, in model.ContactMessageInput) (model.ContactMessage, error) {
	f.created = append(f.created, in)
	return model.ContactMessage{ID: int64(len(f.created)), Name: in.Name, Email: in.Email, Subject: in.Subject, Message: in.Message}, nil
}

type fakeApplications struct {
	created []model.JobApplicationInput
}

func (f *fakeApplications) Create(ctx context.Context, in model.JobApplicationInput) (model.JobApplication, error) {
	f.created = append(f.created, in)
	return model.JobApplication{ID: 1, JobID: in.JobID, JobTitle: in.JobTitle, Name: in.Name, Email: in.Email, ResumeLink: in.ResumeLink}, nil
}

type fakeTalentPool struct {
	joined map[string]bool
}

func (f *fakeTalentPool) Join(ctx context.Context, email string) (model.TalentPoolEntry, error) {
	if f.joined[email] {
		return model.TalentPoolEntry{}, store.ErrAlreadyJoined
	}
	if f.joined == nil {
		f.joined = map[string]bool{}
	}
	f.joined[email] = true
	return model.TalentPoolEntry{ID: 1, Email: email}, nil
}

// staticResolver pins the country for region-dependent routes.
type staticResolver struct{ code string }

func (s staticResolver) Country(ctx context.Context, ip string) string { return s.code }

func newTestServer(t *testing.T, deps site.Deps) *httptest.Server {
	t.Helper()
	if deps.Region == nil {
		deps.Region = region.NewService(staticResolver{code: "US"})
	}
	mux := http.NewServeMux()
	site.NewHandler(deps).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func postJSON(t *testing.T, url string, payload any, wantStatus int) map[string]any {
	t.Helper()
	raw, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

// ─── Projects ────────────────────────────────────────────────────────────────

func TestListProjects_ReturnsStoredRows(t *testing.T) {
	srv := newTestServer(t, site.Deps{
		Projects: &fakeProjects{rows: []model.Project{{ID: 1, Title: "Storefront", Tags: []string{}}}},
	})

	body := getJSON(t, srv.URL+"/api/projects", http.StatusOK)
	if _, hasFallback := body["fallback"]; hasFallback {
		t.Error("fallback flag present for a healthy read")
	}
	projects := body["projects"].([]any)
	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}
}

func TestListProjects_FallbackOnError(t *testing.T) {
	srv := newTestServer(t, site.Deps{
		Projects: &fakeProjects{err: errors.New("connection refused")},
	})

	body := getJSON(t, srv.URL+"/api/projects", http.StatusOK)
	if body["fallback"] != true {
		t.Error("expected fallback flag on storage failure")
	}
	if len(body["projects"].([]any)) == 0 {
		t.Error("fallback project list is empty")
	}
}

func TestListProjects_FallbackOnEmpty(t *testing.T) {
	srv := newTestServer(t, site.Deps{
		Projects: &fakeProjects{rows: []model.Project{}},
	})

	body := getJSON(t, srv.URL+"/api/projects", http.StatusOK)
	if body["fallback"] != true {
		t.Error("expected fallback flag when the table is empty")
	}
}

// ─── Jobs ────────────────────────────────────────────────────────────────────

func TestListJobs_EmptyListOnError(t *testing.T) {
	srv := newTestServer(t, site.Deps{
		Jobs: &fakeJobs{err: errors.New("connection refused")},
	})

	body := getJSON(t, srv.URL+"/api/jobs", http.StatusOK)
	jobs := body["jobs"].([]any)
	if len(jobs) != 0 {
		t.Errorf("got %d jobs on failure, want 0", len(jobs))
	}
}

// ─── Blog ────────────────────────────────────────────────────────────────────

func TestBlogBySlug_NotFound(t *testing.T) {
	srv := newTestServer(t, site.Deps{Blog: &fakeBlog{}})

	resp, err := http.Get(srv.URL + "/api/blog/no-such-post")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestBlogBySlug_Found(t *testing.T) {
	srv := newTestServer(t, site.Deps{
		Blog: &fakeBlog{rows: []model.BlogPost{{ID: 1, Slug: "go-at-mobintix", Title: "Go at Mobintix", Published: true}}},
	})

	body := getJSON(t, srv.URL+"/api/blog/go-at-mobintix", http.StatusOK)
	if body["title"] != "Go at Mobintix" {
		t.Errorf("title = %v, want Go at Mobintix", body["title"])
	}
}

// ─── Contact form ────────────────────────────────────────────────────────────

func TestSubmitContact_MissingField(t *testing.T) {
	msgs := &fakeMessages{}
	srv := newTestServer(t, site.Deps{Messages: msgs})

	postJSON(t, srv.URL+"/api/contact", map[string]string{
		"name": "Ada", "email": "ada@example.com", "subject": "Hi",
	}, http.StatusBadRequest)

	if len(msgs.created) != 0 {
		t.Error("store was called despite validation failure")
	}
}

func TestSubmitContact_Created(t *testing.T) {
	msgs := &fakeMessages{}
	srv := newTestServer(t, site.Deps{Messages: msgs})

	postJSON(t, srv.URL+"/api/contact", map[string]string{
		"name": "Ada", "email": "ada@example.com", "subject": "Hi", "message": "Hello",
	}, http.StatusCreated)

	if len(msgs.created) != 1 {
		t.Fatalf("store Create called %d times, want 1", len(msgs.created))
	}
}

// ─── Applications ────────────────────────────────────────────────────────────

func TestApplyToJob_SnapshotsTitle(t *testing.T) {
	apps := &fakeApplications{}
	srv := newTestServer(t, site.Deps{
		Jobs:         &fakeJobs{rows: []model.Job{{ID: 42, Title: "Go Engineer"}}},
		Applications: apps,
	})

	body := postJSON(t, srv.URL+"/api/jobs/42/apply", map[string]string{
		"name": "Ada", "email": "ada@example.com", "resume_link": "https://cv.example.com/ada",
	}, http.StatusCreated)

	if len(apps.created) != 1 {
		t.Fatalf("store Create called %d times, want 1", len(apps.created))
	}
	if apps.created[0].JobTitle != "Go Engineer" {
		t.Errorf("stored JobTitle = %q, want snapshot %q", apps.created[0].JobTitle, "Go Engineer")
	}
	if body["job_title"] != "Go Engineer" {
		t.Errorf("response job_title = %v, want Go Engineer", body["job_title"])
	}
}

func TestApplyToJob_UnknownJob(t *testing.T) {
	apps := &fakeApplications{}
	srv := newTestServer(t, site.Deps{
		Jobs:         &fakeJobs{},
		Applications: apps,
	})

	postJSON(t, srv.URL+"/api/jobs/99/apply", map[string]string{
		"name": "Ada", "email": "ada@example.com", "resume_link": "https://cv.example.com/ada",
	}, http.StatusNotFound)

	if len(apps.created) != 0 {
		t.Error("application stored for a nonexistent job")
	}
}

// ─── Talent pool ─────────────────────────────────────────────────────────────

func TestJoinTalentPool_FirstJoin(t *testing.T) {
	srv := newTestServer(t, site.Deps{TalentPool: &fakeTalentPool{}})

	body := postJSON(t, srv.URL+"/api/talent-pool", map[string]string{"email": "ada@example.com"}, http.StatusCreated)
	if body["status"] != "joined" {
		t.Errorf("status = %v, want joined", body["status"])
	}
}

func TestJoinTalentPool_DuplicateIsBenign(t *testing.T) {
	pool := &fakeTalentPool{joined: map[string]bool{"ada@example.com": true}}
	srv := newTestServer(t, site.Deps{TalentPool: pool})

	body := postJSON(t, srv.URL+"/api/talent-pool", map[string]string{"email": "ada@example.com"}, http.StatusOK)
	if body["status"] != "already_joined" {
		t.Errorf("status = %v, want already_joined", body["status"])
	}
}

func TestJoinTalentPool_RejectsBadEmail(t *testing.T) {
	srv := newTestServer(t, site.Deps{TalentPool: &fakeTalentPool{}})
	postJSON(t, srv.URL+"/api/talent-pool", map[string]string{"email": "not-an-email"}, http.StatusBadRequest)
}

// ─── Region ──────────────────────────────────────────────────────────────────

func TestResolveRegion(t *testing.T) {
	srv := newTestServer(t, site.Deps{Region: region.NewService(staticResolver{code: "IN"})})

	body := getJSON(t, srv.URL+"/api/region", http.StatusOK)
	if body["currency"] != "INR" || body["currencySymbol"] != "₹" {
		t.Errorf("region = %v, want INR/₹", body)
	}
}

func TestLocalizedPrice(t *testing.T) {
	srv := newTestServer(t, site.Deps{Region: region.NewService(staticResolver{code: "IN"})})

	body := getJSON(t, srv.URL+"/api/region/price?usd=17", http.StatusOK)
	if body["display"] != "₹1,440" {
		t.Errorf("display = %v, want ₹1,440", body["display"])
	}
}

// recordingResolver captures the IP the handler extracted.
type recordingResolver struct{ lastIP string }

func (r *recordingResolver) Country(ctx context.Context, ip string) string {
	r.lastIP = ip
	return "US"
}

func TestResolveRegion_UsesForwardedForFirstHop(t *testing.T) {
	rec := &recordingResolver{}
	srv := newTestServer(t, site.Deps{Region: region.NewService(rec)})

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/region", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if rec.lastIP != "203.0.113.7" {
		t.Errorf("resolved IP = %q, want first X-Forwarded-For hop 203.0.113.7", rec.lastIP)
	}
}

func TestLocalizedPrice_RejectsMissingParam(t *testing.T) {
	srv := newTestServer(t, site.Deps{})

	resp, err := http.Get(srv.URL + "/api/region/price")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
