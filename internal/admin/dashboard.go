package admin

import (
	"context"
	"net/http"
	"sync"

	"mobintix/site-service/internal/model"
)

// collectionResult carries one collection's rows or the error that stopped
// its load. A failed collection never hides the others.
type collectionResult[T any] struct {
	Rows  []T    `json:"rows"`
	Error string `json:"error,omitempty"`
}

// dashboardView is the join of all five back-office collections.
type dashboardView struct {
	Messages     collectionResult[model.ContactMessage]  `json:"messages"`
	Applications collectionResult[model.JobApplication]  `json:"applications"`
	TalentPool   collectionResult[model.TalentPoolEntry] `json:"talent_pool"`
	Projects     collectionResult[model.Project]         `json:"projects"`
	Jobs         collectionResult[model.Job]             `json:"jobs"`
}

// dashboard loads every collection concurrently and waits for all five
// before responding, so the view is as fresh as one round trip allows.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var view dashboardView

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		view.Messages = load(ctx, h.deps.Messages.FetchAll)
	}()
	go func() {
		defer wg.Done()
		view.Applications = load(ctx, h.deps.Applications.FetchAll)
	}()
	go func() {
		defer wg.Done()
		view.TalentPool = load(ctx, h.deps.TalentPool.FetchAll)
	}()
	go func() {
		defer wg.Done()
		view.Projects = load(ctx, h.deps.Projects.FetchAll)
	}()
	go func() {
		defer wg.Done()
		view.Jobs = load(ctx, h.deps.Jobs.FetchAll)
	}()
	wg.Wait()

	jsonOK(w, view)
}

func load[T any](ctx context.Context, fetch func(ctx context.Context) ([]T, error)) collectionResult[T] {
	rows, err := fetch(ctx)
	if err != nil {
		return collectionResult[T]{Rows: []T{}, Error: err.Error()}
	}
	return collectionResult[T]{Rows: rows}
}
