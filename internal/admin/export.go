package admin

import (
	"log"
	"net/http"

	"github.com/xuri/excelize/v2"

	"mobintix/site-service/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) exportMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.deps.Messages.FetchAll(r.Context())
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	f, err := export.MessagesWorkbook(messages)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeWorkbook(w, f, "messages.xlsx")
}

func (h *Handler) exportJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.deps.Jobs.FetchAll(r.Context())
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	f, err := export.JobsWorkbook(jobs)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeWorkbook(w, f, "jobs.xlsx")
}

func writeWorkbook(w http.ResponseWriter, f *excelize.File, filename string) {
	defer f.Close()
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		log.Printf("[admin] export %s write failed: %v", filename, err)
	}
}
