package admin

import "net/http"

// maxUploadSize caps image uploads at 10 MiB.
const maxUploadSize = 10 << 20

// upload accepts a multipart form with an "image" part and returns the
// stored object's public URL. When no uploader is configured the route
// answers 503 so the console can disable the picker.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if h.deps.Uploader == nil {
		jsonError(w, "image uploads are not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(w, "image exceeds the 10 MiB upload limit", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, `multipart field "image" is required`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.deps.Uploader.Upload(r.Context(), file, header.Filename, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]string{"url": url})
}
