package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/reddit-archive-service/internal/errors"
)

func (h *Handlers) GetLatestRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.Service.LatestRun(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, runFromDomain(*run))
}
