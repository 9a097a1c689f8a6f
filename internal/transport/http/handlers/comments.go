package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/reddit-archive-service/internal/errors"
	"github.com/pribylovaa/reddit-archive-service/internal/models"
)

func (h *Handlers) ListPostComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	if postID == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var opts models.ListOptions
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		opts.Limit = int32(n)
	}

	opts.PageToken = r.URL.Query().Get("page_token")

	page, err := h.Service.CommentsByPost(r.Context(), postID, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := CommentListResponse{
		Items:         make([]Comment, 0, len(page.Items)),
		NextPageToken: page.NextPageToken,
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, commentFromDomain(item))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) GetCommentByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	comm, err := h.Service.CommentByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentFromDomain(*comm))
}
