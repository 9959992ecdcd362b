package http

import (
	"net/http"

	"budgetto/internal/core"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.store.ListCategories()
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var cat core.Category
	if err := decodeBody(r, &cat); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	created, err := s.store.AddCategory(cat)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var cat core.Category
	if err := decodeBody(r, &cat); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	cat.ID = r.PathValue("id")
	updated, err := s.store.UpdateCategory(cat)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Deleting a category leaves its transactions in place; reports drop
// rows whose category no longer resolves.
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	removed, err := s.store.DeleteCategory(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
