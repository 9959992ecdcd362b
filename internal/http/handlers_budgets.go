package http

import (
	"net/http"

	"budgetto/internal/core"
)

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.store.ListBudgets()
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budgets)
}

type upsertBudgetRequest struct {
	CategoryID string     `json:"categoryId"`
	Period     string     `json:"period"`
	Amount     core.Money `json:"amount"`
}

// handleUpsertBudget sets the budget for a category and month; a second
// call with the same pair replaces the amount instead of adding a row.
func (s *Server) handleUpsertBudget(w http.ResponseWriter, r *http.Request) {
	var req upsertBudgetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	budget, err := s.store.UpsertBudget(req.CategoryID, core.Period(req.Period), req.Amount)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	removed, err := s.store.DeleteBudget(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "budget not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
