package http

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"budgetto/internal/transfer"
)

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	txs, err := s.store.ListTransactions()
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	cats, err := s.store.ListCategories()
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	if err := transfer.Export(w, txs, cats); err != nil {
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
	}
}

// handleImportCSV accepts either a multipart upload with a "file" field
// or the CSV as the raw request body.
func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	var src io.Reader = r.Body

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file field: "+err.Error())
			return
		}
		defer file.Close()
		src = file
	}

	summary, err := transfer.Import(src, s.store)
	if err != nil {
		slog.ErrorContext(r.Context(), "CSV import failed", "error", err)
		writeError(w, http.StatusBadRequest, "import failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
