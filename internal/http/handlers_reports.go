package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"budgetto/internal/core"
	"budgetto/internal/report"
)

type summaryResponse struct {
	Period             core.Period             `json:"period"`
	TotalIncome        core.Money              `json:"totalIncome"`
	TotalExpenses      core.Money              `json:"totalExpenses"`
	Budget             core.BudgetSummary      `json:"budget"`
	SpendingByCategory []core.CategorySpending `json:"spendingByCategory"`
}

func (s *Server) handleReportSummary(w http.ResponseWriter, r *http.Request) {
	period := core.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = core.PeriodOf(time.Now())
	}
	if err := period.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	key := fmt.Sprintf("%s|%d", period, s.store.Generation())
	if resp, found := s.summaryCache.Get(key); found {
		slog.DebugContext(r.Context(), "Summary cache hit", "period", period)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	resp := summaryResponse{
		Period:             period,
		TotalIncome:        report.TotalIncome(snap, period),
		TotalExpenses:      report.TotalExpenses(snap, period),
		Budget:             report.OverallBudgetSummary(snap, period),
		SpendingByCategory: report.SpendingByCategory(snap, period),
	}
	s.summaryCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReportTrend(w http.ResponseWriter, r *http.Request) {
	months := 6
	if v := r.URL.Query().Get("months"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "months must be a number")
			return
		}
		months = n
	}
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	key := fmt.Sprintf("trend:%d|%d", months, s.store.Generation())
	if points, found := s.trendCache.Get(key); found {
		slog.DebugContext(r.Context(), "Trend cache hit", "months", months)
		writeJSON(w, http.StatusOK, points)
		return
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	points := report.MonthlySpendingTrend(snap, months, time.Now())
	s.trendCache.Set(key, points)
	writeJSON(w, http.StatusOK, points)
}
