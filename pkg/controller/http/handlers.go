package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/tandem-lab/tandem/pkg/domain/model"
	"github.com/tandem-lab/tandem/pkg/domain/types"
	"github.com/tandem-lab/tandem/pkg/service/tokenizer"
	"github.com/tandem-lab/tandem/pkg/usecase"
	"github.com/tandem-lab/tandem/pkg/utils/apperr"
)

// maxRequestBody bounds the accepted input size. Batches are
// human-curated datasets, not bulk uploads.
const maxRequestBody = 10 << 20

type reportHandler struct {
	analyzer  *usecase.Analyzer
	delimiter rune
	view      types.ResultView
}

type pairResponse struct {
	EmployeeLow  int `json:"employee_low"`
	EmployeeHigh int `json:"employee_high"`
}

type overlapResponse struct {
	EmployeeLow  int `json:"employee_low"`
	EmployeeHigh int `json:"employee_high"`
	ProjectID    int `json:"project_id"`
	Days         int `json:"days"`
}

type reportResponse struct {
	BatchID      string            `json:"batch_id"`
	Assignments  int               `json:"assignments"`
	View         string            `json:"view"`
	MaxTotalDays int               `json:"max_total_days"`
	TopPairs     []pairResponse    `json:"top_pairs"`
	Overlaps     []overlapResponse `json:"overlaps"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleCreateReport accepts a delimited text body, runs the analysis
// pipeline and returns the report as JSON. Validation failure of any
// row rejects the whole batch with 400; no partial result is returned.
func (h *reportHandler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, http.StatusBadRequest, "failed to read request body")
		return
	}

	delimiter := h.delimiter
	if q := r.URL.Query().Get("delimiter"); q != "" {
		runes := []rune(q)
		if len(runes) != 1 {
			writeError(ctx, w, http.StatusBadRequest, "delimiter must be a single character")
			return
		}
		delimiter = runes[0]
	}

	view := h.view
	if q := r.URL.Query().Get("view"); q != "" {
		view = types.ResultView(q)
		if !view.IsValid() {
			writeError(ctx, w, http.StatusBadRequest, "view must be 'top' or 'all'")
			return
		}
	}

	rows := tokenizer.New(delimiter).Tokenize(string(body))

	report, err := h.analyzer.Analyze(ctx, rows)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(ctx, w, http.StatusOK, toReportResponse(report, view))
}

func toReportResponse(report *model.Report, view types.ResultView) reportResponse {
	resp := reportResponse{
		BatchID:      report.BatchID.String(),
		Assignments:  report.Assignments,
		View:         string(view),
		MaxTotalDays: report.MaxTotalDays,
		TopPairs:     make([]pairResponse, 0, len(report.TopPairs)),
		Overlaps:     make([]overlapResponse, 0),
	}

	for _, pair := range report.TopPairs {
		resp.TopPairs = append(resp.TopPairs, pairResponse{
			EmployeeLow:  pair.Low.Int(),
			EmployeeHigh: pair.High.Int(),
		})
	}

	for _, o := range report.View(view) {
		resp.Overlaps = append(resp.Overlaps, overlapResponse{
			EmployeeLow:  o.Pair.Low.Int(),
			EmployeeHigh: o.Pair.High.Int(),
			ProjectID:    o.ProjectID.Int(),
			Days:         o.Days,
		})
	}

	return resp
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("failed to encode response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, errorResponse{Error: message})
}
