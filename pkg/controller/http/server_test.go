package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/tandem-lab/tandem/pkg/controller/http"
	"github.com/tandem-lab/tandem/pkg/domain/types"
	"github.com/tandem-lab/tandem/pkg/service/dateparse"
	"github.com/tandem-lab/tandem/pkg/usecase"
)

type reportResponse struct {
	BatchID      string `json:"batch_id"`
	Assignments  int    `json:"assignments"`
	View         string `json:"view"`
	MaxTotalDays int    `json:"max_total_days"`
	TopPairs     []struct {
		EmployeeLow  int `json:"employee_low"`
		EmployeeHigh int `json:"employee_high"`
	} `json:"top_pairs"`
	Overlaps []struct {
		EmployeeLow  int `json:"employee_low"`
		EmployeeHigh int `json:"employee_high"`
		ProjectID    int `json:"project_id"`
		Days         int `json:"days"`
	} `json:"overlaps"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	analyzer := usecase.NewAnalyzer(dateparse.New())
	server := controller.NewServer(context.Background(), "localhost:0", analyzer, ',', types.ViewTop)
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postReport(t *testing.T, ts *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "text/plain", strings.NewReader(body))
	gt.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

const referenceBody = `1, 1, 2024-01-01, 2024-01-10
2, 1, 2024-01-05, 2024-01-15
1, 2, 2024-02-01, 2024-02-05
3, 2, 2024-02-03, 2024-02-10
`

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	gt.NoError(t, err)
	defer resp.Body.Close()

	gt.Equal(t, resp.StatusCode, http.StatusOK)

	var body map[string]string
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	gt.Equal(t, body["status"], "ok")
}

func TestCreateReport(t *testing.T) {
	ts := newTestServer(t)

	t.Run("top view by default", func(t *testing.T) {
		resp := postReport(t, ts, "/api/reports", referenceBody)
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var report reportResponse
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&report))

		gt.NotEqual(t, report.BatchID, "")
		gt.Equal(t, report.Assignments, 4)
		gt.Equal(t, report.View, "top")
		gt.Equal(t, report.MaxTotalDays, 6)

		gt.Equal(t, len(report.TopPairs), 1)
		gt.Equal(t, report.TopPairs[0].EmployeeLow, 1)
		gt.Equal(t, report.TopPairs[0].EmployeeHigh, 2)

		gt.Equal(t, len(report.Overlaps), 1)
		gt.Equal(t, report.Overlaps[0].ProjectID, 1)
		gt.Equal(t, report.Overlaps[0].Days, 6)
	})

	t.Run("all view returns every pair", func(t *testing.T) {
		resp := postReport(t, ts, "/api/reports?view=all", referenceBody)
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var report reportResponse
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&report))

		gt.Equal(t, report.View, "all")
		gt.Equal(t, len(report.Overlaps), 2)
	})

	t.Run("custom delimiter", func(t *testing.T) {
		body := "1; 1; 2024-01-01; 2024-01-10\n2; 1; 2024-01-05; 2024-01-15\n"
		resp := postReport(t, ts, "/api/reports?delimiter=;", body)
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var report reportResponse
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		gt.Equal(t, report.MaxTotalDays, 6)
	})

	t.Run("invalid view parameter", func(t *testing.T) {
		resp := postReport(t, ts, "/api/reports?view=bogus", referenceBody)
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)
	})

	t.Run("multi-character delimiter parameter", func(t *testing.T) {
		resp := postReport(t, ts, "/api/reports?delimiter=ab", referenceBody)
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)
	})

	t.Run("invalid row rejects the whole batch", func(t *testing.T) {
		body := referenceBody + "oops, 1, 2024-01-01, 2024-01-10\n"
		resp := postReport(t, ts, "/api/reports", body)
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)

		var failure errorResponse
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&failure))
		gt.S(t, failure.Error).Contains("employee ID is not numeric")
	})

	t.Run("empty body yields an empty report", func(t *testing.T) {
		resp := postReport(t, ts, "/api/reports", "")
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var report reportResponse
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		gt.Equal(t, report.Assignments, 0)
		gt.Equal(t, len(report.Overlaps), 0)
	})
}
