package plotly

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"Atelier/internal/calc/pressure"
	"Atelier/internal/catalog"
	"Atelier/internal/fault"
	"Atelier/internal/httpx"
	"Atelier/internal/report"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gonum.org/v1/gonum/floats"
)

type Handler struct {
	Service *Service
}

type failure struct {
	Code      int    `json:"code"`
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}

type success struct {
	Code int `json:"code"`
	Result
}

// Visualize always answers 200; the outcome is carried in the body's code.
func (h *Handler) Visualize(w http.ResponseWriter, r *http.Request) {
	res, err := h.visualize(r)
	if err != nil {
		log.Printf("[plotly] visualization failed: %v", err)
		httpx.WriteJSON(w, http.StatusOK, failure{
			Code:      http.StatusInternalServerError,
			Error:     err.Error(),
			RequestID: strconv.FormatInt(time.Now().UnixMilli(), 10),
			Status:    "failed",
		})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, success{Code: http.StatusOK, Result: res})
}

func (h *Handler) visualize(r *http.Request) (Result, error) {
	p, err := h.params(r)
	if err != nil {
		return Result{}, err
	}
	return h.Service.Visualize(r.Context(), p)
}

func (h *Handler) params(r *http.Request) (Params, error) {
	body, err := httpx.ReadObject(r)
	if err != nil {
		return Params{}, err
	}
	return ParseRequest(body, h.Service.Defaults)
}

func (h *Handler) Runs(w http.ResponseWriter, r *http.Request) {
	if h.Service.Runs == nil {
		httpx.WriteError(w, http.StatusNotImplemented, string(fault.KindCapability), "run history is not configured")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			httpx.WriteError(w, http.StatusBadRequest, string(fault.KindValidation), "limit must be a positive integer")
			return
		}
		limit = min(n, 100)
	}
	runs, err := h.Service.Runs.RecentRuns(r.Context(), limit)
	if err != nil {
		log.Printf("[plotly] list runs: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, string(fault.KindInternal), "could not list runs")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"count": len(runs), "runs": runs})
}

func (h *Handler) summary(p Params, c Computed) report.Summary {
	return report.Summary{
		RequestID: uuid.NewString(),
		Mode:      string(c.Chart.Mode),
		Input:     p.Input,
		Grid:      p.GridResolution,
		Derived:   c.Derived,
		Stats:     report.FieldStats(c.Chart.Series[0].Values),
		CreatedAt: h.Service.now(),
	}
}

// Report answers with a PDF summary of the request.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	p, err := h.params(r)
	if err != nil {
		httpx.WriteFault(w, err)
		return
	}
	c := Compute(p)
	var buf bytes.Buffer
	if err := report.WritePDF(&buf, h.summary(p, c)); err != nil {
		log.Printf("[plotly] report: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, string(fault.KindInternal), "Report generation error")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pressure-report.pdf\"")
	w.Write(buf.Bytes())
}

// Export answers with the sampled field as an XLSX workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	p, err := h.params(r)
	if err != nil {
		httpx.WriteFault(w, err)
		return
	}
	c := Compute(p)
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, c.Field, c.Chart.Series[0].Values, h.summary(p, c)); err != nil {
		log.Printf("[plotly] export: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, string(fault.KindInternal), "Export error")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pressure-field.xlsx\"")
	w.Write(buf.Bytes())
}

type importResult struct {
	Line    int               `json:"line"`
	Input   pressure.Input    `json:"input"`
	Derived *pressure.Derived `json:"derived,omitempty"`
	Peak    float64           `json:"peak_pressure_pa,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// Import evaluates every row of an uploaded workbook.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, string(fault.KindValidation), "File required")
		return
	}
	defer file.Close()

	rows, err := report.ReadInputs(file)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, string(fault.KindValidation), fmt.Sprintf("Invalid file: %v", err))
		return
	}

	grid := h.Service.Defaults.GridResolution
	results := make([]importResult, 0, len(rows))
	valid := 0
	for _, row := range rows {
		res := importResult{Line: row.Line, Input: row.Input}
		if row.Err != nil {
			res.Error = row.Err.Error()
			results = append(results, res)
			continue
		}
		field, derived := pressure.Compute(row.Input, grid)
		res.Derived = &derived
		if values := field.Values(); len(values) > 0 {
			res.Peak = math.Max(0, floats.Max(values))
		}
		results = append(results, res)
		valid++
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"count": valid, "rows": len(rows), "results": results})
}

// Register mounts the routes on router and describes them in the catalog.
func (h *Handler) Register(router *mux.Router, reg *catalog.Registry) {
	router.HandleFunc("/plotly/visualize", h.Visualize).Methods("POST")
	router.HandleFunc("/plotly/report", h.Report).Methods("POST")
	router.HandleFunc("/plotly/export", h.Export).Methods("POST")
	router.HandleFunc("/plotly/import", h.Import).Methods("POST")
	router.HandleFunc("/plotly/runs", h.Runs).Methods("GET")
	if reg != nil {
		reg.Register(Tools()...)
	}
}
