package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
	"github.com/KaramelBytes/costview-cli/internal/stats"
)

const maxUploadBytes = 32 << 20

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	resp := map[string]any{"id": sess.ID}
	// Session creation succeeds even when the default source is missing;
	// the data endpoints report that error per request.
	if base, err := s.cache.Get(); err == nil {
		cleaned := dataset.Clean(base)
		resp["countries"] = cleaned.Countries()
		resp["views"] = stats.Capabilities(cleaned)
	}
	s.writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSetCountries(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var body struct {
		Countries []string `json:"countries"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid body: " + err.Error()})
		return
	}
	s.sessions.SetCountries(sess.ID, body.Countries)
	s.writeJSON(w, http.StatusOK, map[string]any{"id": sess.ID, "countries": body.Countries})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "missing file field: " + err.Error()})
		return
	}
	defer file.Close()

	var ds *dataset.Dataset
	if strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		ds, err = dataset.ReadXLSX(file)
	} else {
		ds, err = dataset.ReadCSV(file, ',')
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.sessions.SetOverride(sess.ID, ds)
	cleaned := dataset.Clean(ds)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"id":        sess.ID,
		"rows":      cleaned.NumRows(),
		"countries": cleaned.Countries(),
		"views":     stats.Capabilities(cleaned),
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	ds, err := s.filtered(sess.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	means := make(map[string]any)
	for _, col := range ds.PresentIndicators() {
		if m, ok := stats.MeanOf(ds, col); ok {
			means[col] = m
		} else {
			means[col] = nil
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"empty":     ds.NumRows() == 0,
		"rows":      ds.NumRows(),
		"countries": len(ds.Countries()),
		"means":     means,
		"views":     stats.Capabilities(ds),
	})
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	ds, err := s.filtered(sess.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	by := r.URL.Query().Get("by")
	if by == "" {
		by = dataset.ColCostOfLiving
	}
	n := s.cfg.TopN
	if q := r.URL.Query().Get("n"); q != "" {
		if parsed, err := strconv.Atoi(q); err == nil && parsed > 0 {
			n = parsed
		}
	}
	rows, err := stats.TopNByMean(ds, dataset.ColCountry, by, n, true)
	if err != nil {
		s.writeError(w, err)
		return
	}
	payload := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		payload = append(payload, map[string]any{"country": row.Key, "mean": row.Mean, "rows": row.N})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"empty": len(rows) == 0, "by": by, "top": payload})
}

func (s *Server) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	ds, err := s.filtered(sess.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	cols := ds.PresentIndicators()
	if q := r.URL.Query().Get("columns"); q != "" {
		cols = strings.Split(q, ",")
	}
	m := stats.CorrelationMatrix(ds, cols)
	// JSON has no NaN; undefined coefficients serialize as null.
	values := make([][]any, len(m.Values))
	for i, row := range m.Values {
		values[i] = make([]any, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				values[i][j] = nil
			} else {
				values[i][j] = v
			}
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"empty":   ds.NumRows() == 0,
		"columns": m.Columns,
		"values":  values,
	})
}

func (s *Server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	ds, err := s.filtered(sess.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	column := r.URL.Query().Get("column")
	if column == "" {
		column = dataset.ColGroceries
	}
	buckets := s.cfg.HistogramBuckets
	if q := r.URL.Query().Get("buckets"); q != "" {
		if parsed, err := strconv.Atoi(q); err == nil && parsed > 0 {
			buckets = parsed
		}
	}
	out, err := stats.HistogramBuckets(ds, column, buckets)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"empty": len(out) == 0, "column": column, "buckets": out})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	ds, err := s.filtered(sess.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="costview_export.csv"`)
	if err := dataset.WriteCSV(ds, w); err != nil {
		s.log.Error().Err(err).Msg("export write failed")
	}
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := r.PathValue("id")
	sess, ok := s.sessions.Get(id)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]any{"error": fmt.Sprintf("unknown session %q", id)})
		return nil, false
	}
	return sess, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

// writeError maps pipeline errors onto the API surface: a missing source
// is 503, a malformed one 422, a missing column 400 (the view degrades,
// nothing else does).
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dataset.ErrDataUnavailable):
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": err.Error()})
	case errors.Is(err, dataset.ErrDataMalformed):
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": err.Error()})
	case dataset.IsColumnMissing(err):
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error(), "disabled": true})
	default:
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
}
