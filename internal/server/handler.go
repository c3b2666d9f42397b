package server

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"phasor/internal/phasor"
	"phasor/pkg/core/logging"
)

//go:embed web/index.html
var indexPage []byte

// Handler serves the page and the JSON API
type Handler struct {
	defaults phasor.Options
	logger   *logging.Logger
}

// NewHandler creates a new API handler
func NewHandler(defaults phasor.Options, logger *logging.Logger) *Handler {
	return &Handler{
		defaults: defaults,
		logger:   logger,
	}
}

// ConvertRequest is the API payload for one conversion. Precision,
// wrap_angle and show_plot are optional; absent fields fall back to the
// server defaults. The two value fields are raw text on purpose: the
// engine owns the parsing policy.
type ConvertRequest struct {
	Mode      string `json:"mode"`
	First     string `json:"first"`
	Second    string `json:"second"`
	Unit      string `json:"unit,omitempty"`
	Precision *int   `json:"precision,omitempty"`
	WrapAngle *bool  `json:"wrap_angle,omitempty"`
	ShowPlot  *bool  `json:"show_plot,omitempty"`
}

// ConvertResponse carries the conversion result plus the rendered SVG
// diagram when a plot was requested.
type ConvertResponse struct {
	Result phasor.Result `json:"result"`
	SVG    string        `json:"svg,omitempty"`
}

// toEngine translates the API payload into an engine request, applying
// the server defaults for absent options. Mode and unit come from form
// controls, so unlike the numeric fields they fail hard when malformed.
func (r ConvertRequest) toEngine(defaults phasor.Options) (phasor.Request, phasor.Options, error) {
	mode, err := phasor.ParseMode(r.Mode)
	if err != nil {
		return phasor.Request{}, phasor.Options{}, err
	}

	opts := defaults
	if r.Unit != "" {
		unit, err := phasor.ParseAngleUnit(r.Unit)
		if err != nil {
			return phasor.Request{}, phasor.Options{}, err
		}
		opts.Unit = unit
	}
	if r.Precision != nil {
		opts.Precision = *r.Precision
	}
	if r.WrapAngle != nil {
		opts.WrapAngle = *r.WrapAngle
	}
	if r.ShowPlot != nil {
		opts.ShowPlot = *r.ShowPlot
	}

	return phasor.Request{Mode: mode, First: r.First, Second: r.Second}, opts, nil
}

// convert runs one conversion for an API payload. Shared by the HTTP
// and websocket surfaces.
func convert(req ConvertRequest, defaults phasor.Options) (ConvertResponse, error) {
	engineReq, opts, err := req.toEngine(defaults)
	if err != nil {
		return ConvertResponse{}, err
	}

	result := phasor.Convert(engineReq, opts)
	resp := ConvertResponse{Result: result}
	if result.Plot != nil {
		resp.SVG = RenderSVG(*result.Plot)
	}
	return resp, nil
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	resp, err := convert(req, h.defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Debug("conversion served",
		"mode", resp.Result.Mode.String(),
		"warnings", len(resp.Result.Warnings),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.defaults)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
