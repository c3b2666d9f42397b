package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"phasor/internal/phasor"
	"phasor/pkg/core/logging"
)

func testHandler() *Handler {
	defaults := phasor.Options{Precision: 3, Unit: phasor.Degrees, WrapAngle: true, ShowPlot: true}
	return NewHandler(defaults, logging.New("test"))
}

func postConvert(t *testing.T, h *Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	h.handleConvert(rec, req)
	return rec
}

func TestHandleConvertPolarToRectangular(t *testing.T) {
	rec := postConvert(t, testHandler(),
		`{"mode":"polar-to-rectangular","first":"5.0","second":"30.0","precision":3}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if resp.Result.RectText != "4.330 + j2.500" {
		t.Errorf("RectText = %q", resp.Result.RectText)
	}
	if !strings.Contains(resp.Result.ArrowText, "30.000°") {
		t.Errorf("ArrowText = %q", resp.Result.ArrowText)
	}
	// Plot defaults to on, so an SVG comes back.
	if !strings.HasPrefix(resp.SVG, "<svg") {
		t.Errorf("SVG missing or malformed: %.40q", resp.SVG)
	}
}

func TestHandleConvertDefaultsApplied(t *testing.T) {
	// No options in the payload: server defaults fill them in.
	rec := postConvert(t, testHandler(),
		`{"mode":"rectangular-to-polar","first":"3","second":"4"}`)

	var resp ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !strings.Contains(resp.Result.ArrowText, "5.000") {
		t.Errorf("ArrowText = %q, want default precision 3", resp.Result.ArrowText)
	}
	if resp.Result.Unit != phasor.Degrees {
		t.Errorf("Unit = %v, want default degrees", resp.Result.Unit)
	}
}

func TestHandleConvertUnparseableFieldStillSucceeds(t *testing.T) {
	rec := postConvert(t, testHandler(),
		`{"mode":"polar-to-rectangular","first":"abc","second":"30"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (bad numeric input is tolerated)", rec.Code)
	}

	var resp ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Result.Warnings) == 0 {
		t.Error("expected a warning for the unparseable field")
	}
	if resp.Result.Rect.Real != 0 || resp.Result.Rect.Imag != 0 {
		t.Errorf("Rect = %+v, want zero vector", resp.Result.Rect)
	}
}

func TestHandleConvertBadMode(t *testing.T) {
	rec := postConvert(t, testHandler(),
		`{"mode":"sideways","first":"1","second":"2"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an unknown mode", rec.Code)
	}
}

func TestHandleConvertRejectsGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert", nil)
	rec := httptest.NewRecorder()
	testHandler().handleConvert(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/defaults", nil)
	rec := httptest.NewRecorder()
	testHandler().handleDefaults(rec, req)

	var opts phasor.Options
	if err := json.Unmarshal(rec.Body.Bytes(), &opts); err != nil {
		t.Fatalf("invalid defaults JSON: %v", err)
	}
	if opts.Precision != 3 || opts.Unit != phasor.Degrees || !opts.WrapAngle {
		t.Errorf("defaults = %+v", opts)
	}
}

func TestHandleIndex(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	testHandler().handleIndex(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Phasor Converter") {
		t.Error("page body missing title")
	}

	// Anything but the root is not served.
	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec = httptest.NewRecorder()
	testHandler().handleIndex(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
