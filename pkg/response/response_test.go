package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantBody   string
	}{
		{"success with data", func(w http.ResponseWriter) { Success(w, "", []int{}) }, http.StatusOK, `{"errCode":0,"data":[]}`},
		{"success with message", func(w http.ResponseWriter) { Success(w, "Succeed!", nil) }, http.StatusOK, `{"errCode":0,"errMessage":"Succeed!"}`},
		{"param error", func(w http.ResponseWriter) { ParamError(w, "Missing required parameter") }, http.StatusOK, `{"errCode":1,"errMessage":"Missing required parameter"}`},
		{"server error", InternalServerError, http.StatusInternalServerError, `{"errCode":-1,"errMessage":"Error from server"}`},
		{"rate limited", TooManyRequests, http.StatusTooManyRequests, `{"errCode":-1,"errMessage":"Too many requests"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, got)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected json content type, got %q", ct)
			}
		})
	}
}
