package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookingcare-service/internal/delivery/dto"
	"bookingcare-service/internal/usecase"
	"bookingcare-service/pkg/response"

	"github.com/google/uuid"
)

// -- Mock Usecases --

type mockScheduleUsecase struct {
	lastReq   *dto.BulkCreateScheduleRequest
	lastDate  int64
	result    *dto.BulkCreateScheduleResponse
	schedules []dto.ScheduleResponse
	err       error
}

func (m *mockScheduleUsecase) BulkCreateSchedule(_ context.Context, req *dto.BulkCreateScheduleRequest) (*dto.BulkCreateScheduleResponse, error) {
	m.lastReq = req
	return m.result, m.err
}

func (m *mockScheduleUsecase) GetScheduleByDate(_ context.Context, _ uuid.UUID, date int64) ([]dto.ScheduleResponse, error) {
	m.lastDate = date
	return m.schedules, m.err
}

type mockDoctorUsecase struct {
	lastLimit int
	detail    *dto.DoctorDetailResponse
	err       error
}

func (m *mockDoctorUsecase) GetTopDoctorHome(_ context.Context, limit int) ([]dto.DoctorResponse, error) {
	m.lastLimit = limit
	return []dto.DoctorResponse{}, m.err
}

func (m *mockDoctorUsecase) GetAllDoctors(_ context.Context) ([]dto.DoctorResponse, error) {
	return []dto.DoctorResponse{}, m.err
}

func (m *mockDoctorUsecase) SaveDetailInfoDoctor(_ context.Context, _ *dto.SaveDoctorInfoRequest) error {
	return m.err
}

func (m *mockDoctorUsecase) GetDetailDoctorByID(_ context.Context, _ uuid.UUID) (*dto.DoctorDetailResponse, error) {
	return m.detail, m.err
}

type mockAllcodeUsecase struct {
	lastType string
}

func (m *mockAllcodeUsecase) GetAllcodes(_ context.Context, codeType string) ([]dto.AllcodeResponse, error) {
	m.lastType = codeType
	return []dto.AllcodeResponse{{KeyMap: "T1", Type: "TIME"}}, nil
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

// -- Tests --

func TestBulkCreateSchedule_Success(t *testing.T) {
	uc := &mockScheduleUsecase{result: &dto.BulkCreateScheduleResponse{Received: 2, Inserted: 1}}
	h := NewScheduleHandler(uc)
	doctorID := uuid.New()

	body := `{"arrSchedule":[{"timeType":"T1","date":1700006400000},{"timeType":"T2","date":1700006400000,"maxNumber":3}],"doctorId":"` + doctorID.String() + `","formatedDate":1700006400000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bulk-create-schedule", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.BulkCreateSchedule(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.ErrCode != 0 || resp.ErrMessage != "Succeed!" {
		t.Errorf("unexpected envelope %+v", resp)
	}
	if uc.lastReq == nil || uc.lastReq.DoctorID != doctorID || len(uc.lastReq.ArrSchedule) != 2 {
		t.Fatalf("request not decoded: %+v", uc.lastReq)
	}
	if uc.lastReq.ArrSchedule[0].MaxNumber != nil || *uc.lastReq.ArrSchedule[1].MaxNumber != 3 {
		t.Error("expected maxNumber to be absent for T1 and 3 for T2")
	}
}

func TestBulkCreateSchedule_ParamError(t *testing.T) {
	uc := &mockScheduleUsecase{err: &usecase.ParamError{Code: 1, Message: usecase.MsgMissingRequiredParameter}}
	h := NewScheduleHandler(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bulk-create-schedule", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.BulkCreateSchedule(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for validation failure, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.ErrCode != 1 || resp.ErrMessage != usecase.MsgMissingRequiredParameter {
		t.Errorf("unexpected envelope %+v", resp)
	}
}

func TestBulkCreateSchedule_MalformedDoctorID(t *testing.T) {
	uc := &mockScheduleUsecase{}
	h := NewScheduleHandler(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bulk-create-schedule", strings.NewReader(`{"doctorId":"","arrSchedule":[]}`))
	rec := httptest.NewRecorder()
	h.BulkCreateSchedule(rec, req)

	resp := decodeResponse(t, rec)
	if resp.ErrCode != 1 {
		t.Errorf("expected errCode 1, got %+v", resp)
	}
	if uc.lastReq != nil {
		t.Error("expected usecase not to be called")
	}
}

func TestBulkCreateSchedule_StoreError(t *testing.T) {
	uc := &mockScheduleUsecase{err: errors.New("connection reset")}
	h := NewScheduleHandler(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bulk-create-schedule", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.BulkCreateSchedule(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.ErrCode != -1 || resp.ErrMessage != "Error from server" {
		t.Errorf("unexpected envelope %+v", resp)
	}
}

func TestGetScheduleByDate_Query(t *testing.T) {
	uc := &mockScheduleUsecase{schedules: []dto.ScheduleResponse{}}
	h := NewScheduleHandler(uc)

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/get-schedule-doctor-by-date?doctorId="+uuid.NewString()+"&date=1700006400000", nil)
		rec := httptest.NewRecorder()
		h.GetScheduleByDate(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if uc.lastDate != 1700006400000 {
			t.Errorf("expected date to be parsed, got %d", uc.lastDate)
		}
		if !strings.Contains(rec.Body.String(), `"data":[]`) {
			t.Errorf("expected empty data array, got %s", rec.Body.String())
		}
	})

	t.Run("missing date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/get-schedule-doctor-by-date?doctorId="+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		h.GetScheduleByDate(rec, req)

		resp := decodeResponse(t, rec)
		if resp.ErrCode != 1 || resp.ErrMessage != usecase.MsgMissingRequiredParameters {
			t.Errorf("unexpected envelope %+v", resp)
		}
	})
}

func TestSaveDetailInfoDoctor_Responses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		{"success", nil, http.StatusOK, 0, "Save doctor info succeed!"},
		{"invalid action", &usecase.ParamError{Code: 1, Message: usecase.MsgInvalidAction}, http.StatusOK, 1, usecase.MsgInvalidAction},
		{"duplicate markdown", usecase.ErrMarkdownExists, http.StatusConflict, 1, "Doctor markdown already exists"},
		{"storage failure", errors.New("tx aborted"), http.StatusInternalServerError, -1, "Error from server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewDoctorHandler(&mockDoctorUsecase{err: tt.err})
			body := `{"doctorId":"` + uuid.NewString() + `","action":"CREATE"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/save-infor-doctors", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.SaveDetailInfoDoctor(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			resp := decodeResponse(t, rec)
			if resp.ErrCode != tt.wantCode || resp.ErrMessage != tt.wantMsg {
				t.Errorf("unexpected envelope %+v", resp)
			}
		})
	}
}

func TestGetTopDoctorHome_Limit(t *testing.T) {
	uc := &mockDoctorUsecase{}
	h := NewDoctorHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/top-doctor-home?limit=5", nil)
	rec := httptest.NewRecorder()
	h.GetTopDoctorHome(rec, req)
	if uc.lastLimit != 5 {
		t.Errorf("expected limit 5, got %d", uc.lastLimit)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/top-doctor-home?limit=abc", nil)
	rec = httptest.NewRecorder()
	h.GetTopDoctorHome(rec, req)
	if resp := decodeResponse(t, rec); resp.ErrCode != 1 {
		t.Errorf("expected errCode 1 for bad limit, got %+v", resp)
	}
}

func TestGetDetailDoctorByID_UnknownDoctor(t *testing.T) {
	h := NewDoctorHandler(&mockDoctorUsecase{detail: &dto.DoctorDetailResponse{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/get-detail-doctor-by-id?id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.GetDetailDoctorByID(rec, req)

	if !strings.Contains(rec.Body.String(), `"data":{}`) {
		t.Errorf("expected empty object, got %s", rec.Body.String())
	}
}

func TestGetDetailDoctorByID_MissingID(t *testing.T) {
	h := NewDoctorHandler(&mockDoctorUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/get-detail-doctor-by-id", nil)
	rec := httptest.NewRecorder()
	h.GetDetailDoctorByID(rec, req)

	resp := decodeResponse(t, rec)
	if resp.ErrCode != 1 || resp.ErrMessage != usecase.MsgMissingRequiredParameter {
		t.Errorf("unexpected envelope %+v", resp)
	}
}

func TestGetAllcodes(t *testing.T) {
	uc := &mockAllcodeUsecase{}
	h := NewAllcodeHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/allcode?type=TIME", nil)
	rec := httptest.NewRecorder()
	h.GetAllcodes(rec, req)

	if uc.lastType != "TIME" {
		t.Errorf("expected type TIME, got %q", uc.lastType)
	}
	if resp := decodeResponse(t, rec); resp.ErrCode != 0 {
		t.Errorf("unexpected envelope %+v", resp)
	}
}
