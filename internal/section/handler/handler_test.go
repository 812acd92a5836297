package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/auth"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/section/dto"
)

type stubUseCase struct {
	settings  *dto.DisplaySettingsResponse
	batchResp *dto.BatchUpdateResponse

	gotPage  int
	gotLimit int
	created  *dto.CreateSectionInput
}

func (s *stubUseCase) GetDisplaySettings(_ context.Context, page, limit int) (*dto.DisplaySettingsResponse, error) {
	s.gotPage, s.gotLimit = page, limit
	return s.settings, nil
}

func (s *stubUseCase) CreateSection(_ context.Context, input *dto.CreateSectionInput) (*dto.SectionResponse, error) {
	s.created = input
	return dto.NewSectionResponse(&model.DisplaySection{
		BaseModel: model.BaseModel{ID: "new-id"},
		Title:     input.Title,
		Type:      input.Type,
	}), nil
}

func (s *stubUseCase) UpdateSection(_ context.Context, input *dto.UpdateSectionInput) (*dto.SectionResponse, error) {
	return nil, apperror.NotFound("display section not found")
}

func (s *stubUseCase) DeleteSection(_ context.Context, _ string) error { return nil }

func (s *stubUseCase) UpdateSections(_ context.Context, _ []dto.UpdateSectionInput) (*dto.BatchUpdateResponse, error) {
	return s.batchResp, nil
}

func (s *stubUseCase) ReplaceSections(_ context.Context, inputs []dto.CreateSectionInput) ([]dto.SectionResponse, error) {
	out := make([]dto.SectionResponse, len(inputs))
	for i := range inputs {
		out[i] = *dto.NewSectionResponse(&model.DisplaySection{
			Title: inputs[i].Title,
			Type:  inputs[i].Type,
		})
	}
	return out, nil
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newTestServer(uc *stubUseCase) (*echo.Echo, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	e.HTTPErrorHandler = apperror.NewHTTPErrorHandler(logger.NewNop(), false)

	public := e.Group("")
	authed := e.Group("", auth.Middleware(tokens))
	NewSectionHandler(uc, logger.NewNop()).Register(public, authed)

	return e, tokens
}

func bearer(t *testing.T, tokens *auth.TokenManager) string {
	t.Helper()
	token, err := tokens.CreateToken(&model.User{
		BaseModel: model.BaseModel{ID: "u1"},
		Email:     "admin@example.com",
	})
	if err != nil {
		t.Fatalf("could not issue test token: %v", err)
	}
	return "Bearer " + token
}

func TestGetDisplaySettings(t *testing.T) {
	uc := &stubUseCase{settings: &dto.DisplaySettingsResponse{
		Sections: []dto.ResolvedSection{
			{
				SectionResponse: dto.SectionResponse{
					DisplaySection: model.DisplaySection{
						BaseModel: model.BaseModel{ID: "s1"},
						Title:     "Promo",
						Type:      model.SectionTypeDiscounted,
						Active:    true,
					},
					ProductIDs: []string{},
					Tags:       []string{},
				},
				Products: []model.Product{{BaseModel: model.BaseModel{ID: "p1"}, Name: "Brigadeiro", Active: true}},
			},
		},
		Total:   1,
		Page:    2,
		Limit:   5,
		HasMore: false,
	}}
	e, _ := newTestServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/display-settings?page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if uc.gotPage != 2 || uc.gotLimit != 5 {
		t.Errorf("query params not forwarded: page=%d limit=%d", uc.gotPage, uc.gotLimit)
	}

	var body struct {
		Sections []struct {
			ID       string   `json:"id"`
			Title    string   `json:"title"`
			Type     string   `json:"type"`
			Order    int      `json:"order"`
			Products []struct {
				ID string `json:"id"`
			} `json:"products"`
			ProductIDs []string `json:"productIds"`
		} `json:"sections"`
		Total   int  `json:"total"`
		Page    int  `json:"page"`
		Limit   int  `json:"limit"`
		HasMore bool `json:"hasMore"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Total != 1 || body.Page != 2 || body.Limit != 5 || body.HasMore {
		t.Errorf("unexpected pagination envelope: %+v", body)
	}
	if len(body.Sections) != 1 || body.Sections[0].ID != "s1" {
		t.Fatalf("unexpected sections: %+v", body.Sections)
	}
	if len(body.Sections[0].Products) != 1 || body.Sections[0].Products[0].ID != "p1" {
		t.Errorf("resolved products missing from payload: %+v", body.Sections[0])
	}
}

func TestGetDisplaySettingsDefaultsBadQueryParams(t *testing.T) {
	uc := &stubUseCase{settings: &dto.DisplaySettingsResponse{Sections: []dto.ResolvedSection{}}}
	e, _ := newTestServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/display-settings?page=abc&limit=", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if uc.gotPage != 1 || uc.gotLimit != 10 {
		t.Errorf("expected defaults page=1 limit=10, got page=%d limit=%d", uc.gotPage, uc.gotLimit)
	}
}

func TestCreateSectionRequiresAuth(t *testing.T) {
	e, _ := newTestServer(&stubUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/display-sections",
		strings.NewReader(`{"title":"Promo","type":"discounted"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestCreateSection(t *testing.T) {
	uc := &stubUseCase{}
	e, tokens := newTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/display-sections",
		strings.NewReader(`{"title":"Promo","type":"discounted","productIds":"p1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, tokens))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if uc.created == nil || uc.created.Title != "Promo" {
		t.Fatalf("input not forwarded: %+v", uc.created)
	}
	// Scalar productIds coerces to a one-element list.
	if len(uc.created.ProductIDs) != 1 || uc.created.ProductIDs[0] != "p1" {
		t.Errorf("expected productIds [p1], got %v", uc.created.ProductIDs)
	}
}

func TestCreateSectionMissingTitle(t *testing.T) {
	e, tokens := newTestServer(&stubUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/display-sections",
		strings.NewReader(`{"type":"discounted"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, tokens))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Error == "" {
		t.Error("expected an error message in the body")
	}
}

func TestUpdateSectionsBatchReportsPartialFailure(t *testing.T) {
	uc := &stubUseCase{batchResp: &dto.BatchUpdateResponse{
		Success:         false,
		UpdatedSections: []dto.SectionResponse{},
		Errors:          []dto.SectionError{{ID: "s2", Error: "category missing not found"}},
	}}
	e, tokens := newTestServer(uc)

	req := httptest.NewRequest(http.MethodPut, "/display-sections",
		strings.NewReader(`[{"id":"s2","categoryId":"missing"}]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, tokens))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("tolerant batch must answer 200, got %d", rec.Code)
	}
	var body struct {
		Success bool `json:"success"`
		Errors  []struct {
			ID    string `json:"id"`
			Error string `json:"error"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if len(body.Errors) != 1 || body.Errors[0].ID != "s2" {
		t.Errorf("unexpected errors payload: %+v", body.Errors)
	}
}

func TestReplaceSections(t *testing.T) {
	e, tokens := newTestServer(&stubUseCase{})

	req := httptest.NewRequest(http.MethodPut, "/display-settings",
		strings.NewReader(`[{"title":"A","type":"discounted"},{"title":"B","type":"new_arrivals"}]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, tokens))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success  bool              `json:"success"`
		Sections []json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Success || len(body.Sections) != 2 {
		t.Errorf("unexpected replace payload: success=%v sections=%d", body.Success, len(body.Sections))
	}
}
