package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rsinha/go-contract-desk/internal/domain"
	"github.com/rsinha/go-contract-desk/internal/services"
	"github.com/rsinha/go-contract-desk/internal/store"
)

// stubContracts is a canned-response ContractService.
type stubContracts struct {
	contracts []domain.Contract
	contract  *domain.Contract
	alerts    []domain.Alert
	err       error
	deleted   []int
}

func (s *stubContracts) List(ctx context.Context) ([]domain.Contract, error) {
	return s.contracts, s.err
}

func (s *stubContracts) Get(ctx context.Context, id int) (*domain.Contract, error) {
	return s.contract, s.err
}

func (s *stubContracts) Create(ctx context.Context, c domain.Contract) (*domain.Contract, error) {
	if s.err != nil {
		return nil, s.err
	}
	c.ID = 1
	return &c, nil
}

func (s *stubContracts) Update(ctx context.Context, id int, upd domain.ContractUpdate) (*domain.Contract, error) {
	return s.contract, s.err
}

func (s *stubContracts) Delete(ctx context.Context, id int) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func (s *stubContracts) Search(ctx context.Context, term string) ([]domain.Contract, error) {
	return s.contracts, s.err
}

func (s *stubContracts) Alerts(ctx context.Context) ([]domain.Alert, error) {
	return s.alerts, s.err
}

func newTestRouter(contractSvc ContractService, chatSvc ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(contractSvc, chatSvc)
	r := gin.New()
	r.GET("/api/contracts", h.ListContracts)
	r.POST("/api/contracts", h.CreateContract)
	r.GET("/api/contracts/:id", h.GetContract)
	r.PUT("/api/contracts/:id", h.UpdateContract)
	r.DELETE("/api/contracts/:id", h.DeleteContract)
	r.POST("/api/search", h.SearchContracts)
	r.GET("/api/alerts", h.ListAlerts)
	r.POST("/api/chat", h.Chat)
	r.GET("/api/chat/history/:chat_id", h.ChatHistory)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestListContracts(t *testing.T) {
	svc := &stubContracts{contracts: []domain.Contract{
		{ID: 1, Title: "Quality Assurance", Status: domain.StatusActive},
	}}
	w := doJSON(t, newTestRouter(svc, &stubChat{}), http.MethodGet, "/api/contracts", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	resp := decodeBody[ListContractsResponse](t, w)
	if len(resp.Contracts) != 1 || resp.Contracts[0].Title != "Quality Assurance" {
		t.Errorf("body = %+v", resp)
	}
}

func TestCreateContract(t *testing.T) {
	svc := &stubContracts{}
	w := doJSON(t, newTestRouter(svc, &stubChat{}), http.MethodPost, "/api/contracts", CreateContractRequest{
		Title: "Quality Assurance", Company: "Acme", ClientName: "Priya Sharma",
		StartDate: "2025-01-01", EndDate: "2025-12-31", Salary: 1200000,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201", w.Code)
	}
	resp := decodeBody[CreateContractResponse](t, w)
	if !resp.Success || resp.Contract == nil || resp.Contract.ID != 1 {
		t.Errorf("body = %+v", resp)
	}
}

func TestCreateContract_MissingFields(t *testing.T) {
	svc := &stubContracts{err: &store.ValidationError{Missing: []string{"end_date"}}}
	w := doJSON(t, newTestRouter(svc, &stubChat{}), http.MethodPost, "/api/contracts", CreateContractRequest{
		Title: "Incomplete",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	resp := decodeBody[ErrorResponse](t, w)
	if resp.Code != ErrCodeValidation {
		t.Errorf("error code = %q; want %q", resp.Code, ErrCodeValidation)
	}
}

func TestCreateContract_MalformedJSON(t *testing.T) {
	r := newTestRouter(&stubContracts{}, &stubChat{})
	req := httptest.NewRequest(http.MethodPost, "/api/contracts", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	resp := decodeBody[ErrorResponse](t, w)
	if resp.Code != ErrCodeBadRequest {
		t.Errorf("error code = %q; want %q", resp.Code, ErrCodeBadRequest)
	}
}

func TestGetContract_NotFound(t *testing.T) {
	svc := &stubContracts{err: services.ErrContractNotFound}
	w := doJSON(t, newTestRouter(svc, &stubChat{}), http.MethodGet, "/api/contracts/42", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	resp := decodeBody[ErrorResponse](t, w)
	if resp.Code != ErrCodeNotFound {
		t.Errorf("error code = %q; want %q", resp.Code, ErrCodeNotFound)
	}
}

func TestGetContract_NonIntegerID(t *testing.T) {
	w := doJSON(t, newTestRouter(&stubContracts{}, &stubChat{}), http.MethodGet, "/api/contracts/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestUpdateContract_NotFound(t *testing.T) {
	svc := &stubContracts{err: services.ErrContractNotFound}
	title := "Renamed"
	w := doJSON(t, newTestRouter(svc, &stubChat{}), http.MethodPut, "/api/contracts/42", domain.ContractUpdate{Title: &title})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
}

func TestDeleteContract_SameResponseEitherWay(t *testing.T) {
	svc := &stubContracts{}
	r := newTestRouter(svc, &stubChat{})

	first := doJSON(t, r, http.MethodDelete, "/api/contracts/7", nil)
	second := doJSON(t, r, http.MethodDelete, "/api/contracts/7", nil)

	for _, w := range []*httptest.ResponseRecorder{first, second} {
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d; want 200", w.Code)
		}
		resp := decodeBody[DeleteResponse](t, w)
		if !resp.Success {
			t.Errorf("body = %+v", resp)
		}
	}
	if len(svc.deleted) != 2 {
		t.Errorf("delete called %d times; want 2", len(svc.deleted))
	}
}

func TestSearchContracts(t *testing.T) {
	svc := &stubContracts{contracts: []domain.Contract{{ID: 1, Title: "Quality Assurance"}}}
	w := doJSON(t, newTestRouter(svc, &stubChat{}), http.MethodPost, "/api/search", SearchRequest{Query: "quality"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	resp := decodeBody[SearchResponse](t, w)
	if resp.Count != 1 || len(resp.Results) != 1 {
		t.Errorf("body = %+v", resp)
	}
}

func TestListAlerts(t *testing.T) {
	svc := &stubContracts{alerts: []domain.Alert{
		{ContractID: 1, Status: domain.StatusExpired, Message: `Contract "Old" with Acme expired 10 day(s) ago.`},
	}}
	w := doJSON(t, newTestRouter(svc, &stubChat{}), http.MethodGet, "/api/alerts", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	resp := decodeBody[AlertsResponse](t, w)
	if resp.Count != 1 || len(resp.Alerts) != 1 || resp.Alerts[0].ContractID != 1 {
		t.Errorf("body = %+v", resp)
	}
}

// stubChat is a canned-response ChatService shared across handler tests.
type stubChat struct {
	reply   string
	chatID  string
	at      time.Time
	history []domain.Exchange
	err     error
}

func (s *stubChat) Answer(ctx context.Context, sessionID, message string) (string, string, time.Time, error) {
	if s.err != nil {
		return "", "", time.Time{}, s.err
	}
	id := s.chatID
	if id == "" {
		id = sessionID
	}
	return s.reply, id, s.at, nil
}

func (s *stubChat) History(ctx context.Context, sessionID string) ([]domain.Exchange, error) {
	return s.history, s.err
}
