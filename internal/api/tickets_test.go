package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldflow/backoffice/internal/auth"
	"fieldflow/backoffice/internal/models/dtos"
	gormModels "fieldflow/backoffice/internal/models/gorm"
	"fieldflow/backoffice/internal/services"
)

type mockTicketManager struct {
	createManualFunc   func(ctx context.Context, req dtos.CreateTicketRequest) (*gormModels.FieldTicket, error)
	getFunc            func(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error)
	listRecentFunc     func(ctx context.Context, limit int) ([]gormModels.FieldTicket, error)
	listUnassignedFunc func(ctx context.Context, jobNumber string, start, end time.Time) ([]gormModels.FieldTicket, error)
	approveFunc        func(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error)
	deleteFunc         func(ctx context.Context, ticketNumber string) error
}

func (m *mockTicketManager) CreateManual(ctx context.Context, req dtos.CreateTicketRequest) (*gormModels.FieldTicket, error) {
	return m.createManualFunc(ctx, req)
}
func (m *mockTicketManager) Get(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error) {
	return m.getFunc(ctx, ticketNumber)
}
func (m *mockTicketManager) ListRecent(ctx context.Context, limit int) ([]gormModels.FieldTicket, error) {
	return m.listRecentFunc(ctx, limit)
}
func (m *mockTicketManager) ListUnassigned(ctx context.Context, jobNumber string, start, end time.Time) ([]gormModels.FieldTicket, error) {
	return m.listUnassignedFunc(ctx, jobNumber, start, end)
}
func (m *mockTicketManager) Approve(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error) {
	return m.approveFunc(ctx, ticketNumber)
}
func (m *mockTicketManager) Delete(ctx context.Context, ticketNumber string) error {
	return m.deleteFunc(ctx, ticketNumber)
}

func withClaims(req *http.Request) *http.Request {
	claims := &auth.SessionClaims{OperatorIDValue: "op-1", NameValue: "Pat"}
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

func TestCreateTicketHandler_Success(t *testing.T) {
	mockSvc := &mockTicketManager{
		createManualFunc: func(ctx context.Context, req dtos.CreateTicketRequest) (*gormModels.FieldTicket, error) {
			return &gormModels.FieldTicket{TicketNumber: req.TicketNumber, Status: "Ticket Created"}, nil
		},
	}
	handler := CreateTicket(mockSvc)

	body, _ := json.Marshal(dtos.CreateTicketRequest{
		TicketNumber: "T-1",
		JobNumber:    "25-001",
		TicketDate:   "2026-03-02",
	})
	req := withClaims(httptest.NewRequest("POST", "/api/v1/tickets", bytes.NewReader(body)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status ok, got %s", response.Status)
	}
}

func TestCreateTicketHandler_MissingClaims(t *testing.T) {
	handler := CreateTicket(&mockTicketManager{})

	body, _ := json.Marshal(dtos.CreateTicketRequest{TicketNumber: "T-1"})
	req := httptest.NewRequest("POST", "/api/v1/tickets", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}
}

func TestCreateTicketHandler_InvalidJSON(t *testing.T) {
	handler := CreateTicket(&mockTicketManager{})

	req := withClaims(httptest.NewRequest("POST", "/api/v1/tickets", bytes.NewReader([]byte("not json"))))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestApproveTicketHandler_NotFound(t *testing.T) {
	mockSvc := &mockTicketManager{
		approveFunc: func(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error) {
			return nil, services.ErrTicketNotFound
		},
	}
	handler := ApproveTicket(mockSvc)

	req := withClaims(httptest.NewRequest("POST", "/api/v1/tickets/missing/approve", nil))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}

	var response dtos.APIResponse
	json.NewDecoder(rr.Body).Decode(&response)
	if response.Status != "error" {
		t.Errorf("Expected status error, got %s", response.Status)
	}
}

func TestListTicketsHandler_BadDateRange(t *testing.T) {
	handler := ListTickets(&mockTicketManager{})

	req := httptest.NewRequest("GET", "/api/v1/tickets?job_number=25-001&start=yesterday&end=2026-03-02", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestDeleteTicketHandler_Success(t *testing.T) {
	mockSvc := &mockTicketManager{
		deleteFunc: func(ctx context.Context, ticketNumber string) error {
			return nil
		},
	}
	handler := DeleteTicket(mockSvc)

	req := withClaims(httptest.NewRequest("DELETE", "/api/v1/tickets/T-1", nil))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}
