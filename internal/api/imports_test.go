package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldflow/backoffice/internal/importer"
	"fieldflow/backoffice/internal/models/dtos"
	"fieldflow/backoffice/internal/services"
)

type mockImportRunner struct {
	previewFunc func(ctx context.Context, profileName string, file io.Reader, format importer.Format) ([]dtos.ImportGroupPreview, error)
	commitFunc  func(ctx context.Context, profileName string, file io.Reader, format importer.Format) (*dtos.ImportRunResult, error)
}

func (m *mockImportRunner) Preview(ctx context.Context, profileName string, file io.Reader, format importer.Format) ([]dtos.ImportGroupPreview, error) {
	return m.previewFunc(ctx, profileName, file, format)
}
func (m *mockImportRunner) Commit(ctx context.Context, profileName string, file io.Reader, format importer.Format) (*dtos.ImportRunResult, error) {
	return m.commitFunc(ctx, profileName, file, format)
}

func multipartUpload(t *testing.T, filename, profile, contents string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if profile != "" {
		if err := mw.WriteField("profile", profile); err != nil {
			t.Fatalf("write profile field: %v", err)
		}
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(contents)); err != nil {
		t.Fatalf("write file contents: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestPreviewImportHandler_Success(t *testing.T) {
	var gotFormat importer.Format
	mockSvc := &mockImportRunner{
		previewFunc: func(ctx context.Context, profileName string, file io.Reader, format importer.Format) ([]dtos.ImportGroupPreview, error) {
			gotFormat = format
			return []dtos.ImportGroupPreview{{GroupKey: "T-1", TicketNumber: "T-1", LaborRows: 2}}, nil
		},
	}
	handler := PreviewImport(mockSvc)

	body, contentType := multipartUpload(t, "week.csv", "acme", "Ticket,Employee\nT-1,Alice")
	req := httptest.NewRequest("POST", "/api/v1/imports/preview", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if gotFormat != importer.FormatCSV {
		t.Errorf("format = %q, want csv", gotFormat)
	}
}

func TestPreviewImportHandler_UnsupportedExtension(t *testing.T) {
	handler := PreviewImport(&mockImportRunner{})

	body, contentType := multipartUpload(t, "week.pdf", "acme", "junk")
	req := httptest.NewRequest("POST", "/api/v1/imports/preview", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestPreviewImportHandler_MissingProfile(t *testing.T) {
	handler := PreviewImport(&mockImportRunner{})

	body, contentType := multipartUpload(t, "week.csv", "", "a,b")
	req := httptest.NewRequest("POST", "/api/v1/imports/preview", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestPreviewImportHandler_UnreadableFile(t *testing.T) {
	mockSvc := &mockImportRunner{
		previewFunc: func(ctx context.Context, profileName string, file io.Reader, format importer.Format) ([]dtos.ImportGroupPreview, error) {
			return nil, importer.ErrUnreadableFile
		},
	}
	handler := PreviewImport(mockSvc)

	body, contentType := multipartUpload(t, "week.xlsx", "acme", "not a workbook")
	req := httptest.NewRequest("POST", "/api/v1/imports/preview", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", rr.Code)
	}
}

func TestPreviewImportHandler_UnknownProfile(t *testing.T) {
	mockSvc := &mockImportRunner{
		previewFunc: func(ctx context.Context, profileName string, file io.Reader, format importer.Format) ([]dtos.ImportGroupPreview, error) {
			return nil, services.ErrProfileNotFound
		},
	}
	handler := PreviewImport(mockSvc)

	body, contentType := multipartUpload(t, "week.csv", "nope", "a,b")
	req := httptest.NewRequest("POST", "/api/v1/imports/preview", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestRunImportHandler_PartialFailureReportsCommitted(t *testing.T) {
	mockSvc := &mockImportRunner{
		commitFunc: func(ctx context.Context, profileName string, file io.Reader, format importer.Format) (*dtos.ImportRunResult, error) {
			return &dtos.ImportRunResult{
				Profile:         profileName,
				GroupsCommitted: 2,
				FailedGroup:     "T-3",
			}, io.ErrUnexpectedEOF
		},
	}
	handler := RunImport(mockSvc)

	body, contentType := multipartUpload(t, "week.csv", "acme", "a,b")
	req := withClaims(httptest.NewRequest("POST", "/api/v1/imports", body))
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "error" {
		t.Errorf("Expected status error, got %s", response.Status)
	}
	data, _ := json.Marshal(response.Data)
	var result dtos.ImportRunResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.GroupsCommitted != 2 || result.FailedGroup != "T-3" {
		t.Errorf("result = %+v", result)
	}
}

func TestRunImportHandler_MissingClaims(t *testing.T) {
	handler := RunImport(&mockImportRunner{})

	body, contentType := multipartUpload(t, "week.csv", "acme", "a,b")
	req := httptest.NewRequest("POST", "/api/v1/imports", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}
}
