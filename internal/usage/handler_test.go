package usage

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestListUsageLimits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := NewMemoryStore()
	store.Put(Record{Date: "13-03-2025", JRUsed: 5, JRLimit: 5, SRUsed: 1, SRLimit: 2})
	store.Put(Record{Date: "14-03-2025", JRUsed: 0, JRLimit: 5, SRUsed: 0, SRLimit: 2})

	router := gin.New()
	NewHandler(NewService(store)).RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/modelLimit", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var envelope struct {
		Status  bool     `json:"status"`
		Message string   `json:"message"`
		Data    []Record `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Status {
		t.Fatalf("expected status=true, got %+v", envelope)
	}
	if envelope.Message != "Usage limits retrieved successfully" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 records, got %d", len(envelope.Data))
	}
	if envelope.Data[0].Date != "13-03-2025" || envelope.Data[0].JRUsed != 5 {
		t.Fatalf("unexpected first record %+v", envelope.Data[0])
	}
	if envelope.Data[0].ID == "" {
		t.Fatalf("expected record id to be set")
	}
}
