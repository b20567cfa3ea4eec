package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
)

func TestMarkMessageRead(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	record := db.ContactMessage{Name: "Alice", Email: "alice@example.com", Message: "Hi"}
	if err := db.DB.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}

	idStr := strconv.Itoa(int(record.ID))
	req := httptest.NewRequest(http.MethodPut, "/admin/api/messages/"+idStr+"/read", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: idStr}}

	api.MarkMessageRead(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var reloaded db.ContactMessage
	if err := db.DB.First(&reloaded, record.ID).Error; err != nil {
		t.Fatalf("failed to reload message: %v", err)
	}
	if !reloaded.Read {
		t.Fatal("expected message to be marked read")
	}
}

func TestMarkMessageReadNotFound(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodPut, "/admin/api/messages/404/read", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "404"}}

	api.MarkMessageRead(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteMessage(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	record := db.ContactMessage{Name: "Bob", Email: "bob@example.com", Message: "Bye"}
	if err := db.DB.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}

	idStr := strconv.Itoa(int(record.ID))
	req := httptest.NewRequest(http.MethodDelete, "/admin/api/messages/"+idStr, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: idStr}}

	api.DeleteMessage(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var count int64
	db.DB.Model(&db.ContactMessage{}).Where("id = ?", record.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected message to be deleted, still found %d records", count)
	}
}
