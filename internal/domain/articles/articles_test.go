package articles

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestStaticFeed_Fetch(t *testing.T) {
	feed := NewStaticFeed()

	list, err := feed.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 4 {
		t.Fatalf("got %d articles, want 4", len(list))
	}
	for i, a := range list {
		if a.Title == "" || a.Description == "" || a.Source == "" || a.ImageHint == "" {
			t.Errorf("article %d has empty fields: %+v", i, a)
		}
		if !strings.HasPrefix(a.URL, "https://") {
			t.Errorf("article %d has bad url %q", i, a.URL)
		}
	}
	if list[0].Title != "The Power of Turmeric: More Than Just a Spice" {
		t.Errorf("first article = %q", list[0].Title)
	}
}

func TestStaticFeed_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewStaticFeed().Fetch(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestHandler_ListArticles(t *testing.T) {
	e := echo.New()
	NewHandler(NewStaticFeed()).RegisterRoutes(e.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Articles []Article `json:"articles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Articles) != 4 {
		t.Errorf("got %d articles", len(resp.Articles))
	}
}
