package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestExtractMainTextPrefersArticleRegion(t *testing.T) {
	page := []byte(`<html><head><title>Watering Monstera</title></head><body>
<nav><li>Home</li><li>About</li></nav>
<article>
  <h1>Watering Monstera</h1>
  <p>Water when the top inch of soil is dry.</p>
  <li>Use room-temperature water</li>
</article>
<footer><p>All rights reserved</p></footer>
</body></html>`)

	text, title, err := extractMainText(page)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if title != "Watering Monstera" {
		t.Fatalf("title = %q", title)
	}
	if !strings.Contains(text, "top inch of soil") || !strings.Contains(text, "room-temperature") {
		t.Fatalf("text = %q", text)
	}
	if strings.Contains(text, "About") || strings.Contains(text, "rights reserved") {
		t.Fatalf("nav/footer leaked into text: %q", text)
	}
}

func TestExtractMainTextFallsBackToWholeDocument(t *testing.T) {
	page := []byte(`<html><head><title>Ferns</title></head><body>
<p>Keep humidity high.</p>
</body></html>`)

	text, title, err := extractMainText(page)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if title != "Ferns" || !strings.Contains(text, "humidity") {
		t.Fatalf("title=%q text=%q", title, text)
	}
}

func TestIngestURLRejectsUnlistedHost(t *testing.T) {
	h := New(nil, "trusted.example.com", 0)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/tips/ingest/url",
		strings.NewReader(`{"url":"https://evil.example.net/care","species":"fern"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.IngestURL(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestIngestURLRequiresSpecies(t *testing.T) {
	h := New(nil, "trusted.example.com", 0)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/tips/ingest/url",
		strings.NewReader(`{"url":"https://trusted.example.com/care"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.IngestURL(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCleanWhitespace(t *testing.T) {
	in := "line one   \nline two\r\n"
	got := cleanWhitespace(in)
	if got != "line one\nline two\n" {
		t.Fatalf("got %q", got)
	}
}
