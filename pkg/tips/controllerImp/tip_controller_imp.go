package controllerImp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"plantbuddy/entities"
	"plantbuddy/pkg/tips/repository"
)

type TipCtrl struct {
	repo     repository.TipRepository
	allow    map[string]bool
	maxBytes int
}

// New builds the tips controller. allowedHosts is a comma-separated host
// allow-list; ingestion is refused for anything else.
func New(repo repository.TipRepository, allowedHosts string, maxBytes int) *TipCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedHosts, ",") {
		h = strings.TrimSpace(strings.ToLower(h))
		if h != "" {
			allow[h] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &TipCtrl{repo: repo, allow: allow, maxBytes: maxBytes}
}

// IngestURL fetches a care article, extracts its main text and files it as a
// tip under the given species.
func (h *TipCtrl) IngestURL(c echo.Context) error {
	var body struct {
		URL     string `json:"url"`
		Species string `json:"species"`
		Title   string `json:"title"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	if strings.TrimSpace(body.Species) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "species required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	text, title, err := fetchMainText(body.URL, h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if body.Title != "" {
		title = body.Title
	}

	tip := &entities.CareTip{Species: body.Species, Title: title, SourceURL: body.URL, Text: text}
	if err := h.repo.Create(tip); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, tip)
}

func (h *TipCtrl) List(c echo.Context) error {
	out, err := h.repo.ListBySpecies(c.QueryParam("species"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// --- helpers ---

func fetchMainText(u string, maxBytes int) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	if strings.Contains(ct, "text/plain") {
		return string(b), guessTitleFromText(string(b)), nil
	}
	return extractMainText(b)
}

// extractMainText pulls headers, paragraphs and list items out of the page's
// main/article region, falling back to the whole document.
func extractMainText(page []byte) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	return cleanWhitespace(strings.Join(parts, "\n")), title, nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func guessTitleFromText(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
