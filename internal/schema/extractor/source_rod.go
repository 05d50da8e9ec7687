package extractor

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	dErrors "udyam/pkg/domain-errors"
)

// defaultUserAgent matches a mainstream desktop browser; the portal serves a
// degraded page to obvious automation.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// RodSource fetches the live portal page through headless Chromium and
// snapshots its rendered HTML. Each Fetch launches its own browser so
// concurrent extraction runs cannot interfere.
type RodSource struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

func (s RodSource) Fetch(ctx context.Context) (*goquery.Document, error) {
	html, err := s.fetchHTML(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "registration page unreachable", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "registration page unparsable", err)
	}
	return doc, nil
}

func (s RodSource) fetchHTML(ctx context.Context) (string, error) {
	controlURL, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return "", err
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return "", err
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	if s.Timeout > 0 {
		page = page.Timeout(s.Timeout)
	}

	ua := s.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: ua}); err != nil {
		return "", err
	}

	if err := page.Navigate(s.URL); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	return page.HTML()
}
