// Package linkcheck renders every registered page inside the shell and
// reports internal links that would fall back to the home page.
package linkcheck

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/fpdocs/internal/layout"
	"github.com/ziadkadry99/fpdocs/internal/nav"
	"github.com/ziadkadry99/fpdocs/internal/progress"
	"github.com/ziadkadry99/fpdocs/internal/route"
	"github.com/ziadkadry99/fpdocs/internal/sidebar"
)

// BrokenLink is an internal link with no registered target.
type BrokenLink struct {
	Page string // route of the page containing the link
	Href string
	Text string
}

// Report summarizes a check.
type Report struct {
	Pages  int
	Links  int
	Broken []BrokenLink
}

// OK reports whether no broken links were found.
func (r Report) OK() bool { return len(r.Broken) == 0 }

// Check renders every route of registry, or only those matching patterns.
func Check(registry *route.Registry, table sidebar.Table, patterns []string, reporter progress.Reporter) (Report, error) {
	if reporter == nil {
		reporter = progress.Silent{}
	}
	routes := registry.Match(patterns)

	var report Report
	reporter.Start(len(routes))

	for i, r := range routes {
		var buf bytes.Buffer
		if err := renderShell(&buf, registry, table, r); err != nil {
			return report, fmt.Errorf("rendering %s: %w", r, err)
		}
		links, err := ExtractLinks(&buf)
		if err != nil {
			return report, fmt.Errorf("parsing %s: %w", r, err)
		}

		report.Pages++
		broken := 0
		for _, l := range links {
			target, ok := internalTarget(l.Href)
			if !ok {
				continue
			}
			report.Links++
			if _, found := registry.Lookup(target); !found {
				report.Broken = append(report.Broken, BrokenLink{Page: r, Href: l.Href, Text: l.Text})
				broken++
			}
		}
		reporter.Page(i+1, r, broken)
	}
	reporter.Finish(report.Pages, len(report.Broken))
	return report, nil
}

// renderShell mounts a throwaway store at location and renders the shell.
func renderShell(w io.Writer, registry *route.Registry, table sidebar.Table, location string) error {
	store := nav.NewStore(nav.NewMemoryHistory(location))
	sb := sidebar.New(store, table)
	defer sb.Close()
	lc := layout.New(store, registry, sb, layout.Options{})
	defer lc.Close()
	return lc.Render(w)
}

// Link is an anchor found in a page.
type Link struct {
	Href string
	Text string
}

// ExtractLinks returns every <a href> in an HTML document.
func ExtractLinks(r io.Reader) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := attr(n, "href"); href != "" {
				links = append(links, Link{Href: href, Text: strings.TrimSpace(text(n))})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

// internalTarget returns the route an href points at, if it is a site page.
func internalTarget(href string) (string, bool) {
	u, err := url.Parse(href)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "", false
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "/static/") {
		return "", false
	}
	return u.Path, true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return b.String()
}
