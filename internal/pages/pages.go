// Package pages is the content catalogue of the documentation site: one page
// per documented function in each edition, plus the two home pages.
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/fpdocs/internal/nav"
	"github.com/ziadkadry99/fpdocs/internal/route"
	"github.com/ziadkadry99/fpdocs/internal/sidebar"
)

//go:embed content/*.md
var content embed.FS

// DefaultStyle is the chroma style used for code examples.
const DefaultStyle = "github"

// Page is a rendered content page.
type Page struct {
	id     string
	locale nav.Locale
	title  string
	path   string
	html   []byte
}

func (p *Page) ID() string         { return p.id }
func (p *Page) Locale() nav.Locale { return p.locale }
func (p *Page) Title() string      { return p.title }

// Path returns the route the page is registered at.
func (p *Page) Path() string { return p.path }

// Render writes the page's HTML fragment.
func (p *Page) Render(w io.Writer) error {
	_, err := w.Write(p.html)
	return err
}

// newMarkdown configures goldmark the same way for every page.
func newMarkdown(style string) goldmark.Markdown {
	if style == "" {
		style = DefaultStyle
	}
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// NewRegistry renders every page and builds the route table. Rendering
// happens once, so a broken page fails startup rather than a request.
func NewRegistry(style string) (*route.Registry, error) {
	md := newMarkdown(style)

	home, err := homePage(md, nav.English)
	if err != nil {
		return nil, err
	}
	homeKo, err := homePage(md, nav.Korean)
	if err != nil {
		return nil, err
	}

	entries := []route.Entry{
		{Path: home.path, Component: home},
		{Path: homeKo.path, Component: homeKo},
	}
	for _, f := range Functions {
		for _, locale := range []nav.Locale{nav.English, nav.Korean} {
			p, err := functionPage(md, f, locale)
			if err != nil {
				return nil, fmt.Errorf("rendering %s (%s): %w", f.Name, locale, err)
			}
			entries = append(entries, route.Entry{Path: p.path, Component: p})
		}
	}
	return route.NewRegistry(home, entries)
}

func homePage(md goldmark.Markdown, locale nav.Locale) (*Page, error) {
	name, path, title := "content/home.md", "/", "Home"
	if locale == nav.Korean {
		name, path, title = "content/home.ko.md", nav.KoreanPrefix, "홈"
	}
	src, err := content.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	html, err := convert(md, src)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return &Page{id: "Home", locale: locale, title: title, path: path, html: html}, nil
}

func functionPage(md goldmark.Markdown, f Function, locale nav.Locale) (*Page, error) {
	html, err := convert(md, []byte(functionMarkdown(f, locale)))
	if err != nil {
		return nil, err
	}
	return &Page{
		id:     ExportedName(f.Name),
		locale: locale,
		title:  f.Name,
		path:   localize(f.Path(), locale),
		html:   html,
	}, nil
}

func convert(md goldmark.Markdown, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// functionMarkdown writes the Markdown source of a function page.
func functionMarkdown(f Function, locale nav.Locale) string {
	summary, example, related := f.Summary, "Example", "See also"
	if locale == nav.Korean {
		summary, example, related = f.SummaryKo, "예제", "관련 함수"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", f.Name)
	fmt.Fprintf(&b, "`%s`\n\n", f.Signature)
	fmt.Fprintf(&b, "%s\n\n", summary)
	fmt.Fprintf(&b, "## %s\n\n```js\n%s\n```\n", example, f.Example)

	var links []string
	for _, name := range f.Related {
		if other, ok := find(name); ok {
			links = append(links, fmt.Sprintf("[%s](%s)", other.Name, localize(other.Path(), locale)))
		}
	}
	if len(links) > 0 {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", related, strings.Join(links, ", "))
	}
	return b.String()
}

// Sections builds the sidebar tables of both editions from the catalogue.
func Sections() sidebar.Table {
	table := sidebar.Table{}
	for _, locale := range []nav.Locale{nav.English, nav.Korean} {
		home := sidebar.Section{Items: []sidebar.Item{{Label: "Home", Path: "/"}}}
		if locale == nav.Korean {
			home.Items[0] = sidebar.Item{Label: "홈", Path: nav.KoreanPrefix}
		}
		sections := []sidebar.Section{home}
		for _, c := range Categories {
			s := sidebar.Section{Title: c.Title}
			if locale == nav.Korean {
				s.Title = c.TitleKo
			}
			for _, f := range Functions {
				if f.Category == c.Slug {
					s.Items = append(s.Items, sidebar.Item{Label: f.Name, Path: localize(f.Path(), locale)})
				}
			}
			sections = append(sections, s)
		}
		table[locale] = sections
	}
	return table
}

// localize returns the route of a canonical path in the given edition.
func localize(path string, locale nav.Locale) string {
	if locale == nav.Korean {
		return nav.KoreanPrefix + path
	}
	return path
}

// ExportedName turns a function name into its page ID: "tryCatch" becomes
// "TryCatch".
func ExportedName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
