package pages

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ziadkadry99/fpdocs/internal/nav"
	"github.com/ziadkadry99/fpdocs/internal/route"
)

func mustRegistry(t *testing.T) *route.Registry {
	t.Helper()
	r, err := NewRegistry("")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func TestRegistryCoversEveryFunctionInBothLocales(t *testing.T) {
	r := mustRegistry(t)
	if want := 2 + 2*len(Functions); r.Len() != want {
		t.Errorf("registry has %d routes, want %d", r.Len(), want)
	}
	for _, f := range Functions {
		for _, path := range []string{f.Path(), "/ko" + f.Path()} {
			c, ok := r.Lookup(path)
			if !ok {
				t.Errorf("%s not registered", path)
				continue
			}
			if c.ID() != ExportedName(f.Name) {
				t.Errorf("%s has ID %q", path, c.ID())
			}
			if c.Locale() != nav.LocaleOf(path) {
				t.Errorf("%s has locale %q", path, c.Locale())
			}
		}
	}
}

func TestPipeEndToEnd(t *testing.T) {
	r := mustRegistry(t)
	store := nav.NewStore(nav.NewMemoryHistory("/"))

	store.NavigateTo("/composition/pipe")
	c := r.Resolve(store.State().Route)
	if c.ID() != "Pipe" || c.Locale() != nav.English {
		t.Errorf("got %s/%s, want Pipe/en", c.ID(), c.Locale())
	}
	if store.State().Korean() {
		t.Error("expected English")
	}

	store.NavigateTo("/ko/composition/pipe")
	c = r.Resolve(store.State().Route)
	if c.ID() != "Pipe" || c.Locale() != nav.Korean {
		t.Errorf("got %s/%s, want Pipe/ko", c.ID(), c.Locale())
	}
	if !store.State().Korean() {
		t.Error("expected Korean")
	}
}

func TestHomeIsFallback(t *testing.T) {
	r := mustRegistry(t)
	c := r.Resolve("/does/not/exist")
	if c.ID() != "Home" || c.Locale() != nav.English {
		t.Errorf("fallback = %s/%s", c.ID(), c.Locale())
	}
}

func TestFunctionPageRendering(t *testing.T) {
	r := mustRegistry(t)

	var buf bytes.Buffer
	if err := r.Resolve("/array/chunk").Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"<h1", "chunk", "Example", `href="/array/flatten"`} {
		if !strings.Contains(html, want) {
			t.Errorf("chunk page missing %q", want)
		}
	}

	buf.Reset()
	if err := r.Resolve("/ko/array/chunk").Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html = buf.String()
	for _, want := range []string{"예제", `href="/ko/array/flatten"`} {
		if !strings.Contains(html, want) {
			t.Errorf("Korean chunk page missing %q", want)
		}
	}
}

func TestSections(t *testing.T) {
	table := Sections()
	en, ko := table[nav.English], table[nav.Korean]
	if len(en) != len(Categories)+1 || len(ko) != len(en) {
		t.Fatalf("section counts en=%d ko=%d", len(en), len(ko))
	}
	if en[1].Title != "Composition" || ko[1].Title != "함수 합성" {
		t.Errorf("titles = %q, %q", en[1].Title, ko[1].Title)
	}
	for _, s := range ko {
		for _, it := range s.Items {
			if !nav.IsKorean(it.Path) {
				t.Errorf("Korean item %q has path %q", it.Label, it.Path)
			}
		}
	}

	items := 0
	for _, s := range en[1:] {
		items += len(s.Items)
	}
	if items != len(Functions) {
		t.Errorf("sidebar lists %d functions, want %d", items, len(Functions))
	}
}

func TestRelatedNamesExist(t *testing.T) {
	for _, f := range Functions {
		for _, name := range f.Related {
			if _, ok := find(name); !ok {
				t.Errorf("%s lists unknown related function %q", f.Name, name)
			}
		}
	}
}

func TestExportedName(t *testing.T) {
	tests := map[string]string{"pipe": "Pipe", "tryCatch": "TryCatch", "": ""}
	for in, want := range tests {
		if got := ExportedName(in); got != want {
			t.Errorf("ExportedName(%q) = %q, want %q", in, got, want)
		}
	}
}
