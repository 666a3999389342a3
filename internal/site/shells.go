package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/Masterminds/sprig/v3"

	"github.com/Zachkp/cvsite/internal/page"
)

// NavItem is one entry of the shared navigation bar.
type NavItem struct {
	Page  page.ID
	File  string
	Label string
}

var defaultNav = []NavItem{
	{Page: page.Home, File: "index.html", Label: "Home"},
	{Page: page.Experience, File: "experience.html", Label: "Experience"},
	{Page: page.Skills, File: "skills.html", Label: "Skills"},
	{Page: page.Education, File: "education.html", Label: "Education"},
	{Page: page.Certifications, File: "certifications.html", Label: "Certifications & Contact"},
}

// ShellData is what a page shell template sees.
type ShellData struct {
	Title   string
	Heading string
	Page    page.ID
	Nav     []NavItem
}

// shells are the parsed page templates plus the static files that ship with them.
type shells struct {
	tmpl   *template.Template
	pages  []string
	static []string
	fsys   fs.FS
}

func loadShells(fsys fs.FS) (*shells, error) {
	tmpl, err := template.New("").Funcs(sprig.FuncMap()).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page shells: %w", err)
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list page shells: %w", err)
	}
	s := &shells{tmpl: tmpl, fsys: fsys}
	for _, e := range entries {
		name := e.Name()
		switch {
		case e.IsDir(), strings.HasPrefix(name, "_"), strings.HasPrefix(name, "."):
		case path.Ext(name) == ".html":
			s.pages = append(s.pages, name)
		case path.Ext(name) != ".go":
			s.static = append(s.static, name)
		}
	}
	if len(s.pages) == 0 {
		return nil, fmt.Errorf("no page shells found")
	}
	return s, nil
}

// execute renders the shell file with data for the page it declares.
func (s *shells) execute(file string, data ShellData) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, file, data); err != nil {
		return nil, fmt.Errorf("execute shell %s: %w", file, err)
	}
	return buf.Bytes(), nil
}

func pageForFile(file string) page.ID {
	for _, n := range defaultNav {
		if n.File == file {
			return n.Page
		}
	}
	return page.ID(strings.TrimSuffix(file, path.Ext(file)))
}
