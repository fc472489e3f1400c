// Package view renders the HTML pages from the embedded templates.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/gofiber/fiber/v2"
)

const (
	PageHome   = "home.html"
	PageMosque = "mosque.html"
	PageError  = "error.html"
)

// Page - data handed to the base layout
type Page struct {
	Title string
	Body  interface{}
}

// Renderer holds one template set per page, each layered on the base layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.ParseFS(fsys, "templates/base.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{PageHome, PageMosque, PageError} {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(fsys, "templates/"+name); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render writes page with the given status. The page is rendered into a buffer
// first so that a template failure never leaves half a document on the wire.
func (r *Renderer) Render(c *fiber.Ctx, status int, page string, data Page) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
