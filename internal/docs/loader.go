// Package docs loads the application reference documentation into memory.
package docs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	docx "github.com/fumiama/go-docx"
)

// Load reads the documentation file at path and returns its paragraph text in
// document order, blank paragraphs removed, joined with newlines. Any read or
// parse error is logged and yields an empty string so the service starts in a
// degraded state instead of failing.
func Load(path string) string {
	text, err := load(path)
	if err != nil {
		log.Error("loading documentation", "path", path, "err", err)
		return ""
	}
	return text
}

func load(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return loadDocx(path)
	}
	return loadText(path)
}

func loadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return joinParagraphs(strings.Split(string(b), "\n")), nil
}

func loadDocx(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", err
	}

	paras := make([]string, 0, len(doc.Document.Body.Items))
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paras = append(paras, p.String())
		}
	}
	return joinParagraphs(paras), nil
}

func joinParagraphs(paras []string) string {
	kept := make([]string, 0, len(paras))
	for _, p := range paras {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
