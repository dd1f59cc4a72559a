package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Rorical/ZenPad/internal/models"
)

const (
	FallbackName = "zenpad-draft"
	Extension    = ".txt"

	maxNameRunes = 80
)

// FileName turns a title into a portable file name. Anything other than
// letters, digits and '_' collapses into a single '-'.
func FileName(title string) string {
	var b strings.Builder
	dash := false
	n := 0
	for _, r := range strings.TrimSpace(title) {
		if n >= maxNameRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			dash = false
			n++
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteRune('-')
			dash = true
			n++
		}
	}
	name := strings.Trim(b.String(), "-_")
	if name == "" {
		name = FallbackName
	}
	return name + Extension
}

// Body is the exported text: the title, a blank line, then the content.
func Body(d models.Draft) string {
	return d.Title + "\n\n" + d.Content
}

// Write stores the draft in dir and returns the file path. An existing
// export with the same name is replaced.
func Write(dir string, d models.Draft) (string, error) {
	d = d.Normalized()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(d.Title))
	if err := os.WriteFile(path, []byte(Body(d)), 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
