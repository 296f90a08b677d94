package pipeline

import "strings"

// Template placeholders replaced during page assembly.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ApplyTemplate substitutes the title and rendered content into the
// page template. Placeholders absent from the template are simply not
// substituted; the template author decides what the page carries.
func ApplyTemplate(template, title, content string) string {
	page := strings.ReplaceAll(template, TitlePlaceholder, title)
	page = strings.ReplaceAll(page, ContentPlaceholder, content)
	return page
}
