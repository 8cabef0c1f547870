package shopping

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

const (
	markChecked   = "✓"
	markUnchecked = "☐"
)

// Subject returns the email subject for a recipe's shopping list
func Subject(recipeName string) string {
	return "🛒 Shopping List: " + recipeName
}

// RenderPlainText renders sections as the plain-text email body:
//
//	Shopping List - Pancakes
//	2 servings
//
//	🥛 Dairy & Eggs
//	  ☐ 1 cup milk
func RenderPlainText(recipeName string, servings int, sections []Section) string {
	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		lines := make([]string, 0, len(s.Items))
		for _, item := range s.Items {
			lines = append(lines, fmt.Sprintf("  %s %s", mark(item.Checked), item.Display))
		}
		blocks = append(blocks, fmt.Sprintf("%s %s\n%s", s.Emoji, s.Name, strings.Join(lines, "\n")))
	}

	return fmt.Sprintf("Shopping List - %s\n%d servings\n\n%s", recipeName, servings, strings.Join(blocks, "\n\n"))
}

// PlainText renders the list as a plain-text email body
func (l *List) PlainText() string {
	return RenderPlainText(l.RecipeName, l.Servings, l.Sections)
}

var htmlBody = template.Must(template.New("shopping-list").Funcs(template.FuncMap{"mark": mark}).Parse(`<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"></head>
  <body style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 24px;">
    <h1 style="text-align: center;">🛒 Shopping List</h1>
    <p style="text-align: center; color: #6b7280;">{{.RecipeName}} • {{.Servings}} servings</p>
    {{- range .Sections}}
    <h3>{{.Emoji}} {{.Name}}</h3>
    <ul style="list-style: none; padding: 0;">
      {{- range .Items}}
      <li{{if .Checked}} style="text-decoration: line-through; color: #9ca3af;"{{end}}>{{mark .Checked}} {{.Display}}</li>
      {{- end}}
    </ul>
    {{- end}}
  </body>
</html>
`))

// RenderHTML renders sections as the HTML email body. User supplied text
// is escaped.
func RenderHTML(recipeName string, servings int, sections []Section) (string, error) {
	var buf bytes.Buffer
	data := struct {
		RecipeName string
		Servings   int
		Sections   []Section
	}{recipeName, servings, sections}

	if err := htmlBody.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render shopping list: %w", err)
	}
	return buf.String(), nil
}

func mark(checked bool) string {
	if checked {
		return markChecked
	}
	return markUnchecked
}
