package contact

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	textTemplate "text/template"

	"github.com/sahilKumar1122/portfolio-api/internal/utils"
)

//go:embed templates/*
var templatesFS embed.FS

var (
	htmlTemplate = template.Must(
		template.New("contact.html").
			Funcs(template.FuncMap{"nl2br": nl2br}).
			ParseFS(templatesFS, "templates/contact.html"),
	)
	plainTemplate = textTemplate.Must(textTemplate.ParseFS(templatesFS, "templates/contact.txt"))
)

// nl2br escapes s and turns its line breaks into <br>.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func subject(name string) string {
	return fmt.Sprintf("Portfolio: %s sent you a message", name)
}

func renderHTML(s Submission) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderText(s Submission) (string, error) {
	var buf bytes.Buffer
	if err := plainTemplate.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// both templates are embedded, a failure here is a programming error
func init() {
	sample := Submission{Name: "n", Email: "e@x.io", Message: "m"}
	utils.Must(renderHTML(sample))
	utils.Must(renderText(sample))
}
