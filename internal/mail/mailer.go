package mail

import (
	"html"
	"strings"
)

// Mailer is the outbound delivery collaborator. Implementations report
// delivery failure through the error; callers treat a failed send as
// non-fatal and do not retry.
type Mailer interface {
	Send(fromName, toEmail, toName, subject, htmlBody, altText string) error
}

// RenderTemplate substitutes client placeholders into an admin-written
// body and produces the HTML and plain-text variants.
func RenderTemplate(body string, vars map[string]string) (htmlBody, altText string) {
	replacements := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		replacements = append(replacements, "{{"+k+"}}", v)
	}
	altText = strings.NewReplacer(replacements...).Replace(body)
	htmlBody = strings.ReplaceAll(html.EscapeString(altText), "\n", "<br>")
	return htmlBody, altText
}
