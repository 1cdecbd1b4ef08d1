package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// Inline styles only; most mail clients drop <style> blocks.
var htmlTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Subject}}</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:Arial,Helvetica,sans-serif;color:#18181b;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f5;padding:24px 0;">
<tr><td align="center">
<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;background-color:#ffffff;border-radius:8px;">
{{- if .Logo}}
<tr><td style="padding:24px 32px 0 32px;"><img src="{{.Logo}}" alt="" height="40" style="display:block;height:40px;border:0;"></td></tr>
{{- end}}
<tr><td style="padding:24px 32px 8px 32px;font-size:16px;line-height:24px;">
<p style="margin:0 0 16px 0;">{{.Greeting}}</p>
<p style="margin:0;">{{.Intro}}</p>
</td></tr>
<tr><td style="padding:16px 32px;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="border-collapse:collapse;font-size:14px;line-height:20px;">
{{- range .Rows}}
<tr>
<td style="padding:8px 0;border-bottom:1px solid #e4e4e7;color:#52525b;">{{.Label}}</td>
<td style="padding:8px 0;border-bottom:1px solid #e4e4e7;text-align:right;{{if .Emphasis}}font-weight:bold;{{end}}">{{.Value}}</td>
</tr>
{{- end}}
</table>
</td></tr>
{{- if .ActionURL}}
<tr><td align="center" style="padding:8px 32px 16px 32px;"><a href="{{.ActionURL}}" style="display:inline-block;padding:12px 24px;background-color:#18181b;color:#ffffff;text-decoration:none;border-radius:6px;font-weight:bold;">{{.ActionLabel}}</a></td></tr>
{{- end}}
<tr><td style="padding:16px 32px 32px 32px;font-size:14px;line-height:20px;color:#52525b;">
<p style="margin:0 0 16px 0;">{{.Outro}}</p>
<p style="margin:0;">{{.Signature}}<br><em>{{.Slogan}}</em></p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>
`))

type htmlData struct {
	Lang        string
	Subject     string
	Logo        template.URL
	Greeting    string
	Intro       string
	Rows        []Row
	ActionURL   string
	ActionLabel string
	Outro       string
	Signature   string
	Slogan      string
}

// RenderHTML produces the HTML body. Every dynamic value goes through
// html/template's contextual escaping; only the logo source, which comes from
// configuration, is trusted as a URL.
func RenderHTML(c Content) (string, error) {
	data := htmlData{
		Lang:        c.Copy.Locale,
		Subject:     c.Subject(),
		Logo:        template.URL(c.LogoSrc),
		Greeting:    c.Copy.Greeting(c.RecipientName),
		Intro:       c.Intro(),
		Rows:        c.Rows(),
		ActionURL:   c.ActionURL,
		ActionLabel: c.Copy.BookingRequestAction,
		Outro:       c.Copy.Outro,
		Signature:   c.Copy.Signature,
		Slogan:      c.Copy.Slogan,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering html email: %w", err)
	}
	return buf.String(), nil
}
