package mail

import "strings"

// RenderText produces the plain text body.
func RenderText(c Content) string {
	lines := []string{
		c.Copy.Greeting(c.RecipientName),
		"",
		c.Intro(),
		"",
	}
	for _, r := range c.Rows() {
		lines = append(lines, r.Label+": "+r.Value)
	}
	if c.ActionURL != "" {
		lines = append(lines, "", c.Copy.BookingRequestAction+": "+c.ActionURL)
	}
	lines = append(lines, "", c.Copy.Outro, "", c.Copy.Signature, c.Copy.Slogan)
	return strings.Join(lines, "\n")
}
