package mail

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
)

// Checked in order when no logo URL is configured.
var logoFiles = []string{"email-logo.png", "logo.png"}

// Logo is resolved once at startup. The zero value means no logo, and is kept
// as such so the filesystem is never probed again.
type Logo struct {
	src string
}

// ResolveLogo prefers the configured URL and otherwise embeds the first
// readable local logo file as a data URI.
func ResolveLogo(url, dir string) Logo {
	if url = strings.TrimSpace(url); url != "" {
		return Logo{src: url}
	}
	for _, name := range logoFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil || len(data) == 0 {
			continue
		}
		return Logo{src: "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)}
	}
	return Logo{}
}

// Src is the value for an img src attribute, empty when there is no logo.
func (l Logo) Src() string {
	return l.src
}
