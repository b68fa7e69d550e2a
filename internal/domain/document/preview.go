package document

import (
	"fmt"
	"strings"

	"github.com/khoahotran/professional-ladder/internal/domain/profile"
)

const (
	PlaceholderName  = "Your Name"
	PlaceholderTitle = "Professional Title"
	EmptyPublicView  = "No public information available yet"
)

// PublicText renders a public view the way a visitor would read it.
func PublicText(v profile.PublicView) string {
	info := v.PersonalInfo
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n", orDefault(info.Name, PlaceholderName), orDefault(info.Title, PlaceholderTitle))
	for _, line := range []string{info.Email, info.Phone, info.LinkedIn, info.Website} {
		if line != "" {
			b.WriteString(line + "\n")
		}
	}
	if info.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", info.Summary)
	}

	if !v.HasPublicContent() {
		fmt.Fprintf(&b, "\n%s\n", EmptyPublicView)
		return strings.TrimSpace(b.String())
	}

	for _, c := range v.Sections() {
		fmt.Fprintf(&b, "\n%s\n%s\n", c.Title(), lightRule)
		for _, it := range v.Items(c) {
			b.WriteString("▪ " + summaryLine(it) + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func summaryLine(it profile.Item) string {
	var parts []string
	for _, f := range it.Fields() {
		if f.Value != "" {
			parts = append(parts, f.Value)
		}
	}
	return strings.Join(parts, " | ")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
