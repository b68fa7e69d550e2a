package document

import (
	"fmt"
	"net/url"
	"regexp"
)

const ContentType = "text/plain; charset=utf-8"

var whitespaceRun = regexp.MustCompile(`\s+`)

func underscored(s string) string {
	return whitespaceRun.ReplaceAllString(s, "_")
}

func ResumeFilename(name string) string {
	return underscored(name) + "_Resume.txt"
}

func CoverLetterFilename(req CoverLetterRequest) string {
	return fmt.Sprintf("Cover_Letter_%s_%s.txt", underscored(req.CompanyName), underscored(req.JobTitle))
}

// PublicProfileURL builds the shareable link for email on host.
func PublicProfileURL(host, email string) string {
	u := url.URL{Scheme: "https", Host: host, Path: "/profile/" + email}
	return u.String()
}
