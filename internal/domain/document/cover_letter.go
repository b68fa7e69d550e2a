package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/khoahotran/professional-ladder/internal/domain/profile"
)

// DateLayout is the long en-US date, e.g. "March 5, 2025".
const DateLayout = "January 2, 2006"

const (
	fallbackExperience = "Throughout my career, I have developed expertise in delivering exceptional results."
	developmentLine    = "I am committed to continuous professional development, regularly attending industry conferences and workshops to stay current with best practices and emerging trends."

	maxSkills       = 3
	maxCertificates = 2
)

type CoverLetterRequest struct {
	JobTitle    string
	CompanyName string
}

// CoverLetter renders a cover letter for req dated on date. The request is
// expected to be validated by the caller.
func CoverLetter(p *profile.Profile, req CoverLetterRequest, date time.Time) string {
	info := p.PersonalInfo
	paragraphs := []string{
		fmt.Sprintf("%s\n%s | %s\n%s", info.Name, info.Email, info.Phone, date.Format(DateLayout)),
		fmt.Sprintf("Hiring Manager\n%s", req.CompanyName),
		"Dear Hiring Manager,",
		fmt.Sprintf("I am writing to express my strong interest in the %s position at %s. %s", req.JobTitle, req.CompanyName, info.Summary),
		experienceParagraph(p),
		competenciesParagraph(p),
	}
	if len(p.Conferences) > 0 || len(p.Workshops) > 0 {
		paragraphs = append(paragraphs, developmentLine)
	}
	paragraphs = append(paragraphs,
		fmt.Sprintf("I am excited about the opportunity to contribute to %s and would welcome the chance to discuss how my background, skills, and enthusiasm can benefit your team. Thank you for considering my application.", req.CompanyName),
		"Sincerely,\n"+info.Name,
	)

	for i, para := range paragraphs {
		paragraphs[i] = strings.TrimSpace(para)
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
}

func experienceParagraph(p *profile.Profile) string {
	if len(p.Experience) == 0 {
		return fallbackExperience
	}
	recent := p.Experience[0]
	return fmt.Sprintf("In my recent role as %s at %s, %s", recent.Title, recent.Company, recent.Description)
}

func competenciesParagraph(p *profile.Profile) string {
	var b strings.Builder

	names := firstNames(p.Skills, maxSkills, func(s profile.Skill) string { return s.Name })
	if len(names) > 0 {
		fmt.Fprintf(&b, "My core competencies include %s, which I believe align perfectly with the requirements for this position.", strings.Join(names, ", "))
	} else {
		b.WriteString("I believe my background aligns perfectly with the requirements for this position.")
	}

	certs := firstNames(p.Certificates, maxCertificates, func(c profile.Certificate) string { return c.Name })
	if len(certs) > 0 {
		fmt.Fprintf(&b, " I have further strengthened my qualifications through professional certifications including %s.", strings.Join(certs, " and "))
	}
	return b.String()
}

func firstNames[T any](items []T, n int, name func(T) string) []string {
	items = items[:min(n, len(items))]
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, name(it))
	}
	return out
}
