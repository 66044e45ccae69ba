// Package links builds public job-search URLs for role titles.
package links

import (
	"net/url"
	"strings"
)

// BuildSearchLinks returns public job search URLs for LinkedIn, Seek and
// Indeed. Presentation-layer data: the core pipeline never depends on it.
func BuildSearchLinks(role string) map[string]string {
	role = strings.TrimSpace(role)
	if role == "" {
		return map[string]string{}
	}

	q := url.QueryEscape(role)
	seekSlug := url.PathEscape(strings.ReplaceAll(role, " ", "-"))

	return map[string]string{
		"linkedin": "https://www.linkedin.com/jobs/search/?keywords=" + q,
		"seek":     "https://www.seek.com.au/" + seekSlug + "-jobs",
		"indeed":   "https://www.indeed.com/jobs?q=" + q,
	}
}
