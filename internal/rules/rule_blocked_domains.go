package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tracker-tv/workflow-linter/models"
)

const blockedDomainsID = "check_blocked_domains"

var domainPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}(?:/\S*)?`)

type blockedDomains struct {
	base
	blocked []string
}

func newBlockedDomains(env Env, level Level) Rule {
	var blocked []string
	for _, d := range env.Settings.BlockedDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			blocked = append(blocked, d)
		}
	}
	return &blockedDomains{
		base:    base{id: blockedDomainsID, kinds: models.KindAll, level: level},
		blocked: blocked,
	}
}

// field is a piece of free text and where it was found.
type field struct {
	where string
	text  string
}

func (r *blockedDomains) Check(_ context.Context, node models.Node) (bool, string, error) {
	if len(r.blocked) == 0 {
		return true, "", nil
	}

	var hits []string
	for _, f := range textFields(node) {
		for _, d := range extractDomains(f.text) {
			if r.isBlocked(d) {
				hits = append(hits, fmt.Sprintf("Found blocked domain '%s' in %s", d, f.where))
			}
		}
	}

	if len(hits) > 0 {
		return false, strings.Join(hits, "; "), nil
	}
	return true, "", nil
}

func (r *blockedDomains) isBlocked(domain string) bool {
	for _, b := range r.blocked {
		if isBlockedBy(domain, b) {
			return true
		}
	}
	return false
}

// isBlockedBy reports whether domain equals entry or is a subdomain of it.
func isBlockedBy(domain, entry string) bool {
	d := strings.ToLower(domain)
	b := strings.ToLower(entry)
	return d == b || strings.HasSuffix(d, "."+b)
}

// extractDomains returns the lowercased hosts found in text, deduplicated in
// first-seen order.
func extractDomains(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	for _, m := range domainPattern.FindAllString(text, -1) {
		d := strings.ToLower(m)
		d = strings.TrimPrefix(d, "https://")
		d = strings.TrimPrefix(d, "http://")
		d = strings.TrimPrefix(d, "www.")
		if i := strings.IndexByte(d, '/'); i >= 0 {
			d = d[:i]
		}
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

func textFields(node models.Node) []field {
	var fields []field
	add := func(where, text string) {
		if text != "" {
			fields = append(fields, field{where: where, text: text})
		}
	}
	addMapping := func(prefix string, m models.Mapping) {
		for _, e := range m {
			add(fmt.Sprintf("%s '%s'", prefix, e.Key), e.Value)
		}
	}

	switch n := node.(type) {
	case *models.Workflow:
		add("workflow name", n.Name)
	case *models.Job:
		add("job name", n.Name)
		add("job uses", n.Uses)
		addMapping("job env", n.Env)
		addMapping("job with", n.With)
	case *models.Step:
		add("step name", n.Name)
		add("step uses", n.Uses)
		add("step run command", n.Run)
		addMapping("step env", n.Env)
		addMapping("step with", n.With)
	}
	return fields
}
