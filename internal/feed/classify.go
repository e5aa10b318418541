package feed

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v33/github"
)

// Policy selects which mapped repositories are shown.
type Policy string

const (
	// PolicyAll shows every non-fork repository.
	PolicyAll Policy = "all"
	// PolicyAnyDemo shows only repositories with a homepage.
	PolicyAnyDemo Policy = "any-demo"
	// PolicyHosted shows only repositories deployed to an allow-listed host.
	PolicyHosted Policy = "hosted"
)

// DefaultHosts are the static-hosting domains PolicyHosted accepts.
var DefaultHosts = []string{"vercel.app", "netlify.app", "github.io", "pages.dev"}

// ParsePolicy accepts the names used in FEED_FILTER.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyAll, nil
	case PolicyAll, PolicyAnyDemo, PolicyHosted:
		return p, nil
	default:
		return "", fmt.Errorf("unknown feed filter %q (want all, any-demo or hosted)", s)
	}
}

// UnmarshalText lets the policy be read straight from the environment.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Classifier turns raw repositories into display projects.
type Classifier struct {
	Policy Policy
	Hosts  []string
	// StatusBadges fills Project.Status with "Frontend" / "Not deployed".
	StatusBadges bool
}

// Classify drops forks, maps the rest, applies the policy and substitutes
// the fallback catalog when nothing qualifies. Input order is preserved.
func (c Classifier) Classify(repos []*github.Repository) Result {
	if len(repos) == 0 {
		return fallbackResult(ReasonEmptyResult)
	}

	projects := make([]Project, 0, len(repos))
	for _, r := range repos {
		if r == nil || r.GetFork() {
			continue
		}
		p := c.Map(r)
		if !c.admits(p) {
			continue
		}
		projects = append(projects, p)
	}

	if len(projects) == 0 {
		return fallbackResult(ReasonZeroQualifying)
	}
	return Result{Projects: projects}
}

// Map converts one repository, applying the badge setting.
func (c Classifier) Map(r *github.Repository) Project {
	p := MapRepository(r)
	if c.StatusBadges {
		switch {
		case !p.HasDemo():
			p.Status = "Not deployed"
		case c.hosted(p.DemoURL):
			p.Status = "Frontend"
		}
	}
	return p
}

func (c Classifier) admits(p Project) bool {
	switch c.Policy {
	case PolicyAnyDemo:
		return p.HasDemo()
	case PolicyHosted:
		return p.HasDemo() && c.hosted(p.DemoURL)
	default:
		return true
	}
}

func (c Classifier) hosted(demo string) bool {
	hosts := c.Hosts
	if len(hosts) == 0 {
		hosts = DefaultHosts
	}
	return HostAllowed(demo, hosts)
}

// MapRepository is a pure conversion; nil or blank fields take defaults.
func MapRepository(r *github.Repository) Project {
	return Project{
		Title:       strings.ReplaceAll(r.GetName(), "-", " "),
		Description: orDefault(r.GetDescription(), DefaultDescription),
		Tags:        tagsFor(r),
		CodeURL:     r.GetHTMLURL(),
		DemoURL:     strings.TrimSpace(r.GetHomepage()),
		Featured:    true,
	}
}

func tagsFor(r *github.Repository) []string {
	var tags []string
	for _, t := range r.Topics {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
		if len(tags) == MaxTags {
			break
		}
	}
	if len(tags) > 0 {
		return tags
	}
	return []string{orDefault(r.GetLanguage(), DefaultTag)}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// HostAllowed reports whether the URL's host is one of hosts or a
// subdomain of one. Scheme-less values such as "app.vercel.app" are
// accepted.
func HostAllowed(raw string, hosts []string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h), "."))
		if h == "" {
			continue
		}
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
