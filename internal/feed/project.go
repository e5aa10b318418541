package feed

// Project is the display model of one card in the projects grid.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CodeURL     string   `json:"github"`
	DemoURL     string   `json:"demo"`
	Featured    bool     `json:"featured"`
	Status      string   `json:"status,omitempty"`
}

// HasDemo reports whether the card should render a demo link.
// "#" is the placeholder the hand-written catalog historically used.
func (p Project) HasDemo() bool {
	return p.DemoURL != "" && p.DemoURL != "#"
}

// VisibleTags returns at most MaxTags tags.
func (p Project) VisibleTags() []string {
	if len(p.Tags) > MaxTags {
		return p.Tags[:MaxTags]
	}
	return p.Tags
}

// Reason records why the feed is showing sample data.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNetworkFailure   Reason = "NetworkFailure"
	ReasonNonSuccessStatus Reason = "NonSuccessStatus"
	ReasonEmptyResult      Reason = "EmptyResult"
	ReasonZeroQualifying   Reason = "ZeroQualifyingAfterFilter"
)

// Result is a settled feed: either live projects or the fallback catalog.
type Result struct {
	Projects    []Project `json:"projects"`
	UsingSample bool      `json:"using_sample"`
	Reason      Reason    `json:"reason,omitempty"`
}

func fallbackResult(r Reason) Result {
	return Result{Projects: FallbackCatalog(), UsingSample: true, Reason: r}
}

const (
	MaxTags = 4

	// DefaultDescription stands in for repositories without a description.
	DefaultDescription = "A project showcasing development skills and practical implementations."

	// DefaultTag is used when a repository has neither topics nor a language.
	DefaultTag = "Code"
)

var fallbackCatalog = []Project{
	{
		Title:       "Online Bookshop System",
		Description: "A comprehensive online bookshop with full CRUD backend functionality. Features include book management, user authentication, and order processing.",
		Tags:        []string{"Node.js", "Express", "MongoDB", "REST API"},
		CodeURL:     "https://github.com/samyog7901",
		Featured:    true,
	},
	{
		Title:       "Web Development Portfolio",
		Description: "A showcase project demonstrating practical web development skills with modern UI/UX design principles and responsive layouts.",
		Tags:        []string{"React", "Tailwind CSS", "Next.js"},
		CodeURL:     "https://github.com/samyog7901",
		Featured:    true,
	},
	{
		Title:       "MERN Stack Project",
		Description: "An ongoing full-stack project built with the MERN stack (MongoDB, Express, React, Node.js) featuring real-time updates and modern architecture.",
		Tags:        []string{"MongoDB", "Express", "React", "Node.js"},
		CodeURL:     "https://github.com/samyog7901",
		Featured:    true,
	},
}

// FallbackCatalog returns a copy of the hand-written sample projects shown
// whenever live data is unavailable. It is never empty.
func FallbackCatalog() []Project {
	out := make([]Project, len(fallbackCatalog))
	for i, p := range fallbackCatalog {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}
