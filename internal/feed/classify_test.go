package feed

import (
	"fmt"
	"testing"

	"github.com/google/go-github/v33/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repo(name string, fork bool) *github.Repository {
	return &github.Repository{
		Name:    github.String(name),
		HTMLURL: github.String("https://github.com/samyog7901/" + name),
		Fork:    github.Bool(fork),
	}
}

func TestMapRepository_ScenarioA(t *testing.T) {
	r := &github.Repository{
		Name:        github.String("my-app"),
		Fork:        github.Bool(false),
		Description: nil,
		Homepage:    github.String(""),
		Topics:      []string{},
		Language:    github.String("TypeScript"),
		HTMLURL:     github.String("https://github.com/samyog7901/my-app"),
	}

	p := MapRepository(r)
	assert.Equal(t, "my app", p.Title)
	assert.Equal(t, DefaultDescription, p.Description)
	assert.Equal(t, []string{"TypeScript"}, p.Tags)
	assert.Equal(t, "https://github.com/samyog7901/my-app", p.CodeURL)
	assert.Empty(t, p.DemoURL)
	assert.False(t, p.HasDemo())
	assert.True(t, p.Featured)
}

func TestMapRepository_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		repo     *github.Repository
		wantTags []string
		wantDesc string
		wantDemo string
	}{
		{
			name:     "topics win over language",
			repo:     &github.Repository{Name: github.String("a"), Topics: []string{"go", "cli"}, Language: github.String("Go")},
			wantTags: []string{"go", "cli"},
			wantDesc: DefaultDescription,
		},
		{
			name:     "topics capped",
			repo:     &github.Repository{Name: github.String("a"), Topics: []string{"a", "b", "c", "d", "e", "f"}},
			wantTags: []string{"a", "b", "c", "d"},
			wantDesc: DefaultDescription,
		},
		{
			name:     "no topics no language",
			repo:     &github.Repository{Name: github.String("a")},
			wantTags: []string{DefaultTag},
			wantDesc: DefaultDescription,
		},
		{
			name:     "blank description",
			repo:     &github.Repository{Name: github.String("a"), Description: github.String("   "), Language: github.String("")},
			wantTags: []string{DefaultTag},
			wantDesc: DefaultDescription,
		},
		{
			name:     "description and homepage kept",
			repo:     &github.Repository{Name: github.String("a"), Description: github.String("Real one"), Homepage: github.String(" https://a.vercel.app ")},
			wantTags: []string{DefaultTag},
			wantDesc: "Real one",
			wantDemo: "https://a.vercel.app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MapRepository(tt.repo)
			assert.Equal(t, tt.wantTags, p.Tags)
			assert.Equal(t, tt.wantDesc, p.Description)
			assert.Equal(t, tt.wantDemo, p.DemoURL)
		})
	}
}

func TestMapRepository_Deterministic(t *testing.T) {
	r := &github.Repository{
		Name:        github.String("multi-word-name"),
		Description: github.String("desc"),
		Homepage:    github.String("https://x.netlify.app"),
		Topics:      []string{"one", "two"},
		HTMLURL:     github.String("https://github.com/o/multi-word-name"),
	}
	assert.Equal(t, MapRepository(r), MapRepository(r))
	assert.Equal(t, "multi word name", MapRepository(r).Title)
}

func TestClassify_DropsForksPreservesOrder(t *testing.T) {
	repos := []*github.Repository{repo("one", false), repo("two", true), repo("three", false)}

	res := Classifier{Policy: PolicyAll}.Classify(repos)
	require.False(t, res.UsingSample)
	require.Len(t, res.Projects, 2)
	assert.Equal(t, "one", res.Projects[0].Title)
	assert.Equal(t, "three", res.Projects[1].Title)
}

func TestClassify_AllForks_ScenarioD(t *testing.T) {
	repos := []*github.Repository{repo("a", true), repo("b", true)}

	res := Classifier{}.Classify(repos)
	assert.True(t, res.UsingSample)
	assert.Equal(t, ReasonZeroQualifying, res.Reason)
	assert.Equal(t, FallbackCatalog(), res.Projects)
}

func TestClassify_Empty(t *testing.T) {
	res := Classifier{}.Classify(nil)
	assert.True(t, res.UsingSample)
	assert.Equal(t, ReasonEmptyResult, res.Reason)
}

func TestClassify_Policies(t *testing.T) {
	withDemo := func(name, home string) *github.Repository {
		r := repo(name, false)
		r.Homepage = github.String(home)
		return r
	}
	repos := []*github.Repository{
		withDemo("vercel", "https://vercel-thing.vercel.app"),
		withDemo("custom", "https://example.com"),
		withDemo("none", ""),
		withDemo("pages", "samyog.github.io/site"),
	}

	tests := []struct {
		policy Policy
		want   []string
	}{
		{PolicyAll, []string{"vercel", "custom", "none", "pages"}},
		{PolicyAnyDemo, []string{"vercel", "custom", "pages"}},
		{PolicyHosted, []string{"vercel", "pages"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			res := Classifier{Policy: tt.policy}.Classify(repos)
			require.False(t, res.UsingSample)
			var got []string
			for _, p := range res.Projects {
				got = append(got, p.Title)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_HostedCustomAllowList(t *testing.T) {
	r := repo("site", false)
	r.Homepage = github.String("https://site.vercel.app")

	res := Classifier{Policy: PolicyHosted, Hosts: []string{"netlify.app"}}.Classify([]*github.Repository{r})
	assert.True(t, res.UsingSample)
	assert.Equal(t, ReasonZeroQualifying, res.Reason)
}

func TestClassify_StatusBadges(t *testing.T) {
	hosted := repo("hosted", false)
	hosted.Homepage = github.String("https://hosted.vercel.app")
	custom := repo("custom", false)
	custom.Homepage = github.String("https://example.com")
	none := repo("none", false)

	res := Classifier{StatusBadges: true}.Classify([]*github.Repository{hosted, custom, none})
	require.Len(t, res.Projects, 3)
	assert.Equal(t, "Frontend", res.Projects[0].Status)
	assert.Empty(t, res.Projects[1].Status)
	assert.Equal(t, "Not deployed", res.Projects[2].Status)

	res = Classifier{}.Classify([]*github.Repository{none})
	assert.Empty(t, res.Projects[0].Status)
}

func TestClassify_SkipsNil(t *testing.T) {
	res := Classifier{}.Classify([]*github.Repository{nil, repo("kept", false)})
	require.Len(t, res.Projects, 1)
	assert.Equal(t, "kept", res.Projects[0].Title)
}

func TestHostAllowed(t *testing.T) {
	hosts := DefaultHosts
	tests := []struct {
		in   string
		want bool
	}{
		{"https://app.vercel.app", true},
		{"https://vercel.app", true},
		{"http://APP.Vercel.App:443/path", true},
		{"app.netlify.app", true},
		{"https://notvercel.app", false},
		{"https://vercel.app.evil.com", false},
		{"https://example.com", false},
		{"", false},
		{"#", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HostAllowed(tt.in, hosts))
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{
		"":         PolicyAll,
		"all":      PolicyAll,
		" Hosted ": PolicyHosted,
		"any-demo": PolicyAnyDemo,
	} {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("vercel-only")
	assert.Error(t, err)

	var p Policy
	require.NoError(t, p.UnmarshalText([]byte("any-demo")))
	assert.Equal(t, PolicyAnyDemo, p)
	assert.Error(t, p.UnmarshalText([]byte("bogus")))
}

func TestFallbackCatalog_IsCopy(t *testing.T) {
	a := FallbackCatalog()
	require.NotEmpty(t, a)
	a[0].Title = "mutated"
	a[0].Tags[0] = "mutated"

	b := FallbackCatalog()
	assert.Equal(t, "Online Bookshop System", b[0].Title)
	assert.Equal(t, "Node.js", b[0].Tags[0])
	for _, p := range b {
		assert.False(t, p.HasDemo(), fmt.Sprintf("%s should have no demo", p.Title))
	}
}
