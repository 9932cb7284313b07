package config

import (
	"fmt"
	"strings"
)

// Issue selection filters accepted by Resolve.
const (
	FilterAll    = "all"
	FilterOpen   = "open"
	FilterClosed = "closed"
)

// DefaultDateLayout is the Go time layout used for dates rendered into
// migrated bodies when the config does not override it.
const DefaultDateLayout = "Monday Jan 02, 2006 at 15:04 GMT"

// Flags carries the command-line options that participate in configuration
// resolution. Zero values mean "not set on the command line".
type Flags struct {
	Sources []string
	Target  string

	Username string
	Token    string

	// Filter is "all", "open" or "closed"; Numbers is an explicit issue
	// id set. At most one of the two may be set.
	Filter  string
	Numbers []int

	IgnoreComments  bool
	IgnoreMilestone bool
	IgnoreLabels    bool
	IgnoreAssignee  bool
	NoBackrefs      bool
	CloseIssues     bool
	NormalizeLabels bool

	DateFormat          string
	IssueTemplate       string
	CommentTemplate     string
	PullRequestTemplate string
}

// Selection describes which issues are fetched from each source.
type Selection struct {
	// Filter is one of FilterAll, FilterOpen, FilterClosed when Numbers
	// is empty.
	Filter string

	// Numbers is an explicit issue id set; when non-empty Filter is
	// ignored.
	Numbers []int
}

// RepoSettings is the effective per-repository configuration, computed once
// at resolve time.
type RepoSettings struct {
	Repository string
	Server     string
	APIBaseURL string
	Username   string
	Token      string

	ImportComments  bool
	ImportLabels    bool
	ImportMilestone bool
	ImportAssignee  bool
	CreateBackrefs  bool
	CloseIssues     bool
	NormalizeLabels bool
}

// Format is the resolved body templating configuration.
type Format struct {
	DateLayout          string
	IssueTemplate       string
	CommentTemplate     string
	PullRequestTemplate string
}

// Resolved is the immutable configuration value passed by reference into
// every component. Built once at startup; never mutated afterwards.
type Resolved struct {
	Sources   []string
	Target    string
	Selection Selection
	Format    Format

	// Repos maps each participating repository (sources and target) to
	// its effective settings.
	Repos map[string]RepoSettings
}

// ForRepository returns the effective settings for a repository.
func (r *Resolved) ForRepository(repo string) (RepoSettings, error) {
	settings, ok := r.Repos[strings.ToLower(repo)]
	if !ok {
		return RepoSettings{}, fmt.Errorf("%w: %s", ErrUnknownRepository, repo)
	}
	return settings, nil
}

// Resolve merges flags over the file configuration and produces the
// immutable resolved view. Repository identities are lowercased here, once,
// to match the tracker's case-insensitive semantics.
func Resolve(cfg *Config, flags Flags) (*Resolved, error) {
	sources := flags.Sources
	if len(sources) == 0 {
		sources = cfg.Sources
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	target := flags.Target
	if target == "" {
		target = cfg.Target
	}
	if target == "" {
		return nil, ErrNoTarget
	}

	selection, err := resolveSelection(cfg, flags)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Target:    strings.ToLower(target),
		Selection: selection,
		Format:    resolveFormat(cfg, flags),
		Repos:     make(map[string]RepoSettings),
	}

	for _, source := range sources {
		source = strings.ToLower(source)
		if err := validateRepository(source); err != nil {
			return nil, err
		}
		resolved.Sources = append(resolved.Sources, source)
		resolved.Repos[source] = resolveRepo(cfg, flags, source)
	}

	if err := validateRepository(resolved.Target); err != nil {
		return nil, err
	}
	if _, ok := resolved.Repos[resolved.Target]; !ok {
		resolved.Repos[resolved.Target] = resolveRepo(cfg, flags, resolved.Target)
	}

	return resolved, nil
}

// resolveSelection merges the issue selection from flags and config. Exactly
// one selection mode must end up chosen.
func resolveSelection(cfg *Config, flags Flags) (Selection, error) {
	if flags.Filter != "" && len(flags.Numbers) > 0 {
		return Selection{}, ErrConflictingSelection
	}

	if len(flags.Numbers) > 0 {
		return Selection{Numbers: flags.Numbers}, nil
	}

	filter := flags.Filter
	if filter == "" {
		filter = cfg.Issues
	}
	if filter == "" {
		return Selection{}, ErrNoSelection
	}

	switch filter {
	case FilterAll, FilterOpen, FilterClosed:
		return Selection{Filter: filter}, nil
	default:
		return Selection{}, fmt.Errorf("%w: %q", ErrInvalidSelection, filter)
	}
}

func resolveFormat(cfg *Config, flags Flags) Format {
	format := Format{
		DateLayout:          firstNonEmpty(flags.DateFormat, cfg.Format.Date, DefaultDateLayout),
		IssueTemplate:       firstNonEmpty(flags.IssueTemplate, cfg.Format.IssueTemplate),
		CommentTemplate:     firstNonEmpty(flags.CommentTemplate, cfg.Format.CommentTemplate),
		PullRequestTemplate: firstNonEmpty(flags.PullRequestTemplate, cfg.Format.PullRequestTemplate),
	}
	return format
}

// resolveRepo computes the effective settings for one repository: flag, then
// per-repository section, then global config, then the documented default.
func resolveRepo(cfg *Config, flags Flags, repo string) RepoSettings {
	repoCfg := repositoryConfig(cfg, repo)

	server := repoCfg.Server
	if server == "" {
		server = "github.com"
	}

	settings := RepoSettings{
		Repository: repo,
		Server:     server,
		APIBaseURL: apiBaseURL(server),
		Username:   firstNonEmpty(flags.Username, repoCfg.Username, cfg.Login.Username),
		Token:      firstNonEmpty(flags.Token, repoCfg.Token, cfg.Login.Token),

		ImportComments:  resolveBool(falseIf(flags.IgnoreComments), repoCfg.Import.Comments, cfg.Import.Comments, true),
		ImportLabels:    resolveBool(falseIf(flags.IgnoreLabels), repoCfg.Import.Labels, cfg.Import.Labels, true),
		ImportMilestone: resolveBool(falseIf(flags.IgnoreMilestone), repoCfg.Import.Milestone, cfg.Import.Milestone, true),
		ImportAssignee:  resolveBool(falseIf(flags.IgnoreAssignee), repoCfg.Import.Assignee, cfg.Import.Assignee, true),
		CreateBackrefs:  resolveBool(falseIf(flags.NoBackrefs), repoCfg.Backrefs, cfg.Backrefs, true),
		CloseIssues:     resolveBool(trueIf(flags.CloseIssues), repoCfg.CloseIssues, cfg.CloseIssues, false),
		NormalizeLabels: resolveBool(trueIf(flags.NormalizeLabels), repoCfg.NormalizeLabels, cfg.NormalizeLabels, false),
	}

	return settings
}

// repositoryConfig looks up the per-repository override section, matching
// keys case-insensitively.
func repositoryConfig(cfg *Config, repo string) RepositoryConfig {
	for key, repoCfg := range cfg.Repositories {
		if strings.ToLower(key) == repo {
			return repoCfg
		}
	}
	return RepositoryConfig{}
}

// resolveBool picks the effective value of a boolean option: command-line
// override first, then the per-repository section, then the global config,
// then the documented default.
func resolveBool(override, repoVal, globalVal *bool, def bool) bool {
	for _, v := range []*bool{override, repoVal, globalVal} {
		if v != nil {
			return *v
		}
	}
	return def
}

// falseIf returns a pointer to false when the negating flag was used.
func falseIf(set bool) *bool {
	if set {
		v := false
		return &v
	}
	return nil
}

// trueIf returns a pointer to true when the enabling flag was used.
func trueIf(set bool) *bool {
	if set {
		v := true
		return &v
	}
	return nil
}

func validateRepository(repo string) error {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("%w: %q (expected owner/repo)", ErrInvalidRepository, repo)
	}
	return nil
}

// apiBaseURL derives the REST API base URL for a server. Anything other
// than github.com is assumed to be a GitHub Enterprise host.
func apiBaseURL(server string) string {
	if server == "github.com" {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", server)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
