package main

import (
	"fmt"

	"github.com/lerenn/issues-migrate/pkg/config"
	"github.com/lerenn/issues-migrate/pkg/logger"
	"github.com/lerenn/issues-migrate/pkg/migration"
	"github.com/lerenn/issues-migrate/pkg/prompt"
	"github.com/lerenn/issues-migrate/pkg/template"
	"github.com/lerenn/issues-migrate/pkg/tracker"
	"github.com/spf13/cobra"
)

var (
	sources  []string
	target   string
	username string
	token    string

	selectAll    bool
	selectOpen   bool
	selectClosed bool
	issueNumbers []int

	ignoreComments  bool
	ignoreMilestone bool
	ignoreLabels    bool
	ignoreAssignee  bool
	noBackrefs      bool
	closeIssues     bool
	normalizeLabels bool

	dateFormat          string
	issueTemplate       string
	commentTemplate     string
	pullRequestTemplate string
)

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "issues-migrate",
		Short: "Migrate GitHub issues between repositories",
		Long: `Migrate issues, comments, labels and milestones from one or more source ` +
			`repositories into a single target repository, preserving chronological ` +
			`order and rewriting cross-references. Nothing is written before an ` +
			`interactive confirmation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigration(cmd)
		},
	}

	rootCmd.Flags().StringSliceVarP(&sources, "sources", "s", nil,
		"Source repositories as owner/repo (repeatable)")
	rootCmd.Flags().StringVarP(&target, "target", "t", "", "Target repository as owner/repo")
	rootCmd.Flags().StringVarP(&username, "username", "u", "", "Username for authentication")
	rootCmd.Flags().StringVar(&token, "token", "", "Access token for authentication")

	rootCmd.Flags().BoolVar(&selectAll, "all", false, "Migrate all issues")
	rootCmd.Flags().BoolVar(&selectOpen, "open", false, "Migrate only open issues")
	rootCmd.Flags().BoolVar(&selectClosed, "closed", false, "Migrate only closed issues")
	rootCmd.Flags().IntSliceVarP(&issueNumbers, "issues", "i", nil,
		"Migrate only the given issue numbers (repeatable)")

	rootCmd.Flags().BoolVar(&ignoreComments, "ignore-comments", false, "Do not migrate comments")
	rootCmd.Flags().BoolVar(&ignoreMilestone, "ignore-milestone", false, "Do not migrate milestones")
	rootCmd.Flags().BoolVar(&ignoreLabels, "ignore-labels", false, "Do not migrate labels")
	rootCmd.Flags().BoolVar(&ignoreAssignee, "ignore-assignee", false, "Do not migrate assignees")
	rootCmd.Flags().BoolVar(&noBackrefs, "no-backrefs", false,
		"Do not patch original issues with a migrated marker")
	rootCmd.Flags().BoolVar(&closeIssues, "close-issues", false, "Close original issues after migration")
	rootCmd.Flags().BoolVar(&normalizeLabels, "normalize-labels", false,
		"Lowercase and hyphenate label names before matching")

	rootCmd.Flags().StringVar(&dateFormat, "date-format", "", "Go time layout for rendered dates")
	rootCmd.Flags().StringVar(&issueTemplate, "issue-template", "",
		"Path to a custom template for migrated issue bodies")
	rootCmd.Flags().StringVar(&commentTemplate, "comment-template", "",
		"Path to a custom template for migrated comment bodies")
	rootCmd.Flags().StringVar(&pullRequestTemplate, "pull-request-template", "",
		"Path to a custom template for migrated pull request bodies")

	return rootCmd
}

func runMigration(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags, err := migrationFlags()
	if err != nil {
		return err
	}

	prompter := prompt.NewPrompt()

	if err := promptForMissingCredentials(cfg, &flags, prompter); err != nil {
		return err
	}

	resolved, err := config.Resolve(cfg, flags)
	if err != nil {
		return err
	}

	renderer, err := template.NewRenderer(resolved.Format)
	if err != nil {
		return err
	}

	migrator := migration.NewMigrator(migration.NewMigratorParams{
		Config:          resolved,
		Logger:          runLogger(),
		Prompt:          prompter,
		Renderer:        renderer,
		TrackerProvider: tracker.NewGitHub,
		Verbose:         verbose,
	})

	return migrator.Run(cmd.Context())
}

// migrationFlags assembles the resolution flags from the command line. The
// three state filters are mutually exclusive.
func migrationFlags() (config.Flags, error) {
	var filter string
	count := 0
	for _, f := range []struct {
		set  bool
		name string
	}{
		{selectAll, config.FilterAll},
		{selectOpen, config.FilterOpen},
		{selectClosed, config.FilterClosed},
	} {
		if f.set {
			filter = f.name
			count++
		}
	}
	if count > 1 {
		return config.Flags{}, fmt.Errorf("at most one of --all, --open and --closed may be given")
	}

	return config.Flags{
		Sources:  sources,
		Target:   target,
		Username: username,
		Token:    token,

		Filter:  filter,
		Numbers: issueNumbers,

		IgnoreComments:  ignoreComments,
		IgnoreMilestone: ignoreMilestone,
		IgnoreLabels:    ignoreLabels,
		IgnoreAssignee:  ignoreAssignee,
		NoBackrefs:      noBackrefs,
		CloseIssues:     closeIssues,
		NormalizeLabels: normalizeLabels,

		DateFormat:          dateFormat,
		IssueTemplate:       issueTemplate,
		CommentTemplate:     commentTemplate,
		PullRequestTemplate: pullRequestTemplate,
	}, nil
}

// promptForMissingCredentials asks for a token interactively when neither
// the flags, the global config nor any per-repository section carries one.
func promptForMissingCredentials(cfg *config.Config, flags *config.Flags, prompter prompt.Prompter) error {
	if flags.Token != "" || hasConfiguredToken(cfg) {
		return nil
	}

	if flags.Username == "" && cfg.Login.Username == "" {
		name, err := prompter.PromptForUsername("GitHub username: ")
		if err != nil {
			return err
		}
		flags.Username = name
	}

	entered, err := prompter.PromptForToken("GitHub access token: ")
	if err != nil {
		return err
	}
	flags.Token = entered

	return nil
}

func hasConfiguredToken(cfg *config.Config) bool {
	if cfg.Login.Token != "" {
		return true
	}
	for _, repoCfg := range cfg.Repositories {
		if repoCfg.Token != "" {
			return true
		}
	}
	return false
}

func runLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}
