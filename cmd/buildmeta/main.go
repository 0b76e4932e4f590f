package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/git-pkgs/buildmeta/feed"
	"github.com/git-pkgs/buildmeta/quality"
	"github.com/git-pkgs/buildmeta/version"
)

var (
	semVerText   string
	nugetVerText string
	commitSHA    string
	commitDate   string
	filterText   string
	feedURL      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "buildmeta",
		Short: "Inspect and produce build/release version metadata",
		Long:  "buildmeta parses and formats the informational version strings embedded in compiled artifacts, and filters package versions by quality.",
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect <informational-version>",
		Short: "Parse an informational version string",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "Format an informational version string from its components",
		RunE:  runFormat,
	}
	formatCmd.Flags().StringVar(&semVerText, "semver", version.ZeroSemVersion, "Semantic version text")
	formatCmd.Flags().StringVar(&nugetVerText, "nuget", version.ZeroSemVersion, "NuGet version text")
	formatCmd.Flags().StringVar(&commitSHA, "sha", version.ZeroCommitSHA, "Commit SHA (40 hex characters)")
	formatCmd.Flags().StringVar(&commitDate, "date", "", "Commit date, RFC 3339 UTC (default: zero date)")

	checkCmd := &cobra.Command{
		Use:   "check <quality>",
		Short: "Check a quality against a range filter",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	checkCmd.Flags().StringVarP(&filterText, "filter", "f", "", "Quality range filter, e.g. \"ReleaseCandidate-Release\"")

	bestCmd := &cobra.Command{
		Use:   "best <package|purl>",
		Short: "Find the best published version within a quality range",
		Long:  "Accepts a plain package name or a Package URL; a pkg:nuget PURL may carry a repository_url qualifier selecting a private feed.",
		Args:  cobra.ExactArgs(1),
		RunE:  runBest,
	}
	bestCmd.Flags().StringVarP(&filterText, "filter", "f", "", "Quality range filter")
	bestCmd.Flags().StringVar(&feedURL, "feed", feed.DefaultURL, "Registration feed base URL")

	rootCmd.AddCommand(inspectCmd, formatCmd, checkCmd, bestCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	iv := version.ParseInformationalVersion(args[0])

	out := struct {
		Valid        bool   `yaml:"valid"`
		SemVersion   string `yaml:"semVersion,omitempty"`
		NuGetVersion string `yaml:"nugetVersion,omitempty"`
		Quality      string `yaml:"quality,omitempty"`
		CommitSHA    string `yaml:"commitSha,omitempty"`
		CommitDate   string `yaml:"commitDate,omitempty"`
	}{
		Valid:        iv.IsValid(),
		SemVersion:   iv.SemVersion().Text(),
		NuGetVersion: iv.NuGetVersion().Text(),
		CommitSHA:    iv.CommitSHA(),
	}
	if q := version.QualityOf(iv.SemVersion()); q.IsValid() {
		out.Quality = q.String()
	}
	if !iv.CommitDate().IsZero() {
		out.CommitDate = iv.CommitDate().Format(time.RFC3339)
	}

	encoded, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Print(string(encoded))

	if !iv.IsValid() {
		return fmt.Errorf("invalid informational version syntax")
	}
	return nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	date := version.ZeroCommitDate
	if commitDate != "" {
		parsed, err := time.Parse(time.RFC3339, commitDate)
		if err != nil {
			return fmt.Errorf("parsing commit date: %w", err)
		}
		date = parsed.UTC()
	}

	text, err := version.BuildInformationalVersion(semVerText, nugetVerText, commitSHA, date)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	q, ok := quality.ParseQuality(args[0])
	if !ok {
		return fmt.Errorf("unknown quality %q", args[0])
	}

	filter, err := quality.ParseFilter(filterText)
	if err != nil {
		return err
	}

	if !filter.Accepts(q) {
		return fmt.Errorf("%s is rejected by %s", q, filter)
	}
	fmt.Printf("%s is accepted by %s\n", q, filter)
	return nil
}

func runBest(cmd *cobra.Command, args []string) error {
	filter, err := quality.ParseFilter(filterText)
	if err != nil {
		return err
	}

	name := args[0]
	var best *feed.PackageVersion
	if strings.HasPrefix(name, "pkg:") {
		var f *feed.Feed
		f, name, _, err = feed.FromPURL(args[0], feed.NewClient())
		if err != nil {
			return err
		}
		best, err = f.Best(cmd.Context(), name, filter)
	} else {
		best, err = feed.New(feedURL, feed.NewClient()).Best(cmd.Context(), name, filter)
	}
	if err != nil {
		return fmt.Errorf("querying feed: %w", err)
	}
	if best == nil {
		return fmt.Errorf("no version of %s within %s", name, filter)
	}

	fmt.Printf("%s %s (%s)\n", name, best.Version, best.Quality)
	return nil
}
