// Package filer wires the command-line surface. The root command runs
// the generation itself; the only subcommands are version, help (with
// topics) and the hidden man-page generator.
package filer

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/filer/internal/version"
	"github.com/arthur-debert/filer/pkg/cobrax/topics"
	"github.com/arthur-debert/filer/pkg/commands/generate"
	"github.com/arthur-debert/filer/pkg/config"
	"github.com/arthur-debert/filer/pkg/errors"
	"github.com/arthur-debert/filer/pkg/filesystem"
	"github.com/arthur-debert/filer/pkg/logging"
	"github.com/arthur-debert/filer/pkg/style"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity       int
		matchPattern    string
		rebuildPattern  string
		commandPrefix   string
		directory       string
		includeDotfiles bool
		quoteNames      bool
	)

	rootCmd := &cobra.Command{
		Use:     "filer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			// Bare invocation: nothing to match, show help.
			if !flags.Changed("match") && !flags.Changed("rebuild") {
				return cmd.Help()
			}

			// Config file supplies defaults for the non-core options;
			// explicit flags always win.
			cfg, err := config.Load(filesystem.NewOS())
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring unreadable config file")
				cfg = config.Default()
			}
			if !flags.Changed("command") {
				commandPrefix = cfg.Command
			}
			if !flags.Changed("dir") && cfg.Directory != "" {
				directory = cfg.Directory
			}
			if !flags.Changed("all") {
				includeDotfiles = cfg.IncludeDotfiles
			}
			if !flags.Changed("quote") {
				quoteNames = cfg.QuoteNames
			}

			result, err := generate.Generate(generate.GenerateOptions{
				Directory:       directory,
				MatchPattern:    matchPattern,
				RebuildPattern:  rebuildPattern,
				CommandPrefix:   commandPrefix,
				IncludeDotfiles: includeDotfiles,
				QuoteNames:      quoteNames,
			})
			if err != nil {
				// An unreadable directory is reported but the run still
				// exits zero; only template defects fail the invocation.
				if errors.IsErrorCode(err, errors.ErrDirAccess) {
					fmt.Fprintln(cmd.ErrOrStderr(), style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range result.Lines {
				fmt.Fprintln(out, line.Text)
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVarP(&matchPattern, "match", "m", "", MsgFlagMatch)
	rootCmd.Flags().StringVarP(&rebuildPattern, "rebuild", "r", "", MsgFlagRebuild)
	rootCmd.Flags().StringVarP(&commandPrefix, "command", "c", "", MsgFlagCommand)
	rootCmd.Flags().StringVarP(&directory, "dir", "d", ".", MsgFlagDir)
	rootCmd.Flags().BoolVarP(&includeDotfiles, "all", "a", false, MsgFlagAll)
	rootCmd.Flags().BoolVarP(&quoteNames, "quote", "q", false, MsgFlagQuote)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help (pattern language reference etc.), rendered
	// with glamour for markdown topics.
	if topicsFS, err := fs.Sub(topicFiles, "topics"); err == nil {
		if err := topics.Initialize(rootCmd, topicsFS, topics.NewGlamourRenderer()); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "filer version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newManCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "FILER",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "output", ".", "directory to write man pages into")
	return cmd
}
