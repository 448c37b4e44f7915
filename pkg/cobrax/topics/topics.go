// Package topics provides a topic-based help system for Cobra CLI
// applications. Topics are documentation files served from an fs.FS
// (typically embedded in the binary), extending `help` beyond command
// help so the CLI documents its own pattern language.
package topics

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/filer/pkg/style"
)

// Topic is one help topic
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// TopicManager wires topics into a cobra root command
type TopicManager struct {
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	renderer     Renderer
}

// topic file extensions considered during the scan
var extensions = []string{".md", ".txt"}

// Initialize scans fsys for topic files and installs a help command on
// rootCmd that knows about both commands and topics. The topic name is
// the file name without its extension.
func Initialize(rootCmd *cobra.Command, fsys fs.FS, renderer Renderer) error {
	tm, err := newManager(fsys, renderer)
	if err != nil {
		return err
	}
	tm.originalHelp = rootCmd.HelpFunc()
	tm.install(rootCmd)
	return nil
}

func newManager(fsys fs.FS, renderer Renderer) (*TopicManager, error) {
	tm := &TopicManager{
		topics:   make(map[string]*Topic),
		renderer: renderer,
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	if err := tm.scan(fsys); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return tm, nil
}

func (tm *TopicManager) scan(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		supported := false
		for _, validExt := range extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		tm.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
}

// GetTopic retrieves a topic by name
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	topic, exists := tm.topics[name]
	return topic, exists
}

// ListTopics returns the names of all topics
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (tm *TopicManager) install(rootCmd *cobra.Command) {
	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				tm.printTopicList(rootCmd.Name())
				return
			}

			if topic, exists := tm.GetTopic(args[0]); exists {
				fmt.Print(tm.renderer.Render(topic.Content, topic.Ext))
				return
			}

			// Not a topic, fall back to command help
			tm.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	// Also serve topics through the --help path
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, exists := tm.GetTopic(args[0]); exists {
				fmt.Print(tm.renderer.Render(topic.Content, topic.Ext))
				return
			}
		}
		tm.originalHelp(cmd, args)
	})
}

func (tm *TopicManager) printTopicList(appName string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		fmt.Println("No help topics available.")
		return
	}
	fmt.Println(style.TitleStyle.Render("Available help topics:"))
	for _, name := range names {
		fmt.Println(style.TopicStyle.Render(name))
	}
	fmt.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}
