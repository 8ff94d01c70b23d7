// Package topics provides a pluggable, topic-based help system for Cobra CLI
// applications. Topics are markdown or plain-text files served from an fs.FS
// (typically an embed.FS shipped inside the binary), so long-form
// documentation travels with the executable and never depends on install
// paths.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Manager holds the topics loaded from a filesystem.
type Manager struct {
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	renderer     Renderer
}

// Topic is a single help topic.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a Manager.
type Options struct {
	// Extensions lists the file extensions loaded as topics.
	// Defaults to [".md", ".txt"] if not specified.
	Extensions []string

	// Renderer formats topic content for display (optional).
	// Defaults to PlainRenderer.
	Renderer Renderer
}

// New loads all topics from fsys with default options.
func New(fsys fs.FS) (*Manager, error) {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions loads all topics from fsys.
func NewWithOptions(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".md", ".txt"}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, e := range exts {
			if ext == e {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Path:    p,
			Content: string(content),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	return m, nil
}

// Get retrieves a topic by name.
func (m *Manager) Get(name string) (*Topic, bool) {
	t, ok := m.topics[name]
	return t, ok
}

// List returns all topic names, sorted.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the formatted content of a topic.
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, path.Ext(t.Path))
}

// Initialize replaces rootCmd's help command with a topic-aware one: `help
// <name>` renders the topic when one matches and falls back to regular
// command help otherwise.
func Initialize(rootCmd *cobra.Command, fsys fs.FS, opts Options) error {
	m, err := NewWithOptions(fsys, opts)
	if err != nil {
		return err
	}

	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.List()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				names := m.List()
				if len(names) == 0 {
					fmt.Println("No help topics available.")
					return
				}
				fmt.Println("Available help topics:")
				for _, name := range names {
					fmt.Printf("  %s\n", name)
				}
				fmt.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", rootCmd.Name())
				return
			}

			if t, ok := m.Get(args[0]); ok {
				fmt.Print(m.Render(t))
				return
			}

			// Not a topic; resolve command names so `help <command>`
			// still reaches the command's own help.
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				_ = target.Help()
				return
			}

			m.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if t, ok := m.Get(args[0]); ok {
				fmt.Print(m.Render(t))
				return
			}
		}
		m.originalHelp(cmd, args)
	})

	return nil
}
