package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show generated projects without the TUI",
		Long: `Show generated projects in a non-interactive format.
Without arguments: lists all stored projects
With a project id: dumps that project's files, dependencies and build commands`,
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return showProjects()
	case 1:
		return showProject(args[0])
	default:
		return fmt.Errorf("too many arguments. Usage: appforge show [project-id]")
	}
}

func showProjects() error {
	_, _, st, _, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	projects := st.List()
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Println("Projects:")
	fmt.Println("=========")
	for i, p := range projects {
		fmt.Printf("%d. %s\n", i+1, p.Name)
		fmt.Printf("   ID: %s\n", p.ID)
		fmt.Printf("   Framework: %s\n", p.Framework.Label)
		fmt.Printf("   Files: %d\n", len(p.Files))
		fmt.Printf("   Created: %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Println()
	}
	return nil
}

func showProject(id string) error {
	_, _, st, _, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	p, ok := st.Get(id)
	if !ok {
		return fmt.Errorf("project %q not found", id)
	}

	fmt.Printf("%s (%s)\n", p.Name, p.Framework.Label)
	fmt.Printf("Prompt: %s\n\n", p.Prompt)

	if p.Explanation != "" {
		fmt.Printf("%s\n\n", p.Explanation)
	}

	fmt.Println("Files:")
	paths := make([]string, 0, len(p.Files))
	for path := range p.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		fmt.Printf("  %s\n", path)
	}

	if len(p.Dependencies) > 0 {
		fmt.Println("\nDependencies:")
		for _, dep := range p.Dependencies {
			fmt.Printf("  %s\n", dep)
		}
	}

	if len(p.BuildCommands) > 0 {
		fmt.Println("\nBuild commands:")
		for _, cmd := range p.BuildCommands {
			fmt.Printf("  %s\n", cmd)
		}
	}
	return nil
}
