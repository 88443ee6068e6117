package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appforge/appforge/internal/catalog"
)

var (
	generateFramework string
	generateFeatures  []string
	generateOutputDir string
)

// NewGenerateCommand creates the generate command, a one-shot
// non-interactive generation that writes the project to disk.
func NewGenerateCommand() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "generate <prompt...>",
		Short: "Generate a project without the TUI and write it to a directory",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGenerate,
	}

	genCmd.Flags().StringVarP(&generateFramework, "framework", "f", "", "Target framework value (see 'appforge catalog')")
	genCmd.Flags().StringSliceVar(&generateFeatures, "feature", nil, "Feature ids to include (repeatable)")
	genCmd.Flags().StringVarP(&generateOutputDir, "output", "o", ".", "Directory to write the generated files into")
	_ = genCmd.MarkFlagRequired("framework")

	return genCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if len([]rune(prompt)) < 10 {
		return fmt.Errorf("prompt must be at least 10 characters")
	}

	framework, ok := catalog.FrameworkByValue(generateFramework)
	if !ok {
		return fmt.Errorf("unknown framework %q (see 'appforge catalog')", generateFramework)
	}
	for _, id := range generateFeatures {
		if _, ok := catalog.FeatureByID(id); !ok {
			return fmt.Errorf("unknown feature %q (see 'appforge catalog')", id)
		}
	}

	_, logger, st, client, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("Generating %s project...\n", framework.Label)
	project, err := client.Generate(context.Background(), prompt, framework, generateFeatures)
	if err != nil {
		return err
	}

	st.Save(*project)
	logger.Info("project generated",
		zap.String("id", project.ID),
		zap.Int("files", len(project.Files)))

	if err := writeProjectFiles(generateOutputDir, project.Files); err != nil {
		return err
	}

	fmt.Printf("Wrote %d files to %s\n", len(project.Files), generateOutputDir)
	if project.Explanation != "" {
		fmt.Println("\n" + project.Explanation)
	}
	if len(project.BuildCommands) > 0 {
		fmt.Println("\nBuild commands:")
		for _, c := range project.BuildCommands {
			fmt.Printf("  %s\n", c)
		}
	}
	return nil
}

// writeProjectFiles writes the generated files under dir. The paths
// are model-controlled, so anything that is not local to dir (absolute
// paths, .. traversal) is rejected before a single file is written.
func writeProjectFiles(dir string, files map[string]string) error {
	paths := make(map[string]string, len(files))
	for path, content := range files {
		local := filepath.FromSlash(path)
		if !filepath.IsLocal(local) {
			return fmt.Errorf("refusing to write %q: path escapes the output directory", path)
		}
		paths[local] = content
	}

	for local, content := range paths {
		target := filepath.Join(dir, local)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", local, err)
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", local, err)
		}
	}
	return nil
}
