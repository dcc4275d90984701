// Package cmd provides the command-line interface for promptbook.
// It handles argument parsing and configuration, locates the prompt document
// and dispatches to listing, printing, copying, browsing or adding prompts.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/toozej/promptbook/internal/locator"
	"github.com/toozej/promptbook/internal/prompt"
	"github.com/toozej/promptbook/internal/render"
	"github.com/toozej/promptbook/internal/tui"
	"github.com/toozej/promptbook/pkg/config"
	"github.com/toozej/promptbook/pkg/man"
	"github.com/toozej/promptbook/pkg/version"
)

// suggestionLimit caps the "did you mean" keys shown for an unknown prompt.
const suggestionLimit = 3

var conf config.Config

var errNoPromptName = errors.New("a prompt name is required")

var rootCmd = newRootCmd(afero.NewOsFs())

// notFoundError is a failed lookup together with the closest known keys.
type notFoundError struct {
	key         string
	suggestions []string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("prompt '%s' not found", e.key)
}

func (e *notFoundError) Unwrap() error {
	return prompt.ErrPromptNotFound
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	// Flags get their own viper so environment variables and .env keys
	// can't stand in for them.
	flags := viper.New()

	cmd := &cobra.Command{
		Use:   "promptbook [prompt-name]",
		Short: "List and print reusable prompts from a markdown document",
		Long: `Print reusable prompts kept in a markdown document.

Level-2 headings (##) are categories, level-3 headings (###) are prompts and
the fenced block under a prompt heading is its content. Prompts are looked up
by their kebab-case key, e.g. "### Review Code" is "review-code".`,
		Example: `  promptbook --list
  promptbook review-code
  promptbook review-code --copy
  echo "Summarize {text}" | promptbook --add "Summarize" --category Writing`,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rootCmdPreRun(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmdRun(cmd, args, fs, flags)
		},
	}

	// Create rootCmd-level flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug-level logging")
	cmd.Flags().BoolP("list", "l", false, "List categories and their prompt keys")
	cmd.Flags().StringP("output", "o", string(render.FormatText), "List format: text or yaml")
	cmd.Flags().Bool("no-color", false, "Disable colored list output")
	cmd.Flags().StringP("file", "f", "", "Prompt document to use instead of searching the default locations")
	cmd.Flags().BoolP("copy", "c", false, "Copy the prompt to the clipboard instead of printing it")
	cmd.Flags().BoolP("browse", "b", false, "Browse prompts interactively and copy the selected one")
	cmd.Flags().StringP("add", "a", "", "Add a prompt with this title; content comes from the arguments or stdin")
	cmd.Flags().StringP("category", "s", "", "Category to add the prompt to (with --add)")
	cmd.MarkFlagsMutuallyExclusive("list", "browse", "add", "copy")

	// Add sub-commands
	cmd.AddCommand(
		man.NewManCmd(),
		version.Command(),
	)
	return cmd
}

func rootCmdPreRun(cmd *cobra.Command, flags *viper.Viper) error {
	if err := flags.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if flags.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

func rootCmdRun(cmd *cobra.Command, args []string, fs afero.Fs, flags *viper.Viper) error {
	// Handle add mode before anything needs the document to exist
	if title := flags.GetString("add"); title != "" {
		return runAdd(cmd, fs, flags, title, args)
	}

	if !flags.GetBool("list") && !flags.GetBool("browse") {
		if len(args) == 0 {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return errNoPromptName
		}
		if len(args) > 1 {
			return fmt.Errorf("expected one prompt name, got %d arguments", len(args))
		}
	}

	format, err := render.ParseFormat(flags.GetString("output"))
	if err != nil {
		return err
	}

	doc, err := loadDocument(fs, flags.GetString("file"))
	if err != nil {
		return err
	}

	switch {
	case flags.GetBool("list"):
		return render.List(cmd.OutOrStdout(), doc, render.Options{
			Format:  format,
			NoColor: flags.GetBool("no-color") || conf.ColorDisabled(),
		})

	case flags.GetBool("browse"):
		key, err := tui.RunTUI(doc)
		if err != nil {
			return err
		}
		if key != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Copied '%s' to clipboard\n", key)
		}
		return nil
	}

	key, body, err := lookup(doc, args[0])
	if err != nil {
		return err
	}

	if flags.GetBool("copy") {
		if err := prompt.CopyToClipboard(body); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Copied '%s' to clipboard\n", key)
		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
	return err
}

// loadDocument finds the prompt document, preferring the explicit path, and
// parses it.
func loadDocument(fs afero.Fs, explicit string) (*prompt.Document, error) {
	loc := locator.New(fs, conf.CandidatePaths(explicit)...)
	path, text, err := loc.Load()
	if err != nil {
		return nil, err
	}

	doc, err := prompt.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	log.Debugf("parsed %d categories and %d prompts from %s", len(doc.Categories()), doc.Len(), path)
	return doc, nil
}

// lookup resolves name as a key, falling back to its normalized form so
// "Review Code" also finds "review-code".
func lookup(doc *prompt.Document, name string) (string, string, error) {
	if body, ok := doc.Body(name); ok {
		return name, body, nil
	}
	if key := prompt.ToKey(name); key != name {
		if body, ok := doc.Body(key); ok {
			log.Debugf("resolved %q to key %q", name, key)
			return key, body, nil
		}
	}
	return "", "", &notFoundError{key: name, suggestions: doc.Suggest(name, suggestionLimit)}
}

func runAdd(cmd *cobra.Command, fs afero.Fs, flags *viper.Viper, title string, args []string) error {
	category := flags.GetString("category")
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("--add requires --category")
	}

	var body string
	if len(args) > 0 {
		body = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read prompt content: %w", err)
		}
		body = string(data)
	}

	// An explicit --file may not exist yet; otherwise add to the document
	// that lookups would use.
	path := flags.GetString("file")
	if path == "" {
		var err error
		path, err = locator.New(fs, conf.CandidatePaths("")...).Locate()
		if err != nil {
			return err
		}
	}

	if err := prompt.AddPrompt(fs, path, category, title, body); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added prompt '%s' to '%s' in %s\n", prompt.ToKey(title), strings.TrimSpace(category), path)
	return nil
}

// printError reports err with a remediation hint for the failures a user
// can fix.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var nf *notFoundError
	switch {
	case errors.As(err, &nf):
		if len(nf.suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s\n", strings.Join(nf.suggestions, ", "))
		}
		fmt.Fprintln(w, "Use 'promptbook --list' to see available prompts")
	case errors.Is(err, locator.ErrDocumentNotFound):
		fmt.Fprintf(w, "Create %s, set PROMPTBOOK_FILE or pass --file\n", config.DocumentName)
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// Execute runs the root command and exits non-zero on failure.
// This is the main entry point for the CLI application.
func Execute() {
	os.Exit(execute(rootCmd))
}

func init() {
	_, err := maxprocs.Set()
	if err != nil {
		log.Error("Error setting maxprocs: ", err)
	}

	// Get configuration from environment variables
	conf = config.GetEnvVars()
}
