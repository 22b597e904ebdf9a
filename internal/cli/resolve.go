package cli

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tsawler/pageobject"
	"github.com/tsawler/pageobject/dom"
	"github.com/tsawler/pageobject/internal/logger"
	"github.com/tsawler/pageobject/schema"
)

// errNotFound is returned by resolve --require when nothing matched.
var errNotFound = errors.New("not found")

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a schema against an HTML document",
	Long: `Resolves the schema against the document body and prints every match with
the matches of its declared children. --path resolves a chain of child
names first, e.g. --path results.title.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

var (
	resolveSchemaFile string
	resolveHTMLFile   string
	resolvePath       string
	resolveFormat     string
	resolveMaxDepth   int
	resolveRequire    bool
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveSchemaFile, "schema", "s", "", "Schema file (.yaml, .json or .toml)")
	resolveCmd.Flags().StringVarP(&resolveHTMLFile, "html", "d", "", "HTML document")
	resolveCmd.Flags().StringVarP(&resolvePath, "path", "p", "", "Dot-separated child path to resolve")
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "text", "Output format: text or json")
	resolveCmd.Flags().IntVar(&resolveMaxDepth, "max-depth", 32, "Maximum schema depth to expand")
	resolveCmd.Flags().BoolVar(&resolveRequire, "require", false, "Fail when the resolved selector matches nothing")
	_ = resolveCmd.MarkFlagRequired("schema")
	_ = resolveCmd.MarkFlagRequired("html")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	if resolveFormat != "text" && resolveFormat != "json" {
		return fmt.Errorf("unknown output format %q", resolveFormat)
	}

	logger.Section("Load")
	s, err := schema.Load(resolveSchemaFile)
	if err != nil {
		return err
	}
	logger.Info("schema %s", s)

	doc, err := dom.Open(resolveHTMLFile)
	if err != nil {
		return err
	}

	po, err := pageobject.New(doc, s, pageobject.WithMaxDepth(resolveMaxDepth))
	if err != nil {
		return err
	}

	var path []string
	if resolvePath != "" {
		path = strings.Split(resolvePath, ".")
	}

	logger.Section("Resolve")
	r, err := po.Lookup(path...)
	if err != nil {
		return err
	}
	if !r.Found() {
		logger.Warn("%s matched nothing", lookupLabel(resolvePath, r.Selector()))
	}
	snap, err := r.Snapshot(resolveMaxDepth)
	if err != nil {
		return err
	}
	if len(path) > 0 {
		snap.Name = resolvePath
	}

	if resolveFormat == "json" {
		out, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else if err := snap.WriteText(cmd.OutOrStdout()); err != nil {
		return err
	}

	if resolveRequire && !r.Found() {
		return fmt.Errorf("%s: %w", r.Selector(), errNotFound)
	}
	return nil
}

func lookupLabel(path string, sel schema.Selector) string {
	if path == "" {
		return sel.String()
	}
	return path + ": " + sel.String()
}
