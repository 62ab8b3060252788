package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/resetconfig/internal/keymap"
	"github.com/llehouerou/resetconfig/internal/prefs"
	"github.com/llehouerou/resetconfig/internal/reset"
	"github.com/llehouerou/resetconfig/internal/ui/render"
)

const defaultShowWidth = 100

type showOptions struct {
	yaml   bool
	prefix string
	width  int
}

// showDoc is the --yaml document.
type showDoc struct {
	Database     string              `yaml:"database"`
	Size         string              `yaml:"size"`
	PrefsVersion string              `yaml:"prefs_version,omitempty"`
	Preferences  map[string]any      `yaml:"preferences"`
	Conflicts    map[string][]string `yaml:"conflicts,omitempty"`
}

func newShowCmd(root *rootOptions) *cobra.Command {
	opts := showOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(root)
			if err != nil {
				return err
			}
			defer s.Close()

			opts.width = terminalWidth()
			return writeShow(cmd.OutOrStdout(), s.store.Path(), s.store, s.registry.Resolver(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "print as YAML")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "only show paths under this prefix, e.g. /NewKeys/")
	return cmd
}

func writeShow(w io.Writer, dbPath string, store prefs.Store, resolver *keymap.Resolver, opts showOptions) error {
	entries := prefs.WithPrefix(store.Entries(), opts.prefix)
	conflicts := resolver.Conflicts()

	if opts.yaml {
		doc := showDoc{
			Database:     dbPath,
			Size:         fileSize(dbPath),
			PrefsVersion: prefs.ReadString(store, reset.PathPrefsVersion, ""),
			Preferences:  make(map[string]any, len(entries)),
			Conflicts:    conflicts,
		}
		for _, e := range entries {
			doc.Preferences[e.Path] = e.Value.Any()
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Path, e.Value.Kind().String(), e.Value.Text()}
	}
	t := render.Table{Headers: []string{"PATH", "KIND", "VALUE"}, Rows: rows}
	for _, line := range t.Lines(opts.width, len(rows)+2) {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	overrides := len(prefs.WithPrefix(store.Entries(), keymap.OverridePrefix))
	fmt.Fprintf(w, "\n%s preferences (%s shortcut overrides) in %s (%s)\n",
		humanize.Comma(int64(len(entries))), humanize.Comma(int64(overrides)), dbPath, fileSize(dbPath))
	if v := prefs.ReadString(store, reset.PathPrefsVersion, ""); v != "" {
		fmt.Fprintf(w, "preferences version %s\n", v)
	}
	for _, key := range resolver.ConflictKeys() {
		fmt.Fprintf(w, "conflict: %s is bound to %s\n", key, strings.Join(conflicts[key], ", "))
	}
	return nil
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "unknown size"
	}
	return humanize.Bytes(uint64(info.Size()))
}

func terminalWidth() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 20 {
		return n
	}
	return defaultShowWidth
}
