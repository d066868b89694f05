package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showCmd = &cobra.Command{
	Use:   "show <entry>",
	Short: "Print the whole entry, trimmed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contents, err := reader.EntryContents(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printValue(cmd.OutOrStdout(), contents)
		return nil
	},
}

var passwordCmd = &cobra.Command{
	Use:     "password <entry>",
	Short:   "Print the first line of the entry",
	Aliases: []string{"pw"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw, err := reader.PasswordFor(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printValue(cmd.OutOrStdout(), pw)
		return nil
	},
}

var fieldCmd = &cobra.Command{
	Use:   "field <entry> <name>",
	Short: "Print the value of a \"name: value\" line",
	Long:  "Print the value of the first line of the entry that starts with <name> followed by a colon.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		val, err := reader.FieldFor(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		printValue(cmd.OutOrStdout(), val)
		return nil
	},
}

var fieldsJSON bool

var fieldsCmd = &cobra.Command{
	Use:   "fields <entry>",
	Short: "List the \"name: value\" lines after the password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := reader.Fields(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if fieldsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(fields)
		}

		nameStyle := lipgloss.NewStyle()
		if isTerminal(out) {
			nameStyle = nameStyle.Bold(true).Foreground(lipgloss.Color("12"))
		}
		for _, f := range fields {
			fmt.Fprintf(out, "%s: %s\n", nameStyle.Render(f.Name), f.Value)
		}
		return nil
	},
}

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(passwordCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(fieldsCmd)
}

// printValue omits the trailing newline when piped so the value can be
// consumed verbatim.
func printValue(w io.Writer, value string) {
	if noNewline || !isTerminal(w) {
		fmt.Fprint(w, value)
		return
	}
	fmt.Fprintln(w, value)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
