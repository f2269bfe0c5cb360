package cmd

import (
	"github.com/mj1618/wintree/internal/model"
	"github.com/mj1618/wintree/internal/output"
	"github.com/spf13/cobra"
)

var linkedCmd = &cobra.Command{
	Use:   "linked",
	Short: "List windows owned by the same process as a window",
	Long: `List every window owned by any thread of the process that owns the given
window, in thread order. Without --hwnd the foreground window is used.

Useful for finding the menus, tooltips and dialogs that belong to an
application window.`,
	RunE: runLinked,
}

func init() {
	rootCmd.AddCommand(linkedCmd)
	linkedCmd.Flags().String("hwnd", "", "Window handle (decimal or 0x hex); default: foreground window")
	linkedCmd.Flags().String("class", "", "Filter windows by class name")
	linkedCmd.Flags().String("title", "", "Filter windows by title substring")
}

func runLinked(cmd *cobra.Command, args []string) error {
	hwnd, _ := cmd.Flags().GetString("hwnd")
	class, _ := cmd.Flags().GetString("class")
	title, _ := cmd.Flags().GetString("title")

	q, err := newQuery()
	if err != nil {
		return err
	}
	w, err := resolveWindow(q, hwnd)
	if err != nil {
		return err
	}
	result, err := linkedWindows(q, w, model.WindowFilter{Class: class, Title: title})
	if err != nil {
		return err
	}
	return output.Print(result)
}
