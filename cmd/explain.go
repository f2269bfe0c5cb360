package cmd

import (
	"github.com/mj1618/wintree/internal/output"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain why a window is or is not a top-level window",
	Long: `Classify one window and report the first rule that rejected it.

Rules, in evaluation order:
  1 class is on the ignore-list
  2 window has no caption
  3 window has empty bounds
  4 window has a parent
  5 window is a tool window
  6 window is not rendered normally (no redirection bitmap, not a modern app)
  7 window is not visible
  8 window is minimized`,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().String("hwnd", "", "Window handle (decimal or 0x hex); default: foreground window")
	explainCmd.Flags().Bool("no-ignore", false, "Do not apply the ignore-list")
}

func runExplain(cmd *cobra.Command, args []string) error {
	hwnd, _ := cmd.Flags().GetString("hwnd")
	noIgnore, _ := cmd.Flags().GetBool("no-ignore")

	q, err := newQuery()
	if err != nil {
		return err
	}
	w, err := resolveWindow(q, hwnd)
	if err != nil {
		return err
	}
	verdict, err := q.Explain(w, !noIgnore)
	if err != nil {
		return err
	}
	return output.Print(verdict)
}
