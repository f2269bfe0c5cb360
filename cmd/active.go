package cmd

import (
	"fmt"

	"github.com/mj1618/wintree/internal/output"
	"github.com/spf13/cobra"
)

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Describe the foreground window",
	RunE:  runActive,
}

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Describe the desktop root window",
	RunE:  runDesktop,
}

func init() {
	rootCmd.AddCommand(activeCmd)
	rootCmd.AddCommand(desktopCmd)
}

func runActive(cmd *cobra.Command, args []string) error {
	q, err := newQuery()
	if err != nil {
		return err
	}
	w, err := q.ActiveWindow()
	if err != nil {
		return err
	}
	if w.Handle().IsZero() {
		return fmt.Errorf("no foreground window")
	}
	desc, err := describeWindow(q, w)
	if err != nil {
		return err
	}
	return output.Print(desc)
}

func runDesktop(cmd *cobra.Command, args []string) error {
	q, err := newQuery()
	if err != nil {
		return err
	}
	w, err := q.DesktopWindow()
	if err != nil {
		return err
	}
	desc, err := describeWindow(q, w)
	if err != nil {
		return err
	}
	return output.Print(desc)
}
