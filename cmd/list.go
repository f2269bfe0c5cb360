package cmd

import (
	"github.com/mj1618/wintree/internal/output"
	"github.com/mj1618/wintree/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level application windows",
	Long: `List windows in z-order, front to back.

By default only genuine top-level application windows are listed: windows
with a caption and a size, no parent, not a tool window, visible and not
minimized, and whose class is not on the ignore-list.

Examples:
  wintree list
  wintree list --all
  wintree list --parent 0x20A4C
  wintree list --no-ignore --class Progman`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addListFlags(listCmd)
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("all", false, "List every window, not only top-level ones")
	cmd.Flags().String("parent", "", "List the children of this window handle")
	cmd.Flags().Bool("no-ignore", false, "Do not skip classes on the ignore-list")
	cmd.Flags().Int("pid", 0, "Filter windows by PID")
	cmd.Flags().String("class", "", "Filter windows by class name")
	cmd.Flags().String("title", "", "Filter windows by title substring")
	cmd.Flags().String("bbox", "", "Only windows intersecting x,y,w,h")
}

func listOptionsFromFlags(cmd *cobra.Command) (platform.ListOptions, error) {
	all, _ := cmd.Flags().GetBool("all")
	parent, _ := cmd.Flags().GetString("parent")
	noIgnore, _ := cmd.Flags().GetBool("no-ignore")
	pid, _ := cmd.Flags().GetInt("pid")
	class, _ := cmd.Flags().GetString("class")
	title, _ := cmd.Flags().GetString("title")
	bbox, _ := cmd.Flags().GetString("bbox")

	opts := platform.ListOptions{
		All:      all,
		NoIgnore: noIgnore,
		PID:      pid,
		Class:    class,
		Title:    title,
	}
	if parent != "" {
		h, err := platform.ParseHandle(parent)
		if err != nil {
			return opts, err
		}
		opts.Parent = h
	}
	if bbox != "" {
		b, err := platform.ParseBBox(bbox)
		if err != nil {
			return opts, err
		}
		opts.BBox = b
	}
	return opts, nil
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := listOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	q, err := newQuery()
	if err != nil {
		return err
	}
	result, err := listWindows(q, opts)
	if err != nil {
		return err
	}
	return output.Print(result)
}
