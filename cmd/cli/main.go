// Command cli is the scriptable entry point around the font-substitution
// manager. It talks to the live registry directly and leaves the sqlite
// backup history to the GUI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	font_changer "github.com/khiladisngh/Windows-Font-Changer"
	"github.com/khiladisngh/Windows-Font-Changer/services/fontmgr"
)

func main() {
	os.Exit(execute())
}

func execute() int {
	root := newRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, font_changer.FriendlyError(err))
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "font-changer",
		Short:         "Change the Windows system UI font via registry substitution",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)

	mgr := fontmgr.New(fontmgr.NewSystemStore())

	cmd.AddCommand(newListCmd(stdout))
	cmd.AddCommand(newCurrentCmd(stdout, mgr))
	cmd.AddCommand(newApplyCmd(stdout, mgr))
	cmd.AddCommand(newRestoreCmd(stdout, mgr))
	cmd.AddCommand(newBackupCmd(stdout, mgr))
	cmd.AddCommand(newRestoreBackupCmd(stdout, mgr))
	cmd.AddCommand(newExportCmd(stdout, mgr))
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

func newListCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed font families",
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range fontmgr.ListAvailableFonts() {
				fmt.Fprintln(stdout, f)
			}
		},
	}
}

func newCurrentCmd(stdout io.Writer, mgr *fontmgr.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the current substitute for Segoe UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := mgr.CurrentSubstitute()
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, cur)
			return nil
		},
	}
}

func newApplyCmd(stdout io.Writer, mgr *fontmgr.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <font>",
		Short: "Substitute the system font (backs up the current state first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mgr.Apply(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Font changed to %s. Restart Windows to apply changes.\n", args[0])
			return nil
		},
	}
}

func newRestoreCmd(stdout io.Writer, mgr *fontmgr.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore the default system font",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mgr.RestoreDefault(); err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Default font restored. Restart Windows to apply changes.")
			return nil
		},
	}
}

func newBackupCmd(stdout io.Writer, mgr *fontmgr.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Write a backup of the current substitution state",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := mgr.CaptureSnapshot()
			if err != nil {
				return err
			}
			rec, err := mgr.Backup(snap)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, rec.Path)
			return nil
		},
	}
}

func newRestoreBackupCmd(stdout io.Writer, mgr *fontmgr.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "restore-backup",
		Short: "Replay the state saved in the backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := mgr.LoadBackup()
			if err != nil {
				return err
			}
			if err := mgr.Restore(rec.Snapshot); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Restored backup from %s. Restart Windows to apply changes.\n",
				rec.CreatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func newExportCmd(stdout io.Writer, mgr *fontmgr.Manager) *cobra.Command {
	var fontName string
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export a .reg script (current state, or --font for a target font)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var snap *fontmgr.FontSnapshot
			if fontName != "" {
				snap = fontmgr.NewSnapshot(fontmgr.SubstitutionEntry{
					Logical:    fontmgr.DefaultFont,
					Substitute: fontName,
				})
			} else {
				var err error
				snap, err = mgr.CaptureSnapshot()
				if err != nil {
					return err
				}
			}
			if err := mgr.ExportToScript(snap, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(stdout, args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&fontName, "font", "", "export a script that applies this font instead of the current state")
	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(stdout, font_changer.APPVersion)
		},
	}
}
