// Command reltab is a small driver around the relational-algebra core:
// it builds the sample movie database, runs every operator over it, and
// can save/load table snapshots.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reltab/reltab"
	"github.com/reltab/reltab/display"
	"github.com/reltab/reltab/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "reltab",
		Short:         "In-memory relational algebra over typed tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace operator calls")

	newSession := func() *reltab.Session {
		var opt reltab.SessionOptions
		if verbose {
			opt.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		return reltab.NewSession(opt)
	}

	root.AddCommand(newDemoCmd(newSession))
	root.AddCommand(newShowCmd(newSession))
	root.AddCommand(newTablesCmd())
	return root
}

func newDemoCmd(newSession func() *reltab.Session) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the sample movie database and run every operator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess := newSession()
			out := cmd.OutOrStdout()

			movie, studio, err := sampleTables(sess)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, display.Table(movie))
			fmt.Fprintln(out, display.Table(studio))
			fmt.Fprintln(out, display.Index(movie))

			if err := runDemoOps(out, movie, studio); err != nil {
				return err
			}

			if dbPath != "" {
				st, err := store.Open(dbPath, store.Options{})
				if err != nil {
					return err
				}
				defer st.Close()
				if err := st.Save(movie); err != nil {
					return err
				}
				if err := st.Save(studio); err != nil {
					return err
				}
				fmt.Fprintf(out, "saved movie and studio to %s\n", dbPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Save the base tables to this snapshot store")
	return cmd
}

func newShowCmd(newSession func() *reltab.Session) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "show <table>",
		Short: "Load a table snapshot and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dbPath, store.Options{})
			if err != nil {
				return err
			}
			defer st.Close()

			tbl, err := st.Load(newSession(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display.Table(tbl))
			fmt.Fprintln(cmd.OutOrStdout(), display.Index(tbl))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "reltab.db", "Path to the snapshot store")
	return cmd
}

func newTablesCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List saved table snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.Open(dbPath, store.Options{})
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "reltab.db", "Path to the snapshot store")
	return cmd
}
