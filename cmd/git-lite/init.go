package main

import (
	"fmt"
	"io"
	"path/filepath"

	gitlite "github.com/berserkin1337/git-lite"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new git repository or reinitialize an existing one",
		Args:  cobra.NoArgs,
	}

	path := cmd.Flags().StringP("path", "p", ".", "Specify the repository's path")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return initCmd(cmd.OutOrStdout(), *path)
	}

	return cmd
}

func initCmd(out io.Writer, path string) error {
	r, err := gitlite.InitRepository(path)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Fprintln(out, "Initialized empty Git repository in", filepath.Join(abs, ".git"))
	return r.Close()
}
