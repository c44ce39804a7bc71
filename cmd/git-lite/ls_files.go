package main

import (
	"fmt"
	"io"

	"github.com/berserkin1337/git-lite/internal/errutil"
	"github.com/spf13/cobra"
)

func newLsFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls-files",
		Short: "List the files in the index",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return lsFilesCmd(cmd.OutOrStdout())
	}

	return cmd
}

func lsFilesCmd(out io.Writer) (err error) {
	r, err := loadRepository()
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	idx, err := r.Index()
	if err != nil {
		return err
	}

	for _, e := range idx.Entries() {
		fmt.Fprintln(out, e.Path)
	}
	return nil
}
