package main

import (
	"github.com/berserkin1337/git-lite/internal/errutil"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add PATH...",
		Short: "Add file contents to the index",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return addCmd(args)
	}

	return cmd
}

func addCmd(paths []string) (err error) {
	r, err := loadRepository()
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	return r.Add(paths...)
}
