package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/berserkin1337/git-lite/internal/errutil"
	"github.com/spf13/cobra"
)

func newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record changes to the repository",
		Args:  cobra.NoArgs,
	}

	message := cmd.Flags().StringP("message", "m", "", "Use the given message as the commit message")
	author := cmd.Flags().StringP("author", "a", "", "Use the given author as the author of the commit")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return commitCmd(cmd.OutOrStdout(), *message, *author)
	}

	return cmd
}

func commitCmd(out io.Writer, message, author string) (err error) {
	if message == "" {
		return errors.New("commit message required")
	}
	if author == "" {
		return errors.New("commit author required")
	}

	r, err := loadRepository()
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	c, err := r.Commit(message, parseAuthor(author))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, c.ID().String())
	return nil
}
