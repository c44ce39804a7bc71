package main

import (
	"fmt"
	"io"
	"os"

	gitlite "github.com/berserkin1337/git-lite"
	"github.com/berserkin1337/git-lite/ginternals/object"
	"github.com/berserkin1337/git-lite/internal/errutil"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newHashObjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-object",
		Short: "Compute object ID and optionally create a blob from a file",
		Args:  cobra.NoArgs,
	}

	typ := cmd.Flags().StringP("type", "t", "blob", "Specify the type")
	write := cmd.Flags().BoolP("write", "w", false, "Actually write the object into the database")
	path := cmd.Flags().StringP("path", "p", "", "The path of the file to hash")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return hashObjectCmd(cmd.OutOrStdout(), *path, *typ, *write)
	}

	return cmd
}

func hashObjectCmd(out io.Writer, filePath, typ string, write bool) (err error) {
	oType, err := object.NewTypeFromString(typ)
	if err != nil {
		return xerrors.Errorf("unsupported object type %s: %w", typ, err)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	o := object.New(oType, content)

	if write {
		var r *gitlite.Repository
		r, err = loadRepository()
		if err != nil {
			return err
		}
		defer errutil.Close(r, &err)

		if _, err = r.WriteObject(o); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, o.ID().String())
	return nil
}
