package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/berserkin1337/git-lite/ginternals/object"
	"github.com/berserkin1337/git-lite/internal/errutil"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

var errBadFile = errors.New("bad file")

func newCatFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat-file",
		Short: "Provide content of repository objects",
		Args:  cobra.NoArgs,
	}

	typ := cmd.Flags().StringP("type", "t", "", "Specify the expected type of the object")
	name := cmd.Flags().StringP("object", "o", "", "The name of the object to show")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return catFileCmd(cmd.OutOrStdout(), *typ, *name)
	}
	return cmd
}

func catFileCmd(out io.Writer, typ, name string) (err error) {
	if name == "" {
		return errors.New("object name required")
	}

	r, err := loadRepository()
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	expectedType := object.Type(0)
	if typ != "" {
		expectedType, err = object.NewTypeFromString(typ)
		if err != nil {
			return xerrors.Errorf("%s: %w", typ, err)
		}
	}

	oid, err := r.FindObject(name, expectedType)
	if err != nil {
		return err
	}

	o, err := r.GetObject(oid)
	if err != nil {
		return err
	}

	if typ != "" && o.Type() != expectedType {
		return xerrors.Errorf("%s: %w", name, errBadFile)
	}

	fmt.Fprint(out, string(o.Bytes()))
	return nil
}
