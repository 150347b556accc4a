/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/generics"
)

func newCheckCmd() *cobra.Command {
	params := s4Params{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "check schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, schema, err := loadRuntime(params)
			if err != nil {
				return err
			}
			classCount, genericCount := 0, 0
			rt.Classes.Classes(func(c classes.IClass) {
				if !c.Foreign() {
					classCount++
				}
			})
			rt.Generics.Generics(func(generics.IGeneric) { genericCount++ })
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d statement(s), %d class(es), %d generic(s)\n",
				len(schema.Statements), classCount, genericCount)
			return nil
		},
	}
	initGlobalFlags(cmd, &params)
	return cmd
}
