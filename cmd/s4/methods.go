/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMethodsCmd() *cobra.Command {
	params := s4Params{}
	cmd := &cobra.Command{
		Use:   "methods <generic>",
		Short: "print generic methods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, _, err := loadRuntime(params)
			if err != nil {
				return err
			}
			mm, err := rt.Generics.Methods(args[0])
			if err != nil {
				return err
			}
			for _, m := range mm {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
	initGlobalFlags(cmd, &params)
	return cmd
}
