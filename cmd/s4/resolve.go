/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	params := s4Params{}
	cmd := &cobra.Command{
		Use:   "resolve <generic> <class>...",
		Short: "print method selected for argument classes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, _, err := loadRuntime(params)
			if err != nil {
				return err
			}
			sel, err := rt.SelectMethod(args[0], args[1:]...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%v\ndistance: %d\n", sel.Method(), sel.Distance())
			if warn := sel.Warning(); warn != nil {
				fmt.Fprintf(w, "ambiguous: %d candidate(s) %v\n", len(warn.Candidates), warn.Candidates)
			}
			return nil
		},
	}
	initGlobalFlags(cmd, &params)
	return cmd
}
