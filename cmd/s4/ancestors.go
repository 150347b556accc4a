/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/spf13/cobra"
)

func newAncestorsCmd() *cobra.Command {
	params := s4Params{}
	cmd := &cobra.Command{
		Use:   "ancestors <class>",
		Short: "print class ancestors with minimum distances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, _, err := loadRuntime(params)
			if err != nil {
				return err
			}
			d, err := rt.Classes.Ancestors(args[0])
			if err != nil {
				return err
			}
			printDistances(cmd.OutOrStdout(), d)
			return nil
		},
	}
	initGlobalFlags(cmd, &params)
	return cmd
}
