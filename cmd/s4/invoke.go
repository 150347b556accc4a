/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/generics"
	imetrics "github.com/voedger/s4/pkg/metrics"
	"github.com/voedger/s4/pkg/objsys"
)

func newInvokeCmd() *cobra.Command {
	params := s4Params{}
	cmd := &cobra.Command{
		Use:   "invoke <generic> <class>...",
		Short: "invoke generic with default values of argument classes",
		Long: "Invokes generic with default values of argument classes. " +
			"Foreign classes give zero values, other classes give default constructed instances, MISSING omits argument.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, _, err := loadRuntime(params)
			if err != nil {
				return err
			}
			values, err := defaultValues(rt, args[1:])
			if err != nil {
				return err
			}
			res, err := rt.Invoke(args[0], values...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, res)
			if params.Metrics {
				return rt.Metrics.List(func(metric imetrics.IMetric, value float64) error {
					_, err := cmd.ErrOrStderr().Write(imetrics.ToPrometheus(metric, value))
					return err
				})
			}
			return nil
		},
	}
	initGlobalFlags(cmd, &params)
	cmd.Flags().BoolVar(&params.Metrics, "metrics", false, "Print dispatch metrics to stderr in Prometheus text format")
	return cmd
}

func defaultValues(rt *objsys.Runtime, cc []string) ([]any, error) {
	values := make([]any, len(cc))
	for i, c := range cc {
		if c == classes.ClassName_MISSING {
			values[i] = generics.Missing
			continue
		}
		v, err := rt.Objects.Default(c)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
