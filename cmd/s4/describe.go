/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/objsys"
)

func newDescribeCmd() *cobra.Command {
	params := s4Params{}
	cmd := &cobra.Command{
		Use:   "describe <class>",
		Short: "describe class: parents, slots, ancestors and methods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, _, err := loadRuntime(params)
			if err != nil {
				return err
			}
			info, err := describeClass(rt, args[0])
			if err != nil {
				return err
			}
			switch params.Output {
			case outputYAML:
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(info)
			case outputText:
				printClassInfo(cmd.OutOrStdout(), info)
				return nil
			}
			return fmt.Errorf("unknown output format «%s»", params.Output)
		},
	}
	initGlobalFlags(cmd, &params)
	cmd.Flags().StringVarP(&params.Output, "output", "o", outputText, "Output format: text or yaml")
	return cmd
}

func describeClass(rt *objsys.Runtime, name string) (*classInfo, error) {
	c, err := rt.Classes.Class(name)
	if err != nil {
		return nil, err
	}
	ancestors, err := rt.Classes.Ancestors(name)
	if err != nil {
		return nil, err
	}

	info := &classInfo{
		Name:      c.Name(),
		Parents:   c.Parents(),
		Sealed:    c.Sealed(),
		Virtual:   c.Virtual(),
		Foreign:   c.Foreign(),
		Version:   c.Version(),
		Ancestors: ancestors,
	}
	for _, s := range c.AllSlots() {
		si := slotInfo{Name: s.Name(), Type: s.Type(), Owner: s.Owner()}
		if v, ok := c.Prototype(s.Name()); ok {
			si.Prototype = v
		}
		info.Slots = append(info.Slots, si)
	}
	for _, m := range rt.Generics.MethodsFor(name) {
		info.Methods = append(info.Methods, fmt.Sprint(m))
	}
	return info, nil
}

func printClassInfo(w io.Writer, info *classInfo) {
	flags := make([]string, 0)
	if info.Sealed {
		flags = append(flags, "sealed")
	}
	if info.Virtual {
		flags = append(flags, "virtual")
	}
	if info.Foreign {
		flags = append(flags, "foreign")
	}
	fmt.Fprintf(w, "class %s", info.Name)
	if len(flags) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(flags, ", "))
	}
	fmt.Fprintln(w)
	if len(info.Parents) > 0 {
		fmt.Fprintf(w, "  extends: %s\n", strings.Join(info.Parents, ", "))
	}
	for _, s := range info.Slots {
		fmt.Fprintf(w, "  slot %s %s", s.Name, s.Type)
		if s.Owner != info.Name {
			fmt.Fprintf(w, " (from %s)", s.Owner)
		}
		if s.Prototype != nil {
			fmt.Fprintf(w, " = %v", s.Prototype)
		}
		fmt.Fprintln(w)
	}
	for _, m := range info.Methods {
		fmt.Fprintf(w, "  method %s\n", m)
	}
}

func printDistances(w io.Writer, d classes.Distances) {
	for _, n := range d.Sorted() {
		fmt.Fprintf(w, "%d\t%s\n", d[n], n)
	}
}
