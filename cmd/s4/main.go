/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version, os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string, out io.Writer) error {
	rootCmd := cobrau.PrepareRootCmd(
		"s4",
		"formal classes and generic functions with multiple dispatch",
		args,
		ver,
		newCheckCmd(),
		newDescribeCmd(),
		newAncestorsCmd(),
		newMethodsCmd(),
		newResolveCmd(),
		newInvokeCmd(),
	)
	rootCmd.SetOut(out)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
