/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/voedger/s4/pkg/classes"
)

const testSchema = "testdata/people.s4"

func run(t *testing.T, args ...string) (string, error) {
	out := bytes.Buffer{}
	err := execRootCmd(append([]string{"s4"}, args...), "1.0.0", &out)
	return out.String(), err
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)

	testCases := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "check",
			args:     []string{"check", "-s", testSchema},
			expected: []string{"ok: 13 statement(s), 6 class(es), 3 generic(s)"},
		},
		{
			name:     "describe",
			args:     []string{"describe", "Employee", "-s", testSchema},
			expected: []string{"class Employee (sealed)", "extends: Person", "slot boss Person", "slot name character (from Person) = Anonymous", "method describe(Employee, ANY)"},
		},
		{
			name:     "ancestors",
			args:     []string{"ancestors", "Duck", "--schema", testSchema},
			expected: []string{"0\tDuck", "1\tSwimmer", "1\tWalker"},
		},
		{
			name:     "methods",
			args:     []string{"methods", "describe", "-s", testSchema},
			expected: []string{"describe(ANY, ANY)", "describe(Employee, ANY)", "describe(Person, ANY)", "describe(numeric, MISSING)"},
		},
		{
			name:     "resolve",
			args:     []string{"resolve", "describe", "Employee", "numeric", "-s", testSchema},
			expected: []string{"describe(Employee, ANY)", "distance: 1"},
		},
		{
			name:     "resolve ambiguous",
			args:     []string{"resolve", "move", "Duck", "-s", testSchema},
			expected: []string{"move(Swimmer)", "ambiguous: 2 candidate(s)"},
		},
		{
			name:     "invoke",
			args:     []string{"invoke", "describe", "Employee", "integer", "-s", testSchema},
			expected: []string{"employee > person > default"},
		},
		{
			name:     "invoke with missing argument",
			args:     []string{"invoke", "describe", "integer", "MISSING", "-s", testSchema, "--cache", "theine"},
			expected: []string{"number"},
		},
		{
			name:     "invoke without cache",
			args:     []string{"invoke", "describe", "Person", "--cache-size", "0", "-s", testSchema},
			expected: []string{"person > default"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(err)
			for _, e := range tc.expected {
				require.Contains(out, e)
			}
		})
	}
}

func TestDescribeYAML(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "describe", "Employee", "-s", testSchema, "-o", "yaml")
	require.NoError(err)

	info := classInfo{}
	require.NoError(yaml.Unmarshal([]byte(out), &info))
	require.Equal("Employee", info.Name)
	require.True(info.Sealed)
	require.Equal([]string{"Person"}, info.Parents)
	require.Equal(map[string]int{"Employee": 0, "Person": 1}, info.Ancestors)
	require.Len(info.Slots, 3)
	require.Equal("Anonymous", info.Slots[1].Prototype)
}

func TestErrors(t *testing.T) {
	require := require.New(t)

	testCases := []struct {
		name string
		args []string
		err  error
	}{
		{"schema not specified", []string{"check"}, errSchemaNotSpecified},
		{"unknown class", []string{"describe", "Unknown", "-s", testSchema}, classes.ErrUnknownClassError},
		{"broken schema", []string{"check", "-s", "testdata/broken.s4"}, classes.ErrUnknownParentError},
		{"virtual class", []string{"invoke", "describe", "Shape", "-s", testSchema}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.Error(err)
			if tc.err != nil {
				require.ErrorIs(err, tc.err)
			}
		})
	}

	_, err := run(t, "describe", "Person", "-s", testSchema, "-o", "xml")
	require.ErrorContains(err, "unknown output format")

	_, err = run(t, "check", "-s", testSchema, "--cache", "unknown")
	require.ErrorContains(err, "unknown cache provider")
}
