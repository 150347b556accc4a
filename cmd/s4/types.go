/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

type s4Params struct {
	Schema    string
	Cache     string
	CacheSize int
	Output    string
	Metrics   bool
}

// describe command output
type classInfo struct {
	Name      string         `yaml:"name"`
	Parents   []string       `yaml:"parents,omitempty"`
	Sealed    bool           `yaml:"sealed,omitempty"`
	Virtual   bool           `yaml:"virtual,omitempty"`
	Foreign   bool           `yaml:"foreign,omitempty"`
	Version   uint64         `yaml:"version"`
	Slots     []slotInfo     `yaml:"slots,omitempty"`
	Ancestors map[string]int `yaml:"ancestors"`
	Methods   []string       `yaml:"methods,omitempty"`
}

type slotInfo struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Owner     string `yaml:"owner"`
	Prototype any    `yaml:"prototype,omitempty"`
}
