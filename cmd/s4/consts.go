/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

const (
	outputText = "text"
	outputYAML = "yaml"
)

const defaultCacheProvider = "hashicorp"
