/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

// Schema file extension, used by ParseFS
const SchemaFileExt = ".s4"

// Body of RETURNS ... THEN NEXT method joins own label and next method result with this separator
const nextSeparator = " > "
