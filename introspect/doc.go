// Copyright 2025 Prism ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package introspect turns assembled module trees into ordered,
// JSON-serializable layer descriptions.
//
// # Overview
//
// A Parser walks any nn.Module depth-first and emits one LayerNode per
// module: its type, the shapes of its direct parameters, an
// allow-listed subset of its attributes, and, for residual blocks, the
// skip-connection metadata (fusion strategy plus the optional "adjust"
// dimension-adjustment layer, hoisted out of children).
//
// # Basic Usage
//
//	parser, err := introspect.NewParser("parse.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	node, err := parser.Parse(model)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, _ := json.MarshalIndent(node, "", "  ")
//	os.Stdout.Write(data)
//
// Parsing is read-only and deterministic; a Parser is immutable after
// construction and safe for concurrent use on independent models.
package introspect
