// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export writes gauges as documents.
//
// Formats live in sub-packages that register themselves on import:
//
//	import (
//	    "github.com/gogpu/dodecagon/export"
//	    _ "github.com/gogpu/dodecagon/export/raster" // "png"
//	    _ "github.com/gogpu/dodecagon/export/svg"    // "svg"
//	)
//
//	enc, err := export.NewEncoder("svg", export.Options{})
//	if err != nil {
//	    return err
//	}
//	err = enc.Encode(w, disk)
package export
