// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli holds helpers shared by the commands under cmd/.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// SetLogLevel configures the standard logrus logger from a level name
// and sends its output to stderr. Unknown names fall back to info.
func SetLogLevel(level string) {
	setLogLevel(level, os.Stdout)
	log.SetOutput(os.Stderr)
}

func setLogLevel(level string, notice io.Writer) {
	switch strings.ToLower(level) {
	case "all":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
		fmt.Fprintf(notice, "Invalid log level '%s'. Setting log level to 'info'\n", level)
	}
}
