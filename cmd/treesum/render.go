package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jamesainslie/treesum/pkg/treesum/output"
	"github.com/spf13/viper"
)

// render formats a result with the configured formatter and prints it
// to stdout.
func render(r *output.Result) error {
	name := viper.GetString("format")
	formatter, err := output.Get(name)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(output.Available(), ", "))
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, r); err != nil {
		return err
	}
	fmt.Print(buf.String())
	return nil
}
