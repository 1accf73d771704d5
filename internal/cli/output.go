package cli

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func printOut(cmd *cobra.Command, v interface{}) error {
	format, _ := cmd.Flags().GetString("output")

	return writeOut(cmd.OutOrStdout(), format, v)
}

func writeOut(w io.Writer, format string, v interface{}) error {
	switch format {
	case "", outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown output format: %s", format)
	}
}
