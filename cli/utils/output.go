package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v2"

	"github.com/indexer-tools/actionq/pkg/types"
)

// Output formats supported by the CLI.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// RenderActions writes the results in the requested format.
func RenderActions(w io.Writer, format string, actions []types.ActionResult) error {
	switch format {
	case FormatTable:
		return renderTable(w, actions)
	case FormatYAML:
		data, err := yaml.Marshal(toMaps(actions))
		if err != nil {
			return fmt.Errorf("failed to render yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(actions)
	default:
		return fmt.Errorf("unknown output format %q: must be one of [table, yaml, json]", format)
	}
}

func renderTable(w io.Writer, actions []types.ActionResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tDEPLOYMENT\tALLOCATION\tAMOUNT\tPOI\tFORCE\tPRIORITY\tSOURCE\tREASON\tNETWORK")
	for _, a := range actions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			a.ID, a.Type, a.Status, a.DeploymentID, orDash(a.AllocationID), orDash(a.Amount),
			orDash(a.POI), strconv.FormatBool(a.Force), a.Priority, a.Source, a.Reason, a.ProtocolNetwork)
	}
	return tw.Flush()
}

// toMaps keeps YAML output keyed the same way as the JSON wire shapes.
func toMaps(actions []types.ActionResult) []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(actions))
	for _, action := range actions {
		data, err := json.Marshal(action)
		if err != nil {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		maps = append(maps, m)
	}
	return maps
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
