package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"isaext/internal/classify"
	"isaext/internal/feature"
	"isaext/internal/isaext/styles"
)

type featureEntry struct {
	feature.Info
	Ops []string `json:"ops,omitempty"`
}

// opsByFeature collects the mnemonics whose table rules report each
// feature.
func opsByFeature() map[feature.ID][]string {
	seen := make(map[feature.ID]map[string]bool)
	for _, r := range classify.Table() {
		for _, id := range r.Features {
			if seen[id] == nil {
				seen[id] = make(map[string]bool)
			}
			seen[id][strings.ToLower(r.Op.String())] = true
		}
	}
	out := make(map[feature.ID][]string, len(seen))
	for id, names := range seen {
		for name := range names {
			out[id] = append(out[id], name)
		}
		sort.Strings(out[id])
	}
	return out
}

func newFeaturesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "features",
		Short: "List the features isaext can report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			withOps, _ := cmd.Flags().GetBool("ops")
			var ops map[feature.ID][]string
			if withOps {
				ops = opsByFeature()
			}

			if j, _ := cmd.Flags().GetBool("json"); j {
				entries := make([]featureEntry, len(feature.All))
				for i, info := range feature.All {
					entries[i] = featureEntry{Info: info, Ops: ops[info.ID]}
				}
				bts, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal features: %w", err)
				}
				fmt.Fprintln(w, string(bts))
				return nil
			}
			color, _ := terminal(w)
			for _, info := range feature.All {
				name := fmt.Sprintf("%-18s", info.ID)
				if color {
					name = styles.Feature(info.ID).Render(name)
				}
				fmt.Fprintf(w, "%s %s\n", name, info.Description)
				if withOps && len(ops[info.ID]) > 0 {
					fmt.Fprintf(w, "%18s   %s\n", "", strings.Join(ops[info.ID], " "))
				}
			}
			return nil
		},
	}
	c.Flags().BoolP("json", "j", false, "Output as JSON")
	c.Flags().Bool("ops", false, "Also list the instructions that require each feature")
	return c
}
