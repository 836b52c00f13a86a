package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// Stats prints the request counters and latency totals gathered so far.
func (a *App) Stats(ctx context.Context) error {
	samples, err := a.metrics.Snapshot()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	if len(samples) == 0 {
		printlnFn("No requests yet.")
		return nil
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tLABELS\tVALUE")
	for _, s := range samples {
		keys := make([]string, 0, len(s.Labels))
		for k := range s.Labels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		labels := make([]string, 0, len(keys))
		for _, k := range keys {
			labels = append(labels, k+"="+s.Labels[k])
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\n", s.Name, strings.Join(labels, ","), s.Value)
	}
	_ = tw.Flush()
	printlnFn(strings.TrimRight(b.String(), "\n"))
	return nil
}
