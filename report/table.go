// Package report renders the run's outputs: the per-partition comparison
// table and the winning partition's convergence chart.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/scitune/scitune/pkg/errors"
	"github.com/scitune/scitune/search"
)

// RenderTable writes the partition comparison as an aligned text table, one
// row per partition in partition order.
func RenderTable(w io.Writer, rows []search.SummaryRow) error {
	if len(rows) == 0 {
		return errors.NewValueError("report.RenderTable", "no rows to render")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Partition\tAccuracy\tConfiguration")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Partition, row.Accuracy, row.Configuration)
	}
	return tw.Flush()
}
