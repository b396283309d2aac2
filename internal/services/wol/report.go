package wol

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fgeck/wakeonwan/internal/models"
)

// WriteReport writes a human-readable summary of a dispatch to w.
func WriteReport(w io.Writer, report *models.WakeReport) error {
	dest := report.Destination

	if report.DryRun {
		if _, err := fmt.Fprintln(w, "Dry run: no packets were sent"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Destination: %s (%s, host %s)\n", dest, dest.Family, dest.Host); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Port: %d\n\n", dest.Port); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MAC\tPAYLOAD\tSTATUS")
	for _, res := range report.Results {
		fmt.Fprintf(tw, "%s\t%d bytes\t%s\n", label(res), len(res.Payload), status(res))
	}
	return tw.Flush()
}

func label(res models.DispatchResult) string {
	if res.Input != "" && res.Payload == nil {
		return res.Input
	}
	return res.MAC.String()
}

func status(res models.DispatchResult) string {
	switch {
	case res.Error != nil:
		return "failed: " + res.Error.Error()
	case res.DryRun:
		return "would send"
	case res.Sent:
		return "sent"
	default:
		return "pending"
	}
}
