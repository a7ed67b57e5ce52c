package chain

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"chainplan/internal/model"
)

// GenerateReport describes the chain as a table of links. In verbose mode
// each row also shows the directive its output will end with.
func GenerateReport(c model.Chain, verbose bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Chain of %d plans from pattern %q\n", len(c.Links), c.Pattern)
	fmt.Fprintf(&b, "Distinct input files: %d\n\n", c.DistinctInputs())

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	if verbose {
		fmt.Fprintln(tw, "#\tINPUT\tOUTPUT\tNEXT\tDIRECTIVE")
	} else {
		fmt.Fprintln(tw, "#\tINPUT\tOUTPUT\tNEXT")
	}

	seen := make(map[string]bool, len(c.Links))
	for _, link := range c.Links {
		input := link.Input
		if seen[input] {
			input += " " + model.IconRepeat
		}
		seen[link.Input] = true

		next := model.IconLink + " " + link.Next.String()
		if link.Next.IsTerminal() {
			next = model.IconTerminal + " " + link.Next.String()
		}

		if verbose {
			directive := strings.TrimSuffix(model.Directive(link.Next), "\n")
			if directive == "" {
				directive = "-"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", link.Index, input, link.Output, next, directive)
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", link.Index, input, link.Output, next)
		}
	}
	_ = tw.Flush()

	return b.String()
}

// Summary is the one-line message printed after a successful run.
func Summary(r Result) string {
	first, last := "", ""
	if len(r.Chain.Links) > 0 {
		first = r.Chain.Links[0].Output
		last = r.Chain.Links[len(r.Chain.Links)-1].Output
	}
	return fmt.Sprintf("Chained %d plans into %s %s %s", r.Written, first, model.IconLink, last)
}
