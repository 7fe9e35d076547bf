package handlers

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"katalog/internal/models"
	"katalog/internal/services"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// renderTable prints products as an aligned, numbered table.
func renderTable(w io.Writer, title string, products []models.Product) {
	if title != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	}
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tName\tModel\tColor\tStorage\tPrice\tStock\t")
	for i, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%dGB\t%.2f\t%d\t\n",
			i+1, shortID(p.ID), p.Name, p.Model, p.Color, p.StorageGB, p.Price, p.Stock)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d product(s).\n", len(products))
}

func renderDetails(w io.Writer, p *models.Product) {
	fmt.Fprintf(w, "\nID: %s\n", p.ID)
	fmt.Fprintln(w, p.String())
	fmt.Fprintln(w, p.Describe())
}

func renderStatistics(w io.Writer, stats services.Statistics) {
	fmt.Fprintln(w, "\nCatalog statistics")
	fmt.Fprintf(w, "Products:      %d\n", stats.Count)
	fmt.Fprintf(w, "Total stock:   %d\n", stats.TotalStock)
	fmt.Fprintf(w, "Average price: %.2f\n", stats.AveragePrice)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range models.Kinds {
		fmt.Fprintf(tw, "  %s\t%d\t\n", k.Label(), stats.ByKind[k])
	}
	_ = tw.Flush()
}
