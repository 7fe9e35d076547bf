package handlers

import (
	"path/filepath"
	"strings"

	"katalog/internal/services"
	"katalog/pkg/console"
)

// DataHandler serves the snapshot and CSV actions.
type DataHandler struct {
	service *services.ProductService
	csvName string
}

// NewDataHandler creates a DataHandler that offers csvFile as the default
// CSV name.
func NewDataHandler(service *services.ProductService, csvFile string) *DataHandler {
	return &DataHandler{
		service: service,
		csvName: strings.TrimSuffix(filepath.Base(csvFile), filepath.Ext(csvFile)),
	}
}

// RegisterRoutes registers the data management sub-menu under key.
func (h *DataHandler) RegisterRoutes(menu *console.Menu, key string) {
	data := menu.Group(key, "Data management")
	data.Handle("1", "Save snapshot", h.HandleSaveSnapshot)
	data.Handle("2", "Reload snapshot", h.HandleLoadSnapshot)
	data.Handle("3", "Export to CSV", h.HandleExportCSV)
	data.Handle("4", "Import from CSV", h.HandleImportCSV)
}

func (h *DataHandler) HandleSaveSnapshot(c *console.Ctx) error {
	if err := h.service.SaveSnapshot(); err != nil {
		return err
	}
	c.Printf("Snapshot saved (%d products).\n", h.service.Statistics().Count)
	return nil
}

// HandleLoadSnapshot discards the in-memory catalog in favor of the saved one.
func (h *DataHandler) HandleLoadSnapshot(c *console.Ctx) error {
	ok, err := c.Confirm("Replace the current catalog with the saved snapshot?")
	if err != nil {
		return err
	}
	if !ok {
		c.Println("Reload cancelled.")
		return nil
	}

	n, err := h.service.LoadSnapshot()
	if err != nil {
		c.Println("The snapshot could not be read; the catalog is now empty.")
		return err
	}
	c.Printf("Loaded %d products.\n", n)
	return nil
}

// HandleExportCSV writes the summary columns of every product to a CSV file.
// Variant attributes are not exported.
func (h *DataHandler) HandleExportCSV(c *console.Ctx) error {
	name, err := h.promptName(c)
	if err != nil {
		return err
	}
	path, err := h.service.ExportCSV(name)
	if err != nil {
		return err
	}
	c.Printf("Exported %d products to %s.\n", h.service.Statistics().Count, path)
	return nil
}

// HandleImportCSV appends the products of a CSV file and lists skipped rows.
func (h *DataHandler) HandleImportCSV(c *console.Ctx) error {
	name, err := h.promptName(c)
	if err != nil {
		return err
	}
	n, skipped, err := h.service.ImportCSV(name)
	if err != nil && n == 0 {
		return err
	}
	c.Printf("Imported %d products, skipped %d rows.\n", n, len(skipped))
	for _, row := range skipped {
		c.Printf("  %v\n", row)
	}
	return err
}

func (h *DataHandler) promptName(c *console.Ctx) (string, error) {
	return c.PromptDefault("File name ["+h.csvName+"]: ", h.csvName)
}
