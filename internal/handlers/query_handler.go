package handlers

import (
	"fmt"

	"katalog/internal/models"
	"katalog/pkg/console"
)

// HandleSearch matches the keyword against name, model and color.
func (h *ProductHandler) HandleSearch(c *console.Ctx) error {
	keyword, err := c.Prompt("Keyword: ")
	if err != nil {
		return err
	}
	if keyword == "" {
		return fmt.Errorf("%w: keyword cannot be empty", console.ErrInvalidInput)
	}
	renderTable(c.Writer(), fmt.Sprintf("Results for %q", keyword), h.service.Search(keyword))
	return nil
}

func (h *ProductHandler) HandleFilterByColor(c *console.Ctx) error {
	color, err := c.Prompt("Color: ")
	if err != nil {
		return err
	}
	if color == "" {
		return fmt.Errorf("%w: color cannot be empty", console.ErrInvalidInput)
	}
	renderTable(c.Writer(), fmt.Sprintf("Color %q", color), h.service.FilterByColor(color))
	return nil
}

// HandleFilterByPrice shows products priced within an inclusive range.
func (h *ProductHandler) HandleFilterByPrice(c *console.Ctx) error {
	minPrice, err := c.PromptFloat("Minimum price: ")
	if err != nil {
		return err
	}
	maxPrice, err := c.PromptFloat("Maximum price: ")
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Price %.2f - %.2f", minPrice, maxPrice)
	renderTable(c.Writer(), title, h.service.FilterByPriceRange(minPrice, maxPrice))
	return nil
}

func (h *ProductHandler) HandleFilterByKind(c *console.Ctx) error {
	idx, err := c.Choose("Product type: ", kindLabels())
	if err != nil {
		return err
	}
	kind := models.Kinds[idx]
	renderTable(c.Writer(), kind.Label(), h.service.FilterByKind(kind))
	return nil
}

func (h *ProductHandler) HandleSortByPrice(ascending bool) console.HandlerFunc {
	title := "By price, highest first"
	if ascending {
		title = "By price, lowest first"
	}
	return func(c *console.Ctx) error {
		renderTable(c.Writer(), title, h.service.SortByPrice(ascending))
		return nil
	}
}

func (h *ProductHandler) HandleSortByName(c *console.Ctx) error {
	renderTable(c.Writer(), "By name", h.service.SortByName())
	return nil
}

func (h *ProductHandler) HandleStatistics(c *console.Ctx) error {
	renderStatistics(c.Writer(), h.service.Statistics())
	return nil
}
