package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"katalog/internal/models"
	"katalog/internal/services"
	"katalog/pkg/console"
)

var errEmptyCatalog = errors.New("the catalog is empty")

// defaultStorageGB is offered when adding variants that ship with a single
// capacity.
var defaultStorageGB = map[models.Kind]int{
	models.KindWatch:   64,
	models.KindEarbuds: 256,
}

// ProductHandler serves the product menu actions.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product actions on the menu.
func (h *ProductHandler) RegisterRoutes(menu *console.Menu) {
	menu.Handle("1", "List products", h.HandleListProducts)
	menu.Handle("2", "Product details", h.HandleShowProduct)
	menu.Handle("3", "Add product", h.HandleCreateProduct)
	menu.Handle("4", "Update price or stock", h.HandleUpdateProduct)
	menu.Handle("5", "Delete product", h.HandleDeleteProduct)
	menu.Handle("6", "Search products", h.HandleSearch)

	filter := menu.Group("7", "Filter products")
	filter.Handle("1", "By color", h.HandleFilterByColor)
	filter.Handle("2", "By price range", h.HandleFilterByPrice)
	filter.Handle("3", "By product type", h.HandleFilterByKind)

	sort := menu.Group("8", "Sort products")
	sort.Handle("1", "Price, lowest first", h.HandleSortByPrice(true))
	sort.Handle("2", "Price, highest first", h.HandleSortByPrice(false))
	sort.Handle("3", "Name", h.HandleSortByName)

	menu.Handle("9", "Statistics", h.HandleStatistics)
}

// HandleListProducts shows the whole catalog in insertion order.
func (h *ProductHandler) HandleListProducts(c *console.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return err
	}
	renderTable(c.Writer(), "All products", products)
	return nil
}

func (h *ProductHandler) HandleShowProduct(c *console.Ctx) error {
	p, err := h.selectProduct(c)
	if err != nil {
		return err
	}
	renderDetails(c.Writer(), p)
	return nil
}

// HandleCreateProduct asks for a product type and its attributes, then adds it.
func (h *ProductHandler) HandleCreateProduct(c *console.Ctx) error {
	idx, err := c.Choose("Product type: ", kindLabels())
	if err != nil {
		return err
	}
	kind := models.Kinds[idx]

	model, err := c.Prompt("Model: ")
	if err != nil {
		return err
	}
	spec, err := promptSpec(c, kind)
	if err != nil {
		return err
	}
	color, err := c.Prompt("Color: ")
	if err != nil {
		return err
	}
	storage, err := promptStorage(c, kind)
	if err != nil {
		return err
	}
	price, err := c.PromptFloat("Price: ")
	if err != nil {
		return err
	}
	stock, err := c.PromptInt("Stock: ")
	if err != nil {
		return err
	}

	product, err := models.New(spec, model, price, stock, color, storage)
	if err != nil {
		return err
	}
	if err := h.service.CreateProduct(product); err != nil {
		return err
	}
	c.Printf("Added: %s\n", product.Summary())
	return nil
}

// HandleUpdateProduct changes the price and/or stock of a product. Both
// changes are applied together or not at all.
func (h *ProductHandler) HandleUpdateProduct(c *console.Ctx) error {
	p, err := h.selectProduct(c)
	if err != nil {
		return err
	}
	renderDetails(c.Writer(), p)

	priceText, err := c.Prompt(fmt.Sprintf("New price (Enter to keep %.2f): ", p.Price))
	if err != nil {
		return err
	}
	stockText, err := c.Prompt(fmt.Sprintf("New stock (Enter to keep %d): ", p.Stock))
	if err != nil {
		return err
	}
	if priceText == "" && stockText == "" {
		c.Println("Nothing changed.")
		return nil
	}

	var edits []func(*models.Product) error
	if priceText != "" {
		price, err := console.ParseFloat(priceText)
		if err != nil {
			return err
		}
		edits = append(edits, func(p *models.Product) error { return p.SetPrice(price) })
	}
	if stockText != "" {
		stock, err := console.ParseInt(stockText)
		if err != nil {
			return err
		}
		edits = append(edits, func(p *models.Product) error { return p.SetStock(stock) })
	}

	updated, err := h.service.EditProduct(p.ID, func(p *models.Product) error {
		for _, edit := range edits {
			if err := edit(p); err != nil {
				return err
			}
		}
		return nil
	})
	if updated == nil {
		return err
	}
	c.Printf("Updated: %s\n", updated.Summary())
	return err
}

// HandleDeleteProduct removes a product after confirmation.
func (h *ProductHandler) HandleDeleteProduct(c *console.Ctx) error {
	p, err := h.selectProduct(c)
	if err != nil {
		return err
	}
	renderDetails(c.Writer(), p)

	ok, err := c.Confirm("Delete this product?")
	if err != nil {
		return err
	}
	if !ok {
		c.Println("Deletion cancelled.")
		return nil
	}
	if err := h.service.DeleteProduct(p.ID); err != nil {
		return err
	}
	c.Printf("Deleted %s %s.\n", p.Name, p.Model)
	return nil
}

// selectProduct lists the catalog and resolves the user's pick, given
// either as the row number or as the product ID.
func (h *ProductHandler) selectProduct(c *console.Ctx) (*models.Product, error) {
	products, err := h.service.ListProducts()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errEmptyCatalog
	}
	renderTable(c.Writer(), "", products)

	choice, err := c.Prompt("Product number or ID: ")
	if err != nil {
		return nil, err
	}
	if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(products) {
		p := products[n-1]
		return &p, nil
	}
	return h.service.GetProduct(choice)
}

func kindLabels() []string {
	labels := make([]string, len(models.Kinds))
	for i, k := range models.Kinds {
		labels[i] = k.Label()
	}
	return labels
}

func promptSpec(c *console.Ctx, kind models.Kind) (models.Spec, error) {
	defaults, _ := models.DefaultSpec(kind)

	switch d := defaults.(type) {
	case models.VisionDeviceSpec:
		return d, nil
	case models.LaptopSpec:
		screen, err := c.PromptDefault(fmt.Sprintf("Screen size [%s]: ", d.ScreenSize), d.ScreenSize)
		if err != nil {
			return nil, err
		}
		chip, err := c.PromptDefault(fmt.Sprintf("Chip [%s]: ", d.Chip), d.Chip)
		if err != nil {
			return nil, err
		}
		return models.LaptopSpec{ScreenSize: screen, Chip: chip}, nil
	case models.TabletSpec:
		screen, err := c.PromptDefault(fmt.Sprintf("Screen size [%s]: ", d.ScreenSize), d.ScreenSize)
		if err != nil {
			return nil, err
		}
		cellular, err := c.Confirm("Cellular model?")
		if err != nil {
			return nil, err
		}
		return models.TabletSpec{ScreenSize: screen, Cellular: cellular}, nil
	case models.PhoneSpec:
		screen, err := c.PromptDefault(fmt.Sprintf("Screen size [%s]: ", d.ScreenSize), d.ScreenSize)
		if err != nil {
			return nil, err
		}
		camera, err := c.PromptDefault(fmt.Sprintf("Camera [%s]: ", d.Camera), d.Camera)
		if err != nil {
			return nil, err
		}
		return models.PhoneSpec{ScreenSize: screen, Camera: camera}, nil
	case models.WatchSpec:
		size, err := c.PromptDefault(fmt.Sprintf("Case size [%s]: ", d.CaseSize), d.CaseSize)
		if err != nil {
			return nil, err
		}
		material, err := c.PromptDefault(fmt.Sprintf("Case material [%s]: ", d.CaseMaterial), d.CaseMaterial)
		if err != nil {
			return nil, err
		}
		cellular, err := c.Confirm("Cellular model?")
		if err != nil {
			return nil, err
		}
		return models.WatchSpec{CaseSize: size, CaseMaterial: material, Cellular: cellular}, nil
	case models.EarbudsSpec:
		anc, err := c.PromptDefault(fmt.Sprintf("Noise cancellation [%s]: ", d.NoiseCancellation), d.NoiseCancellation)
		if err != nil {
			return nil, err
		}
		hours, err := c.PromptDefault(fmt.Sprintf("Battery life in hours [%d]: ", d.BatteryLifeHours), strconv.Itoa(d.BatteryLifeHours))
		if err != nil {
			return nil, err
		}
		battery, err := console.ParseInt(hours)
		if err != nil {
			return nil, err
		}
		return models.EarbudsSpec{NoiseCancellation: anc, BatteryLifeHours: battery}, nil
	default:
		return nil, fmt.Errorf("%w: unknown product type", console.ErrInvalidInput)
	}
}

func promptStorage(c *console.Ctx, kind models.Kind) (int, error) {
	if def, ok := defaultStorageGB[kind]; ok {
		s, err := c.PromptDefault(fmt.Sprintf("Storage in GB [%d]: ", def), strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		return console.ParseInt(s)
	}
	return c.PromptInt("Storage in GB: ")
}
