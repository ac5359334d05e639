package handler

import (
	"io"
	"strconv"

	"go-stockdocs/internal/service"

	"github.com/gofiber/fiber/v2"
)

type EntryHandler struct {
	entryService service.EntryService
}

func NewEntryHandler(entryService service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// GET /api/v1/product-entries
func (h *EntryHandler) GetEntries(c *fiber.Ctx) error {
	entries, err := h.entryService.GetAllEntries()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch entries"})
	}
	return c.JSON(entries)
}

// GET /api/v1/product-entries/:id
func (h *EntryHandler) GetEntry(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entry ID"})
	}

	entry, err := h.entryService.GetEntryByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Entry not found"})
	}
	return c.JSON(entry)
}

// CreateEntry handles the multipart payload: scalar form fields plus exactly
// one attached invoice file.
// POST /api/v1/product-entries
func (h *EntryHandler) CreateEntry(c *fiber.Ctx) error {
	req, err := parseEntryForm(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	file, err := readFormFile(c, "file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "An invoice file is required"})
	}

	entry, err := h.entryService.CreateEntry(req, file, getActorUID(c))
	if err != nil {
		switch err {
		case service.ErrProductNotFound, service.ErrSupplierNotFound:
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Entry recorded", "data": entry.ToResponse()})
}

// DELETE /api/v1/product-entries/:id
func (h *EntryHandler) DeleteEntry(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entry ID"})
	}

	if err := h.entryService.DeleteEntry(id, getActorUID(c)); err != nil {
		if err == service.ErrEntryNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Entry deleted"})
}

func parseEntryForm(c *fiber.Ctx) (*service.CreateEntryRequest, error) {
	productID, err := parseID(c.FormValue("product_id"))
	if err != nil {
		return nil, fiber.NewError(400, "invalid product_id")
	}
	supplierID, err := parseID(c.FormValue("supplier_id"))
	if err != nil {
		return nil, fiber.NewError(400, "invalid supplier_id")
	}
	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		return nil, fiber.NewError(400, "invalid quantity")
	}

	return &service.CreateEntryRequest{
		ProductID:     productID,
		SupplierID:    supplierID,
		EntryDate:     c.FormValue("entry_date"),
		Quantity:      quantity,
		UnitValue:     c.FormValue("unit_value"),
		TotalValue:    c.FormValue("total_value"),
		InvoiceNumber: c.FormValue("invoice_number"),
		Batch:         c.FormValue("batch"),
	}, nil
}

// readFormFile pulls the single binary part out of the multipart form.
func readFormFile(c *fiber.Ctx, field string) (*service.FileUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &service.FileUpload{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
