package handler

import (
	"time"

	"go-stockdocs/internal/repository"
	"go-stockdocs/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// GetDocuments returns documents matching the optional query filters.
// Absent filters impose no constraint; present ones are ANDed.
// GET /api/v1/documents?filename=&id=&file_type=&user_id=&upload_date=
func (h *DocumentHandler) GetDocuments(c *fiber.Ctx) error {
	var filter repository.DocumentFilter

	if raw := c.Query("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid id filter"})
		}
		filter.ID = &id
	}
	if raw := c.Query("user_id"); raw != "" {
		userID, err := parseID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid user_id filter"})
		}
		filter.UserID = &userID
	}
	if raw := c.Query("file_type"); raw != "" {
		filter.FileType = &raw
	}
	if raw := c.Query("filename"); raw != "" {
		filter.FileName = &raw
	}
	if raw := c.Query("upload_date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid upload_date filter, use YYYY-MM-DD"})
		}
		filter.UploadDate = &date
	}

	documents, err := h.documentService.Find(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch documents"})
	}
	return c.JSON(documents)
}

// GET /api/v1/documents/:id
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	document, err := h.documentService.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Document not found"})
	}
	return c.JSON(document)
}

// UploadDocument handles a multipart upload: user_id, optional product_id,
// and one file part.
// POST /api/v1/documents
func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
	userID, err := parseID(c.FormValue("user_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user_id"})
	}

	req := &service.UploadDocumentRequest{UserID: userID}
	if raw := c.FormValue("product_id"); raw != "" {
		productID, err := parseID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid product_id"})
		}
		req.ProductID = &productID
	}

	file, err := readFormFile(c, "file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "A file is required"})
	}

	document, err := h.documentService.Upload(req, file, getActorUID(c))
	if err != nil {
		switch err {
		case service.ErrUserNotFound, service.ErrProductNotFound:
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case service.ErrDocumentExists:
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Document uploaded", "data": document.ToResponse()})
}

// DownloadDocument streams the stored bytes back to the client.
// GET /api/v1/documents/:id/download
func (h *DocumentHandler) DownloadDocument(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	document, err := h.documentService.Download(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Document not found"})
	}

	c.Set(fiber.HeaderContentType, document.FileType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+document.FileName+`"`)
	return c.Send(document.Content)
}

// DELETE /api/v1/documents/:id
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	if err := h.documentService.Delete(id, getActorUID(c)); err != nil {
		if err == service.ErrDocumentNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Document deleted"})
}
