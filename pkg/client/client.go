// Package client is a typed HTTP client for the StockDocs API, together with
// the list-filtering and lookup conveniences a frontend applies to fetched
// collections.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"go-stockdocs/internal/model"
	"go-stockdocs/internal/service"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			if apiErr.Error != "" {
				return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
			}
			if apiErr.Message != "" {
				return fmt.Errorf("%s: %s", resp.Status, apiErr.Message)
			}
		}
		return fmt.Errorf("request failed: %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) getJSON(path string, out interface{}) error {
	return c.do(http.MethodGet, path, nil, "", out)
}

func (c *Client) postJSON(path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(http.MethodPost, path, bytes.NewReader(payload), "application/json", out)
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(email, password string) (*service.LoginResponse, error) {
	var resp service.LoginResponse
	err := c.postJSON("/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

func (c *Client) Register(req *service.CreateUserRequest) (*service.RegisterResult, error) {
	var result service.RegisterResult
	if err := c.postJSON("/api/v1/auth/register", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Whoami() (*model.UserResponse, error) {
	var user model.UserResponse
	if err := c.getJSON("/api/v1/auth/whoami", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers() ([]model.UserResponse, error) {
	var users []model.UserResponse
	if err := c.getJSON("/api/v1/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ListSuppliers() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := c.getJSON("/api/v1/suppliers", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (c *Client) ListProducts() ([]model.Product, error) {
	var products []model.Product
	if err := c.getJSON("/api/v1/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ListEntries() ([]model.EntryResponse, error) {
	var entries []model.EntryResponse
	if err := c.getJSON("/api/v1/product-entries", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DocumentQuery mirrors the server-side document filters.
type DocumentQuery struct {
	ID         string
	UserID     string
	FileType   string
	FileName   string
	UploadDate string
}

func (c *Client) ListDocuments(query DocumentQuery) ([]model.DocumentResponse, error) {
	values := url.Values{}
	if query.ID != "" {
		values.Set("id", query.ID)
	}
	if query.UserID != "" {
		values.Set("user_id", query.UserID)
	}
	if query.FileType != "" {
		values.Set("file_type", query.FileType)
	}
	if query.FileName != "" {
		values.Set("filename", query.FileName)
	}
	if query.UploadDate != "" {
		values.Set("upload_date", query.UploadDate)
	}

	path := "/api/v1/documents"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var documents []model.DocumentResponse
	if err := c.getJSON(path, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

// EntrySubmission is the client-side shape of a stock receipt before it is
// encoded as multipart form data.
type EntrySubmission struct {
	ProductID     uint
	SupplierID    uint
	EntryDate     string
	Quantity      int
	UnitValue     string
	TotalValue    string
	InvoiceNumber string
	Batch         string
	FileName      string
	FileType      string
	FileData      []byte
}

// CreateEntry submits a stock receipt. The file check happens here, before
// any network call, mirroring the form-level validation of the UI.
func (c *Client) CreateEntry(sub EntrySubmission) (*model.EntryResponse, error) {
	if len(sub.FileData) == 0 {
		return nil, ErrFileMissing
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"product_id":     fmt.Sprint(sub.ProductID),
		"supplier_id":    fmt.Sprint(sub.SupplierID),
		"entry_date":     sub.EntryDate,
		"quantity":       fmt.Sprint(sub.Quantity),
		"unit_value":     sub.UnitValue,
		"total_value":    sub.TotalValue,
		"invoice_number": sub.InvoiceNumber,
		"batch":          sub.Batch,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, sub.FileName))
	header.Set("Content-Type", sub.FileType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(sub.FileData); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var envelope struct {
		Data model.EntryResponse `json:"data"`
	}
	if err := c.do(http.MethodPost, "/api/v1/product-entries", &buf, writer.FormDataContentType(), &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// DownloadDocument fetches the raw stored bytes of a document.
func (c *Client) DownloadDocument(id uint) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/v1/documents/%d/download", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("download failed: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
