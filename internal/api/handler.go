package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-extractor/internal/buildinfo"
	"github.com/insightdelivered/statement-extractor/internal/config"
	"github.com/insightdelivered/statement-extractor/internal/extractor"
	"github.com/insightdelivered/statement-extractor/internal/logger"
	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/parser"
	"github.com/insightdelivered/statement-extractor/internal/statement"
)

// modelAuto asks the server to guess the import model from the text.
const modelAuto = "auto"

// ExtractResponse is the JSON response from the /api/extract endpoint.
type ExtractResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	RunID        string               `json:"runId,omitempty"`
	Model        string               `json:"model,omitempty"`
	Parser       string               `json:"parser,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	Raw          int                  `json:"raw"`
	TotalDebit   string               `json:"totalDebit"`
	TotalCredit  string               `json:"totalCredit"`
}

// ModelInfo describes one supported import model.
type ModelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Service *statement.Service
	Config  *config.Config
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/health", h.HandleHealth)
	api.Get("/models", h.HandleModels)
	api.Post("/extract", h.HandleExtract)

	if h.Config != nil && h.Config.Server.StaticDir != "" {
		app.Static("/", h.Config.Server.StaticDir)
	}
}

// HandleHealth reports liveness and version.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": buildinfo.Version,
		"engine":  "fiber",
	})
}

// HandleModels lists the supported import models.
func (h *Handler) HandleModels(c *fiber.Ctx) error {
	out := make([]ModelInfo, 0, len(models.ImportModels))
	for _, m := range models.ImportModels {
		out = append(out, ModelInfo{ID: string(m), Name: parser.ForModel(m).Name()})
	}
	return c.JSON(out)
}

// HandleExtract accepts a multipart upload with either a "file" (PDF) or a
// "text" field holding already extracted text, plus a "model" or "card"
// field selecting the layout.
func (h *Handler) HandleExtract(c *fiber.Ctx) error {
	model, err := h.resolveModel(c.FormValue("model"), c.FormValue("card"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}

	var stmt *models.Statement
	if text := c.FormValue("text"); strings.TrimSpace(text) != "" {
		lines := parser.SplitLines([]string{text})
		model = h.detectIfAuto(model, lines)
		stmt = h.Service.Extract(lines, model)
	} else {
		var ferr *fiber.Error
		stmt, ferr = h.extractUpload(c, model)
		if ferr != nil {
			return writeError(c, ferr.Code, ferr.Message)
		}
	}

	return c.JSON(newExtractResponse(stmt))
}

func (h *Handler) extractUpload(c *fiber.Ctx, model string) (*models.Statement, *fiber.Error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "No file uploaded. Use form field 'file' or 'text'.")
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only PDF files are supported.")
	}

	file, err := header.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to open uploaded file.")
	}
	defer file.Close()

	if strings.EqualFold(model, modelAuto) {
		// Detection needs the text before a parser can be picked.
		pages, err := extractor.ExtractReader(file, header.Size)
		if err != nil {
			return nil, extractionError(err)
		}
		lines := parser.SplitLines(pages)
		return h.Service.Extract(lines, h.detectIfAuto(model, lines)), nil
	}

	stmt, err := h.Service.ExtractDocument(file, header.Size, model)
	if err != nil {
		return nil, extractionError(err)
	}
	return stmt, nil
}

func extractionError(err error) *fiber.Error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, extractor.ErrUnreadable) {
		status = fiber.StatusUnprocessableEntity
	}
	return fiber.NewError(status, fmt.Sprintf("PDF extraction failed: %v", err))
}

// resolveModel prefers an explicit model; otherwise it looks the card up in
// the configuration. An unknown model is passed through and yields an empty
// result, an unknown card is a client error.
func (h *Handler) resolveModel(model, card string) (string, error) {
	if model != "" || card == "" {
		return model, nil
	}
	if h.Config != nil {
		if m, ok := h.Config.ModelForCard(card); ok {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown card %q", card)
}

func (h *Handler) detectIfAuto(model string, lines []string) string {
	if !strings.EqualFold(model, modelAuto) {
		return model
	}
	detected, ok := h.Service.Detect(lines)
	if !ok {
		return ""
	}
	return string(detected)
}

func newExtractResponse(stmt *models.Statement) ExtractResponse {
	txns := stmt.Transactions
	if txns == nil {
		txns = []models.Transaction{}
	}

	debit, credit := Totals(txns)
	return ExtractResponse{
		Success:      true,
		RunID:        stmt.RunID,
		Model:        string(stmt.Model),
		Parser:       parser.New(string(stmt.Model)).Name(),
		Transactions: txns,
		Count:        len(txns),
		Raw:          stmt.Raw,
		TotalDebit:   debit.StringFixed(2),
		TotalCredit:  credit.StringFixed(2),
	}
}

// Totals sums purchases and credits separately. Credits are returned as a
// positive value. Amounts that are not numbers are ignored.
func Totals(txns []models.Transaction) (debit, credit decimal.Decimal) {
	for _, txn := range txns {
		amt, err := decimal.NewFromString(txn.Amount)
		if err != nil {
			continue
		}
		if amt.IsNegative() {
			credit = credit.Add(amt.Abs())
		} else {
			debit = debit.Add(amt)
		}
	}
	return debit, credit
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	log := logger.FromContext(c.UserContext())
	log.Warn().Int("status", status).Msg(msg)
	return c.Status(status).JSON(ExtractResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
		TotalDebit:   "0.00",
		TotalCredit:  "0.00",
	})
}
