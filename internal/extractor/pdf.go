package extractor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnreadable is returned when a document cannot be turned into text.
	ErrUnreadable = errors.New("document could not be read")
	// ErrNoPages is returned for documents without any page.
	ErrNoPages = errors.New("PDF has no pages")
)

// ExtractFile reads the PDF at filePath and returns the text of each page.
// The file handle is released on every path, including library panics.
// When the PDF library yields nothing readable, the external pdftotext
// command (poppler-utils) is tried.
func ExtractFile(filePath string) ([]string, error) {
	pages, libErr := extractFileWithLibrary(filePath)
	if libErr == nil && isReadableText(pages) {
		return pages, nil
	}

	popplerPages, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(popplerPages) {
		return popplerPages, nil
	}

	if libErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, libErr)
	}
	return nil, fmt.Errorf("%w: no readable text; the file may be a scanned image", ErrUnreadable)
}

// ExtractReader reads a PDF held in memory or in an uploaded file.
func ExtractReader(r io.ReaderAt, size int64) (pages []string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pages, err = nil, fmt.Errorf("%w: PDF library crashed: %v", ErrUnreadable, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	pages, err = extractPages(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !isReadableText(pages) {
		return nil, fmt.Errorf("%w: no readable text; the file may be a scanned image", ErrUnreadable)
	}
	return pages, nil
}

func extractFileWithLibrary(filePath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	return extractPages(r)
}

// extractPages tries row extraction first, which keeps one visual line per
// text line, then the reader's plain text.
func extractPages(r *pdf.Reader) ([]string, error) {
	numPages := r.NumPage()
	if numPages == 0 {
		return nil, ErrNoPages
	}

	pages := extractByRow(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	plainText := extractByReaderPlainText(r)
	if isReadableText([]string{plainText}) {
		return []string{plainText}, nil
	}
	return pages, nil
}

// extractByRow joins the words of each text row into one line.
func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByReaderPlainText reads the whole document at once.
func extractByReaderPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// extractWithPdftotext uses the external pdftotext command as a fallback
// for PDFs the Go library cannot handle.
func extractWithPdftotext(filePath string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %v", err)
	}
	if _, err := os.Stat(filePath); err != nil {
		return nil, err
	}

	numPages := pageCount(filePath)
	var pages []string
	for i := 1; i <= numPages; i++ {
		pageStr := strconv.Itoa(i)
		out, err := exec.Command("pdftotext", "-layout", "-f", pageStr, "-l", pageStr, filePath, "-").Output()
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(out)); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return pages, nil
}

// pageCount asks pdfinfo for the number of pages, defaulting to 1.
func pageCount(filePath string) int {
	out, err := exec.Command("pdfinfo", filePath).Output()
	if err != nil {
		return 1
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "Pages:") {
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:")))
			if err == nil && n > 0 {
				return n
			}
		}
	}
	return 1
}

// commonWords appear in virtually every Brazilian statement. Text that has
// none of them is most likely garbage from an undecodable font.
var commonWords = []string{
	"fatura", "cartao", "cartão", "valor", "total", "pagamento", "lancamentos",
	"lançamentos", "saldo", "extrato", "conta", "data", "vencimento", "compras",
	"transações", "transacoes", "movimentações", "limite", "r$",
}

// textQuality returns the ratio of printable characters to all characters.
func textQuality(pages []string) float64 {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if unicode.IsPrint(r) || unicode.IsSpace(r) {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

func containsCommonWords(pages []string) bool {
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range commonWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// isReadableText requires some text, mostly printable, with at least one
// word expected on a statement.
func isReadableText(pages []string) bool {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	if n <= 20 {
		return false
	}
	if textQuality(pages) <= 0.8 {
		return false
	}
	return containsCommonWords(pages)
}
