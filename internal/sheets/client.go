package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/AniD-z/PersonalWeb/internal/config"
)

// Row is one data row of the sheet, keyed by header cell. Missing columns
// read as the empty string.
type Row map[string]string

// Get returns the cell under the named column, or "" when the column does
// not exist or the row is short.
func (r Row) Get(column string) string { return r[column] }

// RowStore is the remote content store contract the service layer consumes.
// rowIndex is the zero-based position within the data rows (the header row
// is not counted).
type RowStore interface {
	Rows(ctx context.Context) ([]Row, error)
	UpdateCell(ctx context.Context, rowIndex int, column, value string) error
}

// Client reads and writes the spreadsheet that acts as the system of
// record for blog posts.
type Client struct {
	svc       *sheetsapi.Service
	sheetID   string
	sheetName string
}

// NewClient authenticates with the service account credentials from cfg
// and returns a Client bound to the configured spreadsheet tab.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	conf := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, sheetID: cfg.SheetID, sheetName: cfg.SheetName}, nil
}

// Rows fetches every data row of the sheet. The first sheet row is the
// header; each returned Row maps header cells to the row's cell values.
func (c *Client) Rows(ctx context.Context) ([]Row, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch rows: %w", err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, h := range resp.Values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(h))
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(raw) {
				row[h] = fmt.Sprint(raw[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UpdateCell rewrites a single cell of the given data row, addressed by
// column header. Only the one cell is touched.
func (c *Client) UpdateCell(ctx context.Context, rowIndex int, column, value string) error {
	header, err := c.svc.Spreadsheets.Values.
		Get(c.sheetID, fmt.Sprintf("%s!1:1", c.sheetName)).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("fetch header row: %w", err)
	}
	if len(header.Values) == 0 {
		return fmt.Errorf("sheet %q has no header row", c.sheetName)
	}

	colIndex := -1
	for i, h := range header.Values[0] {
		if strings.TrimSpace(fmt.Sprint(h)) == column {
			colIndex = i
			break
		}
	}
	if colIndex < 0 {
		return fmt.Errorf("column %q not found in sheet %q", column, c.sheetName)
	}

	// +2: sheet rows are 1-based and row 1 is the header.
	cell := fmt.Sprintf("%s!%s%d", c.sheetName, columnLetter(colIndex), rowIndex+2)
	_, err = c.svc.Spreadsheets.Values.
		Update(c.sheetID, cell, &sheetsapi.ValueRange{Values: [][]any{{value}}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update cell %s: %w", cell, err)
	}
	return nil
}

// columnLetter converts a zero-based column index to A1 notation
// (0 -> A, 25 -> Z, 26 -> AA).
func columnLetter(index int) string {
	var b []byte
	for index >= 0 {
		b = append([]byte{byte('A' + index%26)}, b...)
		index = index/26 - 1
	}
	return string(b)
}
