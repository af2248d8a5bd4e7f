// Пакет sheets — адаптер Google Sheets API v4 под порт SheetWriter.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/Gunvolt24/wb_tariffs/internal/ports"
)

// Проверка, что GoogleClient удовлетворяет порту записи в таблицы.
var _ ports.SheetWriter = (*GoogleClient)(nil)

// GoogleClient — тонкая обёртка над официальным SDK:
// только clear и запись диапазона, значения как простой текст (RAW).
type GoogleClient struct {
	svc *sheetsapi.Service
}

// NewGoogleClient — создаёт сервис по файлу ключа сервис-аккаунта.
func NewGoogleClient(ctx context.Context, credentialsFile string) (*GoogleClient, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &GoogleClient{svc: svc}, nil
}

// Clear — очищает весь адресуемый диапазон листа (A:Z).
func (c *GoogleClient) Clear(ctx context.Context, spreadsheetID, sheetTab string) error {
	rangeRef := sheetTab + "!A:Z"
	if _, err := c.svc.Spreadsheets.Values.
		Clear(spreadsheetID, rangeRef, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", rangeRef, err)
	}
	return nil
}

// WriteRange — пишет блок значений начиная с указанной ячейки (например "A3").
func (c *GoogleClient) WriteRange(ctx context.Context, spreadsheetID, sheetTab, startCell string, values [][]string) error {
	vr := &sheetsapi.ValueRange{Values: make([][]any, 0, len(values))}
	for _, row := range values {
		cells := make([]any, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		vr.Values = append(vr.Values, cells)
	}

	rangeRef := fmt.Sprintf("%s!%s", sheetTab, startCell)
	if _, err := c.svc.Spreadsheets.Values.
		Update(spreadsheetID, rangeRef, vr).
		ValueInputOption("RAW").
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("write %s: %w", rangeRef, err)
	}
	return nil
}
