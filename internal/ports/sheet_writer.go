package ports

import "context"

// SheetWriter — минимальный контракт внешнего документа:
// очистка листа целиком и запись блока значений с заданной ячейки.
// Значения пишутся как простой текст, без формул и форматирования.
type SheetWriter interface {
	Clear(ctx context.Context, spreadsheetID, sheetTab string) error
	WriteRange(ctx context.Context, spreadsheetID, sheetTab, startCell string, values [][]string) error
}
