package wbapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_tariffs/internal/wbapi"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

const tariffsBoxBody = `{
	"response": {
		"data": {
			"dtNextBox": "2025-09-01",
			"dtTillMax": "2025-12-31",
			"warehouseList": [
				{
					"warehouseName": "Коледино",
					"geoName": "Центральный ФО",
					"boxDeliveryBase": "48",
					"boxDeliveryLiter": "11,2",
					"boxDeliveryCoefExpr": "160",
					"boxDeliveryMarketplaceBase": "40",
					"boxDeliveryMarketplaceLiter": "9,6",
					"boxDeliveryMarketplaceCoefExpr": "125",
					"boxStorageBase": "0,14",
					"boxStorageLiter": "0,07",
					"boxStorageCoefExpr": "-"
				}
			]
		}
	}
}`

func TestGetBoxTariffs_Success(t *testing.T) {
	var gotPath, gotDate, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDate = r.URL.Query().Get("date")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tariffsBoxBody))
	}))
	defer srv.Close()

	client := wbapi.NewClient(wbapi.Config{BaseURL: srv.URL, Token: "secret"}, noopLogger{})

	snapshot, err := client.GetBoxTariffs(context.Background(), "2025-08-18")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/tariffs/box" || gotDate != "2025-08-18" {
		t.Fatalf("unexpected request: path=%q date=%q", gotPath, gotDate)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer token, got %q", gotAuth)
	}

	if snapshot.DtNextBox != "2025-09-01" || snapshot.DtTillMax != "2025-12-31" {
		t.Fatalf("unexpected period dates: %+v", snapshot)
	}
	if len(snapshot.WarehouseList) != 1 || snapshot.WarehouseList[0].WarehouseName != "Коледино" {
		t.Fatalf("unexpected warehouse list: %+v", snapshot.WarehouseList)
	}
	if snapshot.WarehouseList[0].BoxStorageCoefExpr != "-" {
		t.Fatalf("raw string fields must come through untouched: %+v", snapshot.WarehouseList[0])
	}
}

func TestGetBoxTariffs_EmptyDateDefaultsToToday(t *testing.T) {
	var gotDate string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		_, _ = w.Write([]byte(`{"response":{"data":{"dtNextBox":"2025-09-01","dtTillMax":"2025-12-31"}}}`))
	}))
	defer srv.Close()

	client := wbapi.NewClient(wbapi.Config{BaseURL: srv.URL}, noopLogger{})

	if _, err := client.GetBoxTariffs(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Now().UTC().Format("2006-01-02")
	if gotDate != want {
		t.Fatalf("expected today %q, got %q", want, gotDate)
	}
}

func TestGetBoxTariffs_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := wbapi.NewClient(wbapi.Config{BaseURL: srv.URL}, noopLogger{})

	_, err := client.GetBoxTariffs(context.Background(), "2025-08-18")

	var statusErr *wbapi.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", statusErr.Code)
	}
}

func TestGetBoxTariffs_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := wbapi.NewClient(wbapi.Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond}, noopLogger{})

	_, err := client.GetBoxTariffs(context.Background(), "2025-08-18")
	if !errors.Is(err, wbapi.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestGetBoxTariffs_BrokenJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":`))
	}))
	defer srv.Close()

	client := wbapi.NewClient(wbapi.Config{BaseURL: srv.URL}, noopLogger{})

	if _, err := client.GetBoxTariffs(context.Background(), "2025-08-18"); err == nil {
		t.Fatal("expected decode error")
	}
}
