package shared

import (
	"github.com/google/uuid"
)

// ReceiptPrinterConfig identifies the fiscal receipt printer. The hardware
// integration itself is an inert stub; only the selection is stored.
type ReceiptPrinterConfig struct {
	Brand string `json:"brand"`
	IP    string `json:"ip"`
}

// Settings is the global application settings object. AllowNegativeStock and
// DefaultLocationID are the only fields the ledger/stock engines consume;
// the rest is display configuration read back by clients.
type Settings struct {
	Currency           string               `json:"currency"`
	AllowNegativeStock bool                 `json:"allowNegativeStock"`
	ThemeColor         string               `json:"themeColor"`
	BaseFontSize       int                  `json:"baseFontSize"`
	CompanyName        string               `json:"companyName"`
	CompanyTaxID       string               `json:"companyTaxId"`
	CompanyPhone       string               `json:"companyPhone"`
	CompanyLogo        string               `json:"companyLogo"`
	DefaultBankID      uuid.UUID            `json:"defaultBankId"`
	DefaultLocationID  uuid.UUID            `json:"defaultLocationId"` // Main warehouse used when an invoice carries no location
	ReceiptPrinter     ReceiptPrinterConfig `json:"receiptPrinter"`
}

// SettingsRepository stores the single process-wide settings value
type SettingsRepository interface {
	Get() Settings
	Update(settings Settings)
}
