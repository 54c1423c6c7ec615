package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Info describes a display currency.
type Info struct {
	Unit   currency.Unit
	Symbol string
	Name   string
}

func (i Info) Code() string {
	return i.Unit.String()
}

// DefaultCountry is the baseline country of a new session.
const DefaultCountry = "NG"

var defaultInfo = Info{Unit: currency.MustParseISO("NGN"), Symbol: "₦", Name: "Nigerian Naira"}

var countries = map[string]Info{
	"NG": defaultInfo,
	"US": {Unit: currency.USD, Symbol: "$", Name: "US Dollar"},
	"GB": {Unit: currency.MustParseISO("GBP"), Symbol: "£", Name: "British Pound"},
	"EU": {Unit: currency.MustParseISO("EUR"), Symbol: "€", Name: "Euro"},
	"CA": {Unit: currency.MustParseISO("CAD"), Symbol: "C$", Name: "Canadian Dollar"},
	"AU": {Unit: currency.MustParseISO("AUD"), Symbol: "A$", Name: "Australian Dollar"},
	"JP": {Unit: currency.MustParseISO("JPY"), Symbol: "¥", Name: "Japanese Yen"},
	"IN": {Unit: currency.MustParseISO("INR"), Symbol: "₹", Name: "Indian Rupee"},
	"BR": {Unit: currency.MustParseISO("BRL"), Symbol: "R$", Name: "Brazilian Real"},
	"MX": {Unit: currency.MustParseISO("MXN"), Symbol: "$", Name: "Mexican Peso"},
	"SG": {Unit: currency.MustParseISO("SGD"), Symbol: "S$", Name: "Singapore Dollar"},
	"HK": {Unit: currency.MustParseISO("HKD"), Symbol: "HK$", Name: "Hong Kong Dollar"},
	"CH": {Unit: currency.MustParseISO("CHF"), Symbol: "CHF", Name: "Swiss Franc"},
	"SE": {Unit: currency.MustParseISO("SEK"), Symbol: "kr", Name: "Swedish Krona"},
	"NZ": {Unit: currency.MustParseISO("NZD"), Symbol: "NZ$", Name: "New Zealand Dollar"},
	"ZA": {Unit: currency.MustParseISO("ZAR"), Symbol: "R", Name: "South African Rand"},
	"AE": {Unit: currency.MustParseISO("AED"), Symbol: "د.إ", Name: "UAE Dirham"},
	"SA": {Unit: currency.MustParseISO("SAR"), Symbol: "﷼", Name: "Saudi Riyal"},
	"KR": {Unit: currency.MustParseISO("KRW"), Symbol: "₩", Name: "South Korean Won"},
	"TH": {Unit: currency.MustParseISO("THB"), Symbol: "฿", Name: "Thai Baht"},
	"TR": {Unit: currency.MustParseISO("TRY"), Symbol: "₺", Name: "Turkish Lira"},
}

// Rates against USD. Point-in-time values, not refreshed.
var rates = map[string]decimal.Decimal{
	"NGN": decimal.RequireFromString("1550.0"),
	"USD": decimal.RequireFromString("1.0"),
	"GBP": decimal.RequireFromString("0.79"),
	"EUR": decimal.RequireFromString("0.92"),
	"CAD": decimal.RequireFromString("1.36"),
	"AUD": decimal.RequireFromString("1.53"),
	"JPY": decimal.RequireFromString("149.5"),
	"INR": decimal.RequireFromString("83.12"),
	"BRL": decimal.RequireFromString("4.97"),
	"MXN": decimal.RequireFromString("17.05"),
	"SGD": decimal.RequireFromString("1.34"),
	"HKD": decimal.RequireFromString("7.81"),
	"CHF": decimal.RequireFromString("0.88"),
	"SEK": decimal.RequireFromString("10.45"),
	"NZD": decimal.RequireFromString("1.68"),
	"ZAR": decimal.RequireFromString("18.65"),
	"AED": decimal.RequireFromString("3.67"),
	"SAR": decimal.RequireFromString("3.75"),
	"KRW": decimal.RequireFromString("1319.5"),
	"THB": decimal.RequireFromString("35.8"),
	"TRY": decimal.RequireFromString("33.25"),
}

// zeroDecimal lists currencies displayed without minor units.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
}
