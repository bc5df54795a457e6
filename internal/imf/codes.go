package imf

import "strings"

// countryCode maps an IMF ISO 3166 alpha-3 prefix to its alpha-2 code.
type countryCode struct {
	iso3 string
	iso2 string
}

// supportedCountries is the closed set of countries the extractors report on,
// in output order.
var supportedCountries = [...]countryCode{
	{"USA", "US"},
	{"CAN", "CA"},
	{"GBR", "GB"},
	{"DEU", "DE"},
	{"FRA", "FR"},
	{"ITA", "IT"},
	{"ESP", "ES"},
	{"NLD", "NL"},
	{"POL", "PL"},
	{"BEL", "BE"},
	{"AUT", "AT"},
	{"AUS", "AU"},
	{"JPN", "JP"},
	{"CHN", "CN"},
	{"IND", "IN"},
	{"BRA", "BR"},
	{"MEX", "MX"},
	{"CHE", "CH"},
	{"SWE", "SE"},
	{"NOR", "NO"},
	{"PRT", "PT"},
	{"CZE", "CZ"},
	{"ROU", "RO"},
	{"TUR", "TR"},
	{"ZAF", "ZA"},
}

var iso3ToISO2 = func() map[string]string {
	m := make(map[string]string, len(supportedCountries))
	for _, c := range supportedCountries {
		m[c.iso3] = c.iso2
	}
	return m
}()

// Countries returns the supported alpha-2 codes in output order.
func Countries() []string {
	codes := make([]string, len(supportedCountries))
	for i, c := range supportedCountries {
		codes[i] = c.iso2
	}
	return codes
}

// CountryFromSeries resolves a series code such as "FRA.CPI._T.IX.M" to its
// alpha-2 country code. Codes without a "." or with an unsupported prefix are
// rejected.
func CountryFromSeries(seriesCode string) (string, bool) {
	prefix, _, found := strings.Cut(strings.TrimSpace(seriesCode), ".")
	if !found {
		return "", false
	}
	iso2, ok := iso3ToISO2[strings.ToUpper(prefix)]
	return iso2, ok
}
