package countries

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/imf-cli/internal/source"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func entries(t *testing.T, doc string) Entries {
	t.Helper()
	var e Entries
	require.NoError(t, json.Unmarshal([]byte(doc), &e))
	return e
}

func TestMerge_InflationOnly(t *testing.T) {
	base := &Base{Countries: []Country{{ID: "FR", Name: "France", CurrencyCode: "EUR", CurrencySymbol: "€"}}}
	cpi := entries(t, `{"FR": {"latest": 120.5, "latestDate": "2024-M03", "previous": 115.2, "previousDate": "2023-M03"}}`)
	rates := entries(t, `{"FR": null}`)

	out, summary := Merge(base, cpi, rates)

	require.Len(t, out.Countries, 1)
	rec := out.Countries[0]
	assert.Equal(t, "FR", rec.ID)
	assert.Equal(t, cpi["FR"], rec.CPI)
	assert.Nil(t, rec.Rate)
	assert.Equal(t, []string{"FR"}, summary.InflationOnly)
	assert.Empty(t, summary.WithRate)
	assert.Empty(t, summary.DroppedNoCPI)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"source": "IMF data.imf.org",
		"countries": [{
			"id": "FR", "name": "France", "currencyCode": "EUR", "currencySymbol": "€",
			"cpi": {"latest": 120.5, "latestDate": "2024-M03", "previous": 115.2, "previousDate": "2023-M03"},
			"rate": null
		}]
	}`, string(data))
}

func TestMerge_EntriesPassThroughUnchanged(t *testing.T) {
	base := &Base{Countries: []Country{{ID: "DE", Name: "Germany"}}}
	cpi := entries(t, `{"DE": {"latest": 100.0, "latestDate": "2024-M03", "previous": 97.50, "previousDate": "2023-M03", "note": "rebased"}}`)
	rates := entries(t, `{"DE": {"value": 4.0, "date": "2024-M03", "source": "ECB"}}`)

	out, _ := Merge(base, cpi, rates)

	data, err := source.MarshalJSON(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `"latest": 100.0,`)
	assert.Contains(t, text, `"previous": 97.50,`)
	assert.Contains(t, text, `"note": "rebased"`)
	assert.Contains(t, text, `"value": 4.0,`)
	assert.Contains(t, text, `"source": "ECB"`)
}

func TestEntries_Lookup(t *testing.T) {
	e := entries(t, `{"A": {"value": 1}, "B": null, "C": {}, "D": [], "E": "", "F": 0, "G": false, "H": [1], "I": "x"}`)

	tests := []struct {
		id      string
		present bool
	}{
		{"A", true},
		{"B", false},
		{"C", false},
		{"D", false},
		{"E", false},
		{"F", false},
		{"G", false},
		{"H", true},
		{"I", true},
		{"missing", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.present, e.lookup(tt.id) != nil)
		})
	}
	assert.Nil(t, Entries(nil).lookup("A"))
}

func TestMerge_Buckets(t *testing.T) {
	base := &Base{Countries: []Country{
		{ID: "US", Name: "United States"},
		{ID: "DE", Name: "Germany"},
		{ID: "JP", Name: "Japan"},
		{ID: "XX", Name: "Nowhere"},
		{ID: "CA", Name: "Canada"},
	}}
	cpi := entries(t, `{
		"US": {"latest": 310, "latestDate": "2024-M03", "previous": 300, "previousDate": "2023-M03"},
		"DE": {"latest": 120, "latestDate": "2024-M03", "previous": 117, "previousDate": "2023-M03"},
		"JP": null,
		"CA": {},
		"GB": {"latest": 1, "latestDate": "2024-M01", "previous": 1, "previousDate": "2023-M01"}
	}`)
	rates := entries(t, `{
		"US": {"value": 5.33, "date": "2024-M03"},
		"DE": {},
		"GB": {"value": 5.25, "date": "2024-M03"}
	}`)

	out, summary := Merge(base, cpi, rates)

	ids := make([]string, 0, len(out.Countries))
	for _, r := range out.Countries {
		ids = append(ids, r.ID)
		assert.NotNil(t, r.CPI, r.ID)
	}
	assert.Equal(t, []string{"US", "DE"}, ids, "base order kept, GB never considered")
	assert.Equal(t, []string{"US"}, summary.WithRate)
	assert.Equal(t, []string{"DE"}, summary.InflationOnly)
	assert.Equal(t, []string{"JP", "XX", "CA"}, summary.DroppedNoCPI)
	assert.Nil(t, out.Countries[1].Rate, "empty rate object counts as missing")
	assert.Equal(t, "Total output countries: 2 (with rate: 1, inflation only: 1, dropped no CPI: 3)", summary.String())
}

func TestMerge_Empty(t *testing.T) {
	out, summary := Merge(&Base{}, nil, nil)
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"IMF data.imf.org","countries":[]}`, string(data))
	assert.Equal(t, "Total output countries: 0 (with rate: 0, inflation only: 0, dropped no CPI: 0)", summary.String())
}

func TestLoadBase_JSON(t *testing.T) {
	path := writeFile(t, "countries.json", `{"countries":[{"id":"FR","name":"France","currencyCode":"EUR","currencySymbol":"€"}]}`)

	base, err := LoadBase(path)
	require.NoError(t, err)
	assert.Equal(t, []Country{{ID: "FR", Name: "France", CurrencyCode: "EUR", CurrencySymbol: "€"}}, base.Countries)
}

func TestLoadBase_YAML(t *testing.T) {
	path := writeFile(t, "countries.yaml", "countries:\n  - id: GB\n    name: United Kingdom\n    currencyCode: GBP\n    currencySymbol: \"£\"\n")

	base, err := LoadBase(path)
	require.NoError(t, err)
	assert.Equal(t, []Country{{ID: "GB", Name: "United Kingdom", CurrencyCode: "GBP", CurrencySymbol: "£"}}, base.Countries)
}

func TestLoadBase_Errors(t *testing.T) {
	_, err := LoadBase(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "countries: load base")

	_, err = LoadBase(writeFile(t, "bad.json", `{"countries":`))
	require.Error(t, err)
}

func TestLoadCPIAndRates(t *testing.T) {
	cpiPath := writeFile(t, "cpi.json", `{"FR":{"latest":120.5,"latestDate":"2024-M03","previous":115.2,"previousDate":"2023-M03"},"US":null}`)
	ratesPath := writeFile(t, "rates.json", `{"FR":null,"US":{"value":5.33,"date":"2024-M03"}}`)

	cpi, err := LoadCPI(cpiPath)
	require.NoError(t, err)
	require.Contains(t, cpi, "US")
	assert.Nil(t, cpi.lookup("US"))
	assert.JSONEq(t, `{"latest":120.5,"latestDate":"2024-M03","previous":115.2,"previousDate":"2023-M03"}`, string(cpi["FR"]))

	rates, err := LoadRates(ratesPath)
	require.NoError(t, err)
	assert.Nil(t, rates.lookup("FR"))
	assert.JSONEq(t, `{"value":5.33,"date":"2024-M03"}`, string(rates["US"]))

	_, err = LoadRates(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "countries: load rates")
}
