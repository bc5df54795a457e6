package imf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/imf-cli/internal/period"
)

// csvText joins a header and rows into CSV text. Fields must not contain commas.
func csvText(header []string, rows ...[]string) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(header, ","))
	sb.WriteByte('\n')
	for _, r := range rows {
		sb.WriteString(strings.Join(r, ","))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pt(t *testing.T, label string, v float64) Point {
	t.Helper()
	p, ok := period.Parse(label)
	require.True(t, ok, label)
	return Point{Value: v, Period: p}
}
