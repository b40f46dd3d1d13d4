package testutil

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

// CustomGraphs holds three graphs in pipe layout with interleaved lines:
// CLAIM01 is a 5-cycle, CLAIM02 a 3-cycle and CLAIM03 a 4-cycle.
const CustomGraphs = `SM|SH|CLAIM01|STATUS01
SC|SA|CLAIM02|STATUS02
SK|SL|CLAIM01|STATUS01
SJ|SK|CLAIM01|STATUS01
SG|SD|CLAIM03|STATUS03
SD|SE|CLAIM03|STATUS03
SB|SC|CLAIM02|STATUS02
SL|SM|CLAIM01|STATUS01
SA|SB|CLAIM02|STATUS02
SH|SJ|CLAIM01|STATUS01
SE|SF|CLAIM03|STATUS03
SF|SG|CLAIM03|STATUS03
`

// AcrossGraphs is a 3-cycle in (123,197) next to a 2-cycle in (891,45),
// pipe layout.
const AcrossGraphs = `Epic|Availity|123|197
Availity|Optum|123|197
Optum|Epic|123|197
Epic|Availity|891|45
Availity|Epic|891|45
`

// Gzip compresses s.
func Gzip(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// Zstd compresses s.
func Zstd(t *testing.T, s string) []byte {
	t.Helper()
	w, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer w.Close()
	return w.EncodeAll([]byte(s), nil)
}
