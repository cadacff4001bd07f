package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanbitlee/catalook/catalog"
)

func float(v float64) *float64 { return &v }

func sampleRecords() []catalog.Record {
	return []catalog.Record{
		{Barcode: "8801234567890", Name: "진라면 120g", UnitPrice: float(450)},
		{Barcode: "8809876543210", Name: "신라면 컵"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, catalog.Columns(), records[0])
	assert.Equal(t, "8801234567890", records[1][0])
	assert.Equal(t, "진라면 120g", records[1][2])
	assert.Equal(t, "450", records[1][4])
	assert.Equal(t, "", records[2][4]) // nil price renders empty
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRecords()))

	var out []map[string]any
	require.NoError(t, gojson.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)

	assert.Equal(t, "8801234567890", out[0]["barcode"])
	assert.Equal(t, 450.0, out[0]["unitPrice"])
	assert.Nil(t, out[1]["unitPrice"]) // nil numerics serialize as null
}

func TestCompression(t *testing.T) {
	payload := strings.Repeat("바코드,제품명\n8801234567890,진라면\n", 100)

	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4} {
		t.Run(string(c), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, c)
			require.NoError(t, err)
			_, err = io.WriteString(w, payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := NewReader(&buf, c)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())

			assert.Equal(t, payload, string(got))
		})
	}

	t.Run("UnknownCompression", func(t *testing.T) {
		_, err := NewWriter(io.Discard, Compression("brotli"))
		assert.Error(t, err)
		_, err = NewReader(strings.NewReader(""), Compression("brotli"))
		assert.Error(t, err)
	})
}
