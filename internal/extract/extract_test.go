package extract

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"legalyze/internal/util"

	"github.com/stretchr/testify/require"
)

func TestFromPDFMalformedInput(t *testing.T) {
	junk := []byte("this is not a pdf at all, just some bytes")
	text, err := FromPDF(bytes.NewReader(junk), int64(len(junk)), 5000)
	require.Error(t, err)
	require.True(t, errors.Is(err, util.ErrExtraction) || errors.Is(err, util.ErrNoExtractableText))
	require.Empty(t, text)
}

func TestFromPDFEmptyInput(t *testing.T) {
	text, err := FromPDF(bytes.NewReader(nil), 0, 5000)
	require.Error(t, err)
	require.Empty(t, text)
}

func TestWebExtractorStripsMarkup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><style>body{color:red}</style></head>
<body><script>var x = 1;</script><h1>Consumer Rights</h1><p>File a complaint within two years.</p></body></html>`))
	}))
	defer srv.Close()

	ex := NewWebExtractor(5 * time.Second)
	text, err := ex.Extract(context.Background(), srv.URL, 5000)
	require.NoError(t, err)
	require.Contains(t, text, "Consumer Rights")
	require.Contains(t, text, "File a complaint within two years.")
	require.NotContains(t, text, "var x")
	require.NotContains(t, text, "color:red")
}

func TestWebExtractorTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>" + strings.Repeat("law ", 3000) + "</body></html>"))
	}))
	defer srv.Close()

	ex := NewWebExtractor(5 * time.Second)
	text, err := ex.Extract(context.Background(), srv.URL, 100)
	require.NoError(t, err)
	require.LessOrEqual(t, len([]rune(text)), 100)
}

func TestWebExtractorErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ex := NewWebExtractor(5 * time.Second)
	_, err := ex.Extract(context.Background(), srv.URL, 5000)
	require.ErrorIs(t, err, util.ErrExtraction)
}

func TestWebExtractorUnreachable(t *testing.T) {
	ex := NewWebExtractor(500 * time.Millisecond)
	_, err := ex.Extract(context.Background(), "http://127.0.0.1:1/nothing", 5000)
	require.ErrorIs(t, err, util.ErrExtraction)
}
