// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scrape-lab/internal/fixtures"
)

// --- mock server ---

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(resty.New(), LocalEndpoints(ts.URL))
}

func serve(body, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// --- endpoints ---

func TestLocalEndpoints_TrimsTrailingSlash(t *testing.T) {
	e := LocalEndpoints("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080/api/provinces.json", e.Provinces)
	assert.Equal(t, "http://localhost:8080/get", e.Echo)
	assert.Equal(t, "http://localhost:8080/delay/1", e.Delay)
}

func TestPublicEndpoints(t *testing.T) {
	e := PublicEndpoints()
	assert.Equal(t, "https://data.bmkg.go.id/DataMKG/TEWS/gempaterkini.xml", e.Earthquakes)
	assert.Equal(t, "https://fakestoreapi.com/products", e.Products)
}

// --- provinces ---

func TestProvinces(t *testing.T) {
	var gotUA string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/provinces.json", func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(fixtures.ProvincesJSON))
	})
	c := newTestClient(t, mux)

	got, err := c.Provinces(context.Background(), map[string]string{"User-Agent": "LatihanAPI/1.0"})
	require.NoError(t, err)

	require.Len(t, got, 6)
	assert.Equal(t, Province{ID: "11", Name: "ACEH"}, got[0])
	assert.Equal(t, "LatihanAPI/1.0", gotUA)
}

func TestProvinces_StatusError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.Provinces(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 404")
}

func TestProvinces_MalformedJSON(t *testing.T) {
	c := newTestClient(t, serve(`{"not": "a list"`, "application/json"))

	_, err := c.Provinces(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}

// --- echo ---

func TestEcho_SendsQueryParameters(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		args := map[string]string{}
		for k := range r.URL.Query() {
			args[k] = r.URL.Query().Get(k)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"url":     "http://" + r.Host + r.URL.String(),
			"args":    args,
			"headers": map[string]string{"Host": r.Host},
		})
	})
	c := newTestClient(t, mux)

	got, err := c.Echo(context.Background(), map[string]string{"province_id": "32", "include": "cities"}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"province_id": "32", "include": "cities"}, got.Args)
	assert.Contains(t, got.URL, "province_id=32")
	assert.Contains(t, got.URL, "include=cities")
}

func TestEcho_MissingURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/get", serve(`{"args": {}}`, "application/json"))
	c := newTestClient(t, mux)

	_, err := c.Echo(context.Background(), nil, nil)
	assert.Error(t, err)
}

// --- earthquakes ---

func TestParseEarthquakes(t *testing.T) {
	got, err := ParseEarthquakes([]byte(fixtures.EarthquakesXML))
	require.NoError(t, err)

	want := []Earthquake{
		{
			Date:        "19 Okt 2026",
			Time:        "10:21:33 WIB",
			DateTime:    "2026-10-19T03:21:33+00:00",
			Coordinates: "-7.81,107.46",
			Magnitude:   5.1,
			Depth:       "10 km",
			Region:      "78 km BaratDaya KAB-GARUT-JABAR",
			Potential:   "Tidak berpotensi tsunami",
		},
		{
			Date:        "18 Okt 2026",
			Time:        "22:04:10 WIB",
			DateTime:    "2026-10-18T15:04:10+00:00",
			Coordinates: "-3.62,128.19",
			Magnitude:   5.4,
			Depth:       "25 km",
			Region:      "12 km TimurLaut AMBON-MALUKU",
			Potential:   "Tidak berpotensi tsunami",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseEarthquakes() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEarthquakes_BadMagnitudeIsZero(t *testing.T) {
	doc := `<Infogempa><gempa><Tanggal>1 Jan 2026</Tanggal><Magnitude>n/a</Magnitude><Wilayah>Laut</Wilayah></gempa></Infogempa>`
	got, err := ParseEarthquakes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Magnitude)
	assert.Equal(t, "Laut", got[0].Region)
}

func TestParseEarthquakes_Invalid(t *testing.T) {
	_, err := ParseEarthquakes([]byte("<html><body>maintenance</body></html>"))
	assert.Error(t, err)
}

func TestEarthquakes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/gempaterkini.xml", serve(fixtures.EarthquakesXML, "application/xml"))
	c := newTestClient(t, mux)

	got, err := c.Earthquakes(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// --- exchange rate ---

func TestExchangeRate_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    float64
		wantErr string
	}{
		{"rates shape", `{"base": "USD", "rates": {"IDR": 16250.5}}`, 16250.5, ""},
		{"quotes shape", `{"success": true, "source": "USD", "quotes": {"USDIDR": 16100}}`, 16100, ""},
		{"api failure", `{"success": false, "error": {"type": "missing_access_key", "info": "You have not supplied an API Access Key."}}`, 0, "You have not supplied"},
		{"missing symbol", `{"rates": {"EUR": 0.9}}`, 0, "no IDR rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/api/latest", serve(tt.body, "application/json"))
			c := newTestClient(t, mux)

			got, err := c.ExchangeRate(context.Background(), "usd", "idr", "")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExchangeRate_SendsAccessKey(t *testing.T) {
	var gotKey, gotBase string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/latest", func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("access_key")
		gotBase = r.URL.Query().Get("base")
		w.Write([]byte(fixtures.ExchangeRateJSON))
	})
	c := newTestClient(t, mux)

	_, err := c.ExchangeRate(context.Background(), "USD", "IDR", "secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "USD", gotBase)
}

// --- products ---

func TestProducts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", serve(fixtures.ProductsJSON, "application/json"))
	c := newTestClient(t, mux)

	got, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Fjallraven - Foldsack No. 1 Backpack", got[0].Title)
	assert.Equal(t, 109.95, got[0].Price)
}

// --- covid ---

func TestCovidSummary(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/indonesia", serve(fixtures.CovidJSON, "application/json"))
	c := newTestClient(t, mux)

	got, err := c.CovidSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "6,829,221", got.Positive)
	assert.Equal(t, "6,651,362", got.Recovered)
	assert.Equal(t, "161,879", got.Deaths)
}

func TestCovidSummary_Empty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/indonesia", serve(`[]`, "application/json"))
	c := newTestClient(t, mux)

	_, err := c.CovidSummary(context.Background())
	assert.Error(t, err)
}
