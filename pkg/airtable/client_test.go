package airtable

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient(server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)), "test-key", "appBase1")
	c.SetBaseURL(server.URL)
	return c
}

func TestClient_Select(t *testing.T) {
	var gotPath, gotFormula, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotFormula = r.URL.Query().Get("filterByFormula")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"records":[{"id":"rec1","fields":{"Name":"Acme"}}]}`))
	})

	records, err := c.Select(context.Background(), "UTS Startups", `{Name} = "Acme"`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "rec1", records[0].ID)
	require.Equal(t, "Acme", records[0].String("Name"))

	require.Equal(t, "/appBase1/UTS%20Startups", gotPath)
	require.Equal(t, `{Name} = "Acme"`, gotFormula)
	require.Equal(t, "Bearer test-key", gotAuth)
}

func TestClient_Select_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"records":[]}`))
	})

	records, err := c.Select(context.Background(), "UTS Startups", `{Name} = "Nobody"`)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestClient_Find_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"NOT_FOUND"}}`))
	})

	_, err := c.Find(context.Background(), "UTS Startups", "recMissing")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestClient_Update(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	var decodeErr error
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		decodeErr = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":"rec1","fields":{"Mobile*":"0400000000"}}`))
	})

	rec, err := c.Update(context.Background(), "Team members", "rec1", map[string]any{"Mobile*": "0400000000"})
	require.NoError(t, err)
	require.Equal(t, "rec1", rec.ID)
	require.Equal(t, "0400000000", rec.String("Mobile*"))

	require.Equal(t, http.MethodPatch, gotMethod)
	require.NoError(t, decodeErr)
	fields, ok := gotBody["fields"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "0400000000", fields["Mobile*"])
}

func TestClient_ErrorStatusSurfacesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"message":"Unknown field name"}}`))
	})

	_, err := c.Select(context.Background(), "UTS Startups", `{Bogus} = "x"`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unknown field name")
	require.Contains(t, err.Error(), "422")
}

func TestEqualsFormula_EscapesQuotes(t *testing.T) {
	require.Equal(t, `{Name} = "Acme"`, EqualsFormula("Name", "Acme"))
	require.Equal(t, `{Name} = "say \"hi\""`, EqualsFormula("Name", `say "hi"`))
	require.Equal(t, `{Name} = "a\\b"`, EqualsFormula("Name", `a\b`))
}
