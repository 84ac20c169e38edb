package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"conference-hub/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(base string) *feed.Client {
	return feed.NewClient(feed.Config{BaseURI: base, TimeoutSeconds: 5}, zap.NewNop())
}

func TestRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rooms", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Room A"}, {"id": 2, "name": "Room B"}]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL + "/")
	records := client.Records(context.Background(), "rooms")

	require.Len(t, records, 2)
	assert.Equal(t, "Room A", records[0]["name"])
}

func TestRecords_DegradesToNil(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := newTestClient(srv.URL + "/")
			assert.Nil(t, client.Records(context.Background(), "talks"))
		})
	}
}

func TestRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 7, "title": "Go ingest pipelines"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL + "/")
	rec, ok := client.Record(context.Background(), "talks/7")

	require.True(t, ok)
	assert.Equal(t, "Go ingest pipelines", rec["title"])
}

func TestRecord_AbsentOnUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newTestClient(srv.URL + "/")
	_, ok := client.Record(context.Background(), "talks/7")
	assert.False(t, ok)
}

func TestGetJSON_QueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "monday", r.URL.Query().Get("day"))
		assert.Equal(t, "secret", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"talkRatings": []}`))
	}))
	defer srv.Close()

	client := newTestClient("")
	params := url.Values{}
	params.Set("day", "monday")
	params.Set("token", "secret")

	var out map[string]any
	ok := client.GetJSON(context.Background(), srv.URL+"/getAllRatingStats", params, &out)

	require.True(t, ok)
	assert.Contains(t, out, "talkRatings")
}

func TestPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"result": {"talkFavorites": []}}`))
	}))
	defer srv.Close()

	client := newTestClient("")
	var out map[string]any
	ok := client.PostJSON(context.Background(), srv.URL+"/getAllFavoriteCounts",
		map[string]any{"data": map[string]any{"eventSlug": "dvbe25"}}, &out)

	require.True(t, ok)
	assert.Contains(t, out, "result")
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	client := newTestClient("")
	content, err := client.Fetch(context.Background(), srv.URL+"/photo.jpg")

	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), content)
}

func TestFetch_ErrorOnStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := newTestClient("")
	_, err := client.Fetch(context.Background(), srv.URL+"/photo.jpg")
	assert.Error(t, err)
}
