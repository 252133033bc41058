package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/collections/articles/entries", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Page{
			Items:       []json.RawMessage{json.RawMessage(`{"id":"a1","title":"Derby win"}`)},
			Page:        2,
			PageSize:    50,
			Total:       51,
			HasNextPage: false,
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, AccessToken: "secret"})

	page, err := client.FetchPage(context.Background(), CollectionArticles, 2, 50)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.False(t, page.HasNextPage)

	var article Article
	require.NoError(t, json.Unmarshal(page.Items[0], &article))
	assert.Equal(t, "Derby win", article.Title)
}

func TestFetchPageServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.FetchPage(context.Background(), CollectionPeople, 1, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchPageMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.FetchPage(context.Background(), CollectionTeams, 1, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestFetchPageRespectsDeadline(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := NewClient(Config{BaseURL: server.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchPage(ctx, CollectionArticles, 1, 50)
	require.Error(t, err)
}

func TestFetchPageEmptyCollection(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:0"})

	_, err := client.FetchPage(context.Background(), "", 1, 50)
	require.Error(t, err)
}
