package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListResponse(t *testing.T) {
	list := []string{"a", "b"}
	response := NewListResponse(list, NewEmptyReferences())

	assert.Equal(t, 200, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, 2, response.Version)
	assert.InDelta(t, time.Now().UnixMilli(), response.CurrentTime, 5000)

	data, ok := response.Data.(ListData)
	require.True(t, ok)
	assert.False(t, data.LimitExceeded)
	assert.Equal(t, list, data.List)
}

func TestNewListResponseWithRange(t *testing.T) {
	response := NewListResponseWithRange([]int{}, NewEmptyReferences(), true)

	data, ok := response.Data.(ListData)
	require.True(t, ok)
	assert.True(t, data.LimitExceeded)
}

func TestNewEntryResponse(t *testing.T) {
	entry := map[string]string{"id": "sweden"}
	response := NewEntryResponse(entry, NewEmptyReferences())

	data, ok := response.Data.(EntryData)
	require.True(t, ok)
	assert.Equal(t, entry, data.Entry)
}

func TestResponseSerializesEmptyReferences(t *testing.T) {
	response := NewListResponse([]Country{}, NewEmptyReferences())

	raw, err := json.Marshal(response)
	require.NoError(t, err)

	// Empty references must serialize as empty arrays, not null.
	assert.Contains(t, string(raw), `"countries":[]`)
	assert.Contains(t, string(raw), `"regions":[]`)
}
