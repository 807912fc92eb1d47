package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieID_JSON(t *testing.T) {
	t.Run("server id is a number", func(t *testing.T) {
		b, err := json.Marshal(MovieID("42"))
		require.NoError(t, err)
		assert.Equal(t, `42`, string(b))
	})

	t.Run("temporary id is a string", func(t *testing.T) {
		b, err := json.Marshal(MovieID("local-abc"))
		require.NoError(t, err)
		assert.Equal(t, `"local-abc"`, string(b))
	})

	t.Run("decodes number and string", func(t *testing.T) {
		var m []Movie
		require.NoError(t, json.Unmarshal([]byte(`[{"id":7,"title":"A"},{"id":"local-x","title":"B"}]`), &m))
		require.Len(t, m, 2)
		assert.Equal(t, MovieID("7"), m[0].ID)
		assert.Equal(t, MovieID("local-x"), m[1].ID)
		assert.True(t, m[1].ID.IsTemporary())
		assert.False(t, m[0].ID.IsTemporary())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var id MovieID
		assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
	})
}

func TestNewTemporaryMovieID_Unique(t *testing.T) {
	a, b := NewTemporaryMovieID(), NewTemporaryMovieID()
	assert.NotEqual(t, a, b)
	assert.True(t, a.IsTemporary())
}

func TestMovie_FlattensFields(t *testing.T) {
	m := NewMovie("3", MovieFields{Title: "Heat", Year: 1995, Genre: "Crime", Rating: 8, Review: "r", Image: "http://x"})
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"title":"Heat","year":1995,"genre":"Crime","rating":8,"review":"r","image":"http://x"}`, string(b))
}

func TestMovieUpdate_Apply(t *testing.T) {
	title := "New"
	rating := 9
	got := MovieUpdate{Title: &title, Rating: &rating}.Apply(MovieFields{Title: "Old", Year: 2000, Rating: 5})
	assert.Equal(t, MovieFields{Title: "New", Year: 2000, Rating: 9}, got)
}

func TestConnectivityState(t *testing.T) {
	assert.False(t, ConnectivityState{}.Reachable())
	assert.False(t, ConnectivityState{NetworkReachable: true}.Reachable())
	assert.True(t, ConnectivityState{NetworkReachable: true, ServerReachable: true}.Reachable())
	assert.Equal(t, "No Network", ConnectivityState{}.String())
	assert.Equal(t, "Server Offline", ConnectivityState{NetworkReachable: true}.String())
	assert.Equal(t, "Online", ConnectivityState{NetworkReachable: true, ServerReachable: true}.String())
}
