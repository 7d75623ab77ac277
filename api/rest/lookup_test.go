package rest_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemSearch(t *testing.T) {
	env := newEnv(t)
	b := env.browser()

	var hits []map[string]interface{}
	w := b.get("/ajax/items?name=copper")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &hits)
	require.Len(t, hits, 1)
	assert.EqualValues(t, itemOre, hits[0]["id"])
	assert.Equal(t, "copper_ore", hits[0]["name"])

	for _, q := range []string{"", "?name=", "?name=ab", "?name=%20%20"} {
		w := b.get("/ajax/items" + q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.JSONEq(t, `[]`, w.Body.String(), q)
	}
}

func TestItemGet(t *testing.T) {
	env := newEnv(t)
	b := env.browser()

	assert.Equal(t, http.StatusNoContent, b.get("/ajax/item").Code)
	assert.Equal(t, http.StatusNoContent, b.get("/ajax/item?id=zero").Code)

	var item map[string]interface{}
	w := b.get("/ajax/item?id=640")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &item)
	assert.Equal(t, "copper_ore", item["name"])

	var cached map[string]interface{}
	assert.True(t, env.results.Load(context.Background(), "item-640", &cached))
	assert.False(t, env.results.Load(context.Background(), "item-640true", &cached))
}

func TestItemGet_AdminSlot(t *testing.T) {
	env := newEnv(t)
	b := env.browser()
	b.login(t, "admin")

	w := b.get("/ajax/item?id=640")
	require.Equal(t, http.StatusOK, w.Code)

	var cached map[string]interface{}
	assert.True(t, env.results.Load(context.Background(), "item-640true", &cached))
}

func TestItemGet_NotFound(t *testing.T) {
	env := newEnv(t)

	var body map[string]string
	w := env.browser().get("/ajax/item?id=9999")
	require.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, w, &body)
	assert.NotEmpty(t, body["error"])
	assert.NotContains(t, body["error"], "sql")
}

func TestMonsterGet(t *testing.T) {
	env := newEnv(t)

	var mob map[string]interface{}
	w := env.browser().get("/ajax/monster?id=17187001")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &mob)
	assert.EqualValues(t, 1.5, mob["pos_x"])
	assert.EqualValues(t, 206, mob["minhp"])
}

func TestMonsterGet_BlockedDecoy(t *testing.T) {
	env := newEnv(t)

	var mob map[string]interface{}
	w := env.browser().get("/ajax/monster?id=17187002")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &mob)
	assert.Equal(t, "not", mob["pos_x"])
	assert.Equal(t, "999999999", mob["hp"])
	assert.Equal(t, []interface{}{}, mob["drops"])

	admin := env.browser()
	admin.login(t, "admin")
	w = admin.get("/ajax/monster?id=17187002")
	require.Equal(t, http.StatusOK, w.Code)
	mob = nil
	decode(t, w, &mob)
	assert.EqualValues(t, 4, mob["pos_x"])
}

func TestMonsterSearch(t *testing.T) {
	env := newEnv(t)

	var hits []map[string]interface{}
	w := env.browser().get("/ajax/monsters?name=hare")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &hits)
	require.Len(t, hits, 2)
	assert.Equal(t, "West_Ronfaure", hits[0]["zonename"])
}

func TestBcnmList_Empty(t *testing.T) {
	env := newEnv(t)

	w := env.browser().get("/ajax/bcnms")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = env.browser().get("/ajax/bcnm?id=1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusNoContent, env.browser().get("/ajax/bcnm").Code)
}

func TestBlueSpells_Empty(t *testing.T) {
	env := newEnv(t)

	w := env.browser().get("/ajax/bluespells")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = env.browser().get("/ajax/bluespell?id=513")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
