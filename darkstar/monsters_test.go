package darkstar

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMonsters(t *testing.T, blocked ...int) *Monsters {
	db := newTestDB(t)
	seedItems(t, db)
	return NewMonsters(db, NewBlocklist(blocked), testLogger())
}

func TestMonsterByID(t *testing.T) {
	s := newTestMonsters(t)

	m, err := s.ByID(context.Background(), mobRabbit, false)
	require.NoError(t, err)

	assert.Equal(t, "Forest Hare", m.Name)
	assert.Equal(t, "West_Ronfaure", m.ZoneName)
	assert.Equal(t, 10, m.MinLevel.Int())
	assert.Equal(t, 80, m.MaxLevel.Int())
	assert.Equal(t, 1.5, m.PosX.Float())
	assert.Equal(t, 206, m.MinHP)
	assert.Equal(t, 4911, m.MaxHP)
	assert.Equal(t, 330, m.RespawnTime)

	require.Len(t, m.Drops, 2)
	assert.Equal(t, MonsterDrop{ItemID: itemCopperOre, ItemRate: 100, ItemName: "copper_ore"}, m.Drops[0])
	assert.Equal(t, MonsterDrop{ItemID: itemFireCrystal, ItemRate: 50, ItemName: "fire_crystal"}, m.Drops[1])
}

func TestMonsterByID_NotoriousHP(t *testing.T) {
	s := newTestMonsters(t)

	m, err := s.ByID(context.Background(), mobNM, false)
	require.NoError(t, err)
	assert.Equal(t, 453, m.MinHP)
	assert.Equal(t, 27010, m.MaxHP)
}

func TestMonsterByID_BlockedDecoy(t *testing.T) {
	s := newTestMonsters(t, mobRabbit)
	ctx := context.Background()

	m, err := s.ByID(ctx, mobRabbit, false)
	require.NoError(t, err)
	assert.Equal(t, "not", m.PosX.String())
	assert.Equal(t, "telling", m.PosY.String())
	assert.Equal(t, "you", m.PosZ.String())
	assert.Equal(t, "super hard bro", m.MinLevel.String())
	assert.Equal(t, "wtfhax", m.MaxLevel.String())
	assert.Equal(t, "999999999", m.HP.String())
	assert.Equal(t, 0, m.RespawnTime)
	assert.NotNil(t, m.Drops)
	assert.Empty(t, m.Drops)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"pos_x":"not"`)
	assert.Contains(t, string(b), `"hp":"999999999"`)
	assert.Contains(t, string(b), `"drops":[]`)

	admin, err := s.ByID(ctx, mobRabbit, true)
	require.NoError(t, err)
	assert.False(t, admin.PosX.IsText())
	assert.Equal(t, 1.5, admin.PosX.Float())
	assert.Len(t, admin.Drops, 2)
}

func TestMonsterByID_NotFound(t *testing.T) {
	s := newTestMonsters(t)

	_, err := s.ByID(context.Background(), 1, true)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "failed to obtain monster")
}

func TestMonstersByName(t *testing.T) {
	s := newTestMonsters(t)
	ctx := context.Background()

	got, err := s.ByName(ctx, "forest hare")
	require.NoError(t, err)
	assert.Equal(t, []MonsterName{{MobID: mobRabbit, MobName: "Forest_Hare", PolutilsName: "Forest Hare", ZoneName: "West_Ronfaure"}}, got)

	got, err = s.ByName(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.ByName(ctx, " '")
	assert.ErrorIs(t, err, ErrValidation)
}
