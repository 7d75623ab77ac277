package darkstar

import (
	"context"
	"errors"
	"testing"

	"github.com/arcanusdsp/server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCharacters(t *testing.T, blocked ...int) *Characters {
	db := newTestDB(t)
	seedCharacters(t, db)
	seedItems(t, db)
	return NewCharacters(db, NewBlocklist(blocked), testLogger())
}

func onlineNames(chars []OnlineCharacter) []string {
	names := make([]string, 0, len(chars))
	for _, c := range chars {
		names = append(names, c.CharName)
	}
	return names
}

func TestOnline_FiltersAndOrders(t *testing.T) {
	s := newTestCharacters(t)

	chars, unique, err := s.Online(context.Background())
	require.NoError(t, err)

	// Bravo is gm hidden, Charlie an anonymous GM; Zulu has no session.
	assert.Equal(t, []string{"Delta", "Alpha", "Echo"}, onlineNames(chars))
	assert.EqualValues(t, 4, unique)

	delta, alpha, echo := chars[0], chars[1], chars[2]
	assert.Equal(t, 2, delta.GMLevel)
	assert.Empty(t, delta.LS1Name)
	assert.Equal(t, "transparent", delta.LS1Color)

	assert.Equal(t, "Pearls", alpha.LS1Name)
	assert.Equal(t, "#0F0FFF", alpha.LS1Color)
	assert.Equal(t, "transparent", alpha.LS2Color)
	assert.Equal(t, 3, alpha.LS1Rank)
	assert.Equal(t, "Bastok_Markets", alpha.ZoneName)
	require.Len(t, alpha.Jobs, JobCount)
	assert.Equal(t, Job{ID: 1, Name: "war", Level: 75}, alpha.Jobs[1])
	assert.Equal(t, Job{ID: 13, Name: "nin", Level: 37}, alpha.Jobs[13])
	assert.Equal(t, Job{}, alpha.Jobs[0])

	// gmlevel without a GM name flag is not shown
	assert.Equal(t, 0, echo.GMLevel)
}

func TestOnline_NeverListsGMHidden(t *testing.T) {
	db := newTestDB(t)
	seedCharacters(t, db)
	// give the hidden character every other flag combination
	require.NoError(t, db.Model(&model.CharStats{}).Where("charid = ?", charBravo).
		Update("nameflags", 0x00010000).Error)
	require.NoError(t, db.Model(&model.Char{}).Where("charid = ?", charBravo).
		Update("gmlevel", 0).Error)

	s := NewCharacters(db, nil, testLogger())
	chars, _, err := s.Online(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, onlineNames(chars), "Bravo")
}

func TestCharactersByName(t *testing.T) {
	s := newTestCharacters(t, charBlocked)
	ctx := context.Background()

	_, err := s.ByName(ctx, "ab")
	assert.ErrorIs(t, err, ErrValidation)

	got, err := s.ByName(ctx, "alp")
	require.NoError(t, err)
	assert.Equal(t, []CharacterName{{CharID: charAlpha, CharName: "Alpha"}}, got)

	got, err = s.ByName(ctx, "xyz")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCharactersByAccountID(t *testing.T) {
	s := newTestCharacters(t)

	chars, err := s.ByAccountID(context.Background(), accAlpha)
	require.NoError(t, err)
	require.Len(t, chars, 7)

	byName := make(map[string]AccountCharacter)
	for i, c := range chars {
		byName[c.CharName] = c
		if i > 0 {
			assert.LessOrEqual(t, chars[i-1].CharName, c.CharName)
		}
	}

	assert.True(t, byName["Alpha"].IsOnline)
	assert.False(t, byName["Zulu"].IsOnline)
	assert.Equal(t, []CharacterLinkshell{{ID: 7, Name: "Pearls", Color: "#0F0FFF", Rank: 3}}, byName["Zulu"].Linkshells)
	assert.NotNil(t, byName["Alpha"].Linkshells)
	assert.Empty(t, byName["Alpha"].Linkshells)

	none, err := s.ByAccountID(context.Background(), 4242)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCharacterByID_Profile(t *testing.T) {
	s := newTestCharacters(t)

	p, err := s.ByID(context.Background(), charAlpha, false)
	require.NoError(t, err)

	assert.Equal(t, "Alpha", p.CharName)
	assert.Equal(t, 6, p.Rank)
	assert.True(t, p.IsOnline)
	assert.Equal(t, lastModified.UnixMilli(), p.TimeLastModify)

	require.Len(t, p.Equipment, 16)
	assert.Equal(t, EquipSlot{EquipSlotID: 4}, p.Equipment[4])

	require.Len(t, p.Jobs, JobCount)
	assert.Equal(t, 75, p.Jobs[1].Level)
	require.Len(t, p.JobsRows, 11)
	for _, row := range p.JobsRows {
		assert.Len(t, row, 2)
	}
	assert.Equal(t, "war", p.JobsRows[0][0].Name)
	assert.Equal(t, "mnk", p.JobsRows[0][1].Name)

	require.Len(t, p.Crafts, 10)
	assert.Equal(t, "Fishing", p.Crafts[0].Name)

	assert.Len(t, p.AHHistory, 10)
	assert.Equal(t, "copper_ore", p.AHHistory[0].ItemName)
	require.Len(t, p.Bazaar, 1)
	assert.EqualValues(t, 500, p.Bazaar[0].Bazaar)
	assert.NotNil(t, p.Linkshells)

	admin, err := s.ByID(context.Background(), charAlpha, true)
	require.NoError(t, err)
	// the seller's two open listings are not history
	assert.Len(t, admin.AHHistory, 12)
	for _, sale := range admin.AHHistory {
		assert.NotZero(t, sale.SellDate)
	}
}

func TestCharacterByID_CraftLevels(t *testing.T) {
	db := newTestDB(t)
	seedCharacters(t, db)
	require.NoError(t, db.Create(&model.CharSkill{CharID: charAlpha, SkillID: 50, Value: 455}).Error)
	require.NoError(t, db.Create(&model.CharSkill{CharID: charAlpha, SkillID: 1, Value: 2000}).Error)

	p, err := NewCharacters(db, nil, testLogger()).ByID(context.Background(), charAlpha, false)
	require.NoError(t, err)
	assert.Equal(t, CraftSkill{ID: 50, Name: "Smithing", Level: 46}, p.Crafts[2])
	assert.Equal(t, 0, p.Crafts[1].Level)
}

func TestCharacterByID_GMHiddenLinkshells(t *testing.T) {
	s := newTestCharacters(t)

	p, err := s.ByID(context.Background(), charBravo, false)
	require.NoError(t, err)
	assert.NotNil(t, p.Linkshells)
	assert.Empty(t, p.Linkshells)

	z, err := s.ByID(context.Background(), charZulu, false)
	require.NoError(t, err)
	require.Len(t, z.Linkshells, 1)
	assert.Equal(t, "Pearls", z.Linkshells[0].Name)
}

func TestCharacterByID_NotFound(t *testing.T) {
	s := newTestCharacters(t, charBlocked)
	ctx := context.Background()

	for _, admin := range []bool{false, true} {
		_, err := s.ByID(ctx, charBlocked, admin)
		assert.ErrorIs(t, err, ErrNotFound)

		var ce *ComposeError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "failed to obtain character profile", ce.Error())
	}

	_, err := s.ByID(ctx, 1, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnstuck(t *testing.T) {
	db := newTestDB(t)
	seedCharacters(t, db)
	s := NewCharacters(db, nil, testLogger())
	ctx := context.Background()

	require.NoError(t, db.Model(&model.Char{}).Where("charid = ?", charZulu).Updates(map[string]interface{}{
		"pos_zone": 200, "pos_prevzone": 0, "home_zone": zoneBastok, "home_x": 12.5, "home_rot": 64,
	}).Error)
	require.NoError(t, db.Model(&model.Char{}).Where("charid = ?", charEcho).
		Update("pos_zone", JailZone).Error)

	assert.ErrorIs(t, s.Unstuck(ctx, accAlpha, charEcho), ErrJailed)
	assert.ErrorIs(t, s.Unstuck(ctx, accAlpha+1, charZulu), ErrNotFound)

	require.NoError(t, s.Unstuck(ctx, accAlpha, charZulu))

	var c model.Char
	require.NoError(t, db.First(&c, "charid = ?", charZulu).Error)
	assert.Equal(t, zoneBastok, c.PosZone)
	assert.Equal(t, zoneBastok, c.PosPrevZone)
	assert.Equal(t, 12.5, c.PosX)
	assert.Equal(t, 64, c.PosRot)
}
