package darkstar

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Spells answers blue magic lookups.
type Spells struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSpells(db *gorm.DB, logger *zap.Logger) *Spells {
	return &Spells{db: db, logger: logger}
}

type BlueSpellName struct {
	SpellID int    `json:"spellid" gorm:"column:spellid"`
	Name    string `json:"name" gorm:"column:name"`
}

// BlueSpellSource is a spawn point whose mob can teach a blue spell.
type BlueSpellSource struct {
	SpellID      int     `json:"spellid" gorm:"column:spellid"`
	MobSkillName string  `json:"mob_skill_name" gorm:"column:mob_skill_name"`
	ZoneID       int     `json:"zoneid" gorm:"column:zoneid"`
	ZoneName     string  `json:"zonename" gorm:"column:zonename"`
	MobID        int64   `json:"mobid" gorm:"column:mobid"`
	MobName      string  `json:"mobname" gorm:"column:mobname"`
	PolutilsName string  `json:"polutils_name" gorm:"column:polutils_name"`
	GroupID      int     `json:"groupid" gorm:"column:groupid"`
	PosX         float64 `json:"pos_x" gorm:"column:pos_x"`
	PosY         float64 `json:"pos_y" gorm:"column:pos_y"`
	PosZ         float64 `json:"pos_z" gorm:"column:pos_z"`
}

func (s *Spells) BlueSpells(ctx context.Context) ([]BlueSpellName, error) {
	out := make([]BlueSpellName, 0)
	err := s.db.WithContext(ctx).Raw(`SELECT bsl.spellid, COALESCE(sl.name, '') AS name
		FROM blue_spell_list AS bsl
		LEFT JOIN spell_list AS sl ON bsl.spellid = sl.spellid
		ORDER BY sl.name ASC`).Scan(&out).Error
	if err != nil {
		s.logger.Warn("blue spell list failed", zap.Error(err))
		return nil, composeErr("blue spells", err)
	}
	return out, nil
}

// BlueSpellByID lists the monsters that use the mob skill a blue spell
// is learned from.
func (s *Spells) BlueSpellByID(ctx context.Context, spellID int) ([]BlueSpellSource, error) {
	out := make([]BlueSpellSource, 0)
	err := s.db.WithContext(ctx).Raw(`SELECT bsl.spellid, COALESCE(ms.mob_skill_name, '') AS mob_skill_name,
			COALESCE(mg.zoneid, 0) AS zoneid, COALESCE(zs.name, '') AS zonename,
			msp.mobid, msp.mobname, msp.polutils_name, msp.groupid, msp.pos_x, msp.pos_y, msp.pos_z
		FROM mob_spawn_points AS msp
		LEFT JOIN mob_groups AS mg ON mg.groupid = msp.groupid
		LEFT JOIN zone_settings AS zs ON mg.zoneid = zs.zoneid
		LEFT JOIN mob_pools AS mp ON mp.poolid = mg.poolid
		LEFT JOIN mob_skill_lists AS msl ON msl.skill_list_id = mp.skill_list_id
		LEFT JOIN mob_skills AS ms ON ms.mob_skill_id = msl.mob_skill_id
		LEFT JOIN blue_spell_list AS bsl ON bsl.mob_skill_id = ms.mob_skill_id
		WHERE bsl.spellid = ? AND msp.mobid IS NOT NULL
		ORDER BY msp.mobname, msp.mobid`, spellID).Scan(&out).Error
	if err != nil {
		s.logger.Warn("blue spell lookup failed", zap.Int("spellid", spellID), zap.Error(err))
		return nil, composeErr("blue spell", err)
	}
	return out, nil
}
