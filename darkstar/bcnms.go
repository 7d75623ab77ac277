package darkstar

import (
	"context"

	"github.com/arcanusdsp/server/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Bcnms answers battlefield lookups.
type Bcnms struct {
	db      *gorm.DB
	blocked Blocklist
	logger  *zap.Logger
}

func NewBcnms(db *gorm.DB, blocked Blocklist, logger *zap.Logger) *Bcnms {
	return &Bcnms{db: db, blocked: blocked, logger: logger}
}

type BcnmSummary struct {
	BcnmID   int    `json:"bcnmid" gorm:"column:bcnmid"`
	Name     string `json:"name" gorm:"column:name"`
	LevelCap int    `json:"levelcap" gorm:"column:levelcap"`
}

// Bcnm is a battlefield with its monsters grouped by battlefield number
// and its loot grouped by loot group. Groups missing from the database
// are simply absent from the maps.
type Bcnm struct {
	ID          int                          `json:"id"`
	Name        string                       `json:"name"`
	FastestName string                       `json:"fastestName"`
	FastestTime int                          `json:"fastestTime"`
	LevelCap    int                          `json:"levelcap"`
	LootID      int                          `json:"lootid"`
	PartySize   int                          `json:"partysize"`
	Rules       int                          `json:"rules"`
	TimeLimit   int                          `json:"timelimit"`
	ZoneID      int                          `json:"zoneid"`
	ZoneName    string                       `json:"zonename"`
	Monsters    map[int][]BattlefieldMonster `json:"monsters"`
	Drops       map[int][]BcnmDrop           `json:"drops"`
}

type BattlefieldMonster struct {
	BattlefieldNumber int     `json:"battlefieldnumber" gorm:"column:battlefieldnumber"`
	MonsterID         int64   `json:"monsterid" gorm:"column:monsterid"`
	Conditions        int     `json:"conditions" gorm:"column:conditions"`
	MobName           string  `json:"mobname" gorm:"column:mobname"`
	PolutilsName      string  `json:"polutils_name" gorm:"column:polutils_name"`
	GroupID           int     `json:"groupid" gorm:"column:groupid"`
	PosX              float64 `json:"pos_x" gorm:"column:pos_x"`
	PosY              float64 `json:"pos_y" gorm:"column:pos_y"`
	PosZ              float64 `json:"pos_z" gorm:"column:pos_z"`
	MinLevel          int     `json:"minlevel" gorm:"column:minlevel"`
	MaxLevel          int     `json:"maxlevel" gorm:"column:maxlevel"`
	HP                int     `json:"hp" gorm:"column:hp"`
	MP                int     `json:"mp" gorm:"column:mp"`
}

type BcnmDrop struct {
	LootGroupID int    `json:"lootgroupid" gorm:"column:lootgroupid"`
	ItemID      int    `json:"itemid" gorm:"column:itemid"`
	Rolls       int    `json:"rolls" gorm:"column:rolls"`
	ItemName    string `json:"itemname" gorm:"column:itemname"`
}

// List returns every battlefield by name. Blocked ones are only listed
// for admins.
func (s *Bcnms) List(ctx context.Context, isAdmin bool) ([]BcnmSummary, error) {
	var rows []BcnmSummary
	err := s.db.WithContext(ctx).Model(&model.BcnmInfo{}).
		Select("bcnmid, name, levelcap").Order("name ASC").Scan(&rows).Error
	if err != nil {
		s.logger.Warn("bcnm list failed", zap.Error(err))
		return nil, composeErr("bcnm list", err)
	}

	out := make([]BcnmSummary, 0, len(rows))
	for _, r := range rows {
		if s.blocked.Contains(int64(r.BcnmID)) && !isAdmin {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type bcnmRow struct {
	model.BcnmInfo
	ZoneName string `gorm:"column:zonename"`
}

// ByID composes a battlefield. A blocked id is not found for non-admins.
func (s *Bcnms) ByID(ctx context.Context, bcnmID int, isAdmin bool) (*Bcnm, error) {
	if s.blocked.Contains(int64(bcnmID)) && !isAdmin {
		return nil, composeErr("the BCNM", ErrNotFound)
	}

	b := &Bcnm{}
	db := s.db.WithContext(ctx)
	err := runSteps(
		func() error {
			var rows []bcnmRow
			err := db.Raw(`SELECT bc.*, zs.zoneid AS zoneid, zs.name AS zonename
				FROM bcnm_info AS bc
				INNER JOIN zone_settings AS zs ON bc.zoneid = zs.zoneid
				WHERE bc.bcnmid = ?`, bcnmID).Scan(&rows).Error
			if err != nil {
				return err
			}
			if len(rows) == 0 || rows[0].BcnmID == 0 {
				return ErrNotFound
			}
			r := rows[0]
			*b = Bcnm{
				ID:          r.BcnmID,
				Name:        r.Name,
				FastestName: r.FastestName,
				FastestTime: r.FastestTime,
				LevelCap:    r.LevelCap,
				LootID:      r.LootDropID,
				PartySize:   r.PartySize,
				Rules:       r.Rules,
				TimeLimit:   r.TimeLimit,
				ZoneID:      r.ZoneID,
				ZoneName:    r.ZoneName,
			}
			return nil
		},
		func() error {
			var rows []BattlefieldMonster
			err := db.Raw(`SELECT bf.battlefieldnumber, bf.monsterid, bf.conditions,
					COALESCE(msp.mobname, '') AS mobname, COALESCE(msp.polutils_name, '') AS polutils_name,
					COALESCE(msp.groupid, 0) AS groupid, COALESCE(msp.pos_x, 0) AS pos_x,
					COALESCE(msp.pos_y, 0) AS pos_y, COALESCE(msp.pos_z, 0) AS pos_z,
					COALESCE(mg.minlevel, 0) AS minlevel, COALESCE(mg.maxlevel, 0) AS maxlevel,
					COALESCE(mg.hp, 0) AS hp, COALESCE(mg.mp, 0) AS mp
				FROM bcnm_battlefield AS bf
				LEFT JOIN mob_spawn_points AS msp ON msp.mobid = bf.monsterid
				LEFT JOIN mob_groups AS mg ON mg.groupid = msp.groupid
				WHERE bf.bcnmid = ?
				ORDER BY bf.battlefieldnumber, bf.monsterid`, b.ID).Scan(&rows).Error
			if err != nil {
				return err
			}
			b.Monsters = make(map[int][]BattlefieldMonster)
			for _, r := range rows {
				b.Monsters[r.BattlefieldNumber] = append(b.Monsters[r.BattlefieldNumber], r)
			}
			return nil
		},
		func() error {
			var rows []BcnmDrop
			err := db.Raw(`SELECT bl.lootgroupid, bl.itemid, bl.rolls, `+itemNameExpr+`
				FROM bcnm_loot AS bl
				`+itemNameJoins("bl.itemid")+`
				WHERE bl.lootdropid = ?
				ORDER BY bl.lootgroupid`, b.LootID).Scan(&rows).Error
			if err != nil {
				return err
			}
			b.Drops = make(map[int][]BcnmDrop)
			for _, r := range rows {
				b.Drops[r.LootGroupID] = append(b.Drops[r.LootGroupID], r)
			}
			return nil
		},
	)
	if err != nil {
		s.logger.Warn("bcnm lookup failed", zap.Int("bcnmid", bcnmID), zap.Error(err))
		return nil, composeErr("the BCNM", err)
	}
	return b, nil
}
