package darkstar

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Monsters answers monster lookups.
type Monsters struct {
	db      *gorm.DB
	blocked Blocklist
	logger  *zap.Logger
}

func NewMonsters(db *gorm.DB, blocked Blocklist, logger *zap.Logger) *Monsters {
	return &Monsters{db: db, blocked: blocked, logger: logger}
}

// Monster is a spawn point with its group, pool, family and drop data.
// Level, position and hp/mp are Stats so a blocked monster can carry
// placeholder text in them.
type Monster struct {
	MobID       int64         `json:"mobid"`
	DropID      int           `json:"dropid"`
	GroupID     int           `json:"groupid"`
	Name        string        `json:"name"`
	FamilyHP    int           `json:"familyhp"`
	HP          Stat          `json:"hp"`
	MP          Stat          `json:"mp"`
	MinLevel    Stat          `json:"minlevel"`
	MaxLevel    Stat          `json:"maxlevel"`
	MobType     int           `json:"mobtype"`
	PoolID      int           `json:"poolid"`
	PosX        Stat          `json:"pos_x"`
	PosY        Stat          `json:"pos_y"`
	PosZ        Stat          `json:"pos_z"`
	RespawnTime int           `json:"respawntime"`
	SpawnType   int           `json:"spawntype"`
	ZoneID      int           `json:"zoneid"`
	ZoneName    string        `json:"zonename"`
	MinHP       int           `json:"minhp"`
	MaxHP       int           `json:"maxhp"`
	Drops       []MonsterDrop `json:"drops"`
}

type MonsterDrop struct {
	ItemID   int    `json:"itemid" gorm:"column:itemid"`
	ItemRate int    `json:"itemrate" gorm:"column:itemrate"`
	ItemName string `json:"itemname" gorm:"column:itemname"`
}

type MonsterName struct {
	MobID        int64  `json:"mobid" gorm:"column:mobid"`
	MobName      string `json:"mobname" gorm:"column:mobname"`
	PolutilsName string `json:"polutils_name" gorm:"column:polutils_name"`
	ZoneName     string `json:"zonename" gorm:"column:zonename"`
}

type monsterRow struct {
	MobID        int64   `gorm:"column:mobid"`
	PolutilsName string  `gorm:"column:polutils_name"`
	GroupID      int     `gorm:"column:groupid"`
	PosX         float64 `gorm:"column:pos_x"`
	PosY         float64 `gorm:"column:pos_y"`
	PosZ         float64 `gorm:"column:pos_z"`
	PoolID       int     `gorm:"column:poolid"`
	DropID       int     `gorm:"column:dropid"`
	RespawnTime  int     `gorm:"column:respawntime"`
	SpawnType    int     `gorm:"column:spawntype"`
	HP           int     `gorm:"column:hp"`
	MP           int     `gorm:"column:mp"`
	MinLevel     int     `gorm:"column:minlevel"`
	MaxLevel     int     `gorm:"column:maxlevel"`
	FamilyHP     int     `gorm:"column:familyhp"`
	MobType      int     `gorm:"column:mobtype"`
	ZoneID       int     `gorm:"column:zoneid"`
	ZoneName     string  `gorm:"column:zonename"`
}

// Decoy values shown to non-admins for blocked monsters.
const (
	decoyMinLevel = "super hard bro"
	decoyMaxLevel = "wtfhax"
	decoyPosX     = "not"
	decoyPosY     = "telling"
	decoyPosZ     = "you"
	decoyPool     = "999999999"
)

// ByName searches spawn points by mob name.
func (s *Monsters) ByName(ctx context.Context, name string) ([]MonsterName, error) {
	n, err := normalizeSearchName("monster", name)
	if err != nil {
		return nil, err
	}

	out := make([]MonsterName, 0)
	err = s.db.WithContext(ctx).Raw(`SELECT sp.mobid, sp.mobname, sp.polutils_name, zs.name AS zonename
		FROM mob_spawn_points AS sp
		INNER JOIN mob_groups AS mg ON sp.groupid = mg.groupid
		INNER JOIN zone_settings AS zs ON mg.zoneid = zs.zoneid
		WHERE sp.mobname LIKE ? ORDER BY sp.mobname ASC`, likeContains(n)).Scan(&out).Error
	if err != nil {
		s.logger.Warn("monster search failed", zap.String("name", n), zap.Error(err))
		return nil, composeErr("monster list", err)
	}
	return out, nil
}

// ByID composes a monster. Blocked monsters are still returned to
// non-admins, with decoy values in place of their real stats.
func (s *Monsters) ByID(ctx context.Context, mobID int64, isAdmin bool) (*Monster, error) {
	var m *Monster
	db := s.db.WithContext(ctx)

	err := runSteps(
		func() error {
			var err error
			m, err = s.loadBase(db, mobID)
			return err
		},
		func() error { return s.loadDrops(db, m) },
		func() error {
			nm := isNotorious(m.MobType)
			hp := m.HP.Int()
			m.MinHP = MonsterHP(m.MinLevel.Int(), hp, m.FamilyHP, nm)
			m.MaxHP = MonsterHP(m.MaxLevel.Int(), hp, m.FamilyHP, nm)
			return nil
		},
	)
	if err != nil {
		s.logger.Warn("monster lookup failed", zap.Int64("mobid", mobID), zap.Error(err))
		return nil, composeErr("monster", err)
	}

	if !isAdmin && s.blocked.Contains(mobID) {
		applyDecoy(m)
	}
	return m, nil
}

func applyDecoy(m *Monster) {
	m.MinLevel = TextStat(decoyMinLevel)
	m.MaxLevel = TextStat(decoyMaxLevel)
	m.PosX = TextStat(decoyPosX)
	m.PosY = TextStat(decoyPosY)
	m.PosZ = TextStat(decoyPosZ)
	m.HP = TextStat(decoyPool)
	m.MP = TextStat(decoyPool)
	m.RespawnTime = 0
	m.Drops = []MonsterDrop{}
}

func (s *Monsters) loadBase(db *gorm.DB, mobID int64) (*Monster, error) {
	var rows []monsterRow
	err := db.Raw(`SELECT sp.mobid, sp.polutils_name, sp.groupid, sp.pos_x, sp.pos_y, sp.pos_z,
			mg.poolid, mg.dropid, mg.respawntime, mg.spawntype, mg.hp, mg.mp, mg.minlevel, mg.maxlevel,
			mfs.hp AS familyhp, mp.mobtype, zs.zoneid AS zoneid, zs.name AS zonename
		FROM mob_spawn_points AS sp
		INNER JOIN mob_groups AS mg ON sp.groupid = mg.groupid
		INNER JOIN zone_settings AS zs ON mg.zoneid = zs.zoneid
		INNER JOIN mob_pools AS mp ON mp.poolid = mg.poolid
		INNER JOIN mob_family_system AS mfs ON mfs.familyid = mp.familyid
		WHERE sp.mobid = ? LIMIT 1`, mobID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || rows[0].MobID == 0 {
		return nil, ErrNotFound
	}

	r := rows[0]
	return &Monster{
		MobID:       r.MobID,
		DropID:      r.DropID,
		GroupID:     r.GroupID,
		Name:        r.PolutilsName,
		FamilyHP:    r.FamilyHP,
		HP:          NumStat(float64(r.HP)),
		MP:          NumStat(float64(r.MP)),
		MinLevel:    NumStat(float64(r.MinLevel)),
		MaxLevel:    NumStat(float64(r.MaxLevel)),
		MobType:     r.MobType,
		PoolID:      r.PoolID,
		PosX:        NumStat(r.PosX),
		PosY:        NumStat(r.PosY),
		PosZ:        NumStat(r.PosZ),
		RespawnTime: r.RespawnTime,
		SpawnType:   r.SpawnType,
		ZoneID:      r.ZoneID,
		ZoneName:    r.ZoneName,
	}, nil
}

func (s *Monsters) loadDrops(db *gorm.DB, m *Monster) error {
	m.Drops = []MonsterDrop{}
	for _, table := range dropTables {
		var rows []MonsterDrop
		err := db.Raw(`SELECT dl.itemid, dl.itemrate, `+itemNameExpr+`
			FROM `+table+` AS dl
			`+itemNameJoins("dl.itemid")+`
			WHERE dl.dropid = ?`, m.DropID).Scan(&rows).Error
		if err != nil {
			return err
		}
		m.Drops = append(m.Drops, rows...)
	}
	return nil
}
