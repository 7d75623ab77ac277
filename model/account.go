package model

import "time"

// Account is a row of the darkstar accounts table.
type Account struct {
	ID             int64      `gorm:"column:id;primaryKey" json:"id"`
	Login          string     `gorm:"column:login;size:16;uniqueIndex" json:"login"`
	Password       string     `gorm:"column:password;size:64" json:"-"`
	Email          string     `gorm:"column:email;size:64" json:"email"`
	Email2         string     `gorm:"column:email2;size:64" json:"email2"`
	TimeCreate     *time.Time `gorm:"column:timecreate" json:"timecreate"`
	TimeLastModify *time.Time `gorm:"column:timelastmodify" json:"timelastmodify"`
	ContentIDs     int        `gorm:"column:content_ids" json:"content_ids"`
	Expansions     int        `gorm:"column:expansions" json:"expansions"`
	Features       int        `gorm:"column:features" json:"features"`
	Status         int        `gorm:"column:status" json:"status"`
	Priv           int        `gorm:"column:priv" json:"priv"`
}

func (Account) TableName() string { return "accounts" }

// Banned reports whether the account carries the banned status bit.
func (a *Account) Banned() bool { return a.Status&0x02 == 0x02 }

// IsAdmin reports whether the account may see admin-only data.
func (a *Account) IsAdmin() bool { return a != nil && a.Priv > 1 }

// AccountSession is a live game session; one row per online character.
type AccountSession struct {
	AccID          int64 `gorm:"column:accid"`
	CharID         int64 `gorm:"column:charid;primaryKey"`
	TargID         int   `gorm:"column:targid"`
	LinkshellID1   int64 `gorm:"column:linkshellid1"`
	LinkshellID2   int64 `gorm:"column:linkshellid2"`
	LinkshellRank1 int   `gorm:"column:linkshellrank1"`
	LinkshellRank2 int   `gorm:"column:linkshellrank2"`
	ServerAddr     int64 `gorm:"column:server_addr"`
	ServerPort     int   `gorm:"column:server_port"`
	ClientAddr     int64 `gorm:"column:client_addr"`
	ClientPort     int   `gorm:"column:client_port"`
}

func (AccountSession) TableName() string { return "accounts_sessions" }
