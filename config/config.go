package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Cache      CacheConfig     `mapstructure:"cache"`
	Security   SecurityConfig  `mapstructure:"security"`
	Darkstar   DarkstarConfig  `mapstructure:"darkstar"`
	News       NewsConfig      `mapstructure:"news"`
	Characters BlocklistConfig `mapstructure:"characters"`
	Monsters   BlocklistConfig `mapstructure:"monsters"`
	Bcnms      BlocklistConfig `mapstructure:"bcnms"`
	Items      ItemsConfig     `mapstructure:"items"`
	Audit      AuditConfig     `mapstructure:"audit"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	Debug        bool     `mapstructure:"debug"`
	AdminKey     string   `mapstructure:"admin_key"`
	AdminIPs     []string `mapstructure:"admin_ips"`     // CIDR or plain IPs allowed on /admin
	TemplatesDir string   `mapstructure:"templates_dir"` // HTML templates; JSON page models when empty
	StaticDir    string   `mapstructure:"static_dir"`
	Title        string   `mapstructure:"title"`
}

type DatabaseConfig struct {
	Mode         string        `mapstructure:"mode"` // mysql | sqlite
	SQLitePath   string        `mapstructure:"sqlite_path"`
	MySQLDSN     string        `mapstructure:"mysql_dsn"`
	MySQLMaxOpen int           `mapstructure:"mysql_max_open"`
	MySQLMaxIdle int           `mapstructure:"mysql_max_idle"`
	MySQLMaxLife time.Duration `mapstructure:"mysql_max_life"`
}

type CacheConfig struct {
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	LocalGCInterval time.Duration `mapstructure:"local_gc_interval"`
	ResultTTL       time.Duration `mapstructure:"result_ttl"` // item/monster/bcnm/character lookups
}

type SecurityConfig struct {
	JWTSecret      string        `mapstructure:"jwt_secret"`
	JWTTTLH        time.Duration `mapstructure:"jwt_ttl_h"`
	CookieName     string        `mapstructure:"cookie_name"`
	CookieSecure   bool          `mapstructure:"cookie_secure"`
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
}

// DarkstarConfig locates the game server that shares the database.
type DarkstarConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Path string `mapstructure:"path"` // install dir holding version.info
}

// NewsConfig points at the forum script that serves news posts as JSON.
type NewsConfig struct {
	Path    string        `mapstructure:"path"`
	Script  string        `mapstructure:"script"`
	ForumID int           `mapstructure:"forum_id"`
	Count   int           `mapstructure:"count"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// BlocklistConfig lists ids hidden from non-admin viewers.
type BlocklistConfig struct {
	Blocked []int `mapstructure:"blocked"`
}

type ItemsConfig struct {
	IndexRefresh time.Duration `mapstructure:"index_refresh"` // 0 disables periodic rebuilds
}

type AuditConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads config from the given YAML file path. Any key can be
// overridden from the environment, e.g. ARCANUS_DATABASE_MYSQL_DSN.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("arcanus")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8081)
	v.SetDefault("server.debug", false)
	v.SetDefault("server.title", "arcanus")
	v.SetDefault("database.mode", "mysql")
	v.SetDefault("database.sqlite_path", "./data/dspdb.db")
	v.SetDefault("database.mysql_dsn", "darkstar:darkstar@tcp(127.0.0.1:3306)/dspdb?parseTime=true")
	v.SetDefault("database.mysql_max_open", 10)
	v.SetDefault("database.mysql_max_idle", 10)
	v.SetDefault("database.mysql_max_life", "1h")
	v.SetDefault("cache.local_gc_interval", "30s")
	v.SetDefault("cache.result_ttl", "600s")
	v.SetDefault("security.jwt_ttl_h", "72h")
	v.SetDefault("security.cookie_name", "arcanus_session")
	v.SetDefault("security.rate_limit_rps", 50)
	v.SetDefault("security.rate_limit_burst", 100)
	v.SetDefault("darkstar.host", "127.0.0.1")
	v.SetDefault("darkstar.port", 54230)
	v.SetDefault("news.script", "news.php")
	v.SetDefault("news.forum_id", 2)
	v.SetDefault("news.count", 5)
	v.SetDefault("news.timeout", "10s")
	v.SetDefault("items.index_refresh", "1h")
	v.SetDefault("audit.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
