package rest

import (
	mw "github.com/arcanusdsp/server/middleware"
	"github.com/arcanusdsp/server/plugin"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the site plugins mount.
type Handlers struct {
	Site       *SiteHandler
	Status     *StatusHandler
	Accounts   *AccountHandler
	Characters *CharacterHandler
	Items      *ItemHandler
	Monsters   *MonsterHandler
	Bcnms      *BcnmHandler
	Spells     *SpellHandler
}

// Plugins returns the site plugins in load order. The base plugin comes
// first since it creates the main menu the database tools extend.
func Plugins(h *Handlers) []plugin.Plugin {
	return []plugin.Plugin{
		sitePlugin{h},
		accountsPlugin{h.Accounts},
		bcnmsPlugin{h},
		spellsPlugin{h},
		charactersPlugin{h},
		itemsPlugin{h},
		monstersPlugin{h},
	}
}

var mainMenu = []plugin.MenuItem{
	{
		Alias: "community",
		Icon:  "fa-globe",
		Title: "Community",
		Children: []plugin.MenuItem{
			{Alias: "forums", Href: "https://www.kupoffxi.com/forums/", Icon: "fa-list", Title: "Forums"},
			{Alias: "wiki", Href: "http://kupoffxi.wikia.com/wiki/Kupo_FFXI_Wiki", Icon: "fa-wikipedia-w", Title: "Wiki"},
			{Alias: "chat", Href: "https://discord.gg/bNJ9hHY", Icon: "fa-comments-o", Title: "Chat (Discord)"},
			{Alias: "ashita", Href: "http://ashita.atom0s.com/", Icon: "fa-gears", Title: "Ashita"},
			{Alias: "community-sep00", Separator: true},
			{Alias: "bugreports", Href: "https://github.com/KupoServer/Issues", Icon: "fa-github", Title: "Bug Reports (Server)"},
			{Alias: "bugreportsweb", Href: "https://github.com/KupoServer/Website", Icon: "fa-github", Title: "Bug Reports (Website)"},
		},
	},
	databaseMenu,
	{Alias: "guides", Icon: "fa-info-circle", Title: "Guides"},
	{Alias: "donate", Href: "/donate", Icon: "fa-paypal", Title: "Donate"},
}

var databaseMenu = plugin.MenuItem{
	Alias: "database",
	Icon:  "fa-database",
	Title: "Database Tools",
	Children: []plugin.MenuItem{
		{Alias: "whosonline", Href: "/whosonline", Icon: "fa-list", Title: "Whos Online"},
		{Alias: "database-sep00", Separator: true},
	},
}

var rightMenuOptions = map[string]string{"class": "nav navbar-nav navbar-right"}

var guestMenu = []plugin.MenuItem{
	{Alias: "login", Href: "/account/login", Icon: "fa-sign-in", Title: "login"},
}

var userMenu = []plugin.MenuItem{
	{
		Alias: "account",
		Icon:  "fa-gear",
		Title: "Account",
		Children: []plugin.MenuItem{
			{Alias: "profile", Href: "/account/profile", Icon: "fa-user", Title: "Profile"},
			{Alias: "account-sep1", Separator: true},
			{Alias: "changeemail", Href: "/account/changeemail", Icon: "fa-envelope-o", Title: "Change Email"},
			{Alias: "changepassword", Href: "/account/changepassword", Icon: "fa-key", Title: "Change Password"},
		},
	},
	{Alias: "logout", Href: "/account/logout", Icon: "fa-sign-out", Title: "logout"},
}

// addDatabaseTool makes sure the database menu exists and adds a tool
// under it.
func addDatabaseTool(host *plugin.Host, items ...plugin.MenuItem) error {
	if err := host.Menus.AppendMenuItem(MenuMain, databaseMenu); err != nil {
		return err
	}
	return host.Menus.AppendMenuItems(MenuMain, items, "database")
}

// dbRoutes mounts a tool's search page and its detail page, with and
// without the trailing name segment.
func dbRoutes(g *gin.RouterGroup, site *SiteHandler, t DBTool) {
	g.GET(t.Path, site.Lookup(t))
	g.GET(t.Path+"/:id", site.Detail(t))
	g.GET(t.Path+"/:id/:name", site.Detail(t))
}

type sitePlugin struct{ h *Handlers }

func (sitePlugin) Name() string { return "arcanusdsp" }

func (p sitePlugin) Initialize(host *plugin.Host) error {
	site, st, chars := p.h.Site, p.h.Status, p.h.Characters
	host.RegisterRouter(p.Name(), "/", func(g *gin.RouterGroup) {
		g.GET("/", site.Index())
		g.GET("/chat", site.Chat())
		g.GET("/whosonline", site.WhosOnline())
		g.GET("/donate", site.Donate())
	})
	host.RegisterRouter(p.Name(), "/ajax", func(g *gin.RouterGroup) {
		g.GET("/latestnews", st.LatestNews)
		g.GET("/serverstatus", st.ServerStatus)
		g.GET("/serverversion", st.ServerVersion)
		g.GET("/nodeversion", st.NodeVersion)
		g.GET("/onlinecharacters", chars.Online)
		g.GET("/unstuck", chars.Unstuck)
	})
	host.Menus.CreateMenu(MenuMain, mainMenu, map[string]string{"class": "nav navbar-nav navbar-left"})
	return nil
}

type accountsPlugin struct{ h *AccountHandler }

func (accountsPlugin) Name() string { return "arcanusdsp-accounts" }

func (p accountsPlugin) Initialize(host *plugin.Host) error {
	h := p.h
	host.RegisterRouter(p.Name(), "/account", func(g *gin.RouterGroup) {
		g.GET("/login", h.LoginPage)
		g.POST("/login", h.Login)
		g.GET("/logout", h.Logout)

		user := g.Group("", mw.RequireUser())
		user.GET("/profile", h.Profile)
		user.GET("/changeemail", h.ChangeEmailPage)
		user.POST("/changeemail", h.ChangeEmail)
		user.GET("/changepassword", h.ChangePasswordPage)
		user.POST("/changepassword", h.ChangePassword)
	})
	host.Menus.CreateMenu(MenuRightGuest, guestMenu, rightMenuOptions)
	host.Menus.CreateMenu(MenuRightUser, userMenu, rightMenuOptions)
	return nil
}

type bcnmsPlugin struct{ h *Handlers }

func (bcnmsPlugin) Name() string { return "arcanusdsp-bcnm" }

func (p bcnmsPlugin) Initialize(host *plugin.Host) error {
	if err := addDatabaseTool(host, plugin.MenuItem{
		Alias: "bcnms", Href: "/db/bcnms", Icon: "fa-fort-awesome", Title: "BCNM Tool",
	}); err != nil {
		return err
	}
	host.RegisterRouter(p.Name(), "/ajax", func(g *gin.RouterGroup) {
		g.GET("/bcnms", p.h.Bcnms.List)
		g.GET("/bcnm", p.h.Bcnms.Get)
	})
	host.RegisterRouter(p.Name(), "/db", func(g *gin.RouterGroup) {
		dbRoutes(g, p.h.Site, DBTool{
			Path:         "/bcnms",
			IDKey:        "bcnmid",
			LookupTmpl:   "db/bcnm/bcnms",
			LookupMeta:   Meta{Title: "Find A BCNM", Description: "Lookup a BCNM instance information."},
			DetailTmpl:   "db/bcnm/bcnm",
			DetailMeta:   Meta{Title: "Loading BCNM...", Description: "Viewing a BCNM."},
			InvalidIDMsg: "Invalid bcnm id given.",
		})
	})
	return nil
}

type spellsPlugin struct{ h *Handlers }

func (spellsPlugin) Name() string { return "arcanusdsp-bluespells" }

func (p spellsPlugin) Initialize(host *plugin.Host) error {
	if err := addDatabaseTool(host,
		plugin.MenuItem{Alias: "bluespells-sep00", Separator: true},
		plugin.MenuItem{Alias: "bluespells", Href: "/db/bluespells", Icon: "fa-magic", Title: "Bluemage Tool"},
	); err != nil {
		return err
	}
	host.RegisterRouter(p.Name(), "/ajax", func(g *gin.RouterGroup) {
		g.GET("/bluespells", p.h.Spells.List)
		g.GET("/bluespell", p.h.Spells.Get)
	})
	host.RegisterRouter(p.Name(), "/db", func(g *gin.RouterGroup) {
		dbRoutes(g, p.h.Site, DBTool{
			Path:         "/bluespells",
			IDKey:        "spellid",
			LookupTmpl:   "db/bluespells/bluespells",
			LookupMeta:   Meta{Title: "Find A Blue Spell", Description: "Lookup a blue mages spell information."},
			DetailTmpl:   "db/bluespells/bluespell",
			DetailMeta:   Meta{Title: "Loading Spell...", Description: "Viewing a blue magic spell."},
			InvalidIDMsg: "Invalid spell id given.",
		})
	})
	return nil
}

type charactersPlugin struct{ h *Handlers }

func (charactersPlugin) Name() string { return "arcanusdsp-characters" }

func (p charactersPlugin) Initialize(host *plugin.Host) error {
	if err := addDatabaseTool(host, plugin.MenuItem{
		Alias: "characterstool", Href: "/db/characters", Icon: "fa-users", Title: "Character Tool",
	}); err != nil {
		return err
	}
	host.RegisterRouter(p.Name(), "/ajax", func(g *gin.RouterGroup) {
		g.GET("/characters", p.h.Characters.Search)
		g.GET("/character", p.h.Characters.Get)
	})
	host.RegisterRouter(p.Name(), "/db", func(g *gin.RouterGroup) {
		dbRoutes(g, p.h.Site, DBTool{
			Path:         "/characters",
			IDKey:        "charid",
			LookupTmpl:   "db/characters/characterlookup",
			LookupMeta:   Meta{Title: "Find A Character", Description: "Lookup a characters profile."},
			DetailTmpl:   "db/characters/character",
			DetailMeta:   Meta{Title: "Loading Profile...", Description: "Viewing a characters profile."},
			InvalidIDMsg: "Invalid character id given.",
		})
	})
	return nil
}

type itemsPlugin struct{ h *Handlers }

func (itemsPlugin) Name() string { return "arcanusdsp-items" }

func (p itemsPlugin) Initialize(host *plugin.Host) error {
	if err := addDatabaseTool(host, plugin.MenuItem{
		Alias: "itemstool", Href: "/db/items", Icon: "fa-diamond", Title: "Item Tool",
	}); err != nil {
		return err
	}
	host.RegisterRouter(p.Name(), "/ajax", func(g *gin.RouterGroup) {
		g.GET("/items", p.h.Items.Search)
		g.GET("/item", p.h.Items.Get)
	})
	host.RegisterRouter(p.Name(), "/db", func(g *gin.RouterGroup) {
		dbRoutes(g, p.h.Site, DBTool{
			Path:         "/items",
			IDKey:        "itemid",
			LookupTmpl:   "db/items/itemlookup",
			LookupMeta:   Meta{Title: "Find An Item", Description: "Lookup an items information."},
			DetailTmpl:   "db/items/item",
			DetailMeta:   Meta{Title: "Loading Item...", Description: "Viewing an items information."},
			InvalidIDMsg: "Invalid item id given.",
		})
	})
	return nil
}

type monstersPlugin struct{ h *Handlers }

func (monstersPlugin) Name() string { return "arcanusdsp-monsters" }

func (p monstersPlugin) Initialize(host *plugin.Host) error {
	if err := addDatabaseTool(host, plugin.MenuItem{
		Alias: "monsterstool", Href: "/db/monsters", Icon: "fa-android", Title: "Monster Tool",
	}); err != nil {
		return err
	}
	host.RegisterRouter(p.Name(), "/ajax", func(g *gin.RouterGroup) {
		g.GET("/monsters", p.h.Monsters.Search)
		g.GET("/monster", p.h.Monsters.Get)
	})
	host.RegisterRouter(p.Name(), "/db", func(g *gin.RouterGroup) {
		dbRoutes(g, p.h.Site, DBTool{
			Path:         "/monsters",
			IDKey:        "mobid",
			LookupTmpl:   "db/monsters/monsterlookup",
			LookupMeta:   Meta{Title: "Find A Monster", Description: "Lookup a monsters information."},
			DetailTmpl:   "db/monsters/monster",
			DetailMeta:   Meta{Title: "Loading Monster...", Description: "Viewing a monsters information."},
			InvalidIDMsg: "Invalid monster id given.",
		})
	})
	return nil
}
