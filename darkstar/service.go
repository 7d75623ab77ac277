package darkstar

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service groups the darkstar lookups behind one named service.
type Service struct {
	Accounts   *Accounts
	Bcnms      *Bcnms
	Characters *Characters
	Items      *Items
	Monsters   *Monsters
	Spells     *Spells

	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, policy Policy, logger *zap.Logger) *Service {
	return &Service{
		Accounts:   NewAccounts(db, logger),
		Bcnms:      NewBcnms(db, policy.Bcnms, logger),
		Characters: NewCharacters(db, policy.Characters, logger),
		Items:      NewItems(db, NewItemIndex(), logger),
		Monsters:   NewMonsters(db, policy.Monsters, logger),
		Spells:     NewSpells(db, logger),
		db:         db,
		logger:     logger,
	}
}

func (s *Service) Name() string { return "darkstarservice" }

// Initialize builds the item name index.
func (s *Service) Initialize(ctx context.Context) error {
	return s.RebuildItemIndex(ctx)
}

func (s *Service) RebuildItemIndex(ctx context.Context) error {
	idx := s.Items.Index()
	if err := idx.Build(ctx, s.db); err != nil {
		s.logger.Error("item index build failed", zap.Error(err))
		return err
	}
	s.logger.Info("item index built", zap.Int("items", idx.Len()))
	return nil
}
