package audit

import (
	"context"
	"sync"
	"time"

	"github.com/arcanusdsp/server/model"
	"github.com/arcanusdsp/server/plugin/hook"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	hookName  = "audit"
	batchSize = 100
)

// Entry is one account action to be recorded.
type Entry struct {
	TraceID   string
	AccountID int64
	CharID    int64
	Action    string
	Detail    interface{}
	Error     string
	IP        string
}

// Service writes audit entries to arcanus_audit_log asynchronously in
// batches.
type Service struct {
	db     *gorm.DB
	ch     chan *model.AuditLog
	stopCh chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
	logger *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *Service {
	svc := &Service{
		db:     db,
		ch:     make(chan *model.AuditLog, 1024),
		stopCh: make(chan struct{}),
		logger: logger,
	}
	svc.wg.Add(1)
	go svc.worker()
	return svc
}

// Subscribe records every account event fired on the hook center.
func (svc *Service) Subscribe(hooks *hook.Center) {
	for _, event := range []string{
		hook.AfterLogin,
		hook.AfterLogout,
		hook.AfterEmailChange,
		hook.AfterPasswordChange,
		hook.AfterUnstuck,
	} {
		hooks.Register(event, 100, hookName, svc.onEvent)
	}
}

func (svc *Service) onEvent(_ context.Context, event string, data interface{}) (interface{}, error) {
	ev, ok := data.(hook.AccountEvent)
	if !ok {
		return data, nil
	}
	svc.Log(Entry{
		TraceID:   ev.TraceID,
		AccountID: ev.AccountID,
		CharID:    ev.CharID,
		Action:    event,
		Detail:    ev.Detail,
		IP:        ev.IP,
	})
	return data, nil
}

// Log enqueues an entry. Entries are dropped when the queue is full.
func (svc *Service) Log(e Entry) {
	rec := &model.AuditLog{
		TraceID:   e.TraceID,
		AccountID: e.AccountID,
		Action:    e.Action,
		Error:     e.Error,
		IP:        e.IP,
	}
	if e.CharID != 0 {
		id := e.CharID
		rec.CharID = &id
	}
	if e.Detail != nil {
		if raw, err := json.Marshal(e.Detail); err == nil {
			rec.Detail = datatypes.JSON(raw)
		}
	}
	select {
	case svc.ch <- rec:
	default:
		svc.logger.Warn("audit queue full, dropping entry", zap.String("action", e.Action))
	}
}

// Stop flushes pending entries and waits for the worker to exit.
func (svc *Service) Stop() {
	svc.once.Do(func() { close(svc.stopCh) })
	svc.wg.Wait()
}

func (svc *Service) worker() {
	defer svc.wg.Done()
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	batch := make([]*model.AuditLog, 0, batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := svc.db.Create(&batch).Error; err != nil {
			svc.logger.Error("audit batch write failed", zap.Int("entries", len(batch)), zap.Error(err))
		}
		batch = batch[:0]
	}

	for {
		select {
		case rec := <-svc.ch:
			batch = append(batch, rec)
			if len(batch) >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-svc.stopCh:
			for {
				select {
				case rec := <-svc.ch:
					batch = append(batch, rec)
				default:
					flush()
					return
				}
			}
		}
	}
}
