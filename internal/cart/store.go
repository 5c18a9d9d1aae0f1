package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/resto-app/backend/internal/domain"
	"github.com/resto-app/backend/internal/ports"
)

// storageKeyPrefix — фиксированный префикс ключа снапшота корзины сессии.
const storageKeyPrefix = "cart:session:"

// Store — персистентность снапшотов корзины поверх ports.KVCache.
// Хранение — чистый побочный эффект: любая ошибка бэкенда деградирует до
// «корзина не запомнена между сессиями» и никогда не роняет вызывающего.
type Store struct {
	kv        ports.KVCache
	log       ports.Logger
	retention time.Duration
}

// NewStore — DI-конструктор.
func NewStore(kv ports.KVCache, log ports.Logger, retention time.Duration) *Store {
	return &Store{kv: kv, log: log, retention: retention}
}

// Load — снапшот сессии; пустое состояние при отсутствии, истечении
// или любой ошибке (включая битый JSON — это не ошибка десериализации наружу).
func (s *Store) Load(ctx context.Context, sessionID string) domain.CartState {
	raw, err := s.kv.Get(ctx, storageKeyPrefix+sessionID)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.log.Warnf(ctx, "cart load failed session=%s err=%v", sessionID, err)
		}
		return domain.CartState{}
	}

	var state domain.CartState
	if err := json.Unmarshal(raw, &state); err != nil {
		s.log.Warnf(ctx, "cart snapshot corrupted session=%s err=%v", sessionID, err)
		return domain.CartState{}
	}
	if state.Expired(time.Now()) {
		return domain.CartState{}
	}
	return state
}

// Save — сохранить снапшот под ключом сессии с TTL окна хранения.
func (s *Store) Save(ctx context.Context, sessionID string, state domain.CartState) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.log.Warnf(ctx, "cart marshal failed session=%s err=%v", sessionID, err)
		return
	}
	if err := s.kv.SetWithTTL(ctx, storageKeyPrefix+sessionID, raw, s.retention); err != nil {
		s.log.Warnf(ctx, "cart save failed session=%s err=%v", sessionID, err)
	}
}

// Clear — удалить снапшот сессии (после успешного оформления заказа).
func (s *Store) Clear(ctx context.Context, sessionID string) {
	if err := s.kv.Delete(ctx, storageKeyPrefix+sessionID); err != nil {
		s.log.Warnf(ctx, "cart clear failed session=%s err=%v", sessionID, err)
	}
}
