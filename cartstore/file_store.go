package cartstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/take-two/storefront/models"
)

// FileStore keeps each slot as a JSON file under a state directory.
type FileStore struct {
	dir    string
	slot   string
	logger *zap.Logger
}

func NewFileStore(dir, slot string, logger *zap.Logger) *FileStore {
	return &FileStore{dir: dir, slot: slot, logger: logger}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, s.slot+".json")
}

func (s *FileStore) Load(_ context.Context) []models.LineItem {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("cart slot unreadable, starting empty",
				zap.String("slot", s.slot), zap.Error(err))
		}
		return []models.LineItem{}
	}

	var items []models.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("cart slot malformed, starting empty",
			zap.String("slot", s.slot), zap.Error(err))
		return []models.LineItem{}
	}
	if items == nil {
		items = []models.LineItem{}
	}
	return items
}

func (s *FileStore) Save(_ context.Context, items []models.LineItem) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}
