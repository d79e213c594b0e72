package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	legacyapp "github.com/palengke/backend/internal/application/legacy"
	"github.com/palengke/backend/internal/domain/legacy"
)

type memoryKeyedStore struct {
	collections map[string][]legacy.Record
}

func newMemoryKeyedStore() *memoryKeyedStore {
	return &memoryKeyedStore{collections: make(map[string][]legacy.Record)}
}

func (s *memoryKeyedStore) Load(ctx context.Context, collection string) ([]legacy.Record, error) {
	return append([]legacy.Record(nil), s.collections[collection]...), nil
}

func (s *memoryKeyedStore) Save(ctx context.Context, collection string, records []legacy.Record) error {
	s.collections[collection] = append([]legacy.Record(nil), records...)
	return nil
}

func (s *memoryKeyedStore) Upsert(ctx context.Context, collection string, record legacy.Record) error {
	records := s.collections[collection]
	for i, rec := range records {
		if rec.ID == record.ID {
			records[i] = record
			return nil
		}
	}
	s.collections[collection] = append(records, record)
	return nil
}

func (s *memoryKeyedStore) Remove(ctx context.Context, collection string, id string) error {
	records := s.collections[collection]
	for i, rec := range records {
		if rec.ID == id {
			s.collections[collection] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return nil
}

func setupTransferTestHandler() (*TransferHandler, *memoryKeyedStore) {
	gin.SetMode(gin.TestMode)

	store := newMemoryKeyedStore()
	service := legacyapp.NewImportService(store, zap.NewNop())
	return NewTransferHandler(service), store
}

func TestTransferHandler_Import_Success(t *testing.T) {
	handler, store := setupTransferTestHandler()

	rec := legacy.NewRecord("expense", "PENDING")
	rec.Set("description", "Electric bill")
	payload, err := json.Marshal(rec)
	require.NoError(t, err)

	body := []byte(`{"expenses":[` + string(payload) + `]}`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/transfer/import", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Import(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.collections[legacy.CollectionExpenses], 1)
}

func TestTransferHandler_Import_MalformedJSON(t *testing.T) {
	handler, _ := setupTransferTestHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/transfer/import", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransferHandler_Export_Success(t *testing.T) {
	handler, store := setupTransferTestHandler()

	rec := legacy.NewRecord("expense", "PENDING")
	require.NoError(t, store.Upsert(context.Background(), legacy.CollectionExpenses, rec))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/transfer/export", nil)

	handler.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	var export map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	assert.Len(t, export[legacy.CollectionExpenses], 1)
}
