package items

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/packline/inventory-api/pkg/config"
	"github.com/packline/inventory-api/pkg/db"
	"github.com/packline/inventory-api/pkg/db/models"
)

// openTestClient boots a private in-memory sqlite database through the real
// client so tests exercise the same pooling and transaction paths as prod.
func openTestClient(t *testing.T) *db.Client {
	t.Helper()

	cfg := config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
	}

	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	require.NoError(t, client.DB().AutoMigrate(&models.Item{}))
	return client
}

func newTestService(t *testing.T) (Service, *db.Client) {
	t.Helper()

	client := openTestClient(t)
	svc, err := NewService(NewRepository(client.DB()), client)
	require.NoError(t, err)
	return svc, client
}
