package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"barberflow-be/internal/config"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"
	"barberflow-be/internal/pkg/logger"
	"barberflow-be/internal/repository/unitofwork"

	"barberflow-be/pkg/whatsapp"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (noopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

// fakeGateway scripts the Evolution endpoints the reconciler touches and
// records which ones were hit.
type fakeGateway struct {
	mu sync.Mutex

	stateStatus int
	stateBody   string
	listBody    string

	hits []string
}

func (g *fakeGateway) handler() http.Handler {
	mux := http.NewServeMux()
	record := func(name string, fn func(w http.ResponseWriter, r *http.Request)) func(http.ResponseWriter, *http.Request) {
		return func(w http.ResponseWriter, r *http.Request) {
			g.mu.Lock()
			g.hits = append(g.hits, name)
			g.mu.Unlock()
			fn(w, r)
		}
	}
	mux.HandleFunc("/instance/connectionState/", record("state", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(g.stateStatus)
		fmt.Fprint(w, g.stateBody)
	}))
	mux.HandleFunc("/instance/fetchInstances", record("list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, g.listBody)
	}))
	mux.HandleFunc("/instance/create", record("create", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	mux.HandleFunc("/instance/logout/", record("logout", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	mux.HandleFunc("/instance/restart/", record("restart", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	mux.HandleFunc("/instance/connect/", record("connect", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"base64":"QRDATA"}`)
	}))
	return mux
}

func (g *fakeGateway) hit(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, h := range g.hits {
		if h == name {
			return true
		}
	}
	return false
}

func newReconcileFixture(t *testing.T, g *fakeGateway) (IWhatsAppService, *gorm.DB, uuid.UUID, string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	stripPostgresDefaults(t, db)
	require.NoError(t, db.AutoMigrate(&model.WhatsAppInstance{}))

	srv := httptest.NewServer(g.handler())
	t.Cleanup(srv.Close)

	shopId := uuid.New()
	name := instanceName(shopId)
	require.NoError(t, db.Create(&model.WhatsAppInstance{
		Id:           uuid.New(),
		BarbershopId: shopId,
		InstanceName: name,
		Status:       string(entity.WhatsAppStatusConnected),
		PhoneNumber:  "5511999999999",
	}).Error)

	svc := NewWhatsAppService(
		unitofwork.NewRepositoryFactory(db),
		whatsapp.NewClient(srv.URL, "test-key"),
		config.WhatsAppConfig{},
		noopLogger{},
	)
	return svc, db, shopId, name
}

func TestReconcileResetsGhostSession(t *testing.T) {
	g := &fakeGateway{
		stateStatus: http.StatusOK,
		stateBody:   `{"instance":{"state":"open","wuid":""}}`,
	}
	svc, db, shopId, name := newReconcileFixture(t, g)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := svc.Reconcile(ctx, shopId)
	require.NoError(t, err)

	assert.True(t, res.Reset)
	assert.Equal(t, string(entity.WhatsAppStatusDisconnected), res.Status)
	assert.Equal(t, "QRDATA", res.QrCode)
	assert.True(t, g.hit("logout"))
	assert.True(t, g.hit("restart"))
	assert.True(t, g.hit("connect"))

	var row model.WhatsAppInstance
	require.NoError(t, db.First(&row, "instance_name = ?", name).Error)
	assert.Equal(t, string(entity.WhatsAppStatusDisconnected), row.Status)
	assert.Empty(t, row.PhoneNumber)
	assert.Equal(t, "QRDATA", row.QrCode)
}

func TestReconcileRecreatesInstanceMissingFromGatewayList(t *testing.T) {
	g := &fakeGateway{
		stateStatus: http.StatusNotFound,
		stateBody:   `{"error":"instance not found"}`,
		listBody:    `[]`,
	}
	svc, db, shopId, name := newReconcileFixture(t, g)

	res, err := svc.Reconcile(context.Background(), shopId)
	require.NoError(t, err)

	assert.True(t, res.Reset)
	assert.Equal(t, string(entity.WhatsAppStatusConnecting), res.Status)
	assert.True(t, g.hit("list"))
	assert.True(t, g.hit("create"))

	var row model.WhatsAppInstance
	require.NoError(t, db.First(&row, "instance_name = ?", name).Error)
	assert.Equal(t, string(entity.WhatsAppStatusConnecting), row.Status)
}

func TestReconcileKeepsInstanceOnTransientGatewayFailure(t *testing.T) {
	g := &fakeGateway{
		stateStatus: http.StatusInternalServerError,
		stateBody:   `{"error":"boom"}`,
	}
	svc, db, shopId, name := newReconcileFixture(t, g)
	g.listBody = fmt.Sprintf(`[{"instance":{"instanceName":"%s","status":"open"}}]`, name)

	_, err := svc.Reconcile(context.Background(), shopId)
	require.Error(t, err)

	// Known to the gateway, so the flaky state call must not recreate it.
	assert.True(t, g.hit("list"))
	assert.False(t, g.hit("create"))

	var row model.WhatsAppInstance
	require.NoError(t, db.First(&row, "instance_name = ?", name).Error)
	assert.Equal(t, string(entity.WhatsAppStatusConnected), row.Status)
	assert.Equal(t, "5511999999999", row.PhoneNumber)
}

func TestPhoneFromJid(t *testing.T) {
	tests := []struct {
		name string
		jid  string
		want string
	}{
		{"standard jid", "5511999999999@s.whatsapp.net", "5511999999999"},
		{"bare number", "5511999999999", "5511999999999"},
		{"empty", "", ""},
		{"at sign only", "@s.whatsapp.net", "@s.whatsapp.net"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phoneFromJid(tt.jid))
		})
	}
}

func TestInstanceName(t *testing.T) {
	id := uuid.MustParse("2f0e8b9a-3d1c-4e5f-8a7b-6c5d4e3f2a1b")
	assert.Equal(t, "barberflow-2f0e8b9a-3d1c-4e5f-8a7b-6c5d4e3f2a1b", instanceName(id))

	// Names stay distinct per tenant.
	assert.NotEqual(t, instanceName(uuid.New()), instanceName(uuid.New()))
}
