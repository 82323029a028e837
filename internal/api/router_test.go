package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"concierge/internal/api/controllers"
	"concierge/internal/config"
	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/internal/repositories"
	"concierge/internal/services"
	"concierge/internal/testsupport"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testsupport.OpenDB(t)
	logger := zaptest.NewLogger(t)
	cfg := &config.Config{CORSOrigins: []string{"*"}, ScheduleLocation: time.UTC}
	tx := infra.NewTransactor(db)

	reservationRepo := repositories.NewReservationRepository(db)
	proposalRepo := repositories.NewProposalRepository(db)
	itemRepo := repositories.NewProposalItemRepository(db)
	guestRepo := repositories.NewProposalGuestRepository(db)
	sentEmailRepo := repositories.NewSentEmailRepository(db)

	notifier := services.NewNotificationService(sentEmailRepo, "Exclusive Resorts", logger)
	lifecycle := services.NewProposalLifecycleService(tx, proposalRepo, notifier, false, logger)

	ctrl := Controllers{
		Reservations: controllers.NewReservationController(
			services.NewReservationService(tx, reservationRepo, proposalRepo, itemRepo, guestRepo, sentEmailRepo, logger)),
		Proposals: controllers.NewProposalController(
			services.NewProposalService(tx, proposalRepo, reservationRepo, lifecycle, logger)),
		Collections: controllers.NewCollectionController(
			services.NewCollectionService(tx, proposalRepo, itemRepo, guestRepo, cfg.ScheduleLocation, logger)),
	}

	return NewRouter(cfg, logger, db, ctrl), db
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestProposalFlow(t *testing.T) {
	r, db := newTestServer(t)
	res := testsupport.SeedReservation(t, db, "james.whitfield@example.com")

	w, env := do(t, r, http.MethodPost, "/api/proposals", map[string]interface{}{"reservationId": res.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID     uint    `json:"id"`
		Status string  `json:"status"`
		SentAt *string `json:"sentAt"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "DRAFT", created.Status)
	assert.Nil(t, created.SentAt)
	assert.NotEmpty(t, env.TraceID)

	base := fmt.Sprintf("/api/proposals/%d", created.ID)

	w, env = do(t, r, http.MethodPost, base+"/items", `{"category":"Dining","title":"Private Chef Dinner","scheduledAt":"2025-03-16T19:00:00","price":1500}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"price":1500.00`)
	assert.Contains(t, string(env.Data), `"description":""`)

	w, _ = do(t, r, http.MethodPost, base+"/items", `{"category":"Dining","title":"No Price","scheduledAt":"2025-03-16T19:00:00","price":null}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodPost, base+"/guests", map[string]string{"name": "Ana Ruiz", "email": "ana@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var guest struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &guest))

	w, env = do(t, r, http.MethodPost, base+"/send", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sent struct {
		Status    string          `json:"status"`
		SentAt    *string         `json:"sentAt"`
		TotalCost json.RawMessage `json:"totalCost"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sent))
	assert.Equal(t, "SENT", sent.Status)
	assert.NotNil(t, sent.SentAt)
	assert.Equal(t, "1500.00", string(sent.TotalCost))

	w, env = do(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var full struct {
		ItemCount   int `json:"itemCount"`
		Reservation struct {
			Member struct {
				Email string `json:"email"`
			} `json:"member"`
		} `json:"reservation"`
		Guests     []json.RawMessage `json:"guests"`
		SentEmails []struct {
			ToEmail string `json:"toEmail"`
		} `json:"sentEmails"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &full))
	assert.Equal(t, 1, full.ItemCount)
	assert.Equal(t, "james.whitfield@example.com", full.Reservation.Member.Email)
	assert.Len(t, full.Guests, 1)
	require.Len(t, full.SentEmails, 1)
	assert.Equal(t, "james.whitfield@example.com", full.SentEmails[0].ToEmail)

	w, env = do(t, r, http.MethodPatch, base, map[string]string{"status": "APPROVED"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"status":"APPROVED"`)

	w, _ = do(t, r, http.MethodPatch, base, map[string]string{"status": "SHIPPED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodDelete, fmt.Sprintf("%s/guests/%d", base, guest.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, string(env.Data))

	w, env = do(t, r, http.MethodGet, "/api/proposals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestGetProposal_EmptyCollectionsRenderAsArrays(t *testing.T) {
	r, db := newTestServer(t)
	res := testsupport.SeedReservation(t, db, "james.whitfield@example.com")

	w, env := do(t, r, http.MethodPost, "/api/proposals", map[string]interface{}{"reservationId": res.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env = do(t, r, http.MethodGet, fmt.Sprintf("/api/proposals/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	for _, key := range []string{"items", "guests", "sentEmails"} {
		require.Contains(t, detail, key)
		assert.Equal(t, "[]", string(detail[key]), key)
	}
	assert.Equal(t, "0.00", string(detail["totalCost"]))
	assert.Equal(t, "0", string(detail["itemCount"]))

	w, env = do(t, r, http.MethodGet, "/api/proposals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "[]", string(list[0]["items"]))
	assert.NotContains(t, list[0], "guests")
	assert.NotContains(t, list[0], "sentEmails")
}

func TestProposalErrors(t *testing.T) {
	r, db := newTestServer(t)
	res := testsupport.SeedReservation(t, db, "m@example.com")
	owner := testsupport.SeedProposal(t, db, res.ID)
	other := testsupport.SeedProposal(t, db, res.ID)

	guest := &db_models.ProposalGuest{ProposalID: owner.ID, Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, db.Create(guest).Error)

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		code   int
	}{
		{"create without reservation", http.MethodPost, "/api/proposals", `{}`, http.StatusBadRequest},
		{"create malformed", http.MethodPost, "/api/proposals", `{"reservationId":`, http.StatusBadRequest},
		{"create unknown reservation", http.MethodPost, "/api/proposals", `{"reservationId":999}`, http.StatusNotFound},
		{"get missing", http.MethodGet, "/api/proposals/999", nil, http.StatusNotFound},
		{"get non-numeric", http.MethodGet, "/api/proposals/abc", nil, http.StatusNotFound},
		{"send missing", http.MethodPost, "/api/proposals/999/send", nil, http.StatusNotFound},
		{"patch empty", http.MethodPatch, fmt.Sprintf("/api/proposals/%d", owner.ID), `{}`, http.StatusBadRequest},
		{"item missing fields", http.MethodPost, fmt.Sprintf("/api/proposals/%d/items", owner.ID), `{"title":"x"}`, http.StatusBadRequest},
		{"item bad date", http.MethodPost, fmt.Sprintf("/api/proposals/%d/items", owner.ID), `{"category":"Dining","title":"x","scheduledAt":"soon","price":1}`, http.StatusBadRequest},
		{"guest missing email", http.MethodPost, fmt.Sprintf("/api/proposals/%d/guests", owner.ID), `{"name":"x"}`, http.StatusBadRequest},
		{"guest wrong proposal", http.MethodDelete, fmt.Sprintf("/api/proposals/%d/guests/%d", other.ID, guest.ID), nil, http.StatusNotFound},
		{"guest missing", http.MethodDelete, fmt.Sprintf("/api/proposals/%d/guests/999", owner.ID), nil, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := do(t, r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
			assert.Equal(t, "error", env.Status)
		})
	}

	var n int64
	require.NoError(t, db.Model(&db_models.ProposalGuest{}).Where("id = ?", guest.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestReservationEndpoints(t *testing.T) {
	r, db := newTestServer(t)

	w, _ := do(t, r, http.MethodGet, "/api/reservations", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	res := testsupport.SeedReservation(t, db, "james.whitfield@example.com")
	p := testsupport.SeedProposal(t, db, res.ID, "1500")
	require.NoError(t, db.Create(&db_models.ProposalGuest{ProposalID: p.ID, Name: "Ana", Email: "ana@example.com"}).Error)

	w, env := do(t, r, http.MethodGet, "/api/reservations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []struct {
		ID        uint                   `json:"id"`
		Member    struct{ Email string } `json:"member"`
		Proposals []json.RawMessage      `json:"proposals"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "james.whitfield@example.com", list[0].Member.Email)
	assert.Len(t, list[0].Proposals, 1)

	w, _ = do(t, r, http.MethodGet, fmt.Sprintf("/api/reservations/%d", res.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodGet, "/api/reservations/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = do(t, r, http.MethodDelete, fmt.Sprintf("/api/reservations/%d/delete", res.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true}`, string(env.Data))

	for _, model := range []interface{}{&db_models.Reservation{}, &db_models.Proposal{}, &db_models.ProposalItem{}, &db_models.ProposalGuest{}} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Zero(t, n)
	}

	w, _ = do(t, r, http.MethodDelete, fmt.Sprintf("/api/reservations/%d/delete", res.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	r, _ := newTestServer(t)

	w, env := do(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
}
