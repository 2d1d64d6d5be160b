package bot

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	path string
	body map[string]any
}

func newRecordingNotifier(t *testing.T, status int) (service.BotNotifier, *[]recordedCall) {
	t.Helper()

	calls := &[]recordedCall{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		*calls = append(*calls, recordedCall{path: r.URL.Path, body: body})

		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	notifier := NewTelegramNotifier(&config.BotConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return notifier, calls
}

func TestTelegramNotifier_SendStoreCreated(t *testing.T) {
	notifier, calls := newRecordingNotifier(t, http.StatusOK)

	err := notifier.SendStoreCreated(context.Background(), &entity.Store{
		ID:    42,
		Title: "Sara's Handmade",
		Slug:  "sara-s-handmade-abc",
		Owner: &entity.User{TelegramID: "12345"},
	})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/api/store-created", call.path)
	assert.Equal(t, float64(42), call.body["storeId"])
	assert.Equal(t, "12345", call.body["ownerTelegramId"])
}

func TestTelegramNotifier_NotifyAdminsCarriesActionTokens(t *testing.T) {
	notifier, calls := newRecordingNotifier(t, http.StatusOK)

	err := notifier.NotifyAdminsNewStore(context.Background(), &service.NewStoreReview{
		StoreID:       7,
		Title:         "Sara's Handmade",
		OwnerName:     "Sara",
		CategoryNames: []string{"Crafts"},
	})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/api/notify-admins", call.path)
	assert.Equal(t, "approve_store_7", call.body["approveAction"])
	assert.Equal(t, "reject_store_7", call.body["rejectAction"])
}

func TestTelegramNotifier_OwnerMessagesGoToSendMessage(t *testing.T) {
	notifier, calls := newRecordingNotifier(t, http.StatusOK)

	err := notifier.NotifyStoreRejected(context.Background(), &service.StoreRejection{
		OwnerTelegramID: "555",
		Title:           "Sara's Handmade",
		Reason:          "missing contact details",
	})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/api/send-message", call.path)
	assert.Equal(t, "555", call.body["chatId"])
	assert.Contains(t, call.body["text"], "missing contact details")
}

func TestTelegramNotifier_MissingChatIDSkipsCall(t *testing.T) {
	notifier, calls := newRecordingNotifier(t, http.StatusOK)

	err := notifier.NotifyStoreApproved(context.Background(), &service.StoreApproval{
		Title: "Orphan Store",
	})
	require.NoError(t, err)
	assert.Empty(t, *calls)
}

func TestTelegramNotifier_ErrorStatusSurfaces(t *testing.T) {
	notifier, _ := newRecordingNotifier(t, http.StatusBadGateway)

	err := notifier.SendError(context.Background(), "555", "something broke")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
