// Package bot implements the outbound HTTP bridge to the Telegram bot
// collaborator. Delivery is best-effort: callers log failures and move on.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type telegramNotifier struct {
	client *resty.Client
	logger *slog.Logger
}

// NewTelegramNotifier creates a bot notifier backed by the configured bot API.
func NewTelegramNotifier(cfg *config.BotConfig, logger *slog.Logger) service.BotNotifier {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Content-Type", "application/json")

	return &telegramNotifier{
		client: client,
		logger: logger,
	}
}

type storeCreatedPayload struct {
	StoreID         uint   `json:"storeId"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	OwnerTelegramID string `json:"ownerTelegramId"`
}

type errorPayload struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
}

type adminReviewPayload struct {
	StoreID       uint     `json:"storeId"`
	Title         string   `json:"title"`
	OwnerName     string   `json:"ownerName"`
	OwnerID       string   `json:"ownerTelegramId"`
	CategoryNames []string `json:"categoryNames"`
	ApproveAction string   `json:"approveAction"`
	RejectAction  string   `json:"rejectAction"`
}

type directMessagePayload struct {
	ChatID string `json:"chatId"`
	Text   string `json:"text"`
}

// SendStoreCreated posts the freshly created store back to the bot so it can
// confirm the submission to the owner.
func (n *telegramNotifier) SendStoreCreated(ctx context.Context, store *entity.Store) error {
	payload := storeCreatedPayload{
		StoreID: store.ID,
		Title:   store.Title,
		Slug:    store.Slug,
	}
	if store.Owner != nil {
		payload.OwnerTelegramID = store.Owner.TelegramID
	}

	return n.post(ctx, "/api/store-created", payload)
}

// SendError posts a failure message for the given chat back to the bot.
func (n *telegramNotifier) SendError(ctx context.Context, chatID, message string) error {
	return n.post(ctx, "/api/store-error", errorPayload{
		ChatID:  chatID,
		Message: message,
	})
}

// NotifyAdminsNewStore fans a review request out to the admin group. The
// action tokens come back through the bot's callback flow when an admin taps
// approve or reject.
func (n *telegramNotifier) NotifyAdminsNewStore(ctx context.Context, review *service.NewStoreReview) error {
	return n.post(ctx, "/api/notify-admins", adminReviewPayload{
		StoreID:       review.StoreID,
		Title:         review.Title,
		OwnerName:     review.OwnerName,
		OwnerID:       review.OwnerTelegramID,
		CategoryNames: review.CategoryNames,
		ApproveAction: fmt.Sprintf("approve_store_%d", review.StoreID),
		RejectAction:  fmt.Sprintf("reject_store_%d", review.StoreID),
	})
}

// NotifyStoreApproved tells the owner the store went live.
func (n *telegramNotifier) NotifyStoreApproved(ctx context.Context, approval *service.StoreApproval) error {
	text := fmt.Sprintf("Your store %q has been approved and is now live.", approval.Title)
	if approval.QRCodeLink != "" {
		text += "\nStore link: " + approval.QRCodeLink
	}

	return n.sendMessage(ctx, approval.OwnerTelegramID, text)
}

// NotifyStoreRejected tells the owner the store was rejected and why.
func (n *telegramNotifier) NotifyStoreRejected(ctx context.Context, rejection *service.StoreRejection) error {
	text := fmt.Sprintf("Your store %q was rejected.\nReason: %s", rejection.Title, rejection.Reason)

	return n.sendMessage(ctx, rejection.OwnerTelegramID, text)
}

// NotifyStoreUpdated tells the owner which fields an admin changed.
func (n *telegramNotifier) NotifyStoreUpdated(ctx context.Context, notice *service.StoreUpdateNotice) error {
	text := fmt.Sprintf("Your store %q was updated by an administrator.", notice.Title)
	if len(notice.UpdatedFields) > 0 {
		text += "\nChanged: " + strings.Join(notice.UpdatedFields, ", ")
	}

	return n.sendMessage(ctx, notice.OwnerTelegramID, text)
}

// NotifyStoreDeleted tells the owner the store was removed.
func (n *telegramNotifier) NotifyStoreDeleted(ctx context.Context, notice *service.StoreDeletionNotice) error {
	text := fmt.Sprintf("Your store %q was removed by an administrator.", notice.Title)
	if notice.Reason != "" {
		text += "\nReason: " + notice.Reason
	}

	return n.sendMessage(ctx, notice.OwnerTelegramID, text)
}

func (n *telegramNotifier) sendMessage(ctx context.Context, chatID, text string) error {
	if chatID == "" {
		n.logger.Debug("skipping bot message without chat id")

		return nil
	}

	return n.post(ctx, "/api/send-message", directMessagePayload{
		ChatID: chatID,
		Text:   text,
	})
}

func (n *telegramNotifier) post(ctx context.Context, path string, payload any) error {
	// Correlation id ties bot-side logs back to ours on fire-and-forget calls.
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString()).
		SetBody(payload).
		Post(path)
	if err != nil {
		return fmt.Errorf("failed to call bot endpoint %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("bot endpoint %s returned status %d", path, resp.StatusCode())
	}

	return nil
}
