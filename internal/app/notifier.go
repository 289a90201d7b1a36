/**
 * @description
 * This file defines the notification collaborator port used by the transfer
 * engine, plus the logging fallback used when no message broker is available
 * at startup. Notification is fire-and-forget: a committed transfer is never
 * rolled back or re-failed because a notification could not be delivered.
 *
 * @dependencies
 * - context, log: Standard Go libraries.
 * - internal/domain: For the account model carried in notifications.
 */

package app

import (
	"context"
	"log"

	"github.com/vaultpay/accounts-service/internal/domain"
)

// Notifier is the interface implemented by collaborators that want to be told
// about completed transfers. It is invoked twice per successful transfer, once
// for each involved account.
type Notifier interface {
	NotifyTransfer(ctx context.Context, account domain.Account, message string) error
}

// LogNotifier is a minimal notifier used when the message broker is
// unavailable at startup. It records the notification locally and reports
// success.
type LogNotifier struct{}

func (n *LogNotifier) NotifyTransfer(ctx context.Context, account domain.Account, message string) error {
	log.Printf("level=info component=notifier mode=fallback account_id=%s msg=%q", account.ID, message)
	return nil
}
