package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mindledger/internal/amqp"
	"mindledger/internal/core"
	"mindledger/internal/ledger"
)

// AuditWorker recomputes account balances when transaction events arrive and
// emits periodic net worth snapshots to the log.
type AuditWorker struct {
	ledger *ledger.Service
}

func NewAuditWorker(svc *ledger.Service) *AuditWorker {
	return &AuditWorker{ledger: svc}
}

// HandleTransactionRecorded processes a single transaction event from AMQP.
// A missing account is logged and acked rather than requeued: the account may
// have been created on a different backend or removed since the event was
// published, and redelivery would never succeed.
func (w *AuditWorker) HandleTransactionRecorded(ctx context.Context, msg *amqp.TransactionRecordedMessage) error {
	slog.InfoContext(ctx, "Processing transaction event",
		"transaction_id", msg.TransactionID,
		"account_id", msg.AccountID)

	balance, err := w.ledger.Balance(ctx, msg.AccountID)
	if err != nil {
		var notFound *core.AccountNotFoundError
		if errors.As(err, &notFound) {
			slog.WarnContext(ctx, "Account not found for transaction event, skipping",
				"account_id", msg.AccountID)
			return nil
		}
		return fmt.Errorf("recompute balance: %w", err)
	}

	slog.InfoContext(ctx, "Balance recomputed",
		"account_id", msg.AccountID,
		"balance", balance.String())

	return nil
}

// LogNetWorthSnapshot computes current net worth across active accounts and
// writes one log line per currency bucket.
func (w *AuditWorker) LogNetWorthSnapshot(ctx context.Context) error {
	totals, err := w.ledger.NetWorth(ctx)
	if err != nil {
		return fmt.Errorf("compute net worth: %w", err)
	}

	if len(totals) == 0 {
		slog.InfoContext(ctx, "Net worth snapshot: no active accounts")
		return nil
	}

	for currency, total := range totals {
		slog.InfoContext(ctx, "Net worth snapshot",
			"currency", currency.Code,
			"total", total.Amount())
	}

	return nil
}
