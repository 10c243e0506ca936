package engine

import (
	"strings"

	"spendtrack/internal/logging"
	"spendtrack/internal/models"
)

// DetectTransfer is the legacy transfer heuristic: when a transaction's
// description contains another account's IBAN or account number, the
// transaction is marked as a transfer to that account. Rule-based "transfer
// to"/"transfer from" actions are the canonical mechanism; this scan only
// runs at import time, before any rules exist for a new account. If several
// accounts' identifiers appear in the description, the last one scanned wins.
func (e *Engine) DetectTransfer(tx *models.Transaction, accounts map[string]models.Account) {
	description := strings.ToLower(strings.Trim(tx.Description, " "))
	for _, account := range accounts {
		iban := strings.ToLower(strings.Trim(account.IBAN, " "))
		number := strings.ToLower(strings.Trim(account.AccountNumber, " "))
		if (iban != "" && strings.Contains(description, iban)) ||
			(number != "" && strings.Contains(description, number)) {
			e.logger.WithFields(
				logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
				logging.Field{Key: logging.FieldTransferTo, Value: account.Name},
			).Info("Found transfer to account")
			tx.TransferTo = account.Name
			tx.TransferFrom = tx.Account
		}
	}
}
