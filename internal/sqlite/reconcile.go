package sqlite

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ledgerline/rentbook/pkg/types"
)

// Reconcile recomputes every derived ledger amount from the recorded
// payments: receipt partial payments, paid flags, balances, and finally
// each agreement's outstanding total. The whole pass is one transaction;
// every stage is attempted even after a failure, and any failure rolls the
// entire pass back. Running it twice against unchanged payments is a
// no-op.
func (b *Backend) Reconcile() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	run := uuid.NewString()
	log := b.log.WithFields(logrus.Fields{"run": run})
	log.Debug("reconciliation started")

	receipt := b.table("receipt")
	payment := b.table("payment")
	agreement := b.table("agreement")

	stages := []struct {
		name string
		stmt string
	}{
		{"partial payments", `
			UPDATE ` + receipt + ` SET partial_payment = COALESCE(
				(SELECT SUM(p.amount) FROM ` + payment + ` p WHERE p.fk_receipt = ` + receipt + `.rowid),
				0)`},
		{"paid flags", `
			UPDATE ` + receipt + ` SET paid = CASE
				WHEN total_amount = partial_payment THEN 1
				ELSE 0
			END`},
		{"balances", `
			UPDATE ` + receipt + ` SET balance = total_amount - partial_payment`},
		{"agreement outstanding", `
			UPDATE ` + agreement + ` SET outstanding = COALESCE(
				(SELECT SUM(r.balance) FROM ` + receipt + ` r WHERE r.fk_agreement = ` + agreement + `.rowid),
				0)`},
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning reconciliation: %w", err)
	}
	defer tx.Rollback()

	var errs []error
	for _, stage := range stages {
		res, err := tx.Exec(stage.stmt)
		if err != nil {
			errs = append(errs, fmt.Errorf("reconciling %s: %w", stage.name, err))
			continue
		}
		n, _ := res.RowsAffected()
		log.WithFields(logrus.Fields{"stage": stage.name, "rows": n}).Debug("reconciliation stage done")
	}

	if len(errs) > 0 {
		log.WithError(errors.Join(errs...)).Warn("reconciliation rolled back")
		return errors.Join(errs...)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reconciliation: %w", err)
	}
	log.Debug("reconciliation committed")
	return nil
}
