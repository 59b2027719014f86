package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ledgerline/rentbook/pkg/types"
)

// Validate moves a draft record to validated. The after hook, if given,
// runs once the transition is committed; a hook failure is reported as a
// SideEffectError and does not undo the transition.
func (e *Engine) Validate(id int64, actor int64, after func() error) error {
	if err := e.transition(id, actor, types.StatusValidated); err != nil {
		return err
	}
	if after != nil {
		if err := after(); err != nil {
			return &types.SideEffectError{Op: "validate", Err: err}
		}
	}
	return nil
}

// Cancel moves a draft record to canceled.
func (e *Engine) Cancel(id int64, actor int64) error {
	return e.transition(id, actor, types.StatusCanceled)
}

func (e *Engine) transition(id int64, actor int64, to types.Status) error {
	if id == 0 {
		return types.ErrInvalidArgument
	}

	e.backend.mu.Lock()
	defer e.backend.mu.Unlock()

	if !e.backend.attached {
		return types.ErrStoreDetached
	}

	s := e.schema
	statusF, ok := s.ByRole(types.RoleStatus)
	if !ok {
		return fmt.Errorf("%s carries no status: %w", s.Element, types.ErrInvalidArgument)
	}

	tx, err := e.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transition: %w", err)
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRow(
		"SELECT "+statusF.Name+" FROM "+e.backend.table(s.Table)+
			" WHERE "+s.Identity().Name+" = ?", id).Scan(&current)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("reading %s status: %w", s.Element, err)
	}

	from := types.Status(current)
	if !from.CanTransition(to) {
		return fmt.Errorf("%s %d: %s to %s: %w",
			s.Element, id, from.Label(), to.Label(), types.ErrInvalidTransition)
	}

	sets := statusF.Name + " = ?"
	args := []any{int64(to)}
	if f, ok := s.ByRole(types.RoleUpdatedAt); ok {
		sets += ", " + f.Name + " = ?"
		args = append(args, e.backend.now().Format(datetimeLayout))
	}
	if f, ok := s.ByRole(types.RoleModifier); ok {
		sets += ", " + f.Name + " = ?"
		args = append(args, actor)
	}
	args = append(args, id)

	if _, err := tx.Exec(
		"UPDATE "+e.backend.table(s.Table)+" SET "+sets+
			" WHERE "+s.Identity().Name+" = ?", args...); err != nil {
		return fmt.Errorf("transitioning %s: %w", s.Element, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transition: %w", err)
	}

	e.backend.log.WithFields(logrus.Fields{
		"element": s.Element, "rowid": id, "from": from.Label(), "to": to.Label(),
	}).Debug("status transition")
	return nil
}
