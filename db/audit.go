package db

import (
	"time"

	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/jmoiron/sqlx"

	sq "github.com/Masterminds/squirrel"
)

type auditor struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

// addToAuditLog adds a audit log entry
func (d *auditor) addToAuditLog(event string, payload tables.MapStructure) error {
	insert := d.sb.
		Insert("audit_logs").
		Columns("event_type", "event", "created_at").
		Values(event, payload, time.Now().UTC())
	_, err := insert.RunWith(d.db).Exec()
	return err
}
