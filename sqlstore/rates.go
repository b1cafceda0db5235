package sqlstore

import (
	"context"
	"strings"
	"time"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/rates"
	"github.com/uplinehq/upline/types"
)

var _ rates.HistoryStore = (*RateChanges)(nil)

// RateChanges is the append-only audit log of commission schedule updates.
type RateChanges struct {
	*ConnectionSource
}

func NewRateChanges(connectionSource *ConnectionSource) *RateChanges {
	return &RateChanges{
		ConnectionSource: connectionSource,
	}
}

type rateChangeRow struct {
	ID        string    `db:"id"`
	OldTable  string    `db:"old_table"`
	NewTable  string    `db:"new_table"`
	Reason    string    `db:"reason"`
	Actor     string    `db:"actor"`
	ChangedAt time.Time `db:"changed_at"`
}

const rateSeparator = ","

func encodeRateTable(table types.RateTable) string {
	parts := make([]string, 0, len(table))
	for _, rate := range table {
		parts = append(parts, rate.String())
	}
	return strings.Join(parts, rateSeparator)
}

func decodeRateTable(s string) (types.RateTable, error) {
	if len(s) == 0 {
		return nil, nil
	}
	parts := strings.Split(s, rateSeparator)
	table := make(types.RateTable, 0, len(parts))
	for _, p := range parts {
		rate, err := num.DecimalFromString(p)
		if err != nil {
			return nil, err
		}
		table = append(table, rate)
	}
	return table, nil
}

func (rs *RateChanges) AddRateChange(ctx context.Context, change *types.RateChange) error {
	_, err := rs.Connection.Exec(ctx,
		`INSERT INTO rate_changes(id, old_table, new_table, reason, actor, changed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		change.ID,
		encodeRateTable(change.OldTable),
		encodeRateTable(change.NewTable),
		change.Reason,
		change.Actor,
		change.At,
	)
	return rs.wrapE(err)
}

func (rs *RateChanges) ListRateChanges(ctx context.Context) ([]*types.RateChange, error) {
	rows := []rateChangeRow{}
	err := pgxscan.Select(ctx, rs.Connection, &rows,
		`SELECT id, old_table, new_table, reason, actor, changed_at
		 FROM rate_changes ORDER BY changed_at`)
	if err != nil {
		return nil, rs.wrapE(err)
	}

	out := make([]*types.RateChange, 0, len(rows))
	for _, r := range rows {
		oldTable, err := decodeRateTable(r.OldTable)
		if err != nil {
			return nil, err
		}
		newTable, err := decodeRateTable(r.NewTable)
		if err != nil {
			return nil, err
		}
		out = append(out, &types.RateChange{
			ID:       r.ID,
			OldTable: oldTable,
			NewTable: newTable,
			Reason:   r.Reason,
			Actor:    r.Actor,
			At:       r.ChangedAt,
		})
	}
	return out, nil
}
