package readstore

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingViewByIDRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return &queries.BookingView{
		ID:          row.ID,
		Start:       pgconv.TimeFromPgtype(row.StartDate),
		End:         pgconv.TimeFromPgtype(row.EndDate),
		Status:      row.Status,
		Item:        queries.ItemRef{ID: row.ItemID, Name: row.ItemName},
		Booker:      queries.UserRef{ID: row.BookerID, Name: row.BookerName},
		ItemOwnerID: row.ItemOwnerID,
	}, nil
}

func (r *BookingReadStore) List(ctx context.Context, q queries.BookingListQuery) ([]*queries.BookingView, error) {
	query, args, err := buildBookingListSQL(q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err, infra.KindDBFailure)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		var (
			v          queries.BookingView
			start, end pgtype.Timestamptz
		)
		if err := rows.Scan(
			&v.ID,
			&start,
			&end,
			&v.Status,
			&v.Item.ID,
			&v.Item.Name,
			&v.ItemOwnerID,
			&v.Booker.ID,
			&v.Booker.Name,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		v.Start = pgconv.TimeFromPgtype(start)
		v.End = pgconv.TimeFromPgtype(end)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

// buildBookingListSQL renders the party and state filter as one ordered, paged query.
func buildBookingListSQL(q queries.BookingListQuery) (string, []any, error) {
	ds := dialect().
		From(goqu.T("bookings").As("b")).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("b.booker_id")))).
		Select(
			goqu.I("b.id"),
			goqu.I("b.start_date"),
			goqu.I("b.end_date"),
			goqu.I("b.status"),
			goqu.I("b.item_id"),
			goqu.I("i.name").As("item_name"),
			goqu.I("i.owner_id").As("item_owner_id"),
			goqu.I("b.booker_id"),
			goqu.I("u.name").As("booker_name"),
		).
		Where(partyExpression(q.Party, q.UserID)).
		Where(filterExpressions(q.Filter, q)...).
		Order(goqu.I("b.start_date").Desc(), goqu.I("b.id").Desc()).
		Prepared(true)

	if q.Page.From > 0 {
		ds = ds.Offset(uint(q.Page.From))
	}
	if q.Page.Limited() {
		ds = ds.Limit(uint(q.Page.Size))
	}

	return ds.ToSQL()
}

func partyExpression(party queries.Party, userID int64) exp.Expression {
	if party == queries.PartyOwner {
		return goqu.I("i.owner_id").Eq(userID)
	}
	return goqu.I("b.booker_id").Eq(userID)
}

func filterExpressions(f booking.Filter, q queries.BookingListQuery) []exp.Expression {
	out := make([]exp.Expression, 0, 4)
	if f.Status != nil {
		out = append(out, goqu.I("b.status").Eq(f.Status.String()))
	}
	if f.EndAfterNow {
		out = append(out, goqu.I("b.end_date").Gt(q.Now))
	}
	if f.EndBeforeNow {
		out = append(out, goqu.I("b.end_date").Lt(q.Now))
	}
	if f.StartAfterNow {
		out = append(out, goqu.I("b.start_date").Gt(q.Now))
	}
	return out
}
