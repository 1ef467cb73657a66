// Package sqlbuilder renders the select and conditional insert statements of the SQL engines with goqu.
// All values are bound as arguments, never interpolated.
package sqlbuilder

import (
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

const (
	ColSequenceNumber = "sequence_number"
	ColEventType      = "event_type"
	ColOccurredAt     = "occurred_at"
	ColPayload        = "payload"
	ColMetadata       = "metadata"

	cteContext  = "context"
	cteVals     = "vals"
	aliasMaxSeq = "max_seq"
)

// PredicateFunc renders one payload predicate for a dialect.
type PredicateFunc func(predicate eventstore.FilterPredicate) (goqu.Expression, error)

// Casts are the literal templates used for the values of appended events, "?" if the dialect needs no cast.
type Casts struct {
	Text      string
	Timestamp string
	JSON      string
}

// Builder knows the dialect, the table and how payload predicates are expressed.
type Builder struct {
	dialect   goqu.DialectWrapper
	table     string
	predicate PredicateFunc
	casts     Casts
}

func New(dialect string, table string, predicate PredicateFunc, casts Casts) Builder {
	return Builder{
		dialect:   goqu.Dialect(dialect),
		table:     table,
		predicate: predicate,
		casts:     casts,
	}
}

// Select renders the query for all events matching filter in sequence order.
func (b Builder) Select(filter eventstore.Filter) (string, []any, error) {
	stmt := b.dialect.
		From(b.table).
		Prepared(true).
		Select(ColEventType, ColOccurredAt, ColPayload, ColMetadata, ColSequenceNumber).
		Order(goqu.I(ColSequenceNumber).Asc())

	where, err := b.where(filter)
	if err != nil {
		return "", nil, err
	}

	if where != nil {
		stmt = stmt.Where(where)
	}

	return toSQL(stmt.ToSQL())
}

// ConditionalInsert renders one statement that inserts events only if the highest sequence number
// matching filter still equals expectedMaxSequenceNumber.
func (b Builder) ConditionalInsert(
	events eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (string, []any, error) {

	if len(events) == 0 {
		return "", nil, eventstore.ErrNoEventsToAppend
	}

	cteStmt := b.dialect.
		From(b.table).
		Select(goqu.MAX(ColSequenceNumber).As(aliasMaxSeq))

	where, err := b.where(filter)
	if err != nil {
		return "", nil, err
	}

	if where != nil {
		cteStmt = cteStmt.Where(where)
	}

	valuesStmt := b.valuesSelect(events[0])
	for _, event := range events[1:] {
		valuesStmt = valuesStmt.UnionAll(b.valuesSelect(event))
	}

	insertStmt := b.dialect.
		Insert(b.table).
		Prepared(true).
		Cols(ColEventType, ColOccurredAt, ColPayload, ColMetadata).
		With(cteContext, cteStmt).
		With(cteVals, valuesStmt).
		FromQuery(
			b.dialect.From(cteContext, cteVals).
				Select(
					goqu.I(cteVals+"."+ColEventType),
					goqu.I(cteVals+"."+ColOccurredAt),
					goqu.I(cteVals+"."+ColPayload),
					goqu.I(cteVals+"."+ColMetadata),
				).
				Where(goqu.COALESCE(goqu.I(cteContext+"."+aliasMaxSeq), 0).Eq(int64(expectedMaxSequenceNumber))),
		)

	return toSQL(insertStmt.ToSQL())
}

func (b Builder) valuesSelect(event eventstore.StorableEvent) *goqu.SelectDataset {
	return b.dialect.Select(
		goqu.L(b.casts.Text, event.EventType).As(ColEventType),
		goqu.L(b.casts.Timestamp, event.OccurredAt.UTC()).As(ColOccurredAt),
		goqu.L(b.casts.JSON, string(event.PayloadJSON)).As(ColPayload),
		goqu.L(b.casts.JSON, string(event.MetadataJSON)).As(ColMetadata),
	)
}

// where returns nil if the filter matches every event.
func (b Builder) where(filter eventstore.Filter) (exp.Expression, error) {
	if filter.IsEmpty() {
		return nil, nil
	}

	items := make([]exp.Expression, 0, len(filter.Items()))

	for _, item := range filter.Items() {
		conditions := make([]exp.Expression, 0, 2)

		if len(item.EventTypes()) > 0 {
			conditions = append(conditions, goqu.C(ColEventType).In(item.EventTypes()))
		}

		if len(item.Predicates()) > 0 {
			predicates := make([]exp.Expression, 0, len(item.Predicates()))

			for _, p := range item.Predicates() {
				expr, err := b.predicate(p)
				if err != nil {
					return nil, errors.Join(eventstore.ErrBuildingQueryFailed, err)
				}

				predicates = append(predicates, expr)
			}

			if item.AllPredicatesMustMatch() {
				conditions = append(conditions, goqu.And(predicates...))
			} else {
				conditions = append(conditions, goqu.Or(predicates...))
			}
		}

		if len(conditions) == 0 {
			return nil, nil // this item matches everything, so does the filter
		}

		items = append(items, goqu.And(conditions...))
	}

	return goqu.Or(items...), nil
}

func toSQL(sqlQuery string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, errors.Join(eventstore.ErrBuildingQueryFailed, err)
	}

	return sqlQuery, args, nil
}
