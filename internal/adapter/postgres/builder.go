package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// BoxPredicate matches rows of alias whose latitude/longitude lie inside box,
// bounds inclusive.
func BoxPredicate(alias string, box domain.BoundingBox) sq.Sqlizer {
	return sq.And{
		sq.GtOrEq{alias + ".latitude": box.MinLat},
		sq.LtOrEq{alias + ".latitude": box.MaxLat},
		sq.GtOrEq{alias + ".longitude": box.MinLon},
		sq.LtOrEq{alias + ".longitude": box.MaxLon},
	}
}
