package poetry

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/diwan/internal/platform/constants"
	"github.com/taibuivan/diwan/internal/platform/database/schema"
	"github.com/taibuivan/diwan/internal/platform/dberr"
)

// PostgresRepository serves curated poems from the library.poem table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]Poem, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		strings.Join(schema.LibraryPoem.Columns(), ", "),
		schema.LibraryPoem.Table,
		schema.LibraryPoem.SortOrder, schema.LibraryPoem.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Poem", "list_library_poems")
	}
	defer rows.Close()

	poems := make([]Poem, 0)
	for rows.Next() {
		poem, err := scanPoem(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Poem", "scan_library_poem")
		}
		poems = append(poems, poem)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Poem", "iterate_library_poems")
	}
	return poems, nil
}

func (repository *PostgresRepository) Get(context context.Context, id string) (Poem, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.LibraryPoem.Columns(), ", "),
		schema.LibraryPoem.Table,
		schema.LibraryPoem.ID)

	poem, err := scanPoem(repository.db.QueryRow(context, query, id))
	if err != nil {
		return Poem{}, dberr.Wrap(err, "Poem", "get_library_poem")
	}
	return poem, nil
}

// scanPoem reads one row in [schema.LibraryPoemTable.Columns] order.
func scanPoem(row pgx.Row) (Poem, error) {
	var (
		poem     Poem
		era      string
		poemType string
	)

	err := row.Scan(
		&poem.ID, &poem.Title, &poem.Poet, &poem.Content, &era, &poem.Theme,
		&poemType, &poem.Meter, &poem.Rhyme, &poem.Year, &poem.Description,
	)
	if err != nil {
		return Poem{}, err
	}

	poem.Era = ParseEra(era)
	poem.Type = PoemType(poemType)
	poem.Source = constants.SourceLibrary
	poem.Origin = OriginLocal
	return poem, nil
}
