package catalog

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the catalog database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// LoadPrograms reads every program joined with its university. Rows that
// fail to scan are skipped and logged rather than aborting the load.
func LoadPrograms(db *sql.DB) ([]Program, error) {
	rows, err := db.Query(`
		SELECT p.id, p.name_program, u.name, u.country, u.city,
		       p.field, p.level, p.language, p.duration,
		       p.tuition_per_year, p.application_fee, u.ranking_global
		FROM programs p
		JOIN universities u ON u.id = p.university_id
		ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("query programs: %w", err)
	}
	defer rows.Close()

	var programs []Program
	for rows.Next() {
		var (
			p        Program
			language sql.NullString
			duration sql.NullInt64
			tuition  sql.NullFloat64
			appFee   sql.NullFloat64
			rank     sql.NullInt64
		)
		err := rows.Scan(&p.ID, &p.Name, &p.University, &p.Country, &p.City,
			&p.Field, &p.Level, &language, &duration, &tuition, &appFee, &rank)
		if err != nil {
			log.Warn().Err(err).Msg("skipping unreadable program row")
			continue
		}
		p.Language = language.String
		p.TuitionPerYear = tuition.Float64
		p.ApplicationFee = appFee.Float64
		if duration.Valid {
			d := int(duration.Int64)
			p.DurationYears = &d
		}
		if rank.Valid {
			r := int(rank.Int64)
			p.RankGlobal = &r
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate programs: %w", err)
	}
	return programs, nil
}

// LoadCountries reads the optional countries table. A missing table is not
// an error: living-cost scoring degrades to its default without it.
func LoadCountries(db *sql.DB) ([]Country, error) {
	rows, err := db.Query(`
		SELECT name, code, COALESCE(region, ''), COALESCE(language, ''),
		       COALESCE(average_living_cost, 0), COALESCE(safety_index, 0)
		FROM countries`)
	if err != nil {
		log.Warn().Err(err).Msg("no countries table, continuing without country data")
		return nil, nil
	}
	defer rows.Close()

	var countries []Country
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.Name, &c.Code, &c.Region, &c.Language,
			&c.AverageLivingCost, &c.SafetyIndex); err != nil {
			log.Warn().Err(err).Msg("skipping unreadable country row")
			continue
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}
	return countries, nil
}
