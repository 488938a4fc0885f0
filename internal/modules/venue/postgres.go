package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tbanda/vendora-backend/internal/platform/database"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL venue repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateWithPrice(ctx context.Context, v *NewVenue, p *NewPrice) (int64, error) {
	var venueID int64
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO venues (
				user_id, title, owner_name, location, contact, details,
				status, venue_type, profile_picture, cover_photo
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING venue_id
		`
		err := tx.QueryRowContext(ctx, query,
			v.UserID, v.Title, v.Owner, v.Location, v.Contact, v.Details,
			v.Status, v.Type, nullable(v.ProfilePicture), nullable(v.CoverPhoto),
		).Scan(&venueID)
		if err != nil {
			return database.Classify(err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO venue_prices (venue_id, title, min_price, max_price, capacity, description)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, venueID, p.Title, p.Min, p.Max, p.Capacity, p.Description)
		return database.Classify(err)
	})
	if err != nil {
		return 0, err
	}
	return venueID, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID int64, defaultPfp string) ([]Venue, error) {
	// The join key is the price row's venue_id foreign key, so each venue
	// picks up its own price data.
	query := `
		SELECT v.venue_id, v.title, v.owner_name, v.location, v.contact,
		       v.status, v.venue_type, v.details,
		       COALESCE(vp.capacity, 0),
		       COALESCE(v.profile_picture, $2),
		       v.cover_photo,
		       vp.title, vp.min_price, vp.max_price, vp.description
		FROM venues v
		LEFT JOIN venue_prices vp ON vp.venue_id = v.venue_id
		WHERE v.user_id = $1
		ORDER BY v.venue_id
	`
	rows, err := r.db.QueryContext(ctx, query, userID, defaultPfp)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	venues := []Venue{}
	for rows.Next() {
		var (
			v          Venue
			cover      sql.NullString
			priceTitle sql.NullString
			priceMin   sql.NullFloat64
			priceMax   sql.NullFloat64
			priceDesc  sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.Title, &v.Owner, &v.Location, &v.Contact,
			&v.Status, &v.Type, &v.Details, &v.Capacity, &v.ProfilePicture,
			&cover, &priceTitle, &priceMin, &priceMax, &priceDesc); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}

		if cover.Valid {
			v.CoverPhoto = &cover.String
		}
		if priceTitle.Valid {
			v.PriceTitle = &priceTitle.String
		}
		if priceMin.Valid {
			v.PriceMin = &priceMin.Float64
		}
		if priceMax.Valid {
			v.PriceMax = &priceMax.Float64
		}
		if priceDesc.Valid {
			v.PriceDescription = &priceDesc.String
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

// nullable maps an empty reference to NULL so reads can distinguish "no
// picture" from a stored path.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
