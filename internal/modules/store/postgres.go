package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tbanda/vendora-backend/internal/platform/database"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL store repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateWithPrice(ctx context.Context, s *NewStore, p *NewPrice) (int64, error) {
	var storeID int64
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO stores (
				user_id, category_id, name, details, contact, email,
				store_type, description, location, cover_photo, profile_picture
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING store_id
		`
		err := tx.QueryRowContext(ctx, query,
			s.UserID, s.CategoryID, s.Name, s.Details, s.Contact, s.Email,
			s.Type, s.Description, s.Location,
			nullable(s.CoverPhoto), nullable(s.ProfilePicture),
		).Scan(&storeID)
		if err != nil {
			return database.Classify(err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO store_prices (store_id, title, min_price, max_price, description)
			VALUES ($1, $2, $3, $4, $5)
		`, storeID, p.Title, p.Min, p.Max, p.Description)
		return database.Classify(err)
	})
	if err != nil {
		return 0, err
	}
	return storeID, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID int64, defaultPfp string) ([]Store, error) {
	query := `
		SELECT s.store_id, s.name, sc.category_type, s.cover_photo,
		       COALESCE(s.profile_picture, $2),
		       s.store_type, s.status, s.location, s.contact,
		       sp.title, sp.min_price, sp.max_price, sp.description
		FROM stores s
		JOIN store_categories sc ON s.category_id = sc.category_id
		LEFT JOIN store_prices sp ON sp.store_id = s.store_id
		WHERE s.user_id = $1
		ORDER BY s.store_id, sp.price_id
	`
	rows, err := r.db.QueryContext(ctx, query, userID, defaultPfp)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	stores := []Store{}
	for rows.Next() {
		var (
			id         int64
			name       string
			category   string
			cover      sql.NullString
			pfp        string
			storeType  string
			status     string
			location   string
			contact    string
			priceTitle sql.NullString
			priceMin   sql.NullFloat64
			priceMax   sql.NullFloat64
			priceDesc  sql.NullString
		)
		if err := rows.Scan(&id, &name, &category, &cover, &pfp, &storeType,
			&status, &location, &contact,
			&priceTitle, &priceMin, &priceMax, &priceDesc); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}

		if len(stores) == 0 || stores[len(stores)-1].ID != id {
			s := Store{
				ID:             id,
				Name:           name,
				Category:       category,
				ProfilePicture: pfp,
				Type:           storeType,
				Status:         status,
				Location:       location,
				Contact:        contact,
				Prices:         []Price{},
			}
			if cover.Valid {
				s.CoverPhoto = &cover.String
			}
			stores = append(stores, s)
		}

		// A store without price rows still produces one joined row; only
		// rows with an actual price tier contribute to the list.
		if priceMin.Valid || priceMax.Valid {
			price := Price{
				Min:         priceMin.Float64,
				Max:         priceMax.Float64,
				Description: priceDesc.String,
			}
			if priceTitle.Valid {
				price.Title = &priceTitle.String
			}
			last := &stores[len(stores)-1]
			last.Prices = append(last.Prices, price)
		}
	}
	return stores, rows.Err()
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category_id, category_type FROM store_categories ORDER BY category_id`)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// nullable maps an empty reference to NULL so reads can distinguish "no
// picture" from a stored path.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
