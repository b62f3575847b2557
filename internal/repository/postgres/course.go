package postgres

import (
	"context"
	"errors"

	"teesheet-service/internal/domain/course"
	apperrors "teesheet-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const golfCourseColumns = "id, name, address, city, state, zip, phone, website, tax_rate, discount_rate, lead_discount_rate, created_at, updated_at"

type GolfCourseRepository struct {
	db *DB
}

func NewGolfCourseRepository(db *DB) *GolfCourseRepository {
	return &GolfCourseRepository{db: db}
}

func scanGolfCourse(row pgx.Row) (*course.GolfCourse, error) {
	gc := &course.GolfCourse{}
	err := row.Scan(
		&gc.ID,
		&gc.Name,
		&gc.Address,
		&gc.City,
		&gc.State,
		&gc.Zip,
		&gc.Phone,
		&gc.Website,
		&gc.TaxRate,
		&gc.DiscountRate,
		&gc.LeadDiscountRate,
		&gc.CreatedAt,
		&gc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return gc, nil
}

func (r *GolfCourseRepository) Create(ctx context.Context, input course.CreateCourseInput) (*course.GolfCourse, error) {
	query := `
		INSERT INTO golf_courses (name, address, city, state, zip, phone, website, tax_rate, discount_rate, lead_discount_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + golfCourseColumns

	gc, err := scanGolfCourse(r.db.Pool.QueryRow(ctx, query,
		input.Name, input.Address, input.City, input.State, input.Zip,
		input.Phone, input.Website, input.TaxRate, input.DiscountRate, input.LeadDiscountRate,
	))
	if err != nil {
		return nil, errMutationFailed("create", "golf course", err)
	}

	return gc, nil
}

func (r *GolfCourseRepository) FindByID(ctx context.Context, id int64) (*course.GolfCourse, error) {
	query := `SELECT ` + golfCourseColumns + ` FROM golf_courses WHERE id = $1`

	gc, err := scanGolfCourse(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errGolfCourseNotFound)
		}
		return nil, errQueryFailed("golf course", err)
	}

	return gc, nil
}

const golfCourseCountsQuery = `
	SELECT gc.id, gc.name, gc.address, gc.city, gc.state, gc.zip, gc.phone, gc.website,
	       gc.tax_rate, gc.discount_rate, gc.lead_discount_rate, gc.created_at, gc.updated_at,
	       (SELECT COUNT(*) FROM course_users cu WHERE cu.golf_course_id = gc.id),
	       (SELECT COUNT(*) FROM customers c WHERE c.golf_course_id = gc.id),
	       (SELECT COUNT(*) FROM bookings b WHERE b.golf_course_id = gc.id)
	FROM golf_courses gc
`

func scanGolfCourseWithCounts(row pgx.Row) (*course.WithCounts, error) {
	wc := &course.WithCounts{}
	err := row.Scan(
		&wc.ID,
		&wc.Name,
		&wc.Address,
		&wc.City,
		&wc.State,
		&wc.Zip,
		&wc.Phone,
		&wc.Website,
		&wc.TaxRate,
		&wc.DiscountRate,
		&wc.LeadDiscountRate,
		&wc.CreatedAt,
		&wc.UpdatedAt,
		&wc.Counts.Users,
		&wc.Counts.Customers,
		&wc.Counts.Bookings,
	)
	if err != nil {
		return nil, err
	}
	return wc, nil
}

func (r *GolfCourseRepository) FindByIDWithCounts(ctx context.Context, id int64) (*course.WithCounts, error) {
	query := golfCourseCountsQuery + ` WHERE gc.id = $1`

	wc, err := scanGolfCourseWithCounts(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errGolfCourseNotFound)
		}
		return nil, errQueryFailed("golf course", err)
	}

	return wc, nil
}

func (r *GolfCourseRepository) ListWithCounts(ctx context.Context) ([]*course.WithCounts, error) {
	query := golfCourseCountsQuery + ` ORDER BY gc.created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errQueryFailed("golf courses", err)
	}
	defer rows.Close()

	var courses []*course.WithCounts
	for rows.Next() {
		wc, err := scanGolfCourseWithCounts(rows)
		if err != nil {
			return nil, errScanFailed("golf course", err)
		}
		courses = append(courses, wc)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateFailed("golf course", err)
	}

	return courses, nil
}

func (r *GolfCourseRepository) Update(ctx context.Context, id int64, input course.UpdateCourseInput) (*course.GolfCourse, error) {
	query := `
		UPDATE golf_courses
		SET updated_at = NOW(), name = $2, address = $3, city = $4, state = $5, zip = $6,
		    phone = $7, website = $8, tax_rate = $9, discount_rate = $10, lead_discount_rate = $11
		WHERE id = $1
		RETURNING ` + golfCourseColumns

	gc, err := scanGolfCourse(r.db.Pool.QueryRow(ctx, query,
		id, input.Name, input.Address, input.City, input.State, input.Zip,
		input.Phone, input.Website, input.TaxRate, input.DiscountRate, input.LeadDiscountRate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errGolfCourseNotFound)
		}
		return nil, errMutationFailed("update", "golf course", err)
	}

	return gc, nil
}

func (r *GolfCourseRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool.Exec(ctx, "DELETE FROM golf_courses WHERE id = $1", id)
	if err != nil {
		return errMutationFailed("delete", "golf course", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errGolfCourseNotFound)
	}

	return nil
}
