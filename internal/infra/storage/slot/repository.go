package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Repository репозиторий реестра парковочных слотов.
// Реестр read-mostly: единственная мутация - идемпотентный bulk insert
// при старте сервиса, до начала приёма трафика.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Provision заводит слоты с указанными метками.
// Повторный вызов с теми же метками ничего не меняет (ON CONFLICT DO NOTHING),
// поэтому провижининг безопасен при каждом рестарте.
func (r *Repository) Provision(ctx context.Context, labels []string) error {
	if len(labels) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slots").Columns("label")
	for _, label := range labels {
		insertBuilder = insertBuilder.Values(label)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (label) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Provision - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Provision - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// List возвращает все слоты, упорядоченные по метке
func (r *Repository) List(ctx context.Context) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "label", "created_at").
		From("slots").
		OrderBy("label ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		var createdAt sql.NullTime

		if err := rows.Scan(&s.ID, &s.Label, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan slot: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "label", "created_at").
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Label, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}

// Exists проверяет наличие слота в реестре
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}
