package repository

import (
	"context"
	"fmt"
	"time"

	"geresaco/internal/domain/reservation"
	"geresaco/internal/infra"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationFilter struct {
	UserID *int64
	RoomID *int64
	Date   *reservation.Date
	Offset int32
	Limit  int32
}

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

type reservationRow struct {
	ID         int64
	UsuarioID  int64
	SalaID     int64
	Fecha      time.Time
	HoraInicio pgtype.Time
	HoraFin    pgtype.Time
	Estado     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const reservationColumns = `id, usuario_id, sala_id, fecha, hora_inicio, hora_fin, estado, created_at, updated_at`

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	var row reservationRow
	err := r.pool.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id,
	).Scan(&row.ID, &row.UsuarioID, &row.SalaID, &row.Fecha, &row.HoraInicio, &row.HoraFin, &row.Estado, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find reservation by id", err)
	}
	return rowToReservation(row), nil
}

func (r *ReservationRepository) List(ctx context.Context, filter ReservationFilter) ([]*reservation.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations`
	var conds []string
	var args []any

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("usuario_id = $%d", len(args)))
	}
	if filter.RoomID != nil {
		args = append(args, *filter.RoomID)
		conds = append(conds, fmt.Sprintf("sala_id = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, filter.Date.Time())
		conds = append(conds, fmt.Sprintf("fecha = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" ORDER BY id OFFSET $%d", len(args))
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list reservations", err)
	}
	defer rows.Close()

	var reservations []*reservation.Reservation
	for rows.Next() {
		var row reservationRow
		if err := rows.Scan(&row.ID, &row.UsuarioID, &row.SalaID, &row.Fecha, &row.HoraInicio, &row.HoraFin, &row.Estado, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation row", err)
		}
		reservations = append(reservations, rowToReservation(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate reservation rows", err)
	}
	return reservations, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	var row reservationRow
	err := r.pool.QueryRow(ctx,
		`INSERT INTO reservations (usuario_id, sala_id, fecha, hora_inicio, hora_fin, estado)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+reservationColumns,
		res.UserID(), res.RoomID(), res.Date().Time(),
		timeOfDayToPgtype(res.Slot().Start()), timeOfDayToPgtype(res.Slot().End()),
		res.Status().String(),
	).Scan(&row.ID, &row.UsuarioID, &row.SalaID, &row.Fecha, &row.HoraInicio, &row.HoraFin, &row.Estado, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to create reservation", err)
	}
	return rowToReservation(row), nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	var row reservationRow
	err := r.pool.QueryRow(ctx,
		`UPDATE reservations
		 SET usuario_id = $2, sala_id = $3, fecha = $4, hora_inicio = $5, hora_fin = $6, estado = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING `+reservationColumns,
		res.ID(), res.UserID(), res.RoomID(), res.Date().Time(),
		timeOfDayToPgtype(res.Slot().Start()), timeOfDayToPgtype(res.Slot().End()),
		res.Status().String(),
	).Scan(&row.ID, &row.UsuarioID, &row.SalaID, &row.Fecha, &row.HoraInicio, &row.HoraFin, &row.Estado, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to update reservation", err)
	}
	return rowToReservation(row), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

func (r *ReservationRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM reservations WHERE usuario_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to count reservations by user", err)
	}
	return count, nil
}

func (r *ReservationRepository) CountByRoomID(ctx context.Context, roomID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM reservations WHERE sala_id = $1`, roomID).Scan(&count)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to count reservations by room", err)
	}
	return count, nil
}

func timeOfDayToPgtype(t reservation.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Seconds()) * 1_000_000, Valid: true}
}

func timeOfDayFromPgtype(t pgtype.Time) reservation.TimeOfDay {
	tod, _ := reservation.TimeOfDayFromSeconds(int(t.Microseconds / 1_000_000))
	return tod
}

func rowToReservation(row reservationRow) *reservation.Reservation {
	slot := reservation.ReconstructTimeSlot(timeOfDayFromPgtype(row.HoraInicio), timeOfDayFromPgtype(row.HoraFin))
	return reservation.Reconstruct(
		row.ID, row.UsuarioID, row.SalaID,
		reservation.DateOf(row.Fecha), slot,
		reservation.Status(row.Estado),
		row.CreatedAt, row.UpdatedAt,
	)
}
