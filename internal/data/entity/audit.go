package entity

import "github.com/google/uuid"

type AuditRecord struct {
	BaseSimple
	Action        string     `db:"action"`
	ReservationID *uuid.UUID `db:"reservation_id"`
	Actor         string     `db:"actor"`
	Detail        string     `db:"detail"`
}
