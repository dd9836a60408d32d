package notification

import (
	"time"

	"github.com/x-xyz/aptos-market/base/ctx"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Kind string

const (
	KindFetch      Kind = "fetch"
	KindDecode     Kind = "decode"
	KindSubmission Kind = "submission"
	KindValidation Kind = "validation"
	KindSuccess    Kind = "success"
	KindOther      Kind = "other"
)

// Notification is user visible and never blocks the flow that raised it.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Usecase interface {
	Notify(c ctx.Ctx, level Level, kind Kind, message string) *Notification
	// NotifyError classifies err by its taxonomy and records it
	NotifyError(c ctx.Ctx, err error) *Notification
	// Recent returns the newest notifications first
	Recent(c ctx.Ctx, limit int) []*Notification
}
