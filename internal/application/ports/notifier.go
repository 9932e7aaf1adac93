package ports

import "context"

// WelcomeNotifier avisa a una cuenta recién registrada. Es best-effort: el caller no falla si retorna error.
type WelcomeNotifier interface {
	NotifyJoined(ctx context.Context, email, userName string) error
}

// NoopNotifier no envía nada (correo deshabilitado).
type NoopNotifier struct{}

func (NoopNotifier) NotifyJoined(context.Context, string, string) error { return nil }
