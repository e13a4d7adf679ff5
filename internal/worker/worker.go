package worker

import (
	"context"
)

// Worker - фоновый потребитель Redis Stream.
// Manager запускает каждый воркер в своей горутине и останавливает через Stop.
type Worker interface {
	// Start блокируется до Stop или отмены ctx; nil при штатной остановке
	Start(ctx context.Context) error

	// Stop идемпотентен
	Stop() error

	Name() string
}
