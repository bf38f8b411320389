package game

//go:generate mockgen -destination=mock/mock_interfaces.go -package=mockgame -source=interfaces.go

import (
	"context"
)

// Updater runs the per-round behaviour pass
type Updater interface {
	UpdateAll(ctx context.Context, round int64, deltaTime float64) error
}
