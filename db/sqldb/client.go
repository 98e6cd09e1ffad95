package sqldb

import (
	"context"
)

type Client interface {
	Init() error
	Close() error
	Ping(ctx context.Context) error
	GetHandle() Handle
	GetConf() *Conf
	GetDSN() string
	BeginTx(ctx context.Context) (Tx, error)
}
