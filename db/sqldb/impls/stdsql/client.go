package stdsql

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/zeptools/gw-dbconn/db/sqldb"
)

// Client is the database/sql backed sqldb.Client shared by the mysql, sqlite and duckdb impls.
type Client struct {
	Handle // [Embedded] for Promoted Methods
	Conf   *sqldb.Conf
	Driver string // database/sql driver name

	MaxOpenConns    int           // 0 = default of 10
	ConnMaxLifetime time.Duration // 0 = default of 3m, negative = never recycle

	dsn string
}

// Ensure stdsql.Client implements sqldb.Client interface
var _ sqldb.Client = (*Client)(nil)

// NewClient prepares a Client; Init opens the pool.
func NewClient(conf *sqldb.Conf, driver, dsn string) *Client {
	return &Client{
		Handle: Handle{Prefix: sqldb.PlaceholderPrefixForDBType[conf.Type]},
		Conf:   conf,
		Driver: driver,
		dsn:    dsn,
	}
}

// WrapDB builds an initialized Client over an already opened *sql.DB.
func WrapDB(conf *sqldb.Conf, db *sql.DB) *Client {
	c := NewClient(conf, "", conf.DSN)
	c.DB = db
	return c
}

func (c *Client) Init() error {
	if c.DB != nil {
		return nil
	}
	db, err := sql.Open(c.Driver, c.dsn)
	if err != nil {
		return err
	}
	lifetime := c.ConnMaxLifetime
	if lifetime == 0 {
		lifetime = time.Minute * 3
	}
	db.SetConnMaxLifetime(lifetime)
	maxConns := c.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 10
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("%s ping failed: %w", c.Conf.Type, err)
	}
	c.DB = db
	log.Printf("[INFO][%s] sql client initialized", c.Conf.Type)
	return nil
}

func (c *Client) Close() error {
	if c.DB == nil {
		return nil
	}
	log.Printf("[INFO][%s] closing sql client", c.Conf.Type)
	if err := c.DB.Close(); err != nil {
		return err
	}
	log.Printf("[INFO][%s] sql client closed", c.Conf.Type)
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("%s client not initialized", c.Conf.Type)
	}
	return c.DB.PingContext(ctx)
}

func (c *Client) GetHandle() sqldb.Handle {
	return &c.Handle
}

func (c *Client) GetConf() *sqldb.Conf {
	return c.Conf
}

func (c *Client) GetDSN() string {
	return c.dsn
}

func (c *Client) BeginTx(ctx context.Context) (sqldb.Tx, error) {
	if c.DB == nil {
		return nil, fmt.Errorf("%s client not initialized", c.Conf.Type)
	}
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx}, nil
}
