package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeptools/gw-dbconn/db/sqldb"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		conf sqldb.Conf
		want string
	}{
		{
			name: "explicit dsn wins",
			conf: sqldb.Conf{Type: DBType, DSN: "u:p@tcp(db:3306)/app"},
			want: "u:p@tcp(db:3306)/app",
		},
		{
			name: "defaults for port and tz",
			conf: sqldb.Conf{Type: DBType, Host: "db", User: "u", PW: "p", DB: "app"},
			want: "u:p@tcp(db:3306)/app?parseTime=true&loc=UTC&sql_mode=ANSI_QUOTES&multiStatements=true",
		},
		{
			name: "custom port",
			conf: sqldb.Conf{Type: DBType, Host: "db", Port: 3307, User: "u", PW: "p", DB: "app", TZ: "Local"},
			want: "u:p@tcp(db:3307)/app?parseTime=true&loc=Local&sql_mode=ANSI_QUOTES&multiStatements=true",
		},
		{
			name: "zone name is escaped",
			conf: sqldb.Conf{Type: DBType, Host: "db", User: "u", PW: "p", DB: "app", TZ: "Asia/Seoul"},
			want: "u:p@tcp(db:3306)/app?parseTime=true&loc=Asia%2FSeoul&sql_mode=ANSI_QUOTES&multiStatements=true",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DSN(&tt.conf))
		})
	}
}

func TestRegister(t *testing.T) {
	Register()
	assert.Contains(t, sqldb.Registered(), DBType)

	client, err := sqldb.New(DBType, &sqldb.Conf{Type: DBType, Host: "db", DB: "app"})
	require.NoError(t, err)
	assert.Equal(t, DBType, client.GetConf().Type)
	assert.Contains(t, client.GetDSN(), "@tcp(db:3306)/app")
}
