package sqldb

import (
	"encoding/json"
	"os"
)

type Conf struct {
	Type string `json:"type"` // mysql, pgsql, ...
	Host string `json:"host"`
	Port int    `json:"port"`
	User string `json:"user"`
	PW   string `json:"pw"`
	DB   string `json:"db"`
	TZ   string `json:"tz"`  // Connection Timezone
	DSN  string `json:"dsn"` // To Overwrite Default DSN
}

// LoadConfs - Load Named DB Confs from a JSON File
// e.g. config/.sql-databases.json
func LoadConfs(confFilePath string) (map[string]*Conf, error) {
	confBytes, err := os.ReadFile(confFilePath) // ([]byte, error)
	if err != nil {
		return nil, err
	}
	confs := make(map[string]*Conf)
	if err = json.Unmarshal(confBytes, &confs); err != nil {
		return nil, err
	}
	return confs, nil
}
