package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config — конфигурация приложения.
type Config struct {
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Backup   *Backup   `json:"backup" yaml:"backup"`
	Auth     *Auth     `json:"auth" yaml:"auth"`
	Log      *Log      `json:"log" yaml:"log"`
}

type Server struct {
	Addr string `json:"addr" yaml:"addr"`
}

type Database struct {
	Path string `json:"path" yaml:"path"`
}

type Backup struct {
	// Dir — директория для серверных копий экспортированных документов.
	Dir string `json:"dir" yaml:"dir"`
}

type Auth struct {
	// PasswordHash — bcrypt-хеш пароля владельца. Пустая строка
	// отключает защиту API (локальный однопользовательский режим).
	PasswordHash string `json:"password_hash" yaml:"password_hash"`
	Username     string `json:"username" yaml:"username"`
	JwtKey       string `json:"jwt_key" yaml:"jwt_key"`
	TokenTTL     int    `json:"token_ttl_hours" yaml:"token_ttl_hours"`
}

type Log struct {
	Level string `json:"level" yaml:"level"`
}

// Enabled сообщает, включена ли защита API.
func (a *Auth) Enabled() bool {
	return a != nil && a.PasswordHash != ""
}

// Default возвращает конфигурацию по умолчанию: база и бэкапы в текущей
// рабочей директории, сервер на :8080, без пароля.
func Default() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Config{
		Server:   &Server{Addr: ":8080"},
		Database: &Database{Path: filepath.Join(cwd, "ANotes.db")},
		Backup:   &Backup{Dir: filepath.Join(cwd, "backups")},
		Auth:     &Auth{Username: "owner", JwtKey: "", TokenTTL: 24},
		Log:      &Log{Level: "info"},
	}
}

// Load читает YAML-файл конфигурации. Отсутствующий файл не является
// ошибкой — возвращаются значения по умолчанию; отсутствующие секции
// дополняются ими же.
func Load(filename string) (*Config, error) {
	conf := Default()

	content, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return nil, fmt.Errorf("не удалось прочитать конфигурацию %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(content, conf); err != nil {
		return nil, fmt.Errorf("не удалось разобрать конфигурацию %s: %w", filename, err)
	}

	def := Default()
	if conf.Server == nil {
		conf.Server = def.Server
	}
	if conf.Database == nil {
		conf.Database = def.Database
	}
	if conf.Backup == nil {
		conf.Backup = def.Backup
	}
	if conf.Auth == nil {
		conf.Auth = def.Auth
	}
	if conf.Log == nil {
		conf.Log = def.Log
	}
	if conf.Auth.TokenTTL <= 0 {
		conf.Auth.TokenTTL = def.Auth.TokenTTL
	}
	if conf.Auth.Username == "" {
		conf.Auth.Username = def.Auth.Username
	}
	return conf, nil
}
