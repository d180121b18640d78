package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "no_such.yaml"))
	if err != nil {
		t.Fatalf("отсутствующий файл не должен быть ошибкой: %v", err)
	}
	if conf.Server.Addr != ":8080" {
		t.Errorf("адрес по умолчанию: %q", conf.Server.Addr)
	}
	if conf.Auth.Enabled() {
		t.Error("без пароля защита должна быть выключена")
	}
	if conf.Auth.TokenTTL != 24 {
		t.Errorf("TTL по умолчанию: %d", conf.Auth.TokenTTL)
	}
}

func TestLoadMergesMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
auth:
  password_hash: "$2a$10$hash"
  username: "alice"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if conf.Server.Addr != ":9090" {
		t.Errorf("адрес из файла: %q", conf.Server.Addr)
	}
	if !conf.Auth.Enabled() || conf.Auth.Username != "alice" {
		t.Errorf("auth из файла: %+v", conf.Auth)
	}
	// Непрописанные секции дополняются значениями по умолчанию.
	if conf.Database == nil || conf.Database.Path == "" {
		t.Error("секция database не дополнена")
	}
	if conf.Auth.TokenTTL != 24 {
		t.Errorf("незаданный TTL должен стать 24, получено %d", conf.Auth.TokenTTL)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not: closed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("некорректный YAML должен давать ошибку")
	}
}
