package coult

import (
	"errors"
	"testing"
)

// clearVaultEnv pins every VAULT_* variable to empty so values leaking in
// from the test environment cannot influence resolution.
func clearVaultEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvAddress, EnvPort, EnvToken, EnvSecretPath, EnvProtocol} {
		t.Setenv(name, "")
	}
}

func TestBuilder_ExplicitValuesWin(t *testing.T) {
	clearVaultEnv(t)
	t.Setenv(EnvAddress, "env-host")
	t.Setenv(EnvPort, "9999")
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvSecretPath, "env/path")
	t.Setenv(EnvProtocol, "https")

	client, err := NewBuilder().
		Address("10.1.2.3").
		Port(8201).
		Token("explicit-token").
		SecretPath("secret/app").
		Protocol("http").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	cfg := client.Config()
	if cfg.Host != "10.1.2.3" {
		t.Errorf("Host = %q, want %q", cfg.Host, "10.1.2.3")
	}
	if cfg.Port != 8201 {
		t.Errorf("Port = %d, want 8201", cfg.Port)
	}
	if cfg.Token != "explicit-token" {
		t.Errorf("Token = %q, want %q", cfg.Token, "explicit-token")
	}
	if cfg.SecretPath != "secret/app" {
		t.Errorf("SecretPath = %q, want %q", cfg.SecretPath, "secret/app")
	}
	if cfg.Protocol != ProtocolHTTP {
		t.Errorf("Protocol = %q, want %q", cfg.Protocol, ProtocolHTTP)
	}
}

func TestBuilder_EnvironmentFallback(t *testing.T) {
	clearVaultEnv(t)
	t.Setenv(EnvAddress, "vault.internal")
	t.Setenv(EnvPort, "8300")
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvSecretPath, "secret/env")
	t.Setenv(EnvProtocol, "https")

	client, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	cfg := client.Config()
	if cfg.Host != "vault.internal" {
		t.Errorf("Host = %q, want %q", cfg.Host, "vault.internal")
	}
	if cfg.Port != 8300 {
		t.Errorf("Port = %d, want 8300", cfg.Port)
	}
	if cfg.Token != "env-token" {
		t.Errorf("Token = %q, want %q", cfg.Token, "env-token")
	}
	if cfg.SecretPath != "secret/env" {
		t.Errorf("SecretPath = %q, want %q", cfg.SecretPath, "secret/env")
	}
	if cfg.Protocol != ProtocolHTTPS {
		t.Errorf("Protocol = %q, want %q", cfg.Protocol, ProtocolHTTPS)
	}
}

func TestBuilder_Defaults(t *testing.T) {
	clearVaultEnv(t)
	t.Setenv(EnvToken, "token")
	t.Setenv(EnvSecretPath, "secret/app")

	client, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	cfg := client.Config()
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want default 127.0.0.1", cfg.Host)
	}
	if cfg.Port != 8200 {
		t.Errorf("Port = %d, want default 8200", cfg.Port)
	}
	if cfg.Protocol != ProtocolHTTP {
		t.Errorf("Protocol = %q, want default http", cfg.Protocol)
	}
}

func TestBuilder_MissingToken(t *testing.T) {
	clearVaultEnv(t)

	_, err := NewBuilder().SecretPath("secret/app").Build()
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("Build() error = %v, want ErrMissingToken", err)
	}
}

func TestBuilder_MissingSecretPath(t *testing.T) {
	clearVaultEnv(t)

	_, err := NewBuilder().Token("token").Build()
	if !errors.Is(err, ErrMissingSecretPath) {
		t.Errorf("Build() error = %v, want ErrMissingSecretPath", err)
	}
}

func TestBuilder_InvalidEnvPort(t *testing.T) {
	clearVaultEnv(t)
	t.Setenv(EnvPort, "not-a-number")

	_, err := NewBuilder().Token("token").SecretPath("secret/app").Build()
	if !errors.Is(err, ErrInvalidPort) {
		t.Errorf("Build() error = %v, want ErrInvalidPort", err)
	}
}

func TestBuilder_PortOutOfRange(t *testing.T) {
	clearVaultEnv(t)
	t.Setenv(EnvPort, "70000")

	_, err := NewBuilder().Token("token").SecretPath("secret/app").Build()
	if !errors.Is(err, ErrInvalidPort) {
		t.Errorf("Build() error = %v, want ErrInvalidPort", err)
	}
}

func TestBuilder_InvalidProtocol(t *testing.T) {
	clearVaultEnv(t)

	_, err := NewBuilder().
		Token("token").
		SecretPath("secret/app").
		Protocol("ftp").
		Build()
	if !errors.Is(err, ErrInvalidProtocol) {
		t.Errorf("Build() error = %v, want ErrInvalidProtocol", err)
	}
}

func TestBuilder_InvalidEnvProtocol(t *testing.T) {
	clearVaultEnv(t)
	t.Setenv(EnvProtocol, "gopher")

	_, err := NewBuilder().Token("token").SecretPath("secret/app").Build()
	if !errors.Is(err, ErrInvalidProtocol) {
		t.Errorf("Build() error = %v, want ErrInvalidProtocol", err)
	}
}

func TestBuilder_HTTPS(t *testing.T) {
	clearVaultEnv(t)

	client, err := NewBuilder().
		Token("token").
		SecretPath("secret/app").
		HTTPS().
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if client.Config().Protocol != ProtocolHTTPS {
		t.Errorf("Protocol = %q, want https", client.Config().Protocol)
	}
}

func TestBuilder_OneShot(t *testing.T) {
	clearVaultEnv(t)

	b := NewBuilder().Token("token").SecretPath("secret/app")
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build() error = %v", err)
	}

	_, err := b.Build()
	if !errors.Is(err, ErrBuilderConsumed) {
		t.Errorf("second Build() error = %v, want ErrBuilderConsumed", err)
	}
}

func TestBuilder_ConsumedEvenOnFailure(t *testing.T) {
	clearVaultEnv(t)

	b := NewBuilder()
	if _, err := b.Build(); err == nil {
		t.Fatal("Build() without token should fail")
	}

	_, err := b.Build()
	if !errors.Is(err, ErrBuilderConsumed) {
		t.Errorf("second Build() error = %v, want ErrBuilderConsumed", err)
	}
}

func TestNew_Positional(t *testing.T) {
	clearVaultEnv(t)

	client, err := New(ProtocolHTTP, "10.0.0.7", 8201, "token", "secret/app")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cfg := client.Config()
	if cfg.Host != "10.0.0.7" || cfg.Port != 8201 || cfg.Token != "token" ||
		cfg.SecretPath != "secret/app" || cfg.Protocol != ProtocolHTTP {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestConfig_BaseURL(t *testing.T) {
	cfg := Config{
		Protocol: ProtocolHTTPS,
		Host:     "vault.internal",
		Port:     8200,
	}
	want := "https://vault.internal:8200"
	if got := cfg.BaseURL(); got != want {
		t.Errorf("BaseURL() = %q, want %q", got, want)
	}
}
