package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AdminEmail != "geral@stagelink.pt" {
		t.Errorf("AdminEmail = %q, want geral@stagelink.pt", cfg.AdminEmail)
	}
	if cfg.RecaptchaMinScore != 0.5 {
		t.Errorf("RecaptchaMinScore = %v, want 0.5", cfg.RecaptchaMinScore)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("RECAPTCHA_MIN_SCORE", "0.7")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q, want from-env", cfg.JWTSecret)
	}
	if cfg.RecaptchaMinScore != 0.7 {
		t.Errorf("RecaptchaMinScore = %v, want 0.7", cfg.RecaptchaMinScore)
	}
}

func TestLoadIgnoresBadFloat(t *testing.T) {
	t.Setenv("RECAPTCHA_MIN_SCORE", "not-a-number")

	if cfg := Load(); cfg.RecaptchaMinScore != 0.5 {
		t.Errorf("RecaptchaMinScore = %v, want default 0.5", cfg.RecaptchaMinScore)
	}
}
