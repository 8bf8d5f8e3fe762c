package email

import (
	"strings"
	"testing"
	"time"
)

func TestPasswordReset(t *testing.T) {
	subject, body := PasswordReset("https://app.test/reset?token=a&b", 30*time.Minute)
	if subject == "" {
		t.Fatal("empty subject")
	}
	if !strings.Contains(body, `href="https://app.test/reset?token=a&amp;b"`) {
		t.Errorf("link not escaped into body: %s", body)
	}
	if !strings.Contains(body, "30 minutes") {
		t.Errorf("expiry missing from body: %s", body)
	}
}

func TestWorkoutReminder_EscapesName(t *testing.T) {
	_, body := WorkoutReminder("<b>Jo</b>", "daily", "https://app.test")
	if strings.Contains(body, "<b>Jo</b>") {
		t.Errorf("name was not escaped: %s", body)
	}
	if !strings.Contains(body, "daily workout reminder") {
		t.Errorf("frequency missing: %s", body)
	}
}

func TestWorkoutReminder_NoName(t *testing.T) {
	_, body := WorkoutReminder("", "weekly", "https://app.test")
	if !strings.Contains(body, "Hi there,") {
		t.Errorf("fallback greeting missing: %s", body)
	}
}
