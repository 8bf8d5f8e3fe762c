package email

import (
	"fmt"
	"html"
	"time"
)

// PasswordReset builds the reset email for a one-time link.
func PasswordReset(link string, ttl time.Duration) (subject, body string) {
	subject = "Reset your FitTrack password"
	link = html.EscapeString(link)
	body = fmt.Sprintf(
		`<p>Someone asked to reset the password for your FitTrack account.</p>`+
			`<p><a href="%s">Choose a new password</a> (expires in %d minutes).</p>`+
			`<p>If this wasn't you, you can ignore this email.</p>`,
		link, int(ttl.Minutes()),
	)
	return subject, body
}

// WorkoutReminder builds the periodic nudge sent by the reminder process.
func WorkoutReminder(fullName, frequency, appURL string) (subject, body string) {
	subject = "Time to move!"
	name := html.EscapeString(fullName)
	if name == "" {
		name = "there"
	}
	body = fmt.Sprintf(
		`<p>Hi %s,</p>`+
			`<p>This is your %s workout reminder. <a href="%s/workouts">Pick a workout</a> and keep your streak going.</p>`+
			`<p>You can change how often we remind you in <a href="%s/settings">Settings</a>.</p>`,
		name, html.EscapeString(frequency), html.EscapeString(appURL), html.EscapeString(appURL),
	)
	return subject, body
}
