package mailer

import "fmt"

// ResetEmailSubject is the subject line of the password-reset message.
const ResetEmailSubject = "MealGenie Password Reset"

// ResetEmailHTML renders the password-reset message body. The reset URL
// carries the plaintext token; this is the only place it ever appears.
func ResetEmailHTML(name, resetURL string) string {
	if name == "" {
		name = "Friend"
	}
	return fmt.Sprintf(`
  <div style="font-family: Arial; padding:20px; color:#333;">
    <h2 style="color:#16A34A;">Hello %s,</h2>
    <p>You requested to reset your password.</p>
    <a href="%s" style="background:#16A34A; padding:12px 22px; color:white;
    border-radius:10px; text-decoration:none;">Reset Password</a>
    <p style="font-size:12px; opacity:0.8; margin-top:20px;">If not requested, ignore this email.</p>
  </div>`, name, resetURL)
}
